package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"hotel-booking/failure"
	"hotel-booking/models"
)

type CustomerService struct {
	DB  *gorm.DB
	log *zerolog.Logger
}

func NewCustomerService(db *gorm.DB, log *zerolog.Logger) *CustomerService {
	return &CustomerService{DB: db, log: log}
}

type CreateCustomerInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
}

// Create inserts a new customer row. There is no lookup by email first: a
// returning guest gets a fresh row, and the unique email index rejects it.
func (s *CustomerService) Create(ctx context.Context, in CreateCustomerInput) (models.Customer, error) {
	customer := models.Customer{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Address:   strings.TrimSpace(in.Address),
	}

	var missing []string
	if customer.FirstName == "" {
		missing = append(missing, "first_name")
	}
	if customer.LastName == "" {
		missing = append(missing, "last_name")
	}
	if customer.Email == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return models.Customer{}, failure.ErrMissingField.WithMessage("missing required fields: " + strings.Join(missing, ", "))
	}

	if err := s.DB.WithContext(ctx).Create(&customer).Error; err != nil {
		if isDuplicateKey(err) {
			return models.Customer{}, failure.ErrDuplicateEmail
		}
		return models.Customer{}, failure.Storage(err)
	}

	s.log.Info().Uint("customer_id", customer.ID).Msg("customer created")
	return customer, nil
}
