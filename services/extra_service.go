package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotel-booking/failure"
	"hotel-booking/models"
)

// ExtraService attaches billable services (room service, spa, transfers) to
// existing bookings.
type ExtraService struct {
	DB       *gorm.DB
	Bookings *BookingService
	log      *zerolog.Logger
	now      func() time.Time
}

func NewExtraService(db *gorm.DB, bookings *BookingService, log *zerolog.Logger) *ExtraService {
	return &ExtraService{DB: db, Bookings: bookings, log: log, now: time.Now}
}

type AttachServiceInput struct {
	BookingID   uint
	ServiceName string
	ServiceCost *float64
}

// Attach records a service against a booking, dated today.
func (s *ExtraService) Attach(ctx context.Context, in AttachServiceInput) (models.Service, error) {
	name := strings.TrimSpace(in.ServiceName)
	if in.BookingID == 0 || name == "" || in.ServiceCost == nil {
		return models.Service{}, failure.ErrMissingField.WithMessage("booking_id, service_name and service_cost are required")
	}
	if *in.ServiceCost < 0 {
		return models.Service{}, failure.Validation("service_cost must not be negative")
	}

	if _, err := s.Bookings.Get(ctx, in.BookingID); err != nil {
		return models.Service{}, err
	}

	now := s.now()
	svc := models.Service{
		BookingID:   in.BookingID,
		ServiceName: name,
		ServiceCost: *in.ServiceCost,
		ServiceDate: calendarDate(now),
	}
	if err := s.DB.WithContext(ctx).Omit(clause.Associations).Create(&svc).Error; err != nil {
		return models.Service{}, failure.Storage(err)
	}

	s.log.Info().Uint("service_id", svc.ID).Uint("booking_id", svc.BookingID).Msg("service added")
	return svc, nil
}
