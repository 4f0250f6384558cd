package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"hotel-booking/failure"
	"hotel-booking/metrics"
	"hotel-booking/models"
)

type RoomService struct {
	DB  *gorm.DB
	log *zerolog.Logger
}

func NewRoomService(db *gorm.DB, log *zerolog.Logger) *RoomService {
	return &RoomService{DB: db, log: log}
}

type CreateRoomInput struct {
	RoomNumber    string
	RoomType      string
	PricePerNight float64
	Capacity      int
	Amenities     string
}

// ListAvailable returns rooms whose availability flag is set.
func (s *RoomService) ListAvailable(ctx context.Context) ([]models.Room, error) {
	rooms := []models.Room{}
	if err := s.DB.WithContext(ctx).Where("is_available = ?", true).Order("id").Find(&rooms).Error; err != nil {
		return nil, failure.Storage(err)
	}
	return rooms, nil
}

// ListAll returns every room, booked or not.
func (s *RoomService) ListAll(ctx context.Context) ([]models.Room, error) {
	rooms := []models.Room{}
	if err := s.DB.WithContext(ctx).Order("id").Find(&rooms).Error; err != nil {
		return nil, failure.Storage(err)
	}
	return rooms, nil
}

func (s *RoomService) Get(ctx context.Context, id uint) (models.Room, error) {
	var room models.Room
	if err := s.DB.WithContext(ctx).First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return room, failure.ErrRoomNotFound
		}
		return room, failure.Storage(err)
	}
	return room, nil
}

// Create adds a room to the inventory. New rooms are always available.
func (s *RoomService) Create(ctx context.Context, in CreateRoomInput) (models.Room, error) {
	in.RoomNumber = strings.TrimSpace(in.RoomNumber)
	in.RoomType = strings.ToLower(strings.TrimSpace(in.RoomType))
	in.Amenities = strings.TrimSpace(in.Amenities)

	// Zero price or capacity counts as missing, same as an empty string.
	if in.RoomNumber == "" || in.RoomType == "" || in.PricePerNight == 0 || in.Capacity == 0 || in.Amenities == "" {
		return models.Room{}, failure.ErrMissingField.WithMessage("All fields are required")
	}
	if !models.IsValidRoomType(in.RoomType) {
		return models.Room{}, failure.Validation("room_type must be one of: " + strings.Join(models.RoomTypes, ", "))
	}
	if in.PricePerNight < 0 {
		return models.Room{}, failure.Validation("price_per_night must be positive")
	}
	if in.Capacity < 0 {
		return models.Room{}, failure.Validation("capacity must be a positive integer")
	}

	db := s.DB.WithContext(ctx)

	var existing int64
	if err := db.Model(&models.Room{}).Where("room_number = ?", in.RoomNumber).Count(&existing).Error; err != nil {
		return models.Room{}, failure.Storage(err)
	}
	if existing > 0 {
		return models.Room{}, failure.ErrDuplicateRoomNumber
	}

	room := models.Room{
		RoomNumber:    in.RoomNumber,
		RoomType:      in.RoomType,
		PricePerNight: in.PricePerNight,
		Capacity:      in.Capacity,
		Amenities:     in.Amenities,
		IsAvailable:   true,
	}
	if err := db.Create(&room).Error; err != nil {
		// Lost a race with a concurrent insert of the same number.
		if isDuplicateKey(err) {
			return models.Room{}, failure.ErrDuplicateRoomNumber
		}
		return models.Room{}, failure.Storage(err)
	}

	metrics.IncRoomCreated()
	s.log.Info().Uint("room_id", room.ID).Str("room_number", room.RoomNumber).Msg("room created")
	return room, nil
}

// MarkUnavailable clears the availability flag. Only the booking ledger calls it.
func (s *RoomService) MarkUnavailable(ctx context.Context, id uint) error {
	return setAvailability(s.DB.WithContext(ctx), id, false)
}

// MarkAvailable sets the availability flag again.
func (s *RoomService) MarkAvailable(ctx context.Context, id uint) error {
	return setAvailability(s.DB.WithContext(ctx), id, true)
}

func setAvailability(db *gorm.DB, id uint, available bool) error {
	if err := db.Model(&models.Room{}).Where("id = ?", id).Update("is_available", available).Error; err != nil {
		return failure.Storage(err)
	}
	return nil
}
