package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotel-booking/failure"
	"hotel-booking/metrics"
	"hotel-booking/models"
)

// BookingOptions tunes ledger side effects.
type BookingOptions struct {
	// RestoreAvailabilityOnDelete sets the room available again when its
	// booking is deleted.
	RestoreAvailabilityOnDelete bool
}

// BookingService owns booking records, their pricing and the room
// availability side effects.
type BookingService struct {
	DB    *gorm.DB
	Rooms *RoomService
	log   *zerolog.Logger
	opts  BookingOptions
}

func NewBookingService(db *gorm.DB, rooms *RoomService, log *zerolog.Logger, opts BookingOptions) *BookingService {
	return &BookingService{DB: db, Rooms: rooms, log: log, opts: opts}
}

type CreateBookingInput struct {
	CustomerID      uint
	RoomID          uint
	CheckInDate     string
	CheckOutDate    string
	SpecialRequests string
}

// CreateBookingResult reports the stored booking. AvailabilityErr is set when
// the booking row was written but the room could not be marked unavailable;
// the booking stands either way.
type CreateBookingResult struct {
	BookingID       uint
	TotalAmount     float64
	Nights          int
	AvailabilityErr error
}

// FullySucceeded reports whether both the insert and the availability update
// went through.
func (r CreateBookingResult) FullySucceeded() bool {
	return r.AvailabilityErr == nil
}

type UpdateBookingInput struct {
	CustomerID      uint
	RoomID          uint
	CheckInDate     string
	CheckOutDate    string
	BookingStatus   string
	SpecialRequests string
	// TotalAmount replaces the stored total when set. It is never recomputed
	// from the new dates or room.
	TotalAmount *float64
}

const updateRequiredMessage = "All required fields (customer_id, room_id, check_in_date, check_out_date, booking_status) are necessary for editing."

// Create prices and stores a confirmed booking, then marks the room
// unavailable. The second step is not transactional with the first.
func (s *BookingService) Create(ctx context.Context, in CreateBookingInput) (CreateBookingResult, error) {
	var res CreateBookingResult

	checkIn, checkOut, err := parseStay(in.CheckInDate, in.CheckOutDate)
	if err != nil {
		return res, err
	}
	if in.CustomerID == 0 || in.RoomID == 0 {
		return res, failure.ErrMissingField.WithMessage("customer_id and room_id are required")
	}

	room, err := s.Rooms.Get(ctx, in.RoomID)
	if err != nil {
		return res, err
	}

	nights := Nights(checkIn, checkOut)
	booking := models.Booking{
		CustomerID:      in.CustomerID,
		RoomID:          room.ID,
		CheckInDate:     calendarDate(checkIn),
		CheckOutDate:    calendarDate(checkOut),
		TotalAmount:     TotalAmount(room.PricePerNight, nights),
		BookingStatus:   models.BookingStatusConfirmed,
		SpecialRequests: strings.TrimSpace(in.SpecialRequests),
	}

	if err := s.DB.WithContext(ctx).Omit(clause.Associations).Create(&booking).Error; err != nil {
		if isForeignKeyViolation(err) {
			return res, failure.Validation("customer_id does not reference an existing customer")
		}
		return res, failure.Storage(err)
	}

	res.BookingID = booking.ID
	res.TotalAmount = booking.TotalAmount
	res.Nights = nights

	if err := s.Rooms.MarkUnavailable(ctx, room.ID); err != nil {
		res.AvailabilityErr = err
		metrics.IncBookingCreated(metrics.OutcomeAvailabilityUpdateFailed)
		s.log.Error().Err(err).
			Uint("booking_id", booking.ID).
			Uint("room_id", room.ID).
			Msg("booking created but room availability update failed")
		return res, nil
	}

	metrics.IncBookingCreated(metrics.OutcomeOK)
	s.log.Info().
		Uint("booking_id", booking.ID).
		Uint("room_id", room.ID).
		Int("nights", nights).
		Float64("total_amount", booking.TotalAmount).
		Msg("booking created")
	return res, nil
}

// List returns every booking joined with its customer and room, newest first.
func (s *BookingService) List(ctx context.Context) ([]models.BookingListItem, error) {
	items := []models.BookingListItem{}
	err := s.DB.WithContext(ctx).
		Table("bookings AS b").
		Select("b.*, c.first_name, c.last_name, c.email, r.room_number, r.room_type").
		Joins("JOIN customers c ON b.customer_id = c.id").
		Joins("JOIN rooms r ON b.room_id = r.id").
		Order("b.created_at DESC, b.id DESC").
		Scan(&items).Error
	if err != nil {
		return nil, failure.Storage(err)
	}
	return items, nil
}

// Get loads a single booking.
func (s *BookingService) Get(ctx context.Context, id uint) (models.Booking, error) {
	var booking models.Booking
	if err := s.DB.WithContext(ctx).First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return booking, failure.ErrBookingNotFound
		}
		return booking, failure.Storage(err)
	}
	return booking, nil
}

// Update replaces the booking's editable fields. Validation happens before
// anything is written, so a rejected update leaves the row as it was.
func (s *BookingService) Update(ctx context.Context, id uint, in UpdateBookingInput) error {
	status := strings.ToLower(strings.TrimSpace(in.BookingStatus))
	if in.CustomerID == 0 || in.RoomID == 0 ||
		strings.TrimSpace(in.CheckInDate) == "" || strings.TrimSpace(in.CheckOutDate) == "" || status == "" {
		return failure.ErrMissingField.WithMessage(updateRequiredMessage)
	}

	checkIn, err := ParseDate("check_in_date", in.CheckInDate)
	if err != nil {
		return err
	}
	checkOut, err := ParseDate("check_out_date", in.CheckOutDate)
	if err != nil {
		return err
	}
	if !models.IsValidBookingStatus(status) {
		return failure.Validation("booking_status must be one of: " + strings.Join(models.BookingStatuses, ", "))
	}
	if in.TotalAmount != nil && *in.TotalAmount < 0 {
		return failure.Validation("total_amount must not be negative")
	}

	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	changes := map[string]interface{}{
		"customer_id":      in.CustomerID,
		"room_id":          in.RoomID,
		"check_in_date":    calendarDate(checkIn),
		"check_out_date":   calendarDate(checkOut),
		"booking_status":   status,
		"special_requests": strings.TrimSpace(in.SpecialRequests),
	}
	if in.TotalAmount != nil {
		changes["total_amount"] = *in.TotalAmount
	}

	if err := s.DB.WithContext(ctx).Model(&models.Booking{}).Where("id = ?", id).Updates(changes).Error; err != nil {
		if isForeignKeyViolation(err) {
			return failure.Validation("customer_id or room_id does not reference an existing record")
		}
		return failure.Storage(err)
	}

	s.log.Info().Uint("booking_id", id).Str("booking_status", status).Msg("booking updated")
	return nil
}

// Delete removes the booking and the services charged to it. The room's
// availability flag is left alone unless RestoreAvailabilityOnDelete is set.
func (s *BookingService) Delete(ctx context.Context, id uint) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return failure.ErrBookingNotFound
			}
			return failure.Storage(err)
		}

		if err := tx.Where("booking_id = ?", id).Delete(&models.Service{}).Error; err != nil {
			return failure.Storage(err)
		}
		if err := tx.Delete(&models.Booking{}, id).Error; err != nil {
			return failure.Storage(err)
		}

		if s.opts.RestoreAvailabilityOnDelete {
			return setAvailability(tx, booking.RoomID, true)
		}
		return nil
	})
	if err != nil {
		return err
	}

	metrics.IncBookingDeleted()
	s.log.Info().Uint("booking_id", id).Bool("availability_restored", s.opts.RestoreAvailabilityOnDelete).Msg("booking deleted")
	return nil
}
