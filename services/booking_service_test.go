package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hotel-booking/failure"
	"hotel-booking/models"
	"hotel-booking/testutil"
)

type ledger struct {
	db       *gorm.DB
	rooms    *RoomService
	bookings *BookingService
}

func newLedger(t *testing.T, opts BookingOptions) ledger {
	t.Helper()
	db := testutil.NewDB(t)
	rooms := NewRoomService(db, testutil.Logger())
	return ledger{
		db:       db,
		rooms:    rooms,
		bookings: NewBookingService(db, rooms, testutil.Logger(), opts),
	}
}

func roomIDs(rooms []models.Room) []uint {
	ids := make([]uint, 0, len(rooms))
	for _, r := range rooms {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestBookingService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("prices the stay by nights", func(t *testing.T) {
		l := newLedger(t, BookingOptions{})
		room := testutil.SeedRoom(t, l.db, "101", 100)
		customer := testutil.SeedCustomer(t, l.db, "ada@example.com")

		res, err := l.bookings.Create(ctx, CreateBookingInput{
			CustomerID:   customer.ID,
			RoomID:       room.ID,
			CheckInDate:  "2024-01-01",
			CheckOutDate: "2024-01-03",
		})
		require.NoError(t, err)
		assert.True(t, res.FullySucceeded())
		assert.Equal(t, 2, res.Nights)
		assert.Equal(t, 200.0, res.TotalAmount)

		stored, err := l.bookings.Get(ctx, res.BookingID)
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusConfirmed, stored.BookingStatus)
		assert.Equal(t, 200.0, stored.TotalAmount)
		assert.Equal(t, "2024-01-01", time.Time(stored.CheckInDate).Format(dateLayout))
		assert.Equal(t, "2024-01-03", driverDay(t, stored.CheckOutDate))
	})

	t.Run("partial day rounds up", func(t *testing.T) {
		l := newLedger(t, BookingOptions{})
		room := testutil.SeedRoom(t, l.db, "102", 80.5)
		customer := testutil.SeedCustomer(t, l.db, "grace@example.com")

		res, err := l.bookings.Create(ctx, CreateBookingInput{
			CustomerID:   customer.ID,
			RoomID:       room.ID,
			CheckInDate:  "2024-03-01T14:00:00Z",
			CheckOutDate: "2024-03-03T11:00:00Z",
		})
		require.NoError(t, err)
		assert.Equal(t, 2, res.Nights)
		assert.Equal(t, 161.0, res.TotalAmount)
	})

	t.Run("rejects check-out on or before check-in", func(t *testing.T) {
		l := newLedger(t, BookingOptions{})
		room := testutil.SeedRoom(t, l.db, "103", 100)

		for _, in := range []CreateBookingInput{
			{CustomerID: 1, RoomID: room.ID, CheckInDate: "2024-01-05", CheckOutDate: "2024-01-05"},
			{CustomerID: 1, RoomID: room.ID, CheckInDate: "2024-01-05", CheckOutDate: "2024-01-01"},
			// still a date range error with the other fields missing or bogus
			{CheckInDate: "2024-01-05", CheckOutDate: "2024-01-04"},
			{CustomerID: 7, RoomID: 9999, CheckInDate: "2024-01-05", CheckOutDate: "2024-01-04"},
		} {
			_, err := l.bookings.Create(ctx, in)
			assert.ErrorIs(t, err, failure.ErrInvalidDateRange)
			assert.Equal(t, failure.KindValidation, failure.KindOf(err))
		}

		var count int64
		require.NoError(t, l.db.Model(&models.Booking{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("unknown room is not found and stores nothing", func(t *testing.T) {
		l := newLedger(t, BookingOptions{})
		customer := testutil.SeedCustomer(t, l.db, "linus@example.com")

		_, err := l.bookings.Create(ctx, CreateBookingInput{
			CustomerID:   customer.ID,
			RoomID:       4242,
			CheckInDate:  "2024-01-01",
			CheckOutDate: "2024-01-02",
		})
		assert.ErrorIs(t, err, failure.ErrRoomNotFound)
		assert.Equal(t, failure.KindNotFound, failure.KindOf(err))

		var count int64
		require.NoError(t, l.db.Model(&models.Booking{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("bad date format and missing refs are validation errors", func(t *testing.T) {
		l := newLedger(t, BookingOptions{})

		_, err := l.bookings.Create(ctx, CreateBookingInput{CustomerID: 1, RoomID: 1, CheckInDate: "01/02/2024", CheckOutDate: "2024-01-03"})
		assert.ErrorIs(t, err, failure.ErrInvalidDate)

		_, err = l.bookings.Create(ctx, CreateBookingInput{CustomerID: 1, RoomID: 1, CheckOutDate: "2024-01-03"})
		assert.ErrorIs(t, err, failure.ErrMissingField)

		_, err = l.bookings.Create(ctx, CreateBookingInput{RoomID: 1, CheckInDate: "2024-01-01", CheckOutDate: "2024-01-03"})
		assert.ErrorIs(t, err, failure.ErrMissingField)
	})

	t.Run("booked room leaves the available list", func(t *testing.T) {
		l := newLedger(t, BookingOptions{})
		booked := testutil.SeedRoom(t, l.db, "201", 120)
		free := testutil.SeedRoom(t, l.db, "202", 120)
		customer := testutil.SeedCustomer(t, l.db, "ken@example.com")

		_, err := l.bookings.Create(ctx, CreateBookingInput{
			CustomerID:   customer.ID,
			RoomID:       booked.ID,
			CheckInDate:  "2024-02-01",
			CheckOutDate: "2024-02-04",
		})
		require.NoError(t, err)

		available, err := l.rooms.ListAvailable(ctx)
		require.NoError(t, err)
		assert.Equal(t, []uint{free.ID}, roomIDs(available))

		all, err := l.rooms.ListAll(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []uint{booked.ID, free.ID}, roomIDs(all))
	})

	t.Run("availability update failure still reports the booking", func(t *testing.T) {
		l := newLedger(t, BookingOptions{})
		room := testutil.SeedRoom(t, l.db, "301", 90)
		customer := testutil.SeedCustomer(t, l.db, "barbara@example.com")
		testutil.FailUpdatesOn(t, l.db, "rooms", errors.New("lock wait timeout exceeded"))

		res, err := l.bookings.Create(ctx, CreateBookingInput{
			CustomerID:   customer.ID,
			RoomID:       room.ID,
			CheckInDate:  "2024-05-01",
			CheckOutDate: "2024-05-02",
		})
		require.NoError(t, err)
		assert.False(t, res.FullySucceeded())
		assert.ErrorContains(t, res.AvailabilityErr, "lock wait timeout")
		assert.NotZero(t, res.BookingID)

		// The inconsistency is visible: booking exists, room still available.
		_, err = l.bookings.Get(ctx, res.BookingID)
		assert.NoError(t, err)
		stored, err := l.rooms.Get(ctx, room.ID)
		require.NoError(t, err)
		assert.True(t, stored.IsAvailable)
	})

	t.Run("no double-booking guard", func(t *testing.T) {
		l := newLedger(t, BookingOptions{})
		room := testutil.SeedRoom(t, l.db, "401", 100)
		c1 := testutil.SeedCustomer(t, l.db, "one@example.com")
		c2 := testutil.SeedCustomer(t, l.db, "two@example.com")

		for _, c := range []models.Customer{c1, c2} {
			_, err := l.bookings.Create(ctx, CreateBookingInput{
				CustomerID:   c.ID,
				RoomID:       room.ID,
				CheckInDate:  "2024-06-01",
				CheckOutDate: "2024-06-03",
			})
			require.NoError(t, err)
		}

		list, err := l.bookings.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})
}

func TestBookingService_List(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t, BookingOptions{})
	room := testutil.SeedRoom(t, l.db, "501", 150)
	customer := testutil.SeedCustomer(t, l.db, "edsger@example.com")

	first, err := l.bookings.Create(ctx, CreateBookingInput{CustomerID: customer.ID, RoomID: room.ID, CheckInDate: "2024-07-01", CheckOutDate: "2024-07-02"})
	require.NoError(t, err)
	second, err := l.bookings.Create(ctx, CreateBookingInput{CustomerID: customer.ID, RoomID: room.ID, CheckInDate: "2024-08-01", CheckOutDate: "2024-08-03", SpecialRequests: "late check-in"})
	require.NoError(t, err)

	list, err := l.bookings.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, second.BookingID, list[0].ID)
	assert.Equal(t, first.BookingID, list[1].ID)

	top := list[0]
	assert.Equal(t, "Ada", top.FirstName)
	assert.Equal(t, "Lovelace", top.LastName)
	assert.Equal(t, "edsger@example.com", top.Email)
	assert.Equal(t, "501", top.RoomNumber)
	assert.Equal(t, models.RoomTypeDouble, top.RoomType)
	assert.Equal(t, 300.0, top.TotalAmount)
	assert.Equal(t, "late check-in", top.SpecialRequests)
	assert.Equal(t, "2024-08-03", time.Time(top.CheckOutDate).Format(dateLayout))
}

func TestBookingService_Update(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (ledger, models.Room, models.Customer, uint) {
		l := newLedger(t, BookingOptions{})
		room := testutil.SeedRoom(t, l.db, "601", 100)
		customer := testutil.SeedCustomer(t, l.db, "alan@example.com")
		res, err := l.bookings.Create(ctx, CreateBookingInput{CustomerID: customer.ID, RoomID: room.ID, CheckInDate: "2024-01-01", CheckOutDate: "2024-01-03"})
		require.NoError(t, err)
		return l, room, customer, res.BookingID
	}

	valid := func(room models.Room, customer models.Customer) UpdateBookingInput {
		return UpdateBookingInput{
			CustomerID:    customer.ID,
			RoomID:        room.ID,
			CheckInDate:   "2024-01-10",
			CheckOutDate:  "2024-01-15",
			BookingStatus: models.BookingStatusPending,
		}
	}

	t.Run("replaces fields without recomputing the total", func(t *testing.T) {
		l, room, customer, id := setup(t)
		in := valid(room, customer)
		in.SpecialRequests = "sea view"

		require.NoError(t, l.bookings.Update(ctx, id, in))

		stored, err := l.bookings.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusPending, stored.BookingStatus)
		assert.Equal(t, "2024-01-15", time.Time(stored.CheckOutDate).Format(dateLayout))
		assert.Equal(t, "sea view", stored.SpecialRequests)
		assert.Equal(t, 200.0, stored.TotalAmount)
	})

	t.Run("supplied total replaces the stored one", func(t *testing.T) {
		l, room, customer, id := setup(t)
		in := valid(room, customer)
		total := 450.0
		in.TotalAmount = &total

		require.NoError(t, l.bookings.Update(ctx, id, in))

		stored, err := l.bookings.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 450.0, stored.TotalAmount)
	})

	t.Run("missing field leaves the record unchanged", func(t *testing.T) {
		l, room, customer, id := setup(t)
		before, err := l.bookings.Get(ctx, id)
		require.NoError(t, err)

		mutations := map[string]func(*UpdateBookingInput){
			"customer":  func(in *UpdateBookingInput) { in.CustomerID = 0 },
			"room":      func(in *UpdateBookingInput) { in.RoomID = 0 },
			"check-in":  func(in *UpdateBookingInput) { in.CheckInDate = "" },
			"check-out": func(in *UpdateBookingInput) { in.CheckOutDate = "  " },
			"status":    func(in *UpdateBookingInput) { in.BookingStatus = "" },
		}
		for name, mutate := range mutations {
			t.Run(name, func(t *testing.T) {
				in := valid(room, customer)
				mutate(&in)

				err := l.bookings.Update(ctx, id, in)
				assert.ErrorIs(t, err, failure.ErrMissingField)
				assert.Equal(t, failure.KindValidation, failure.KindOf(err))

				after, err := l.bookings.Get(ctx, id)
				require.NoError(t, err)
				assert.Equal(t, before.BookingStatus, after.BookingStatus)
				assert.Equal(t, time.Time(before.CheckInDate).Unix(), time.Time(after.CheckInDate).Unix())
				assert.Equal(t, before.TotalAmount, after.TotalAmount)
			})
		}
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		l, room, customer, id := setup(t)
		in := valid(room, customer)
		in.BookingStatus = "checked-in"

		err := l.bookings.Update(ctx, id, in)
		assert.Equal(t, failure.KindValidation, failure.KindOf(err))
	})

	t.Run("unknown booking", func(t *testing.T) {
		l, room, customer, _ := setup(t)
		err := l.bookings.Update(ctx, 9999, valid(room, customer))
		assert.ErrorIs(t, err, failure.ErrBookingNotFound)
	})
}

func TestBookingService_Delete(t *testing.T) {
	ctx := context.Background()

	book := func(t *testing.T, l ledger) (models.Room, uint) {
		room := testutil.SeedRoom(t, l.db, "701", 100)
		customer := testutil.SeedCustomer(t, l.db, "donald@example.com")
		res, err := l.bookings.Create(ctx, CreateBookingInput{CustomerID: customer.ID, RoomID: room.ID, CheckInDate: "2024-01-01", CheckOutDate: "2024-01-02"})
		require.NoError(t, err)
		return room, res.BookingID
	}

	t.Run("removes the booking and keeps the room unavailable", func(t *testing.T) {
		l := newLedger(t, BookingOptions{})
		room, id := book(t, l)

		require.NoError(t, l.bookings.Delete(ctx, id))

		list, err := l.bookings.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)

		stored, err := l.rooms.Get(ctx, room.ID)
		require.NoError(t, err)
		assert.False(t, stored.IsAvailable, "delete must not restore availability")
	})

	t.Run("restore policy frees the room", func(t *testing.T) {
		l := newLedger(t, BookingOptions{RestoreAvailabilityOnDelete: true})
		room, id := book(t, l)

		require.NoError(t, l.bookings.Delete(ctx, id))

		stored, err := l.rooms.Get(ctx, room.ID)
		require.NoError(t, err)
		assert.True(t, stored.IsAvailable)
	})

	t.Run("removes attached services", func(t *testing.T) {
		l := newLedger(t, BookingOptions{})
		_, id := book(t, l)
		extras := NewExtraService(l.db, l.bookings, testutil.Logger())
		cost := 25.0
		_, err := extras.Attach(ctx, AttachServiceInput{BookingID: id, ServiceName: "Breakfast", ServiceCost: &cost})
		require.NoError(t, err)

		require.NoError(t, l.bookings.Delete(ctx, id))

		var count int64
		require.NoError(t, l.db.Model(&models.Service{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("unknown booking", func(t *testing.T) {
		l := newLedger(t, BookingOptions{})
		assert.ErrorIs(t, l.bookings.Delete(ctx, 12345), failure.ErrBookingNotFound)
	})
}
