package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rentaride/internal/db"
	"rentaride/internal/entities"
	"rentaride/internal/repository"
	"rentaride/internal/service"
)

func validBookingRequest(date string) *entities.BookingRequest {
	return &entities.BookingRequest{
		FullName:  "Jane Doe",
		Email:     "jane@example.com",
		Phone:     "+15550001111",
		VehicleID: 1,
		Date:      date,
		TimeSlot:  "09:00 AM",
	}
}

func availableVehicle() *db.Vehicle {
	return &db.Vehicle{
		ID:             1,
		Name:           "Toyota Corolla",
		DailyRateCents: 4500,
		IsAvailable:    true,
	}
}

func futureDate(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format("2006-01-02")
}

func TestCreateBooking(t *testing.T) {
	t.Run("successful intake is always pending", func(t *testing.T) {
		mockRes := new(MockReservationStore)
		mockVeh := new(MockVehicleStore)
		mockNotify := new(MockNotifier)
		svc := service.NewBookingService(mockRes, mockVeh, mockNotify)

		req := validBookingRequest(futureDate(3))
		var created *db.Reservation
		mockVeh.On("GetByID", 1).Return(availableVehicle(), nil)
		mockRes.On("DateBooked", mock.AnythingOfType("time.Time")).Return(false, nil)
		mockRes.On("Create", mock.AnythingOfType("*db.Reservation")).
			Run(func(args mock.Arguments) {
				created = args.Get(0).(*db.Reservation)
			}).
			Return(nil)
		mockNotify.On("BookingCreated", mock.AnythingOfType("db.Reservation")).Return()

		resp, err := svc.CreateBooking(req)

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Equal(t, db.StatusPending, resp.Status)
		assert.NotEmpty(t, resp.Code)
		assert.Equal(t, int64(4500), resp.CostCents)

		assert.NotNil(t, created)
		assert.Equal(t, db.StatusPending, created.Status)
		assert.NotNil(t, created.CostCents)
		assert.Equal(t, int64(4500), *created.CostCents)
		mockRes.AssertExpectations(t)
		mockVeh.AssertExpectations(t)
		mockNotify.AssertExpectations(t)
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		mockRes := new(MockReservationStore)
		mockVeh := new(MockVehicleStore)
		svc := service.NewBookingService(mockRes, mockVeh, new(MockNotifier))

		mockVeh.On("GetByID", 1).Return(nil, repository.ErrNoRows)

		resp, err := svc.CreateBooking(validBookingRequest(futureDate(3)))

		assert.ErrorIs(t, err, service.ErrNotFound)
		assert.Nil(t, resp)
	})

	t.Run("vehicle flagged unavailable", func(t *testing.T) {
		mockRes := new(MockReservationStore)
		mockVeh := new(MockVehicleStore)
		svc := service.NewBookingService(mockRes, mockVeh, new(MockNotifier))

		v := availableVehicle()
		v.IsAvailable = false
		mockVeh.On("GetByID", 1).Return(v, nil)

		resp, err := svc.CreateBooking(validBookingRequest(futureDate(3)))

		assert.ErrorIs(t, err, service.ErrVehicleUnavailable)
		assert.Nil(t, resp)
		mockRes.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("past date rejected", func(t *testing.T) {
		mockRes := new(MockReservationStore)
		mockVeh := new(MockVehicleStore)
		svc := service.NewBookingService(mockRes, mockVeh, new(MockNotifier))

		mockVeh.On("GetByID", 1).Return(availableVehicle(), nil)

		resp, err := svc.CreateBooking(validBookingRequest(futureDate(-2)))

		assert.ErrorIs(t, err, service.ErrDateUnavailable)
		assert.Nil(t, resp)
		mockRes.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("booked date rejected", func(t *testing.T) {
		mockRes := new(MockReservationStore)
		mockVeh := new(MockVehicleStore)
		svc := service.NewBookingService(mockRes, mockVeh, new(MockNotifier))

		mockVeh.On("GetByID", 1).Return(availableVehicle(), nil)
		mockRes.On("DateBooked", mock.AnythingOfType("time.Time")).Return(true, nil)

		resp, err := svc.CreateBooking(validBookingRequest(futureDate(3)))

		assert.ErrorIs(t, err, service.ErrDateUnavailable)
		assert.Nil(t, resp)
		mockRes.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("malformed date", func(t *testing.T) {
		svc := service.NewBookingService(new(MockReservationStore), new(MockVehicleStore), new(MockNotifier))

		resp, err := svc.CreateBooking(validBookingRequest("03/15/2026"))

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestAvailability(t *testing.T) {
	t.Run("returns booked dates for month", func(t *testing.T) {
		mockRes := new(MockReservationStore)
		svc := service.NewBookingService(mockRes, new(MockVehicleStore), new(MockNotifier))

		start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)
		mockRes.On("BookedDates", start, end).Return([]string{"2026-09-05", "2026-09-12"}, nil)

		resp, err := svc.Availability("2026-09")

		assert.NoError(t, err)
		assert.Equal(t, "2026-09", resp.Month)
		assert.Equal(t, []string{"2026-09-05", "2026-09-12"}, resp.BookedDates)
		assert.NotEmpty(t, resp.Today)
		mockRes.AssertExpectations(t)
	})

	t.Run("empty month yields empty slice not nil", func(t *testing.T) {
		mockRes := new(MockReservationStore)
		svc := service.NewBookingService(mockRes, new(MockVehicleStore), new(MockNotifier))

		mockRes.On("BookedDates", mock.Anything, mock.Anything).Return([]string(nil), nil)

		resp, err := svc.Availability("2026-10")

		assert.NoError(t, err)
		assert.NotNil(t, resp.BookedDates)
		assert.Empty(t, resp.BookedDates)
	})

	t.Run("query failure degrades to an empty booked set", func(t *testing.T) {
		mockRes := new(MockReservationStore)
		svc := service.NewBookingService(mockRes, new(MockVehicleStore), new(MockNotifier))

		mockRes.On("BookedDates", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		resp, err := svc.Availability("2026-10")

		assert.NoError(t, err)
		assert.Empty(t, resp.BookedDates)
	})

	t.Run("rejects malformed month", func(t *testing.T) {
		svc := service.NewBookingService(new(MockReservationStore), new(MockVehicleStore), new(MockNotifier))

		_, err := svc.Availability("September 2026")
		assert.Error(t, err)
	})
}

func TestIsDateAvailable(t *testing.T) {
	svc := service.NewBookingService(new(MockReservationStore), new(MockVehicleStore), new(MockNotifier))
	booked := map[string]bool{futureDate(5): true}

	past := time.Now().UTC().AddDate(0, 0, -1)
	assert.False(t, svc.IsDateAvailable(past, booked))

	bookedDay, _ := time.Parse("2006-01-02", futureDate(5))
	assert.False(t, svc.IsDateAvailable(bookedDay, booked))

	freeDay, _ := time.Parse("2006-01-02", futureDate(6))
	assert.True(t, svc.IsDateAvailable(freeDay, booked))
}

func TestGetBookingByCode(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockRes := new(MockReservationStore)
		svc := service.NewBookingService(mockRes, new(MockVehicleStore), new(MockNotifier))

		mockRes.On("GetByCode", "abc-123").Return(&db.Reservation{Code: "abc-123"}, nil)

		res, err := svc.GetBookingByCode("abc-123")
		assert.NoError(t, err)
		assert.Equal(t, "abc-123", res.Code)
	})

	t.Run("unknown code", func(t *testing.T) {
		mockRes := new(MockReservationStore)
		svc := service.NewBookingService(mockRes, new(MockVehicleStore), new(MockNotifier))

		mockRes.On("GetByCode", "nope").Return(nil, repository.ErrNoRows)

		_, err := svc.GetBookingByCode("nope")
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}
