package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rentaride/internal/db"
	"rentaride/internal/entities"
	"rentaride/internal/validator"
)

func validRequest() entities.BookingRequest {
	return entities.BookingRequest{
		FullName:  "Jane Doe",
		Email:     "jane@example.com",
		Phone:     "+15550001111",
		VehicleID: 1,
		Date:      "2026-09-05",
		TimeSlot:  "09:00 AM",
	}
}

func TestBookingRequestValidation(t *testing.T) {
	v := validator.NewCustomValidator()

	t.Run("valid request passes", func(t *testing.T) {
		req := validRequest()
		assert.NoError(t, v.Validate(req))
	})

	t.Run("every offered slot is accepted", func(t *testing.T) {
		for _, slot := range db.TimeSlots {
			req := validRequest()
			req.TimeSlot = slot
			assert.NoError(t, v.Validate(req), "slot %s", slot)
		}
	})

	t.Run("unknown time slot rejected", func(t *testing.T) {
		req := validRequest()
		req.TimeSlot = "10:30 PM"
		assert.Error(t, v.Validate(req))
	})

	t.Run("phone is required", func(t *testing.T) {
		req := validRequest()
		req.Phone = ""
		assert.Error(t, v.Validate(req))
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		req := validRequest()
		req.Date = "05/09/2026"
		assert.Error(t, v.Validate(req))
	})

	t.Run("bad email rejected", func(t *testing.T) {
		req := validRequest()
		req.Email = "not-an-email"
		assert.Error(t, v.Validate(req))
	})
}

func TestTestimonialRequestValidation(t *testing.T) {
	v := validator.NewCustomValidator()

	t.Run("rating outside 1..5 rejected", func(t *testing.T) {
		req := entities.TestimonialRequest{Name: "Jane", Comment: "Great", Rating: 6}
		assert.Error(t, v.Validate(req))
	})

	t.Run("rating inside range passes", func(t *testing.T) {
		req := entities.TestimonialRequest{Name: "Jane", Comment: "Great", Rating: 5}
		assert.NoError(t, v.Validate(req))
	})
}
