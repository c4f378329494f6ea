package entities

import "time"

// BookingRequest is the payload produced by the public booking form. Status is
// deliberately absent: intake always creates pending reservations.
type BookingRequest struct {
	FullName        string `json:"full_name" validate:"required,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,max=30"`
	Address         string `json:"address" validate:"max=200"`
	SpecialRequests string `json:"special_requests" validate:"max=1000"`
	VehicleID       int    `json:"vehicle_id" validate:"required,gt=0"`
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlot        string `json:"time_slot" validate:"required,time_slot"`
}

type BookingResponse struct {
	Code      string    `json:"code"`
	Status    string    `json:"status"`
	Date      string    `json:"date"`
	TimeSlot  string    `json:"time_slot"`
	CostCents int64     `json:"cost_cents"`
	CreatedAt time.Time `json:"created_at"`
}

type ContactRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"max=30"`
	Body  string `json:"message" validate:"required,max=2000"`
}

type TestimonialRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Comment string `json:"comment" validate:"required,max=2000"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
}
