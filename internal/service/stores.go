package service

import (
	"time"

	"rentaride/internal/db"
)

// Store interfaces are satisfied by the concrete repositories. Services depend
// on these so tests can substitute mocks.

type ReservationStore interface {
	Create(res *db.Reservation) error
	BookedDates(monthStart, monthEnd time.Time) ([]string, error)
	DateBooked(date time.Time) (bool, error)
	GetByID(id int) (*db.Reservation, error)
	GetByCode(code string) (*db.Reservation, error)
	List(status, search string) ([]db.Reservation, error)
	ListBetween(from, to time.Time) ([]db.Reservation, error)
	UpdateStatusIfPending(id int, newStatus string) (int64, error)
	Count() (int, error)
	CountByStatus(status string) (int, error)
	CountByVehicle(vehicleID int) (int, error)
}

type VehicleStore interface {
	List(availability, search string) ([]db.Vehicle, error)
	GetByID(id int) (*db.Vehicle, error)
	Create(v *db.Vehicle) error
	Update(v *db.Vehicle) error
	Delete(id int) error
	Count() (int, error)
}

type MessageStore interface {
	Create(m *db.Message) error
	List(read, search string) ([]db.Message, error)
	MarkRead(id int) error
	Delete(id int) error
	Count() (int, error)
}

type TestimonialStore interface {
	Create(t *db.Testimonial) error
	ListVisible(limit int) ([]db.Testimonial, error)
	ListAll() ([]db.Testimonial, error)
	SetDisplay(id int, display bool) error
}

type ContentStore interface {
	ListOffers(limit int) ([]db.Offer, error)
	ListEnabledModals() ([]db.InfoModal, error)
}

// Notifier delivers customer-facing notifications. Implementations must not
// block; failures are logged, never returned to the caller path.
type Notifier interface {
	BookingCreated(res db.Reservation)
	BookingStatusChanged(res db.Reservation)
}
