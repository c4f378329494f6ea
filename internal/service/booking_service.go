package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"rentaride/internal/db"
	"rentaride/internal/entities"
	"rentaride/internal/repository"
)

const dateLayout = "2006-01-02"

// BookingService backs the public site: fleet listing, the availability
// calendar and booking intake.
type BookingService struct {
	reservations ReservationStore
	vehicles     VehicleStore
	notifier     Notifier
}

func NewBookingService(reservations ReservationStore, vehicles VehicleStore, notifier Notifier) *BookingService {
	return &BookingService{
		reservations: reservations,
		vehicles:     vehicles,
		notifier:     notifier,
	}
}

// Availability returns the booked-date set for a month given as YYYY-MM.
// A date is booked when at least one approved reservation falls on it;
// pending and cancelled reservations do not block a date. A failed booked-date
// query degrades to an empty set: the calendar stays usable and intake still
// re-checks the chosen date.
func (s *BookingService) Availability(month string) (*entities.AvailabilityResponse, error) {
	monthStart, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, fmt.Errorf("invalid month %q: %w", month, err)
	}
	monthEnd := monthStart.AddDate(0, 1, 0)

	booked, err := s.reservations.BookedDates(monthStart, monthEnd)
	if err != nil {
		logrus.WithError(err).WithField("month", month).Error("availability query failed")
		booked = nil
	}
	if booked == nil {
		booked = []string{}
	}

	return &entities.AvailabilityResponse{
		Month:       month,
		Today:       today().Format(dateLayout),
		BookedDates: booked,
	}, nil
}

// IsDateAvailable is the date-level availability predicate: past dates are
// never available, nor is any date in the booked set. Two reservations on the
// same date under different time slots are not distinguished.
func (s *BookingService) IsDateAvailable(date time.Time, booked map[string]bool) bool {
	if date.Before(today()) {
		return false
	}
	return !booked[date.Format(dateLayout)]
}

// ListOfferableVehicles returns the fleet entries that may be offered in the
// booking form, i.e. those flagged available.
func (s *BookingService) ListOfferableVehicles() ([]db.Vehicle, error) {
	return s.vehicles.List("available", "")
}

func (s *BookingService) ListVehicles() ([]db.Vehicle, error) {
	return s.vehicles.List("", "")
}

// CreateBooking validates the request against the fleet and the calendar and
// stores a new reservation. Status is always pending; the request cannot
// override it. The cost snapshots the vehicle's daily rate at intake time.
func (s *BookingService) CreateBooking(req *entities.BookingRequest) (*entities.BookingResponse, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, err)
	}

	vehicle, err := s.vehicles.GetByID(req.VehicleID)
	if err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !vehicle.IsAvailable {
		return nil, ErrVehicleUnavailable
	}

	if date.Before(today()) {
		return nil, ErrDateUnavailable
	}
	booked, err := s.reservations.DateBooked(date)
	if err != nil {
		return nil, err
	}
	if booked {
		return nil, ErrDateUnavailable
	}

	cost := vehicle.DailyRateCents
	reservation := &db.Reservation{
		Code:            uuid.NewString(),
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		Address:         req.Address,
		SpecialRequests: req.SpecialRequests,
		VehicleID:       vehicle.ID,
		VehicleName:     vehicle.Name,
		Date:            date,
		TimeSlot:        req.TimeSlot,
		Status:          db.StatusPending,
		CostCents:       &cost,
	}
	if err := s.reservations.Create(reservation); err != nil {
		logrus.WithError(err).Error("error creating reservation")
		return nil, err
	}

	s.notifier.BookingCreated(*reservation)

	return &entities.BookingResponse{
		Code:      reservation.Code,
		Status:    reservation.Status,
		Date:      req.Date,
		TimeSlot:  reservation.TimeSlot,
		CostCents: cost,
		CreatedAt: reservation.CreatedAt,
	}, nil
}

// GetBookingByCode serves the post-submission confirmation lookup.
func (s *BookingService) GetBookingByCode(code string) (*db.Reservation, error) {
	res, err := s.reservations.GetByCode(code)
	if err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return res, nil
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
