package service

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"rentaride/internal/db"
	"rentaride/internal/repository"
)

// AdminService drives the back-office reservation lifecycle: filtered listing
// and the pending -> approved/cancelled transitions.
type AdminService struct {
	reservations ReservationStore
	notifier     Notifier
}

func NewAdminService(reservations ReservationStore, notifier Notifier) *AdminService {
	return &AdminService{reservations: reservations, notifier: notifier}
}

// ListReservations returns reservations by date descending. status is one of
// all|pending|approved|cancelled ("all" and "" are equivalent); search narrows
// by customer name, email, phone or vehicle name, case-insensitive.
func (s *AdminService) ListReservations(status, search string) ([]db.Reservation, error) {
	switch status {
	case "", "all":
		status = ""
	case db.StatusPending, db.StatusApproved, db.StatusCancelled:
	default:
		return nil, fmt.Errorf("unknown status filter %q", status)
	}
	return s.reservations.List(status, search)
}

// Approve moves a pending reservation to approved.
func (s *AdminService) Approve(id int) (*db.Reservation, error) {
	return s.transition(id, db.StatusApproved)
}

// Reject moves a pending reservation to cancelled.
func (s *AdminService) Reject(id int) (*db.Reservation, error) {
	return s.transition(id, db.StatusCancelled)
}

// transition applies the guarded status update. The UPDATE only matches while
// the row is still pending, so of two concurrent admins exactly one wins and
// the other observes ErrNotPending.
func (s *AdminService) transition(id int, newStatus string) (*db.Reservation, error) {
	affected, err := s.reservations.UpdateStatusIfPending(id, newStatus)
	if err != nil {
		logrus.WithError(err).WithField("reservation_id", id).Error("status transition failed")
		return nil, err
	}
	if affected == 0 {
		if _, err := s.reservations.GetByID(id); err != nil {
			if errors.Is(err, repository.ErrNoRows) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		return nil, ErrNotPending
	}

	res, err := s.reservations.GetByID(id)
	if err != nil {
		return nil, err
	}
	s.notifier.BookingStatusChanged(*res)
	return res, nil
}
