package service

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"rentaride/internal/db"
)

type JobStore interface {
	GetStalePendingReservationIDs(before time.Time) ([]int, error)
	UpdateReservationStatuses(ids []int, newStatus string) error
}

// JobService hosts the scheduled maintenance work.
type JobService struct {
	repo JobStore
}

func NewJobService(repo JobStore) *JobService {
	return &JobService{repo: repo}
}

// ExpireStalePending cancels pending reservations whose rental date has
// already passed. pending -> cancelled is a legal terminal transition, so the
// record stays in history and the pending queue stays honest.
func (s *JobService) ExpireStalePending() error {
	ids, err := s.repo.GetStalePendingReservationIDs(today())
	if err != nil {
		return fmt.Errorf("cron job: failed to get stale pending reservations: %w", err)
	}
	if len(ids) == 0 {
		logrus.Debug("cron job: no stale pending reservations")
		return nil
	}

	logrus.WithField("count", len(ids)).Info("cron job: cancelling stale pending reservations")
	if err := s.repo.UpdateReservationStatuses(ids, db.StatusCancelled); err != nil {
		return fmt.Errorf("cron job: failed to cancel stale pending reservations: %w", err)
	}
	return nil
}
