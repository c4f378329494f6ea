package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"rentaride/internal/db"
)

type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(database *sql.DB) *JobRepository {
	return &JobRepository{DB: database}
}

// GetStalePendingReservationIDs returns IDs of pending reservations whose
// rental date is already in the past.
func (r *JobRepository) GetStalePendingReservationIDs(before time.Time) ([]int, error) {
	query := `SELECT id FROM reservations WHERE status = $1 AND date < $2`
	rows, err := r.DB.Query(query, db.StatusPending, before)
	if err != nil {
		return nil, fmt.Errorf("error querying stale pending reservations: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning reservation ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}
	return ids, nil
}

// UpdateReservationStatuses moves the given reservations to newStatus and
// refreshes updated_at.
func (r *JobRepository) UpdateReservationStatuses(ids []int, newStatus string) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE reservations SET status = $1, updated_at = NOW() WHERE id = ANY($2)`
	result, err := r.DB.Exec(query, newStatus, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("error updating reservation statuses: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logrus.WithError(err).Warn("could not get rows affected")
	} else {
		logrus.WithFields(logrus.Fields{"count": rowsAffected, "status": newStatus}).
			Info("updated reservation statuses")
	}
	return nil
}
