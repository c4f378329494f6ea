package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"rentaride/internal/db"
)

// ErrNoRows is returned when a lookup matches nothing. Callers translate it to
// their own not-found error.
var ErrNoRows = errors.New("no matching rows")

type ReservationRepository struct {
	DB *sql.DB
}

func NewReservationRepository(database *sql.DB) *ReservationRepository {
	return &ReservationRepository{DB: database}
}

const reservationColumns = `
	r.id, r.code, r.full_name, r.email, r.phone, r.address, r.special_requests,
	r.vehicle_id, v.name AS vehicle_name, r.date, r.time_slot, r.status,
	r.cost_cents, r.created_at, r.updated_at`

func scanReservation(row interface{ Scan(...interface{}) error }) (*db.Reservation, error) {
	var res db.Reservation
	err := row.Scan(
		&res.ID, &res.Code, &res.FullName, &res.Email, &res.Phone, &res.Address,
		&res.SpecialRequests, &res.VehicleID, &res.VehicleName, &res.Date,
		&res.TimeSlot, &res.Status, &res.CostCents, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationRepository) Create(res *db.Reservation) error {
	query := `
		INSERT INTO reservations
		(code, full_name, email, phone, address, special_requests, vehicle_id, date, time_slot, status, cost_cents)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`
	return r.DB.QueryRow(query,
		res.Code,
		res.FullName,
		res.Email,
		res.Phone,
		res.Address,
		res.SpecialRequests,
		res.VehicleID,
		res.Date,
		res.TimeSlot,
		res.Status,
		res.CostCents,
	).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
}

// BookedDates returns the distinct dates within [monthStart, monthEnd) that
// carry at least one approved reservation, formatted YYYY-MM-DD.
func (r *ReservationRepository) BookedDates(monthStart, monthEnd time.Time) ([]string, error) {
	query := `
		SELECT DISTINCT to_char(date, 'YYYY-MM-DD')
		FROM reservations
		WHERE status = $1 AND date >= $2 AND date < $3
		ORDER BY 1`
	rows, err := r.DB.Query(query, db.StatusApproved, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("error querying booked dates: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("error scanning booked date: %w", err)
		}
		dates = append(dates, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating booked dates: %w", err)
	}
	return dates, nil
}

// DateBooked reports whether the given date already has an approved reservation.
func (r *ReservationRepository) DateBooked(date time.Time) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(
		`SELECT EXISTS (SELECT 1 FROM reservations WHERE status = $1 AND date = $2)`,
		db.StatusApproved, date,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking booked date: %w", err)
	}
	return exists, nil
}

func (r *ReservationRepository) GetByID(id int) (*db.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations r
		JOIN vehicles v ON v.id = r.vehicle_id
		WHERE r.id = $1`
	res, err := scanReservation(r.DB.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoRows
		}
		return nil, fmt.Errorf("error querying reservation %d: %w", id, err)
	}
	return res, nil
}

func (r *ReservationRepository) GetByCode(code string) (*db.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations r
		JOIN vehicles v ON v.id = r.vehicle_id
		WHERE r.code = $1`
	res, err := scanReservation(r.DB.QueryRow(query, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoRows
		}
		return nil, fmt.Errorf("error querying reservation '%s': %w", code, err)
	}
	return res, nil
}

// List returns reservations newest-date first, optionally narrowed to a status
// and a case-insensitive substring match across customer name, email, phone and
// vehicle name.
func (r *ReservationRepository) List(status, search string) ([]db.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations r
		JOIN vehicles v ON v.id = r.vehicle_id
		WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if status != "" {
		query += " AND r.status = $" + strconv.Itoa(idx)
		args = append(args, status)
		idx++
	}
	if search != "" {
		p := "$" + strconv.Itoa(idx)
		query += " AND (r.full_name ILIKE " + p + " OR r.email ILIKE " + p +
			" OR r.phone ILIKE " + p + " OR v.name ILIKE " + p + ")"
		args = append(args, "%"+search+"%")
		idx++
	}
	query += " ORDER BY r.date DESC, r.created_at DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing reservations: %w", err)
	}
	defer rows.Close()

	var reservations []db.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning reservation row: %w", err)
		}
		reservations = append(reservations, *res)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating reservations: %w", err)
	}
	return reservations, nil
}

// ListBetween returns every reservation whose date falls in [from, to),
// newest first. Used by the reporting views.
func (r *ReservationRepository) ListBetween(from, to time.Time) ([]db.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations r
		JOIN vehicles v ON v.id = r.vehicle_id
		WHERE r.date >= $1 AND r.date < $2
		ORDER BY r.date DESC, r.created_at DESC`
	rows, err := r.DB.Query(query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error listing reservations between dates: %w", err)
	}
	defer rows.Close()

	var reservations []db.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning reservation row: %w", err)
		}
		reservations = append(reservations, *res)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating reservations: %w", err)
	}
	return reservations, nil
}

// UpdateStatusIfPending applies newStatus only while the reservation is still
// pending. The returned count is zero when the reservation is missing or has
// already reached a terminal status.
func (r *ReservationRepository) UpdateStatusIfPending(id int, newStatus string) (int64, error) {
	result, err := r.DB.Exec(
		`UPDATE reservations SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`,
		newStatus, id, db.StatusPending,
	)
	if err != nil {
		return 0, fmt.Errorf("error updating reservation %d status: %w", id, err)
	}
	return result.RowsAffected()
}

func (r *ReservationRepository) Count() (int, error) {
	var n int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM reservations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting reservations: %w", err)
	}
	return n, nil
}

func (r *ReservationRepository) CountByStatus(status string) (int, error) {
	var n int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM reservations WHERE status = $1`, status).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("error counting %s reservations: %w", status, err)
	}
	return n, nil
}

func (r *ReservationRepository) CountByVehicle(vehicleID int) (int, error) {
	var n int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM reservations WHERE vehicle_id = $1`, vehicleID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("error counting reservations for vehicle %d: %w", vehicleID, err)
	}
	return n, nil
}
