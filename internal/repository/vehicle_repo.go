package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/lib/pq"

	"rentaride/internal/db"
)

type VehicleRepository struct {
	DB *sql.DB
}

func NewVehicleRepository(database *sql.DB) *VehicleRepository {
	return &VehicleRepository{DB: database}
}

const vehicleColumns = `
	id, name, description, daily_rate_cents, is_available, seats, fuel_type,
	transmission, image_url, features, created_at`

func scanVehicle(row interface{ Scan(...interface{}) error }) (*db.Vehicle, error) {
	var v db.Vehicle
	err := row.Scan(
		&v.ID, &v.Name, &v.Description, &v.DailyRateCents, &v.IsAvailable,
		&v.Seats, &v.FuelType, &v.Transmission, &v.ImageURL,
		pq.Array(&v.Features), &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// List returns vehicles ordered by name. availability is "available",
// "unavailable" or empty for all; search matches name, fuel type and
// description case-insensitively.
func (r *VehicleRepository) List(availability, search string) ([]db.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE 1=1`
	args := []interface{}{}
	idx := 1

	switch availability {
	case "available":
		query += " AND is_available = TRUE"
	case "unavailable":
		query += " AND is_available = FALSE"
	}
	if search != "" {
		p := "$" + strconv.Itoa(idx)
		query += " AND (name ILIKE " + p + " OR fuel_type ILIKE " + p + " OR description ILIKE " + p + ")"
		args = append(args, "%"+search+"%")
		idx++
	}
	query += " ORDER BY name"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []db.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning vehicle row: %w", err)
		}
		vehicles = append(vehicles, *v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating vehicles: %w", err)
	}
	return vehicles, nil
}

func (r *VehicleRepository) GetByID(id int) (*db.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	v, err := scanVehicle(r.DB.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoRows
		}
		return nil, fmt.Errorf("error querying vehicle %d: %w", id, err)
	}
	return v, nil
}

func (r *VehicleRepository) Create(v *db.Vehicle) error {
	query := `
		INSERT INTO vehicles
		(name, description, daily_rate_cents, is_available, seats, fuel_type, transmission, image_url, features)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`
	return r.DB.QueryRow(query,
		v.Name, v.Description, v.DailyRateCents, v.IsAvailable, v.Seats,
		v.FuelType, v.Transmission, v.ImageURL, pq.Array(v.Features),
	).Scan(&v.ID, &v.CreatedAt)
}

func (r *VehicleRepository) Update(v *db.Vehicle) error {
	result, err := r.DB.Exec(`
		UPDATE vehicles
		SET name = $1, description = $2, daily_rate_cents = $3, is_available = $4,
			seats = $5, fuel_type = $6, transmission = $7, image_url = $8, features = $9
		WHERE id = $10`,
		v.Name, v.Description, v.DailyRateCents, v.IsAvailable, v.Seats,
		v.FuelType, v.Transmission, v.ImageURL, pq.Array(v.Features), v.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating vehicle %d: %w", v.ID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNoRows
	}
	return nil
}

func (r *VehicleRepository) Delete(id int) error {
	result, err := r.DB.Exec(`DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting vehicle %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNoRows
	}
	return nil
}

func (r *VehicleRepository) Count() (int, error) {
	var n int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM vehicles`).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting vehicles: %w", err)
	}
	return n, nil
}
