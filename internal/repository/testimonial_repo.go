package repository

import (
	"database/sql"
	"fmt"

	"rentaride/internal/db"
)

type TestimonialRepository struct {
	DB *sql.DB
}

func NewTestimonialRepository(database *sql.DB) *TestimonialRepository {
	return &TestimonialRepository{DB: database}
}

func (r *TestimonialRepository) Create(t *db.Testimonial) error {
	query := `
		INSERT INTO testimonials (name, comment, rating, display)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	return r.DB.QueryRow(query, t.Name, t.Comment, t.Rating, t.Display).
		Scan(&t.ID, &t.CreatedAt)
}

// ListVisible returns admin-approved testimonials, newest first.
func (r *TestimonialRepository) ListVisible(limit int) ([]db.Testimonial, error) {
	query := `
		SELECT id, name, comment, rating, display, created_at
		FROM testimonials
		WHERE display = TRUE
		ORDER BY created_at DESC
		LIMIT $1`
	return r.list(query, limit)
}

func (r *TestimonialRepository) ListAll() ([]db.Testimonial, error) {
	query := `
		SELECT id, name, comment, rating, display, created_at
		FROM testimonials
		ORDER BY created_at DESC`
	return r.list(query)
}

func (r *TestimonialRepository) list(query string, args ...interface{}) ([]db.Testimonial, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing testimonials: %w", err)
	}
	defer rows.Close()

	var testimonials []db.Testimonial
	for rows.Next() {
		var t db.Testimonial
		err := rows.Scan(&t.ID, &t.Name, &t.Comment, &t.Rating, &t.Display, &t.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning testimonial row: %w", err)
		}
		testimonials = append(testimonials, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating testimonials: %w", err)
	}
	return testimonials, nil
}

func (r *TestimonialRepository) SetDisplay(id int, display bool) error {
	result, err := r.DB.Exec(`UPDATE testimonials SET display = $1 WHERE id = $2`, display, id)
	if err != nil {
		return fmt.Errorf("error updating testimonial %d display: %w", id, err)
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
