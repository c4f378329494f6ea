package repository

import (
	"database/sql"
	"fmt"

	"rentaride/internal/db"
)

// ContentRepository serves the marketing content shown on the public pages:
// promotional offers and the informational modals with their sections.
type ContentRepository struct {
	DB *sql.DB
}

func NewContentRepository(database *sql.DB) *ContentRepository {
	return &ContentRepository{DB: database}
}

func (r *ContentRepository) ListOffers(limit int) ([]db.Offer, error) {
	query := `
		SELECT id, title, description, image_url, created_at
		FROM offers
		ORDER BY created_at DESC
		LIMIT $1`
	rows, err := r.DB.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing offers: %w", err)
	}
	defer rows.Close()

	var offers []db.Offer
	for rows.Next() {
		var o db.Offer
		if err := rows.Scan(&o.ID, &o.Title, &o.Description, &o.ImageURL, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning offer row: %w", err)
		}
		offers = append(offers, o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating offers: %w", err)
	}
	return offers, nil
}

// ListEnabledModals returns enabled info modals in sort order, each with its
// enabled sections attached in sort order.
func (r *ContentRepository) ListEnabledModals() ([]db.InfoModal, error) {
	rows, err := r.DB.Query(`
		SELECT id, title, icon, enabled, sort_order
		FROM info_modals
		WHERE enabled = TRUE
		ORDER BY sort_order`)
	if err != nil {
		return nil, fmt.Errorf("error listing info modals: %w", err)
	}
	defer rows.Close()

	var modals []db.InfoModal
	byID := make(map[int]int)
	for rows.Next() {
		var m db.InfoModal
		if err := rows.Scan(&m.ID, &m.Title, &m.Icon, &m.Enabled, &m.SortOrder); err != nil {
			return nil, fmt.Errorf("error scanning info modal row: %w", err)
		}
		byID[m.ID] = len(modals)
		modals = append(modals, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating info modals: %w", err)
	}
	if len(modals) == 0 {
		return modals, nil
	}

	sectionRows, err := r.DB.Query(`
		SELECT s.id, s.modal_id, s.heading, s.body, s.enabled, s.sort_order
		FROM info_modal_sections s
		JOIN info_modals m ON m.id = s.modal_id
		WHERE s.enabled = TRUE AND m.enabled = TRUE
		ORDER BY s.sort_order`)
	if err != nil {
		return nil, fmt.Errorf("error listing info modal sections: %w", err)
	}
	defer sectionRows.Close()

	for sectionRows.Next() {
		var s db.InfoModalSection
		if err := sectionRows.Scan(&s.ID, &s.ModalID, &s.Heading, &s.Body, &s.Enabled, &s.SortOrder); err != nil {
			return nil, fmt.Errorf("error scanning info modal section row: %w", err)
		}
		if i, ok := byID[s.ModalID]; ok {
			modals[i].Sections = append(modals[i].Sections, s)
		}
	}
	if err = sectionRows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating info modal sections: %w", err)
	}
	return modals, nil
}
