package repository

import (
	"database/sql"
	"fmt"
	"strconv"

	"rentaride/internal/db"
)

type MessageRepository struct {
	DB *sql.DB
}

func NewMessageRepository(database *sql.DB) *MessageRepository {
	return &MessageRepository{DB: database}
}

func (r *MessageRepository) Create(m *db.Message) error {
	query := `
		INSERT INTO messages (name, email, phone, body)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	return r.DB.QueryRow(query, m.Name, m.Email, m.Phone, m.Body).
		Scan(&m.ID, &m.CreatedAt)
}

// List returns messages newest first. read is "read", "unread" or empty for
// all; search matches name, email, phone and body case-insensitively.
func (r *MessageRepository) List(read, search string) ([]db.Message, error) {
	query := `
		SELECT id, name, email, phone, body, is_read, created_at
		FROM messages
		WHERE 1=1`
	args := []interface{}{}
	idx := 1

	switch read {
	case "read":
		query += " AND is_read = TRUE"
	case "unread":
		query += " AND is_read = FALSE"
	}
	if search != "" {
		p := "$" + strconv.Itoa(idx)
		query += " AND (name ILIKE " + p + " OR email ILIKE " + p +
			" OR phone ILIKE " + p + " OR body ILIKE " + p + ")"
		args = append(args, "%"+search+"%")
		idx++
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing messages: %w", err)
	}
	defer rows.Close()

	var messages []db.Message
	for rows.Next() {
		var m db.Message
		err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Body, &m.IsRead, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning message row: %w", err)
		}
		messages = append(messages, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating messages: %w", err)
	}
	return messages, nil
}

// MarkRead sets the read flag. Re-marking an already-read message is a no-op
// that still succeeds.
func (r *MessageRepository) MarkRead(id int) error {
	result, err := r.DB.Exec(`UPDATE messages SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error marking message %d read: %w", id, err)
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

func (r *MessageRepository) Delete(id int) error {
	result, err := r.DB.Exec(`DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting message %d: %w", id, err)
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

func (r *MessageRepository) Count() (int, error) {
	var n int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM messages`).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting messages: %w", err)
	}
	return n, nil
}
