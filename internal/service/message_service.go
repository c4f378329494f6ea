package service

import (
	"errors"
	"fmt"

	"rentaride/internal/db"
	"rentaride/internal/entities"
	"rentaride/internal/repository"
)

// MessageService handles the contact form and the admin inquiry inbox.
type MessageService struct {
	messages MessageStore
}

func NewMessageService(messages MessageStore) *MessageService {
	return &MessageService{messages: messages}
}

func (s *MessageService) Submit(req *entities.ContactRequest) (*db.Message, error) {
	m := &db.Message{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Body:  req.Body,
	}
	if err := s.messages.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

// ListMessages filters by read state (all|unread|read) and an optional
// case-insensitive search over name, email, phone and body. Newest first.
func (s *MessageService) ListMessages(read, search string) ([]db.Message, error) {
	switch read {
	case "", "all":
		read = ""
	case "read", "unread":
	default:
		return nil, fmt.Errorf("unknown read filter %q", read)
	}
	return s.messages.List(read, search)
}

// MarkRead flags a message as read. Idempotent: re-marking a read message
// succeeds without effect.
func (s *MessageService) MarkRead(id int) error {
	err := s.messages.MarkRead(id)
	if errors.Is(err, repository.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (s *MessageService) DeleteMessage(id int) error {
	err := s.messages.Delete(id)
	if errors.Is(err, repository.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
