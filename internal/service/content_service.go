package service

import (
	"errors"

	"rentaride/internal/db"
	"rentaride/internal/entities"
	"rentaride/internal/repository"
)

const (
	defaultOfferLimit       = 3
	defaultTestimonialLimit = 4
)

// ContentService serves the public marketing content: offers, testimonials
// and the info modals shown on the booking page.
type ContentService struct {
	testimonials TestimonialStore
	content      ContentStore
}

func NewContentService(testimonials TestimonialStore, content ContentStore) *ContentService {
	return &ContentService{testimonials: testimonials, content: content}
}

// SubmitTestimonial stores a public submission. Display is forced off until an
// admin approves it.
func (s *ContentService) SubmitTestimonial(req *entities.TestimonialRequest) (*db.Testimonial, error) {
	t := &db.Testimonial{
		Name:    req.Name,
		Comment: req.Comment,
		Rating:  req.Rating,
		Display: false,
	}
	if err := s.testimonials.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *ContentService) VisibleTestimonials(limit int) ([]db.Testimonial, error) {
	if limit <= 0 {
		limit = defaultTestimonialLimit
	}
	return s.testimonials.ListVisible(limit)
}

func (s *ContentService) AllTestimonials() ([]db.Testimonial, error) {
	return s.testimonials.ListAll()
}

// SetTestimonialDisplay toggles the admin-approved visibility gate.
func (s *ContentService) SetTestimonialDisplay(id int, display bool) error {
	err := s.testimonials.SetDisplay(id, display)
	if errors.Is(err, repository.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (s *ContentService) Offers(limit int) ([]db.Offer, error) {
	if limit <= 0 {
		limit = defaultOfferLimit
	}
	return s.content.ListOffers(limit)
}

func (s *ContentService) InfoModals() ([]db.InfoModal, error) {
	return s.content.ListEnabledModals()
}
