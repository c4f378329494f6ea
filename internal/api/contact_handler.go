package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	apierrors "rentaride/internal/errors"
	"rentaride/internal/entities"
	"rentaride/internal/service"
	"rentaride/internal/validator"
)

// ContactHandler serves the public contact form and marketing content.
type ContactHandler struct {
	Messages  *service.MessageService
	Content   *service.ContentService
	Validator *validator.CustomValidator
}

func NewContactHandler(messages *service.MessageService, content *service.ContentService) *ContactHandler {
	return &ContactHandler{
		Messages:  messages,
		Content:   content,
		Validator: validator.NewCustomValidator(),
	}
}

func (h *ContactHandler) SubmitMessage(w http.ResponseWriter, r *http.Request) {
	var req entities.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, apierrors.BadRequest("invalid request body"))
		return
	}
	if err := h.Validator.Validate(req); err != nil {
		respondError(w, err)
		return
	}

	msg, err := h.Messages.Submit(&req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, msg)
}

func (h *ContactHandler) SubmitTestimonial(w http.ResponseWriter, r *http.Request) {
	var req entities.TestimonialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, apierrors.BadRequest("invalid request body"))
		return
	}
	if err := h.Validator.Validate(req); err != nil {
		respondError(w, err)
		return
	}

	t, err := h.Content.SubmitTestimonial(&req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, t)
}

func (h *ContactHandler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	testimonials, err := h.Content.VisibleTestimonials(limit)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, testimonials)
}

func (h *ContactHandler) ListOffers(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offers, err := h.Content.Offers(limit)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, offers)
}

func (h *ContactHandler) ListInfoModals(w http.ResponseWriter, r *http.Request) {
	modals, err := h.Content.InfoModals()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, modals)
}
