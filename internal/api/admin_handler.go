package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"rentaride/internal/db"
	apierrors "rentaride/internal/errors"
	"rentaride/internal/service"
)

// AdminHandler drives the back office: reservation lifecycle, the inquiry
// inbox and testimonial approval.
type AdminHandler struct {
	Admin    *service.AdminService
	Messages *service.MessageService
	Content  *service.ContentService
}

func NewAdminHandler(admin *service.AdminService, messages *service.MessageService, content *service.ContentService) *AdminHandler {
	return &AdminHandler{Admin: admin, Messages: messages, Content: content}
}

// ListReservations accepts ?status=all|pending|approved|cancelled and ?q= for
// the free-text search.
func (h *AdminHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	search := r.URL.Query().Get("q")

	reservations, err := h.Admin.ListReservations(status, search)
	if err != nil {
		respondError(w, apierrors.BadRequest(err.Error()))
		return
	}
	respondJSON(w, http.StatusOK, reservations)
}

func (h *AdminHandler) ApproveReservation(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Admin.Approve)
}

func (h *AdminHandler) RejectReservation(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Admin.Reject)
}

func (h *AdminHandler) transition(w http.ResponseWriter, r *http.Request, apply func(int) (*db.Reservation, error)) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, apierrors.BadRequest("invalid reservation id"))
		return
	}
	res, err := apply(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// ListMessages accepts ?read=all|unread|read and ?q=.
func (h *AdminHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	read := r.URL.Query().Get("read")
	search := r.URL.Query().Get("q")

	messages, err := h.Messages.ListMessages(read, search)
	if err != nil {
		respondError(w, apierrors.BadRequest(err.Error()))
		return
	}
	respondJSON(w, http.StatusOK, messages)
}

func (h *AdminHandler) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, apierrors.BadRequest("invalid message id"))
		return
	}
	if err := h.Messages.MarkRead(id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, MessageResponse{Message: "Message marked as read"})
}

func (h *AdminHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, apierrors.BadRequest("invalid message id"))
		return
	}
	if err := h.Messages.DeleteMessage(id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, MessageResponse{Message: "Message deleted"})
}

func (h *AdminHandler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.Content.AllTestimonials()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, testimonials)
}

func (h *AdminHandler) SetTestimonialDisplay(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, apierrors.BadRequest("invalid testimonial id"))
		return
	}
	var req DisplayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, apierrors.BadRequest("invalid request body"))
		return
	}
	if err := h.Content.SetTestimonialDisplay(id, req.Display); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, MessageResponse{Message: "Testimonial updated"})
}
