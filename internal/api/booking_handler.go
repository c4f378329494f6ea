package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	apierrors "rentaride/internal/errors"
	"rentaride/internal/entities"
	"rentaride/internal/service"
	"rentaride/internal/validator"
)

// BookingHandler serves the public booking flow: fleet listing, the
// availability calendar and intake.
type BookingHandler struct {
	Service   *service.BookingService
	Validator *validator.CustomValidator
}

func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc, Validator: validator.NewCustomValidator()}
}

// ListVehicles returns the fleet; ?available=true narrows to vehicles that may
// be offered in the booking form.
func (h *BookingHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("available") == "true" {
		vehicles, err := h.Service.ListOfferableVehicles()
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, vehicles)
		return
	}
	vehicles, err := h.Service.ListVehicles()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vehicles)
}

// Availability returns the booked-date set for ?month=YYYY-MM, defaulting to
// the current month.
func (h *BookingHandler) Availability(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		month = time.Now().UTC().Format("2006-01")
	}
	resp, err := h.Service.Availability(month)
	if err != nil {
		respondError(w, apierrors.BadRequest("invalid month parameter"))
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req entities.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, apierrors.BadRequest("invalid request body"))
		return
	}
	if err := h.Validator.Validate(req); err != nil {
		respondError(w, err)
		return
	}

	resp, err := h.Service.CreateBooking(&req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, resp)
}

// GetBooking serves the confirmation lookup by reservation code.
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	res, err := h.Service.GetBookingByCode(code)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}
