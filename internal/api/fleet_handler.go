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

// FleetHandler manages the vehicle registry on the admin side.
type FleetHandler struct {
	Service *service.FleetService
}

func NewFleetHandler(svc *service.FleetService) *FleetHandler {
	return &FleetHandler{Service: svc}
}

// ListVehicles accepts ?availability=all|available|unavailable and ?q=.
func (h *FleetHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	availability := r.URL.Query().Get("availability")
	search := r.URL.Query().Get("q")

	vehicles, err := h.Service.ListVehicles(availability, search)
	if err != nil {
		respondError(w, apierrors.BadRequest(err.Error()))
		return
	}
	respondJSON(w, http.StatusOK, vehicles)
}

func (h *FleetHandler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, apierrors.BadRequest("invalid vehicle id"))
		return
	}
	v, err := h.Service.GetVehicle(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, v)
}

func (h *FleetHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var v db.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		respondError(w, apierrors.BadRequest("invalid request body"))
		return
	}
	if v.Name == "" {
		respondError(w, apierrors.BadRequest("vehicle name is required"))
		return
	}
	if err := h.Service.CreateVehicle(&v); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, v)
}

func (h *FleetHandler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, apierrors.BadRequest("invalid vehicle id"))
		return
	}
	var v db.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		respondError(w, apierrors.BadRequest("invalid request body"))
		return
	}
	v.ID = id
	if err := h.Service.UpdateVehicle(&v); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, v)
}

// DeleteVehicle is refused with a conflict while reservations reference the
// vehicle.
func (h *FleetHandler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, apierrors.BadRequest("invalid vehicle id"))
		return
	}
	if err := h.Service.DeleteVehicle(id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, MessageResponse{Message: "Vehicle deleted"})
}
