package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	apierrors "rentaride/internal/errors"
	"rentaride/internal/service"
)

func respondJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logrus.WithError(err).Error("error encoding response")
		}
	}
}

// respondError maps service errors to HTTP status codes and writes a JSON
// error body.
func respondError(w http.ResponseWriter, err error) {
	var httpErr *apierrors.HTTPError
	if errors.As(err, &httpErr) {
		respondJSON(w, httpErr.Code, httpErr)
		return
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		respondJSON(w, http.StatusBadRequest, apierrors.BadRequest(validationErrs.Error()))
		return
	}

	switch {
	case errors.Is(err, service.ErrNotFound):
		respondJSON(w, http.StatusNotFound, apierrors.NotFound(err.Error()))
	case errors.Is(err, service.ErrNotPending),
		errors.Is(err, service.ErrVehicleInUse),
		errors.Is(err, service.ErrDateUnavailable),
		errors.Is(err, service.ErrVehicleUnavailable):
		respondJSON(w, http.StatusConflict, apierrors.Conflict(err.Error()))
	case errors.Is(err, service.ErrInvalidCredentials):
		respondJSON(w, http.StatusUnauthorized, apierrors.Unauthorized(err.Error()))
	default:
		logrus.WithError(err).Error("internal error")
		respondJSON(w, http.StatusInternalServerError, apierrors.Internal("internal server error"))
	}
}
