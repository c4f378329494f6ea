package service

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrNotPending         = errors.New("reservation is no longer pending")
	ErrVehicleUnavailable = errors.New("vehicle is not available for booking")
	ErrDateUnavailable    = errors.New("date is not available")
	ErrVehicleInUse       = errors.New("vehicle has existing reservations")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
