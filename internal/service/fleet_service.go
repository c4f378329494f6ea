package service

import (
	"errors"
	"fmt"

	"rentaride/internal/db"
	"rentaride/internal/repository"
)

// FleetService manages the vehicle registry on the admin side.
type FleetService struct {
	vehicles     VehicleStore
	reservations ReservationStore
}

func NewFleetService(vehicles VehicleStore, reservations ReservationStore) *FleetService {
	return &FleetService{vehicles: vehicles, reservations: reservations}
}

// ListVehicles filters by availability (all|available|unavailable) and an
// optional case-insensitive search over name, fuel type and description.
func (s *FleetService) ListVehicles(availability, search string) ([]db.Vehicle, error) {
	switch availability {
	case "", "all":
		availability = ""
	case "available", "unavailable":
	default:
		return nil, fmt.Errorf("unknown availability filter %q", availability)
	}
	return s.vehicles.List(availability, search)
}

func (s *FleetService) GetVehicle(id int) (*db.Vehicle, error) {
	v, err := s.vehicles.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *FleetService) CreateVehicle(v *db.Vehicle) error {
	if v.Features == nil {
		v.Features = []string{}
	}
	return s.vehicles.Create(v)
}

func (s *FleetService) UpdateVehicle(v *db.Vehicle) error {
	if v.Features == nil {
		v.Features = []string{}
	}
	err := s.vehicles.Update(v)
	if errors.Is(err, repository.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// DeleteVehicle refuses to delete a vehicle that any reservation references.
// Reservations are never deleted, so allowing the delete would orphan them.
func (s *FleetService) DeleteVehicle(id int) error {
	n, err := s.reservations.CountByVehicle(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrVehicleInUse
	}
	err = s.vehicles.Delete(id)
	if errors.Is(err, repository.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
