package registry

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/travigo/stationmanager/pkg/ctdf"
)

// Registry owns every station, vehicle and passenger. Schedules and bookings only ever
// hold identifiers so there are no ownership cycles between the records.
type Registry struct {
	stations   map[string]*ctdf.Station
	vehicles   map[string]*ctdf.Vehicle
	passengers map[string]*ctdf.Passenger

	// creation order, used for snapshots and teardown
	created []Entity
}

type EntityType string

const (
	EntityTypeStation   EntityType = "Station"
	EntityTypeVehicle   EntityType = "Vehicle"
	EntityTypePassenger EntityType = "Passenger"
)

type Entity struct {
	Type       EntityType
	Identifier string
}

func New() *Registry {
	return &Registry{
		stations:   map[string]*ctdf.Station{},
		vehicles:   map[string]*ctdf.Vehicle{},
		passengers: map[string]*ctdf.Passenger{},
	}
}

func (r *Registry) AddStation(station *ctdf.Station) error {
	if err := r.checkIdentifier(station.PrimaryIdentifier, r.stations[station.PrimaryIdentifier] != nil); err != nil {
		return fmt.Errorf("station: %w", err)
	}

	r.stations[station.PrimaryIdentifier] = station
	r.created = append(r.created, Entity{Type: EntityTypeStation, Identifier: station.PrimaryIdentifier})

	log.Debug().
		Str("station", station.PrimaryIdentifier).
		Str("type", string(station.Type)).
		Msg("Registered station")

	return nil
}

func (r *Registry) AddVehicle(vehicle *ctdf.Vehicle) error {
	if err := r.checkIdentifier(vehicle.PrimaryIdentifier, r.vehicles[vehicle.PrimaryIdentifier] != nil); err != nil {
		return fmt.Errorf("vehicle: %w", err)
	}
	if vehicle.Capacity <= 0 {
		return fmt.Errorf("vehicle %s: %w", vehicle.PrimaryIdentifier, ctdf.ErrInvalidCapacity)
	}

	r.vehicles[vehicle.PrimaryIdentifier] = vehicle
	r.created = append(r.created, Entity{Type: EntityTypeVehicle, Identifier: vehicle.PrimaryIdentifier})

	log.Debug().
		Str("vehicle", vehicle.PrimaryIdentifier).
		Str("kind", string(vehicle.Kind)).
		Int("capacity", vehicle.Capacity).
		Msg("Registered vehicle")

	return nil
}

func (r *Registry) AddPassenger(passenger *ctdf.Passenger) error {
	if err := r.checkIdentifier(passenger.PrimaryIdentifier, r.passengers[passenger.PrimaryIdentifier] != nil); err != nil {
		return fmt.Errorf("passenger: %w", err)
	}

	r.passengers[passenger.PrimaryIdentifier] = passenger
	r.created = append(r.created, Entity{Type: EntityTypePassenger, Identifier: passenger.PrimaryIdentifier})

	log.Debug().Str("passenger", passenger.PrimaryIdentifier).Msg("Registered passenger")

	return nil
}

func (r *Registry) checkIdentifier(identifier string, exists bool) error {
	if identifier == "" {
		return ErrMissingIdentifier
	}
	if exists {
		return fmt.Errorf("%s %w", identifier, ErrDuplicateIdentifier)
	}

	return nil
}

func (r *Registry) GetStation(identifier string) (*ctdf.Station, error) {
	station := r.stations[identifier]
	if station == nil {
		return nil, ErrStationNotFound
	}

	return station, nil
}

func (r *Registry) GetVehicle(identifier string) (*ctdf.Vehicle, error) {
	vehicle := r.vehicles[identifier]
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}

	return vehicle, nil
}

func (r *Registry) GetPassenger(identifier string) (*ctdf.Passenger, error) {
	passenger := r.passengers[identifier]
	if passenger == nil {
		return nil, ErrPassengerNotFound
	}

	return passenger, nil
}

// GetAssignedStation follows the vehicle back-reference, nil when it has never been scheduled
func (r *Registry) GetAssignedStation(vehicleIdentifier string) (*ctdf.Station, error) {
	vehicle, err := r.GetVehicle(vehicleIdentifier)
	if err != nil {
		return nil, err
	}

	if vehicle.AssignedStationRef == "" {
		return nil, nil
	}

	return r.GetStation(vehicle.AssignedStationRef)
}

func (r *Registry) SetVehicleStatus(vehicleIdentifier string, onTime bool) error {
	vehicle, err := r.GetVehicle(vehicleIdentifier)
	if err != nil {
		return err
	}

	vehicle.SetStatus(onTime)

	log.Debug().Str("vehicle", vehicleIdentifier).Bool("ontime", onTime).Msg("Updated vehicle status")

	return nil
}

func (r *Registry) TravelTime(vehicleIdentifier string, distanceKm float64) (float64, error) {
	vehicle, err := r.GetVehicle(vehicleIdentifier)
	if err != nil {
		return ctdf.UndefinedTravelTime, err
	}

	return vehicle.CalculateTravelTime(distanceKm), nil
}

// Vehicles returns the registered vehicles in creation order
func (r *Registry) Vehicles() []*ctdf.Vehicle {
	var vehicles []*ctdf.Vehicle

	for _, entity := range r.created {
		if entity.Type == EntityTypeVehicle {
			vehicles = append(vehicles, r.vehicles[entity.Identifier])
		}
	}

	return vehicles
}

func (r *Registry) Stations() []*ctdf.Station {
	var stations []*ctdf.Station

	for _, entity := range r.created {
		if entity.Type == EntityTypeStation {
			stations = append(stations, r.stations[entity.Identifier])
		}
	}

	return stations
}

func (r *Registry) Passengers() []*ctdf.Passenger {
	var passengers []*ctdf.Passenger

	for _, entity := range r.created {
		if entity.Type == EntityTypePassenger {
			passengers = append(passengers, r.passengers[entity.Identifier])
		}
	}

	return passengers
}

// Teardown empties the registry and returns what was released, most recently created first
func (r *Registry) Teardown() []Entity {
	released := make([]Entity, 0, len(r.created))

	for i := len(r.created) - 1; i >= 0; i-- {
		released = append(released, r.created[i])
	}

	r.stations = map[string]*ctdf.Station{}
	r.vehicles = map[string]*ctdf.Vehicle{}
	r.passengers = map[string]*ctdf.Passenger{}
	r.created = nil

	log.Debug().Int("count", len(released)).Msg("Registry torn down")

	return released
}
