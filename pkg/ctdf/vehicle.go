package ctdf

import (
	"golang.org/x/exp/slices"
)

type VehicleKind string

const (
	VehicleKindStandard VehicleKind = "Standard"
	VehicleKindExpress  VehicleKind = "Express"
)

// UndefinedTravelTime is returned by CalculateTravelTime when the vehicle has no usable speed
const UndefinedTravelTime = -1.0

// ExpressTravelTimeFactor scales the base travel time of express vehicles (20% faster)
const ExpressTravelTimeFactor = 0.8

type Vehicle struct {
	PrimaryIdentifier string      `groups:"basic"`
	Kind              VehicleKind `groups:"basic"`

	Route    string  `groups:"basic"`
	Capacity int     `groups:"basic"`
	Speed    float64 `groups:"basic"`
	OnTime   bool    `groups:"basic"`

	// Only meaningful for VehicleKindExpress
	StopsCount int `groups:"basic"`

	BookedPassengers   []string `groups:"detailed"`
	AssignedStationRef string   `groups:"detailed"`
}

func NewVehicle(identifier string, route string, capacity int, speed float64) *Vehicle {
	return &Vehicle{
		PrimaryIdentifier: identifier,
		Kind:              VehicleKindStandard,
		Route:             route,
		Capacity:          capacity,
		Speed:             speed,
		OnTime:            true,
	}
}

func NewExpressVehicle(identifier string, route string, capacity int, speed float64, stopsCount int) *Vehicle {
	vehicle := NewVehicle(identifier, route, capacity, speed)
	vehicle.Kind = VehicleKindExpress
	vehicle.StopsCount = stopsCount

	return vehicle
}

func (v *Vehicle) IsExpress() bool {
	return v.Kind == VehicleKindExpress
}

// CalculateTravelTime returns the hours needed to cover distanceKm, or UndefinedTravelTime
func (v *Vehicle) CalculateTravelTime(distanceKm float64) float64 {
	if v.Speed <= 0 {
		return UndefinedTravelTime
	}

	baseTime := distanceKm / v.Speed

	switch v.Kind {
	case VehicleKindExpress:
		return baseTime * ExpressTravelTimeFactor
	default:
		return baseTime
	}
}

func (v *Vehicle) AddPassenger(passengerRef string) error {
	if len(v.BookedPassengers) >= v.Capacity {
		return ErrVehicleFull
	}

	if v.IsBooked(passengerRef) {
		return ErrAlreadyBooked
	}

	v.BookedPassengers = append(v.BookedPassengers, passengerRef)

	return nil
}

func (v *Vehicle) RemovePassenger(passengerRef string) error {
	index := slices.Index(v.BookedPassengers, passengerRef)
	if index == -1 {
		return ErrNotBooked
	}

	v.BookedPassengers = slices.Delete(v.BookedPassengers, index, index+1)

	return nil
}

func (v *Vehicle) IsBooked(passengerRef string) bool {
	return slices.Contains(v.BookedPassengers, passengerRef)
}

func (v *Vehicle) AvailableSeats() int {
	available := v.Capacity - len(v.BookedPassengers)
	if available < 0 {
		return 0
	}

	return available
}

func (v *Vehicle) SetStatus(onTime bool) {
	v.OnTime = onTime
}
