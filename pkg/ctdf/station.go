package ctdf

import (
	"golang.org/x/exp/slices"
)

// MaxSchedules is the number of schedule entries a single station can hold
const MaxSchedules = 10

type Station struct {
	PrimaryIdentifier string        `groups:"basic"`
	Location          string        `groups:"basic"`
	Type              TransportType `groups:"basic"`

	Schedules []Schedule `groups:"detailed"`
}

type Schedule struct {
	// Empty when the schedule has no vehicle attached
	VehicleRef string `groups:"basic,detailed"`
	Time       string `groups:"basic,detailed"`
	IsArrival  bool   `groups:"basic,detailed"`
}

func (s Schedule) HasVehicle() bool {
	return s.VehicleRef != ""
}

func (s Schedule) Direction() string {
	if s.IsArrival {
		return "Arrival"
	}

	return "Departure"
}

func NewStation(identifier string, location string, transportType TransportType) *Station {
	return &Station{
		PrimaryIdentifier: identifier,
		Location:          location,
		Type:              transportType,
	}
}

// AddSchedule accepts a nil vehicle. Times are free-form labels and are not validated
// against each other.
func (s *Station) AddSchedule(vehicle *Vehicle, time string, isArrival bool) error {
	if s.IsFull() {
		return ErrScheduleLimitReached
	}

	schedule := Schedule{
		Time:      time,
		IsArrival: isArrival,
	}

	if vehicle != nil {
		schedule.VehicleRef = vehicle.PrimaryIdentifier
		vehicle.AssignedStationRef = s.PrimaryIdentifier
	}

	s.Schedules = append(s.Schedules, schedule)

	return nil
}

// RemoveScheduleByVehicleID removes only the first matching schedule in insertion order
func (s *Station) RemoveScheduleByVehicleID(vehicleRef string) error {
	index := slices.IndexFunc(s.Schedules, func(schedule Schedule) bool {
		return schedule.HasVehicle() && schedule.VehicleRef == vehicleRef
	})

	if index == -1 {
		return ErrScheduleNotFound
	}

	s.Schedules = slices.Delete(s.Schedules, index, index+1)

	return nil
}

func (s *Station) IsFull() bool {
	return len(s.Schedules) >= MaxSchedules
}
