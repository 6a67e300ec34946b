package fixtures

import (
	"errors"
	"fmt"

	"github.com/travigo/stationmanager/pkg/ctdf"
)

type Scenario struct {
	Title string `yaml:"title"`

	Stations   []StationRecord   `yaml:"stations"`
	Vehicles   []VehicleRecord   `yaml:"vehicles"`
	Passengers []PassengerRecord `yaml:"passengers"`

	Steps []Step `yaml:"steps"`
}

type StationRecord struct {
	Identifier string `yaml:"identifier"`
	Location   string `yaml:"location"`
	Type       string `yaml:"type"`
}

func (s StationRecord) ToCTDF() *ctdf.Station {
	return ctdf.NewStation(s.Identifier, s.Location, ctdf.ParseTransportType(s.Type))
}

type VehicleRecord struct {
	Identifier string  `yaml:"identifier"`
	Kind       string  `yaml:"kind"`
	Route      string  `yaml:"route"`
	Capacity   int     `yaml:"capacity"`
	Speed      float64 `yaml:"speed"`
	Stops      int     `yaml:"stops"`
	Delayed    bool    `yaml:"delayed"`
}

func (v VehicleRecord) ToCTDF() (*ctdf.Vehicle, error) {
	var vehicle *ctdf.Vehicle

	switch ctdf.VehicleKind(v.Kind) {
	case "", ctdf.VehicleKindStandard:
		vehicle = ctdf.NewVehicle(v.Identifier, v.Route, v.Capacity, v.Speed)
	case ctdf.VehicleKindExpress:
		vehicle = ctdf.NewExpressVehicle(v.Identifier, v.Route, v.Capacity, v.Speed, v.Stops)
	default:
		return nil, fmt.Errorf("vehicle %s: unknown kind %q", v.Identifier, v.Kind)
	}

	vehicle.SetStatus(!v.Delayed)

	return vehicle, nil
}

type PassengerRecord struct {
	Identifier string `yaml:"identifier"`
	Name       string `yaml:"name"`
}

func (p PassengerRecord) ToCTDF() *ctdf.Passenger {
	return ctdf.NewPassenger(p.Identifier, p.Name)
}

// Step is one scripted action, exactly one of the fields is set
type Step struct {
	Section string `yaml:"section"`

	AddSchedule    *AddScheduleStep    `yaml:"add_schedule"`
	RemoveSchedule *RemoveScheduleStep `yaml:"remove_schedule"`

	Book   *BookingStep `yaml:"book"`
	Cancel *BookingStep `yaml:"cancel"`

	SetStatus  *StatusStep     `yaml:"set_status"`
	TravelTime *TravelTimeStep `yaml:"travel_time"`

	AssignedStation  string `yaml:"assigned_station"`
	DisplayStation   string `yaml:"display_station"`
	DisplayVehicle   string `yaml:"display_vehicle"`
	DisplayPassenger string `yaml:"display_passenger"`
}

type AddScheduleStep struct {
	Station string `yaml:"station"`
	// Empty adds a schedule without a vehicle
	Vehicle string `yaml:"vehicle"`
	Time    string `yaml:"time"`
	Arrival bool   `yaml:"arrival"`

	Repeat   int    `yaml:"repeat"`
	Interval string `yaml:"interval"`
}

type RemoveScheduleStep struct {
	Station string `yaml:"station"`
	Vehicle string `yaml:"vehicle"`
}

type BookingStep struct {
	Passenger string `yaml:"passenger"`
	Vehicle   string `yaml:"vehicle"`
}

type StatusStep struct {
	Vehicle string `yaml:"vehicle"`
	OnTime  bool   `yaml:"ontime"`
}

type TravelTimeStep struct {
	Distance float64  `yaml:"distance"`
	Vehicles []string `yaml:"vehicles"`
}

var ErrInvalidStep = errors.New("step must set exactly one action")

func (s Step) actionCount() int {
	count := 0

	for _, set := range []bool{
		s.Section != "",
		s.AddSchedule != nil,
		s.RemoveSchedule != nil,
		s.Book != nil,
		s.Cancel != nil,
		s.SetStatus != nil,
		s.TravelTime != nil,
		s.AssignedStation != "",
		s.DisplayStation != "",
		s.DisplayVehicle != "",
		s.DisplayPassenger != "",
	} {
		if set {
			count++
		}
	}

	return count
}

func (s *Scenario) Validate() error {
	for i, step := range s.Steps {
		if step.actionCount() != 1 {
			return fmt.Errorf("step %d: %w", i+1, ErrInvalidStep)
		}

		if step.AddSchedule != nil {
			if _, err := step.AddSchedule.Times(); err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
		}
	}

	for _, vehicle := range s.Vehicles {
		if _, err := vehicle.ToCTDF(); err != nil {
			return err
		}
	}

	return nil
}
