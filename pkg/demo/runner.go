package demo

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/travigo/stationmanager/pkg/fixtures"
	"github.com/travigo/stationmanager/pkg/registry"
	"github.com/travigo/stationmanager/pkg/transcript"
)

const defaultTitle = "Station Manager Demo"

type Runner struct {
	Registry *registry.Registry
	Printer  *transcript.Printer
}

func NewRunner(printer *transcript.Printer) *Runner {
	return &Runner{
		Registry: registry.New(),
		Printer:  printer,
	}
}

// Run plays the whole scenario and tears the registry down afterwards. The returned snapshot
// is the registry state just before teardown.
func (r *Runner) Run(scenario *fixtures.Scenario) (*registry.Snapshot, error) {
	if err := r.Setup(scenario); err != nil {
		return nil, err
	}

	snapshot, err := r.Registry.Snapshot()
	if err != nil {
		return nil, err
	}

	r.Teardown()

	r.Printer.Footer("Demo complete")

	return snapshot, nil
}

// Setup registers the scenario entities and plays its steps but leaves the registry populated
func (r *Runner) Setup(scenario *fixtures.Scenario) error {
	title := scenario.Title
	if title == "" {
		title = defaultTitle
	}
	r.Printer.Title(title)

	if err := r.createEntities(scenario); err != nil {
		return err
	}

	for i, step := range scenario.Steps {
		if err := r.runStep(step); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}

	return nil
}

func (r *Runner) Teardown() {
	r.Printer.Section("Teardown")

	for _, entity := range r.Registry.Teardown() {
		r.Printer.Destroyed(string(entity.Type), entity.Identifier)
	}
}

func (r *Runner) createEntities(scenario *fixtures.Scenario) error {
	for _, record := range scenario.Stations {
		station := record.ToCTDF()
		if err := r.Registry.AddStation(station); err != nil {
			return err
		}
		r.Printer.StationCreated(station)
	}

	for _, record := range scenario.Vehicles {
		vehicle, err := record.ToCTDF()
		if err != nil {
			return err
		}
		if err := r.Registry.AddVehicle(vehicle); err != nil {
			return err
		}
		r.Printer.VehicleCreated(vehicle)
	}

	for _, record := range scenario.Passengers {
		passenger := record.ToCTDF()
		if err := r.Registry.AddPassenger(passenger); err != nil {
			return err
		}
		r.Printer.PassengerCreated(passenger)
	}

	return nil
}

func (r *Runner) runStep(step fixtures.Step) error {
	switch {
	case step.Section != "":
		r.Printer.Section(step.Section)
	case step.AddSchedule != nil:
		return r.addSchedule(step.AddSchedule)
	case step.RemoveSchedule != nil:
		err := r.Registry.RemoveScheduleByVehicleID(step.RemoveSchedule.Station, step.RemoveSchedule.Vehicle)
		r.Printer.ScheduleRemoved(step.RemoveSchedule.Station, step.RemoveSchedule.Vehicle, err)
	case step.Book != nil:
		passenger, err := r.Registry.GetPassenger(step.Book.Passenger)
		if err != nil {
			return err
		}
		r.Printer.Booking(passenger, step.Book.Vehicle, r.Registry.BookRide(step.Book.Passenger, step.Book.Vehicle))
	case step.Cancel != nil:
		passenger, err := r.Registry.GetPassenger(step.Cancel.Passenger)
		if err != nil {
			return err
		}
		r.Printer.Cancellation(passenger, step.Cancel.Vehicle, r.Registry.CancelRide(step.Cancel.Passenger, step.Cancel.Vehicle))
	case step.SetStatus != nil:
		if err := r.Registry.SetVehicleStatus(step.SetStatus.Vehicle, step.SetStatus.OnTime); err != nil {
			return err
		}
		vehicle, _ := r.Registry.GetVehicle(step.SetStatus.Vehicle)
		r.Printer.StatusChanged(vehicle)
	case step.TravelTime != nil:
		return r.travelTime(step.TravelTime)
	case step.AssignedStation != "":
		station, err := r.Registry.GetAssignedStation(step.AssignedStation)
		if err != nil {
			return err
		}
		r.Printer.AssignedStation(step.AssignedStation, station)
	case step.DisplayStation != "":
		station, err := r.Registry.GetStation(step.DisplayStation)
		if err != nil {
			return err
		}
		r.Printer.DisplayStation(station, r.Registry.ScheduleRoute)
	case step.DisplayVehicle != "":
		vehicle, err := r.Registry.GetVehicle(step.DisplayVehicle)
		if err != nil {
			return err
		}
		r.Printer.DisplayVehicle(vehicle)
	case step.DisplayPassenger != "":
		passenger, err := r.Registry.GetPassenger(step.DisplayPassenger)
		if err != nil {
			return err
		}
		r.Printer.DisplayPassenger(passenger)
	default:
		return fixtures.ErrInvalidStep
	}

	return nil
}

func (r *Runner) addSchedule(step *fixtures.AddScheduleStep) error {
	times, err := step.Times()
	if err != nil {
		return err
	}

	for _, scheduleTime := range times {
		err := r.Registry.AddSchedule(step.Station, step.Vehicle, scheduleTime, step.Arrival)
		r.Printer.ScheduleAdded(step.Station, step.Vehicle, scheduleTime, step.Arrival, err)

		if err != nil {
			log.Debug().Err(err).Str("station", step.Station).Str("time", scheduleTime).Msg("Schedule not added")
		}
	}

	return nil
}

func (r *Runner) travelTime(step *fixtures.TravelTimeStep) error {
	r.Printer.TravelTimeHeader(step.Distance)

	for _, vehicleIdentifier := range step.Vehicles {
		hours, err := r.Registry.TravelTime(vehicleIdentifier, step.Distance)
		if err != nil {
			return err
		}

		vehicle, _ := r.Registry.GetVehicle(vehicleIdentifier)
		r.Printer.TravelTime(vehicle, hours)
	}

	return nil
}
