package transcript

import (
	"errors"
	"fmt"
	"io"

	"github.com/travigo/stationmanager/pkg/ctdf"
)

// Printer renders registry outcomes as the human readable console transcript
type Printer struct {
	Out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{Out: out}
}

func (p *Printer) line(format string, args ...any) {
	fmt.Fprintf(p.Out, format+"\n", args...)
}

func (p *Printer) Title(title string) {
	p.line("=== %s ===\n", title)
}

func (p *Printer) Footer(title string) {
	p.line("\n=== %s ===", title)
}

func (p *Printer) Section(title string) {
	p.line("\n-- %s --", title)
}

func (p *Printer) StationCreated(station *ctdf.Station) {
	p.line("[Station created] %s (%s) at %s", station.PrimaryIdentifier, station.Type, station.Location)
}

func (p *Printer) VehicleCreated(vehicle *ctdf.Vehicle) {
	p.line("[Vehicle created] %s | route: %s | capacity: %d", vehicle.PrimaryIdentifier, vehicle.Route, vehicle.Capacity)

	if vehicle.IsExpress() {
		p.line("[ExpressBus created] %s | stops: %d", vehicle.PrimaryIdentifier, vehicle.StopsCount)
	}
}

func (p *Printer) PassengerCreated(passenger *ctdf.Passenger) {
	p.line("[Passenger created] %s (%s)", passenger.Name, passenger.PrimaryIdentifier)
}

func (p *Printer) Destroyed(entityType string, identifier string) {
	p.line("[%s destroyed] %s", entityType, identifier)
}

func (p *Printer) Booking(passenger *ctdf.Passenger, vehicleIdentifier string, err error) {
	if err == nil {
		p.line("[Booked] %s booked %s", passenger.Name, vehicleIdentifier)
		return
	}

	if reason := FormatBookingRejection(passenger, vehicleIdentifier, err); reason != "" {
		p.line("%s", reason)
	}
	p.line("[Booking failed] %s could not book %s", passenger.Name, vehicleIdentifier)
}

func (p *Printer) Cancellation(passenger *ctdf.Passenger, vehicleIdentifier string, err error) {
	if err == nil {
		p.line("[Cancelled] %s cancelled %s", passenger.Name, vehicleIdentifier)
		return
	}

	p.line("[Cancel failed] %s not on %s", passenger.Name, vehicleIdentifier)
}

func (p *Printer) ScheduleAdded(stationIdentifier string, vehicleIdentifier string, time string, isArrival bool, err error) {
	if errors.Is(err, ctdf.ErrScheduleLimitReached) {
		p.line("[Schedule limit reached] Station %s cannot accept more schedules.", stationIdentifier)
		return
	}
	if err != nil {
		p.line("[Schedule rejected] Station %s: %s", stationIdentifier, err)
		return
	}

	if vehicleIdentifier == "" {
		vehicleIdentifier = "null"
	}

	direction := ctdf.Schedule{IsArrival: isArrival}.Direction()
	p.line("[Schedule added] %s | Vehicle: %s | Time: %s at station %s", direction, vehicleIdentifier, time, stationIdentifier)
}

func (p *Printer) ScheduleRemoved(stationIdentifier string, vehicleIdentifier string, err error) {
	if err != nil {
		p.line("[Remove schedule] Vehicle %s not found at %s", vehicleIdentifier, stationIdentifier)
		return
	}

	p.line("[Schedule removed] Vehicle %s removed from %s", vehicleIdentifier, stationIdentifier)
}

func (p *Printer) StatusChanged(vehicle *ctdf.Vehicle) {
	p.line("[Status] %s is now %s", vehicle.PrimaryIdentifier, formatStatus(vehicle.OnTime))
}

func (p *Printer) AssignedStation(vehicleIdentifier string, station *ctdf.Station) {
	if station == nil {
		p.line("[Assigned station] %s has no station", vehicleIdentifier)
		return
	}

	p.line("[Assigned station] %s -> %s", vehicleIdentifier, station.PrimaryIdentifier)
}

func (p *Printer) TravelTimeHeader(distanceKm float64) {
	p.Section(fmt.Sprintf("Travel time comparison (distance %.2f km)", distanceKm))
}

func (p *Printer) TravelTime(vehicle *ctdf.Vehicle, hours float64) {
	p.line("%s", FormatTravelTime(vehicle, hours))
}

func (p *Printer) DisplayVehicle(vehicle *ctdf.Vehicle) {
	p.line("%s", FormatVehicle(vehicle))
}

func (p *Printer) DisplayPassenger(passenger *ctdf.Passenger) {
	p.line("%s", FormatPassenger(passenger))
}

func (p *Printer) DisplayStation(station *ctdf.Station, resolveRoute RouteResolver) {
	p.line("%s", FormatStation(station, resolveRoute))
}
