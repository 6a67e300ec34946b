package transcript

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/travigo/stationmanager/pkg/ctdf"
)

func formatSpeed(speed float64) string {
	return strconv.FormatFloat(speed, 'f', -1, 64)
}

func formatStatus(onTime bool) string {
	if onTime {
		return "On-time"
	}

	return "Delayed"
}

func FormatVehicle(vehicle *ctdf.Vehicle) string {
	line := fmt.Sprintf("Vehicle ID: %s | Route: %s | Capacity: %d | Booked: %d | Speed: %s km/h | Status: %s",
		vehicle.PrimaryIdentifier,
		vehicle.Route,
		vehicle.Capacity,
		len(vehicle.BookedPassengers),
		formatSpeed(vehicle.Speed),
		formatStatus(vehicle.OnTime),
	)

	if vehicle.IsExpress() {
		return fmt.Sprintf("Express %s\n   (stops: %d)", line, vehicle.StopsCount)
	}

	return line
}

func FormatPassenger(passenger *ctdf.Passenger) string {
	booked := "none"
	if len(passenger.BookedVehicles) > 0 {
		booked = strings.Join(passenger.BookedVehicles, ", ")
	}

	return fmt.Sprintf("Passenger: %s (ID: %s) | Booked: %s", passenger.Name, passenger.PrimaryIdentifier, booked)
}

// RouteResolver maps a schedule to its vehicle route, empty if it has none
type RouteResolver func(ctdf.Schedule) string

func FormatStation(station *ctdf.Station, resolveRoute RouteResolver) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "Station: %s | Location: %s | Type: %s", station.PrimaryIdentifier, station.Location, station.Type)

	if len(station.Schedules) == 0 {
		builder.WriteString("\n  No schedules.")
		return builder.String()
	}

	for i, schedule := range station.Schedules {
		vehicle := "null"
		route := "N/A"

		if schedule.HasVehicle() {
			vehicle = schedule.VehicleRef
			if resolved := resolveRoute(schedule); resolved != "" {
				route = resolved
			}
		}

		fmt.Fprintf(&builder, "\n  [%d] %s | Vehicle: %s | Route: %s | Time: %s", i+1, schedule.Direction(), vehicle, route, schedule.Time)
	}

	return builder.String()
}

func FormatTravelTime(vehicle *ctdf.Vehicle, hours float64) string {
	if hours == ctdf.UndefinedTravelTime {
		return fmt.Sprintf("%s time (hrs): undefined (speed %s km/h)", vehicle.PrimaryIdentifier, formatSpeed(vehicle.Speed))
	}

	line := fmt.Sprintf("%s time (hrs): %.2f", vehicle.PrimaryIdentifier, hours)
	if vehicle.IsExpress() {
		line += " (20% faster)"
	}

	return line
}

// FormatBookingRejection explains why the vehicle refused a booking
func FormatBookingRejection(passenger *ctdf.Passenger, vehicleIdentifier string, err error) string {
	switch {
	case errors.Is(err, ctdf.ErrVehicleFull):
		return fmt.Sprintf("[Vehicle full] %s cannot accept passenger %s", vehicleIdentifier, passenger.Name)
	case errors.Is(err, ctdf.ErrAlreadyBooked):
		return fmt.Sprintf("[Already booked] %s already on %s", passenger.Name, vehicleIdentifier)
	default:
		return ""
	}
}
