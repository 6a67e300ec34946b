package registry

import (
	"github.com/rs/zerolog/log"
	"github.com/travigo/stationmanager/pkg/ctdf"
)

// AddSchedule attaches a schedule to a station. An empty vehicleIdentifier adds a schedule with
// no vehicle, an unknown one fails before the station is touched.
func (r *Registry) AddSchedule(stationIdentifier string, vehicleIdentifier string, time string, isArrival bool) error {
	station, err := r.GetStation(stationIdentifier)
	if err != nil {
		return err
	}

	var vehicle *ctdf.Vehicle
	if vehicleIdentifier != "" {
		vehicle, err = r.GetVehicle(vehicleIdentifier)
		if err != nil {
			return err
		}
	}

	if err := station.AddSchedule(vehicle, time, isArrival); err != nil {
		log.Debug().Err(err).Str("station", stationIdentifier).Msg("Schedule rejected")
		return err
	}

	log.Debug().
		Str("station", stationIdentifier).
		Str("vehicle", vehicleIdentifier).
		Str("time", time).
		Bool("arrival", isArrival).
		Int("schedules", len(station.Schedules)).
		Msg("Added schedule")

	return nil
}

func (r *Registry) RemoveScheduleByVehicleID(stationIdentifier string, vehicleIdentifier string) error {
	station, err := r.GetStation(stationIdentifier)
	if err != nil {
		return err
	}

	if err := station.RemoveScheduleByVehicleID(vehicleIdentifier); err != nil {
		return err
	}

	log.Debug().
		Str("station", stationIdentifier).
		Str("vehicle", vehicleIdentifier).
		Int("schedules", len(station.Schedules)).
		Msg("Removed schedule")

	return nil
}

// ScheduleRoute resolves the route label for display, empty when there is no vehicle
func (r *Registry) ScheduleRoute(schedule ctdf.Schedule) string {
	if !schedule.HasVehicle() {
		return ""
	}

	vehicle, err := r.GetVehicle(schedule.VehicleRef)
	if err != nil {
		return ""
	}

	return vehicle.Route
}
