package registry

import (
	"github.com/rs/zerolog/log"
	"github.com/travigo/stationmanager/pkg/ctdf"
)

func (r *Registry) lookupBooking(passengerIdentifier string, vehicleIdentifier string) (*ctdf.Passenger, *ctdf.Vehicle, error) {
	passenger, err := r.GetPassenger(passengerIdentifier)
	if err != nil {
		return nil, nil, err
	}

	vehicle, err := r.GetVehicle(vehicleIdentifier)
	if err != nil {
		return nil, nil, err
	}

	return passenger, vehicle, nil
}

func (r *Registry) BookRide(passengerIdentifier string, vehicleIdentifier string) error {
	passenger, vehicle, err := r.lookupBooking(passengerIdentifier, vehicleIdentifier)
	if err != nil {
		return err
	}

	if err := passenger.BookRide(vehicle); err != nil {
		log.Debug().Err(err).
			Str("passenger", passengerIdentifier).
			Str("vehicle", vehicleIdentifier).
			Msg("Booking rejected")
		return err
	}

	log.Debug().
		Str("passenger", passengerIdentifier).
		Str("vehicle", vehicleIdentifier).
		Int("booked", len(vehicle.BookedPassengers)).
		Msg("Booked ride")

	return nil
}

func (r *Registry) CancelRide(passengerIdentifier string, vehicleIdentifier string) error {
	passenger, vehicle, err := r.lookupBooking(passengerIdentifier, vehicleIdentifier)
	if err != nil {
		return err
	}

	if err := passenger.CancelRide(vehicle); err != nil {
		log.Debug().Err(err).
			Str("passenger", passengerIdentifier).
			Str("vehicle", vehicleIdentifier).
			Msg("Cancellation rejected")
		return err
	}

	log.Debug().
		Str("passenger", passengerIdentifier).
		Str("vehicle", vehicleIdentifier).
		Msg("Cancelled ride")

	return nil
}
