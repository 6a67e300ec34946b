package registry

import "errors"

var (
	ErrMissingIdentifier   = errors.New("identifier must not be empty")
	ErrDuplicateIdentifier = errors.New("identifier is already registered")

	ErrStationNotFound   = errors.New("could not find a matching Station")
	ErrVehicleNotFound   = errors.New("could not find a matching Vehicle")
	ErrPassengerNotFound = errors.New("could not find a matching Passenger")
)
