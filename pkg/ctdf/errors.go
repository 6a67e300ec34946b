package ctdf

import "errors"

var (
	ErrNoVehicle       = errors.New("no vehicle given")
	ErrVehicleFull     = errors.New("vehicle is at capacity")
	ErrAlreadyBooked   = errors.New("passenger is already booked on vehicle")
	ErrNotBooked       = errors.New("passenger is not booked on vehicle")
	ErrInvalidCapacity = errors.New("vehicle capacity must be positive")

	ErrScheduleLimitReached = errors.New("station schedule limit reached")
	ErrScheduleNotFound     = errors.New("no schedule found for vehicle")
)
