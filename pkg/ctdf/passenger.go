package ctdf

import (
	"golang.org/x/exp/slices"
)

type Passenger struct {
	PrimaryIdentifier string `groups:"basic"`
	Name              string `groups:"basic"`

	BookedVehicles []string `groups:"detailed"`
}

func NewPassenger(identifier string, name string) *Passenger {
	return &Passenger{
		PrimaryIdentifier: identifier,
		Name:              name,
	}
}

// BookRide lets the vehicle enforce capacity and duplicates, the passenger side is only
// updated once the vehicle has accepted the booking
func (p *Passenger) BookRide(vehicle *Vehicle) error {
	if vehicle == nil {
		return ErrNoVehicle
	}

	if err := vehicle.AddPassenger(p.PrimaryIdentifier); err != nil {
		return err
	}

	p.BookedVehicles = append(p.BookedVehicles, vehicle.PrimaryIdentifier)

	return nil
}

func (p *Passenger) CancelRide(vehicle *Vehicle) error {
	if vehicle == nil {
		return ErrNoVehicle
	}

	if err := vehicle.RemovePassenger(p.PrimaryIdentifier); err != nil {
		return err
	}

	if index := slices.Index(p.BookedVehicles, vehicle.PrimaryIdentifier); index != -1 {
		p.BookedVehicles = slices.Delete(p.BookedVehicles, index, index+1)
	}

	return nil
}

func (p *Passenger) HasBooking(vehicleRef string) bool {
	return slices.Contains(p.BookedVehicles, vehicleRef)
}
