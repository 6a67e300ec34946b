package registry

import (
	"github.com/jinzhu/copier"
	"github.com/travigo/stationmanager/pkg/ctdf"
	"github.com/travigo/stationmanager/pkg/query"
)

type Snapshot struct {
	Stations   []*ctdf.Station   `groups:"basic,detailed"`
	Vehicles   []*ctdf.Vehicle   `groups:"basic,detailed"`
	Passengers []*ctdf.Passenger `groups:"basic,detailed"`
}

// Snapshot deep copies the current state so it can be rendered without holding on to live records
func (r *Registry) Snapshot() (*Snapshot, error) {
	snapshot := &Snapshot{}
	copyOptions := copier.Option{DeepCopy: true}

	for _, station := range r.Stations() {
		copied := &ctdf.Station{}
		if err := copier.CopyWithOption(copied, station, copyOptions); err != nil {
			return nil, err
		}
		snapshot.Stations = append(snapshot.Stations, copied)
	}

	for _, vehicle := range r.Vehicles() {
		copied := &ctdf.Vehicle{}
		if err := copier.CopyWithOption(copied, vehicle, copyOptions); err != nil {
			return nil, err
		}
		snapshot.Vehicles = append(snapshot.Vehicles, copied)
	}

	for _, passenger := range r.Passengers() {
		copied := &ctdf.Passenger{}
		if err := copier.CopyWithOption(copied, passenger, copyOptions); err != nil {
			return nil, err
		}
		snapshot.Passengers = append(snapshot.Passengers, copied)
	}

	return snapshot, nil
}

func (r *Registry) FindVehicles(vehicleQuery *query.Vehicle) ([]*ctdf.Vehicle, error) {
	if err := vehicleQuery.Compile(); err != nil {
		return nil, err
	}

	var matched []*ctdf.Vehicle

	for _, vehicle := range r.Vehicles() {
		isMatch, err := vehicleQuery.Match(vehicle)
		if err != nil {
			return nil, err
		}

		if isMatch {
			matched = append(matched, vehicle)
		}
	}

	return matched, nil
}
