package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/travigo/stationmanager/pkg/ctdf"
)

// Vehicle filters vehicles with a boolean expression, eg. `Kind == "Express" && Available > 0`
type Vehicle struct {
	Expression string

	program *vm.Program
}

type vehicleEnv struct {
	Identifier string
	Kind       string
	Route      string
	Capacity   int
	Booked     int
	Available  int
	Speed      float64
	OnTime     bool
	Stops      int
	Station    string
}

func newVehicleEnv(vehicle *ctdf.Vehicle) vehicleEnv {
	return vehicleEnv{
		Identifier: vehicle.PrimaryIdentifier,
		Kind:       string(vehicle.Kind),
		Route:      vehicle.Route,
		Capacity:   vehicle.Capacity,
		Booked:     len(vehicle.BookedPassengers),
		Available:  vehicle.AvailableSeats(),
		Speed:      vehicle.Speed,
		OnTime:     vehicle.OnTime,
		Stops:      vehicle.StopsCount,
		Station:    vehicle.AssignedStationRef,
	}
}

func (q *Vehicle) Compile() error {
	if q.Expression == "" {
		q.program = nil
		return nil
	}

	program, err := expr.Compile(q.Expression, expr.Env(vehicleEnv{}), expr.AsBool())
	if err != nil {
		return fmt.Errorf("invalid vehicle query: %w", err)
	}

	q.program = program

	return nil
}

// Match compiles lazily, an empty expression matches every vehicle
func (q *Vehicle) Match(vehicle *ctdf.Vehicle) (bool, error) {
	if q.Expression == "" {
		return true, nil
	}

	if q.program == nil {
		if err := q.Compile(); err != nil {
			return false, err
		}
	}

	output, err := expr.Run(q.program, newVehicleEnv(vehicle))
	if err != nil {
		return false, err
	}

	return output.(bool), nil
}
