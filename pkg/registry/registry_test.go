package registry

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/stationmanager/pkg/ctdf"
	"github.com/travigo/stationmanager/pkg/query"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()

	r := New()

	require.NoError(t, r.AddStation(ctdf.NewStation("Downtown Bus Hub", "12 Main St", ctdf.TransportTypeBus)))
	require.NoError(t, r.AddStation(ctdf.NewStation("Central Train", "1 Station Rd", ctdf.TransportTypeTrain)))

	require.NoError(t, r.AddVehicle(ctdf.NewVehicle("BUS101", "A->B", 2, 45)))
	require.NoError(t, r.AddVehicle(ctdf.NewVehicle("BUS202", "C->D", 3, 50)))
	require.NoError(t, r.AddVehicle(ctdf.NewExpressVehicle("EXP301", "X->Y Express", 4, 80, 3)))

	require.NoError(t, r.AddPassenger(ctdf.NewPassenger("P100", "Alice")))
	require.NoError(t, r.AddPassenger(ctdf.NewPassenger("P101", "Bob")))
	require.NoError(t, r.AddPassenger(ctdf.NewPassenger("P102", "Carol")))

	return r
}

func TestRegistryRejectsBadRecords(t *testing.T) {
	r := newTestRegistry(t)

	assert.ErrorIs(t, r.AddVehicle(ctdf.NewVehicle("BUS101", "Z", 1, 10)), ErrDuplicateIdentifier)
	assert.ErrorIs(t, r.AddVehicle(ctdf.NewVehicle("", "Z", 1, 10)), ErrMissingIdentifier)
	assert.ErrorIs(t, r.AddVehicle(ctdf.NewVehicle("BUS999", "Z", 0, 10)), ctdf.ErrInvalidCapacity)
	assert.ErrorIs(t, r.AddStation(ctdf.NewStation("Central Train", "", ctdf.TransportTypeTrain)), ErrDuplicateIdentifier)
	assert.ErrorIs(t, r.AddPassenger(ctdf.NewPassenger("P100", "Alice Again")), ErrDuplicateIdentifier)

	assert.Len(t, r.Vehicles(), 3)
	assert.Len(t, r.Stations(), 2)
	assert.Len(t, r.Passengers(), 3)
}

func TestRegistryLookups(t *testing.T) {
	r := newTestRegistry(t)

	_, err := r.GetVehicle("NOPE")
	assert.ErrorIs(t, err, ErrVehicleNotFound)

	_, err = r.GetStation("NOPE")
	assert.ErrorIs(t, err, ErrStationNotFound)

	_, err = r.GetPassenger("NOPE")
	assert.ErrorIs(t, err, ErrPassengerNotFound)

	vehicle, err := r.GetVehicle("EXP301")
	require.NoError(t, err)
	assert.True(t, vehicle.IsExpress())
}

func TestRegistryBookingScenario(t *testing.T) {
	r := newTestRegistry(t)

	require.NoError(t, r.BookRide("P100", "BUS101"))
	require.NoError(t, r.BookRide("P101", "BUS101"))
	assert.ErrorIs(t, r.BookRide("P102", "BUS101"), ctdf.ErrVehicleFull)

	vehicle, _ := r.GetVehicle("BUS101")
	assert.Len(t, vehicle.BookedPassengers, 2)

	require.NoError(t, r.CancelRide("P101", "BUS101"))
	require.NoError(t, r.BookRide("P102", "BUS101"))
	assert.Equal(t, []string{"P100", "P102"}, vehicle.BookedPassengers)

	assert.ErrorIs(t, r.CancelRide("P101", "BUS101"), ctdf.ErrNotBooked)
	assert.ErrorIs(t, r.BookRide("P100", "NOPE"), ErrVehicleNotFound)
	assert.ErrorIs(t, r.BookRide("NOPE", "BUS101"), ErrPassengerNotFound)
}

func TestRegistryBookingViewsStayInSync(t *testing.T) {
	r := newTestRegistry(t)
	vehicleIdentifiers := []string{"BUS101", "BUS202", "EXP301"}
	passengerIdentifiers := []string{"P100", "P101", "P102"}

	for i := 0; i < 40; i++ {
		passengerIdentifier := passengerIdentifiers[i%3]
		vehicleIdentifier := vehicleIdentifiers[(i/3)%3]

		if i%4 == 3 {
			r.CancelRide(passengerIdentifier, vehicleIdentifier)
		} else {
			r.BookRide(passengerIdentifier, vehicleIdentifier)
		}
	}

	for _, vehicle := range r.Vehicles() {
		assert.LessOrEqual(t, len(vehicle.BookedPassengers), vehicle.Capacity)

		for _, passengerIdentifier := range vehicle.BookedPassengers {
			passenger, err := r.GetPassenger(passengerIdentifier)
			require.NoError(t, err)
			assert.True(t, passenger.HasBooking(vehicle.PrimaryIdentifier))
		}
	}

	for _, passenger := range r.Passengers() {
		for _, vehicleIdentifier := range passenger.BookedVehicles {
			vehicle, err := r.GetVehicle(vehicleIdentifier)
			require.NoError(t, err)
			assert.True(t, vehicle.IsBooked(passenger.PrimaryIdentifier))
		}
	}
}

func TestRegistrySchedules(t *testing.T) {
	r := newTestRegistry(t)

	for i := 0; i < ctdf.MaxSchedules; i++ {
		require.NoError(t, r.AddSchedule("Downtown Bus Hub", "BUS101", fmt.Sprintf("08:%02d", 10+i), false))
	}
	assert.ErrorIs(t, r.AddSchedule("Downtown Bus Hub", "BUS202", "11:30", true), ctdf.ErrScheduleLimitReached)

	station, _ := r.GetStation("Downtown Bus Hub")
	assert.Len(t, station.Schedules, ctdf.MaxSchedules)

	require.NoError(t, r.RemoveScheduleByVehicleID("Downtown Bus Hub", "BUS101"))
	assert.Len(t, station.Schedules, ctdf.MaxSchedules-1)
	assert.Equal(t, "08:11", station.Schedules[0].Time)

	assert.ErrorIs(t, r.RemoveScheduleByVehicleID("Downtown Bus Hub", "EXP301"), ctdf.ErrScheduleNotFound)
	assert.ErrorIs(t, r.RemoveScheduleByVehicleID("NOPE", "BUS101"), ErrStationNotFound)
}

func TestRegistryAddScheduleUnknownVehicle(t *testing.T) {
	r := newTestRegistry(t)

	assert.ErrorIs(t, r.AddSchedule("Central Train", "NOPE", "09:45", true), ErrVehicleNotFound)

	station, _ := r.GetStation("Central Train")
	assert.Empty(t, station.Schedules)

	require.NoError(t, r.AddSchedule("Central Train", "", "10:00", false))
	require.Len(t, station.Schedules, 1)
	assert.Equal(t, "", r.ScheduleRoute(station.Schedules[0]))
}

func TestRegistryAssignedStation(t *testing.T) {
	r := newTestRegistry(t)

	station, err := r.GetAssignedStation("EXP301")
	require.NoError(t, err)
	assert.Nil(t, station)

	require.NoError(t, r.AddSchedule("Downtown Bus Hub", "EXP301", "09:00", false))
	require.NoError(t, r.AddSchedule("Central Train", "EXP301", "09:45", true))

	station, err = r.GetAssignedStation("EXP301")
	require.NoError(t, err)
	assert.Equal(t, "Central Train", station.PrimaryIdentifier)

	// the first station keeps its schedule entry
	busStation, _ := r.GetStation("Downtown Bus Hub")
	assert.Len(t, busStation.Schedules, 1)
	assert.Equal(t, "X->Y Express", r.ScheduleRoute(busStation.Schedules[0]))

	_, err = r.GetAssignedStation("NOPE")
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestRegistryTravelTimeAndStatus(t *testing.T) {
	r := newTestRegistry(t)

	hours, err := r.TravelTime("BUS202", 120)
	require.NoError(t, err)
	assert.InDelta(t, 2.4, hours, 1e-9)

	hours, err = r.TravelTime("EXP301", 120)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, hours, 1e-9)

	_, err = r.TravelTime("NOPE", 120)
	assert.ErrorIs(t, err, ErrVehicleNotFound)

	require.NoError(t, r.SetVehicleStatus("BUS202", false))
	vehicle, _ := r.GetVehicle("BUS202")
	assert.False(t, vehicle.OnTime)
}

func TestRegistrySnapshotIsDeepCopy(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.BookRide("P100", "BUS101"))
	require.NoError(t, r.AddSchedule("Central Train", "EXP301", "09:45", true))

	snapshot, err := r.Snapshot()
	require.NoError(t, err)

	require.Len(t, snapshot.Vehicles, 3)
	assert.Equal(t, "BUS101", snapshot.Vehicles[0].PrimaryIdentifier)
	assert.Equal(t, []string{"P100"}, snapshot.Vehicles[0].BookedPassengers)
	assert.Equal(t, "Central Train", snapshot.Vehicles[2].AssignedStationRef)
	require.Len(t, snapshot.Stations, 2)
	assert.Len(t, snapshot.Stations[1].Schedules, 1)

	snapshot.Vehicles[0].BookedPassengers[0] = "CHANGED"
	snapshot.Stations[1].Schedules[0].Time = "CHANGED"

	vehicle, _ := r.GetVehicle("BUS101")
	assert.Equal(t, []string{"P100"}, vehicle.BookedPassengers)
	station, _ := r.GetStation("Central Train")
	assert.Equal(t, "09:45", station.Schedules[0].Time)
}

func TestRegistryFindVehicles(t *testing.T) {
	r := newTestRegistry(t)

	vehicles, err := r.FindVehicles(&query.Vehicle{Expression: `Kind == "Express"`})
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Equal(t, "EXP301", vehicles[0].PrimaryIdentifier)

	vehicles, err = r.FindVehicles(&query.Vehicle{})
	require.NoError(t, err)
	assert.Len(t, vehicles, 3)

	_, err = r.FindVehicles(&query.Vehicle{Expression: `Nope ==`})
	assert.Error(t, err)
}

func TestRegistryTeardown(t *testing.T) {
	r := newTestRegistry(t)

	released := r.Teardown()

	require.Len(t, released, 8)
	assert.Equal(t, Entity{Type: EntityTypePassenger, Identifier: "P102"}, released[0])
	assert.Equal(t, Entity{Type: EntityTypeStation, Identifier: "Downtown Bus Hub"}, released[7])

	assert.Empty(t, r.Vehicles())
	_, err := r.GetStation("Central Train")
	assert.ErrorIs(t, err, ErrStationNotFound)
}
