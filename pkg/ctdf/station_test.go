package ctdf

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStationScheduleLimit(t *testing.T) {
	station := NewStation("Downtown Bus Hub", "12 Main St", TransportTypeBus)
	v1 := NewVehicle("BUS101", "A->B", 2, 45)
	v2 := NewVehicle("BUS202", "C->D", 3, 50)

	for i := 0; i < MaxSchedules; i++ {
		require.NoError(t, station.AddSchedule(v1, fmt.Sprintf("08:%02d", 10+i), false))
	}

	assert.ErrorIs(t, station.AddSchedule(v2, "11:30", true), ErrScheduleLimitReached)
	assert.Len(t, station.Schedules, MaxSchedules)
	assert.True(t, station.IsFull())

	// rejected schedule must not touch the vehicle either
	assert.Empty(t, v2.AssignedStationRef)
	assert.Equal(t, "Downtown Bus Hub", v1.AssignedStationRef)
}

func TestStationAcceptsAnything(t *testing.T) {
	station := NewStation("Central Train", "1 Station Rd", TransportTypeTrain)
	vehicle := NewVehicle("BUS101", "A->B", 2, 45)

	require.NoError(t, station.AddSchedule(vehicle, "09:00", true))
	require.NoError(t, station.AddSchedule(vehicle, "09:00", true))
	require.NoError(t, station.AddSchedule(nil, "09:00", false))

	require.Len(t, station.Schedules, 3)
	assert.False(t, station.Schedules[2].HasVehicle())
	assert.Equal(t, "Departure", station.Schedules[2].Direction())
	assert.Equal(t, "Arrival", station.Schedules[0].Direction())
}

func TestStationRemoveScheduleByVehicleID(t *testing.T) {
	station := NewStation("Downtown Bus Hub", "12 Main St", TransportTypeBus)
	v1 := NewVehicle("BUS101", "A->B", 2, 45)
	v2 := NewVehicle("BUS202", "C->D", 3, 50)

	require.NoError(t, station.AddSchedule(v2, "07:00", false))
	require.NoError(t, station.AddSchedule(v1, "08:00", false))
	require.NoError(t, station.AddSchedule(v1, "09:00", false))

	t.Run("Absent", func(t *testing.T) {
		assert.ErrorIs(t, station.RemoveScheduleByVehicleID("EXP301"), ErrScheduleNotFound)
		assert.Len(t, station.Schedules, 3)
	})

	t.Run("FirstMatchOnly", func(t *testing.T) {
		require.NoError(t, station.RemoveScheduleByVehicleID("BUS101"))

		assert.Equal(t, []Schedule{
			{VehicleRef: "BUS202", Time: "07:00"},
			{VehicleRef: "BUS101", Time: "09:00"},
		}, station.Schedules)
	})
}

func TestStationRemoveIgnoresEmptyVehicle(t *testing.T) {
	station := NewStation("Central Train", "1 Station Rd", TransportTypeTrain)

	require.NoError(t, station.AddSchedule(nil, "10:00", true))
	assert.ErrorIs(t, station.RemoveScheduleByVehicleID(""), ErrScheduleNotFound)
	assert.Len(t, station.Schedules, 1)
}

func TestStationBackReferenceLastWriteWins(t *testing.T) {
	busStation := NewStation("Downtown Bus Hub", "12 Main St", TransportTypeBus)
	trainStation := NewStation("Central Train", "1 Station Rd", TransportTypeTrain)
	vehicle := NewExpressVehicle("EXP301", "X->Y Express", 4, 80, 3)

	require.NoError(t, busStation.AddSchedule(vehicle, "09:00", false))
	require.NoError(t, trainStation.AddSchedule(vehicle, "09:45", true))

	assert.Equal(t, "Central Train", vehicle.AssignedStationRef)
	assert.Len(t, busStation.Schedules, 1)
}

func TestParseTransportType(t *testing.T) {
	assert.Equal(t, TransportTypeBus, ParseTransportType(" Bus "))
	assert.Equal(t, TransportTypeTrain, ParseTransportType("train"))
	assert.Equal(t, TransportType("hovercraft"), ParseTransportType("Hovercraft"))
	assert.Equal(t, TransportTypeUnknown, ParseTransportType(""))
}
