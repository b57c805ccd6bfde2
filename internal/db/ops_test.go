package db

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

var store *DB

// Setup the testcontainer DB before running any ops tests
func TestMain(m *testing.M) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		panic(err)
	}
	defer pgContainer.Terminate(ctx)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		panic(err)
	}

	store, err = Init(ctx, Config{
		ConnString:     connStr,
		MigrationsPath: "./migrations",
	})
	if err != nil {
		panic(err)
	}
	defer store.Close()

	m.Run()
}

func mustCreateDevice(t *testing.T, apiKey string) Device {
	t.Helper()
	device, err := store.CreateDevice(context.Background(), "user-"+t.Name(), "device "+t.Name(), "", apiKey)
	require.NoError(t, err)
	return device
}

func Test_GetDeviceByAPIKey(t *testing.T) {
	ctx := context.Background()
	device := mustCreateDevice(t, "key-lookup")

	found, err := store.GetDeviceByAPIKey(ctx, "key-lookup")
	assert.NoError(t, err)
	assert.Equal(t, device.ID, found.ID)
	assert.Nil(t, found.LastSeen)

	_, err = store.GetDeviceByAPIKey(ctx, "no-such-key")
	assert.ErrorIs(t, err, ErrDeviceNotFound)
}

func Test_APIKeyUniqueness(t *testing.T) {
	mustCreateDevice(t, "key-unique")

	_, err := store.CreateDevice(context.Background(), "other-user", "other device", "", "key-unique")
	assert.ErrorIs(t, err, ErrInsertFailed)
}

func Test_FindOrCreateSensor_Idempotent(t *testing.T) {
	ctx := context.Background()
	device := mustCreateDevice(t, "key-focs")

	first, err := store.FindOrCreateSensor(ctx, device.ID, "temp")
	require.NoError(t, err)
	assert.Equal(t, "temp", first.Name)
	assert.Equal(t, "temp", first.Type)
	assert.Equal(t, "", first.Unit)

	second, err := store.FindOrCreateSensor(ctx, device.ID, "temp")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	sensors, err := store.ListSensors(ctx, device.ID)
	require.NoError(t, err)
	assert.Len(t, sensors, 1)
}

func Test_FindOrCreateSensor_ConcurrentFirstSighting(t *testing.T) {
	ctx := context.Background()
	device := mustCreateDevice(t, "key-focs-race")

	const writers = 8
	ids := make([]string, writers)
	errs := make([]error, writers)
	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sensor, err := store.FindOrCreateSensor(ctx, device.ID, "humidity")
			ids[i] = sensor.ID
			errs[i] = err
		}()
	}
	wg.Wait()

	for i := range writers {
		assert.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i])
	}

	sensors, err := store.ListSensors(ctx, device.ID)
	require.NoError(t, err)
	assert.Len(t, sensors, 1)
}

func Test_ReadingsAppendOnly_TriggerAdvancesLastSeen(t *testing.T) {
	ctx := context.Background()
	device := mustCreateDevice(t, "key-readings")
	sensor, err := store.FindOrCreateSensor(ctx, device.ID, "temp")
	require.NoError(t, err)

	// Two "ingestion calls" of two entries each.
	values := []float64{21.5, 22.0, 21.5, 22.0}
	var last Reading
	for _, v := range values {
		last, err = store.InsertReading(ctx, sensor.ID, v)
		require.NoError(t, err)
		assert.False(t, last.Timestamp.IsZero())
	}

	count, err := store.CountReadings(ctx, sensor.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)

	refreshed, err := store.GetDevice(ctx, device.ID)
	require.NoError(t, err)
	require.NotNil(t, refreshed.LastSeen)
	assert.WithinDuration(t, last.Timestamp, *refreshed.LastSeen, time.Millisecond)

	readings, err := store.ListReadings(ctx, sensor.ID, 10)
	require.NoError(t, err)
	require.Len(t, readings, 4)
	// Newest first; ties on timestamp break on id so order is stable.
	for i := 1; i < len(readings); i++ {
		assert.GreaterOrEqual(t, readings[i-1].ID, readings[i].ID)
	}
}

func Test_ListSensorsWithLatestReading(t *testing.T) {
	ctx := context.Background()
	device := mustCreateDevice(t, "key-latest")

	withData, err := store.FindOrCreateSensor(ctx, device.ID, "co2")
	require.NoError(t, err)
	empty, err := store.FindOrCreateSensor(ctx, device.ID, "voltage")
	require.NoError(t, err)

	_, err = store.InsertReading(ctx, withData.ID, 410)
	require.NoError(t, err)
	latest, err := store.InsertReading(ctx, withData.ID, 415)
	require.NoError(t, err)

	sensors, err := store.ListSensorsWithLatestReading(ctx, device.ID)
	require.NoError(t, err)
	require.Len(t, sensors, 2)

	byID := map[string]SensorWithLatest{}
	for _, s := range sensors {
		byID[s.ID] = s
	}
	require.NotNil(t, byID[withData.ID].LatestValue)
	assert.Equal(t, 415.0, *byID[withData.ID].LatestValue)
	assert.WithinDuration(t, latest.Timestamp, *byID[withData.ID].LatestTimestamp, time.Millisecond)
	assert.Nil(t, byID[empty.ID].LatestValue)
	assert.Nil(t, byID[empty.ID].LatestTimestamp)
}

func Test_CreateSensor_DuplicateName(t *testing.T) {
	ctx := context.Background()
	device := mustCreateDevice(t, "key-dup")

	_, err := store.CreateSensor(ctx, device.ID, "temp", "temperature", "°C")
	require.NoError(t, err)

	_, err = store.CreateSensor(ctx, device.ID, "temp", "temperature", "°C")
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func Test_DeleteDevice_Cascades(t *testing.T) {
	ctx := context.Background()
	device := mustCreateDevice(t, "key-cascade")
	sensor, err := store.FindOrCreateSensor(ctx, device.ID, "temp")
	require.NoError(t, err)
	_, err = store.InsertReading(ctx, sensor.ID, 1)
	require.NoError(t, err)

	require.NoError(t, store.DeleteDevice(ctx, device.ID))

	_, err = store.GetDevice(ctx, device.ID)
	assert.ErrorIs(t, err, ErrDeviceNotFound)

	sensors, err := store.ListSensors(ctx, device.ID)
	require.NoError(t, err)
	assert.Empty(t, sensors)

	count, err := store.CountReadings(ctx, sensor.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	assert.ErrorIs(t, store.DeleteDevice(ctx, device.ID), ErrDeviceNotFound)
}
