package liveview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"iot-telemetry-backend/internal/db"
	"iot-telemetry-backend/internal/feed"
	"iot-telemetry-backend/internal/worker"
)

var (
	ErrReadEvent  = errors.New("error reading change event")
	ErrParseEvent = errors.New("error parsing change event")
	ErrLoadFailed = errors.New("error loading view state")
)

type loader interface {
	GetDevice(ctx context.Context, id string) (db.Device, error)
	ListSensorsWithLatestReading(ctx context.Context, deviceID string) ([]db.SensorWithLatest, error)
}

// View is one dashboard card's snapshot of a device and its sensors with
// their latest readings.
type View struct {
	Device  db.Device
	Sensors []db.SensorWithLatest
}

// Subscriber keeps one device's view consistent with the store by
// consuming the change feed. Reading inserts are filtered client-side
// against a cached set of the device's sensor ids; a relevant event
// triggers a coarse sensor reload rather than an incremental patch.
type Subscriber struct {
	deviceID string
	loader   loader
	reader   feed.Reader
	worker   *worker.Worker

	mu        sync.RWMutex
	view      View
	sensorIDs map[string]struct{}

	closeOnce sync.Once
	closeErr  error
}

type Config struct {
	DeviceID string
	Loader   loader
	Reader   feed.Reader
}

func New(cfg Config) *Subscriber {
	s := &Subscriber{
		deviceID:  cfg.DeviceID,
		loader:    cfg.Loader,
		reader:    cfg.Reader,
		sensorIDs: make(map[string]struct{}),
	}
	s.worker = worker.New(worker.Config{
		Name:      "liveview-" + cfg.DeviceID,
		Processor: s,
	})
	return s
}

// Load performs the full initial fetch: device metadata plus every
// sensor with its latest reading. On failure the previously published
// view stays intact.
func (s *Subscriber) Load(ctx context.Context) error {
	const fn = "Subscriber:Load"
	device, err := s.loader.GetDevice(ctx, s.deviceID)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrLoadFailed, err)
	}
	sensors, err := s.loader.ListSensorsWithLatestReading(ctx, s.deviceID)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrLoadFailed, err)
	}

	s.mu.Lock()
	s.view = View{Device: device, Sensors: sensors}
	s.rebuildSensorIDs(sensors)
	s.mu.Unlock()
	return nil
}

// Run consumes the change feed until ctx is cancelled or the reader is
// closed. Callers run it in its own goroutine after Load.
func (s *Subscriber) Run(ctx context.Context) {
	s.worker.Run(ctx)
}

func (s *Subscriber) ProcessMessage(ctx context.Context) error {
	const fn = "Subscriber:ProcessMessage"
	m, err := s.reader.ReadMessage(ctx)
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, io.EOF) || errors.Is(err, io.ErrClosedPipe) {
			return worker.ErrStop
		}
		return fmt.Errorf("%s:%w:%w", fn, ErrReadEvent, err)
	}

	var event feed.ChangeEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrParseEvent, err)
	}

	switch {
	case event.Table == feed.TableDevices && event.Event == feed.EventUpdate:
		var row feed.DeviceRow
		if err := json.Unmarshal(event.New, &row); err != nil {
			return fmt.Errorf("%s:%w:%w", fn, ErrParseEvent, err)
		}
		if row.ID != s.deviceID {
			return nil
		}
		s.reloadDevice(ctx)
	case event.Table == feed.TableReadings && event.Event == feed.EventInsert:
		var row feed.ReadingRow
		if err := json.Unmarshal(event.New, &row); err != nil {
			return fmt.Errorf("%s:%w:%w", fn, ErrParseEvent, err)
		}
		if !s.ownsSensor(row.SensorID) {
			return nil
		}
		s.reloadSensors(ctx)
	}
	return nil
}

// View returns the current snapshot; safe for concurrent use.
func (s *Subscriber) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

// Close releases the feed subscription. Idempotent, so teardown on
// unmount and on device change can both call it.
func (s *Subscriber) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.reader.Close()
	})
	return s.closeErr
}

// reloadDevice refreshes device metadata only; sensors are untouched.
func (s *Subscriber) reloadDevice(ctx context.Context) {
	device, err := s.loader.GetDevice(ctx, s.deviceID)
	if err != nil {
		// Stale-but-displayed beats blank.
		slog.ErrorContext(ctx, "Error reloading device, keeping stale view", "device_id", s.deviceID, "error", err)
		return
	}
	s.mu.Lock()
	s.view.Device = device
	s.mu.Unlock()
}

// reloadSensors refreshes the sensor list and rebuilds the sensor-id
// set, so sensors created since the last refresh are recognized from the
// next event on.
func (s *Subscriber) reloadSensors(ctx context.Context) {
	sensors, err := s.loader.ListSensorsWithLatestReading(ctx, s.deviceID)
	if err != nil {
		slog.ErrorContext(ctx, "Error reloading sensors, keeping stale view", "device_id", s.deviceID, "error", err)
		return
	}
	s.mu.Lock()
	s.view.Sensors = sensors
	s.rebuildSensorIDs(sensors)
	s.mu.Unlock()
}

func (s *Subscriber) ownsSensor(sensorID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sensorIDs[sensorID]
	return ok
}

// Callers hold s.mu.
func (s *Subscriber) rebuildSensorIDs(sensors []db.SensorWithLatest) {
	ids := make(map[string]struct{}, len(sensors))
	for _, sensor := range sensors {
		ids[sensor.ID] = struct{}{}
	}
	s.sensorIDs = ids
}
