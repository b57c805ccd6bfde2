package simulator

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"
)

const DefaultPeriod = 5 * time.Second

// submitTimeout bounds each outbound submission; a stuck submission must
// never hold up the sensor's tick schedule.
const submitTimeout = 10 * time.Second

// Submitter pushes one synthetic reading through the ingestion path.
type Submitter interface {
	Submit(ctx context.Context, deviceKey, sensorName string, value float64) error
}

// SensorSpec identifies a simulated sensor and the device credential it
// submits under.
type SensorSpec struct {
	DeviceID  string
	DeviceKey string
	SensorID  string
	Name      string
	Type      string
	Unit      string
}

// SensorState is the live record for one running sensor.
type SensorState struct {
	SensorSpec
	Running bool
	Value   float64
}

type entry struct {
	state SensorState
	stop  chan struct{}
}

// Simulator fabricates per-sensor readings on a fixed cadence, writing
// through the same ingestion path a hardware device uses. The
// running-state map is published as an immutable snapshot
// (copy-on-write): every start/stop/tick reads the current map, computes
// the next one, and replaces it whole, so readers never see a partial
// update and a stop never races a tick into resurrecting a removed
// entry.
type Simulator struct {
	submitter Submitter
	period    time.Duration

	mu      sync.Mutex   // serializes map writers
	running atomic.Value // map[string]entry
	wg      sync.WaitGroup
}

type Config struct {
	Submitter Submitter
	Period    time.Duration
}

func New(cfg Config) *Simulator {
	period := cfg.Period
	if period <= 0 {
		period = DefaultPeriod
	}
	s := &Simulator{
		submitter: cfg.Submitter,
		period:    period,
	}
	s.running.Store(map[string]entry{})
	return s
}

// Start arms a sensor: an initial value from its type profile is
// submitted immediately, then a recurring timer perturbs and resubmits
// it every period. Starting an already-running sensor is a no-op.
func (s *Simulator) Start(ctx context.Context, spec SensorSpec) {
	s.mu.Lock()
	cur := s.snapshot()
	if _, ok := cur[spec.SensorID]; ok {
		s.mu.Unlock()
		slog.InfoContext(ctx, "Sensor already running, start ignored", "sensor_id", spec.SensorID)
		return
	}

	p := profileFor(spec.Type)
	value := p.Min + rand.Float64()*(p.Max-p.Min)
	e := entry{
		state: SensorState{SensorSpec: spec, Running: true, Value: value},
		stop:  make(chan struct{}),
	}
	next := cloneEntries(cur)
	next[spec.SensorID] = e
	s.running.Store(next)
	// Launch while still holding the lock: once the entry is published,
	// the wg already counts its goroutines, so a concurrent Shutdown's
	// Wait cannot return before they are registered.
	s.submitAsync(e.state)
	s.wg.Add(1)
	go s.runTimer(spec.SensorID, e.stop)
	s.mu.Unlock()

	slog.InfoContext(ctx, "Simulated sensor started",
		"sensor_id", spec.SensorID,
		"type", spec.Type,
		"initial_value", value,
	)
}

// Stop cancels the sensor's timer and removes its entry entirely. A
// stopped or never-started sensor is a no-op.
func (s *Simulator) Stop(sensorID string) {
	s.mu.Lock()
	cur := s.snapshot()
	e, ok := cur[sensorID]
	if !ok {
		s.mu.Unlock()
		return
	}
	close(e.stop)
	next := cloneEntries(cur)
	delete(next, sensorID)
	s.running.Store(next)
	s.mu.Unlock()

	slog.Info("Simulated sensor stopped", "sensor_id", sensorID)
}

// IsRunning is a pure read of the published snapshot.
func (s *Simulator) IsRunning(sensorID string) bool {
	_, ok := s.snapshot()[sensorID]
	return ok
}

// State returns the sensor's live record, or false when it is not
// running.
func (s *Simulator) State(sensorID string) (SensorState, bool) {
	e, ok := s.snapshot()[sensorID]
	return e.state, ok
}

// Shutdown stops every running sensor and waits for their timers to
// exit. A timer outliving its owning session would keep submitting
// readings nothing represents as running.
func (s *Simulator) Shutdown() {
	s.mu.Lock()
	cur := s.snapshot()
	for _, e := range cur {
		close(e.stop)
	}
	s.running.Store(map[string]entry{})
	s.mu.Unlock()

	s.wg.Wait()
	slog.Info("Simulator shut down", "sensors_stopped", len(cur))
}

func (s *Simulator) runTimer(sensorID string, stop chan struct{}) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.period)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.tick(sensorID)
		}
	}
}

// tick advances the sensor's value sequentially (each tick's baseline is
// the previous tick's value) and submits fire-and-forget. A tick whose
// entry was removed by a concurrent stop no-ops instead of resurrecting
// it.
func (s *Simulator) tick(sensorID string) {
	s.mu.Lock()
	cur := s.snapshot()
	e, ok := cur[sensorID]
	if !ok {
		s.mu.Unlock()
		return
	}

	p := profileFor(e.state.Type)
	value := e.state.Value + (rand.Float64()*2-1)*p.Jitter
	if value < 0 {
		value = 0
	}
	e.state.Value = value
	next := cloneEntries(cur)
	next[sensorID] = e
	s.running.Store(next)
	s.mu.Unlock()

	s.submitAsync(e.state)
}

// submitAsync hands the value to the ingestion path in its own
// goroutine: a slow or failed submission never delays the next tick, and
// failure never stops the sensor.
func (s *Simulator) submitAsync(state SensorState) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()
		if err := s.submitter.Submit(ctx, state.DeviceKey, state.Name, state.Value); err != nil {
			slog.ErrorContext(ctx, "Error submitting simulated reading",
				"sensor_id", state.SensorID,
				"value", state.Value,
				"error", err,
			)
		}
	}()
}

func (s *Simulator) snapshot() map[string]entry {
	return s.running.Load().(map[string]entry)
}

func cloneEntries(m map[string]entry) map[string]entry {
	next := make(map[string]entry, len(m)+1)
	for k, v := range m {
		next[k] = v
	}
	return next
}
