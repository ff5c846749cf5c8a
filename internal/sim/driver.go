package sim

import (
	"sync"
	"time"

	"github.com/san-kum/allelesim/internal/genetics"
)

// baseInterval is the tick delay at the reference replication speed of
// 50. The interval scales as 100ms / (speed/50), so halving the speed
// doubles the delay.
const (
	baseInterval   = 100 * time.Millisecond
	referenceSpeed = 50.0
	minSpeed       = 1.0
)

// Interval maps a replication speed on the 0..100 scale to the delay
// between ticks. Speeds below 1 are treated as 1 so the cadence stays
// finite.
func Interval(speed float64) time.Duration {
	if speed < minSpeed {
		speed = minSpeed
	}
	if speed > genetics.ParamMax {
		speed = genetics.ParamMax
	}
	return time.Duration(float64(baseInterval) * referenceSpeed / speed)
}

// Listener receives a state snapshot after every committed tick.
type Listener func(State)

// Driver is the simulation driver: a {Stopped, Running} state machine
// around one allele frequency, its bounded history, and a repeating
// timer that applies the force model once per tick.
type Driver struct {
	mu         sync.Mutex
	params     genetics.ForceParams
	src        genetics.Source
	frequency  float64
	generation int
	history    []float64
	running    bool
	timer      *time.Timer
	schedule   uint64
	listeners  []Listener
}

// NewDriver returns a stopped driver at the initial frequency. A nil
// src gets a time-seeded source.
func NewDriver(params genetics.ForceParams, src genetics.Source) *Driver {
	if src == nil {
		src = genetics.NewSource(time.Now().UnixNano())
	}
	return &Driver{
		params:    params.Clamped(),
		src:       src,
		frequency: InitialFrequency,
		history:   []float64{InitialFrequency},
	}
}

// Configure replaces the parameter snapshot used by subsequent ticks.
// Fields are clamped into range, never rejected. If the driver is
// running, the pending tick is rescheduled so a speed change takes
// effect immediately rather than after the stale delay.
func (d *Driver) Configure(params genetics.ForceParams) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.params = params.Clamped()
	if d.running {
		d.cancelLocked()
		d.scheduleLocked()
	}
}

// Params returns the active parameter snapshot.
func (d *Driver) Params() genetics.ForceParams {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.params
}

// Color returns the color encoding of the active parameters.
func (d *Driver) Color() genetics.Color {
	return genetics.ColorEncoding(d.Params())
}

// Start begins ticking. No-op when already running.
func (d *Driver) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running {
		return
	}
	d.running = true
	d.scheduleLocked()
}

// Pause stops ticking and cancels any pending tick. No-op when already
// stopped.
func (d *Driver) Pause() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.running {
		return
	}
	d.running = false
	d.cancelLocked()
}

// Reset stops the driver and restores the creation state: frequency
// 0.5, generation 0, history [0.5].
func (d *Driver) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.running = false
	d.cancelLocked()
	d.frequency = InitialFrequency
	d.generation = 0
	d.history = []float64{InitialFrequency}
}

// State returns a deep snapshot. Repeated calls while stopped return
// identical values.
func (d *Driver) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snapshotLocked()
}

// Subscribe registers a listener invoked with a snapshot after every
// committed tick. Listeners run outside the driver lock, on the timer
// goroutine.
func (d *Driver) Subscribe(fn Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners = append(d.listeners, fn)
}

func (d *Driver) snapshotLocked() State {
	hist := make([]float64, len(d.history))
	copy(hist, d.history)
	return State{
		Frequency:  d.frequency,
		Generation: d.generation,
		History:    hist,
		Running:    d.running,
	}
}

// scheduleLocked arms the next tick. The schedule sequence number lets
// a callback that fires after cancellation detect it is stale.
func (d *Driver) scheduleLocked() {
	d.schedule++
	seq := d.schedule
	d.timer = time.AfterFunc(Interval(d.params.ReplicationSpeed), func() {
		d.tick(seq)
	})
}

func (d *Driver) cancelLocked() {
	d.schedule++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// tick applies one generation and reschedules. Everything happens
// under the lock, so a concurrent State call sees either the whole
// tick or none of it.
func (d *Driver) tick(seq uint64) {
	d.mu.Lock()
	if !d.running || seq != d.schedule {
		d.mu.Unlock()
		return
	}

	d.advanceLocked()
	d.scheduleLocked()

	snap := d.snapshotLocked()
	listeners := make([]Listener, len(d.listeners))
	copy(listeners, d.listeners)
	d.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
}

// advanceLocked commits one generation: delta, clamp, history append
// with FIFO eviction, counter increment.
func (d *Driver) advanceLocked() {
	delta := genetics.FrequencyDelta(d.frequency, d.params, d.src)
	next := Clamp(d.frequency + delta)

	d.history = append(d.history, next)
	if n := len(d.history); n > HistoryLimit {
		d.history = d.history[n-HistoryLimit:]
	}
	d.frequency = next
	d.generation++
}
