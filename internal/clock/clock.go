// Package clock provides the simulation clock: a simulated instant that
// advances by scaled wall time and can be paused, rescaled or jumped.
package clock

import (
	"math"
	"sync"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// Presets are the time-scale steps offered by the controls, in simulated
// seconds per wall second: real time, a minute, an hour, a day, a week
// and a month per second.
var Presets = []float64{1, 60, 3600, 86400, 604800, 2592000}

// State is a consistent snapshot of the clock.
type State struct {
	Instant time.Time
	Scale   float64
	Paused  bool
}

// Clock is safe for concurrent use. One driver calls Tick; any number of
// readers may query it.
type Clock struct {
	mu sync.RWMutex

	instant time.Time
	scale   float64
	paused  bool

	now func() time.Time
}

// Option configures a Clock.
type Option func(*Clock)

// WithNow sets the wall-clock source used by New and ResetToNow.
func WithNow(now func() time.Time) Option {
	return func(c *Clock) { c.now = now }
}

// WithInstant starts the clock at t instead of the current wall time.
func WithInstant(t time.Time) Option {
	return func(c *Clock) { c.instant = t }
}

// WithScale sets the initial time scale.
func WithScale(scale float64) Option {
	return func(c *Clock) { c.scale = scale }
}

// WithPaused starts the clock paused.
func WithPaused(paused bool) Option {
	return func(c *Clock) { c.paused = paused }
}

// New returns a running clock at the current wall time with scale 1.
func New(opts ...Option) *Clock {
	c := &Clock{scale: 1, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	if c.instant.IsZero() {
		c.instant = c.now().UTC()
	}
	return c
}

// Tick advances the instant by wallDelta·scale while running and returns
// the simulated delta. A paused clock returns 0 and does not move.
func (c *Clock) Tick(wallDelta time.Duration) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.paused {
		return 0
	}

	d := scaleDuration(wallDelta, c.scale)
	c.instant = c.instant.Add(d)
	return d
}

// scaleDuration multiplies d by f, saturating instead of overflowing.
func scaleDuration(d time.Duration, f float64) time.Duration {
	v := float64(d) * f
	switch {
	case v >= math.MaxInt64:
		return time.Duration(math.MaxInt64)
	case v <= math.MinInt64:
		return time.Duration(math.MinInt64)
	default:
		return time.Duration(math.Round(v))
	}
}

// TogglePause switches between running and paused and reports whether
// the clock is now paused.
func (c *Clock) TogglePause() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = !c.paused
	return c.paused
}

func (c *Clock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = true
}

func (c *Clock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = false
}

// SetScale sets simulated seconds per wall second. Negative values run
// time backwards; NaN and infinities are ignored.
func (c *Clock) SetScale(scale float64) {
	if math.IsNaN(scale) || math.IsInf(scale, 0) {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scale = scale
}

// SetInstant jumps to t, running or paused.
func (c *Clock) SetInstant(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.instant = t
}

// ResetToNow jumps to the current wall time, running or paused.
func (c *Clock) ResetToNow() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.instant = c.now().UTC()
}

func (c *Clock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.instant
}

func (c *Clock) Scale() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.scale
}

func (c *Clock) Paused() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.paused
}

// Snapshot returns instant, scale and pause state read together.
func (c *Clock) Snapshot() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return State{Instant: c.instant, Scale: c.scale, Paused: c.paused}
}

// JulianDay returns the current instant as a Julian day number.
func (c *Clock) JulianDay() float64 {
	return julian.TimeToJD(c.Now())
}

// NextPreset returns the smallest preset above |scale|, keeping the sign
// of scale. Past the last preset it returns the last one.
func NextPreset(scale float64) float64 {
	mag, s := math.Abs(scale), sign(scale)
	for _, p := range Presets {
		if p > mag {
			return s * p
		}
	}
	return s * Presets[len(Presets)-1]
}

// PrevPreset returns the largest preset below |scale|, keeping the sign
// of scale. Below the first preset it returns the first one.
func PrevPreset(scale float64) float64 {
	mag, s := math.Abs(scale), sign(scale)
	for i := len(Presets) - 1; i >= 0; i-- {
		if Presets[i] < mag {
			return s * Presets[i]
		}
	}
	return s * Presets[0]
}

func sign(f float64) float64 {
	if f < 0 {
		return -1
	}
	return 1
}
