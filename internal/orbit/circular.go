package orbit

import (
	"fmt"
	"math"
	"time"

	"github.com/litescript/orrery/internal/astro"
)

// Circular is the lightweight motion model: a circle in the reference
// plane swept at a constant angular rate. Unlike Elements it is not a
// function of absolute time; the owner accumulates the swept angle.
type Circular struct {
	radius       float64
	rateDegSec   float64
	initialPhase float64 // degrees
}

// NewCircular validates and returns a circular motion model.
func NewCircular(radius, rateDegPerSec, initialPhaseDeg float64) (Circular, error) {
	for _, v := range []float64{radius, rateDegPerSec, initialPhaseDeg} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Circular{}, fmt.Errorf("%w: circular motion parameters must be finite", ErrInvalidElements)
		}
	}
	if radius <= 0 {
		return Circular{}, fmt.Errorf("%w: orbit radius %v must be positive", ErrInvalidElements, radius)
	}
	return Circular{radius: radius, rateDegSec: rateDegPerSec, initialPhase: initialPhaseDeg}, nil
}

func (c Circular) Radius() float64          { return c.radius }
func (c Circular) RateDegPerSec() float64   { return c.rateDegSec }
func (c Circular) InitialPhaseDeg() float64 { return c.initialPhase }

// Angle returns the orbital angle θ = accumulated + initial phase, radians.
func (c Circular) Angle(accumulated float64) float64 {
	return accumulated + astro.DegToRad(c.initialPhase)
}

// Offset returns the parent-relative scene position for an accumulated
// angle in radians: (r·cos θ, 0, r·sin θ).
func (c Circular) Offset(accumulated float64) astro.Vec3 {
	theta := c.Angle(accumulated)
	return astro.Vec3{X: c.radius * math.Cos(theta), Z: c.radius * math.Sin(theta)}
}

// Advance returns the accumulated angle after dt of simulated time,
// wrapped to [0, 2π).
func (c Circular) Advance(accumulated float64, dt time.Duration) float64 {
	return astro.NormalizeRadians(accumulated + astro.DegToRad(c.rateDegSec)*dt.Seconds())
}

// PeriodSeconds returns the time for one revolution, or +Inf when the
// rate is zero.
func (c Circular) PeriodSeconds() float64 {
	if c.rateDegSec == 0 {
		return math.Inf(1)
	}
	return 360 / math.Abs(c.rateDegSec)
}
