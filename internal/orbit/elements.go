// Package orbit implements two-body Keplerian orbits: element validation,
// Kepler's equation, element-to-position conversion, display-curve
// sampling and the lightweight circular motion model.
package orbit

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/litescript/orrery/internal/astro"
)

// ErrInvalidElements is returned when orbital parameters describe no closed
// orbit. It is only ever produced by constructors.
var ErrInvalidElements = errors.New("invalid orbital elements")

// J2000 is the standard epoch 2000-01-01T12:00:00Z.
var J2000 = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

// Params holds raw Keplerian elements. Angles are in degrees.
type Params struct {
	SemiMajorAxis    float64
	Eccentricity     float64
	InclinationDeg   float64
	AscendingNodeDeg float64
	ArgPerihelionDeg float64
	MeanAnomalyDeg   float64 // at Epoch
	Epoch            time.Time
}

// MeanLongitudeParams holds elements in the classical planetary form,
// with longitude of perihelion ϖ = Ω + ω and mean longitude L = ϖ + M.
type MeanLongitudeParams struct {
	SemiMajorAxis     float64
	Eccentricity      float64
	InclinationDeg    float64
	AscendingNodeDeg  float64
	LongPerihelionDeg float64
	MeanLongitudeDeg  float64 // at Epoch
	Epoch             time.Time
}

// Elements is a validated, immutable Keplerian orbit.
// The zero value is not a valid orbit; use New or FromMeanLongitude.
type Elements struct {
	p Params
}

// New validates p and returns the corresponding Elements.
func New(p Params) (Elements, error) {
	if err := validate(p); err != nil {
		return Elements{}, err
	}
	return Elements{p: p}, nil
}

// MustNew is like New but panics on invalid input. Intended for
// package-level tables of known-good elements.
func MustNew(p Params) Elements {
	el, err := New(p)
	if err != nil {
		panic(err)
	}
	return el
}

// FromMeanLongitude converts the planetary form into argument of
// perihelion and mean anomaly, then validates.
func FromMeanLongitude(p MeanLongitudeParams) (Elements, error) {
	return New(Params{
		SemiMajorAxis:    p.SemiMajorAxis,
		Eccentricity:     p.Eccentricity,
		InclinationDeg:   p.InclinationDeg,
		AscendingNodeDeg: p.AscendingNodeDeg,
		ArgPerihelionDeg: astro.NormalizeDegrees(p.LongPerihelionDeg - p.AscendingNodeDeg),
		MeanAnomalyDeg:   astro.NormalizeDegrees(p.MeanLongitudeDeg - p.LongPerihelionDeg),
		Epoch:            p.Epoch,
	})
}

func validate(p Params) error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"semi-major axis", p.SemiMajorAxis},
		{"eccentricity", p.Eccentricity},
		{"inclination", p.InclinationDeg},
		{"ascending node", p.AscendingNodeDeg},
		{"argument of perihelion", p.ArgPerihelionDeg},
		{"mean anomaly", p.MeanAnomalyDeg},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidElements, f.name)
		}
	}
	if p.SemiMajorAxis <= 0 {
		return fmt.Errorf("%w: semi-major axis %v must be positive", ErrInvalidElements, p.SemiMajorAxis)
	}
	if p.Eccentricity < 0 || p.Eccentricity >= 1 {
		return fmt.Errorf("%w: eccentricity %v outside [0, 1)", ErrInvalidElements, p.Eccentricity)
	}
	if p.Epoch.IsZero() {
		return fmt.Errorf("%w: epoch is required", ErrInvalidElements)
	}
	return nil
}

// Params returns a copy of the raw elements.
func (el Elements) Params() Params { return el.p }

func (el Elements) SemiMajorAxis() float64    { return el.p.SemiMajorAxis }
func (el Elements) Eccentricity() float64     { return el.p.Eccentricity }
func (el Elements) InclinationDeg() float64   { return el.p.InclinationDeg }
func (el Elements) AscendingNodeDeg() float64 { return el.p.AscendingNodeDeg }
func (el Elements) ArgPerihelionDeg() float64 { return el.p.ArgPerihelionDeg }
func (el Elements) MeanAnomalyDeg() float64   { return el.p.MeanAnomalyDeg }
func (el Elements) Epoch() time.Time          { return el.p.Epoch }

// Perihelion returns the closest approach distance a(1 - e).
func (el Elements) Perihelion() float64 {
	return el.p.SemiMajorAxis * (1 - el.p.Eccentricity)
}

// Aphelion returns the farthest distance a(1 + e).
func (el Elements) Aphelion() float64 {
	return el.p.SemiMajorAxis * (1 + el.p.Eccentricity)
}

// MeanMotionDegPerDay returns the daily mean motion k / a^1.5 for the
// Gaussian constant (AU and days).
func (el Elements) MeanMotionDegPerDay() float64 {
	return meanMotion(GaussianDailyMotion, el.p.SemiMajorAxis)
}

// PeriodDays returns the orbital period in days.
func (el Elements) PeriodDays() float64 {
	return 360 / el.MeanMotionDegPerDay()
}

// Period returns the orbital period, saturating at the largest
// representable time.Duration (about 292 years).
func (el Elements) Period() time.Duration {
	secs := el.PeriodDays() * 86400
	if secs >= float64(math.MaxInt64)/float64(time.Second) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(secs * float64(time.Second))
}

// LongPerihelionDeg returns ϖ = Ω + ω in [0, 360).
func (el Elements) LongPerihelionDeg() float64 {
	return astro.NormalizeDegrees(el.p.AscendingNodeDeg + el.p.ArgPerihelionDeg)
}

func meanMotion(k, a float64) float64 {
	return k / math.Pow(a, 1.5)
}

// EarthJ2000 returns Earth's heliocentric elements at J2000.0.
func EarthJ2000() Elements {
	el, err := FromMeanLongitude(MeanLongitudeParams{
		SemiMajorAxis:     1.00000011,
		Eccentricity:      0.01671022,
		InclinationDeg:    0.00005,
		AscendingNodeDeg:  -11.26064,
		LongPerihelionDeg: 102.94719,
		MeanLongitudeDeg:  100.46435,
		Epoch:             J2000,
	})
	if err != nil {
		panic(err)
	}
	return el
}

// MoonMotionConstant makes MoonJ2000 advance at the Moon's sidereal
// mean motion of 13.1764 degrees per day.
const MoonMotionConstant = 0.0017167076

// MoonJ2000 returns the Moon's geocentric mean elements at J2000.0 (AU).
// Use it with MoonMotionConstant; nodal and apsidal precession are not
// modelled.
func MoonJ2000() Elements {
	return MustNew(Params{
		SemiMajorAxis:    0.00257,
		Eccentricity:     0.0549,
		InclinationDeg:   5.145,
		AscendingNodeDeg: 125.0445479,
		ArgPerihelionDeg: 318.3086986,
		MeanAnomalyDeg:   134.9633964,
		Epoch:            J2000,
	})
}
