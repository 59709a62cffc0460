package orbit

import (
	"math"
	"time"

	"github.com/litescript/orrery/internal/astro"
)

// GaussianDailyMotion is the mean motion in degrees per day of a body with
// a = 1 AU around one solar mass. Callers working in other units pass
// their own constant to the *With variants.
const GaussianDailyMotion = 0.9856076686

const secondsPerDay = 86400.0

// State is the intermediate solution of an orbit at one instant.
// Angles are in radians; Radius is in the semi-major axis unit.
type State struct {
	MeanAnomaly      float64
	EccentricAnomaly float64
	TrueAnomaly      float64
	Radius           float64
}

// OrbitalState solves the orbit at t.
func OrbitalState(el Elements, t time.Time) State {
	return OrbitalStateWith(GaussianDailyMotion, el, t)
}

// OrbitalStateWith solves the orbit at t for daily motion constant k.
func OrbitalStateWith(k float64, el Elements, t time.Time) State {
	p := el.p

	days := daysBetween(p.Epoch, t)
	m := astro.NormalizeDegrees(p.MeanAnomalyDeg + meanMotion(k, p.SemiMajorAxis)*days)
	mRad := astro.DegToRad(m)

	E := SolveKepler(mRad, p.Eccentricity)

	return State{
		MeanAnomaly:      mRad,
		EccentricAnomaly: E,
		TrueAnomaly:      TrueAnomaly(E, p.Eccentricity),
		Radius:           p.SemiMajorAxis * (1 - p.Eccentricity*math.Cos(E)),
	}
}

// EclipticPosition returns the body's position relative to its primary in
// the Z-up ecliptic frame at t.
func EclipticPosition(el Elements, t time.Time) astro.Vec3 {
	return EclipticPositionWith(GaussianDailyMotion, el, t)
}

// EclipticPositionWith is EclipticPosition for daily motion constant k.
func EclipticPositionWith(k float64, el Elements, t time.Time) astro.Vec3 {
	s := OrbitalStateWith(k, el, t)

	x := s.Radius * math.Cos(s.TrueAnomaly)
	y := s.Radius * math.Sin(s.TrueAnomaly)

	return toReference(x, y, el.p)
}

// PositionAt returns the scene-frame position at t of a body on el around
// a primary located at parent.
func PositionAt(el Elements, t time.Time, parent astro.Vec3) astro.Vec3 {
	return PositionAtWith(GaussianDailyMotion, el, t, parent)
}

// PositionAtWith is PositionAt for daily motion constant k.
func PositionAtWith(k float64, el Elements, t time.Time, parent astro.Vec3) astro.Vec3 {
	return parent.Add(astro.EclipticToScene(EclipticPositionWith(k, el, t)))
}

// toReference rotates orbital-plane coordinates into the ecliptic frame:
// argument of perihelion about Z, then inclination about X, then
// ascending node about Z.
func toReference(x, y float64, p Params) astro.Vec3 {
	w := astro.DegToRad(p.ArgPerihelionDeg)
	i := astro.DegToRad(p.InclinationDeg)
	node := astro.DegToRad(p.AscendingNodeDeg)

	x1 := x*math.Cos(w) - y*math.Sin(w)
	y1 := x*math.Sin(w) + y*math.Cos(w)

	y2 := y1 * math.Cos(i)
	z2 := y1 * math.Sin(i)

	return astro.Vec3{
		X: x1*math.Cos(node) - y2*math.Sin(node),
		Y: x1*math.Sin(node) + y2*math.Cos(node),
		Z: z2,
	}
}

// daysBetween returns (to - from) in days without time.Duration's
// ±292 year range limit.
func daysBetween(from, to time.Time) float64 {
	secs := float64(to.Unix()-from.Unix()) + float64(to.Nanosecond()-from.Nanosecond())/1e9
	return secs / secondsPerDay
}
