package orbit

import (
	"math"

	"github.com/litescript/orrery/internal/astro"
)

// SamplePoints returns segments+1 scene-frame points tracing the shape of
// el around its primary, with the last point equal to the first.
//
// This is a display curve, not an ephemeris. True anomaly is walked
// uniformly over [0, 2π] on the polar conic r = a(1-e²)/(1+e·cos θ) and
// only the inclination tilt is applied; the ascending node and argument of
// perihelion rotations used by PositionAt are omitted, so the curve does
// not in general pass through the body's computed positions.
func SamplePoints(el Elements, segments int) []astro.Vec3 {
	if segments < 1 {
		segments = 1
	}

	a := el.p.SemiMajorAxis
	e := el.p.Eccentricity
	semiLatus := a * (1 - e*e)

	incl := astro.DegToRad(el.p.InclinationDeg)
	sinI, cosI := math.Sin(incl), math.Cos(incl)

	points := make([]astro.Vec3, segments+1)
	for i := 0; i < segments; i++ {
		theta := float64(i) / float64(segments) * 2 * math.Pi
		r := semiLatus / (1 + e*math.Cos(theta))

		x := r * math.Cos(theta)
		y := r * math.Sin(theta)
		points[i] = astro.Vec3{X: x, Y: y * sinI, Z: y * cosI}
	}
	points[segments] = points[0]

	return points
}

// SampleCircle returns segments+1 scene-frame points on a circle of the
// given radius in the reference plane, closed like SamplePoints.
func SampleCircle(radius float64, segments int) []astro.Vec3 {
	if segments < 1 {
		segments = 1
	}

	points := make([]astro.Vec3, segments+1)
	for i := 0; i < segments; i++ {
		theta := float64(i) / float64(segments) * 2 * math.Pi
		points[i] = astro.Vec3{X: radius * math.Cos(theta), Z: radius * math.Sin(theta)}
	}
	points[segments] = points[0]

	return points
}
