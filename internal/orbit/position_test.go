package orbit

import (
	"math"
	"testing"
	"time"

	"github.com/litescript/orrery/internal/astro"
)

func vecNear(a, b astro.Vec3, tol float64) bool {
	return a.DistanceTo(b) <= tol
}

func TestPositionAtDeterministic(t *testing.T) {
	el := EarthJ2000()
	at := time.Date(2024, 3, 20, 3, 6, 0, 0, time.UTC)
	parent := astro.Vec3{X: 0.1, Y: -0.2, Z: 0.3}

	first := PositionAt(el, at, parent)
	for i := 0; i < 5; i++ {
		if got := PositionAt(el, at, parent); got != first {
			t.Fatalf("call %d = %v, want %v", i, got, first)
		}
	}
}

func TestPositionAtCircularRadius(t *testing.T) {
	el := MustNew(Params{
		SemiMajorAxis:    2.5,
		InclinationDeg:   30,
		AscendingNodeDeg: 40,
		ArgPerihelionDeg: 50,
		Epoch:            J2000,
	})

	for d := 0; d < 400; d += 7 {
		at := J2000.Add(time.Duration(d) * 24 * time.Hour)
		if s := OrbitalState(el, at); s.Radius != 2.5 {
			t.Fatalf("day %d: r = %v, want 2.5", d, s.Radius)
		}
		if r := EclipticPosition(el, at).Norm(); math.Abs(r-2.5) > 1e-12 {
			t.Fatalf("day %d: |pos| = %v, want 2.5", d, r)
		}
	}
}

func TestPositionAtPerihelionAndAphelion(t *testing.T) {
	el := MustNew(Params{SemiMajorAxis: 2, Eccentricity: 0.5, Epoch: J2000})

	if got := PositionAt(el, J2000, astro.Vec3{}); got != (astro.Vec3{X: 1}) {
		t.Errorf("perihelion = %v, want {1 0 0}", got)
	}

	half := time.Duration(el.PeriodDays() / 2 * 86400 * float64(time.Second))
	got := EclipticPosition(el, J2000.Add(half))
	if !vecNear(got, astro.Vec3{X: -3}, 1e-6) {
		t.Errorf("aphelion = %v, want {-3 0 0}", got)
	}
}

func TestPositionAtRotations(t *testing.T) {
	// ω = 90° puts periapsis on +Y of the node line; i = 90° lifts it to +Z.
	el := MustNew(Params{
		SemiMajorAxis:    1,
		InclinationDeg:   90,
		ArgPerihelionDeg: 90,
		Epoch:            J2000,
	})

	ecl := EclipticPosition(el, J2000)
	if !vecNear(ecl, astro.Vec3{Z: 1}, 1e-12) {
		t.Errorf("ecliptic = %v, want {0 0 1}", ecl)
	}

	scene := PositionAt(el, J2000, astro.Vec3{})
	if !vecNear(scene, astro.Vec3{Y: 1}, 1e-12) {
		t.Errorf("scene = %v, want {0 1 0}", scene)
	}
}

func TestPositionAtNodeRotation(t *testing.T) {
	el := MustNew(Params{SemiMajorAxis: 1, AscendingNodeDeg: 90, Epoch: J2000})

	if got := EclipticPosition(el, J2000); !vecNear(got, astro.Vec3{Y: 1}, 1e-12) {
		t.Errorf("ecliptic = %v, want {0 1 0}", got)
	}
}

func TestPositionAtParentRelative(t *testing.T) {
	el := MoonJ2000()
	at := time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC)
	parent := astro.Vec3{X: 0.7, Y: 0.001, Z: -0.7}

	rel := PositionAt(el, at, astro.Vec3{})
	abs := PositionAt(el, at, parent)
	if !vecNear(abs.Sub(parent), rel, 1e-15) {
		t.Errorf("offset from parent = %v, want %v", abs.Sub(parent), rel)
	}
}

func TestPositionAtFullPeriod(t *testing.T) {
	el := EarthJ2000()
	period := time.Duration(el.PeriodDays() * 86400 * float64(time.Second))

	start := PositionAt(el, J2000, astro.Vec3{})
	after := PositionAt(el, J2000.Add(period), astro.Vec3{})
	before := PositionAt(el, J2000.Add(-period), astro.Vec3{})

	if !vecNear(start, after, 1e-6) {
		t.Errorf("one period later = %v, want %v", after, start)
	}
	if !vecNear(start, before, 1e-6) {
		t.Errorf("one period earlier = %v, want %v", before, start)
	}
}

func TestEarthAtJ2000(t *testing.T) {
	r := EclipticPosition(EarthJ2000(), J2000).Norm()
	if math.Abs(r-0.983)/0.983 > 1e-3 {
		t.Errorf("|r| = %v, want ~0.983", r)
	}
}

func TestEarthAtJ2000LiteralMeanAnomaly(t *testing.T) {
	// Treating the tabulated mean longitude as a mean anomaly lands Earth
	// past aphelion instead of near perihelion.
	el := MustNew(Params{
		SemiMajorAxis:    1.00000011,
		Eccentricity:     0.01671022,
		InclinationDeg:   0.00005,
		AscendingNodeDeg: -11.26064,
		ArgPerihelionDeg: 102.94719,
		MeanAnomalyDeg:   100.46435,
		Epoch:            J2000,
	})

	r := EclipticPosition(el, J2000).Norm()
	if math.Abs(r-1.0033) > 1e-3 {
		t.Errorf("|r| = %v, want ~1.0033", r)
	}
}

func TestPositionAtWithScalesMotion(t *testing.T) {
	el := MustNew(Params{SemiMajorAxis: 1, Epoch: J2000})
	day := J2000.Add(24 * time.Hour)

	// 90 degrees per day reaches quadrature after one day.
	got := PositionAtWith(90, el, day, astro.Vec3{})
	if !vecNear(got, astro.Vec3{Z: 1}, 1e-12) {
		t.Errorf("PositionAtWith = %v, want {0 0 1}", got)
	}
}

func TestDaysBetweenCenturies(t *testing.T) {
	from := time.Date(1700, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2100, 1, 1, 12, 0, 0, 0, time.UTC)

	// 400 Gregorian years are exactly 146097 days.
	if got := daysBetween(from, to); got != 146097.5 {
		t.Errorf("daysBetween = %v, want 146097.5", got)
	}
	if got := daysBetween(to, from); got != -146097.5 {
		t.Errorf("daysBetween reversed = %v, want -146097.5", got)
	}
}
