package astro

import (
	"math"
	"testing"
)

func TestIlluminatedFraction(t *testing.T) {
	planet := Vec3{1, 0, 0}

	tests := []struct {
		name  string
		moon  Vec3
		light Vec3
		want  float64
		tol   float64
	}{
		{"orthogonal", Vec3{1, 0, 1}, Vec3{0, 0, 0}, 0.5, 0},
		{"same side (new)", Vec3{0.5, 0, 0}, Vec3{0, 0, 0}, 0, 1e-12},
		{"opposite sides (full)", Vec3{2, 0, 0}, Vec3{0, 0, 0}, 1, 1e-12},
		{"60 degrees", Vec3{1 - math.Cos(math.Pi/3), 0, math.Sin(math.Pi / 3)}, Vec3{0, 0, 0}, 0.25, 1e-12},
		{"120 degrees", Vec3{1 + math.Cos(math.Pi/3), 0, math.Sin(math.Pi / 3)}, Vec3{0, 0, 0}, 0.75, 1e-12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IlluminatedFraction(tt.moon, planet, tt.light)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("IlluminatedFraction = %v, want %v", got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("IlluminatedFraction = %v, out of [0, 1]", got)
			}
		})
	}
}

func TestIlluminatedFractionExactlyHalf(t *testing.T) {
	got := IlluminatedFraction(Vec3{0, 3, 0}, Vec3{}, Vec3{7, 0, 0})
	if got != 0.5 {
		t.Errorf("orthogonal vectors: got %v, want exactly 0.5", got)
	}
}

func TestIlluminatedFractionScaleInvariant(t *testing.T) {
	a := IlluminatedFraction(Vec3{1.002, 0, 0.002}, Vec3{1, 0, 0}, Vec3{})
	b := IlluminatedFraction(Vec3{1.2, 0, 0.2}, Vec3{1, 0, 0}, Vec3{})
	if math.Abs(a-b) > 1e-12 {
		t.Errorf("fraction depends on distance: %v vs %v", a, b)
	}
}

func TestWaxing(t *testing.T) {
	sun := Vec3{}
	earth := EclipticToScene(Vec3{1, 0, 0})

	ahead := earth.Add(EclipticToScene(Vec3{-math.Cos(0.3), -math.Sin(0.3), 0}).Scale(0.01))
	behind := earth.Add(EclipticToScene(Vec3{-math.Cos(0.3), math.Sin(0.3), 0}).Scale(0.01))

	// From Earth the sun lies at ecliptic longitude 180°. Prograde motion
	// increases longitude, so 180°+0.3 rad is just past new moon.
	if !Waxing(ahead, earth, sun, ProgradeAxis) {
		t.Error("moon just past new should be waxing")
	}
	if Waxing(behind, earth, sun, ProgradeAxis) {
		t.Error("moon just before new should be waning")
	}
}

func TestDescribePhase(t *testing.T) {
	tests := []struct {
		fraction float64
		waxing   bool
		want     string
	}{
		{0, true, PhaseNew},
		{0.1, true, PhaseWaxingCrescent},
		{0.5, true, PhaseFirstQuarter},
		{0.8, true, PhaseWaxingGibbous},
		{1, false, PhaseFull},
		{0.8, false, PhaseWaningGibbous},
		{0.5, false, PhaseLastQuarter},
		{0.1, false, PhaseWaningCrescent},
	}

	for _, tt := range tests {
		if got := DescribePhase(tt.fraction, tt.waxing); got != tt.want {
			t.Errorf("DescribePhase(%v, %v) = %q, want %q", tt.fraction, tt.waxing, got, tt.want)
		}
	}
}
