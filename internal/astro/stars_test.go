package astro

import (
	"math"
	"testing"
)

func TestBrightStarsSorted(t *testing.T) {
	stars := BrightStars()
	if len(stars) < 40 {
		t.Fatalf("got %d stars, want at least 40", len(stars))
	}
	for i, s := range stars {
		if s.RADeg < 0 || s.RADeg >= 360 || math.Abs(s.DecDeg) > 90 {
			t.Errorf("%s: RA/Dec out of range (%v, %v)", s.Name, s.RADeg, s.DecDeg)
		}
		if i > 0 && s.Mag < stars[i-1].Mag-0.25 {
			t.Errorf("%s (mag %v) listed after dimmer %s", s.Name, s.Mag, stars[i-1].Name)
		}
	}
}

func TestEquatorialToEcliptic(t *testing.T) {
	tests := []struct {
		name string
		eq   Vec3
		lon  float64
		lat  float64
	}{
		// The equinox lies on both planes.
		{"vernal equinox", Vec3{X: 1}, 0, 0},
		// The celestial pole sits 90° - ε above the ecliptic at longitude 90°.
		{"north celestial pole", Vec3{Z: 1}, 90, 90 - MeanObliquityJ2000},
		// RA 90°, Dec ε is the summer solstice point on the ecliptic.
		{"summer solstice", Vec3{Y: math.Cos(DegToRad(MeanObliquityJ2000)), Z: math.Sin(DegToRad(MeanObliquityJ2000))}, 90, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ecl := EquatorialToEcliptic(tt.eq)
			if got := EclipticLatitude(ecl); math.Abs(got-tt.lat) > 1e-9 {
				t.Errorf("latitude = %v, want %v", got, tt.lat)
			}
			if got := EclipticLongitude(ecl); math.Abs(got-tt.lon) > 1e-9 {
				t.Errorf("longitude = %v, want %v", got, tt.lon)
			}
		})
	}
}

func TestStarDirection(t *testing.T) {
	for _, s := range BrightStars() {
		d := s.Direction()
		if math.Abs(d.Norm()-1) > 1e-12 {
			t.Errorf("%s: |direction| = %v", s.Name, d.Norm())
		}
	}

	// Regulus sits within half a degree of the ecliptic.
	regulus := BrightStar{"Regulus", 152.093, 11.967, 1.35}
	lat := EclipticLatitude(SceneToEcliptic(regulus.Direction()))
	if math.Abs(lat) > 0.6 {
		t.Errorf("Regulus ecliptic latitude = %v, want near 0", lat)
	}
}
