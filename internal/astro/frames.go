package astro

import (
	"fmt"
	"math"
)

// AU is the Astronomical Unit in kilometers.
const AU = 149597870.7

// Scene frame convention
//
// Positions produced by the celestial tree use a Y-up scene frame:
// X points toward the vernal equinox, Y toward the north pole of the
// reference plane and Z completes the reference plane. Orbital mechanics
// is done in the classical Z-up ecliptic frame and mapped with
// EclipticToScene.

// EclipticToScene maps a Z-up ecliptic vector into the Y-up scene frame.
func EclipticToScene(ecl Vec3) Vec3 {
	return Vec3{X: ecl.X, Y: ecl.Z, Z: ecl.Y}
}

// SceneToEcliptic maps a Y-up scene vector back into the ecliptic frame.
func SceneToEcliptic(s Vec3) Vec3 {
	return Vec3{X: s.X, Y: s.Z, Z: s.Y}
}

// ProgradeAxis is the angular momentum direction, in the scene frame, of
// motion that is counter-clockwise seen from ecliptic north. The axis
// swap in EclipticToScene flips handedness, hence -Y.
var ProgradeAxis = Vec3{Y: -1}

// EclipticLatitude returns the ecliptic latitude in degrees for an
// ecliptic vector.
func EclipticLatitude(v Vec3) float64 {
	r := v.Norm()
	if r == 0 {
		return 0
	}
	return RadToDeg(math.Asin(v.Z / r))
}

// EclipticLongitude returns the ecliptic longitude in degrees for an
// ecliptic vector.
func EclipticLongitude(v Vec3) float64 {
	return NormalizeDegrees(RadToDeg(math.Atan2(v.Y, v.X)))
}

// ProjectedPoint represents a 2D projected position with metadata.
type ProjectedPoint struct {
	X float64 // Screen X coordinate (display units)
	Y float64 // Screen Y coordinate (display units)
	R float64 // Original 3D distance
	H float64 // Height above the reference plane
}

// ScaleMode defines how radial distances are mapped to screen space.
type ScaleMode int

const (
	// ScaleLogR uses logarithmic scaling: r_display = log10(r + 1)
	ScaleLogR ScaleMode = iota

	// ScaleInner uses linear scaling optimized for 0-5 units
	ScaleInner

	// ScaleOuter is linear to 5 units, logarithmic beyond
	ScaleOuter
)

// String returns the short mode name used by the HUD.
func (m ScaleMode) String() string {
	switch m {
	case ScaleLogR:
		return "Log"
	case ScaleInner:
		return "Inner"
	case ScaleOuter:
		return "Outer"
	default:
		return "?"
	}
}

// ProjectionConfig configures the top-down projection.
type ProjectionConfig struct {
	Scale float64   // Base scale factor
	Mode  ScaleMode // Scaling mode
}

// DefaultProjectionConfig returns a reasonable default configuration.
func DefaultProjectionConfig() ProjectionConfig {
	return ProjectionConfig{
		Scale: 1.0,
		Mode:  ScaleLogR,
	}
}

// ProjectTopDown projects a scene-frame vector onto the reference plane,
// looking down the +Y axis. Screen X follows scene X and screen Y follows
// scene Z.
func ProjectTopDown(v Vec3, cfg ProjectionConfig) ProjectedPoint {
	r := math.Hypot(v.X, v.Z)
	rDisplay := scaleRadius(r, cfg)
	angle := math.Atan2(v.Z, v.X)

	return ProjectedPoint{
		X: rDisplay * math.Cos(angle) * cfg.Scale,
		Y: rDisplay * math.Sin(angle) * cfg.Scale,
		R: v.Norm(),
		H: v.Y,
	}
}

// scaleRadius applies the configured scaling mode to a radial distance.
func scaleRadius(r float64, cfg ProjectionConfig) float64 {
	switch cfg.Mode {
	case ScaleLogR:
		// log10(r + 1): 0 at origin, ~0.78 at 5, ~1.04 at 10, ~1.32 at 20
		return math.Log10(r + 1)

	case ScaleInner:
		if r > 5 {
			return 5
		}
		return r

	case ScaleOuter:
		if r <= 5 {
			return r / 5 * 0.5
		}
		return 0.5 + math.Log10(r/5+1)*0.5

	default:
		return math.Log10(r + 1)
	}
}

// KmToAU converts kilometers to Astronomical Units.
func KmToAU(km float64) float64 {
	return km / AU
}

// AUToKm converts Astronomical Units to kilometers.
func AUToKm(au float64) float64 {
	return au * AU
}

// LightTimeFromAU returns the one-way light time in seconds for a distance in AU.
func LightTimeFromAU(au float64) float64 {
	// Light travels 1 AU in ~499.005 seconds
	return au * 499.005
}

// FormatLightTime formats light time in seconds to a human-readable string.
func FormatLightTime(seconds float64) string {
	switch {
	case seconds < 60:
		return fmt.Sprintf("%.1fs", seconds)
	case seconds < 3600:
		s := int(seconds)
		return fmt.Sprintf("%dm%ds", s/60, s%60)
	default:
		s := int(seconds)
		return fmt.Sprintf("%dh%dm", s/3600, (s%3600)/60)
	}
}
