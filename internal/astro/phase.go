package astro

// IlluminatedFraction returns the lit fraction of an observed body's disk
// as seen from a reference body, in [0, 1].
//
// Bodies are treated as points: d is the dot product of the unit vectors
// reference→observed and reference→light, and the result is (1 - d) / 2.
//   - 0   observed body lies toward the light (new)
//   - 0.5 the two directions are orthogonal (quarter)
//   - 1   observed body lies opposite the light (full)
//
// Coincident positions have no defined direction. Callers must not pass
// them; the zero-vector normalization makes the result 0.5 in that case.
// Penumbra and eclipses are not modelled.
func IlluminatedFraction(observed, reference, light Vec3) float64 {
	toObserved := observed.Sub(reference).Normalized()
	toLight := light.Sub(reference).Normalized()

	d := toObserved.Dot(toLight)
	f := (1 - d) / 2

	// Rounding can push d a hair outside [-1, 1].
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Waxing reports whether the observed body is moving from new toward full.
// axis is the angular momentum direction of the observed body's orbit
// (ProgradeAxis for tree positions). The body waxes while it leads the
// light direction in the sense of that rotation.
func Waxing(observed, reference, light, axis Vec3) bool {
	toObserved := observed.Sub(reference)
	toLight := light.Sub(reference)
	return toLight.Cross(toObserved).Dot(axis) > 0
}

// Phase names, in cycle order.
const (
	PhaseNew            = "New"
	PhaseWaxingCrescent = "Waxing Crescent"
	PhaseFirstQuarter   = "First Quarter"
	PhaseWaxingGibbous  = "Waxing Gibbous"
	PhaseFull           = "Full"
	PhaseWaningGibbous  = "Waning Gibbous"
	PhaseLastQuarter    = "Last Quarter"
	PhaseWaningCrescent = "Waning Crescent"
)

// DescribePhase names the phase for an illuminated fraction.
func DescribePhase(fraction float64, waxing bool) string {
	switch {
	case fraction < 0.03:
		return PhaseNew
	case fraction > 0.97:
		return PhaseFull
	case fraction >= 0.47 && fraction <= 0.53:
		if waxing {
			return PhaseFirstQuarter
		}
		return PhaseLastQuarter
	case fraction < 0.5:
		if waxing {
			return PhaseWaxingCrescent
		}
		return PhaseWaningCrescent
	default:
		if waxing {
			return PhaseWaxingGibbous
		}
		return PhaseWaningGibbous
	}
}
