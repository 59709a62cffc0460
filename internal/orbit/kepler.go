package orbit

import "math"

const (
	// MaxKeplerIterations bounds the Newton-Raphson loop.
	MaxKeplerIterations = 10

	// KeplerTolerance is the |E - e·sin E - M| residual that stops iteration.
	KeplerTolerance = 1e-8

	// highEccentricity is where the E₀ = M seed stops converging within
	// MaxKeplerIterations; above it the solver starts from π.
	highEccentricity = 0.8
)

// SolveKepler returns the eccentric anomaly E (radians) for mean anomaly m
// (radians) and eccentricity e in [0, 1), solving E - e·sin E = m with
// Newton-Raphson. The result is not wrapped to [0, 2π).
func SolveKepler(m, e float64) float64 {
	E := m
	if e >= highEccentricity {
		E = math.Pi
	}

	for i := 0; i < MaxKeplerIterations; i++ {
		f := E - e*math.Sin(E) - m
		if math.Abs(f) < KeplerTolerance {
			break
		}
		E -= f / (1 - e*math.Cos(E))
	}

	return E
}

// TrueAnomaly converts an eccentric anomaly to the true anomaly using the
// half-angle form, which stays well conditioned at periapsis and apoapsis.
func TrueAnomaly(E, e float64) float64 {
	return 2 * math.Atan2(
		math.Sqrt(1+e)*math.Sin(E/2),
		math.Sqrt(1-e)*math.Cos(E/2),
	)
}

// KeplerResidual returns E - e·sin E - m.
func KeplerResidual(E, e, m float64) float64 {
	return E - e*math.Sin(E) - m
}
