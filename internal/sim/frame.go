package sim

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"

	"github.com/litescript/orrery/internal/astro"
)

// Frame is the evaluated state of every body at one simulated instant.
type Frame struct {
	Seq       uint64      `json:"seq"`
	Instant   time.Time   `json:"instant"`
	JulianDay float64     `json:"jd"`
	Scale     float64     `json:"scale"`
	Paused    bool        `json:"paused"`
	Bodies    []BodyState `json:"bodies"`
	Phase     *PhaseState `json:"phase,omitempty"`
}

// Vec is a JSON-friendly scene-frame vector.
type Vec [3]float64

func vec(v astro.Vec3) Vec { return Vec{v.X, v.Y, v.Z} }

// Vec3 converts back to an astro vector.
func (v Vec) Vec3() astro.Vec3 { return astro.Vec3{X: v[0], Y: v[1], Z: v[2]} }

// BodyState is one body within a frame. Distances are in the tree's
// length unit; ecliptic angles are heliocentric, measured from the root.
type BodyState struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Motion string `json:"motion"`
	Parent string `json:"parent,omitempty"`
	Depth  int    `json:"depth"`

	Position Vec `json:"position"`
	Relative Vec `json:"relative"`

	DistanceFromRoot   float64 `json:"distance_from_root"`
	DistanceFromParent float64 `json:"distance_from_parent"`
	EclipticLonDeg     float64 `json:"ecliptic_lon_deg"`
	EclipticLatDeg     float64 `json:"ecliptic_lat_deg"`
	LightTimeSec       float64 `json:"light_time_seconds"`

	TiltRad float64 `json:"tilt_rad"`
	SpinRad float64 `json:"spin_rad"`

	Color         string  `json:"color"`
	DisplayRadius float64 `json:"display_radius"`
}

// PhaseState is the illumination readout of the configured triad.
type PhaseState struct {
	Observed  string  `json:"observed"`
	Reference string  `json:"reference"`
	Light     string  `json:"light"`
	Fraction  float64 `json:"fraction"`
	Waxing    bool    `json:"waxing"`
	Name      string  `json:"name"`
}

// Body returns the state of body id, if present.
func (f *Frame) Body(id string) (BodyState, bool) {
	for _, b := range f.Bodies {
		if b.ID == id {
			return b, true
		}
	}
	return BodyState{}, false
}

func julianDay(t time.Time) float64 {
	return julian.TimeToJD(t)
}
