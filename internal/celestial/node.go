package celestial

import (
	"time"

	"github.com/litescript/orrery/internal/orbit"
)

// Handle identifies a node within its Tree. Handles are only meaningful
// for the tree that issued them.
type Handle int

// NoHandle is the parent of the root.
const NoHandle Handle = -1

// MotionKind tells which motion model drives a node.
type MotionKind int

const (
	MotionNone MotionKind = iota // the root star
	MotionKeplerian
	MotionCircular
)

func (m MotionKind) String() string {
	switch m {
	case MotionNone:
		return "fixed"
	case MotionKeplerian:
		return "keplerian"
	case MotionCircular:
		return "circular"
	default:
		return "unknown"
	}
}

// StarInfo holds star-only attributes.
type StarInfo struct {
	Luminosity    float64 // solar luminosities
	TemperatureK  float64
	SpectralClass string
}

// Node is one body of the tree. At most one of Keplerian and Circular is
// set; neither is set only for the root star.
type Node struct {
	ID             string
	Name           string
	Kind           Kind
	PhysicalRadius float64
	DisplayRadius  float64
	Color          string
	RotationPeriod time.Duration // 0 = no rotation
	AxialTiltDeg   float64

	Atmosphere  bool
	Rings       bool
	Synchronous bool // tidally locked: spins at its mean orbital rate

	Keplerian *orbit.Elements
	Circular  *orbit.Circular

	// MotionConstant is the daily motion constant used with Keplerian.
	MotionConstant float64

	Star *StarInfo

	parent   Handle
	children []Handle
	depth    int

	spin       float64 // accumulated self-rotation, radians
	orbitAngle float64 // accumulated circular angle, radians
}

// Motion reports which motion model drives n.
func (n Node) Motion() MotionKind {
	switch {
	case n.Keplerian != nil:
		return MotionKeplerian
	case n.Circular != nil:
		return MotionCircular
	default:
		return MotionNone
	}
}

// DisplayName returns Name, or ID when no name was configured.
func (n Node) DisplayName() string {
	if n.Name != "" {
		return n.Name
	}
	return n.ID
}

// Spin returns the accumulated self-rotation in radians.
func (n Node) Spin() float64 { return n.spin }

// OrbitAngle returns the accumulated circular-mode angle in radians.
func (n Node) OrbitAngle() float64 { return n.orbitAngle }
