package celestial

import (
	"math"
	"time"

	"github.com/litescript/orrery/internal/astro"
	"github.com/litescript/orrery/internal/orbit"
)

// Tree is an immutable body hierarchy plus the per-node angle
// accumulators of the circular motion mode.
//
// Nodes are stored parent-first in depth-first configuration order, so a
// single forward pass resolves every position. Position queries on
// Keplerian nodes are pure and may run concurrently; Update and
// ResolvedRotation mutate accumulators and need a single writer.
type Tree struct {
	nodes []Node
	index map[string]Handle
}

// Rotation is a body's orientation: a fixed axial tilt about the X axis
// and an accumulated spin about the tilted pole.
type Rotation struct {
	TiltRad float64
	SpinRad float64
}

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Root returns the handle of the root star.
func (t *Tree) Root() Handle { return 0 }

// Lookup resolves an id to a handle.
func (t *Tree) Lookup(id string) (Handle, bool) {
	h, ok := t.index[id]
	return h, ok
}

// Node returns a copy of the node at h.
func (t *Tree) Node(h Handle) Node {
	n := t.nodes[h]
	n.children = append([]Handle(nil), n.children...)
	return n
}

// Parent returns the parent handle, or NoHandle and false for the root.
func (t *Tree) Parent(h Handle) (Handle, bool) {
	p := t.nodes[h].parent
	return p, p != NoHandle
}

// Children returns the children of h in configuration order.
func (t *Tree) Children(h Handle) []Handle {
	return append([]Handle(nil), t.nodes[h].children...)
}

// Depth returns the number of ancestors of h.
func (t *Tree) Depth(h Handle) int { return t.nodes[h].depth }

// Walk calls fn with a copy of every node, depth first in configuration
// order.
func (t *Tree) Walk(fn func(h Handle, n Node)) {
	for i := range t.nodes {
		fn(Handle(i), t.Node(Handle(i)))
	}
}

// IDs returns every body id in walk order.
func (t *Tree) IDs() []string {
	ids := make([]string, len(t.nodes))
	for i := range t.nodes {
		ids[i] = t.nodes[i].ID
	}
	return ids
}

// ResolvedPosition returns the scene-frame position of the body id at
// instant at.
func (t *Tree) ResolvedPosition(id string, at time.Time) (astro.Vec3, error) {
	h, ok := t.index[id]
	if !ok {
		return astro.Vec3{}, unknownBody(id)
	}
	return t.PositionOf(h, at), nil
}

// PositionOf returns the scene-frame position of h at instant at,
// composing parent offsets up to the root.
func (t *Tree) PositionOf(h Handle, at time.Time) astro.Vec3 {
	n := &t.nodes[h]
	if n.parent == NoHandle {
		return astro.Vec3{}
	}
	return t.PositionOf(n.parent, at).Add(t.offset(n, at))
}

// RelativePosition returns the position of h relative to its parent.
func (t *Tree) RelativePosition(h Handle, at time.Time) astro.Vec3 {
	return t.offset(&t.nodes[h], at)
}

// Positions resolves every node in one pass, indexed by handle.
func (t *Tree) Positions(at time.Time) []astro.Vec3 {
	out := make([]astro.Vec3, len(t.nodes))
	for i := range t.nodes {
		n := &t.nodes[i]
		if n.parent == NoHandle {
			continue
		}
		out[i] = out[n.parent].Add(t.offset(n, at))
	}
	return out
}

func (t *Tree) offset(n *Node, at time.Time) astro.Vec3 {
	switch n.Motion() {
	case MotionKeplerian:
		return orbit.PositionAtWith(n.MotionConstant, *n.Keplerian, at, astro.Vec3{})
	case MotionCircular:
		return n.Circular.Offset(n.orbitAngle)
	case MotionNone:
		return astro.Vec3{}
	default:
		return astro.Vec3{}
	}
}

// Update advances every circular node's orbital angle and every node's
// spin by dt of simulated time. Call it once per tick.
func (t *Tree) Update(dt time.Duration) {
	for i := range t.nodes {
		n := &t.nodes[i]
		if n.Circular != nil {
			n.orbitAngle = n.Circular.Advance(n.orbitAngle, dt)
		}
		advanceSpin(n, dt)
	}
}

// ResolvedRotation advances the spin of body id by dt and returns its
// rotation. It is the per-body form of the spin half of Update; a driver
// uses one or the other on a given tick, not both.
func (t *Tree) ResolvedRotation(id string, dt time.Duration) (Rotation, error) {
	h, ok := t.index[id]
	if !ok {
		return Rotation{}, unknownBody(id)
	}
	n := &t.nodes[h]
	advanceSpin(n, dt)
	return rotationOf(n), nil
}

// RotationOf returns the current rotation of h without advancing it.
func (t *Tree) RotationOf(h Handle) Rotation {
	return rotationOf(&t.nodes[h])
}

func rotationOf(n *Node) Rotation {
	return Rotation{
		TiltRad: astro.DegToRad(n.AxialTiltDeg),
		SpinRad: n.spin,
	}
}

func advanceSpin(n *Node, dt time.Duration) {
	if n.Synchronous {
		switch n.Motion() {
		case MotionCircular:
			n.spin = astro.NormalizeRadians(n.Circular.Angle(n.orbitAngle))
			return
		case MotionKeplerian:
			rate := astro.DegToRad(n.MotionConstant/math.Pow(n.Keplerian.SemiMajorAxis(), 1.5)) / 86400
			n.spin = astro.NormalizeRadians(n.spin + rate*dt.Seconds())
			return
		case MotionNone:
		}
	}

	if n.RotationPeriod <= 0 {
		return
	}
	rate := 2 * math.Pi / n.RotationPeriod.Seconds()
	n.spin = astro.NormalizeRadians(n.spin + rate*dt.Seconds())
}

// PhaseReading is the illumination state of an observed body.
type PhaseReading struct {
	Fraction float64
	Waxing   bool
	Name     string
}

// IlluminatedFraction returns the lit fraction of observed as seen from
// reference with light as the light source. The three bodies must not
// coincide.
func (t *Tree) IlluminatedFraction(observed, reference, light string, at time.Time) (float64, error) {
	p, err := t.Phase(observed, reference, light, at)
	return p.Fraction, err
}

// Phase returns the illuminated fraction plus its waxing direction and
// name.
func (t *Tree) Phase(observed, reference, light string, at time.Time) (PhaseReading, error) {
	var hs [3]Handle
	for i, id := range []string{observed, reference, light} {
		h, ok := t.index[id]
		if !ok {
			return PhaseReading{}, unknownBody(id)
		}
		hs[i] = h
	}

	o := t.PositionOf(hs[0], at)
	r := t.PositionOf(hs[1], at)
	l := t.PositionOf(hs[2], at)

	f := astro.IlluminatedFraction(o, r, l)
	waxing := astro.Waxing(o, r, l, astro.ProgradeAxis)
	return PhaseReading{
		Fraction: f,
		Waxing:   waxing,
		Name:     astro.DescribePhase(f, waxing),
	}, nil
}

// SamplePoints returns a closed display polyline of body id's orbit,
// relative to its parent. The root has no orbit and yields nil.
func (t *Tree) SamplePoints(id string, segments int) ([]astro.Vec3, error) {
	h, ok := t.index[id]
	if !ok {
		return nil, unknownBody(id)
	}
	return t.SamplePointsOf(h, segments), nil
}

// SamplePointsOf is SamplePoints for a handle.
func (t *Tree) SamplePointsOf(h Handle, segments int) []astro.Vec3 {
	n := &t.nodes[h]
	switch n.Motion() {
	case MotionKeplerian:
		return orbit.SamplePoints(*n.Keplerian, segments)
	case MotionCircular:
		return orbit.SampleCircle(n.Circular.Radius(), segments)
	case MotionNone:
		return nil
	default:
		return nil
	}
}
