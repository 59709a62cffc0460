package celestial

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/litescript/orrery/internal/config"
	"github.com/litescript/orrery/internal/orbit"
)

const defaultColor = "#ffffff"

// Build constructs a tree from a configuration document. Flat, nested and
// mixed body lists produce the same tree. Every problem found is reported
// in a single *ConfigurationError and no tree is returned.
func Build(doc *config.Document) (*Tree, error) {
	cerr := &ConfigurationError{}
	if doc == nil {
		cerr.Add("no configuration")
		return nil, cerr
	}

	for _, issue := range doc.FieldIssues() {
		cerr.Add(issue)
	}

	bodies, flattenIssues := doc.Flatten()
	for _, issue := range flattenIssues {
		cerr.Add(issue)
	}

	byID := make(map[string]int, len(bodies))
	for i, b := range bodies {
		if b.ID == "" {
			continue
		}
		if _, dup := byID[b.ID]; dup {
			cerr.Addf("duplicate body id %q", b.ID)
			continue
		}
		byID[b.ID] = i
	}

	kinds := make([]Kind, len(bodies))
	known := make([]bool, len(bodies))
	for i, b := range bodies {
		k, ok := ParseKind(b.Kind)
		if !ok {
			if b.Kind != "" {
				cerr.Addf("body %q: unknown kind %q", b.ID, b.Kind)
			}
			continue
		}
		kinds[i], known[i] = k, true
	}

	var roots []string
	for i, b := range bodies {
		if b.ParentID == "" {
			roots = append(roots, b.ID)
			if known[i] && kinds[i] != Star {
				cerr.Addf("body %q has no parent but is a %s; only a Star can be the root", b.ID, kinds[i])
			}
			continue
		}

		if known[i] && kinds[i] == Star {
			cerr.Addf("star %q cannot have a parent", b.ID)
		}

		p, ok := byID[b.ParentID]
		if !ok {
			cerr.Addf("body %q: parent %q not found", b.ID, b.ParentID)
			continue
		}
		if known[i] && kinds[i] == Moon && known[p] && !kinds[p].canHostMoon() {
			cerr.Addf("moon %q must orbit a Planet or DwarfPlanet, not %s %q", b.ID, kinds[p], b.ParentID)
		}
	}

	switch len(roots) {
	case 0:
		cerr.Add("no root body: exactly one body must have no parent")
	case 1:
	default:
		cerr.Addf("multiple root bodies: %s", strings.Join(roots, ", "))
	}

	nodes := make([]Node, len(bodies))
	for i, b := range bodies {
		if !known[i] {
			continue
		}
		nodes[i] = newNode(b, kinds[i], cerr)
	}

	if cerr.HasIssues() {
		return nil, cerr
	}

	t := link(bodies, nodes, byID, cerr)
	if cerr.HasIssues() {
		return nil, cerr
	}
	return t, nil
}

// newNode converts one flattened body, recording problems in cerr.
func newNode(b config.Body, kind Kind, cerr *ConfigurationError) Node {
	n := Node{
		ID:             b.ID,
		Name:           b.Name,
		Kind:           kind,
		PhysicalRadius: b.PhysicalRadius,
		DisplayRadius:  b.DisplayRadius,
		Color:          defaultColor,
		RotationPeriod: time.Duration(b.RotationPeriodHours * float64(time.Hour)),
		AxialTiltDeg:   b.AxialTiltDeg,
		Atmosphere:     b.Atmosphere,
		Rings:          b.Rings,
		Synchronous:    b.Synchronous,
		parent:         NoHandle,
	}

	if b.Color != "" {
		if c, err := config.NormalizeColor(b.Color); err == nil {
			n.Color = c
		}
	}

	if b.Star != nil {
		if kind != Star {
			cerr.Addf("body %q: star attributes on a %s", b.ID, kind)
		}
		n.Star = &StarInfo{
			Luminosity:    b.Star.Luminosity,
			TemperatureK:  b.Star.TemperatureK,
			SpectralClass: b.Star.SpectralClass,
		}
	}

	if b.Synchronous && kind != Moon {
		cerr.Addf("body %q: only moons can rotate synchronously", b.ID)
	}

	switch {
	case kind == Star:
		if b.Keplerian != nil || b.Circular != nil {
			cerr.Addf("star %q cannot have motion", b.ID)
		}
	case b.Keplerian != nil && b.Circular != nil:
		cerr.Addf("body %q: set exactly one of keplerian and circular, not both", b.ID)
	case b.Keplerian != nil:
		el, k, err := keplerian(b.Keplerian)
		if err != nil {
			cerr.addErr(fmt.Sprintf("body %q", b.ID), err)
			break
		}
		n.Keplerian, n.MotionConstant = &el, k
	case b.Circular != nil:
		c, err := orbit.NewCircular(b.Circular.OrbitRadius, b.Circular.AngularRateDegPerSec, b.Circular.InitialPhaseDeg)
		if err != nil {
			cerr.addErr(fmt.Sprintf("body %q", b.ID), err)
			break
		}
		n.Circular = &c
	default:
		cerr.Addf("body %q: a %s needs keplerian or circular motion", b.ID, kind)
	}

	return n
}

func keplerian(m *config.KeplerianMotion) (orbit.Elements, float64, error) {
	if m.Eccentricity == nil || m.InclinationDeg == nil || m.AscendingNodeDeg == nil {
		return orbit.Elements{}, 0, errors.New("eccentricity, inclinationDeg and ascendingNodeDeg are required")
	}
	if m.Epoch == "" {
		return orbit.Elements{}, 0, errors.New("epoch is required")
	}
	epoch, err := time.Parse(time.RFC3339, m.Epoch)
	if err != nil {
		return orbit.Elements{}, 0, fmt.Errorf("epoch: %w", err)
	}

	k := m.MotionConstant
	if k == 0 {
		k = orbit.GaussianDailyMotion
	}

	if !m.UsesMeanLongitude() {
		if m.ArgPerihelionDeg == nil || m.MeanAnomalyDeg == nil {
			return orbit.Elements{}, 0, errors.New("argPerihelionDeg and meanAnomalyDeg must be given together")
		}
		el, err := orbit.New(orbit.Params{
			SemiMajorAxis:    m.SemiMajorAxis,
			Eccentricity:     *m.Eccentricity,
			InclinationDeg:   *m.InclinationDeg,
			AscendingNodeDeg: *m.AscendingNodeDeg,
			ArgPerihelionDeg: *m.ArgPerihelionDeg,
			MeanAnomalyDeg:   *m.MeanAnomalyDeg,
			Epoch:            epoch,
		})
		return el, k, err
	}

	if m.ArgPerihelionDeg != nil || m.MeanAnomalyDeg != nil {
		return orbit.Elements{}, 0, errors.New("mix of argPerihelionDeg/meanAnomalyDeg and longPerihelionDeg/meanLongitudeDeg")
	}
	if m.LongPerihelionDeg == nil || m.MeanLongitudeDeg == nil {
		return orbit.Elements{}, 0, errors.New("longPerihelionDeg and meanLongitudeDeg must be given together")
	}

	el, err := orbit.FromMeanLongitude(orbit.MeanLongitudeParams{
		SemiMajorAxis:     m.SemiMajorAxis,
		Eccentricity:      *m.Eccentricity,
		InclinationDeg:    *m.InclinationDeg,
		AscendingNodeDeg:  *m.AscendingNodeDeg,
		LongPerihelionDeg: *m.LongPerihelionDeg,
		MeanLongitudeDeg:  *m.MeanLongitudeDeg,
		Epoch:             epoch,
	})
	return el, k, err
}

// link lays the validated nodes out parent-first from the single root.
// Bodies not reached from the root sit on a parent cycle.
func link(bodies []config.Body, nodes []Node, byID map[string]int, cerr *ConfigurationError) *Tree {
	children := make([][]int, len(bodies))
	root := -1
	for i, b := range bodies {
		if b.ParentID == "" {
			root = i
			continue
		}
		p := byID[b.ParentID]
		children[p] = append(children[p], i)
	}

	t := &Tree{
		nodes: make([]Node, 0, len(nodes)),
		index: make(map[string]Handle, len(nodes)),
	}

	var place func(i int, parent Handle, depth int)
	place = func(i int, parent Handle, depth int) {
		h := Handle(len(t.nodes))
		n := nodes[i]
		n.parent = parent
		n.depth = depth
		t.nodes = append(t.nodes, n)
		t.index[n.ID] = h
		if parent != NoHandle {
			t.nodes[parent].children = append(t.nodes[parent].children, h)
		}
		for _, c := range children[i] {
			place(c, h, depth+1)
		}
	}
	place(root, NoHandle, 0)

	if len(t.nodes) != len(bodies) {
		for _, b := range bodies {
			if _, ok := t.index[b.ID]; !ok {
				cerr.Addf("body %q is not connected to the root (parent cycle)", b.ID)
			}
		}
	}
	return t
}
