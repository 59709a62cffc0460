// Package sim drives a celestial tree with a simulation clock and turns
// each tick into a Frame: resolved positions, rotations and the phase
// readout for every body.
//
// Frames are evaluated sequentially. All position queries are pure, so a
// host that needs more throughput may evaluate sibling subtrees in
// parallel; the only mutation is Tree.Update, done once per Step.
package sim

import (
	"fmt"
	"sync"
	"time"

	"github.com/litescript/orrery/internal/astro"
	"github.com/litescript/orrery/internal/celestial"
	"github.com/litescript/orrery/internal/clock"
	"github.com/litescript/orrery/internal/config"
	"github.com/litescript/orrery/internal/logging"
)

// Config holds driver settings.
type Config struct {
	FPS float64

	// FixedStep makes Run advance by exactly 1/FPS of wall time per frame
	// instead of the measured wall delta, for reproducible output.
	FixedStep bool

	// Phase overrides the document's phase triad when set.
	Phase *config.PhaseTriad
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		FPS: 30,
	}
}

// Session owns one tree and one clock.
type Session struct {
	mu sync.Mutex

	tree   *celestial.Tree
	clock  *clock.Clock
	phase  *config.PhaseTriad
	cfg    Config
	logger *logging.Logger

	seq uint64
}

// New creates a session over an already built tree.
func New(tree *celestial.Tree, clk *clock.Clock, cfg Config, logger *logging.Logger) *Session {
	if logger == nil {
		logger = logging.Discard()
	}
	if cfg.FPS <= 0 {
		cfg.FPS = DefaultConfig().FPS
	}
	return &Session{
		tree:   tree,
		clock:  clk,
		phase:  cfg.Phase,
		cfg:    cfg,
		logger: logger,
	}
}

// FromDocument builds the tree and a clock seeded from the document's
// time settings, then applies clock options on top.
func FromDocument(doc *config.Document, cfg Config, logger *logging.Logger, opts ...clock.Option) (*Session, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	tree, err := celestial.Build(doc)
	if err != nil {
		return nil, err
	}

	var clockOpts []clock.Option
	if ts := doc.Time; ts != nil {
		if ts.Scale != nil {
			clockOpts = append(clockOpts, clock.WithScale(*ts.Scale))
		}
		if ts.Start != "" {
			start, err := time.Parse(time.RFC3339, ts.Start)
			if err != nil {
				return nil, fmt.Errorf("time.start: %w", err)
			}
			clockOpts = append(clockOpts, clock.WithInstant(start))
		}
		if ts.Paused {
			clockOpts = append(clockOpts, clock.WithPaused(true))
		}
	}
	clockOpts = append(clockOpts, opts...)

	if cfg.Phase == nil && doc.Phase != nil {
		p := *doc.Phase
		cfg.Phase = &p
	}
	if cfg.Phase != nil {
		for _, id := range []string{cfg.Phase.Observed, cfg.Phase.Reference, cfg.Phase.Light} {
			if _, ok := tree.Lookup(id); !ok {
				return nil, fmt.Errorf("phase body %q: %w", id, celestial.ErrUnknownBody)
			}
		}
	}

	s := New(tree, clock.New(clockOpts...), cfg, logger)
	logger.Debug("session: %d bodies, scale %v, starting %s",
		tree.Len(), s.clock.Scale(), clock.FormatInstant(s.clock.Now()))
	return s, nil
}

func (s *Session) Tree() *celestial.Tree { return s.tree }
func (s *Session) Clock() *clock.Clock   { return s.clock }
func (s *Session) Config() Config        { return s.cfg }

// Step ticks the clock by wallDelta, advances the tree's accumulators by
// the simulated delta and returns the resulting frame.
func (s *Session) Step(wallDelta time.Duration) Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	dt := s.clock.Tick(wallDelta)
	if dt != 0 {
		s.tree.Update(dt)
	}
	s.seq++
	return s.frameLocked(s.clock.Snapshot())
}

// Frame returns the current frame without advancing time.
func (s *Session) Frame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frameLocked(s.clock.Snapshot())
}

// FrameAt evaluates the tree at an arbitrary instant without touching the
// clock. Circular-mode bodies stay where the last Step left them.
func (s *Session) FrameAt(at time.Time) Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.clock.Snapshot()
	st.Instant = at
	return s.frameLocked(st)
}

func (s *Session) frameLocked(st clock.State) Frame {
	t := s.tree
	positions := t.Positions(st.Instant)

	f := Frame{
		Seq:       s.seq,
		Instant:   st.Instant,
		JulianDay: julianDay(st.Instant),
		Scale:     st.Scale,
		Paused:    st.Paused,
		Bodies:    make([]BodyState, 0, t.Len()),
	}

	t.Walk(func(h celestial.Handle, n celestial.Node) {
		pos := positions[h]
		b := BodyState{
			ID:               n.ID,
			Name:             n.DisplayName(),
			Kind:             n.Kind.String(),
			Motion:           n.Motion().String(),
			Depth:            t.Depth(h),
			Color:            n.Color,
			DisplayRadius:    n.DisplayRadius,
			Position:         vec(pos),
			DistanceFromRoot: pos.Norm(),
		}

		if p, ok := t.Parent(h); ok {
			rel := pos.Sub(positions[p])
			b.Parent = t.Node(p).ID
			b.Relative = vec(rel)
			b.DistanceFromParent = rel.Norm()
		}

		if h != t.Root() {
			ecl := astro.SceneToEcliptic(pos)
			b.EclipticLonDeg = astro.EclipticLongitude(ecl)
			b.EclipticLatDeg = astro.EclipticLatitude(ecl)
			b.LightTimeSec = astro.LightTimeFromAU(b.DistanceFromRoot)
		}

		rot := t.RotationOf(h)
		b.TiltRad, b.SpinRad = rot.TiltRad, rot.SpinRad

		f.Bodies = append(f.Bodies, b)
	})

	if s.phase != nil {
		p, err := t.Phase(s.phase.Observed, s.phase.Reference, s.phase.Light, st.Instant)
		if err != nil {
			s.logger.Warn("phase: %v", err)
		} else {
			f.Phase = &PhaseState{
				Observed:  s.phase.Observed,
				Reference: s.phase.Reference,
				Light:     s.phase.Light,
				Fraction:  p.Fraction,
				Waxing:    p.Waxing,
				Name:      p.Name,
			}
		}
	}

	return f
}
