package sim

import (
	"context"
	"errors"
	"time"

	"golang.org/x/time/rate"
)

// ErrStop may be returned by a sink to end Run without error.
var ErrStop = errors.New("stop")

// Sink consumes frames produced by Run.
type Sink func(Frame) error

// Run steps the session at cfg.FPS until ctx is canceled or the sink
// returns an error. It returns nil when stopped by ctx or ErrStop.
func Run(ctx context.Context, s *Session, sink Sink) error {
	fps := s.cfg.FPS
	step := time.Duration(float64(time.Second) / fps)
	limiter := rate.NewLimiter(rate.Limit(fps), 1)

	s.logger.Debug("run: %.0f fps, fixed step %v", fps, s.cfg.FixedStep)

	last := time.Now()
	first := true
	for {
		if err := limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				s.logger.Debug("run: stopped after frame %d", s.seq)
				return nil
			}
			return err
		}

		now := time.Now()
		delta := now.Sub(last)
		last = now
		switch {
		case first:
			delta = 0
			first = false
		case s.cfg.FixedStep:
			delta = step
		}

		if err := sink(s.Step(delta)); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}
			return err
		}
	}
}
