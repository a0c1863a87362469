package sim

import (
	"fmt"
	"time"
)

// MaxCatchUpTicks caps how many ticks a single Advance call may run when
// draining backlog. At the default 150 Hz tick rate this is 0.3 s of
// simulation; anything beyond is dropped rather than stalling the host.
const MaxCatchUpTicks = 45

// Scheduler accumulates wall-clock time and drives the simulation in
// discrete, equal-sized ticks, regardless of how irregularly the host calls
// it. Based on the method from
// https://gafferongames.com/post/fix_your_timestep/.
type Scheduler struct {
	tick time.Duration
	acc  time.Duration // Residue, always < tick after draining
}

// NewScheduler creates a scheduler with the given tick duration.
func NewScheduler(tick time.Duration) (*Scheduler, error) {
	if tick <= 0 {
		return nil, fmt.Errorf("sim: tick duration %v: %w", tick, ErrMisconfiguration)
	}
	return &Scheduler{tick: tick}, nil
}

// TickDuration returns the fixed tick duration.
func (s *Scheduler) TickDuration() time.Duration {
	return s.tick
}

// Advance adds elapsed time to the accumulator and calls step once per
// whole tick it can drain, with dt fixed at the tick duration in seconds.
// A stalled host is caught up with back-to-back ticks, not slow-motion.
// When the backlog exceeds MaxCatchUpTicks, the excess whole ticks are
// dropped and returned so the caller can report them.
func (s *Scheduler) Advance(elapsed time.Duration, step func(dt float64)) (ticks int, dropped time.Duration) {
	if elapsed > 0 {
		s.acc += elapsed
	}
	dt := s.tick.Seconds()
	for s.acc >= s.tick {
		if ticks >= MaxCatchUpTicks {
			dropped = s.acc / s.tick * s.tick
			s.acc -= dropped
			return ticks, dropped
		}
		s.acc -= s.tick
		step(dt)
		ticks++
	}
	return ticks, 0
}

// Residue returns the unconsumed time carried to the next Advance call.
func (s *Scheduler) Residue() time.Duration {
	return s.acc
}

// Alpha returns the residue in seconds, used for render interpolation.
func (s *Scheduler) Alpha() float64 {
	return s.acc.Seconds()
}
