// pkg/engine/loop.go
package engine

import (
	"context"
	"time"
)

// maxFrameTime caps how much wall-clock time one Advance call may
// consume. Frames longer than this (debugger pauses, window drags) lose
// simulation time instead of triggering a catch-up spiral.
const maxFrameTime = 0.25

// Clock accumulates variable wall-clock frame times and converts them
// into whole fixed timesteps, carrying the remainder across frames. The
// simulation therefore consumes an identical dt sequence regardless of
// display refresh rate.
type Clock struct {
	dt          float64
	accumulator float64
}

// NewClock creates a clock that emits steps of the given fixed timestep.
func NewClock(dt float64) *Clock {
	return &Clock{dt: dt}
}

// Steps adds elapsed seconds and returns how many whole fixed steps are
// now due. The fractional remainder stays in the accumulator.
func (c *Clock) Steps(elapsed float64) int {
	if elapsed < 0 {
		return 0
	}
	if elapsed > maxFrameTime {
		elapsed = maxFrameTime
	}
	c.accumulator += elapsed

	steps := 0
	for c.accumulator >= c.dt {
		c.accumulator -= c.dt
		steps++
	}
	return steps
}

// Alpha returns the fraction of a step left in the accumulator, usable
// for render interpolation.
func (c *Clock) Alpha() float64 {
	return c.accumulator / c.dt
}

// Run drives the simulation at its fixed tick rate until the round ends
// or the context is canceled. Cancellation is honored only between
// ticks, never mid-step. Intended for headless use; windowed hosts call
// Step via a Clock from their frame callback instead.
func (s *Simulation) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Duration(float64(time.Second) * s.dt))
	defer ticker.Stop()

	for s.round.Phase == PhasePlaying {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Step()
		}
	}
	return nil
}
