// pkg/engine/clock.go
package engine

import "time"

// Clock paces the frame loop. Tick blocks until the next frame is due at
// the target rate and returns the milliseconds elapsed since the
// previous Tick, for use as the frame's integration delta.
type Clock interface {
	Tick(targetFPS int) float64
}

// WallClock is a Clock backed by the wall clock. It sleeps off whatever
// remains of the frame budget and reports real elapsed time, so a slow
// frame yields a proportionally larger delta instead of slowing the
// simulation down.
type WallClock struct {
	last time.Time
}

// NewWallClock creates a wall clock whose first Tick returns one full
// frame duration.
func NewWallClock() *WallClock {
	return &WallClock{}
}

// Tick implements Clock
func (c *WallClock) Tick(targetFPS int) float64 {
	// Config validation rejects non-positive rates, but a caller-built
	// Game reaches here unchecked. Floor it rather than divide by zero.
	if targetFPS <= 0 {
		targetFPS = 1
	}
	frame := time.Second / time.Duration(targetFPS)

	if c.last.IsZero() {
		c.last = time.Now()
		return float64(frame) / float64(time.Millisecond)
	}

	elapsed := time.Since(c.last)
	if elapsed < frame {
		time.Sleep(frame - elapsed)
	}

	now := time.Now()
	dt := now.Sub(c.last)
	c.last = now
	return float64(dt) / float64(time.Millisecond)
}

// FixedClock is a Clock that never sleeps and always reports the same
// delta. Headless runs and tests use it for deterministic stepping.
type FixedClock struct {
	FrameMS float64
	Ticks   int
}

// Tick implements Clock
func (c *FixedClock) Tick(targetFPS int) float64 {
	c.Ticks++
	return c.FrameMS
}
