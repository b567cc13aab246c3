package phase

import "time"

// Controller drives the Easy -> Normal -> Hard -> Finished progression
// Pure timer: elapsed time accumulates per tick, there is no failure path
type Controller struct {
	schedule Schedule
	current  Phase
	elapsed  time.Duration // since current phase started
}

// NewController creates a controller in Easy with zero elapsed time
// The schedule must already be validated
func NewController(schedule Schedule) *Controller {
	return &Controller{schedule: schedule}
}

// Advance accumulates dt and performs any due transitions
// Returns the phases entered during this call in order (nil when none)
// Overflow past a boundary carries into the next phase
func (c *Controller) Advance(dt time.Duration) []Phase {
	if c.current.Terminal() || dt <= 0 {
		return nil
	}

	c.elapsed += dt

	var entered []Phase
	for !c.current.Terminal() {
		span := c.schedule[c.current].Span()
		if c.elapsed < span {
			break
		}
		next := c.current.Next()
		if !CanTransition(c.current, next) {
			break
		}
		c.elapsed -= span
		c.current = next
		entered = append(entered, next)
	}

	if c.current.Terminal() {
		c.elapsed = 0
	}
	return entered
}

// Phase returns the current phase
func (c *Controller) Phase() Phase {
	return c.current
}

// Settings returns the active settings; false once Finished
func (c *Controller) Settings() (Settings, bool) {
	return c.schedule.For(c.current)
}

// Elapsed returns time since the current phase started
func (c *Controller) Elapsed() time.Duration {
	return c.elapsed
}

// Resting reports the rest sub-state: active duration over, transition pending
func (c *Controller) Resting() bool {
	if c.current.Terminal() {
		return false
	}
	return c.elapsed >= c.schedule[c.current].Duration
}

// SpawningAllowed is false while resting and permanently after Finished
func (c *Controller) SpawningAllowed() bool {
	return !c.current.Terminal() && !c.Resting()
}

// RemainingPhaseTime returns max(0, duration - elapsed), display only
func (c *Controller) RemainingPhaseTime() time.Duration {
	if c.current.Terminal() {
		return 0
	}
	remaining := c.schedule[c.current].Duration - c.elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Reset re-enters Easy with zero elapsed time
func (c *Controller) Reset() {
	c.current = Easy
	c.elapsed = 0
}
