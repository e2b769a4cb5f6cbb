package swipe

import "math"

// Tick advances momentum or snap-back by dt seconds. It is a no-op while
// Idle or Dragging, and for non-positive or non-finite dt.
func (c *Controller) Tick(dt float64) {
	if !finite(dt) || dt <= 0 {
		return
	}
	switch c.state {
	case StateMomentum:
		c.stepMomentum(dt)
	case StateSnappingBack:
		c.stepSnap(dt)
	case StateIdle:
		c.offset = clampOffset(c.offset, c.MaxOffset())
	}
}

// stepMomentum applies one frame of geometric decay:
//
//	step = seed * friction^(elapsed*tickRate)
//
// so at a steady 1/tickRate frame time the n-th step is seed*friction^n.
func (c *Controller) stepMomentum(dt float64) {
	c.momentumElapsed += dt
	decay := math.Pow(c.cfg.Friction, c.momentumElapsed*c.cfg.TickRate)
	step := c.momentumSeed * decay
	if math.Abs(step) <= c.cfg.StopThreshold {
		c.settle(StateMomentum)
		return
	}
	c.velocity = step

	limit := c.MaxOffset()
	next := c.offset + step
	if next < 0 || next > limit {
		// Momentum stops dead at a bound; it never bounces.
		c.offset = clampOffset(next, limit)
		c.settle(StateMomentum)
		return
	}
	c.offset = next
}

func (c *Controller) stepSnap(dt float64) {
	if c.snap == nil {
		c.settle(StateSnappingBack)
		return
	}
	c.offset = c.snap.update(dt)
	if c.snap.done {
		c.offset = c.snap.target
		c.settle(StateSnappingBack)
	}
}

// settle ends an autonomous animation at a valid offset.
func (c *Controller) settle(from MotionState) {
	c.stopAnimation()
	c.velocity = 0
	c.offset = clampOffset(c.offset, c.MaxOffset())
	c.setState(StateIdle)
	fire(c.handlers.settle, SettleContext{Offset: c.offset, From: from})
}

// rubberBand keeps ratio of the overscroll past either bound.
func rubberBand(offset, limit, ratio float64) float64 {
	if offset < 0 {
		return offset * ratio
	}
	if offset > limit {
		return limit + (offset-limit)*ratio
	}
	return offset
}

func clampOffset(offset, limit float64) float64 {
	if offset < 0 {
		return 0
	}
	if offset > limit {
		return limit
	}
	return offset
}
