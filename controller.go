package swipe

import "math"

// session is the live gesture of a Dragging controller.
type session struct {
	start    Vec2
	last     Vec2
	distance float64 // accumulated |delta| along the axis
}

// Controller turns one panel's touch stream into a scroll offset with
// rubber-banding, momentum, snap-back and tap detection. It is not safe for
// concurrent use; the owning panel drives it from the game's Update.
type Controller struct {
	cfg Config

	viewport float64
	content  float64

	offset   float64
	velocity float64
	state    MotionState
	session  *session

	// Momentum: the seed is the release velocity scaled by MomentumGain once,
	// elapsed accumulates tick time since release.
	momentumSeed    float64
	momentumElapsed float64

	snap *snapAnim

	region  Rect
	regions RegionProvider

	handlers handlerRegistry
}

// NewController creates an Idle controller at offset 0. Invalid config fields
// are replaced by their defaults; call Config.Validate first to surface them.
func NewController(cfg Config, viewportExtent, contentExtent float64) *Controller {
	return &Controller{
		cfg:      cfg.sanitize(),
		viewport: clampExtent(viewportExtent),
		content:  clampExtent(contentExtent),
	}
}

func clampExtent(v float64) float64 {
	if !finite(v) || v < 0 {
		return 0
	}
	return v
}

// Config returns the controller's effective configuration.
func (c *Controller) Config() Config { return c.cfg }

// Offset returns the translation to apply to the panel's content this frame.
func (c *Controller) Offset() float64 { return c.offset }

// Velocity returns the current smoothed velocity. While dragging it is the
// filtered per-move delta; during momentum it is the per-tick step.
func (c *Controller) Velocity() float64 { return c.velocity }

// State returns the current motion state.
func (c *Controller) State() MotionState { return c.state }

// ViewportExtent returns the visible length along the scroll axis.
func (c *Controller) ViewportExtent() float64 { return c.viewport }

// ContentExtent returns the laid-out content length along the scroll axis.
func (c *Controller) ContentExtent() float64 { return c.content }

// MaxOffset returns max(content - viewport, 0).
func (c *Controller) MaxOffset() float64 {
	return math.Max(c.content-c.viewport, 0)
}

// IsAnimating reports whether momentum or snap-back is running.
func (c *Controller) IsAnimating() bool {
	return c.state == StateMomentum || c.state == StateSnappingBack
}

// IsDragging reports whether a touch session owns the panel.
func (c *Controller) IsDragging() bool {
	return c.state == StateDragging
}

// Progress returns the offset as a fraction of MaxOffset in [0, 1], for
// scrollbar thumbs. Degenerate content reports 0.
func (c *Controller) Progress() float64 {
	limit := c.MaxOffset()
	if limit == 0 {
		return 0
	}
	return math.Max(0, math.Min(c.offset/limit, 1))
}

// SetRegion registers the screen-space viewport region. Touch-downs outside
// a non-empty region are rejected. An empty region accepts every touch and
// leaves containment to the caller.
func (c *Controller) SetRegion(r Rect) {
	c.region = r
}

// Region returns the registered viewport region.
func (c *Controller) Region() Rect { return c.region }

// SetRegionProvider sets the source of interactive regions resolved on taps.
// Pass nil to report taps without a region.
func (c *Controller) SetRegionProvider(p RegionProvider) {
	c.regions = p
}

// --- Touch lifecycle ---

// TouchBegin starts a drag session at p, cancelling any momentum or
// snap-back. It returns false, with no state change, if p is invalid or lies
// outside the registered region.
func (c *Controller) TouchBegin(p Vec2) bool {
	if !p.valid() {
		return false
	}
	if !c.region.Empty() && !c.region.Contains(p.X, p.Y) {
		return false
	}
	c.stopAnimation()
	c.velocity = 0
	c.session = &session{start: p, last: p}
	c.setState(StateDragging)
	return true
}

// TouchMove applies finger movement while Dragging. Invalid points and calls
// in any other state are ignored.
func (c *Controller) TouchMove(p Vec2) {
	if c.state != StateDragging || c.session == nil || !p.valid() {
		return
	}
	s := c.session
	delta := c.cfg.Axis.component(p) - c.cfg.Axis.component(s.last)
	s.distance += math.Abs(delta)

	d := float64(c.cfg.Sign) * delta
	c.offset += d
	k := c.cfg.VelocitySmoothing
	c.velocity = d*k + c.velocity*(1-k)
	c.offset = rubberBand(c.offset, c.MaxOffset(), c.cfg.ElasticRatio)

	s.last = p
}

// TouchEnd resolves the gesture at release point p. An invalid p falls back
// to the last accepted move.
func (c *Controller) TouchEnd(p Vec2) Outcome {
	if c.state != StateDragging || c.session == nil {
		return Outcome{}
	}
	if !p.valid() {
		p = c.session.last
	}
	return c.release(p, false)
}

// TouchCancel resolves the gesture at the last accepted point, the same way
// as TouchEnd. With Config.CancelAsTap unset a sub-threshold cancel returns
// to Idle without reporting a tap.
func (c *Controller) TouchCancel() Outcome {
	if c.state != StateDragging || c.session == nil {
		return Outcome{}
	}
	return c.release(c.session.last, true)
}

func (c *Controller) release(p Vec2, cancelled bool) Outcome {
	s := c.session
	c.session = nil
	limit := c.MaxOffset()

	if s.distance < c.cfg.TapThreshold {
		// A tap never leaves the panel scrolled out of range.
		c.offset = clampOffset(c.offset, limit)
		c.velocity = 0
		c.setState(StateIdle)
		if cancelled && !c.cfg.CancelAsTap {
			return Outcome{Kind: OutcomeNone, Point: p}
		}
		ctx := TapContext{Point: p, Offset: c.offset}
		if c.regions != nil {
			ctx.Region = HitTest(c.regions.InteractiveRegions(), p.X, p.Y)
		}
		fire(c.handlers.tap, ctx)
		return Outcome{Kind: OutcomeTap, Point: p}
	}

	ctx := ScrollContext{Point: p, Offset: c.offset, Distance: s.distance}
	switch {
	case c.offset < 0 || c.offset > limit:
		c.velocity = 0
		c.snap = newSnapAnim(c.offset, clampOffset(c.offset, limit), c.cfg.SnapBackDuration, c.cfg.easeFunc())
		c.setState(StateSnappingBack)
		ctx.SnapBack = true
	case c.velocity == 0 || limit == 0:
		c.velocity = 0
		c.setState(StateIdle)
	default:
		ctx.Velocity = c.velocity
		c.momentumSeed = c.velocity * c.cfg.MomentumGain
		c.momentumElapsed = 0
		c.velocity = c.momentumSeed
		c.setState(StateMomentum)
	}
	fire(c.handlers.scroll, ctx)
	return Outcome{Kind: OutcomeScroll, Point: p}
}

// --- Layout ---

// SetContentExtent records a new content length (tab switch, data reload).
// The offset resets to 0 and any gesture or animation is cancelled. Negative
// values clamp to 0; non-finite values are ignored.
func (c *Controller) SetContentExtent(v float64) {
	if !finite(v) {
		return
	}
	c.content = math.Max(v, 0)
	c.reset()
}

// SetViewportExtent records a new visible length, with the same reset
// semantics as SetContentExtent.
func (c *Controller) SetViewportExtent(v float64) {
	if !finite(v) {
		return
	}
	c.viewport = math.Max(v, 0)
	c.reset()
}

// ResetScroll forces the offset to 0 and returns to Idle. Calling it
// repeatedly is the same as calling it once.
func (c *Controller) ResetScroll() {
	c.reset()
}

// ScrollTo jumps to offset, clamped to [0, MaxOffset], cancelling any
// animation. It is ignored while a finger owns the panel.
func (c *Controller) ScrollTo(offset float64) bool {
	if c.state == StateDragging || !finite(offset) {
		return false
	}
	c.stopAnimation()
	c.velocity = 0
	c.offset = clampOffset(offset, c.MaxOffset())
	c.setState(StateIdle)
	return true
}

// ScrollBy is ScrollTo relative to the current offset. Hosts use it for mouse
// wheels and keyboard paging.
func (c *Controller) ScrollBy(delta float64) bool {
	return c.ScrollTo(c.offset + delta)
}

func (c *Controller) reset() {
	c.stopAnimation()
	c.session = nil
	c.velocity = 0
	c.offset = 0
	c.setState(StateIdle)
}

func (c *Controller) stopAnimation() {
	c.snap = nil
	c.momentumSeed = 0
	c.momentumElapsed = 0
}

func (c *Controller) setState(to MotionState) {
	if c.state == to {
		return
	}
	from := c.state
	c.state = to
	fire(c.handlers.state, StateChange{From: from, To: to})
}
