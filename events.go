package swipe

import "slices"

// TapContext carries a gesture that was resolved as a tap.
type TapContext struct {
	// Point is the release point in screen space.
	Point Vec2
	// Offset is the panel's scroll offset at release.
	Offset float64
	// Region is the interactive region under Point, or nil when no
	// RegionProvider is set or nothing was hit.
	Region *Region
}

// ScrollContext carries a gesture that was resolved as a scroll.
type ScrollContext struct {
	Point    Vec2
	Offset   float64
	Velocity float64 // release velocity seeding momentum (0 when snapping back)
	Distance float64 // accumulated movement along the axis
	SnapBack bool    // true when the release was overscrolled
}

// SettleContext carries the end of an autonomous animation.
type SettleContext struct {
	Offset float64
	From   MotionState // StateMomentum or StateSnappingBack
}

// StateChange carries a motion state transition.
type StateChange struct {
	From, To MotionState
}

// --- Handler registry ---

type handler[T any] struct {
	id uint32
	fn func(T)
}

type handlerRegistry struct {
	tap    []handler[TapContext]
	scroll []handler[ScrollContext]
	settle []handler[SettleContext]
	state  []handler[StateChange]
	nextID uint32
}

// CallbackHandle allows removing a registered controller callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventTap:
		h.reg.tap = removeHandler(h.reg.tap, h.id)
	case EventScroll:
		h.reg.scroll = removeHandler(h.reg.scroll, h.id)
	case EventSettle:
		h.reg.settle = removeHandler(h.reg.settle, h.id)
	case EventStateChange:
		h.reg.state = removeHandler(h.reg.state, h.id)
	}
}

func removeHandler[T any](s []handler[T], id uint32) []handler[T] {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = handler[T]{}
			return s[:len(s)-1]
		}
	}
	return s
}

func addHandler[T any](r *handlerRegistry, s *[]handler[T], fn func(T), event EventType) CallbackHandle {
	r.nextID++
	id := r.nextID
	*s = append(*s, handler[T]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: r, event: event}
}

// fire calls every handler in registration order. It walks a copy, so a
// handler may add or remove callbacks, including itself, while it runs.
func fire[T any](s []handler[T], v T) {
	for _, h := range slices.Clone(s) {
		h.fn(v)
	}
}

// --- Controller registration ---

// OnTap registers a callback fired exactly once per gesture resolved as a tap.
// The host performs its business action (select, purchase, navigate) here.
func (c *Controller) OnTap(fn func(TapContext)) CallbackHandle {
	return addHandler(&c.handlers, &c.handlers.tap, fn, EventTap)
}

// OnScroll registers a callback fired at a release resolved as a scroll.
func (c *Controller) OnScroll(fn func(ScrollContext)) CallbackHandle {
	return addHandler(&c.handlers, &c.handlers.scroll, fn, EventScroll)
}

// OnSettle registers a callback fired when momentum or snap-back reaches Idle.
// Cancellation by a new touch or a content reset does not count as settling.
func (c *Controller) OnSettle(fn func(SettleContext)) CallbackHandle {
	return addHandler(&c.handlers, &c.handlers.settle, fn, EventSettle)
}

// OnStateChange registers a callback fired on every motion state transition.
func (c *Controller) OnStateChange(fn func(StateChange)) CallbackHandle {
	return addHandler(&c.handlers, &c.handlers.state, fn, EventStateChange)
}
