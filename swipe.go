package swipe

import (
	"math"
	"strconv"
)

// Vec2 is a 2D point in screen space. Only one component is consumed by a
// Controller; the other is carried through to tap outcomes for hit testing.
type Vec2 struct {
	X, Y float64
}

// maxTouchCoord bounds accepted touch coordinates. Anything larger is a
// corrupted event, not a position on any real screen.
const maxTouchCoord = 1e7

// valid reports whether both components are finite and within maxTouchCoord.
func (v Vec2) valid() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) &&
		math.Abs(v.X) <= maxTouchCoord && math.Abs(v.Y) <= maxTouchCoord
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Axis selects which screen coordinate drives a Controller.
type Axis uint8

const (
	AxisVertical   Axis = iota // scroll along Y (lists, shop panels)
	AxisHorizontal             // scroll along X (character strips)
)

// component returns the coordinate of p along the axis.
func (a Axis) component(p Vec2) float64 {
	if a == AxisHorizontal {
		return p.X
	}
	return p.Y
}

// Sign is the direction in which finger movement is applied to the offset.
type Sign int8

const (
	SignNatural  Sign = 1  // offset += delta
	SignInverted Sign = -1 // offset -= delta
)

// MotionState is the scroll controller's current phase.
type MotionState uint8

const (
	StateIdle         MotionState = iota // at rest inside [0, maxOffset]
	StateDragging                        // a finger is down and owns the panel
	StateMomentum                        // coasting on decaying release velocity
	StateSnappingBack                    // easing an overscrolled offset back to a bound
)

var stateNames = [...]string{
	StateIdle:         "Idle",
	StateDragging:     "Dragging",
	StateMomentum:     "Momentum",
	StateSnappingBack: "SnappingBack",
}

func (s MotionState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "MotionState(" + strconv.Itoa(int(s)) + ")"
}

// OutcomeKind classifies how a touch gesture was resolved at release.
type OutcomeKind uint8

const (
	OutcomeNone   OutcomeKind = iota // no active gesture (release while not dragging)
	OutcomeTap                       // movement stayed under the tap threshold
	OutcomeScroll                    // movement was a scroll; momentum or snap-back follows
)

// Outcome is returned from TouchEnd and TouchCancel.
type Outcome struct {
	Kind  OutcomeKind
	Point Vec2
}

// EventType identifies a kind of controller event.
type EventType uint8

const (
	EventTap         EventType = iota // fires once per gesture resolved as a tap
	EventScroll                       // fires at a release resolved as a scroll
	EventSettle                       // fires when momentum or snap-back comes to rest
	EventStateChange                  // fires on every motion state transition
)
