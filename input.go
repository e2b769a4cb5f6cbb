package swipe

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// --- Pointer state ---

// pointerState tracks the single pointer a Host routes. Only one finger
// scrolls at a time; extra touches are ignored until it lifts.
type pointerState struct {
	down  bool
	last  Vec2
	panel *Panel // panel that accepted the touch-down, nil if none did
}

func (ps *pointerState) reset() {
	ps.down = false
	ps.panel = nil
}

// pointerSample is one frame of pointer input.
type pointerSample struct {
	x, y    float64
	pressed bool
	cancel  bool
	wheel   float64
}

// pointerSource produces one pointerSample per frame.
type pointerSource interface {
	sample() pointerSample
}

// --- ebiten input ---

// ebitenSource reads the first active touch, falling back to the left mouse
// button when no finger is down.
type ebitenSource struct {
	touchIDs []ebiten.TouchID
	tracked  ebiten.TouchID
	tracking bool
	lastX    float64
	lastY    float64
}

func (s *ebitenSource) sample() pointerSample {
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])

	if s.tracking {
		for _, id := range s.touchIDs {
			if id == s.tracked {
				tx, ty := ebiten.TouchPosition(id)
				s.lastX, s.lastY = float64(tx), float64(ty)
				return pointerSample{x: s.lastX, y: s.lastY, pressed: true}
			}
		}
		// Tracked finger lifted: release where it was last seen.
		s.tracking = false
		return pointerSample{x: s.lastX, y: s.lastY}
	}

	if len(s.touchIDs) > 0 {
		s.tracked = s.touchIDs[0]
		s.tracking = true
		tx, ty := ebiten.TouchPosition(s.tracked)
		s.lastX, s.lastY = float64(tx), float64(ty)
		return pointerSample{x: s.lastX, y: s.lastY, pressed: true}
	}

	mx, my := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	return pointerSample{
		x:       float64(mx),
		y:       float64(my),
		pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		wheel:   wy,
	}
}

// --- Input processing ---

// processInput is called from UpdateWithDelta. Injected events take priority
// over real input for the frame.
func (h *Host) processInput() {
	if h.processInjectedInput() {
		return
	}
	if h.input == nil {
		return
	}
	h.processPointer(h.input.sample())
}

// processPointer runs the press/move/release routing for the pointer.
func (h *Host) processPointer(s pointerSample) {
	ps := &h.pointer
	pt := Vec2{X: s.x, Y: s.y}

	switch {
	case s.cancel:
		if ps.down && ps.panel != nil {
			ps.panel.Controller.TouchCancel()
		}
		ps.reset()
	case s.pressed && !ps.down:
		// Just pressed: the topmost panel under the pointer owns the gesture.
		ps.down = true
		ps.last = pt
		if p := h.panelAt(pt.X, pt.Y); p != nil && p.Controller.TouchBegin(pt) {
			ps.panel = p
		}
	case s.pressed && ps.down:
		if pt != ps.last {
			if ps.panel != nil {
				ps.panel.Controller.TouchMove(pt)
			}
			ps.last = pt
		}
	case !s.pressed && ps.down:
		if ps.panel != nil {
			ps.panel.Controller.TouchEnd(pt)
		}
		ps.reset()
	case s.wheel != 0 && h.wheelStep != 0:
		if p := h.panelAt(pt.X, pt.Y); p != nil {
			p.Controller.ScrollBy(-s.wheel * h.wheelStep)
		}
	}
}
