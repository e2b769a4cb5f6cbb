package swipe

// syntheticPointerEvent represents a single injected pointer event in screen
// coordinates.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	cancel  bool
}

// InjectPress queues a touch-down at the given screen coordinates. The event
// is consumed on the next frame's Update.
func (h *Host) InjectPress(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a move with the finger held down. Use this between
// InjectPress and InjectRelease to simulate a drag.
func (h *Host) InjectMove(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a touch-up at the given screen coordinates.
func (h *Host) InjectRelease(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectCancel queues a system cancel of the current touch.
func (h *Host) InjectCancel() {
	h.injectQueue = append(h.injectQueue, syntheticPointerEvent{cancel: true})
}

// InjectTap is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two frames.
func (h *Host) InjectTap(x, y float64) {
	h.InjectPress(x, y)
	h.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (h *Host) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	h.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		h.InjectMove(x, y)
	}
	h.InjectRelease(toX, toY)
}

// Pending returns the number of injected events not yet consumed.
func (h *Host) Pending() int {
	return len(h.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. Returns true if an event was consumed (real input
// is skipped for the frame).
func (h *Host) processInjectedInput() bool {
	if len(h.injectQueue) == 0 {
		return false
	}
	evt := h.injectQueue[0]
	copy(h.injectQueue, h.injectQueue[1:])
	h.injectQueue = h.injectQueue[:len(h.injectQueue)-1]

	h.processPointer(pointerSample{x: evt.x, y: evt.y, pressed: evt.pressed, cancel: evt.cancel})
	return true
}
