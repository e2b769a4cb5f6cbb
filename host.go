package swipe

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// EventSink is the interface for optional ECS integration.
// When set on a Host, every tap, scroll and settle is forwarded to it.
type EventSink interface {
	EmitEvent(event ScrollEvent)
}

// ScrollEvent carries a resolved controller event for the ECS bridge.
type ScrollEvent struct {
	Type     EventType
	Panel    string
	X, Y     float64 // release point (EventTap, EventScroll)
	Offset   float64
	Velocity float64 // release velocity (EventScroll)
	RegionID string  // hit region (EventTap), empty on a miss
	From     MotionState
	To       MotionState // EventStateChange only
}

// defaultWheelStep is the offset change per mouse wheel notch.
const defaultWheelStep = 40.0

// Panel binds a Controller to a named screen region owned by a Host.
type Panel struct {
	Name       string
	Region     Rect
	Controller *Controller

	host    *Host
	handles []CallbackHandle
}

// Host owns a set of panels, routes a single pointer to the panel under it,
// and ticks every controller once per frame. Call Update from the game's
// Update.
type Host struct {
	panels []*Panel
	sink   EventSink
	debug  bool

	// Input state
	pointer      pointerState
	input        pointerSource
	wheelStep    float64
	injectQueue  []syntheticPointerEvent
	scriptRunner *ScriptRunner
}

// NewHost creates a host that polls ebiten for mouse and touch input.
func NewHost() *Host {
	return &Host{
		input:     &ebitenSource{},
		wheelStep: defaultWheelStep,
	}
}

// AddPanel registers c under name. The region is the screen-space rectangle
// that accepts touch-downs; it is also registered on the controller. Later
// panels sit on top of earlier ones when regions overlap.
func (h *Host) AddPanel(name string, region Rect, c *Controller) *Panel {
	p := &Panel{Name: name, Region: region, Controller: c, host: h}
	c.SetRegion(region)
	p.handles = append(p.handles,
		c.OnTap(func(ctx TapContext) { h.onTap(p, ctx) }),
		c.OnScroll(func(ctx ScrollContext) { h.onScroll(p, ctx) }),
		c.OnSettle(func(ctx SettleContext) { h.onSettle(p, ctx) }),
		c.OnStateChange(func(ch StateChange) { h.onStateChange(p, ch) }),
	)
	h.panels = append(h.panels, p)
	return p
}

// RemovePanel detaches a panel and its host callbacks. A drag in progress on
// the panel is dropped without resolving.
func (h *Host) RemovePanel(p *Panel) {
	for i, q := range h.panels {
		if q == p {
			h.panels = append(h.panels[:i], h.panels[i+1:]...)
			for _, hd := range p.handles {
				hd.Remove()
			}
			p.handles = nil
			p.host = nil
			if h.pointer.panel == p {
				h.pointer.panel = nil
			}
			return
		}
	}
}

// Panels returns the registered panels in stacking order. The returned slice
// MUST NOT be mutated.
func (h *Host) Panels() []*Panel {
	return h.panels
}

// Panel returns the panel registered under name, or nil.
func (h *Host) Panel(name string) *Panel {
	for _, p := range h.panels {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// SetRegion moves a panel, keeping its controller's region in sync.
func (p *Panel) SetRegion(r Rect) {
	p.Region = r
	p.Controller.SetRegion(r)
}

// SetEventSink sets the optional ECS bridge.
func (h *Host) SetEventSink(sink EventSink) {
	h.sink = sink
}

// SetWheelStep sets the offset change per mouse wheel notch. Zero disables
// wheel scrolling.
func (h *Host) SetWheelStep(step float64) {
	h.wheelStep = step
}

// SetDebugMode enables or disables logging of transitions and gesture
// decisions to stderr.
func (h *Host) SetDebugMode(enabled bool) {
	h.debug = enabled
}

// Update processes one frame at the ebiten tick rate.
func (h *Host) Update() {
	h.UpdateWithDelta(frameDelta(ebiten.TPS()))
}

// frameDelta converts a tick rate into seconds per frame. Rates that are not
// positive (ebiten.SyncWithFPS) fall back to 60 ticks per second.
func frameDelta(tps int) float64 {
	if tps <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(tps)
}

// UpdateWithDelta processes one frame of dt seconds: the script runner
// steps, one pointer sample is routed, then every panel ticks.
func (h *Host) UpdateWithDelta(dt float64) {
	if h.scriptRunner != nil {
		h.scriptRunner.step(h)
	}
	h.processInput()
	for _, p := range h.panels {
		p.Controller.Tick(dt)
	}
}

// panelAt returns the topmost panel whose region contains (x, y).
func (h *Host) panelAt(x, y float64) *Panel {
	for i := len(h.panels) - 1; i >= 0; i-- {
		p := h.panels[i]
		if p.Region.Contains(x, y) {
			return p
		}
	}
	return nil
}

// --- Controller callbacks ---

func (h *Host) onTap(p *Panel, ctx TapContext) {
	var regionID string
	if ctx.Region != nil {
		regionID = ctx.Region.ID
	}
	h.debugTap(p, ctx, regionID)
	h.emit(ScrollEvent{
		Type: EventTap, Panel: p.Name,
		X: ctx.Point.X, Y: ctx.Point.Y,
		Offset: ctx.Offset, RegionID: regionID,
	})
}

func (h *Host) onScroll(p *Panel, ctx ScrollContext) {
	h.debugScroll(p, ctx)
	h.emit(ScrollEvent{
		Type: EventScroll, Panel: p.Name,
		X: ctx.Point.X, Y: ctx.Point.Y,
		Offset: ctx.Offset, Velocity: ctx.Velocity,
	})
}

func (h *Host) onSettle(p *Panel, ctx SettleContext) {
	h.emit(ScrollEvent{
		Type: EventSettle, Panel: p.Name,
		Offset: ctx.Offset, From: ctx.From, To: StateIdle,
	})
}

func (h *Host) onStateChange(p *Panel, ch StateChange) {
	h.debugStateChange(p, ch)
	h.emit(ScrollEvent{
		Type: EventStateChange, Panel: p.Name,
		Offset: p.Controller.Offset(), From: ch.From, To: ch.To,
	})
}

func (h *Host) emit(ev ScrollEvent) {
	if h.sink == nil {
		return
	}
	h.sink.EmitEvent(ev)
}
