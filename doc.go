// Package swipe is a touch scroll controller for [Ebitengine] panels.
//
// A [Controller] owns one panel's scroll offset along a single axis and
// turns raw touch events into motion: the content follows the finger,
// resists with a rubber band past either end, coasts on decaying momentum
// after a flick, and eases back into range after an overscrolled release.
// Short touches are reported as taps so the panel can run its own hit
// testing and actions.
//
// # Quick start
//
// Drive a controller directly from your own input handling:
//
//	c := swipe.NewController(swipe.DefaultConfig(), 500, 1200)
//	c.OnTap(func(ctx swipe.TapContext) { selectItemAt(ctx.Point) })
//
//	// in Update:
//	c.TouchBegin(swipe.Vec2{X: x, Y: y})
//	c.TouchMove(swipe.Vec2{X: x, Y: y})
//	c.TouchEnd(swipe.Vec2{X: x, Y: y})
//	c.Tick(1.0 / 60)
//
//	// in Draw:
//	op.GeoM.Translate(0, -c.Offset())
//
// Or let a [Host] poll ebiten mouse and touch input and route it to the
// panel under the finger:
//
//	host := swipe.NewHost()
//	host.AddPanel("shop", swipe.Rect{X: 20, Y: 80, Width: 300, Height: 500}, c)
//
//	func (g *Game) Update() error { g.host.Update(); return nil }
//
// For small tools and demos, [Run] opens a window and drives the host for you:
//
//	swipe.Run(host, swipe.RunConfig{Title: "Shop", Width: 640, Height: 480, Draw: drawPanels})
//
// # Motion
//
// A controller is always in exactly one [MotionState]: Idle, Dragging,
// Momentum or SnappingBack. Momentum and snap-back advance only when
// [Controller.Tick] is called; there are no timers or goroutines. Any new
// touch-down cancels a running animation.
//
// # Tuning
//
// Every constant (tap threshold, elastic ratio, friction, momentum gain,
// stop threshold, snap-back duration and easing, axis and sign) lives in
// [Config]. Configs can be loaded from TOML with [LoadConfig] or, for
// several panels sharing defaults, [LoadPanelConfigs].
//
// # Hit testing
//
// Taps carry the release point. Give the controller a [RegionProvider] to
// have the tapped [Region] resolved for you; it is queried only after a tap
// is confirmed, never during a drag.
//
// # Testing
//
// [Host] accepts injected touches ([Host.InjectDrag], [Host.InjectTap]) and
// JSON gesture scripts ([LoadGestureScript]) so gesture sequences can be
// replayed frame by frame without a window.
//
// [Ebitengine]: https://ebitengine.org
package swipe
