package swipe

import (
	"math"
	"math/rand/v2"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// dragY presses at ys[0], moves through the remaining points and leaves the
// controller Dragging.
func dragY(t *testing.T, c *Controller, ys ...float64) {
	t.Helper()
	if !c.TouchBegin(Vec2{X: 10, Y: ys[0]}) {
		t.Fatalf("TouchBegin(%v) rejected", ys[0])
	}
	for _, y := range ys[1:] {
		c.TouchMove(Vec2{X: 10, Y: y})
	}
}

// runUntilIdle ticks at 60Hz until the controller is Idle, failing after limit ticks.
func runUntilIdle(t *testing.T, c *Controller, limit int) int {
	t.Helper()
	for i := 1; i <= limit; i++ {
		c.Tick(1.0 / 60)
		if c.State() == StateIdle {
			return i
		}
	}
	t.Fatalf("still %v after %d ticks (offset %f)", c.State(), limit, c.Offset())
	return 0
}

func TestNewControllerDefaults(t *testing.T) {
	c := NewController(DefaultConfig(), 500, 1200)
	if c.State() != StateIdle {
		t.Errorf("State = %v, want Idle", c.State())
	}
	if c.Offset() != 0 {
		t.Errorf("Offset = %f, want 0", c.Offset())
	}
	if c.MaxOffset() != 700 {
		t.Errorf("MaxOffset = %f, want 700", c.MaxOffset())
	}
	if c.IsAnimating() {
		t.Error("new controller should not be animating")
	}
}

func TestNewControllerClampsNegativeExtents(t *testing.T) {
	c := NewController(DefaultConfig(), -10, -50)
	if c.ViewportExtent() != 0 || c.ContentExtent() != 0 {
		t.Errorf("extents = (%f, %f), want (0, 0)", c.ViewportExtent(), c.ContentExtent())
	}
	if c.MaxOffset() != 0 {
		t.Errorf("MaxOffset = %f, want 0", c.MaxOffset())
	}
}

func TestMaxOffsetDegenerateContent(t *testing.T) {
	tests := []struct {
		name              string
		viewport, content float64
		want              float64
	}{
		{"content larger", 500, 1200, 700},
		{"content equal", 500, 500, 0},
		{"content smaller", 500, 200, 0},
		{"empty", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(DefaultConfig(), tt.viewport, tt.content)
			if got := c.MaxOffset(); got != tt.want {
				t.Errorf("MaxOffset = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestZeroDistanceTap(t *testing.T) {
	c := NewController(DefaultConfig(), 500, 1200)
	c.ScrollTo(120)

	var taps []TapContext
	c.OnTap(func(ctx TapContext) { taps = append(taps, ctx) })

	pt := Vec2{X: 40, Y: 250}
	c.TouchBegin(pt)
	out := c.TouchEnd(pt)

	if out.Kind != OutcomeTap {
		t.Fatalf("Kind = %v, want OutcomeTap", out.Kind)
	}
	if out.Point != pt {
		t.Errorf("Point = %v, want %v", out.Point, pt)
	}
	if len(taps) != 1 {
		t.Fatalf("tap fired %d times, want 1", len(taps))
	}
	if taps[0].Point != pt || taps[0].Offset != 120 {
		t.Errorf("tap = %+v, want point %v offset 120", taps[0], pt)
	}
	if c.Offset() != 120 {
		t.Errorf("Offset = %f, want unchanged 120", c.Offset())
	}
	if c.State() != StateIdle {
		t.Errorf("State = %v, want Idle", c.State())
	}
	if c.session != nil {
		t.Error("session should be cleared after release")
	}
}

func TestZeroDistanceTapAnyConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"defaults", DefaultConfig()},
		{"zero config", Config{}},
		{"zero threshold", func() Config { c := DefaultConfig(); c.TapThreshold = 0; return c }()},
		{"tiny threshold", func() Config { c := DefaultConfig(); c.TapThreshold = 1e-9; return c }()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(tt.cfg, 500, 1200)
			taps := 0
			c.OnTap(func(TapContext) { taps++ })

			pt := Vec2{X: 40, Y: 250}
			c.TouchBegin(pt)
			if out := c.TouchEnd(pt); out.Kind != OutcomeTap {
				t.Errorf("Kind = %v, want OutcomeTap", out.Kind)
			}
			if taps != 1 {
				t.Errorf("taps = %d, want 1", taps)
			}
		})
	}
}

func TestSubThresholdMovesAlwaysTap(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	cfg := DefaultConfig()

	for trial := 0; trial < 200; trial++ {
		c := NewController(cfg, 500, 1200)
		c.ScrollTo(rng.Float64() * 700)

		var tapped, scrolled int
		c.OnTap(func(TapContext) { tapped++ })
		c.OnScroll(func(ScrollContext) { scrolled++ })

		// Monotonic moves whose total stays under the threshold.
		budget := rng.Float64() * (cfg.TapThreshold - 0.01)
		dir := 1.0
		if rng.IntN(2) == 0 {
			dir = -1
		}
		y := 300.0
		c.TouchBegin(Vec2{X: 10, Y: y})
		steps := 1 + rng.IntN(6)
		for i := 0; i < steps; i++ {
			y += dir * budget / float64(steps)
			c.TouchMove(Vec2{X: 10, Y: y})
		}
		out := c.TouchEnd(Vec2{X: 10, Y: y})

		if out.Kind != OutcomeTap || tapped != 1 || scrolled != 0 {
			t.Fatalf("trial %d: budget %f: kind %v taps %d scrolls %d", trial, budget, out.Kind, tapped, scrolled)
		}
		if c.Offset() < 0 || c.Offset() > c.MaxOffset() {
			t.Fatalf("trial %d: tap left offset %f outside [0, %f]", trial, c.Offset(), c.MaxOffset())
		}
	}
}

func TestTapClampsElasticOffset(t *testing.T) {
	c := NewController(DefaultConfig(), 500, 1200)
	dragY(t, c, 300, 298) // offset -2 → -0.6 after rubber-banding
	if c.Offset() >= 0 {
		t.Fatalf("Offset = %f, want elastic negative", c.Offset())
	}
	out := c.TouchEnd(Vec2{X: 10, Y: 298})
	if out.Kind != OutcomeTap {
		t.Fatalf("Kind = %v, want tap", out.Kind)
	}
	if c.Offset() != 0 {
		t.Errorf("Offset = %f, want 0", c.Offset())
	}
}

func TestTouchMoveAppliesDeltaAndSmoothing(t *testing.T) {
	c := NewController(DefaultConfig(), 500, 10000)
	c.ScrollTo(5000)
	dragY(t, c, 500, 520)

	if !approxEqual(c.Offset(), 5020, epsilon) {
		t.Errorf("Offset = %f, want 5020", c.Offset())
	}
	if !approxEqual(c.Velocity(), 16, epsilon) {
		t.Errorf("Velocity = %f, want 16 (0.8 of first delta)", c.Velocity())
	}

	c.TouchMove(Vec2{X: 10, Y: 540})
	// 20*0.8 + 16*0.2
	if !approxEqual(c.Velocity(), 19.2, epsilon) {
		t.Errorf("Velocity = %f, want 19.2", c.Velocity())
	}
	if !approxEqual(c.session.distance, 40, epsilon) {
		t.Errorf("distance = %f, want 40", c.session.distance)
	}
}

func TestSignInverted(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sign = SignInverted
	c := NewController(cfg, 500, 1200)
	c.ScrollTo(100)
	dragY(t, c, 100, 110)
	if !approxEqual(c.Offset(), 90, epsilon) {
		t.Errorf("Offset = %f, want 90 with inverted sign", c.Offset())
	}
}

func TestHorizontalAxis(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Axis = AxisHorizontal
	c := NewController(cfg, 300, 900)
	c.ScrollTo(100)

	c.TouchBegin(Vec2{X: 50, Y: 50})
	c.TouchMove(Vec2{X: 50, Y: 400}) // vertical movement is ignored
	if c.Offset() != 100 {
		t.Errorf("Offset = %f, want 100 after vertical move", c.Offset())
	}
	c.TouchMove(Vec2{X: 80, Y: 400})
	if !approxEqual(c.Offset(), 130, epsilon) {
		t.Errorf("Offset = %f, want 130", c.Offset())
	}
}

func TestElasticOverscrollBothBounds(t *testing.T) {
	c := NewController(DefaultConfig(), 500, 1200)

	dragY(t, c, 300, 200) // offset -100 → -30
	if !approxEqual(c.Offset(), -30, epsilon) {
		t.Errorf("top overscroll Offset = %f, want -30", c.Offset())
	}
	c.TouchCancel()
	runUntilIdle(t, c, 200)

	c.ScrollTo(700)
	dragY(t, c, 300, 400) // offset 800 → 730
	if !approxEqual(c.Offset(), 730, epsilon) {
		t.Errorf("bottom overscroll Offset = %f, want 730", c.Offset())
	}
}

func TestReleaseInRangeStartsMomentum(t *testing.T) {
	c := NewController(DefaultConfig(), 500, 10000)
	c.ScrollTo(5000)

	var scrolls []ScrollContext
	c.OnScroll(func(ctx ScrollContext) { scrolls = append(scrolls, ctx) })

	dragY(t, c, 500, 520, 540)
	out := c.TouchEnd(Vec2{X: 10, Y: 540})

	if out.Kind != OutcomeScroll {
		t.Fatalf("Kind = %v, want OutcomeScroll", out.Kind)
	}
	if c.State() != StateMomentum {
		t.Fatalf("State = %v, want Momentum", c.State())
	}
	if !c.IsAnimating() {
		t.Error("IsAnimating = false during momentum")
	}
	if len(scrolls) != 1 || scrolls[0].SnapBack {
		t.Fatalf("scroll callbacks = %+v, want one non-snap-back", scrolls)
	}
	if !approxEqual(scrolls[0].Velocity, 19.2, epsilon) {
		t.Errorf("release Velocity = %f, want 19.2", scrolls[0].Velocity)
	}
	if !approxEqual(c.momentumSeed, 19.2*0.15, epsilon) {
		t.Errorf("momentumSeed = %f, want %f", c.momentumSeed, 19.2*0.15)
	}
}

func TestOverscrolledReleaseSnapsBack(t *testing.T) {
	// viewport 500, content 1200: offset 900 with 120 units travelled.
	c := NewController(DefaultConfig(), 500, 1200)
	c.TouchBegin(Vec2{X: 10, Y: 300})
	c.offset = 900
	c.session.distance = 120

	out := c.TouchEnd(Vec2{X: 10, Y: 300})
	if out.Kind != OutcomeScroll {
		t.Fatalf("Kind = %v, want OutcomeScroll", out.Kind)
	}
	if c.State() != StateSnappingBack {
		t.Fatalf("State = %v, want SnappingBack", c.State())
	}
	if c.snap == nil || c.snap.target != 700 {
		t.Fatalf("snap target = %+v, want 700", c.snap)
	}

	prev := c.Offset()
	for c.State() == StateSnappingBack {
		c.Tick(1.0 / 60)
		if c.Offset() > prev+epsilon {
			t.Fatalf("snap-back moved away from bound: %f -> %f", prev, c.Offset())
		}
		prev = c.Offset()
	}
	if c.Offset() != 700 {
		t.Errorf("settled Offset = %f, want exactly 700", c.Offset())
	}
}

func TestSnapBackFromDraggedOverscroll(t *testing.T) {
	c := NewController(DefaultConfig(), 500, 1200)
	c.ScrollTo(700)
	dragY(t, c, 100, 100+2000.0/3) // 700 + 666.67*0.3 = 900
	if !approxEqual(c.Offset(), 900, 1e-6) {
		t.Fatalf("Offset = %f, want 900", c.Offset())
	}
	c.TouchEnd(Vec2{X: 10, Y: 100 + 2000.0/3})
	if c.State() != StateSnappingBack {
		t.Fatalf("State = %v, want SnappingBack", c.State())
	}
	runUntilIdle(t, c, 120)
	if c.Offset() != 700 {
		t.Errorf("Offset = %f, want 700", c.Offset())
	}
}

func TestDegenerateContentNeverEntersMomentum(t *testing.T) {
	for _, ys := range [][]float64{
		{300, 250, 200},      // overscroll past the top
		{300, 350, 400, 420}, // overscroll past the bottom
		{300, 310, 300},      // back and forth
	} {
		c := NewController(DefaultConfig(), 500, 500)
		var states []MotionState
		c.OnStateChange(func(ch StateChange) { states = append(states, ch.To) })

		dragY(t, c, ys...)
		c.TouchEnd(Vec2{X: 10, Y: ys[len(ys)-1]})
		if c.State() == StateSnappingBack && c.snap.target != 0 {
			t.Errorf("%v: snap target %f, want 0", ys, c.snap.target)
		}
		runUntilIdle(t, c, 200)

		for _, s := range states {
			if s == StateMomentum {
				t.Errorf("%v: entered Momentum with maxOffset 0 (states %v)", ys, states)
			}
		}
		if c.Offset() != 0 {
			t.Errorf("%v: settled Offset = %f, want 0", ys, c.Offset())
		}
	}
}

func TestTouchBeginCancelsAnimation(t *testing.T) {
	c := NewController(DefaultConfig(), 500, 10000)
	c.ScrollTo(5000)
	dragY(t, c, 500, 560, 620)
	c.TouchEnd(Vec2{X: 10, Y: 620})
	c.Tick(1.0 / 60)
	if c.State() != StateMomentum {
		t.Fatalf("State = %v, want Momentum", c.State())
	}

	var settled bool
	c.OnSettle(func(SettleContext) { settled = true })

	c.TouchBegin(Vec2{X: 10, Y: 300})
	if c.State() != StateDragging {
		t.Errorf("State = %v, want Dragging", c.State())
	}
	if c.Velocity() != 0 {
		t.Errorf("Velocity = %f, want 0 on touch-down", c.Velocity())
	}
	if c.IsAnimating() {
		t.Error("animation should be cancelled by touch-down")
	}
	before := c.Offset()
	c.Tick(1.0 / 60)
	if c.Offset() != before {
		t.Errorf("Tick while dragging moved offset %f -> %f", before, c.Offset())
	}
	if settled {
		t.Error("cancellation should not fire OnSettle")
	}
}

func TestTouchBeginRejectsOutsideRegion(t *testing.T) {
	c := NewController(DefaultConfig(), 500, 1200)
	c.SetRegion(Rect{X: 0, Y: 100, Width: 300, Height: 500})

	if c.TouchBegin(Vec2{X: 400, Y: 200}) {
		t.Error("TouchBegin outside region should be rejected")
	}
	if c.State() != StateIdle || c.session != nil {
		t.Errorf("rejected touch changed state to %v", c.State())
	}
	if !c.TouchBegin(Vec2{X: 100, Y: 200}) {
		t.Error("TouchBegin inside region should be accepted")
	}
}

func TestInvalidCoordinatesIgnored(t *testing.T) {
	c := NewController(DefaultConfig(), 500, 1200)
	c.ScrollTo(200)

	if c.TouchBegin(Vec2{X: math.NaN(), Y: 10}) {
		t.Error("TouchBegin(NaN) should be rejected")
	}

	dragY(t, c, 300, 320)
	for _, p := range []Vec2{
		{X: 10, Y: math.NaN()},
		{X: 10, Y: math.Inf(1)},
		{X: math.Inf(-1), Y: 10},
		{X: 10, Y: 1e12},
	} {
		c.TouchMove(p)
	}
	if !approxEqual(c.Offset(), 220, epsilon) {
		t.Errorf("Offset = %f, want 220 (invalid moves ignored)", c.Offset())
	}
	if !approxEqual(c.session.distance, 20, epsilon) {
		t.Errorf("distance = %f, want 20", c.session.distance)
	}

	out := c.TouchEnd(Vec2{X: math.NaN(), Y: math.NaN()})
	if out.Point != (Vec2{X: 10, Y: 320}) {
		t.Errorf("release Point = %v, want last accepted (10, 320)", out.Point)
	}
}

func TestCallsWhileIdleAreNoOps(t *testing.T) {
	c := NewController(DefaultConfig(), 500, 1200)
	var taps int
	c.OnTap(func(TapContext) { taps++ })

	c.TouchMove(Vec2{X: 0, Y: 100})
	if out := c.TouchEnd(Vec2{X: 0, Y: 100}); out.Kind != OutcomeNone {
		t.Errorf("TouchEnd while Idle = %v, want OutcomeNone", out.Kind)
	}
	if out := c.TouchCancel(); out.Kind != OutcomeNone {
		t.Errorf("TouchCancel while Idle = %v, want OutcomeNone", out.Kind)
	}
	if taps != 0 || c.Offset() != 0 || c.State() != StateIdle {
		t.Errorf("no-op calls changed state: taps %d offset %f state %v", taps, c.Offset(), c.State())
	}
}

func TestTouchCancel(t *testing.T) {
	t.Run("sub-threshold reports tap at last point", func(t *testing.T) {
		c := NewController(DefaultConfig(), 500, 1200)
		var taps []TapContext
		c.OnTap(func(ctx TapContext) { taps = append(taps, ctx) })
		dragY(t, c, 300, 302)
		out := c.TouchCancel()
		if out.Kind != OutcomeTap || len(taps) != 1 {
			t.Fatalf("cancel: kind %v taps %d, want one tap", out.Kind, len(taps))
		}
		if taps[0].Point != (Vec2{X: 10, Y: 302}) {
			t.Errorf("tap Point = %v, want (10, 302)", taps[0].Point)
		}
	})

	t.Run("CancelAsTap disabled", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.CancelAsTap = false
		c := NewController(cfg, 500, 1200)
		var taps int
		c.OnTap(func(TapContext) { taps++ })
		dragY(t, c, 300)
		out := c.TouchCancel()
		if out.Kind != OutcomeNone || taps != 0 {
			t.Errorf("cancel: kind %v taps %d, want none", out.Kind, taps)
		}
		if c.State() != StateIdle {
			t.Errorf("State = %v, want Idle", c.State())
		}
	})

	t.Run("scroll cancel resolves like release", func(t *testing.T) {
		c := NewController(DefaultConfig(), 500, 1200)
		c.ScrollTo(300)
		dragY(t, c, 300, 340, 380)
		out := c.TouchCancel()
		if out.Kind != OutcomeScroll || c.State() != StateMomentum {
			t.Errorf("cancel: kind %v state %v, want scroll + Momentum", out.Kind, c.State())
		}
	})
}

func TestSetContentExtentResets(t *testing.T) {
	c := NewController(DefaultConfig(), 500, 10000)
	c.ScrollTo(5000)
	dragY(t, c, 500, 560, 620)
	c.TouchEnd(Vec2{X: 10, Y: 620})
	if c.State() != StateMomentum {
		t.Fatalf("State = %v, want Momentum", c.State())
	}

	c.SetContentExtent(1800)
	if c.State() != StateIdle || c.Offset() != 0 || c.IsAnimating() {
		t.Errorf("after content change: state %v offset %f animating %v", c.State(), c.Offset(), c.IsAnimating())
	}
	if c.MaxOffset() != 1300 {
		t.Errorf("MaxOffset = %f, want 1300", c.MaxOffset())
	}

	c.SetContentExtent(-40)
	if c.ContentExtent() != 0 || c.MaxOffset() != 0 {
		t.Errorf("negative content: extent %f max %f, want 0, 0", c.ContentExtent(), c.MaxOffset())
	}

	c.SetContentExtent(math.NaN())
	if c.ContentExtent() != 0 {
		t.Errorf("NaN content changed extent to %f", c.ContentExtent())
	}
}

func TestSetContentExtentDuringDrag(t *testing.T) {
	c := NewController(DefaultConfig(), 500, 1200)
	dragY(t, c, 300, 350)
	c.SetContentExtent(2000)
	if c.State() != StateIdle || c.session != nil {
		t.Fatalf("content change mid-drag: state %v", c.State())
	}
	c.TouchMove(Vec2{X: 10, Y: 400})
	if c.Offset() != 0 {
		t.Errorf("move after reset changed offset to %f", c.Offset())
	}
}

func TestSetViewportExtent(t *testing.T) {
	c := NewController(DefaultConfig(), 500, 1200)
	c.ScrollTo(400)
	c.SetViewportExtent(800)
	if c.Offset() != 0 || c.MaxOffset() != 400 {
		t.Errorf("Offset %f MaxOffset %f, want 0 and 400", c.Offset(), c.MaxOffset())
	}
	c.SetViewportExtent(-1)
	if c.ViewportExtent() != 0 {
		t.Errorf("ViewportExtent = %f, want 0", c.ViewportExtent())
	}
}

func TestResetScrollIdempotent(t *testing.T) {
	c := NewController(DefaultConfig(), 500, 1200)
	c.ScrollTo(300)
	dragY(t, c, 300, 360, 420)
	c.TouchEnd(Vec2{X: 10, Y: 420})

	c.ResetScroll()
	offset1, state1 := c.Offset(), c.State()
	c.ResetScroll()
	if c.Offset() != offset1 || c.State() != state1 {
		t.Errorf("second reset changed (%f, %v) -> (%f, %v)", offset1, state1, c.Offset(), c.State())
	}
	if offset1 != 0 || state1 != StateIdle {
		t.Errorf("after reset: (%f, %v), want (0, Idle)", offset1, state1)
	}
}

func TestScrollTo(t *testing.T) {
	c := NewController(DefaultConfig(), 500, 1200)
	tests := []struct {
		in, want float64
	}{
		{250, 250},
		{-50, 0},
		{5000, 700},
	}
	for _, tt := range tests {
		c.ScrollTo(tt.in)
		if c.Offset() != tt.want {
			t.Errorf("ScrollTo(%v): Offset = %f, want %f", tt.in, c.Offset(), tt.want)
		}
	}

	c.ScrollTo(100)
	c.ScrollBy(40)
	if c.Offset() != 140 {
		t.Errorf("ScrollBy(40): Offset = %f, want 140", c.Offset())
	}

	dragY(t, c, 300)
	if c.ScrollTo(10) {
		t.Error("ScrollTo should be ignored while dragging")
	}
	if c.Offset() != 140 {
		t.Errorf("Offset = %f, want 140", c.Offset())
	}
}

func TestProgress(t *testing.T) {
	c := NewController(DefaultConfig(), 500, 1200)
	c.ScrollTo(350)
	if !approxEqual(c.Progress(), 0.5, epsilon) {
		t.Errorf("Progress = %f, want 0.5", c.Progress())
	}
	dragY(t, c, 300, -200) // 350 - 500 overscrolls the top
	if c.Progress() != 0 {
		t.Errorf("Progress while overscrolled = %f, want 0", c.Progress())
	}
	if NewController(DefaultConfig(), 500, 100).Progress() != 0 {
		t.Error("degenerate Progress should be 0")
	}
}

func TestStateTransitionSequence(t *testing.T) {
	c := NewController(DefaultConfig(), 500, 10000)
	c.ScrollTo(5000)

	var got []StateChange
	c.OnStateChange(func(ch StateChange) { got = append(got, ch) })
	var settles []SettleContext
	c.OnSettle(func(ctx SettleContext) { settles = append(settles, ctx) })

	dragY(t, c, 500, 530, 560)
	c.TouchEnd(Vec2{X: 10, Y: 560})
	runUntilIdle(t, c, 500)

	want := []StateChange{
		{StateIdle, StateDragging},
		{StateDragging, StateMomentum},
		{StateMomentum, StateIdle},
	}
	if len(got) != len(want) {
		t.Fatalf("transitions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("transition %d = %v, want %v", i, got[i], want[i])
		}
	}
	if len(settles) != 1 || settles[0].From != StateMomentum || settles[0].Offset != c.Offset() {
		t.Errorf("settles = %+v, want one from Momentum at %f", settles, c.Offset())
	}
}

func TestTapRegionResolution(t *testing.T) {
	c := NewController(DefaultConfig(), 500, 1200)
	c.SetRegionProvider(RegionList{
		{ID: "row-0", Shape: HitRect{X: 0, Y: 0, Width: 300, Height: 60}},
		{ID: "buy-0", Shape: HitRect{X: 220, Y: 10, Width: 60, Height: 40}, Priority: 1},
	})

	var got []string
	c.OnTap(func(ctx TapContext) {
		if ctx.Region == nil {
			got = append(got, "")
			return
		}
		got = append(got, ctx.Region.ID)
	})

	for _, p := range []Vec2{{X: 100, Y: 30}, {X: 240, Y: 30}, {X: 100, Y: 400}} {
		c.TouchBegin(p)
		c.TouchEnd(p)
	}
	want := []string{"row-0", "buy-0", ""}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tap %d region = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRegionProviderNotQueriedDuringDrag(t *testing.T) {
	c := NewController(DefaultConfig(), 500, 1200)
	p := &countingProvider{}
	c.SetRegionProvider(p)

	dragY(t, c, 300, 340, 380)
	c.TouchEnd(Vec2{X: 10, Y: 380})
	runUntilIdle(t, c, 500)
	if p.calls != 0 {
		t.Errorf("provider queried %d times for a scroll, want 0", p.calls)
	}

	c.TouchBegin(Vec2{X: 10, Y: 10})
	c.TouchEnd(Vec2{X: 10, Y: 10})
	if p.calls != 1 {
		t.Errorf("provider queried %d times for a tap, want 1", p.calls)
	}
}

type countingProvider struct{ calls int }

func (p *countingProvider) InteractiveRegions() []Region {
	p.calls++
	return nil
}

func TestIdleOffsetAlwaysInRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 99))

	for trial := 0; trial < 100; trial++ {
		content := 300 + rng.Float64()*1500
		c := NewController(DefaultConfig(), 500, content)
		y := 300.0
		for op := 0; op < 200; op++ {
			switch rng.IntN(5) {
			case 0:
				y = rng.Float64() * 600
				c.TouchBegin(Vec2{X: 10, Y: y})
			case 1, 2:
				y += (rng.Float64() - 0.5) * 200
				c.TouchMove(Vec2{X: 10, Y: y})
			case 3:
				c.TouchEnd(Vec2{X: 10, Y: y})
			case 4:
				c.Tick(1.0 / 60)
			}
			if c.State() == StateIdle && (c.Offset() < 0 || c.Offset() > c.MaxOffset()) {
				t.Fatalf("trial %d op %d: Idle offset %f outside [0, %f]", trial, op, c.Offset(), c.MaxOffset())
			}
			if (c.session != nil) != (c.State() == StateDragging) {
				t.Fatalf("trial %d op %d: session %v with state %v", trial, op, c.session != nil, c.State())
			}
		}
		c.TouchEnd(Vec2{X: 10, Y: y})
		runUntilIdle(t, c, 2000)
		if c.Offset() < 0 || c.Offset() > c.MaxOffset() {
			t.Fatalf("trial %d: settled offset %f outside [0, %f]", trial, c.Offset(), c.MaxOffset())
		}
	}
}

func TestMotionStateString(t *testing.T) {
	tests := []struct {
		s    MotionState
		want string
	}{
		{StateIdle, "Idle"},
		{StateDragging, "Dragging"},
		{StateMomentum, "Momentum"},
		{StateSnappingBack, "SnappingBack"},
		{MotionState(9), "MotionState(9)"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
