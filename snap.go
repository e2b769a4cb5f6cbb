package swipe

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// snapAnim eases the offset from an overscrolled position back to a bound.
// The tween runs in float32 (gween's precision); the final frame writes the
// exact float64 target so the bound is hit without rounding error.
type snapAnim struct {
	tween  *gween.Tween
	target float64
	done   bool
}

func newSnapAnim(from, to, duration float64, fn ease.TweenFunc) *snapAnim {
	return &snapAnim{
		tween:  gween.New(float32(from), float32(to), float32(duration), fn),
		target: to,
	}
}

// update advances the tween by dt seconds and returns the new offset.
func (a *snapAnim) update(dt float64) float64 {
	if a.done {
		return a.target
	}
	val, finished := a.tween.Update(float32(dt))
	if finished {
		a.done = true
		return a.target
	}
	return float64(val)
}
