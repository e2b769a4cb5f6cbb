package swipe

import (
	"fmt"
	"os"
)

// debugStateChange prints a panel's motion state transition to stderr.
func (h *Host) debugStateChange(p *Panel, ch StateChange) {
	if !h.debug {
		return
	}
	c := p.Controller
	_, _ = fmt.Fprintf(os.Stderr, "[swipe] %s: %v -> %v | offset: %.2f / %.2f | velocity: %.3f\n",
		p.Name, ch.From, ch.To, c.Offset(), c.MaxOffset(), c.Velocity())
}

// debugTap prints a tap decision and the region it resolved to.
func (h *Host) debugTap(p *Panel, ctx TapContext, regionID string) {
	if !h.debug {
		return
	}
	if regionID == "" {
		regionID = "-"
	}
	_, _ = fmt.Fprintf(os.Stderr, "[swipe] %s: tap at (%.1f, %.1f) | region: %s\n",
		p.Name, ctx.Point.X, ctx.Point.Y, regionID)
}

// debugScroll prints a scroll decision.
func (h *Host) debugScroll(p *Panel, ctx ScrollContext) {
	if !h.debug {
		return
	}
	kind := "momentum"
	if ctx.SnapBack {
		kind = "snap-back"
	} else if ctx.Velocity == 0 {
		kind = "rest"
	}
	_, _ = fmt.Fprintf(os.Stderr, "[swipe] %s: scroll %s | distance: %.1f | offset: %.2f | velocity: %.3f\n",
		p.Name, kind, ctx.Distance, ctx.Offset, ctx.Velocity)
}
