package swipe

// HitShape is a hit-testable area in screen coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon hit area.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside a convex polygon using cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	// Check that the point is on the same side of every edge.
	var positive, negative bool
	for i := 0; i < n; i++ {
		x1 := p.Points[i].X
		y1 := p.Points[i].Y
		j := (i + 1) % n
		x2 := p.Points[j].X
		y2 := p.Points[j].Y

		cross := (x2-x1)*(y-y1) - (y2-y1)*(x-x1)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// Region is one interactive element of a panel: a shop item's buy button, a
// character cell, a tab header.
type Region struct {
	ID       string
	Shape    HitShape
	Priority int
	// Data is opaque to the controller and handed back on a tap.
	Data any
}

// RegionProvider supplies the interactive regions of a panel. It is queried
// only after a gesture has been resolved as a tap, never during a drag, so
// implementations can lay regions out against the current offset.
type RegionProvider interface {
	InteractiveRegions() []Region
}

// RegionList is a static RegionProvider.
type RegionList []Region

// InteractiveRegions returns the list itself.
func (l RegionList) InteractiveRegions() []Region {
	return l
}

// HitTest returns the region under (x, y) with the highest Priority. Among
// equal priorities the later entry wins, matching painter order where later
// elements draw on top. Returns nil if nothing is hit.
func HitTest(regions []Region, x, y float64) *Region {
	var best *Region
	for i := len(regions) - 1; i >= 0; i-- {
		r := &regions[i]
		if r.Shape == nil || !r.Shape.Contains(x, y) {
			continue
		}
		if best == nil || r.Priority > best.Priority {
			best = r
		}
	}
	return best
}
