package grip

import "math"

// --- Constants ---

// defaultDragDeadZone is the distance in pixels a pointer must travel from its
// press position before a touch is promoted to a drag.
const defaultDragDeadZone = 4.0

// --- Identifiers ---

// TouchID identifies a physical touch point within a multi-touch frame.
// Mouse and other single-pointer samples carry NoTouch.
type TouchID int

// NoTouch is the neutral touch identifier: the tracker is not following any
// specific touch point.
const NoTouch TouchID = -1

// --- Frame kinds ---

// FrameKind tags the payload shape of an input Frame.
type FrameKind uint8

const (
	FrameNone    FrameKind = iota // no pointer input this tick
	FramePointer                  // single pointer sample (X, Y, Pressed, Released)
	FrameTouch                    // multi-touch list (Touches)
)

// EventType identifies a kind of gesture event.
type EventType uint8

const (
	EventTouchStart EventType = iota // fires when a touch is acquired on a surface
	EventTouchEnd                    // fires when the tracked touch ends
	EventDragStart                   // fires when movement exceeds the drag dead zone
	EventDrag                        // fires each tick while dragging
	EventDragEnd                     // fires when a drag ends, before touch-end
)

// Vec2 is a 2D vector used for positions and offsets throughout the API.
type Vec2 struct {
	X, Y float64
}

// --- Regions ---

// Region is a hit area in surface-local coordinates.
type Region interface {
	Contains(x, y float64) bool
}

// RegionRect is an axis-aligned rectangular hit area in local coordinates.
type RegionRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r RegionRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// RegionCircle is a circular hit area in local coordinates.
type RegionCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c RegionCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// RegionPolygon is a convex polygon hit area in local coordinates.
// Points must define a convex polygon in either winding order.
type RegionPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside a convex polygon using cross-product sign test.
func (p RegionPolygon) Contains(x, y float64) bool {
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

// --- Geometry helpers ---

// dist returns the Euclidean distance between (x1, y1) and (x2, y2).
func dist(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}
