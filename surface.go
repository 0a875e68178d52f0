package grip

// Surface is a draggable hit region at a position: the logical thing the user
// grabs. A single flat struct is used for all surfaces; the shape alone
// decides the hit area, in surface-local coordinates.
//
// Surfaces hold no gesture state. That lives in the Tracker, so the same
// Surface value can be shared with rendering code freely.
type Surface struct {
	// Identity
	Name string

	// Position of the local origin in world coordinates.
	X, Y float64

	// Shape is the hit area in local coordinates. A nil shape never hits.
	Shape Region

	// Enabled gates input. A disabled surface ignores all frames.
	Enabled bool

	// Metadata
	UserData any

	// Per-surface callbacks (nil by default; zero cost when unused).
	// Fired after tracker-level handlers, in this order.
	OnTouchStart func(TouchContext)
	OnTouchEnd   func(TouchContext)
	OnDragStart  func(DragContext)
	OnDrag       func(DragContext)
	OnDragEnd    func(DragContext)
}

// NewSurface creates an enabled surface with the given name and hit shape.
func NewSurface(name string, shape Region) *Surface {
	return &Surface{
		Name:    name,
		Shape:   shape,
		Enabled: true,
	}
}

// Contains reports whether the world point (x, y) falls inside the surface's
// shape. Surfaces with a nil shape are not hit-testable.
func (s *Surface) Contains(x, y float64) bool {
	if s.Shape == nil {
		return false
	}
	return s.Shape.Contains(x-s.X, y-s.Y)
}

// MoveBy shifts the surface by (dx, dy).
func (s *Surface) MoveBy(dx, dy float64) {
	s.X += dx
	s.Y += dy
}
