package grip

// PriorityList is the host dispatch-ordering collaborator. A tracker raises
// itself when a drag starts so it preempts lower-priority trackers for the
// remainder of the gesture, and restores its default position when the
// gesture ends. Both calls must be idempotent. Dispatcher implements it.
type PriorityList interface {
	Raise(t *Tracker)
	Restore(t *Tracker)
}

// Tracker is the per-surface drag gesture state machine. It is fed one Frame
// per tick (directly via HandleFrame, or by a Dispatcher) and emits
// touch-start, drag-start, drag, drag-end, and touch-end events.
//
// The machine has three states: idle, touching, dragging. A touch is acquired
// on a press that hits the surface; it becomes a drag once the pointer moves
// at least the dead-zone distance from the press position; releasing ends it.
// A touching tracker that is released before the dead zone is exceeded goes
// straight back to idle without ever dragging.
type Tracker struct {
	// Surface is the hit region this tracker owns. Never nil.
	Surface *Surface

	// AllowX and AllowY gate the motion axes. A disabled axis is continuously
	// pinned to the current pointer coordinate, so it contributes neither to
	// dead-zone distance nor to drag deltas. Both default to true; toggling
	// takes effect on the next processed frame.
	AllowX bool
	AllowY bool

	deadZone   float64
	multiTouch bool
	priority   PriorityList // may be nil (standalone tracker)
	order      int          // registration position in the dispatch list
	raised     bool         // currently elevated to the front of the list
	clickZone  Region

	// Gesture state
	touching bool
	dragging bool
	touchID  TouchID
	startX   float64 // press anchor, axis-locked per AllowX/AllowY
	startY   float64
	currentX float64 // last known pointer position
	currentY float64
	deltaX   float64 // per-tick motion, valid only while dragging
	deltaY   float64
	grabX    float64 // surface position at touch-start, for SnapBack
	grabY    float64

	handlers handlerRegistry
}

// NewTracker creates a standalone tracker for the given surface with the
// default dead zone, single-pointer capability, and no priority list.
// Panics if surface is nil.
func NewTracker(surface *Surface) *Tracker {
	if surface == nil {
		panic("grip: tracker requires a surface")
	}
	return &Tracker{
		Surface:  surface,
		AllowX:   true,
		AllowY:   true,
		deadZone: defaultDragDeadZone,
		touchID:  NoTouch,
	}
}

// --- Configuration ---

// SetDragDeadZone sets the minimum movement in pixels before a drag starts.
func (t *Tracker) SetDragDeadZone(pixels float64) {
	t.deadZone = pixels
}

// SetMultiTouch selects which frame kind this tracker accepts: FrameTouch
// when true, FramePointer when false. Frames of the other kind resolve no
// touch and are ignored.
func (t *Tracker) SetMultiTouch(multiTouch bool) {
	t.multiTouch = multiTouch
}

// SetPriorityList attaches the host dispatch list the tracker reorders on
// drag start and gesture end. Pass nil to detach.
func (t *Tracker) SetPriorityList(p PriorityList) {
	t.priority = p
}

// SetClickZone sets an optional secondary hit region, in surface-local
// coordinates, that the pointer must also hit for a touch-down to be
// accepted. Pass nil to clear. Use this to restrict grabbing to a handle
// area of a larger surface.
func (t *Tracker) SetClickZone(zone Region) {
	t.clickZone = zone
}

// --- State queries ---

// IsTouching reports whether a pointer is currently down and owned by this tracker.
func (t *Tracker) IsTouching() bool { return t.touching }

// IsDragging reports whether the dead zone has been exceeded and a drag is active.
func (t *Tracker) IsDragging() bool { return t.dragging }

// TouchID returns the touch this tracker follows, or NoTouch outside a touch
// or on single-pointer input.
func (t *Tracker) TouchID() TouchID { return t.touchID }

// Position returns the tracker's last known pointer position.
func (t *Tracker) Position() (x, y float64) { return t.currentX, t.currentY }

// Delta returns the per-tick motion. Valid only while dragging; zero otherwise.
func (t *Tracker) Delta() (dx, dy float64) { return t.deltaX, t.deltaY }

// StartPosition returns the press anchor the dead zone is measured from.
func (t *Tracker) StartPosition() (x, y float64) { return t.startX, t.startY }

// GrabAnchor returns the surface's position at touch-start. Used by SnapBack.
func (t *Tracker) GrabAnchor() (x, y float64) { return t.grabX, t.grabY }

// --- Frame handling ---

// HandleFrame runs one tick of the state machine and reports whether the
// frame was consumed (true iff the tracker is dragging afterward).
//
// Every failure condition — disabled surface, hit-test miss, wrong frame
// kind, no resolvable touch — is a silent "not consumed", never an error.
func (t *Tracker) HandleFrame(f Frame) bool {
	if f.Kind != FramePointer && f.Kind != FrameTouch {
		return false
	}
	if !t.Surface.Enabled {
		return false
	}

	// A miss while not dragging force-ends any held touch, so a tracker never
	// stays stuck owning a touch that slid off the surface before a drag began.
	if !t.picked(f.X, f.Y) && !t.dragging {
		t.endTouch()
		return false
	}

	pt, ok := t.resolveTouch(f)
	if !ok {
		return false
	}
	if pt.ID != NoTouch {
		t.touchID = pt.ID
	}

	t.deltaX, t.deltaY = 0, 0

	if pt.Pressed && !t.touching {
		t.startTouch(pt.X, pt.Y)
	}

	if pt.Released && t.touching {
		// With two or more touch points on the frame, another finger may take
		// over the gesture; single-pointer input has no hand-off candidate.
		if f.Kind == FrameTouch && len(f.Touches) >= 2 {
			if !t.handOff(f) {
				t.endTouch()
			}
		} else {
			t.endTouch()
		}
	}

	// Re-resolve: the tracked id may have changed during hand-off.
	if cur, ok := t.resolveTouch(f); ok {
		if t.touching {
			t.progressTouch(cur.X, cur.Y)
		}
		if t.dragging {
			if t.AllowX {
				t.deltaX = cur.X - t.currentX
			}
			if t.AllowY {
				t.deltaY = cur.Y - t.currentY
			}
		}
		// Track the position even while idle or merely touching, so the first
		// dragging tick computes its delta from the previous tick's position
		// rather than the press point.
		t.currentX, t.currentY = cur.X, cur.Y
	}

	if t.dragging {
		t.fireDrag()
	}
	return t.dragging
}

// Interrupt force-ends the gesture in response to an external signal such as
// focus loss or an input-system reset. Safe to call in any state.
func (t *Tracker) Interrupt() {
	t.endTouch()
}

// picked reports whether (x, y) hits the surface and, when a click zone is
// set, the click zone too.
func (t *Tracker) picked(x, y float64) bool {
	if !t.Surface.Contains(x, y) {
		return false
	}
	if t.clickZone != nil && !t.clickZone.Contains(x-t.Surface.X, y-t.Surface.Y) {
		return false
	}
	return true
}

// resolveTouch picks the touch point this tracker should follow from the
// frame. A frame whose kind disagrees with the tracker's capability resolves
// nothing. Touch lists match by tracked id, falling back to the first entry
// when the id is absent (or none has been captured yet). Single samples
// resolve unconditionally.
func (t *Tracker) resolveTouch(f Frame) (TouchPoint, bool) {
	if t.multiTouch {
		if f.Kind != FrameTouch {
			return TouchPoint{}, false
		}
		for i := range f.Touches {
			if f.Touches[i].ID == t.touchID {
				return f.Touches[i], true
			}
		}
		if len(f.Touches) == 0 {
			return TouchPoint{}, false
		}
		return f.Touches[0], true
	}
	if f.Kind != FramePointer {
		return TouchPoint{}, false
	}
	return TouchPoint{
		ID:       NoTouch,
		X:        f.X,
		Y:        f.Y,
		Pressed:  f.Pressed,
		Released: f.Released,
	}, true
}

// startTouch acquires the touch: records the press anchor and current
// position, and emits touch-start.
func (t *Tracker) startTouch(x, y float64) {
	t.startX, t.startY = x, y
	t.currentX, t.currentY = x, y
	t.grabX, t.grabY = t.Surface.X, t.Surface.Y
	t.touching = true
	t.dragging = false
	t.fireTouchStart()
}

// handOff reassigns the gesture to the first non-released touch point in the
// frame. Reports false when every point is released and the gesture must end.
func (t *Tracker) handOff(f Frame) bool {
	for i := range f.Touches {
		p := f.Touches[i]
		if p.Released {
			continue
		}
		t.touchID = p.ID
		t.currentX, t.currentY = p.X, p.Y
		return true
	}
	return false
}

// progressTouch applies axis locking to the press anchor and promotes the
// touch to a drag once the pointer is at least the dead-zone distance away.
func (t *Tracker) progressTouch(x, y float64) {
	if !t.AllowX {
		t.startX = x
	}
	if !t.AllowY {
		t.startY = y
	}
	if t.dragging {
		return
	}
	if dist(x, y, t.startX, t.startY) >= t.deadZone {
		t.dragging = true
		t.fireDragStart()
		if t.priority != nil {
			t.priority.Raise(t)
		}
	}
}

// endTouch is the single exit path back to idle: drag-end (if dragging),
// then touch-end, priority restore, and id reset. Calling it while already
// idle is a silent no-op.
func (t *Tracker) endTouch() {
	if t.dragging {
		t.fireDragEnd()
	}
	t.dragging = false
	if t.touching {
		t.touching = false
		t.fireTouchEnd()
		if t.priority != nil {
			t.priority.Restore(t)
		}
	}
	t.touchID = NoTouch
}
