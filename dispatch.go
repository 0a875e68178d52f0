package grip

// Dispatcher owns the priority-ordered tracker list and drives it with one
// frame per tick. Trackers are processed in list order; the first one that
// consumes a frame (i.e. is dragging) preempts the rest. A tracker raises
// itself to the front when its drag starts and is restored to its
// registration position when the gesture ends.
//
// Dispatcher is single-threaded and synchronous, like the rest of grip:
// call Update (or Dispatch) once per tick from the game loop.
type Dispatcher struct {
	trackers    []*Tracker
	dispatchBuf []*Tracker // iteration snapshot; Raise/Restore reorder mid-dispatch
	nextOrder   int

	dragDeadZone float64
	multiTouch   bool

	source      *Source
	injectQueue []Frame
}

// NewDispatcher creates an empty dispatcher with the default drag dead zone
// and single-pointer capability.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{dragDeadZone: defaultDragDeadZone}
}

// SetDragDeadZone sets the dead zone applied to trackers created by
// subsequent Track calls. Existing trackers keep their own value; use
// Tracker.SetDragDeadZone to change one after the fact.
func (d *Dispatcher) SetDragDeadZone(pixels float64) {
	d.dragDeadZone = pixels
}

// SetMultiTouch sets the platform capability applied to trackers created by
// subsequent Track calls: true means frames carry touch lists, false means
// single pointer samples. Supply this from the host; grip never detects it.
func (d *Dispatcher) SetMultiTouch(multiTouch bool) {
	d.multiTouch = multiTouch
}

// SetSource attaches the polling source Update reads real input from.
// The source's capability should match SetMultiTouch.
func (d *Dispatcher) SetSource(src *Source) {
	d.source = src
}

// Track creates a tracker for the surface, configured from the dispatcher's
// dead zone and capability, and appends it to the dispatch list.
func (d *Dispatcher) Track(surface *Surface) *Tracker {
	t := NewTracker(surface)
	t.deadZone = d.dragDeadZone
	t.multiTouch = d.multiTouch
	t.priority = d
	t.order = d.nextOrder
	d.nextOrder++
	d.trackers = append(d.trackers, t)
	return t
}

// Untrack removes a tracker from the dispatch list, force-ending any gesture
// it owns. No-op if the tracker is not in the list.
func (d *Dispatcher) Untrack(t *Tracker) {
	i := d.indexOf(t)
	if i < 0 {
		return
	}
	t.Interrupt()
	copy(d.trackers[i:], d.trackers[i+1:])
	d.trackers[len(d.trackers)-1] = nil
	d.trackers = d.trackers[:len(d.trackers)-1]
	t.priority = nil
	t.raised = false
}

// Trackers returns the dispatch list in current priority order.
// The returned slice MUST NOT be mutated.
func (d *Dispatcher) Trackers() []*Tracker {
	return d.trackers
}

// Draggable tracks the surface and wires the drag deltas into its position,
// the common case for freely movable surfaces.
func Draggable(d *Dispatcher, surface *Surface) *Tracker {
	t := d.Track(surface)
	t.OnDrag(func(c DragContext) {
		surface.MoveBy(c.DeltaX, c.DeltaY)
	})
	return t
}

// --- Per-tick driving ---

// Update delivers one frame to the dispatch list: the oldest injected frame
// if any are queued, otherwise a fresh frame polled from the source. Call
// once per tick.
func (d *Dispatcher) Update() {
	if len(d.injectQueue) > 0 {
		f := d.injectQueue[0]
		copy(d.injectQueue, d.injectQueue[1:])
		d.injectQueue[len(d.injectQueue)-1] = Frame{}
		d.injectQueue = d.injectQueue[:len(d.injectQueue)-1]
		d.Dispatch(f)
		return
	}
	if d.source != nil {
		d.Dispatch(d.source.ReadFrame())
	}
}

// Dispatch feeds the frame to trackers in priority order, stopping at the
// first one that consumes it. Reports whether any tracker consumed the frame.
func (d *Dispatcher) Dispatch(f Frame) bool {
	// Iterate over a snapshot: a tracker's Raise/Restore reorders the live
	// list from inside HandleFrame.
	d.dispatchBuf = append(d.dispatchBuf[:0], d.trackers...)
	for _, t := range d.dispatchBuf {
		if t.HandleFrame(f) {
			return true
		}
	}
	return false
}

// Interrupt force-ends every tracked gesture, for focus loss or an input
// system reset. No tracker survives in a non-idle state.
func (d *Dispatcher) Interrupt() {
	d.dispatchBuf = append(d.dispatchBuf[:0], d.trackers...)
	for _, t := range d.dispatchBuf {
		t.Interrupt()
	}
}

// --- PriorityList implementation ---

// Raise moves the tracker to the front of the dispatch list. Idempotent:
// an already-raised tracker stays where it is.
func (d *Dispatcher) Raise(t *Tracker) {
	i := d.indexOf(t)
	if i < 0 || t.raised {
		return
	}
	t.raised = true
	copy(d.trackers[1:i+1], d.trackers[:i])
	d.trackers[0] = t
}

// Restore returns the tracker to its registration position: after any still
// raised trackers, ordered by registration among the rest. Idempotent.
func (d *Dispatcher) Restore(t *Tracker) {
	i := d.indexOf(t)
	if i < 0 || !t.raised {
		return
	}
	t.raised = false
	copy(d.trackers[i:], d.trackers[i+1:])
	d.trackers = d.trackers[:len(d.trackers)-1]

	j := 0
	for j < len(d.trackers) && (d.trackers[j].raised || d.trackers[j].order <= t.order) {
		j++
	}
	d.trackers = append(d.trackers, nil)
	copy(d.trackers[j+1:], d.trackers[j:])
	d.trackers[j] = t
}

func (d *Dispatcher) indexOf(t *Tracker) int {
	for i, other := range d.trackers {
		if other == t {
			return i
		}
	}
	return -1
}
