package grip

// TouchContext carries touch-start and touch-end event data.
type TouchContext struct {
	Tracker  *Tracker
	Surface  *Surface
	UserData any
	X, Y     float64
	TouchID  TouchID
}

// DragContext carries drag-start, drag, and drag-end event data.
type DragContext struct {
	Tracker  *Tracker
	Surface  *Surface
	UserData any
	X, Y     float64
	StartX   float64
	StartY   float64
	DeltaX   float64
	DeltaY   float64
	TouchID  TouchID
}

// --- Handler registry ---

type touchHandler struct {
	id uint32
	fn func(TouchContext)
}

type dragHandler struct {
	id uint32
	fn func(DragContext)
}

type handlerRegistry struct {
	touchStart []touchHandler
	touchEnd   []touchHandler
	dragStart  []dragHandler
	drag       []dragHandler
	dragEnd    []dragHandler
	nextID     uint32
}

// CallbackHandle allows removing a registered tracker-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
// Safe on the zero value.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventTouchStart:
		h.reg.touchStart = removeTouchHandler(h.reg.touchStart, h.id)
	case EventTouchEnd:
		h.reg.touchEnd = removeTouchHandler(h.reg.touchEnd, h.id)
	case EventDragStart:
		h.reg.dragStart = removeDragHandler(h.reg.dragStart, h.id)
	case EventDrag:
		h.reg.drag = removeDragHandler(h.reg.drag, h.id)
	case EventDragEnd:
		h.reg.dragEnd = removeDragHandler(h.reg.dragEnd, h.id)
	}
}

func removeTouchHandler(s []touchHandler, id uint32) []touchHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = touchHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeDragHandler(s []dragHandler, id uint32) []dragHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = dragHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Tracker-level event registration ---

// OnTouchStart registers a callback fired when a touch is acquired.
func (t *Tracker) OnTouchStart(fn func(TouchContext)) CallbackHandle {
	t.handlers.nextID++
	id := t.handlers.nextID
	t.handlers.touchStart = append(t.handlers.touchStart, touchHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &t.handlers, event: EventTouchStart}
}

// OnTouchEnd registers a callback fired when the tracked touch ends.
func (t *Tracker) OnTouchEnd(fn func(TouchContext)) CallbackHandle {
	t.handlers.nextID++
	id := t.handlers.nextID
	t.handlers.touchEnd = append(t.handlers.touchEnd, touchHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &t.handlers, event: EventTouchEnd}
}

// OnDragStart registers a callback fired when the dead zone is exceeded.
func (t *Tracker) OnDragStart(fn func(DragContext)) CallbackHandle {
	t.handlers.nextID++
	id := t.handlers.nextID
	t.handlers.dragStart = append(t.handlers.dragStart, dragHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &t.handlers, event: EventDragStart}
}

// OnDrag registers a callback fired each tick while dragging.
func (t *Tracker) OnDrag(fn func(DragContext)) CallbackHandle {
	t.handlers.nextID++
	id := t.handlers.nextID
	t.handlers.drag = append(t.handlers.drag, dragHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &t.handlers, event: EventDrag}
}

// OnDragEnd registers a callback fired when a drag ends, before touch-end.
func (t *Tracker) OnDragEnd(fn func(DragContext)) CallbackHandle {
	t.handlers.nextID++
	id := t.handlers.nextID
	t.handlers.dragEnd = append(t.handlers.dragEnd, dragHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &t.handlers, event: EventDragEnd}
}

// --- Event dispatch ---

func (t *Tracker) touchContext() TouchContext {
	return TouchContext{
		Tracker:  t,
		Surface:  t.Surface,
		UserData: t.Surface.UserData,
		X:        t.currentX,
		Y:        t.currentY,
		TouchID:  t.touchID,
	}
}

func (t *Tracker) dragContext() DragContext {
	return DragContext{
		Tracker:  t,
		Surface:  t.Surface,
		UserData: t.Surface.UserData,
		X:        t.currentX,
		Y:        t.currentY,
		StartX:   t.startX,
		StartY:   t.startY,
		DeltaX:   t.deltaX,
		DeltaY:   t.deltaY,
		TouchID:  t.touchID,
	}
}

func (t *Tracker) fireTouchStart() {
	ctx := t.touchContext()
	for _, h := range t.handlers.touchStart {
		h.fn(ctx)
	}
	if t.Surface.OnTouchStart != nil {
		t.Surface.OnTouchStart(ctx)
	}
}

func (t *Tracker) fireTouchEnd() {
	ctx := t.touchContext()
	for _, h := range t.handlers.touchEnd {
		h.fn(ctx)
	}
	if t.Surface.OnTouchEnd != nil {
		t.Surface.OnTouchEnd(ctx)
	}
}

func (t *Tracker) fireDragStart() {
	ctx := t.dragContext()
	for _, h := range t.handlers.dragStart {
		h.fn(ctx)
	}
	if t.Surface.OnDragStart != nil {
		t.Surface.OnDragStart(ctx)
	}
}

func (t *Tracker) fireDrag() {
	ctx := t.dragContext()
	for _, h := range t.handlers.drag {
		h.fn(ctx)
	}
	if t.Surface.OnDrag != nil {
		t.Surface.OnDrag(ctx)
	}
}

func (t *Tracker) fireDragEnd() {
	ctx := t.dragContext()
	for _, h := range t.handlers.dragEnd {
		h.fn(ctx)
	}
	if t.Surface.OnDragEnd != nil {
		t.Surface.OnDragEnd(ctx)
	}
}
