// Package grip is a pointer and touch drag-gesture recognizer for [Ebitengine].
//
// Grip converts raw per-tick pointer samples into a single logical drag
// gesture per draggable surface: touch-start, drag-start once movement exceeds
// a dead zone, per-tick drag deltas, and drag-end/touch-end. On multi-touch
// platforms a drag survives finger hand-offs: lift one finger while another is
// down and the gesture continues under the remaining finger.
//
// # Quick start
//
// Create a [Dispatcher], give it a polling [Source], and track one or more
// surfaces:
//
//	d := grip.NewDispatcher()
//	d.SetSource(grip.NewSource(false)) // false = mouse / single pointer
//
//	box := grip.NewSurface("box", grip.RegionRect{Width: 80, Height: 80})
//	t := grip.Draggable(d, box)
//
// Then call [Dispatcher.Update] once per ebiten Update tick:
//
//	func (g *Game) Update() error { g.d.Update(); return nil }
//
// [Draggable] wires the drag deltas into Surface.X/Y; register your own
// callbacks instead if you want different behavior:
//
//	t.OnDrag(func(c grip.DragContext) {
//		fmt.Println("delta", c.DeltaX, c.DeltaY)
//	})
//
// # Surfaces and trackers
//
// A [Surface] is a named hit region at a position: the thing the user drags.
// A [Tracker] is the per-surface gesture state machine. Trackers created via
// [Dispatcher.Track] participate in a shared priority-ordered dispatch list:
// a tracker that starts dragging is raised to the front of the list and
// consumes frames until its gesture ends, preempting the other trackers.
//
// Trackers can also be driven directly with [Tracker.HandleFrame] when the
// host wants full control over frame delivery (or has no Dispatcher at all).
//
// # Frames
//
// Input arrives as [Frame] values, one per tick. A frame is either a single
// pointer sample (mouse) or a list of [TouchPoint]s (multi-touch). [Source]
// builds frames from ebiten's cursor and touch state with press/release edge
// detection; [Dispatcher.InjectDrag] and friends queue synthetic frames for
// demos and automated tests.
//
// # Snap-back
//
// [SnapBack] returns a [TweenGroup] (via [gween]) that eases a surface back
// to where it was grabbed, for drop-rejection UIs:
//
//	t.OnDragEnd(func(c grip.DragContext) {
//		g.tween = grip.SnapBack(c.Tracker, 0.3, ease.OutQuad)
//	})
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package grip
