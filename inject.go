package grip

// Synthetic input: queued frames consumed one per Update tick, before any
// polled input. Used by demos, the script runner, and automated tests.
//
// Pointer injections build FramePointer frames and are matched by trackers in
// single-pointer mode; InjectTouches builds FrameTouch frames for multi-touch
// trackers. Mixing kinds against the wrong capability is harmless — the
// frames simply resolve no touch.

// InjectPress queues a pointer press at the given coordinates.
// The frame is consumed on the next Update tick.
func (d *Dispatcher) InjectPress(x, y float64) {
	d.injectQueue = append(d.injectQueue, Frame{
		Kind: FramePointer, X: x, Y: y, Pressed: true,
	})
}

// InjectMove queues a pointer move with the button held down. Use between
// InjectPress and InjectRelease to simulate a drag.
func (d *Dispatcher) InjectMove(x, y float64) {
	d.injectQueue = append(d.injectQueue, Frame{
		Kind: FramePointer, X: x, Y: y,
	})
}

// InjectRelease queues a pointer release at the given coordinates.
func (d *Dispatcher) InjectRelease(x, y float64) {
	d.injectQueue = append(d.injectQueue, Frame{
		Kind: FramePointer, X: x, Y: y, Released: true,
	})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same coordinates. Consumes two ticks.
func (d *Dispatcher) InjectClick(x, y float64) {
	d.InjectPress(x, y)
	d.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate ticks, and release at
// (toX, toY). The total sequence consumes `frames` ticks.
// Minimum frames is 2 (press + release).
func (d *Dispatcher) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	d.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		d.InjectMove(x, y)
	}
	d.InjectRelease(toX, toY)
}

// InjectTouches queues a multi-touch frame with the given touch points.
// Callers mark Pressed/Released edges themselves; the frame's primary
// coordinates mirror the first point.
func (d *Dispatcher) InjectTouches(points ...TouchPoint) {
	f := Frame{Kind: FrameTouch, Touches: points}
	if len(points) > 0 {
		f.X = points[0].X
		f.Y = points[0].Y
	}
	d.injectQueue = append(d.injectQueue, f)
}

// InjectQueueLen returns the number of queued frames not yet consumed.
func (d *Dispatcher) InjectQueueLen() int {
	return len(d.injectQueue)
}
