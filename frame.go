package grip

import "github.com/hajimehoshi/ebiten/v2"

// TouchPoint is one physical touch within a multi-touch Frame.
type TouchPoint struct {
	ID       TouchID
	X, Y     float64
	Pressed  bool // touch appeared this tick
	Released bool // touch lifted this tick; X/Y hold the last known position
}

// Frame is one discrete input sample delivered per tick. A frame is either a
// single pointer sample (FramePointer: X, Y, Pressed, Released) or a list of
// touch points (FrameTouch: Touches, with X/Y mirroring the first entry).
type Frame struct {
	Kind     FrameKind
	X, Y     float64
	Pressed  bool
	Released bool
	Touches  []TouchPoint
}

// --- Pure frame builders ---

// mouseFrame builds a single-pointer frame with edge detection against the
// previous tick's button state.
func mouseFrame(x, y float64, down, wasDown bool) Frame {
	return Frame{
		Kind:     FramePointer,
		X:        x,
		Y:        y,
		Pressed:  down && !wasDown,
		Released: !down && wasDown,
	}
}

// touchFrame builds a multi-touch frame from the currently live touch points
// and the previous tick's live set. Points in cur that were absent last tick
// are marked Pressed; points from prev that vanished are appended as Released
// entries at their last known position. The returned slice is the next tick's
// prev set (live points only), aliasing cur.
func touchFrame(cur, prev []TouchPoint) (Frame, []TouchPoint) {
	for i := range cur {
		cur[i].Pressed = !containsTouch(prev, cur[i].ID)
		cur[i].Released = false
	}

	f := Frame{Kind: FrameTouch, Touches: cur}
	live := len(cur)

	for _, p := range prev {
		if containsTouch(cur, p.ID) {
			continue
		}
		p.Pressed = false
		p.Released = true
		f.Touches = append(f.Touches, p)
	}

	if len(f.Touches) > 0 {
		f.X = f.Touches[0].X
		f.Y = f.Touches[0].Y
	}
	return f, f.Touches[:live]
}

func containsTouch(pts []TouchPoint, id TouchID) bool {
	for i := range pts {
		if pts[i].ID == id {
			return true
		}
	}
	return false
}

// --- Polling source ---

// Source polls ebiten's cursor and touch state once per tick and produces
// Frames with press/release edges. Create one per Dispatcher; the edge
// detection depends on ReadFrame being called exactly once per tick.
type Source struct {
	multiTouch bool

	// Mouse state (single-pointer mode)
	mouseDown bool

	// Touch state (multi-touch mode). Buffers are reused across ticks.
	touchIDs []ebiten.TouchID
	points   []TouchPoint
	prev     []TouchPoint
	prevBuf  []TouchPoint
}

// NewSource creates a source. multiTouch selects whether frames are built
// from ebiten touches (FrameTouch) or the mouse cursor (FramePointer); the
// host supplies this capability, grip never detects it.
func NewSource(multiTouch bool) *Source {
	return &Source{multiTouch: multiTouch}
}

// MultiTouch reports the capability this source was created with.
func (s *Source) MultiTouch() bool {
	return s.multiTouch
}

// ReadFrame polls input and returns this tick's frame.
func (s *Source) ReadFrame() Frame {
	if s.multiTouch {
		return s.readTouchFrame()
	}
	return s.readMouseFrame()
}

func (s *Source) readMouseFrame() Frame {
	mx, my := ebiten.CursorPosition()
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	f := mouseFrame(float64(mx), float64(my), down, s.mouseDown)
	s.mouseDown = down
	return f
}

func (s *Source) readTouchFrame() Frame {
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	s.points = s.points[:0]
	for _, tid := range s.touchIDs {
		tx, ty := ebiten.TouchPosition(tid)
		s.points = append(s.points, TouchPoint{
			ID: TouchID(tid),
			X:  float64(tx),
			Y:  float64(ty),
		})
	}

	f, live := touchFrame(s.points, s.prev)

	// Copy the live set: s.points is rebuilt next tick.
	s.prevBuf = append(s.prevBuf[:0], live...)
	s.prev, s.prevBuf = s.prevBuf, s.prev
	return f
}
