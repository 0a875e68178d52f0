package grip

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates a Surface's X and Y simultaneously. Create one via
// MoveTo or SnapBack and call Update(dt) each tick; values are written
// straight into the surface fields.
//
// There is no global animation manager — users call Update themselves.
type TweenGroup struct {
	tweens [2]*gween.Tween
	fields [2]*float64
	Done   bool
}

// Update advances both tweens by dt seconds and writes the values to the
// target surface.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := range g.tweens {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// MoveTo creates a TweenGroup that animates the surface to the given target
// position over the specified duration using the easing function.
func MoveTo(s *Surface, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.tweens[0] = gween.New(float32(s.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(s.Y), float32(toY), duration, fn)
	g.fields[0] = &s.X
	g.fields[1] = &s.Y
	return g
}

// SnapBack creates a TweenGroup that returns the tracker's surface to the
// position it had when the gesture grabbed it. Typically created from an
// OnDragEnd callback for drop-rejection UIs.
func SnapBack(t *Tracker, duration float32, fn ease.TweenFunc) *TweenGroup {
	gx, gy := t.GrabAnchor()
	return MoveTo(t.Surface, gx, gy, duration, fn)
}
