package quadxform

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Transition eases the displayed geometry from one vertex set to another.
// It only affects what is drawn; the session's geometry has already changed
// by the time a Transition starts.
//
// There is no global animation manager; callers Update it themselves.
type Transition struct {
	from  []Vec2
	to    []Vec2
	out   []Vec2
	tween *gween.Tween
	Done  bool
}

// NewTransition creates a transition over duration seconds using fn. A
// non-positive duration, a nil fn, or mismatched lengths produce a transition
// that is already Done and shows to.
func NewTransition(from, to []Vec2, duration float32, fn ease.TweenFunc) *Transition {
	t := &Transition{
		from: clonePoints(from),
		to:   clonePoints(to),
		out:  clonePoints(to),
	}
	if duration <= 0 || fn == nil || len(from) != len(to) {
		t.Done = true
		return t
	}
	t.tween = gween.New(0, 1, duration, fn)
	copy(t.out, t.from)
	return t
}

// Update advances the transition by dt seconds and returns the points to
// draw. The returned slice is reused across calls.
func (t *Transition) Update(dt float32) []Vec2 {
	if t.Done {
		return t.out
	}
	progress, finished := t.tween.Update(dt)
	if finished {
		t.Done = true
		copy(t.out, t.to)
		return t.out
	}
	k := float64(progress)
	for i := range t.out {
		t.out[i] = Vec2{
			X: t.from[i].X + (t.to[i].X-t.from[i].X)*k,
			Y: t.from[i].Y + (t.to[i].Y-t.from[i].Y)*k,
		}
	}
	return t.out
}

// Current returns the points most recently produced by Update.
func (t *Transition) Current() []Vec2 {
	return t.out
}
