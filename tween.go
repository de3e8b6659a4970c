package scenedoc

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// BoundsTween animates a component's bounding box. Each Update routes the
// interpolated box through Modify, so images keep their aspect-ratio policy
// and groups rescale their children along the way. If the target is a group
// that gets disposed, the tween stops immediately.
//
// There is no global animation manager; callers call Update themselves.
type BoundsTween struct {
	tweens [4]*gween.Tween
	target Component
	Done   bool
}

// TweenBounds creates a BoundsTween that animates c from its current bounds
// to the given box over duration seconds using the easing function. A nil fn
// means ease.Linear.
func TweenBounds(c Component, to BoundingBox, duration float32, fn ease.TweenFunc) *BoundsTween {
	if fn == nil {
		fn = ease.Linear
	}
	from := c.Bounds()
	t := &BoundsTween{target: c}
	t.tweens[0] = gween.New(float32(from.X), float32(to.X), duration, fn)
	t.tweens[1] = gween.New(float32(from.Y), float32(to.Y), duration, fn)
	t.tweens[2] = gween.New(float32(from.Width), float32(to.Width), duration, fn)
	t.tweens[3] = gween.New(float32(from.Height), float32(to.Height), duration, fn)
	return t
}

// Target returns the animated component.
func (t *BoundsTween) Target() Component { return t.target }

// Update advances the tween by dt seconds and applies the box.
func (t *BoundsTween) Update(dt float32) {
	if t.Done {
		return
	}
	if g, ok := t.target.(*Group); ok && g.IsDisposed() {
		t.Done = true
		return
	}

	var vals [4]float64
	allDone := true
	for i, tw := range t.tweens {
		v, finished := tw.Update(dt)
		vals[i] = float64(v)
		if !finished {
			allDone = false
		}
	}
	t.Done = allDone

	box := BoundingBox{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}
	if box.Width < 0 {
		box.Width = 0
	}
	if box.Height < 0 {
		box.Height = 0
	}
	t.target.Modify(box)
}
