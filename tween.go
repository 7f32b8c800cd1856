package arbor

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to four values on a Widget at once. The values are
// written back through the widget's setters each frame, so the widget is
// invalidated exactly as if the caller had set them. If the target is
// disposed, the group stops immediately.
//
// Scene advances groups registered with AddTween; a group can also be driven
// by calling Update directly.
type TweenGroup struct {
	tweens [4]*gween.Tween
	values [4]float64
	count  int
	target *Widget
	apply  func(w *Widget, v [4]float64)
	Done   bool
}

// Update advances all tweens by dt seconds and applies the values.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target == nil || g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		g.values[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.apply(g.target, g.values)
	g.Done = allDone
}

func newTweenGroup(w *Widget, from, to []float64, duration float32, fn ease.TweenFunc, apply func(*Widget, [4]float64)) *TweenGroup {
	g := &TweenGroup{count: len(from), target: w, apply: apply}
	for i := range from {
		g.tweens[i] = gween.New(float32(from[i]), float32(to[i]), duration, fn)
	}
	return g
}

// TweenPosition animates the widget's left and top offsets to (toLeft, toTop).
// The offsets keep the unit they had when the tween was created.
func TweenPosition(w *Widget, toLeft, toTop float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	lu, tu := w.left.Unit, w.top.Unit
	return newTweenGroup(w,
		[]float64{w.left.Value, w.top.Value}, []float64{toLeft, toTop},
		duration, fn,
		func(w *Widget, v [4]float64) {
			w.SetPosition(Coordinate{v[0], lu}, Coordinate{v[1], tu})
		})
}

// TweenSize animates the widget's width and height. The sizes keep the unit
// they had when the tween was created.
func TweenSize(w *Widget, toWidth, toHeight float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	wu, hu := w.width.Unit, w.height.Unit
	return newTweenGroup(w,
		[]float64{w.width.Value, w.height.Value}, []float64{toWidth, toHeight},
		duration, fn,
		func(w *Widget, v [4]float64) {
			w.SetSize(Coordinate{v[0], wu}, Coordinate{v[1], hu})
		})
}

// TweenScaling animates the widget's own scaling factors.
func TweenScaling(w *Widget, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(w,
		[]float64{w.scalingX, w.scalingY}, []float64{toX, toY},
		duration, fn,
		func(w *Widget, v [4]float64) {
			w.SetScaling(v[0], v[1])
		})
}
