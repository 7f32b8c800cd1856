package arbor

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

func TestNewScene(t *testing.T) {
	s := NewScene()
	if s.Root() == nil {
		t.Fatal("Root should not be nil")
	}
	if s.Root().Name != "root" {
		t.Errorf("root name = %q, want %q", s.Root().Name, "root")
	}
	if s.Root().Context() != s.Context() {
		t.Error("root should use the scene context")
	}
	if s.FocusedWidget() != nil {
		t.Error("new scene should have no focus")
	}
}

func TestSceneLayoutSizesRoot(t *testing.T) {
	s := NewScene()
	s.Layout(320, 240)
	if w, h := s.Size(); w != 320 || h != 240 {
		t.Errorf("Size = (%v, %v), want (320, 240)", w, h)
	}
	s.Update()
	if want := (Rect{0, 0, 320, 240}); s.Root().ScreenRect() != want {
		t.Errorf("root = %+v, want %+v", s.Root().ScreenRect(), want)
	}
}

func TestSceneFocus(t *testing.T) {
	s := NewScene()
	w := NewWidget("w")
	s.Root().AddChild(w)
	w.SetFocused(true)
	if s.FocusedWidget() != w || s.Context().FocusedWidget() != w {
		t.Error("scene should report the focused widget")
	}
}

func TestSceneAdvancesTweens(t *testing.T) {
	s := NewScene()
	w := newSized("w", 0, 0, 10, 10)
	s.Root().AddChild(w)

	g := TweenPosition(w, 100, 0, 0.5, ease.Linear)
	s.AddTween(g)
	s.advanceTweens(0.25)
	if len(s.tweens) != 1 {
		t.Fatal("running tween should stay registered")
	}
	s.advanceTweens(0.25)
	if !g.Done || len(s.tweens) != 0 {
		t.Error("finished tween should be dropped")
	}
	if math.Abs(w.Left().Value-100) > 0.01 {
		t.Errorf("Left = %v, want ~100px", w.Left())
	}
}

func TestSceneDraw(t *testing.T) {
	s := NewScene()
	s.ClearColor = Color{0, 0, 0, 1}
	var painted bool
	w := newSized("w", 0, 0, 10, 10)
	w.OnPaint = func(w *Widget, c *Canvas) { painted = true }
	s.Root().AddChild(w)

	s.Draw(ebiten.NewImage(50, 50))
	if !painted {
		t.Error("Draw should paint the tree")
	}
}
