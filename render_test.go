package arbor

import (
	"fmt"
	"image"
	"slices"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// paintLog records paint and overlay calls with the clip in effect.
type paintLog []string

func (l *paintLog) hook(w *Widget) {
	w.OnPaint = func(w *Widget, c *Canvas) {
		*l = append(*l, fmt.Sprintf("paint %s %v", w.Name, c.Clip()))
	}
	w.OnPaintOverlay = func(w *Widget, c *Canvas) {
		*l = append(*l, fmt.Sprintf("overlay %s %v", w.Name, c.Clip()))
	}
}

func newTestCanvas(w, h int) *Canvas {
	return NewCanvas(ebiten.NewImage(w, h))
}

func TestRenderOrder(t *testing.T) {
	var log paintLog
	root := NewWidget("root")
	root.SetSize(Pct(100), Pct(100))
	a := newSized("a", 0, 0, 10, 10)
	a1 := newSized("a1", 0, 0, 5, 5)
	b := newSized("b", 20, 0, 10, 10)
	for _, w := range []*Widget{root, a, a1, b} {
		log.hook(w)
	}
	root.AddChild(a)
	a.AddChild(a1)
	root.AddChild(b)

	root.Render(newTestCanvas(100, 100))

	full := Rect{0, 0, 100, 100}
	want := []string{
		fmt.Sprintf("paint root %v", full),
		fmt.Sprintf("paint a %v", full),
		fmt.Sprintf("paint a1 %v", full),
		fmt.Sprintf("overlay a1 %v", full),
		fmt.Sprintf("overlay a %v", full),
		fmt.Sprintf("paint b %v", full),
		fmt.Sprintf("overlay b %v", full),
		fmt.Sprintf("overlay root %v", full),
	}
	if !slices.Equal(log, want) {
		t.Errorf("paint log:\n got %v\nwant %v", log, want)
	}
}

func TestRenderClipModes(t *testing.T) {
	full := Rect{0, 0, 100, 100}
	own := Rect{10, 10, 50, 50}
	tests := []struct {
		mode ClipMode
		want []string
	}{
		{ClipNone, []string{
			fmt.Sprintf("paint w %v", full),
			fmt.Sprintf("paint c %v", full),
			fmt.Sprintf("overlay c %v", full),
			fmt.Sprintf("overlay w %v", full),
		}},
		{ClipWidget, []string{
			fmt.Sprintf("paint w %v", own),
			fmt.Sprintf("paint c %v", full),
			fmt.Sprintf("overlay c %v", full),
			fmt.Sprintf("overlay w %v", own),
		}},
		{ClipTree, []string{
			fmt.Sprintf("paint w %v", own),
			fmt.Sprintf("paint c %v", own),
			fmt.Sprintf("overlay c %v", own),
			fmt.Sprintf("overlay w %v", own),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			var log paintLog
			root := NewWidget("root")
			w := newSized("w", 10, 10, 40, 40)
			w.SetClipMode(tt.mode)
			c := newSized("c", 30, 30, 40, 40)
			log.hook(w)
			log.hook(c)
			root.AddChild(w)
			w.AddChild(c)

			canvas := newTestCanvas(100, 100)
			root.Render(canvas)

			if !slices.Equal(log, tt.want) {
				t.Errorf("paint log:\n got %v\nwant %v", log, tt.want)
			}
			if canvas.Clip() != full {
				t.Errorf("clip after render = %v, want restored %v", canvas.Clip(), full)
			}
		})
	}
}

func TestRenderSkipsInvisibleAndOffscreen(t *testing.T) {
	var log paintLog
	root := NewWidget("root")
	hidden := newSized("hidden", 0, 0, 10, 10)
	hidden.SetVisible(false)
	under := newSized("under", 0, 0, 5, 5)
	clipper := newSized("clipper", 200, 200, 10, 10)
	clipper.SetClipMode(ClipTree)
	inside := newSized("inside", 0, 0, 5, 5)
	widgetClip := newSized("widgetclip", 300, 300, 10, 10)
	widgetClip.SetClipMode(ClipWidget)
	for _, w := range []*Widget{hidden, under, clipper, inside, widgetClip} {
		log.hook(w)
	}
	root.AddChild(hidden)
	hidden.AddChild(under)
	root.AddChild(clipper)
	clipper.AddChild(inside)
	root.AddChild(widgetClip)

	root.Render(newTestCanvas(100, 100))

	// Descendants of an invisible widget are skipped, and clipped widgets
	// outside the target paint nothing.
	if len(log) != 0 {
		t.Errorf("nothing should paint, got %v", log)
	}
	assertConverged(t, root)
}

func TestRenderNestedClipIntersects(t *testing.T) {
	var log paintLog
	root := NewWidget("root")
	outer := newSized("outer", 0, 0, 50, 50)
	outer.SetClipMode(ClipTree)
	inner := newSized("inner", 25, 25, 50, 50)
	inner.SetClipMode(ClipTree)
	log.hook(inner)
	root.AddChild(outer)
	outer.AddChild(inner)

	root.Render(newTestCanvas(100, 100))

	clip := Rect{25, 25, 50, 50}
	want := []string{fmt.Sprintf("paint inner %v", clip), fmt.Sprintf("overlay inner %v", clip)}
	if !slices.Equal(log, want) {
		t.Errorf("paint log:\n got %v\nwant %v", log, want)
	}
}

func TestRenderUsesCanvasSize(t *testing.T) {
	root := NewWidget("root")
	root.SetSize(Pct(100), Pct(50))
	root.Render(newTestCanvas(64, 32))
	if want := (Rect{0, 0, 64, 16}); root.ScreenRect() != want {
		t.Errorf("ScreenRect = %+v, want %+v", root.ScreenRect(), want)
	}
}

func TestRenderAfterRefreshAtOtherSize(t *testing.T) {
	root := NewWidget("root")
	root.SetSize(Pct(100), Pct(100))
	root.Refresh(320, 240)
	root.Render(newTestCanvas(128, 64))
	if want := (Rect{0, 0, 128, 64}); root.ScreenRect() != want {
		t.Errorf("ScreenRect = %+v, want %+v", root.ScreenRect(), want)
	}
}

func TestRenderSubImageTargetKeepsOffset(t *testing.T) {
	var log paintLog
	root := NewWidget("root")
	root.SetSize(Pct(100), Pct(100))
	root.SetClipMode(ClipWidget)
	log.hook(root)
	child := NewWidget("child")
	child.SetGeometry(Px(4), Px(2), Px(10), Px(10))
	root.AddChild(child)

	sub := ebiten.NewImage(100, 100).SubImage(image.Rect(20, 10, 84, 42)).(*ebiten.Image)
	c := NewCanvas(sub)
	if want := (Rect{20, 10, 84, 42}); c.Bounds() != want {
		t.Fatalf("Bounds = %+v, want %+v", c.Bounds(), want)
	}
	root.Render(c)

	if want := (Rect{20, 10, 84, 42}); root.ScreenRect() != want {
		t.Errorf("root = %+v, want %+v", root.ScreenRect(), want)
	}
	if want := (Rect{24, 12, 34, 22}); child.ScreenRect() != want {
		t.Errorf("child = %+v, want %+v", child.ScreenRect(), want)
	}
	if len(log) == 0 || log[0] != fmt.Sprintf("paint root %v", Rect{20, 10, 84, 42}) {
		t.Errorf("paint log = %v", log)
	}
}

func TestRefreshDoesNotPaint(t *testing.T) {
	var log paintLog
	root := NewWidget("root")
	log.hook(root)
	root.Refresh(10, 10)
	if len(log) != 0 {
		t.Errorf("Refresh painted: %v", log)
	}
}

func TestRenderInvalidClipModePanics(t *testing.T) {
	root := NewWidget("root")
	root.clipMode = ClipMode(5)
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	root.Render(newTestCanvas(10, 10))
}
