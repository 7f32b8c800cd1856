package arbor

import "testing"

func TestLabelConstraintsFollowText(t *testing.T) {
	root := NewWidget("root")
	l := NewLabel("label", "abc")
	root.AddChild(l.Widget)
	root.Refresh(200, 100)

	// basicfont advances 7 pixels per glyph.
	if got := l.OptimalWidth(); got != Px(21) {
		t.Errorf("OptimalWidth = %v, want 21px", got)
	}
	if l.OptimalHeight().Value <= 0 {
		t.Errorf("OptimalHeight = %v, want positive", l.OptimalHeight())
	}
	if l.MinimumWidth() != l.OptimalWidth() {
		t.Error("minimum width should match the text")
	}

	l.SetText("abcdef")
	if !l.IsDirty(DirtyGeometryConstraints) || !root.IsDirty(DirtyDescendantGeometryConstraints) {
		t.Error("SetText should invalidate constraints")
	}
	root.Refresh(200, 100)
	if got := l.OptimalWidth(); got != Px(42) {
		t.Errorf("OptimalWidth = %v, want 42px", got)
	}
	assertConverged(t, root)
}

func TestLabelSizeToContentInLayout(t *testing.T) {
	root := NewWidget("root")
	l := NewLabel("label", "hello")
	root.OnLayout = func(w *Widget) {
		l.SizeToContent()
	}
	root.AddChild(l.Widget)
	root.Refresh(200, 100)

	if got := l.ScreenRect().Width(); got != 35 {
		t.Errorf("width = %v, want 35", got)
	}
}

func TestLabelSetTextSameIsNoop(t *testing.T) {
	l := NewLabel("label", "x")
	l.Refresh(10, 10)
	l.SetText("x")
	if l.Dirty() != 0 {
		t.Errorf("Dirty = %v, want clean", l.Dirty())
	}
}

func TestLabelPaints(t *testing.T) {
	l := NewLabel("label", "hi")
	l.SetSize(Px(20), Px(20))
	l.Render(newTestCanvas(40, 40))
	if l.Text() != "hi" {
		t.Errorf("Text = %q", l.Text())
	}
}
