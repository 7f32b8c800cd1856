package arbor

import (
	"slices"
	"testing"
)

func TestGeometryConstraintsPostOrder(t *testing.T) {
	var order []string
	record := func(w *Widget) { order = append(order, w.Name) }

	root := NewWidget("root")
	a := NewWidget("a")
	a1 := NewWidget("a1")
	b := NewWidget("b")
	for _, w := range []*Widget{root, a, a1, b} {
		w.OnGeometryConstraints = record
	}
	root.AddChild(a)
	a.AddChild(a1)
	root.AddChild(b)

	root.Refresh(100, 100)
	if want := []string{"a1", "a", "b", "root"}; !slices.Equal(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestGeometryConstraintsOnlyDirtySubtrees(t *testing.T) {
	var order []string
	record := func(w *Widget) { order = append(order, w.Name) }

	root := NewWidget("root")
	a := NewWidget("a")
	a1 := NewWidget("a1")
	b := NewWidget("b")
	b1 := NewWidget("b1")
	for _, w := range []*Widget{root, a, a1, b, b1} {
		w.OnGeometryConstraints = record
	}
	root.AddChild(a)
	a.AddChild(a1)
	root.AddChild(b)
	b.AddChild(b1)
	root.Refresh(100, 100)

	order = nil
	a1.InvalidateGeometryConstraints()
	root.Refresh(100, 100)
	if want := []string{"a1"}; !slices.Equal(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}

	// A constraint change re-derives the parent, not the widget itself.
	order = nil
	b1.SetOptimalWidth(Px(40))
	root.Refresh(100, 100)
	if want := []string{"b"}; !slices.Equal(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestGeometryConstraintsHookDerivesFromChildren(t *testing.T) {
	root := NewWidget("root")
	row := NewWidget("row")
	row.OnGeometryConstraints = func(w *Widget) {
		var width, height float64
		for c := range w.Children() {
			if !c.Visible() {
				continue
			}
			width += c.OptimalWidth().Value
			height = max(height, c.OptimalHeight().Value)
		}
		w.SetOptimalWidth(Px(width))
		w.SetOptimalHeight(Px(height))
	}
	root.AddChild(row)
	for _, size := range [][2]float64{{10, 5}, {20, 15}, {30, 10}} {
		c := NewWidget("cell")
		c.SetOptimalWidth(Px(size[0]))
		c.SetOptimalHeight(Px(size[1]))
		row.AddChild(c)
	}

	root.Refresh(100, 100)
	if got := row.OptimalWidth(); got != Px(60) {
		t.Errorf("OptimalWidth = %v, want 60px", got)
	}
	if got := row.OptimalHeight(); got != Px(15) {
		t.Errorf("OptimalHeight = %v, want 15px", got)
	}

	row.LastChild().SetVisible(false)
	root.Refresh(100, 100)
	if got := row.OptimalWidth(); got != Px(30) {
		t.Errorf("OptimalWidth after hide = %v, want 30px", got)
	}
	assertConverged(t, root)
}

func TestLayoutHookRunsOncePerInvalidation(t *testing.T) {
	root := NewWidget("root")
	var calls int
	root.OnLayout = func(w *Widget) {
		calls++
		// Positioning children re-flags this widget's layout; the flag is
		// cleared after the hook returns.
		for c := range w.Children() {
			c.SetPosition(Px(5), Px(5))
		}
	}
	root.AddChild(NewWidget("c"))

	root.Refresh(100, 100)
	root.Refresh(100, 100)
	if calls != 1 {
		t.Errorf("OnLayout calls = %d, want 1", calls)
	}
	if got := root.FirstChild().ScreenRect().Left; got != 5 {
		t.Errorf("child left = %v, want 5", got)
	}

	root.FirstChild().SetWidth(Px(50))
	root.Refresh(100, 100)
	if calls != 2 {
		t.Errorf("OnLayout calls = %d, want 2", calls)
	}
}
