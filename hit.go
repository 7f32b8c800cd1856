package arbor

import "fmt"

// invalidClipMode panics for a clipping mode outside the closed enum. It is a
// programming error, never a runtime condition.
func invalidClipMode(m ClipMode) {
	panic(fmt.Sprintf("arbor: invalid clipping mode %d", m))
}

// Intersects reports whether the screen point (x, y) hits the widget.
//
// With ClipNone and ClipWidget the widget is hit when the point lies inside
// its own rectangle or inside any visible descendant, so unclipped children
// extend the interactive area. With ClipTree only the widget's own rectangle
// counts. Rectangles are half-open.
func (w *Widget) Intersects(x, y float64) bool {
	switch w.clipMode {
	case ClipNone, ClipWidget:
		if w.screen.Contains(x, y) {
			return true
		}
		for child := range w.tree.Backward() {
			if child.visible && child.Intersects(x, y) {
				return true
			}
		}
		return false
	case ClipTree:
		return w.screen.Contains(x, y)
	default:
		invalidClipMode(w.clipMode)
		return false
	}
}

// ChildAt returns the top-most visible child hit by the screen point (x, y),
// or nil. For ClipTree widgets a point outside the widget's own rectangle
// never reaches the children.
func (w *Widget) ChildAt(x, y float64) *Widget {
	switch w.clipMode {
	case ClipNone, ClipWidget:
	case ClipTree:
		if !w.screen.Contains(x, y) {
			return nil
		}
	default:
		invalidClipMode(w.clipMode)
	}
	for child := range w.tree.Backward() {
		if child.visible && child.Intersects(x, y) {
			return child
		}
	}
	return nil
}

// WidgetAt returns the deepest visible widget under the screen point,
// descending through ChildAt from w. It returns w when no child is hit and
// nil when w itself is not hit.
func (w *Widget) WidgetAt(x, y float64) *Widget {
	if !w.Intersects(x, y) {
		return nil
	}
	cur := w
	for {
		child := cur.ChildAt(x, y)
		if child == nil {
			return cur
		}
		cur = child
	}
}
