package arbor

import "fmt"

// computeTreeVisualState derives the tree flags from the own flags and the
// parent's tree flags. A root uses only its own flags.
func (w *Widget) computeTreeVisualState() {
	p := w.Parent()
	if p == nil {
		w.enabledTree = w.enabled
		w.highlightedTree = w.highlighted
		w.pressedTree = w.pressed
		w.selectedTree = w.selected
		w.focusedTree = w.focused
		w.validTree = w.validContent
		return
	}
	w.enabledTree = w.enabled && p.enabledTree
	w.highlightedTree = w.highlighted || p.highlightedTree
	w.pressedTree = w.pressed || p.pressedTree
	w.selectedTree = w.selected || p.selectedTree
	w.focusedTree = w.focused || p.focusedTree
	w.validTree = w.validContent && p.validTree
}

// setVisualFlag updates one own flag and invalidates the tree visual state.
func (w *Widget) setVisualFlag(dst *bool, v bool) {
	if *dst == v {
		return
	}
	*dst = v
	w.dirty |= DirtyTreeVisualState
}

// SetVisible shows or hides the widget. Ancestors must re-derive constraints
// and layout without (or with) it. An invisible widget is neither painted nor
// hit-tested.
func (w *Widget) SetVisible(visible bool) {
	if w.visible == visible {
		return
	}
	w.visible = visible
	w.invalidateGeometryConstraints()
	if p := w.Parent(); p != nil {
		p.invalidateGeometryConstraints()
		p.dirty |= DirtyLayout
	}
}

// SetEnabled enables or disables the widget. Disabling a widget that holds or
// contains the focused widget removes focus first, and any pointer tracking
// that references the widget is reset.
func (w *Widget) SetEnabled(enabled bool) {
	if w.enabled == enabled {
		return
	}
	if !enabled {
		w.releaseFocus()
		if p := w.Parent(); p != nil && p.childWithMouse == w {
			p.resetChildWithMouse()
		} else {
			w.resetMouseState()
		}
	}
	w.enabled = enabled
	w.dirty |= DirtyTreeVisualState
}

// SetFocusable controls whether the widget may receive focus. Making a widget
// unfocusable removes focus from it and from its descendants.
func (w *Widget) SetFocusable(focusable bool) {
	if w.focusable == focusable {
		return
	}
	if !focusable {
		w.releaseFocus()
	}
	w.focusable = focusable
}

func (w *Widget) SetHighlighted(v bool)  { w.setVisualFlag(&w.highlighted, v) }
func (w *Widget) SetPressed(v bool)      { w.setVisualFlag(&w.pressed, v) }
func (w *Widget) SetSelected(v bool)     { w.setVisualFlag(&w.selected, v) }
func (w *Widget) SetValidContent(v bool) { w.setVisualFlag(&w.validContent, v) }

// SetClipMode sets the clipping mode. Invalid modes panic.
func (w *Widget) SetClipMode(m ClipMode) {
	if m > ClipTree {
		panic(fmt.Sprintf("arbor: invalid clipping mode %d", m))
	}
	w.clipMode = m
}

func (w *Widget) Visible() bool      { return w.visible }
func (w *Widget) Enabled() bool      { return w.enabled }
func (w *Widget) Highlighted() bool  { return w.highlighted }
func (w *Widget) Pressed() bool      { return w.pressed }
func (w *Widget) Selected() bool     { return w.selected }
func (w *Widget) Focused() bool      { return w.focused }
func (w *Widget) ValidContent() bool { return w.validContent }
func (w *Widget) Focusable() bool    { return w.focusable }
func (w *Widget) ClipMode() ClipMode { return w.clipMode }
func (w *Widget) HasMouse() bool     { return w.hasMouse }

// ChildWithMouse returns the child currently tracked as hovered.
func (w *Widget) ChildWithMouse() *Widget { return w.childWithMouse }

// Tree flags, valid after the last Refresh or Render.

func (w *Widget) EnabledTree() bool      { return w.enabledTree }
func (w *Widget) HighlightedTree() bool  { return w.highlightedTree }
func (w *Widget) PressedTree() bool      { return w.pressedTree }
func (w *Widget) SelectedTree() bool     { return w.selectedTree }
func (w *Widget) FocusedTree() bool      { return w.focusedTree }
func (w *Widget) ValidContentTree() bool { return w.validTree }

// --- Mouse tracking ---

// resetMouseState clears hover tracking on w and down the hovered chain
// without dispatching events.
func (w *Widget) resetMouseState() {
	w.hasMouse = false
	if c := w.childWithMouse; c != nil {
		w.childWithMouse = nil
		c.resetMouseState()
	}
}

// resetChildWithMouse runs the leave protocol on the hovered child and stops
// tracking it.
func (w *Widget) resetChildWithMouse() {
	c := w.childWithMouse
	if c == nil {
		return
	}
	w.childWithMouse = nil
	var e Event
	if ctx := w.findContext(); ctx != nil {
		e.X, e.Y = ctx.pointerX, ctx.pointerY
	}
	c.mouseLeave(e)
}
