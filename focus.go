package arbor

// Context is the state shared by one widget tree: the focused widget, the
// last known pointer position, the active press or drag, and the optional
// ECS bridge. A Context belongs to the tree's root. Scene creates one for its
// root; any other root gets one lazily the first time it needs it.
type Context struct {
	focused *Widget

	pointerX, pointerY float64
	press              pressState
	dragDeadZone       float64

	store EntityStore
}

// NewContext creates an empty context.
func NewContext() *Context {
	return &Context{dragDeadZone: defaultDragDeadZone}
}

// FocusedWidget returns the widget holding focus in this tree, or nil.
func (c *Context) FocusedWidget() *Widget {
	return c.focused
}

// SetDragDeadZone sets the minimum movement in pixels before a drag starts.
func (c *Context) SetDragDeadZone(pixels float64) {
	c.dragDeadZone = pixels
}

// SetEntityStore sets the optional ECS bridge.
func (c *Context) SetEntityStore(store EntityStore) {
	c.store = store
}

// findContext returns the context of w's tree, or nil if none exists yet.
func (w *Widget) findContext() *Context {
	return w.Root().ctx
}

// context returns the context of w's tree, creating it on the root if needed.
func (w *Widget) context() *Context {
	r := w.Root()
	if r.ctx == nil {
		r.ctx = NewContext()
	}
	return r.ctx
}

// Context returns the context of the tree w belongs to.
func (w *Widget) Context() *Context {
	return w.context()
}

// SetContext installs ctx on a root widget. It panics if w has a parent.
func (w *Widget) SetContext(ctx *Context) {
	if w.Parent() != nil {
		panic("arbor: context can only be set on a root widget")
	}
	w.releaseFocus()
	w.ctx = ctx
}

// FocusedWidget returns the focused widget of w's tree, or nil.
func (w *Widget) FocusedWidget() *Widget {
	if ctx := w.findContext(); ctx != nil {
		return ctx.focused
	}
	return nil
}

// CanGetFocus reports whether every widget from w up to the root is both
// enabled and focusable.
func (w *Widget) CanGetFocus() bool {
	for p := w; p != nil; p = p.Parent() {
		if !p.enabled || !p.focusable {
			return false
		}
	}
	return true
}

// SetFocused gives or removes focus. It is the only way the focused widget of
// a tree changes, so at most one widget per tree is focused at any time.
//
// Gaining focus is silently ignored when CanGetFocus is false. The previous
// holder loses focus (and its events fire) before w gains it. After the own
// got-focus event, each ancestor from the parent up to the root receives its
// own descendant-got-focus event. Losing focus mirrors this.
func (w *Widget) SetFocused(focused bool) {
	if focused {
		w.gainFocus()
	} else {
		w.loseFocus()
	}
}

func (w *Widget) gainFocus() {
	if w.focused || !w.CanGetFocus() {
		return
	}
	ctx := w.context()
	if prev := ctx.focused; prev != nil {
		prev.loseFocus()
		// A lost-focus handler may have moved focus elsewhere or disabled w.
		if ctx.focused != nil || !w.CanGetFocus() {
			return
		}
	}
	w.focused = true
	ctx.focused = w
	w.dirty |= DirtyTreeVisualState
	if globalDebug {
		guiLogger.Debug("focus gained", "widget", w.Name, "id", w.ID)
	}

	w.dispatch(Event{Type: EventGotFocus, Target: w}, PhaseBubble)
	for p := w.Parent(); p != nil; p = p.Parent() {
		p.dispatch(Event{Type: EventDescendantGotFocus, Target: w}, PhaseBubble)
	}
}

func (w *Widget) loseFocus() {
	if !w.focused {
		return
	}
	w.focused = false
	if ctx := w.findContext(); ctx != nil && ctx.focused == w {
		ctx.focused = nil
	}
	w.dirty |= DirtyTreeVisualState
	if globalDebug {
		guiLogger.Debug("focus lost", "widget", w.Name, "id", w.ID)
	}

	w.dispatch(Event{Type: EventLostFocus, Target: w}, PhaseBubble)
	for p := w.Parent(); p != nil; p = p.Parent() {
		p.dispatch(Event{Type: EventDescendantLostFocus, Target: w}, PhaseBubble)
	}
}

// releaseFocus removes focus from the focused widget if it is w or one of
// w's descendants.
func (w *Widget) releaseFocus() {
	ctx := w.findContext()
	if ctx == nil || ctx.focused == nil {
		return
	}
	if w.Contains(ctx.focused) {
		ctx.focused.loseFocus()
	}
}
