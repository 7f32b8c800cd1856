package arbor

import (
	"iter"
	"strings"
)

// widgetIDCounter is a plain counter; the widget tree is single-threaded.
var widgetIDCounter uint32

func nextWidgetID() uint32 {
	widgetIDCounter++
	return widgetIDCounter
}

// DirtyFlags marks cached derived state as stale.
type DirtyFlags uint8

const (
	DirtyScreenGeometry                DirtyFlags = 1 << iota // screen rectangle and scaling
	DirtyGeometryConstraints                                  // this widget's min/optimal/max size
	DirtyDescendantGeometryConstraints                        // some descendant's constraints
	DirtyLayout                                               // child placement
	DirtyTreeVisualState                                      // tree-propagated visual flags

	dirtyAll = DirtyScreenGeometry | DirtyGeometryConstraints | DirtyDescendantGeometryConstraints |
		DirtyLayout | DirtyTreeVisualState
)

var dirtyFlagNames = [...]string{"geometry", "constraints", "descendant-constraints", "layout", "visual"}

func (f DirtyFlags) String() string {
	if f == 0 {
		return "clean"
	}
	var parts []string
	for i, name := range dirtyFlagNames {
		if f&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

// Widget is a node of the widget tree. A single struct carries geometry,
// visual state, focus and input routing for every kind of widget; behavior is
// customized through the hook fields and event handlers.
type Widget struct {
	// Identity
	ID   uint32
	Name string

	// Metadata
	UserData any
	EntityID uint32

	tree Tree[*Widget]
	ctx  *Context // owned by roots only

	// Geometry inputs
	left, top, width, height Coordinate
	scalingX, scalingY       float64

	// Geometry constraints, written by OnGeometryConstraints
	minWidth, minHeight Coordinate
	optWidth, optHeight Coordinate
	maxWidth, maxHeight Coordinate

	// Computed screen geometry
	screen                         Rect
	screenScalingX, screenScalingY float64

	// Target bounds of the last pass run with w as the root
	rootBounds Rect

	// Own visual flags
	visible, enabled, highlighted, pressed bool
	selected, focused, validContent        bool

	// Tree-propagated visual flags
	enabledTree, highlightedTree, pressedTree bool
	selectedTree, focusedTree, validTree      bool

	dirty DirtyFlags

	// Interaction
	childWithMouse *Widget
	hasMouse       bool
	clipMode       ClipMode
	focusable      bool

	// Hooks (nil by default; a nil hook is a no-op)
	OnPaint               func(w *Widget, c *Canvas)
	OnPaintOverlay        func(w *Widget, c *Canvas)
	OnLayout              func(w *Widget)
	OnGeometryConstraints func(w *Widget)

	handlers      []*eventHandler
	nextHandlerID uint32
	disposed      bool
}

// NewWidget creates a visible, enabled, focusable widget with zero geometry.
func NewWidget(name string) *Widget {
	w := &Widget{
		ID:           nextWidgetID(),
		Name:         name,
		scalingX:     1,
		scalingY:     1,
		visible:      true,
		enabled:      true,
		validContent: true,
		enabledTree:  true,
		validTree:    true,
		focusable:    true,
		dirty:        dirtyAll &^ DirtyDescendantGeometryConstraints,

		screenScalingX: 1,
		screenScalingY: 1,
	}
	w.tree.Value = w
	return w
}

// --- Tree navigation ---

func widgetOf(t *Tree[*Widget]) *Widget {
	if t == nil {
		return nil
	}
	return t.Value
}

// Parent returns the parent widget, or nil for a root.
func (w *Widget) Parent() *Widget { return widgetOf(w.tree.Parent()) }

// FirstChild returns the bottom-most child.
func (w *Widget) FirstChild() *Widget { return widgetOf(w.tree.FirstChild()) }

// LastChild returns the top-most child.
func (w *Widget) LastChild() *Widget { return widgetOf(w.tree.LastChild()) }

// PrevSibling returns the sibling below this widget.
func (w *Widget) PrevSibling() *Widget { return widgetOf(w.tree.PrevSibling()) }

// NextSibling returns the sibling above this widget.
func (w *Widget) NextSibling() *Widget { return widgetOf(w.tree.NextSibling()) }

// Root returns the top-most ancestor.
func (w *Widget) Root() *Widget { return w.tree.Root().Value }

// NumChildren returns the number of children.
func (w *Widget) NumChildren() int { return w.tree.Len() }

// Children iterates children from bottom to top (painting order).
func (w *Widget) Children() iter.Seq[*Widget] { return w.tree.Children() }

// Contains reports whether other is w or one of its descendants.
func (w *Widget) Contains(other *Widget) bool {
	return other != nil && w.tree.Contains(&other.tree)
}

// --- Tree manipulation ---

// AddChild appends child as the top-most child. See InsertChild.
func (w *Widget) AddChild(child *Widget) bool {
	return w.InsertChild(child, nil)
}

// InsertChild inserts child below before, or on top when before is nil.
// It returns false without modifying anything if child is nil, already has a
// parent, is w or an ancestor of w, or if before is not a child of w.
// A focused widget inside child loses focus before the subtree is attached.
func (w *Widget) InsertChild(child, before *Widget) bool {
	if child == nil {
		return false
	}
	if globalDebug {
		debugCheckDisposed(w, "InsertChild (parent)")
		debugCheckDisposed(child, "InsertChild (child)")
	}
	var next *Tree[*Widget]
	if before != nil {
		next = &before.tree
	}
	if !w.tree.canAdd(&child.tree, next) {
		return false
	}

	child.releaseFocus()
	child.ctx = nil
	w.tree.Add(&child.tree, next)

	child.dirty |= DirtyScreenGeometry | DirtyTreeVisualState
	child.invalidateGeometryConstraints()
	w.invalidateGeometryConstraints()
	w.dirty |= DirtyLayout

	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(w)
	}
	return true
}

// RemoveChild detaches child from w. It returns false if child is not a
// child of w. Focus held inside child is released while child is still
// attached, so ancestors observe the loss.
func (w *Widget) RemoveChild(child *Widget) bool {
	if child == nil || child.Parent() != w {
		return false
	}
	if globalDebug {
		debugCheckDisposed(w, "RemoveChild")
	}
	child.releaseFocus()
	if w.childWithMouse == child {
		w.childWithMouse = nil
		child.resetMouseState()
	}
	w.tree.Remove(&child.tree)

	child.dirty |= DirtyScreenGeometry | DirtyTreeVisualState | DirtyGeometryConstraints
	w.invalidateGeometryConstraints()
	w.dirty |= DirtyLayout
	return true
}

// Detach removes w from its parent. It returns false for a root.
func (w *Widget) Detach() bool {
	p := w.Parent()
	if p == nil {
		return false
	}
	return p.RemoveChild(w)
}

// --- Disposal ---

// Dispose detaches this widget, releases any focus it holds, and recursively
// disposes all descendants. Disposed widgets must not be reused.
func (w *Widget) Dispose() {
	if w.disposed {
		return
	}
	if !w.Detach() {
		w.releaseFocus()
	}
	w.dispose()
}

// DisposeChildren disposes every child of w.
func (w *Widget) DisposeChildren() {
	for child := range w.Children() {
		child.Dispose()
	}
}

func (w *Widget) dispose() {
	w.disposed = true
	for child := range w.Children() {
		child.dispose()
	}
	w.tree.RemoveAll()
	w.ctx = nil
	w.childWithMouse = nil
	w.handlers = nil
	w.UserData = nil
	w.OnPaint = nil
	w.OnPaintOverlay = nil
	w.OnLayout = nil
	w.OnGeometryConstraints = nil
}

// IsDisposed returns true if this widget has been disposed.
func (w *Widget) IsDisposed() bool {
	return w.disposed
}

// --- Invalidation ---

// invalidateGeometryConstraints marks w's own constraints stale and flags
// every ancestor as having a stale descendant. The walk stops at the first
// ancestor that is already flagged: its own ancestors are flagged as well.
func (w *Widget) invalidateGeometryConstraints() {
	w.dirty |= DirtyGeometryConstraints
	for p := w.Parent(); p != nil; p = p.Parent() {
		if p.dirty&DirtyDescendantGeometryConstraints != 0 {
			break
		}
		p.dirty |= DirtyDescendantGeometryConstraints
	}
}

// InvalidateGeometryConstraints schedules OnGeometryConstraints for the next
// frame. Call it when content that determines the natural size changes.
func (w *Widget) InvalidateGeometryConstraints() {
	w.invalidateGeometryConstraints()
}

// InvalidateLayout schedules OnLayout for the next frame.
func (w *Widget) InvalidateLayout() {
	w.dirty |= DirtyLayout
}

func (w *Widget) invalidateParentLayout() {
	if p := w.Parent(); p != nil {
		p.dirty |= DirtyLayout
	}
}

// Dirty returns the widget's pending dirty flags.
func (w *Widget) Dirty() DirtyFlags {
	return w.dirty
}

// IsDirty reports whether any of the given flags is pending.
func (w *Widget) IsDirty(flags DirtyFlags) bool {
	return w.dirty&flags != 0
}
