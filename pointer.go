package arbor

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultDragDeadZone = 4.0 // pixels

// InputType identifies a kind of host input record.
type InputType uint8

const (
	InputMouseAxes         InputType = iota // pointer moved and/or wheel turned
	InputMouseButtonDown                    // mouse button pressed
	InputMouseButtonUp                      // mouse button released
	InputMouseEnterDisplay                  // pointer entered the window
	InputMouseLeaveDisplay                  // pointer left the window
	InputKeyDown                            // key pressed
	InputKeyUp                              // key released
	InputKeyChar                            // character typed
)

// InputEvent is the host input record fed to ProcessEvent. A single
// InputMouseAxes record may carry both a position delta and a wheel delta.
type InputEvent struct {
	Type           InputType
	X, Y           float64
	DX, DY         float64
	WheelX, WheelY float64
	Button         MouseButton
	Key            ebiten.Key
	Rune           rune
	Modifiers      KeyModifiers
}

type pressState struct {
	down     bool
	button   MouseButton
	target   *Widget
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	dragging bool
}

// ProcessEvent routes one input record into the tree below w and reports
// whether any handler handled it. A widget whose enabled-tree flag is false
// rejects every event.
//
// Pointer motion runs the move/enter/leave protocol, wheel motion the wheel
// protocol. Button events go along the hovered path, keyboard events along
// the path to the focused widget.
func (w *Widget) ProcessEvent(in InputEvent) bool {
	if !w.enabledTree {
		return false
	}
	ctx := w.context()
	e := Event{
		X: in.X, Y: in.Y, DX: in.DX, DY: in.DY,
		WheelX: in.WheelX, WheelY: in.WheelY,
		Button: in.Button, Key: in.Key, Rune: in.Rune, Modifiers: in.Modifiers,
	}

	switch in.Type {
	case InputMouseAxes:
		ctx.pointerX, ctx.pointerY = in.X, in.Y
		handled := false
		if in.DX != 0 || in.DY != 0 {
			handled = w.mouseMove(e, EventMouseMove)
			if w.processDrag(ctx, e) {
				handled = true
			}
		}
		if in.WheelX != 0 || in.WheelY != 0 {
			if w.mouseWheel(e) {
				handled = true
			}
		}
		return handled
	case InputMouseEnterDisplay:
		ctx.pointerX, ctx.pointerY = in.X, in.Y
		return w.mouseMove(e, EventMouseEnter)
	case InputMouseLeaveDisplay:
		return w.mouseLeave(e)
	case InputMouseButtonDown:
		return w.processButtonDown(ctx, e)
	case InputMouseButtonUp:
		return w.processButtonUp(ctx, e)
	case InputKeyDown:
		e.Type = EventKeyDown
		return w.dispatchPath(ctx.focused, e)
	case InputKeyUp:
		e.Type = EventKeyUp
		return w.dispatchPath(ctx.focused, e)
	case InputKeyChar:
		e.Type = EventKeyChar
		return w.dispatchPath(ctx.focused, e)
	}
	return false
}

// --- Move / enter / leave ---

// mouseMove runs the move protocol at w. typ is EventMouseMove, or
// EventMouseEnter when the pointer has just entered w.
func (w *Widget) mouseMove(e Event, typ EventType) bool {
	w.hasMouse = true
	e.Type = typ
	e.Target = w
	if w.dispatch(e, PhaseCapture) {
		return true
	}

	child := w.ChildAt(e.X, e.Y)
	if child != nil && !child.enabled {
		child = nil
	}

	if child == w.childWithMouse {
		if child != nil && child.mouseMove(e, EventMouseMove) {
			return true
		}
	} else {
		handled := false
		if prev := w.childWithMouse; prev != nil {
			w.childWithMouse = nil
			handled = prev.mouseLeave(e)
		}
		w.childWithMouse = child
		if child != nil && child.mouseMove(e, EventMouseEnter) {
			handled = true
		}
		if handled {
			return true
		}
	}
	return w.dispatch(e, PhaseBubble)
}

// mouseLeave runs the leave protocol at w. Hover tracking below w is reset
// whether or not a handler intercepts the event.
func (w *Widget) mouseLeave(e Event) bool {
	w.hasMouse = false
	e.Type = EventMouseLeave
	e.Target = w
	if w.dispatch(e, PhaseCapture) {
		w.resetMouseState()
		return true
	}
	if c := w.childWithMouse; c != nil {
		c.mouseLeave(e)
	}
	w.childWithMouse = nil
	return w.dispatch(e, PhaseBubble)
}

// mouseWheel runs the wheel protocol at w.
func (w *Widget) mouseWheel(e Event) bool {
	e.Type = EventMouseWheel
	e.Target = w
	if w.dispatch(e, PhaseCapture) {
		return true
	}
	if c := w.childWithMouse; c != nil && c.mouseWheel(e) {
		return true
	}
	return w.dispatch(e, PhaseBubble)
}

// hoverTarget follows the hovered chain from w to its deepest widget.
func (w *Widget) hoverTarget() *Widget {
	cur := w
	for cur.childWithMouse != nil {
		cur = cur.childWithMouse
	}
	return cur
}

// --- Buttons, click, drag and drop ---

func (w *Widget) processButtonDown(ctx *Context, e Event) bool {
	target := w.hoverTarget()
	if !ctx.press.down {
		ctx.press = pressState{
			down:   true,
			button: e.Button,
			target: target,
			startX: e.X,
			startY: e.Y,
			lastX:  e.X,
			lastY:  e.Y,
		}
	}
	e.Type = EventMouseDown
	return w.dispatchPath(target, e)
}

func (w *Widget) processButtonUp(ctx *Context, e Event) bool {
	hover := w.hoverTarget()
	ps := ctx.press
	if !ps.down || ps.button != e.Button {
		e.Type = EventMouseUp
		return w.dispatchPath(hover, e)
	}
	ctx.press = pressState{}

	source := ps.target
	if source != nil && (source.disposed || !w.Contains(source)) {
		source = nil
	}
	handled := false
	if ps.dragging && source != nil {
		de := e
		de.DragSource = source
		de.StartX, de.StartY = ps.startX, ps.startY
		de.DX, de.DY = e.X-ps.lastX, e.Y-ps.lastY
		de.Type = EventDragEnd
		if w.dispatchPath(source, de) {
			handled = true
		}
		de.Type = EventDrop
		if w.dispatchPath(hover, de) {
			handled = true
		}
	} else if source != nil && source == hover {
		ce := e
		ce.Type = EventClick
		if w.dispatchPath(source, ce) {
			handled = true
		}
	}

	target := source
	if target == nil {
		target = hover
	}
	e.Type = EventMouseUp
	if w.dispatchPath(target, e) {
		handled = true
	}
	return handled
}

// processDrag turns pointer motion during a press into drag events on the
// press target once the motion exceeds the dead zone.
func (w *Widget) processDrag(ctx *Context, e Event) bool {
	ps := &ctx.press
	if !ps.down || ps.target == nil {
		return false
	}
	if ps.target.disposed || !w.Contains(ps.target) {
		ps.target = nil
		return false
	}
	e.DragSource = ps.target
	e.StartX, e.StartY = ps.startX, ps.startY
	handled := false
	if !ps.dragging {
		dx := e.X - ps.startX
		dy := e.Y - ps.startY
		if math.Sqrt(dx*dx+dy*dy) > ctx.dragDeadZone {
			ps.dragging = true
			se := e
			se.Type = EventDragStart
			se.DX, se.DY = dx, dy
			handled = w.dispatchPath(ps.target, se)
		}
	}
	if ps.dragging {
		de := e
		de.Type = EventDrag
		de.DX, de.DY = e.X-ps.lastX, e.Y-ps.lastY
		if w.dispatchPath(ps.target, de) {
			handled = true
		}
	}
	ps.lastX, ps.lastY = e.X, e.Y
	return handled
}
