package arbor

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// Event carries the data of one dispatched widget event. Handlers receive a
// copy per widget, so modifying it does not affect other handlers.
type Event struct {
	Type  EventType
	Phase Phase

	// Target is the widget the event is about; Current is the widget whose
	// handlers are running. They differ for capture and bubble along a path
	// and for descendant focus events.
	Target  *Widget
	Current *Widget

	// Pointer position in screen pixels and its change since the last event.
	X, Y   float64
	DX, DY float64

	// Wheel deltas (EventMouseWheel).
	WheelX, WheelY float64

	Button    MouseButton
	Key       ebiten.Key
	Rune      rune
	Modifiers KeyModifiers

	// Drag fields (EventDragStart, EventDrag, EventDragEnd, EventDrop).
	DragSource     *Widget
	StartX, StartY float64
}

// EventHandler handles one event. Returning true marks the event handled,
// which stops propagation.
type EventHandler func(e *Event) bool

type eventHandler struct {
	id      uint32
	typ     EventType
	phase   Phase
	fn      EventHandler
	removed bool
}

// CallbackHandle allows removing a registered event handler.
type CallbackHandle struct {
	id     uint32
	widget *Widget
}

// Remove unregisters the handler so it no longer fires. It is safe to call
// from inside a handler, including the one being removed.
func (h CallbackHandle) Remove() {
	if h.widget == nil {
		return
	}
	s := h.widget.handlers
	for i := range s {
		if s[i].id == h.id {
			s[i].removed = true
			// A dispatch in progress keeps iterating the old slice.
			h.widget.handlers = slices.Delete(slices.Clone(s), i, i+1)
			return
		}
	}
}

// AddEventHandler registers fn for events of type typ in the given phase.
// Handlers of one widget run in registration order until one returns true.
func (w *Widget) AddEventHandler(typ EventType, phase Phase, fn EventHandler) CallbackHandle {
	w.nextHandlerID++
	id := w.nextHandlerID
	w.handlers = append(w.handlers, &eventHandler{id: id, typ: typ, phase: phase, fn: fn})
	return CallbackHandle{id: id, widget: w}
}

// OnEvent registers a bubble-phase handler.
func (w *Widget) OnEvent(typ EventType, fn EventHandler) CallbackHandle {
	return w.AddEventHandler(typ, PhaseBubble, fn)
}

// OnCapture registers a capture-phase handler.
func (w *Widget) OnCapture(typ EventType, fn EventHandler) CallbackHandle {
	return w.AddEventHandler(typ, PhaseCapture, fn)
}

// dispatch runs w's handlers for e in one phase and reports whether one of
// them handled it. Target defaults to w.
func (w *Widget) dispatch(e Event, phase Phase) bool {
	e.Phase = phase
	e.Current = w
	if e.Target == nil {
		e.Target = w
	}
	handled := false
	for _, h := range w.handlers {
		if h.removed || h.typ != e.Type || h.phase != phase {
			continue
		}
		if h.fn(&e) {
			handled = true
			break
		}
	}
	if phase == PhaseBubble && e.Target == w {
		w.emitInteractionEvent(&e)
	}
	return handled
}

// pathTo returns the widgets from w down to target, or nil if target is not
// in w's subtree.
func (w *Widget) pathTo(target *Widget) []*Widget {
	if target == nil || !w.Contains(target) {
		return nil
	}
	n := 1
	for p := target; p != w; p = p.Parent() {
		n++
	}
	path := make([]*Widget, n)
	for p, i := target, n-1; i >= 0; p, i = p.Parent(), i-1 {
		path[i] = p
	}
	return path
}

// dispatchPath delivers e to target with the two-phase protocol: capture from
// w down to target, then bubble from target up to w. Propagation stops at the
// first handler that handles the event.
func (w *Widget) dispatchPath(target *Widget, e Event) bool {
	path := w.pathTo(target)
	if path == nil {
		return false
	}
	e.Target = target
	for _, p := range path {
		if p.dispatch(e, PhaseCapture) {
			return true
		}
	}
	for i := len(path) - 1; i >= 0; i-- {
		if path[i].dispatch(e, PhaseBubble) {
			return true
		}
	}
	return false
}

// --- ECS bridge ---

// EntityStore is the interface for optional ECS integration.
// When set on a Context, events reaching a widget with a non-zero EntityID
// are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries event data for the ECS bridge.
type InteractionEvent struct {
	Type      EventType
	EntityID  uint32
	X, Y      float64
	DX, DY    float64
	WheelX    float64
	WheelY    float64
	Button    MouseButton
	Key       ebiten.Key
	Rune      rune
	Modifiers KeyModifiers
}

func (w *Widget) emitInteractionEvent(e *Event) {
	if w.EntityID == 0 {
		return
	}
	ctx := w.findContext()
	if ctx == nil || ctx.store == nil {
		return
	}
	ctx.store.EmitEvent(InteractionEvent{
		Type:      e.Type,
		EntityID:  w.EntityID,
		X:         e.X,
		Y:         e.Y,
		DX:        e.DX,
		DY:        e.DY,
		WheelX:    e.WheelX,
		WheelY:    e.WheelY,
		Button:    e.Button,
		Key:       e.Key,
		Rune:      e.Rune,
		Modifiers: e.Modifiers,
	})
}
