package arbor

import "github.com/hajimehoshi/ebiten/v2"

type syntheticKind uint8

const (
	syntheticPointer syntheticKind = iota
	syntheticKey
	syntheticChar
)

// syntheticEvent is one queued input frame. Pointer frames carry the full
// pointer state (position, left button, wheel) and go through the same path
// as the real mouse; key and char frames go straight to the tree.
type syntheticEvent struct {
	kind           syntheticKind
	x, y           float64
	pressed        bool
	wheelX, wheelY float64
	key            ebiten.Key
	char           rune
}

func (s *Scene) inject(e syntheticEvent) {
	s.injectQueue = append(s.injectQueue, e)
}

// InjectMove queues a pointer move to the given screen coordinates with no
// button held.
func (s *Scene) InjectMove(x, y float64) {
	s.inject(syntheticEvent{kind: syntheticPointer, x: x, y: y})
}

// InjectPress queues a left button press at the given screen coordinates.
// The event is consumed on the next frame's processInput call.
func (s *Scene) InjectPress(x, y float64) {
	s.inject(syntheticEvent{kind: syntheticPointer, x: x, y: y, pressed: true})
}

// InjectDragMove queues a pointer move with the left button held. Use it
// between InjectPress and InjectRelease to simulate a drag.
func (s *Scene) InjectDragMove(x, y float64) {
	s.inject(syntheticEvent{kind: syntheticPointer, x: x, y: y, pressed: true})
}

// InjectRelease queues a left button release at the given screen coordinates.
func (s *Scene) InjectRelease(x, y float64) {
	s.inject(syntheticEvent{kind: syntheticPointer, x: x, y: y})
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). Minimum frames is 2 (press + release).
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectDragMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// InjectWheel queues a wheel turn at the given screen coordinates.
func (s *Scene) InjectWheel(x, y, wheelX, wheelY float64) {
	s.inject(syntheticEvent{kind: syntheticPointer, x: x, y: y, wheelX: wheelX, wheelY: wheelY})
}

// InjectKey queues a key press and release.
func (s *Scene) InjectKey(key ebiten.Key) {
	s.inject(syntheticEvent{kind: syntheticKey, key: key})
}

// InjectChar queues a typed character.
func (s *Scene) InjectChar(r rune) {
	s.inject(syntheticEvent{kind: syntheticChar, char: r})
}

// processInjectedInput pops one event from the inject queue and feeds it to
// the tree. Returns true if an event was consumed, in which case the real
// mouse is skipped this frame.
func (s *Scene) processInjectedInput(mods KeyModifiers) bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case syntheticKey:
		s.root.ProcessEvent(InputEvent{Type: InputKeyDown, Key: evt.key, Modifiers: mods})
		s.root.ProcessEvent(InputEvent{Type: InputKeyUp, Key: evt.key, Modifiers: mods})
		return true
	case syntheticChar:
		s.root.ProcessEvent(InputEvent{Type: InputKeyChar, Rune: evt.char, Modifiers: mods})
		return true
	}
	buttons := s.input.buttons
	buttons[MouseButtonLeft] = evt.pressed
	s.feedPointer(evt.x, evt.y, buttons, evt.wheelX, evt.wheelY, mods)
	return true
}
