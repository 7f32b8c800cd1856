package arbor

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pointerInput is the last pointer state the scene forwarded to the tree.
type pointerInput struct {
	known   bool
	inside  bool
	x, y    float64
	buttons [3]bool
}

var ebitenButtons = [3]ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// processInput is called from Scene.Update. An injected event replaces the
// real pointer for that frame; keyboard input is always read.
func (s *Scene) processInput() {
	mods := readModifiers()

	if !s.processInjectedInput(mods) {
		mx, my := ebiten.CursorPosition()
		var buttons [3]bool
		for i, b := range ebitenButtons {
			buttons[i] = ebiten.IsMouseButtonPressed(b)
		}
		wx, wy := ebiten.Wheel()
		s.feedPointer(float64(mx), float64(my), buttons, wx, wy, mods)
	}

	s.keyBuf = inpututil.AppendJustPressedKeys(s.keyBuf[:0])
	for _, k := range s.keyBuf {
		s.root.ProcessEvent(InputEvent{Type: InputKeyDown, Key: k, Modifiers: mods})
	}
	s.keyBuf = inpututil.AppendJustReleasedKeys(s.keyBuf[:0])
	for _, k := range s.keyBuf {
		s.root.ProcessEvent(InputEvent{Type: InputKeyUp, Key: k, Modifiers: mods})
	}
	s.charBuf = ebiten.AppendInputChars(s.charBuf[:0])
	for _, r := range s.charBuf {
		s.root.ProcessEvent(InputEvent{Type: InputKeyChar, Rune: r, Modifiers: mods})
	}
}

// feedPointer converts a sampled pointer state into input records: display
// enter/leave, one combined motion record, then button transitions.
func (s *Scene) feedPointer(x, y float64, buttons [3]bool, wheelX, wheelY float64, mods KeyModifiers) {
	p := &s.input
	inside := x >= 0 && y >= 0 && x < s.width && y < s.height

	if inside && !p.inside {
		p.inside = true
		p.known = true
		p.x, p.y = x, y
		s.root.ProcessEvent(InputEvent{Type: InputMouseEnterDisplay, X: x, Y: y, Modifiers: mods})
	}

	dx, dy := 0.0, 0.0
	if p.known {
		dx, dy = x-p.x, y-p.y
	}
	if dx != 0 || dy != 0 || wheelX != 0 || wheelY != 0 {
		s.root.ProcessEvent(InputEvent{
			Type: InputMouseAxes,
			X:    x, Y: y, DX: dx, DY: dy,
			WheelX: wheelX, WheelY: wheelY,
			Modifiers: mods,
		})
	}
	p.x, p.y = x, y
	p.known = true

	for i, down := range buttons {
		if down == p.buttons[i] {
			continue
		}
		p.buttons[i] = down
		typ := InputMouseButtonUp
		if down {
			typ = InputMouseButtonDown
		}
		s.root.ProcessEvent(InputEvent{Type: typ, X: x, Y: y, Button: MouseButton(i), Modifiers: mods})
	}

	if !inside && p.inside {
		p.inside = false
		s.root.ProcessEvent(InputEvent{Type: InputMouseLeaveDisplay, X: x, Y: y, Modifiers: mods})
	}
}
