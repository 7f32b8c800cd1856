package arbor

import (
	"slices"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// newInputScene builds a 200x100 scene with children a at [0,0,50,50] and
// b at [100,0,150,50].
func newInputScene() (s *Scene, a, b *Widget) {
	s = NewScene()
	s.Layout(200, 100)
	a = newSized("a", 0, 0, 50, 50)
	b = newSized("b", 100, 0, 50, 50)
	s.Root().AddChild(a)
	s.Root().AddChild(b)
	s.Root().Refresh(200, 100)
	return
}

func TestInjectClick(t *testing.T) {
	s, a, _ := newInputScene()

	var log []string
	a.OnEvent(EventMouseDown, func(*Event) bool { log = append(log, "down"); return false })
	a.OnEvent(EventClick, func(*Event) bool { log = append(log, "click"); return false })
	a.OnEvent(EventMouseUp, func(*Event) bool { log = append(log, "up"); return false })

	s.InjectClick(10, 10)
	if len(s.injectQueue) != 2 {
		t.Fatalf("expected 2 queued events, got %d", len(s.injectQueue))
	}

	// Frame 1: press
	s.processInput()
	if len(s.injectQueue) != 1 {
		t.Fatalf("expected 1 remaining event after frame 1, got %d", len(s.injectQueue))
	}
	if !slices.Equal(log, []string{"down"}) {
		t.Errorf("after press: %v", log)
	}

	// Frame 2: release, click fires
	s.processInput()
	if len(s.injectQueue) != 0 {
		t.Fatalf("expected 0 remaining events after frame 2, got %d", len(s.injectQueue))
	}
	if want := []string{"down", "click", "up"}; !slices.Equal(log, want) {
		t.Errorf("events = %v, want %v", log, want)
	}
}

func TestInjectDrag(t *testing.T) {
	s, a, b := newInputScene()

	var log []string
	a.OnEvent(EventDragStart, func(*Event) bool { log = append(log, "dragstart"); return true })
	a.OnEvent(EventDrag, func(*Event) bool { log = append(log, "drag"); return true })
	a.OnEvent(EventDragEnd, func(*Event) bool { log = append(log, "dragend"); return true })
	b.OnEvent(EventDrop, func(e *Event) bool {
		if e.DragSource == a {
			log = append(log, "drop")
		}
		return true
	})

	// frame 0: press at (10,10)
	// frames 1-3: moves to 35, 60, 85
	// frame 4: release at (110,10)
	s.InjectDrag(10, 10, 110, 10, 5)
	if len(s.injectQueue) != 5 {
		t.Fatalf("expected 5 queued events, got %d", len(s.injectQueue))
	}
	for range 5 {
		s.processInput()
	}

	want := []string{"dragstart", "drag", "drag", "drag", "drag", "dragend", "drop"}
	if !slices.Equal(log, want) {
		t.Errorf("events:\n got %v\nwant %v", log, want)
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	s := NewScene()
	s.InjectDrag(0, 0, 10, 10, 0)
	if len(s.injectQueue) != 2 {
		t.Errorf("expected press and release, got %d events", len(s.injectQueue))
	}
}

func TestInjectWheel(t *testing.T) {
	s, a, _ := newInputScene()
	var got float64
	a.OnEvent(EventMouseWheel, func(e *Event) bool { got = e.WheelY; return true })

	s.InjectWheel(10, 10, 0, 3)
	s.processInput()
	if got != 3 {
		t.Errorf("WheelY = %v, want 3", got)
	}
}

func TestInjectKeyAndChar(t *testing.T) {
	s, a, _ := newInputScene()
	a.SetFocused(true)

	var keys []ebiten.Key
	var runes []rune
	var ups int
	a.OnEvent(EventKeyDown, func(e *Event) bool { keys = append(keys, e.Key); return true })
	a.OnEvent(EventKeyUp, func(e *Event) bool { ups++; return true })
	a.OnEvent(EventKeyChar, func(e *Event) bool { runes = append(runes, e.Rune); return true })

	s.InjectKey(ebiten.KeyEnter)
	s.InjectChar('h')
	s.InjectChar('i')
	for range 3 {
		s.processInput()
	}

	if !slices.Equal(keys, []ebiten.Key{ebiten.KeyEnter}) || ups != 1 {
		t.Errorf("keys = %v, ups = %d", keys, ups)
	}
	if string(runes) != "hi" {
		t.Errorf("runes = %q, want %q", string(runes), "hi")
	}
}

func TestInjectMoveHovers(t *testing.T) {
	s, a, b := newInputScene()
	s.InjectMove(10, 10)
	s.InjectMove(110, 10)
	s.processInput()
	if s.Root().ChildWithMouse() != a {
		t.Fatal("a should be hovered")
	}
	s.processInput()
	if s.Root().ChildWithMouse() != b || a.HasMouse() {
		t.Error("b should be hovered")
	}

	// Leaving the display resets hover tracking.
	s.InjectMove(-5, -5)
	s.processInput()
	if s.Root().ChildWithMouse() != nil || s.Root().HasMouse() {
		t.Error("pointer outside the display should not hover anything")
	}
}
