package arbor

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object that owns the widget tree and its Context,
// turns ebiten input into widget events, advances tweens, and renders.
type Scene struct {
	root *Widget
	ctx  *Context

	// ClearColor fills the screen before the tree is painted when its alpha is
	// non-zero.
	ClearColor Color

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	width, height float64

	tweens []*TweenGroup

	// Input state
	input           pointerInput
	keyBuf          []ebiten.Key
	charBuf         []rune
	injectQueue     []syntheticEvent
	testRunner      *TestRunner
	screenshotQueue []string
}

// NewScene creates a scene whose root widget fills the render target.
func NewScene() *Scene {
	root := NewWidget("root")
	root.SetSize(Pct(100), Pct(100))
	ctx := NewContext()
	root.SetContext(ctx)
	return &Scene{
		root:          root,
		ctx:           ctx,
		ScreenshotDir: "screenshots",
	}
}

// Root returns the scene's root widget.
func (s *Scene) Root() *Widget {
	return s.root
}

// Context returns the context shared by the scene's widget tree.
func (s *Scene) Context() *Context {
	return s.ctx
}

// FocusedWidget returns the widget holding keyboard focus, or nil.
func (s *Scene) FocusedWidget() *Widget {
	return s.ctx.focused
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.ctx.SetEntityStore(store)
}

// SetDragDeadZone sets the minimum movement in pixels before a drag starts.
func (s *Scene) SetDragDeadZone(pixels float64) {
	s.ctx.SetDragDeadZone(pixels)
}

// SetDebugMode enables or disables debug mode. See the package-level
// SetDebugMode.
func (s *Scene) SetDebugMode(enabled bool) {
	SetDebugMode(enabled)
	SetVerbose(enabled)
}

// Layout records the size of the render target. Run calls it from
// ebiten.Game.Layout.
func (s *Scene) Layout(width, height int) {
	s.width = float64(width)
	s.height = float64(height)
}

// Size returns the size last passed to Layout.
func (s *Scene) Size() (width, height float64) {
	return s.width, s.height
}

// AddTween registers a tween that the scene advances every Update until it is
// done.
func (s *Scene) AddTween(g *TweenGroup) {
	s.tweens = append(s.tweens, g)
}

// Update advances tweens, refreshes geometry, and processes input.
func (s *Scene) Update() {
	dt := float32(1.0 / float64(ebiten.TPS()))
	s.advanceTweens(dt)

	// Hit testing needs this frame's geometry.
	s.root.Refresh(s.width, s.height)

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
}

// Draw renders the widget tree onto screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	s.root.Render(NewCanvas(screen))
	s.flushScreenshots(screen)
}

func (s *Scene) advanceTweens(dt float32) {
	live := s.tweens[:0]
	for _, g := range s.tweens {
		g.Update(dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	for i := len(live); i < len(s.tweens); i++ {
		s.tweens[i] = nil
	}
	s.tweens = live
}
