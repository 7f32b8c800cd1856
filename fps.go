package arbor

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

var fpsBackground = Color{R: 0, G: 0, B: 0, A: 0.5}

const fpsRefreshInterval = 500 * time.Millisecond

// fpsTicker reports when the displayed rates are due for a refresh. It runs
// on wall time because paints and ticks happen at different rates.
type fpsTicker struct {
	last time.Time
}

func (t *fpsTicker) due(now time.Time) bool {
	if !t.last.IsZero() && now.Sub(t.last) < fpsRefreshInterval {
		return false
	}
	t.last = now
	return true
}

// NewFPSLabel creates a widget that displays the current FPS and TPS in its
// top-left corner. The text is refreshed roughly every half second.
func NewFPSLabel() *Widget {
	w := NewWidget("fps")
	w.SetGeometry(Px(0), Px(0), Px(100), Px(32))
	w.SetFocusable(false)
	w.SetClipMode(ClipWidget)

	var (
		text   = "FPS: -\nTPS: -"
		ticker fpsTicker
	)
	w.OnPaint = func(w *Widget, c *Canvas) {
		if ticker.due(time.Now()) {
			text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
		}
		r := w.ScreenRect()
		c.FillRect(r, fpsBackground)
		c.DebugText(text, r.Left, r.Top)
	}
	return w
}
