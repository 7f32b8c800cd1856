package arbor

import "github.com/hajimehoshi/ebiten/v2/text/v2"

// Label is a widget that displays a line of text. Its optimal size follows
// the text, so a parent's OnLayout can size it from OptimalWidth and
// OptimalHeight.
type Label struct {
	*Widget

	text  string
	face  text.Face
	color Color
}

// NewLabel creates a label showing s in DefaultFace and white.
func NewLabel(name, s string) *Label {
	l := &Label{Widget: NewWidget(name), text: s, color: ColorWhite}
	l.SetFocusable(false)
	l.OnGeometryConstraints = func(w *Widget) {
		tw, th := MeasureText(l.text, l.face)
		w.SetMinimumWidth(Px(tw))
		w.SetMinimumHeight(Px(th))
		w.SetOptimalWidth(Px(tw))
		w.SetOptimalHeight(Px(th))
	}
	l.OnPaint = func(w *Widget, c *Canvas) {
		r := w.ScreenRect()
		c.DrawText(l.text, l.face, r.Left, r.Top, l.color)
	}
	return l
}

// Text returns the displayed text.
func (l *Label) Text() string { return l.text }

// SetText changes the displayed text and schedules a constraints update.
func (l *Label) SetText(s string) {
	if l.text == s {
		return
	}
	l.text = s
	l.InvalidateGeometryConstraints()
}

// SetFace changes the font face. A nil face selects DefaultFace.
func (l *Label) SetFace(face text.Face) {
	if l.face == face {
		return
	}
	l.face = face
	l.InvalidateGeometryConstraints()
}

// SetColor changes the text color.
func (l *Label) SetColor(c Color) { l.color = c }

// SizeToContent sets the label's size to its optimal size. Call it after a
// Refresh or Render has brought the constraints up to date.
func (l *Label) SizeToContent() {
	l.SetSize(l.OptimalWidth(), l.OptimalHeight())
}
