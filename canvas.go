package arbor

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace is the face used when a nil face is passed to DrawText,
// MeasureText or a Label.
var DefaultFace text.Face = text.NewGoXFace(basicfont.Face7x13)

// Canvas is the paint surface handed to widget hooks: an ebiten render target
// plus the current clip rectangle. Paint helpers never draw outside the clip.
type Canvas struct {
	target *ebiten.Image
	bounds Rect
	clip   Rect
}

// NewCanvas wraps target. The initial clip covers the whole target.
func NewCanvas(target *ebiten.Image) *Canvas {
	b := target.Bounds()
	r := Rect{
		Left:   float64(b.Min.X),
		Top:    float64(b.Min.Y),
		Right:  float64(b.Max.X),
		Bottom: float64(b.Max.Y),
	}
	return &Canvas{target: target, bounds: r, clip: r}
}

// Target returns the underlying render target.
func (c *Canvas) Target() *ebiten.Image { return c.target }

// Size returns the render target's size in pixels.
func (c *Canvas) Size() (width, height float64) {
	return c.bounds.Width(), c.bounds.Height()
}

// Bounds returns the render target's bounds. A SubImage target keeps its
// offset inside the parent image.
func (c *Canvas) Bounds() Rect { return c.bounds }

// Clip returns the current clip rectangle.
func (c *Canvas) Clip() Rect { return c.clip }

// SetClip replaces the clip rectangle. It is limited to the target bounds.
// Callers narrowing the clip save the previous value and restore it after.
func (c *Canvas) SetClip(r Rect) {
	c.clip = r.Intersect(c.bounds)
}

// Image returns the render target restricted to the clip rectangle. The
// returned image keeps screen coordinates.
func (c *Canvas) Image() *ebiten.Image {
	r := image.Rect(
		int(math.Floor(c.clip.Left)), int(math.Floor(c.clip.Top)),
		int(math.Ceil(c.clip.Right)), int(math.Ceil(c.clip.Bottom)),
	)
	return c.target.SubImage(r).(*ebiten.Image)
}

// FillRect fills r, clipped, with col.
func (c *Canvas) FillRect(r Rect, col Color) {
	r = r.Intersect(c.clip)
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(c.target,
		float32(r.Left), float32(r.Top), float32(r.Width()), float32(r.Height()),
		col.toRGBA(), false)
}

// StrokeRect draws the border of r, thickness pixels wide, inside r.
func (c *Canvas) StrokeRect(r Rect, thickness float64, col Color) {
	if thickness <= 0 || r.Empty() {
		return
	}
	c.FillRect(Rect{r.Left, r.Top, r.Right, r.Top + thickness}, col)
	c.FillRect(Rect{r.Left, r.Bottom - thickness, r.Right, r.Bottom}, col)
	c.FillRect(Rect{r.Left, r.Top + thickness, r.Left + thickness, r.Bottom - thickness}, col)
	c.FillRect(Rect{r.Right - thickness, r.Top + thickness, r.Right, r.Bottom - thickness}, col)
}

// DebugText prints text with ebiten's debug font at the screen point (x, y),
// clipped.
func (c *Canvas) DebugText(text string, x, y float64) {
	if c.clip.Empty() {
		return
	}
	ebitenutil.DebugPrintAt(c.Image(), text, int(x), int(y))
}

// DrawText draws s with its top-left corner at the screen point (x, y),
// clipped. A nil face selects DefaultFace.
func (c *Canvas) DrawText(s string, face text.Face, x, y float64, col Color) {
	if c.clip.Empty() || s == "" {
		return
	}
	if face == nil {
		face = DefaultFace
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col.toRGBA())
	op.LineSpacing = face.Metrics().HAscent + face.Metrics().HDescent
	text.Draw(c.Image(), s, face, op)
}

// MeasureText returns the size of s drawn with face. A nil face selects
// DefaultFace.
func MeasureText(s string, face text.Face) (width, height float64) {
	if face == nil {
		face = DefaultFace
	}
	m := face.Metrics()
	return text.Measure(s, face, m.HAscent+m.HDescent)
}
