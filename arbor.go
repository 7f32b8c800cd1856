package arbor

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to ebiten.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default foreground color.
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	clamp := func(v float64) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	return color.RGBA{
		R: clamp(c.R * c.A),
		G: clamp(c.G * c.A),
		B: clamp(c.B * c.A),
		A: clamp(c.A),
	}
}

// Rect is an axis-aligned screen rectangle in pixels. The coordinate system
// has its origin at the top-left, with Y increasing downward. Right and Bottom
// are exclusive.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width returns Right - Left.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Empty reports whether the rectangle encloses no area.
func (r Rect) Empty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// The left and top edges are inside, the right and bottom edges are not.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x < r.Right &&
		y >= r.Top && y < r.Bottom
}

// Intersect returns the overlap of r and other. The result is Empty when the
// rectangles do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	out := Rect{
		Left:   max(r.Left, other.Left),
		Top:    max(r.Top, other.Top),
		Right:  min(r.Right, other.Right),
		Bottom: min(r.Bottom, other.Bottom),
	}
	if out.Empty() {
		return Rect{}
	}
	return out
}

// ClipMode governs how a widget's rectangle bounds its own paint, its
// children's paint, and hit testing.
type ClipMode uint8

const (
	ClipNone   ClipMode = iota // paint and hit area may extend past the widget rectangle
	ClipWidget                 // own paint is clipped; children and hit testing are not
	ClipTree                   // the whole subtree is clipped for paint and hit testing
)

func (m ClipMode) String() string {
	switch m {
	case ClipNone:
		return "none"
	case ClipWidget:
		return "widget"
	case ClipTree:
		return "tree"
	default:
		return "invalid"
	}
}

// EventType identifies a kind of widget event.
type EventType uint8

const (
	EventMouseMove           EventType = iota // pointer moved while over the widget
	EventMouseEnter                           // pointer entered the widget
	EventMouseLeave                           // pointer left the widget
	EventMouseWheel                           // wheel turned while over the widget
	EventMouseDown                            // pointer button pressed
	EventMouseUp                              // pointer button released
	EventClick                                // press then release over the same widget
	EventDragStart                            // movement after a press exceeded the drag dead zone
	EventDrag                                 // pointer moved while dragging
	EventDragEnd                              // button released after dragging
	EventDrop                                 // a drag ended over this widget
	EventKeyDown                              // key pressed while a widget has focus
	EventKeyUp                                // key released while a widget has focus
	EventKeyChar                              // character typed while a widget has focus
	EventGotFocus                             // widget became the focused widget
	EventLostFocus                            // widget stopped being the focused widget
	EventDescendantGotFocus                   // a descendant became the focused widget
	EventDescendantLostFocus                  // a descendant stopped being the focused widget
	eventTypeCount
)

var eventTypeNames = [eventTypeCount]string{
	"mouse-move", "mouse-enter", "mouse-leave", "mouse-wheel",
	"mouse-down", "mouse-up", "click",
	"drag-start", "drag", "drag-end", "drop",
	"key-down", "key-up", "key-char",
	"got-focus", "lost-focus", "descendant-got-focus", "descendant-lost-focus",
}

func (t EventType) String() string {
	if t < eventTypeCount {
		return eventTypeNames[t]
	}
	return "unknown"
}

// Phase is the propagation phase an event handler runs in.
type Phase uint8

const (
	PhaseCapture Phase = iota // root toward target
	PhaseBubble               // target toward root
)

func (p Phase) String() string {
	if p == PhaseCapture {
		return "capture"
	}
	return "bubble"
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)
