package arbor

// frame is the resolved coordinate space a widget's children are placed in.
type frame struct {
	rect   Rect
	sx, sy float64
}

// rootFrame is the space a root resolves its coordinates against: the render
// target's bounds at unit scaling.
func rootFrame(bounds Rect) frame {
	return frame{rect: bounds, sx: 1, sy: 1}
}

// childFrame returns the space w's children resolve against.
func (w *Widget) childFrame() frame {
	return frame{rect: w.screen, sx: w.screenScalingX, sy: w.screenScalingY}
}

// computeScreenGeometry resolves w's coordinates inside the parent frame.
func (w *Widget) computeScreenGeometry(pf frame) {
	pw := pf.rect.Width()
	ph := pf.rect.Height()
	l := pf.rect.Left + w.left.ToPixels(pw, pf.sx)
	t := pf.rect.Top + w.top.ToPixels(ph, pf.sy)
	w.screen = Rect{
		Left:   l,
		Top:    t,
		Right:  l + w.width.ToPixels(pw, pf.sx),
		Bottom: t + w.height.ToPixels(ph, pf.sy),
	}
	w.screenScalingX = pf.sx * w.scalingX
	w.screenScalingY = pf.sy * w.scalingY
}

// --- Geometry setters ---

// SetLeft sets the left edge relative to the parent. Setting an equal value
// is a no-op.
func (w *Widget) SetLeft(c Coordinate) {
	if w.left == c {
		return
	}
	w.left = c
	w.dirty |= DirtyScreenGeometry
	w.invalidateParentLayout()
}

// SetTop sets the top edge relative to the parent. Setting an equal value is
// a no-op.
func (w *Widget) SetTop(c Coordinate) {
	if w.top == c {
		return
	}
	w.top = c
	w.dirty |= DirtyScreenGeometry
	w.invalidateParentLayout()
}

// SetWidth sets the width. Children depend on it, so the widget's own layout
// is invalidated along with the parent's.
func (w *Widget) SetWidth(c Coordinate) {
	if w.width == c {
		return
	}
	w.width = c
	w.dirty |= DirtyScreenGeometry | DirtyLayout
	w.invalidateParentLayout()
}

// SetHeight sets the height. See SetWidth.
func (w *Widget) SetHeight(c Coordinate) {
	if w.height == c {
		return
	}
	w.height = c
	w.dirty |= DirtyScreenGeometry | DirtyLayout
	w.invalidateParentLayout()
}

// SetPosition sets left and top.
func (w *Widget) SetPosition(left, top Coordinate) {
	w.SetLeft(left)
	w.SetTop(top)
}

// SetSize sets width and height.
func (w *Widget) SetSize(width, height Coordinate) {
	w.SetWidth(width)
	w.SetHeight(height)
}

// SetGeometry sets all four geometry inputs.
func (w *Widget) SetGeometry(left, top, width, height Coordinate) {
	w.SetPosition(left, top)
	w.SetSize(width, height)
}

// SetScalingX sets the horizontal multiplier applied to the children's
// coordinate space.
func (w *Widget) SetScalingX(s float64) {
	if w.scalingX == s {
		return
	}
	w.scalingX = s
	w.dirty |= DirtyScreenGeometry
}

// SetScalingY sets the vertical multiplier applied to the children's
// coordinate space.
func (w *Widget) SetScalingY(s float64) {
	if w.scalingY == s {
		return
	}
	w.scalingY = s
	w.dirty |= DirtyScreenGeometry
}

// SetScaling sets both scaling multipliers.
func (w *Widget) SetScaling(sx, sy float64) {
	w.SetScalingX(sx)
	w.SetScalingY(sy)
}

// --- Geometry getters ---

func (w *Widget) Left() Coordinate   { return w.left }
func (w *Widget) Top() Coordinate    { return w.top }
func (w *Widget) Width() Coordinate  { return w.width }
func (w *Widget) Height() Coordinate { return w.height }

// Scaling returns the widget's own scaling multipliers.
func (w *Widget) Scaling() (sx, sy float64) { return w.scalingX, w.scalingY }

// ScreenRect returns the absolute pixel rectangle computed by the last
// Refresh or Render.
func (w *Widget) ScreenRect() Rect { return w.screen }

// ScreenScaling returns the cumulative scaling from the root down to and
// including this widget.
func (w *Widget) ScreenScaling() (sx, sy float64) {
	return w.screenScalingX, w.screenScalingY
}

// ScreenToLocal converts a screen point to coordinates relative to the widget's
// top-left corner, in the widget's unscaled units.
func (w *Widget) ScreenToLocal(x, y float64) (lx, ly float64) {
	sx, sy := 1.0, 1.0
	if p := w.Parent(); p != nil {
		sx, sy = p.screenScalingX, p.screenScalingY
	}
	if sx == 0 || sy == 0 {
		return 0, 0
	}
	return (x - w.screen.Left) / sx, (y - w.screen.Top) / sy
}
