package arbor

// updateGeometryConstraints brings constraints up to date bottom-up. Subtrees
// without a stale descendant are skipped entirely; a widget's own hook runs
// only after all of its children are current.
func (w *Widget) updateGeometryConstraints() {
	if w.dirty&DirtyDescendantGeometryConstraints != 0 {
		for child := range w.Children() {
			child.updateGeometryConstraints()
		}
		w.dirty &^= DirtyDescendantGeometryConstraints
	}
	if w.dirty&DirtyGeometryConstraints != 0 {
		if w.OnGeometryConstraints != nil {
			w.OnGeometryConstraints(w)
		}
		w.dirty &^= DirtyGeometryConstraints
	}
}

// setConstraint stores a constraint value. A change invalidates the parent's
// constraints and layout, since both are derived from this widget's
// constraints.
func (w *Widget) setConstraint(dst *Coordinate, c Coordinate) {
	if *dst == c {
		return
	}
	*dst = c
	if p := w.Parent(); p != nil {
		p.invalidateGeometryConstraints()
		p.dirty |= DirtyLayout
	}
}

func (w *Widget) SetMinimumWidth(c Coordinate)  { w.setConstraint(&w.minWidth, c) }
func (w *Widget) SetMinimumHeight(c Coordinate) { w.setConstraint(&w.minHeight, c) }
func (w *Widget) SetOptimalWidth(c Coordinate)  { w.setConstraint(&w.optWidth, c) }
func (w *Widget) SetOptimalHeight(c Coordinate) { w.setConstraint(&w.optHeight, c) }
func (w *Widget) SetMaximumWidth(c Coordinate)  { w.setConstraint(&w.maxWidth, c) }
func (w *Widget) SetMaximumHeight(c Coordinate) { w.setConstraint(&w.maxHeight, c) }

func (w *Widget) MinimumWidth() Coordinate  { return w.minWidth }
func (w *Widget) MinimumHeight() Coordinate { return w.minHeight }
func (w *Widget) OptimalWidth() Coordinate  { return w.optWidth }
func (w *Widget) OptimalHeight() Coordinate { return w.optHeight }
func (w *Widget) MaximumWidth() Coordinate  { return w.maxWidth }
func (w *Widget) MaximumHeight() Coordinate { return w.maxHeight }
