package arbor

import "time"

// Refresh brings the tree rooted at w up to date without painting: geometry
// constraints first, then screen geometry, tree visual state and layout in a
// single pre-order pass. A root resolves its coordinates against a target of
// width x height pixels at unit scaling; a non-root resolves against its
// parent's last computed geometry.
func (w *Widget) Refresh(width, height float64) {
	w.update(nil, Rect{Right: width, Bottom: height})
}

// Render refreshes the tree rooted at w and paints it onto c. Per widget the
// pass recomputes what is stale, runs OnLayout, paints with OnPaint inside the
// clip dictated by the clipping mode, recurses into children bottom to top,
// and finally runs OnPaintOverlay in the same clip scope. A root is placed
// at the canvas bounds, so a SubImage target keeps its offset.
func (w *Widget) Render(c *Canvas) {
	w.update(c, c.Bounds())
}

func (w *Widget) update(c *Canvas, bounds Rect) {
	var stats debugStats
	var t0 time.Time
	if globalDebug {
		t0 = time.Now()
	}

	w.updateGeometryConstraints()

	if globalDebug {
		stats.constraintsTime = time.Since(t0)
		t0 = time.Now()
	}

	var pf frame
	parentGeometry, parentVisual := false, false
	if p := w.Parent(); p != nil {
		pf = p.childFrame()
		// Tree flags are re-derived from the parent's cached flags.
		parentVisual = true
	} else {
		pf = rootFrame(bounds)
		// A resized target moves every coordinate resolved against it.
		if bounds != w.rootBounds {
			w.rootBounds = bounds
			parentGeometry = true
		}
	}
	w.pass(c, pf, parentGeometry, parentVisual, c != nil, &stats)

	if globalDebug {
		stats.passTime = time.Since(t0)
		debugLog(stats)
	}
}

// pass is the unified recursive recomputation and paint pass. parentGeometry
// and parentVisual report whether the parent recomputed that state in this
// pass, which forces recomputation here because children are defined
// relative to their parent.
func (w *Widget) pass(c *Canvas, pf frame, parentGeometry, parentVisual, paint bool, stats *debugStats) {
	stats.widgetCount++

	geometry := parentGeometry || w.dirty&DirtyScreenGeometry != 0
	if geometry {
		w.computeScreenGeometry(pf)
		w.dirty &^= DirtyScreenGeometry
		stats.geometryCount++
	}

	visual := parentVisual || w.dirty&DirtyTreeVisualState != 0
	if visual {
		w.computeTreeVisualState()
		w.dirty &^= DirtyTreeVisualState
	}

	if w.dirty&DirtyLayout != 0 {
		if w.OnLayout != nil {
			w.OnLayout(w)
		}
		// Cleared after the hook: children resized by the hook re-flag this
		// widget's layout, which is already being applied.
		w.dirty &^= DirtyLayout
		stats.layoutCount++
	}

	paint = paint && w.visible

	var saved Rect
	restore := false
	switch w.clipMode {
	case ClipNone:
		if paint {
			w.paint(c, stats)
		}
	case ClipWidget:
		if paint {
			saved = c.Clip()
			if r := saved.Intersect(w.screen); !r.Empty() {
				c.SetClip(r)
				w.paint(c, stats)
				c.SetClip(saved)
			}
		}
	case ClipTree:
		if paint {
			saved = c.Clip()
			r := saved.Intersect(w.screen)
			if r.Empty() {
				paint = false
			} else {
				c.SetClip(r)
				restore = true
				w.paint(c, stats)
			}
		}
	default:
		invalidClipMode(w.clipMode)
	}

	cf := w.childFrame()
	for child := range w.Children() {
		child.pass(c, cf, geometry, visual, paint, stats)
	}

	if paint && w.OnPaintOverlay != nil {
		switch w.clipMode {
		case ClipWidget:
			saved = c.Clip()
			if r := saved.Intersect(w.screen); !r.Empty() {
				c.SetClip(r)
				w.OnPaintOverlay(w, c)
				c.SetClip(saved)
			}
		default:
			w.OnPaintOverlay(w, c)
		}
	}
	if restore {
		c.SetClip(saved)
	}
}

func (w *Widget) paint(c *Canvas, stats *debugStats) {
	if w.OnPaint != nil {
		w.OnPaint(w, c)
		stats.paintCount++
	}
}
