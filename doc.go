// Package arbor is a retained-mode widget tree for [Ebitengine].
//
// Arbor keeps a tree of [Widget] values, resolves their geometry against the
// render target, tracks enabled/highlighted/pressed/selected/focused state
// down the tree, routes pointer and keyboard input with capture and bubble
// phases, and paints the tree with per-widget clipping.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := arbor.NewScene()
//	// ... add widgets ...
//	arbor.Run(scene, arbor.RunConfig{
//		Title: "My App", Width: 640, Height: 480,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update], [Scene.Draw] and [Scene.Layout] directly.
//
// # Widgets and geometry
//
// Every element is a [Widget]. Widgets form a tree rooted at [Scene.Root];
// a widget owns its children, and children are painted bottom to top in
// insertion order.
//
// Position and size are [Coordinate] values: pixels ([Px]) or a percentage of
// the parent's size ([Pct]). Pixel values are multiplied by the cumulative
// scaling of the ancestors, set with [Widget.SetScaling].
//
//	panel := arbor.NewWidget("panel")
//	panel.SetGeometry(arbor.Pct(10), arbor.Px(20), arbor.Pct(50), arbor.Px(100))
//	scene.Root().AddChild(panel)
//
// Setters only record what changed. The next [Widget.Render] (or
// [Widget.Refresh], which skips painting) brings everything up to date in one
// pass: geometry constraints bottom-up through OnGeometryConstraints, then
// screen geometry, tree visual state and OnLayout top-down.
//
// # Painting
//
// OnPaint draws the widget itself and OnPaintOverlay draws after its children,
// both through a [Canvas]. [ClipMode] decides whether the widget's rectangle
// clips nothing, only the widget's own paint, or the whole subtree; the same
// mode governs hit testing.
//
// # Events and focus
//
// Register handlers with [Widget.OnEvent] (bubble phase) and
// [Widget.OnCapture] (capture phase). A handler returning true stops
// propagation. Pointer input follows the hovered path; keyboard input goes to
// the focused widget. Each tree has at most one focused widget, tracked by its
// [Context]; use [Widget.SetFocused] to move focus.
//
// # Testing and tooling
//
// [Scene.InjectClick] and the other Inject methods feed synthetic input, and
// [LoadTestScript] runs JSON-scripted input and screenshots frame by frame.
// [SetDebugMode] enables debug checks and per-frame stats; [SetVerbose]
// turns on debug-level logging through log/slog.
//
// Tweens (via [gween]) animate geometry, and the ecs subpackage forwards
// widget events to a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package arbor
