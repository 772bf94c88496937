// Package morph renders an animated field of colored particles in a
// pseudo-3D space and smoothly morphs the whole field between named point
// layouts ("frames").
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	engine := morph.NewEngine(800, 600, morph.DefaultConfig())
//	engine.LoadShapes([]morph.Shape{
//		morph.Circle{X: 200, Y: 200, R: 150, Fill: morph.Color{R: 0.3, G: 0.9, B: 0.5, A: 1}},
//	}, 400, 400)
//	engine.AddFrame()
//	morph.Run(engine, morph.RunConfig{Title: "Morph", Width: 800, Height: 600})
//
// For full control, implement [ebiten.Game] yourself and call
// [Engine.Update] and [Engine.Draw] directly.
//
// # Frames and morphing
//
// A [Frame] is a named, ordered set of colored 3D points. Frames live in the
// engine's [FrameStore]; capture the live particle layout with
// [Engine.AddFrame], or bring frames in through the JSON interchange format
// with [Engine.LoadFrames] and [FrameStore.Import].
//
// [Engine.GoTo], [Engine.Next], and [Engine.Prev] start a morph: every
// particle interpolates from its current position and color to the target
// frame's over a cubic-eased transition. When frame sizes differ the engine
// spawns extra particles by budding them off existing ones, or flies the
// excess into the target shape and absorbs them there.
//
// # Point extraction
//
// [SamplePoints] turns any decoded image into points, either by dense grid
// sampling ([SampleFill]) or contour tracing ([SampleBorder]). Vector shape
// descriptions ([Circle], [Rect], [Ellipse], [Polygon], [Path]) are
// rasterized with [gg] and sampled the same way via [SampleShapes].
//
// # Depth and display
//
// Each tick the engine rotates every particle about the configured center,
// optionally applies perspective projection and depth fog, and draws the
// field back-to-front. Display size, opacity, and color are exponentially
// smoothed toward their per-tick targets so configuration changes never pop.
//
// [gg]: https://github.com/fogleman/gg
// [ebiten.Game]: https://pkg.go.dev/github.com/hajimehoshi/ebiten/v2#Game
package morph
