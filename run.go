package morph

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
}

// game adapts an Engine to ebiten.Game for Run.
type game struct {
	engine        *Engine
	showFPS       bool
	width, height int
}

func (g *game) Update() error {
	g.engine.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.engine.Draw(screen)
	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(outsideW, outsideH int) (int, int) {
	if outsideW != g.width || outsideH != g.height {
		g.width, g.height = outsideW, outsideH
		g.engine.Resize(outsideW, outsideH)
	}
	return outsideW, outsideH
}

// Run opens a window and drives the engine until the window closes, starting
// the engine if it is stopped. For full control, implement ebiten.Game
// yourself and call Engine.Update and Engine.Draw directly:
//
//	type Game struct{ engine *morph.Engine }
//
//	func (g *Game) Update() error              { g.engine.Update(); return nil }
//	func (g *Game) Draw(screen *ebiten.Image)  { g.engine.Draw(screen) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
func Run(e *Engine, cfg RunConfig) error {
	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = 800
	}
	if h <= 0 {
		h = 600
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	e.Start()
	return ebiten.RunGame(&game{engine: e, showFPS: cfg.ShowFPS, width: w, height: h})
}
