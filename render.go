package morph

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Draw renders the particle field onto screen: background fill, wireframe
// connections, then particles in depth order. The depth sort is a painter's
// algorithm: farther particles paint first, with no true occlusion.
func (e *Engine) Draw(screen *ebiten.Image) {
	screen.Fill(e.cfg.BackgroundColor.toNRGBA())

	for _, l := range e.links {
		a, b := l.a, l.b
		alpha := math.Min(a.alpha, b.alpha) * 0.5
		vector.StrokeLine(screen,
			float32(a.screenX), float32(a.screenY),
			float32(b.screenX), float32(b.screenY),
			1, displayColor(a, alpha), true)
	}

	for _, p := range e.drawOrder {
		if p.size <= 0 {
			continue
		}
		vector.DrawFilledCircle(screen,
			float32(p.screenX), float32(p.screenY), float32(p.size),
			displayColor(p, p.alpha), true)
	}
}

// displayColor converts a particle's smoothed display channels and the given
// alpha into a drawable color.
func displayColor(p *particle, alpha float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp(p.dispR, 0, 255)),
		G: uint8(clamp(p.dispG, 0, 255)),
		B: uint8(clamp(p.dispB, 0, 255)),
		A: uint8(clamp(alpha, 0, 1) * 255),
	}
}
