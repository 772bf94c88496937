package morph

import (
	"fmt"
	"image"
	"io"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
)

// PointerSource supplies the pointer position used for hover-driven rotation.
// The default source reads the mouse cursor through ebiten; hosts embedding
// the engine in other input environments can substitute their own.
type PointerSource interface {
	// Position returns the pointer position in surface coordinates and
	// whether a position is currently available.
	Position() (x, y float64, ok bool)
}

// cursorSource reads the mouse cursor position from ebiten.
type cursorSource struct{}

func (cursorSource) Position() (float64, float64, bool) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y), true
}

// link is one wireframe connection. It references particles directly rather
// than by index so draw-order sorting and morph purges cannot desynchronize
// the adjacency.
type link struct {
	a, b *particle
}

// Engine is a self-contained morphing particle field: a frame store, the live
// particle set, the transform and morph machinery, and the render pass over a
// drawing surface. All state is per-instance, so independent engines coexist
// without interference.
//
// The engine is single-threaded and cooperative: the host calls Update once
// per tick and Draw once per frame, and never concurrently.
type Engine struct {
	cfg Config

	width, height    float64
	centerX, centerY float64

	frames    *FrameStore
	particles []*particle // canonical, insertion-ordered
	drawOrder []*particle // depth-sorted projection, rebuilt per tick

	morphing bool
	tween    *gween.Tween

	running   bool
	ticks     uint64
	animTicks float64
	maxDepth  float64

	links      []link
	linksDirty bool

	pointer PointerSource
	debug   bool
}

// NewEngine creates an engine for a drawing surface of the given pixel size.
// The engine starts stopped; call Start (or use Run) to begin ticking.
func NewEngine(width, height int, cfg Config) *Engine {
	e := &Engine{
		cfg:     cfg,
		frames:  NewFrameStore(),
		pointer: cursorSource{},
	}
	e.setSurfaceSize(float64(width), float64(height))
	return e
}

func (e *Engine) setSurfaceSize(w, h float64) {
	e.width, e.height = w, h
	e.centerX, e.centerY = e.cfg.CenterX, e.cfg.CenterY
	if e.cfg.CenterX == 0 && e.cfg.CenterY == 0 {
		e.centerX, e.centerY = w/2, h/2
	}
}

// scale returns the frame-local-to-pixel scale, guarding against a zero
// configuration value.
func (e *Engine) scale() float64 {
	if e.cfg.Scale > 0 {
		return e.cfg.Scale
	}
	return 1
}

// worldPos maps a frame-local point into surface coordinates.
func (e *Engine) worldPos(p Point) (x, y, z float64) {
	s := e.scale()
	return e.centerX + p.X*s, e.centerY + p.Y*s, p.Z * s
}

// LoadPoints replaces the live particle set with one ad-hoc set of
// frame-local points, bypassing the frame store. Any morph in progress is
// discarded.
func (e *Engine) LoadPoints(points []Point) {
	e.particles = e.particles[:0]
	for _, pt := range points {
		x, y, z := e.worldPos(pt)
		e.particles = append(e.particles,
			newParticle(x, y, z, float64(pt.R), float64(pt.G), float64(pt.B)))
	}
	e.morphing = false
	e.tween = nil
	e.linksDirty = true
}

// LoadFrames imports an interchange document and loads the first imported
// frame into the particle set. The source may be a file path, raw bytes, an
// io.Reader, or an already-parsed []Frame. Imported frames are appended to
// the store; existing frames stay.
func (e *Engine) LoadFrames(source any) error {
	var frames []Frame
	switch s := source.(type) {
	case []Frame:
		frames = s
	case []byte:
		f, err := ParseFrames(s)
		if err != nil {
			return err
		}
		frames = f
	case io.Reader:
		data, err := io.ReadAll(s)
		if err != nil {
			return fmt.Errorf("morph: read frames: %w", err)
		}
		return e.LoadFrames(data)
	case string:
		data, err := os.ReadFile(s)
		if err != nil {
			return fmt.Errorf("morph: read frames %q: %w", s, err)
		}
		return e.LoadFrames(data)
	default:
		return fmt.Errorf("morph: unsupported frame source %T", source)
	}
	if len(frames) == 0 {
		return formatErrorf("document contains no frames")
	}
	first := e.frames.Len()
	for _, f := range frames {
		e.frames.Append(f)
	}
	e.applyFrame(first)
	return nil
}

// LoadImage samples a decoded image with the configured mode and density,
// recenters the point cloud, and loads it as the live particle set. A source
// with no visible pixels loads an empty set: nothing to render, not an error.
func (e *Engine) LoadImage(img image.Image) {
	e.LoadPoints(normalizePoints(SamplePoints(img, e.cfg.Mode, e.cfg.Density)))
}

// LoadShapes rasterizes vector shapes onto a w×h buffer, samples the result,
// and loads it as the live particle set.
func (e *Engine) LoadShapes(shapes []Shape, w, h int) error {
	pts, err := SampleShapes(shapes, w, h, e.cfg.Mode, e.cfg.Density)
	if err != nil {
		return err
	}
	e.LoadPoints(normalizePoints(pts))
	return nil
}

// applyFrame instantly loads frame i's layout, bypassing the morph machinery.
// Out-of-range indices are ignored.
func (e *Engine) applyFrame(i int) {
	if i < 0 || i >= e.frames.Len() {
		return
	}
	e.LoadPoints(e.frames.At(i).Points)
	e.frames.setCurrent(i)
}

// AddFrame captures the live particle set's base layout and logical colors as
// a new sequentially-named frame and moves the cursor to it. Returns the new
// frame's index.
func (e *Engine) AddFrame() int {
	s := e.scale()
	pts := make([]Point, len(e.particles))
	for i, p := range e.particles {
		pts[i] = Point{
			X: (p.x - e.centerX) / s,
			Y: (p.y - e.centerY) / s,
			Z: p.z / s,
			R: colorByte(p.r),
			G: colorByte(p.g),
			B: colorByte(p.b),
		}
	}
	return e.frames.AddFrame(pts)
}

func colorByte(v float64) uint8 {
	return uint8(clamp(math.Round(v), 0, 255))
}

// Frames returns the engine's frame store for add/remove/import/export.
func (e *Engine) Frames() *FrameStore {
	return e.frames
}

// FrameIndex returns the current frame index. During a morph it already
// reflects the destination frame.
func (e *Engine) FrameIndex() int {
	return e.frames.Current()
}

// FrameCount returns the number of stored frames.
func (e *Engine) FrameCount() int {
	return e.frames.Len()
}

// IsMorphing reports whether a transition is in progress.
func (e *Engine) IsMorphing() bool {
	return e.morphing
}

// ParticleCount returns the size of the live particle set.
func (e *Engine) ParticleCount() int {
	return len(e.particles)
}

// Start begins advancing the simulation on Update calls.
func (e *Engine) Start() {
	e.running = true
}

// Stop freezes the simulation. Draw keeps rendering the last computed state.
func (e *Engine) Stop() {
	e.running = false
}

// Running reports whether the simulation is advancing.
func (e *Engine) Running() bool {
	return e.running
}

// Resize must be called by the host after the drawing surface changes size.
// It recomputes the rotation center and re-applies the current frame's layout
// relative to it, so base positions never go stale.
func (e *Engine) Resize(width, height int) {
	e.setSurfaceSize(float64(width), float64(height))
	if e.frames.Len() > 0 {
		e.applyFrame(e.frames.Current())
	}
}

// SetOptions merges the non-nil fields of opts into the live configuration.
func (e *Engine) SetOptions(opts Options) {
	if opts.apply(&e.cfg) {
		e.linksDirty = true
	}
	if opts.CenterX != nil || opts.CenterY != nil {
		e.setSurfaceSize(e.width, e.height)
	}
}

// Config returns a pointer to the engine's configuration for live tuning.
// Prefer SetOptions when the connection distance or center may change.
func (e *Engine) Config() *Config {
	return &e.cfg
}

// SetPointerSource replaces the hover-rotation pointer source.
func (e *Engine) SetPointerSource(src PointerSource) {
	e.pointer = src
}

// Update advances the simulation by one tick: morph first, then transforms,
// wireframe maintenance, and the depth sort the draw pass relies on. It is a
// no-op while the engine is stopped.
func (e *Engine) Update() {
	if !e.running {
		return
	}
	e.ticks++
	if e.cfg.AutoRotate {
		e.animTicks++
	}
	e.advanceMorph()
	if e.linksDirty {
		e.rebuildLinks()
	}
	e.updateTransforms()
	e.sortDrawOrder()
	if e.debug {
		e.debugLog()
	}
}

// rebuildLinks recomputes the wireframe adjacency. It runs only when set
// membership or the connection threshold changes, never per tick.
func (e *Engine) rebuildLinks() {
	e.linksDirty = false
	e.links = e.links[:0]
	d := e.cfg.ConnectDistance * e.scale()
	if d <= 0 {
		return
	}
	dd := d * d
	for i, a := range e.particles {
		for _, b := range e.particles[i+1:] {
			dx := a.x - b.x
			dy := a.y - b.y
			dz := a.z - b.z
			if dx*dx+dy*dy+dz*dz <= dd {
				e.links = append(e.links, link{a, b})
			}
		}
	}
}
