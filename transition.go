package morph

import (
	"math/rand/v2"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// GoTo starts a morph toward the frame at the given index. The call is a
// silent no-op if a morph is already running, the index is out of range, or it
// equals the current frame; rapid UI interaction routinely produces all
// three, so none of them are errors.
func (e *Engine) GoTo(index int) {
	e.morphTo(index)
}

// Next morphs to the following frame, wrapping at the end. No-op with fewer
// than two frames or while a morph is in progress.
func (e *Engine) Next() {
	e.stepFrame(1)
}

// Prev morphs to the preceding frame, wrapping at the start. No-op with fewer
// than two frames or while a morph is in progress.
func (e *Engine) Prev() {
	e.stepFrame(-1)
}

func (e *Engine) stepFrame(d int) {
	n := e.frames.Len()
	if n < 2 || e.morphing {
		return
	}
	e.morphTo(((e.frames.Current()+d)%n + n) % n)
}

// morphTo sets up per-particle start/target snapshots for a transition into
// the target frame and enters the morphing state. The frame cursor moves to
// the destination immediately so the displayed frame label reflects where the
// set is heading.
func (e *Engine) morphTo(target int) {
	if e.morphing || target < 0 || target >= e.frames.Len() || target == e.frames.Current() {
		return
	}
	pts := e.frames.At(target).Points

	for _, p := range e.particles {
		p.doomed = false
	}

	// A larger target frame needs more particles: bud them off random
	// existing ones so they appear to split out of the shape.
	for len(e.particles) < len(pts) {
		pt := pts[len(e.particles)]
		wx, wy, wz := e.worldPos(pt)
		e.spawnBud(wx, wy, wz, float64(pt.R), float64(pt.G), float64(pt.B))
	}

	for i, p := range e.particles {
		p.snapshotStart()
		switch {
		case i < len(pts):
			pt := pts[i]
			wx, wy, wz := e.worldPos(pt)
			p.setTarget(wx, wy, wz, float64(pt.R), float64(pt.G), float64(pt.B))
		case len(pts) > 0:
			// Excess particle: fly into a random target point and be
			// absorbed there when the morph completes.
			pt := pts[rand.IntN(len(pts))]
			wx, wy, wz := e.worldPos(pt)
			p.setTarget(wx, wy, wz, float64(pt.R), float64(pt.G), float64(pt.B))
			p.doomed = true
		default:
			// Empty target frame: absorb in place.
			p.doomed = true
		}
	}

	e.frames.setCurrent(target)
	e.tween = gween.New(0, 1, 1, ease.InOutCubic)
	e.morphing = true
	e.linksDirty = true
}

// advanceMorph moves the transition forward by MorphSpeed worth of progress
// and, on completion, snaps every particle exactly onto its target and purges
// the doomed ones.
func (e *Engine) advanceMorph() {
	if !e.morphing {
		return
	}
	v, done := e.tween.Update(float32(e.cfg.MorphSpeed))
	t := float64(v)
	for _, p := range e.particles {
		p.interpolate(t)
	}
	if !done {
		return
	}

	old := e.particles
	kept := old[:0]
	for _, p := range old {
		p.finalize()
		if !p.doomed {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(old); i++ {
		old[i] = nil
	}
	e.particles = kept
	e.morphing = false
	e.tween = nil
	e.linksDirty = true
}
