package morph

import "math/rand/v2"

// particle holds per-particle simulation state. Unexported; managed by Engine.
//
// Invariant: whenever no morph is in progress, the base position and logical
// color equal the morph target fields, so a finished morph leaves no residual
// drift. During a morph the start/target snapshots are fixed; only the shared
// interpolation parameter advances.
type particle struct {
	// Base (home) position in world space, before rotation.
	x, y, z float64
	// Logical color channels in [0, 255], pre-display smoothing.
	r, g, b float64

	// Morph snapshot taken when a transition starts.
	startX, startY, startZ float64
	startR, startG, startB float64
	// Morph destination.
	targetX, targetY, targetZ float64
	targetR, targetG, targetB float64

	// doomed marks a particle that exists only to be absorbed into a merge
	// target; it is purged when the morph completes.
	doomed bool

	// Derived state, recomputed every tick by the transform pass.
	rotX, rotY       float64
	depth            float64
	screenX, screenY float64

	// Smoothed display attributes. These chase per-tick targets
	// exponentially so abrupt setting changes never pop visually.
	size, alpha         float64
	dispR, dispG, dispB float64
}

// newParticle creates a particle at a world-space position with logical color
// channels in [0, 255]. Morph targets start equal to the base state.
func newParticle(x, y, z, r, g, b float64) *particle {
	p := &particle{
		dispR: r, dispG: g, dispB: b,
	}
	p.settleAt(x, y, z, r, g, b)
	return p
}

// settleAt moves the particle instantly: base, start, and target all take the
// given values, restoring the idle-state invariant.
func (p *particle) settleAt(x, y, z, r, g, b float64) {
	p.x, p.y, p.z = x, y, z
	p.r, p.g, p.b = r, g, b
	p.startX, p.startY, p.startZ = x, y, z
	p.startR, p.startG, p.startB = r, g, b
	p.targetX, p.targetY, p.targetZ = x, y, z
	p.targetR, p.targetG, p.targetB = r, g, b
}

// snapshotStart records the current base state as the morph origin.
func (p *particle) snapshotStart() {
	p.startX, p.startY, p.startZ = p.x, p.y, p.z
	p.startR, p.startG, p.startB = p.r, p.g, p.b
}

// setTarget records the morph destination.
func (p *particle) setTarget(x, y, z, r, g, b float64) {
	p.targetX, p.targetY, p.targetZ = x, y, z
	p.targetR, p.targetG, p.targetB = r, g, b
}

// interpolate writes the eased blend of start and target into the base state.
func (p *particle) interpolate(t float64) {
	p.x = lerp(p.startX, p.targetX, t)
	p.y = lerp(p.startY, p.targetY, t)
	p.z = lerp(p.startZ, p.targetZ, t)
	p.r = lerp(p.startR, p.targetR, t)
	p.g = lerp(p.startG, p.targetG, t)
	p.b = lerp(p.startB, p.targetB, t)
}

// finalize snaps the base state exactly onto the target, avoiding the
// floating-point residue a t=1 interpolation can leave behind.
func (p *particle) finalize() {
	p.x, p.y, p.z = p.targetX, p.targetY, p.targetZ
	p.r, p.g, p.b = p.targetR, p.targetG, p.targetB
	p.startX, p.startY, p.startZ = p.x, p.y, p.z
	p.startR, p.startG, p.startB = p.r, p.g, p.b
}

// bud clones an existing particle's base state so a freshly spawned particle
// appears to split off from it rather than popping in from nowhere.
func (p *particle) bud() *particle {
	return newParticle(p.x, p.y, p.z, p.r, p.g, p.b)
}

// spawnBud appends a new particle cloned from a uniformly random existing one.
// With an empty set there is nothing to bud from, so the particle appears in
// place at the given fallback position.
func (e *Engine) spawnBud(fx, fy, fz, fr, fg, fb float64) {
	var np *particle
	if len(e.particles) > 0 {
		np = e.particles[rand.IntN(len(e.particles))].bud()
	} else {
		np = newParticle(fx, fy, fz, fr, fg, fb)
	}
	e.particles = append(e.particles, np)
}
