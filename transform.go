package morph

import (
	"math"
	"sort"

	"github.com/tanema/gween/ease"
)

// animAngleScale converts accumulated animation ticks into radians:
// angle = configured × ticks × speed × animAngleScale.
const animAngleScale = 0.01

// rotateX rotates v about the X axis by a radians.
func rotateX(v Vec3, a float64) Vec3 {
	sin, cos := math.Sincos(a)
	y := v.Y*cos - v.Z*sin
	z := v.Y*sin + v.Z*cos
	v.Y, v.Z = y, z
	return v
}

// rotateY rotates v about the Y axis by a radians.
func rotateY(v Vec3, a float64) Vec3 {
	sin, cos := math.Sincos(a)
	x := v.X*cos + v.Z*sin
	z := -v.X*sin + v.Z*cos
	v.X, v.Z = x, z
	return v
}

// rotateZ rotates v about the Z axis by a radians.
func rotateZ(v Vec3, a float64) Vec3 {
	sin, cos := math.Sincos(a)
	x := v.X*cos - v.Y*sin
	y := v.X*sin + v.Y*cos
	v.X, v.Y = x, y
	return v
}

// rotate applies the three axis rotations in X, Y, Z order.
func rotate(v Vec3, ax, ay, az float64) Vec3 {
	if ax != 0 {
		v = rotateX(v, ax)
	}
	if ay != 0 {
		v = rotateY(v, ay)
	}
	if az != 0 {
		v = rotateZ(v, az)
	}
	return v
}

// angles returns the rotation angles for this tick. Animated mode grows them
// monotonically from the tick counter; static mode holds the configured
// values, optionally offset by the pointer position when hover rotation is on.
func (e *Engine) angles() (ax, ay, az float64) {
	if e.cfg.AutoRotate {
		k := e.animTicks * e.cfg.RotateSpeed * animAngleScale
		return e.cfg.RotateX * k, e.cfg.RotateY * k, e.cfg.RotateZ * k
	}
	ax, ay, az = e.cfg.RotateX, e.cfg.RotateY, e.cfg.RotateZ
	if e.cfg.HoverRotate && e.pointer != nil {
		if px, py, ok := e.pointer.Position(); ok {
			ax += clamp((py-e.centerY)/(e.height/2), -1, 1) * e.cfg.HoverMax
			ay += clamp((px-e.centerX)/(e.width/2), -1, 1) * e.cfg.HoverMax
		}
	}
	return ax, ay, az
}

// smoothingFactor derives the per-tick exponential smoothing rate for display
// attributes from the current configuration. Faster rotation and stronger
// depth effects need quicker tracking; the result stays within [0.02, 0.6].
func (e *Engine) smoothingFactor() float64 {
	s := 0.06 + 0.1*e.cfg.DepthStrength + 0.25*e.cfg.RotateSpeed
	if e.cfg.DepthFog {
		s += 0.05
	}
	return clamp(s, 0.02, 0.6)
}

// updateTransforms rotates every particle about the center, projects it to
// screen space, and advances the smoothed display attributes toward their
// depth-shaded targets.
func (e *Engine) updateTransforms() {
	ax, ay, az := e.angles()
	sinX, cosX := math.Sincos(ax)
	sinY, cosY := math.Sincos(ay)
	sinZ, cosZ := math.Sincos(az)

	// Floor of 1 keeps the depth normalization finite on flat layouts.
	maxAbs := 1.0
	for _, p := range e.particles {
		x := p.x - e.centerX
		y := p.y - e.centerY
		z := p.z
		if ax != 0 {
			y, z = y*cosX-z*sinX, y*sinX+z*cosX
		}
		if ay != 0 {
			x, z = x*cosY+z*sinY, -x*sinY+z*cosY
		}
		if az != 0 {
			x, y = x*cosZ-y*sinZ, x*sinZ+y*cosZ
		}
		p.rotX, p.rotY, p.depth = x, y, z
		if a := math.Abs(z); a > maxAbs {
			maxAbs = a
		}
	}
	e.maxDepth = maxAbs

	smooth := e.smoothingFactor()
	for _, p := range e.particles {
		scale := 1.0
		if e.cfg.Perspective {
			d := e.cfg.FocalLength - p.depth
			if d < 1 {
				d = 1
			}
			scale = e.cfg.FocalLength / d
		}
		p.screenX = e.centerX + p.rotX*scale
		p.screenY = e.centerY + p.rotY*scale

		alphaTarget := 1.0
		if e.cfg.DepthFog {
			nd := (p.depth + maxAbs) / (2 * maxAbs)
			alphaTarget = clamp(0.15+float64(ease.InQuad(float32(nd), 0, 1, 1))*0.85, 0.05, 1)
		}

		nsd := p.depth / maxAbs
		sizeTarget := e.cfg.ParticleSize * (1 + nsd*e.cfg.DepthStrength*0.3) * scale
		if sizeTarget < 0 {
			sizeTarget = 0
		}

		p.size += (sizeTarget - p.size) * smooth
		p.alpha += (alphaTarget - p.alpha) * smooth
		p.dispR += (p.r - p.dispR) * smooth
		p.dispG += (p.g - p.dispG) * smooth
		p.dispB += (p.b - p.dispB) * smooth
	}
}

// sortDrawOrder rebuilds the draw projection ordered by ascending depth so
// farther particles paint first. Only the projection is sorted; the canonical
// slice keeps insertion order, and morph correspondence lives on each
// particle, so sorting is safe mid-morph.
func (e *Engine) sortDrawOrder() {
	e.drawOrder = e.drawOrder[:0]
	e.drawOrder = append(e.drawOrder, e.particles...)
	sort.Slice(e.drawOrder, func(i, j int) bool {
		return e.drawOrder[i].depth < e.drawOrder[j].depth
	})
}
