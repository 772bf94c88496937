package morph

import "image/color"

// Point is an immutable sample in a frame's local coordinate space.
// Z is 0 for points extracted from 2D sources. Color channels are in [0, 255].
type Point struct {
	X, Y, Z float64
	R, G, B uint8
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default particle tint.
var ColorWhite = Color{1, 1, 1, 1}

// DefaultPointColor is the color assigned to imported points that carry no
// color channels of their own.
var DefaultPointColor = [3]uint8{74, 222, 128}

func (c Color) toNRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp(c.R, 0, 1) * 255),
		G: uint8(clamp(c.G, 0, 1) * 255),
		B: uint8(clamp(c.B, 0, 1) * 255),
		A: uint8(clamp(c.A, 0, 1) * 255),
	}
}

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3D vector. Used for particle positions and rotation angles.
type Vec3 struct {
	X, Y, Z float64
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
