package morph

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestClamp(t *testing.T) {
	if got := clamp(-0.5, 0, 1); got != 0 {
		t.Errorf("clamp(-0.5) = %v, want 0", got)
	}
	if got := clamp(1.5, 0, 1); got != 1 {
		t.Errorf("clamp(1.5) = %v, want 1", got)
	}
	if got := clamp(0.25, 0, 1); got != 0.25 {
		t.Errorf("clamp(0.25) = %v, want 0.25", got)
	}
}

func TestLerp(t *testing.T) {
	assertNear(t, "lerp(0,10,0)", lerp(0, 10, 0), 0)
	assertNear(t, "lerp(0,10,1)", lerp(0, 10, 1), 10)
	assertNear(t, "lerp(0,10,0.5)", lerp(0, 10, 0.5), 5)
	assertNear(t, "lerp(-4,4,0.75)", lerp(-4, 4, 0.75), 2)
}

func TestColorToNRGBA(t *testing.T) {
	c := Color{R: 1, G: 0, B: 0.5, A: 1}.toNRGBA()
	if c.R != 255 || c.G != 0 || c.A != 255 {
		t.Errorf("toNRGBA = %v, want R=255 G=0 A=255", c)
	}
	if c.B != 127 {
		t.Errorf("B = %d, want 127", c.B)
	}

	// Out-of-range components clamp instead of wrapping.
	over := Color{R: 2, G: -1, B: 0, A: 1}.toNRGBA()
	if over.R != 255 || over.G != 0 {
		t.Errorf("clamped toNRGBA = %v, want R=255 G=0", over)
	}
}
