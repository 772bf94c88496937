package morph

import "testing"

// morphEngine builds a running engine preloaded with the given frames, with
// frame 0 applied to the particle set.
func morphEngine(t *testing.T, frames ...Frame) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.AutoRotate = false
	cfg.RotateX, cfg.RotateY, cfg.RotateZ = 0, 0, 0
	cfg.MorphSpeed = 0.05
	e := NewEngine(0, 0, cfg)
	if err := e.LoadFrames(frames); err != nil {
		t.Fatalf("LoadFrames: %v", err)
	}
	e.Start()
	return e
}

// finishMorph ticks the engine until the morph completes, failing the test if
// it never does.
func finishMorph(t *testing.T, e *Engine) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		e.Update()
		if !e.IsMorphing() {
			return
		}
	}
	t.Fatal("morph did not complete within 1000 ticks")
}

func TestMorphEndpointExactness(t *testing.T) {
	e := morphEngine(t,
		Frame{Name: "A", Points: []Point{{X: 0, Y: 0, Z: 0, R: 1, G: 2, B: 3}}},
		Frame{Name: "B", Points: []Point{{X: 10, Y: 10, Z: 0, R: 4, G: 5, B: 6}}},
	)

	e.GoTo(1)
	if !e.IsMorphing() {
		t.Fatal("GoTo(1) did not start a morph")
	}
	finishMorph(t, e)

	p := e.particles[0]
	if p.x != 10 || p.y != 10 || p.z != 0 {
		t.Errorf("final position = (%v,%v,%v), want exactly (10,10,0)", p.x, p.y, p.z)
	}
	if p.r != 4 || p.g != 5 || p.b != 6 {
		t.Errorf("final color = (%v,%v,%v), want exactly (4,5,6)", p.r, p.g, p.b)
	}
	// Idle invariant: base equals morph target once the morph finishes.
	if p.x != p.targetX || p.r != p.targetR {
		t.Error("base state differs from morph target while idle")
	}
}

func TestMorphShrinksToTargetCount(t *testing.T) {
	e := morphEngine(t,
		Frame{Name: "three", Points: []Point{{X: 0}, {X: 5}, {X: -5}}},
		Frame{Name: "one", Points: []Point{{X: 2, Y: 3, R: 9, G: 8, B: 7}}},
	)
	if e.ParticleCount() != 3 {
		t.Fatalf("initial particles = %d, want 3", e.ParticleCount())
	}

	e.GoTo(1)
	finishMorph(t, e)

	if e.ParticleCount() != 1 {
		t.Fatalf("particles after shrink = %d, want 1", e.ParticleCount())
	}
	p := e.particles[0]
	if p.x != 2 || p.y != 3 || p.r != 9 || p.g != 8 || p.b != 7 {
		t.Errorf("survivor = pos(%v,%v) color(%v,%v,%v), want (2,3) (9,8,7)",
			p.x, p.y, p.r, p.g, p.b)
	}
}

func TestMorphGrowsToTargetCount(t *testing.T) {
	e := morphEngine(t,
		Frame{Name: "two", Points: []Point{{X: 0}, {X: 1}}},
		Frame{Name: "five", Points: []Point{{X: 0}, {X: 1}, {X: 2}, {X: 3}, {X: 4}}},
	)

	e.GoTo(1)
	if e.ParticleCount() != 5 {
		t.Fatalf("particles during grow morph = %d, want 5", e.ParticleCount())
	}
	finishMorph(t, e)

	if e.ParticleCount() != 5 {
		t.Fatalf("particles after grow = %d, want 5", e.ParticleCount())
	}
	for i, p := range e.particles {
		if p.x != float64(i) {
			t.Errorf("particle %d x = %v, want %d", i, p.x, i)
		}
	}
}

func TestMorphToCurrentIndexNoOp(t *testing.T) {
	e := morphEngine(t,
		Frame{Name: "A", Points: []Point{{X: 1, Y: 2}}},
		Frame{Name: "B", Points: []Point{{X: 9}}},
	)

	e.GoTo(0)
	if e.IsMorphing() {
		t.Error("morph to current index should be a no-op")
	}
	if p := e.particles[0]; p.x != 1 || p.y != 2 {
		t.Errorf("particle moved by no-op morph: (%v,%v)", p.x, p.y)
	}
}

func TestMorphOutOfRangeNoOp(t *testing.T) {
	e := morphEngine(t, Frame{Name: "A", Points: []Point{{X: 1}}})
	e.GoTo(-1)
	e.GoTo(5)
	if e.IsMorphing() {
		t.Error("out-of-range morph targets must be rejected silently")
	}
}

func TestMorphRejectedWhileMorphing(t *testing.T) {
	e := morphEngine(t,
		Frame{Name: "A", Points: []Point{{X: 0}}},
		Frame{Name: "B", Points: []Point{{X: 10}}},
		Frame{Name: "C", Points: []Point{{X: 20}}},
	)

	e.GoTo(1)
	e.Update()
	if !e.IsMorphing() {
		t.Fatal("expected morph in progress")
	}

	// A second request is rejected, not queued: the destination stays B.
	e.GoTo(2)
	if e.FrameIndex() != 1 {
		t.Errorf("FrameIndex = %d, want 1 (second morph rejected)", e.FrameIndex())
	}
	finishMorph(t, e)
	if e.particles[0].x != 10 {
		t.Errorf("final x = %v, want 10 from the first morph", e.particles[0].x)
	}
}

func TestFrameIndexReflectsDestinationDuringMorph(t *testing.T) {
	e := morphEngine(t,
		Frame{Name: "A", Points: []Point{{X: 0}}},
		Frame{Name: "B", Points: []Point{{X: 10}}},
	)
	e.GoTo(1)
	if e.FrameIndex() != 1 {
		t.Errorf("FrameIndex during morph = %d, want destination 1", e.FrameIndex())
	}
}

func TestNextPrevWrap(t *testing.T) {
	e := morphEngine(t,
		Frame{Name: "A", Points: []Point{{X: 0}}},
		Frame{Name: "B", Points: []Point{{X: 1}}},
		Frame{Name: "C", Points: []Point{{X: 2}}},
	)

	e.Next()
	finishMorph(t, e)
	if e.FrameIndex() != 1 {
		t.Fatalf("after Next: index = %d, want 1", e.FrameIndex())
	}

	e.Next()
	finishMorph(t, e)
	e.Next()
	finishMorph(t, e)
	if e.FrameIndex() != 0 {
		t.Errorf("Next past the end: index = %d, want wrap to 0", e.FrameIndex())
	}

	e.Prev()
	finishMorph(t, e)
	if e.FrameIndex() != 2 {
		t.Errorf("Prev past the start: index = %d, want wrap to 2", e.FrameIndex())
	}
}

func TestNextNoOpWithSingleFrame(t *testing.T) {
	e := morphEngine(t, Frame{Name: "only", Points: []Point{{X: 1}}})
	e.Next()
	e.Prev()
	if e.IsMorphing() {
		t.Error("Next/Prev with one frame must be no-ops")
	}
}

func TestNextRejectedWhileMorphing(t *testing.T) {
	e := morphEngine(t,
		Frame{Name: "A", Points: []Point{{X: 0}}},
		Frame{Name: "B", Points: []Point{{X: 1}}},
		Frame{Name: "C", Points: []Point{{X: 2}}},
	)
	e.Next()
	e.Update()
	e.Next() // mid-morph: rejected
	finishMorph(t, e)
	if e.FrameIndex() != 1 {
		t.Errorf("index = %d, want 1 (mid-morph Next rejected)", e.FrameIndex())
	}
}

func TestMorphIntoEmptyFrameAbsorbsAll(t *testing.T) {
	e := morphEngine(t,
		Frame{Name: "some", Points: []Point{{X: 0}, {X: 1}}},
		Frame{Name: "none", Points: []Point{}},
	)
	e.GoTo(1)
	finishMorph(t, e)
	if e.ParticleCount() != 0 {
		t.Errorf("particles = %d, want 0 after morphing into an empty frame", e.ParticleCount())
	}
}

func TestDoomedParticlesMergeIntoTargetPoints(t *testing.T) {
	e := morphEngine(t,
		Frame{Name: "four", Points: []Point{{X: 0}, {X: 10}, {X: 20}, {X: 30}}},
		Frame{Name: "two", Points: []Point{{X: 100, Y: 1}, {X: 200, Y: 2}}},
	)
	e.GoTo(1)

	// Excess particles must each head for some real target point.
	for i := 2; i < 4; i++ {
		p := e.particles[i]
		if !p.doomed {
			t.Errorf("particle %d not marked for removal", i)
		}
		if p.targetX != 100 && p.targetX != 200 {
			t.Errorf("particle %d target x = %v, want one of the target frame's points", i, p.targetX)
		}
	}
	finishMorph(t, e)
	if e.ParticleCount() != 2 {
		t.Errorf("particles = %d, want 2", e.ParticleCount())
	}
}
