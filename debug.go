package morph

import "log"

// SetDebugMode enables per-tick state logging to stderr via the standard log
// package. Debug output is throttled to roughly once per second.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

func (e *Engine) debugLog() {
	if e.ticks%60 != 0 {
		return
	}
	state := "idle"
	if e.morphing {
		state = "morphing"
	}
	log.Printf("morph: tick=%d particles=%d links=%d frame=%d/%d state=%s maxDepth=%.1f",
		e.ticks, len(e.particles), len(e.links),
		e.frames.Current(), e.frames.Len(), state, e.maxDepth)
}
