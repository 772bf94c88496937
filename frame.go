package morph

import "fmt"

// Frame is a named, ordered set of colored 3D points representing one complete
// particle layout. Frames are read-only once created; morphing reads them,
// never writes them.
type Frame struct {
	Name   string
	Points []Point
}

// FrameStore is an ordered collection of frames plus a cursor identifying the
// "current" frame. It never touches the live particle set; applying a frame
// goes through the engine's load and morph calls.
type FrameStore struct {
	frames  []Frame
	current int
	nextNum int // monotonic counter for sequential frame names
}

// NewFrameStore creates an empty store with the cursor at 0.
func NewFrameStore() *FrameStore {
	return &FrameStore{nextNum: 1}
}

// Len returns the number of stored frames.
func (s *FrameStore) Len() int {
	return len(s.frames)
}

// Current returns the cursor index. It is 0 for an empty store.
func (s *FrameStore) Current() int {
	return s.current
}

// At returns the frame at index i. The returned frame's point slice must not
// be mutated.
func (s *FrameStore) At(i int) Frame {
	return s.frames[i]
}

// AddFrame appends a new frame with a sequential name ("Frame 1", "Frame 2",
// ...) and moves the cursor to it. Returns the new frame's index.
func (s *FrameStore) AddFrame(points []Point) int {
	name := fmt.Sprintf("Frame %d", s.nextNum)
	s.nextNum++
	return s.Append(Frame{Name: name, Points: points})
}

// Append appends an already-named frame and moves the cursor to it.
// Returns the new frame's index.
func (s *FrameStore) Append(f Frame) int {
	s.frames = append(s.frames, f)
	s.current = len(s.frames) - 1
	return s.current
}

// RemoveFrame deletes the frame at index i. Out-of-range indices are ignored.
// If the cursor ends up past the last frame it is clamped to the last valid
// index, or 0 when the store becomes empty.
func (s *FrameStore) RemoveFrame(i int) {
	if i < 0 || i >= len(s.frames) {
		return
	}
	s.frames = append(s.frames[:i], s.frames[i+1:]...)
	if s.current >= len(s.frames) {
		s.current = len(s.frames) - 1
		if s.current < 0 {
			s.current = 0
		}
	}
}

// Clear empties the store and resets the cursor and name counter.
func (s *FrameStore) Clear() {
	s.frames = nil
	s.current = 0
	s.nextNum = 1
}

// setCurrent moves the cursor without validation; callers bounds-check.
func (s *FrameStore) setCurrent(i int) {
	s.current = i
}
