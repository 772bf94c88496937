package morph

import (
	"encoding/json"
	"fmt"
	"time"
)

// FormatVersion is the interchange format version written on export and
// required on import.
const FormatVersion = "1.0"

// FormatError reports a malformed interchange payload: unparseable JSON, a
// missing version marker, or a missing point list. Match it with errors.As.
type FormatError struct {
	msg string
}

func (e *FormatError) Error() string {
	return "morph: " + e.msg
}

func formatErrorf(format string, args ...any) *FormatError {
	return &FormatError{msg: "invalid frame data: " + fmt.Sprintf(format, args...)}
}

// DecodeError reports an image or vector-shape source that failed to parse.
// The engine's particle state is left unchanged when one is returned.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return "morph: " + e.Op + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// framePayload is the wire form of a single frame.
type framePayload struct {
	Name       string         `json:"name"`
	PointCount int            `json:"pointCount"`
	Points     []pointPayload `json:"points"`
}

// pointPayload is the wire form of a point. Z and the color channels are
// optional on import: z defaults to 0, colors to DefaultPointColor.
type pointPayload struct {
	X float64  `json:"x"`
	Y float64  `json:"y"`
	Z *float64 `json:"z,omitempty"`
	R *uint8   `json:"r,omitempty"`
	G *uint8   `json:"g,omitempty"`
	B *uint8   `json:"b,omitempty"`
}

type singleDocument struct {
	Version    string       `json:"version"`
	ExportDate string       `json:"exportDate"`
	Frame      framePayload `json:"frame"`
}

type multiDocument struct {
	Version    string         `json:"version"`
	ExportDate string         `json:"exportDate"`
	FrameCount int            `json:"frameCount"`
	Frames     []framePayload `json:"frames"`
}

// ExportCurrent serializes the frame at the cursor in the single-frame
// interchange form. Returns a FormatError if the store is empty.
func (s *FrameStore) ExportCurrent() ([]byte, error) {
	if len(s.frames) == 0 {
		return nil, formatErrorf("no frame to export")
	}
	doc := singleDocument{
		Version:    FormatVersion,
		ExportDate: time.Now().UTC().Format(time.RFC3339),
		Frame:      toPayload(s.frames[s.current]),
	}
	return json.MarshalIndent(doc, "", "  ")
}

// ExportAll serializes every stored frame in the multi-frame interchange form.
func (s *FrameStore) ExportAll() ([]byte, error) {
	doc := multiDocument{
		Version:    FormatVersion,
		ExportDate: time.Now().UTC().Format(time.RFC3339),
		FrameCount: len(s.frames),
		Frames:     make([]framePayload, len(s.frames)),
	}
	for i, f := range s.frames {
		doc.Frames[i] = toPayload(f)
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Import parses a single-frame or multi-frame interchange payload and appends
// the decoded frames to the store, leaving existing frames in place. On error
// the store is unchanged. The cursor moves to the last appended frame.
func (s *FrameStore) Import(data []byte) error {
	frames, err := ParseFrames(data)
	if err != nil {
		return err
	}
	for _, f := range frames {
		s.Append(f)
	}
	return nil
}

// ParseFrames decodes an interchange payload into frames without touching any
// store. Both document shapes are accepted; the version marker and a point
// list per frame are mandatory.
func ParseFrames(data []byte) ([]Frame, error) {
	// Probe top-level keys to detect the document shape.
	var probe struct {
		Version *string         `json:"version"`
		Frame   json.RawMessage `json:"frame"`
		Frames  json.RawMessage `json:"frames"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, formatErrorf("%v", err)
	}
	if probe.Version == nil {
		return nil, formatErrorf("missing \"version\"")
	}

	var payloads []framePayload
	switch {
	case probe.Frames != nil:
		if err := json.Unmarshal(probe.Frames, &payloads); err != nil {
			return nil, formatErrorf("bad \"frames\": %v", err)
		}
	case probe.Frame != nil:
		var p framePayload
		if err := json.Unmarshal(probe.Frame, &p); err != nil {
			return nil, formatErrorf("bad \"frame\": %v", err)
		}
		payloads = []framePayload{p}
	default:
		return nil, formatErrorf("neither \"frame\" nor \"frames\" present")
	}

	frames := make([]Frame, 0, len(payloads))
	for i, p := range payloads {
		if p.Points == nil {
			return nil, formatErrorf("frame %d has no point list", i)
		}
		frames = append(frames, fromPayload(p))
	}
	return frames, nil
}

func toPayload(f Frame) framePayload {
	p := framePayload{
		Name:       f.Name,
		PointCount: len(f.Points),
		Points:     make([]pointPayload, len(f.Points)),
	}
	for i, pt := range f.Points {
		z, r, g, b := pt.Z, pt.R, pt.G, pt.B
		p.Points[i] = pointPayload{
			X: pt.X, Y: pt.Y, Z: &z,
			R: &r, G: &g, B: &b,
		}
	}
	return p
}

// fromPayload normalizes a wire frame into a fully-populated Frame. All
// optional-field handling happens here; nothing downstream re-checks for
// missing fields.
func fromPayload(p framePayload) Frame {
	points := make([]Point, len(p.Points))
	for i, wp := range p.Points {
		pt := Point{
			X: wp.X,
			Y: wp.Y,
			R: DefaultPointColor[0],
			G: DefaultPointColor[1],
			B: DefaultPointColor[2],
		}
		if wp.Z != nil {
			pt.Z = *wp.Z
		}
		if wp.R != nil {
			pt.R = *wp.R
		}
		if wp.G != nil {
			pt.G = *wp.G
		}
		if wp.B != nil {
			pt.B = *wp.B
		}
		points[i] = pt
	}
	return Frame{Name: p.Name, Points: points}
}
