package morph

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
)

// Shape is a primitive vector-shape description. Shapes are rasterized onto a
// transparent pixel buffer and then sampled exactly like decoded images, so a
// shape source and an image source go through the same extraction pipeline.
//
// Fill/Stroke colors use components in [0, 1]; an alpha of 0 renders nothing,
// so remember to set A.
type Shape interface {
	draw(dc *gg.Context)
}

// Circle is a filled circle centered at (X, Y).
type Circle struct {
	X, Y, R float64
	Fill    Color
}

func (s Circle) draw(dc *gg.Context) {
	dc.SetRGBA(s.Fill.R, s.Fill.G, s.Fill.B, s.Fill.A)
	dc.DrawCircle(s.X, s.Y, s.R)
	dc.Fill()
}

// Rect is a filled axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
	Fill       Color
}

func (s Rect) draw(dc *gg.Context) {
	dc.SetRGBA(s.Fill.R, s.Fill.G, s.Fill.B, s.Fill.A)
	dc.DrawRectangle(s.X, s.Y, s.W, s.H)
	dc.Fill()
}

// Ellipse is a filled axis-aligned ellipse centered at (X, Y).
type Ellipse struct {
	X, Y, RX, RY float64
	Fill         Color
}

func (s Ellipse) draw(dc *gg.Context) {
	dc.SetRGBA(s.Fill.R, s.Fill.G, s.Fill.B, s.Fill.A)
	dc.DrawEllipse(s.X, s.Y, s.RX, s.RY)
	dc.Fill()
}

// Polygon is a filled closed polygon.
type Polygon struct {
	Points []Vec2
	Fill   Color
}

func (s Polygon) draw(dc *gg.Context) {
	if len(s.Points) < 3 {
		return
	}
	dc.SetRGBA(s.Fill.R, s.Fill.G, s.Fill.B, s.Fill.A)
	dc.MoveTo(s.Points[0].X, s.Points[0].Y)
	for _, p := range s.Points[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()
	dc.Fill()
}

// Path is an open stroked polyline.
type Path struct {
	Points []Vec2
	Width  float64
	Stroke Color
}

func (s Path) draw(dc *gg.Context) {
	if len(s.Points) < 2 {
		return
	}
	dc.SetRGBA(s.Stroke.R, s.Stroke.G, s.Stroke.B, s.Stroke.A)
	w := s.Width
	if w <= 0 {
		w = 1
	}
	dc.SetLineWidth(w)
	dc.MoveTo(s.Points[0].X, s.Points[0].Y)
	for _, p := range s.Points[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.Stroke()
}

// RasterizeShapes renders the shapes onto a transparent w×h pixel buffer.
// An invalid buffer size is reported as a *DecodeError.
func RasterizeShapes(shapes []Shape, w, h int) (image.Image, error) {
	if w <= 0 || h <= 0 {
		return nil, &DecodeError{
			Op:  "rasterize shapes",
			Err: fmt.Errorf("invalid buffer size %dx%d", w, h),
		}
	}
	dc := gg.NewContext(w, h)
	for _, s := range shapes {
		s.draw(dc)
	}
	return dc.Image(), nil
}

// SampleShapes rasterizes the shapes and extracts points from the result in
// one step.
func SampleShapes(shapes []Shape, w, h int, mode SampleMode, density int) ([]Point, error) {
	img, err := RasterizeShapes(shapes, w, h)
	if err != nil {
		return nil, err
	}
	return SamplePoints(img, mode, density), nil
}
