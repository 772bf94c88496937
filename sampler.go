package morph

import (
	"image"
	"io"
	"math"
	"sort"

	"github.com/disintegration/imaging"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// maxProcessDim caps the pixel dimensions of a sampled source. Larger sources
// are downscaled (aspect preserved) before sampling; the cost is quadratic in
// the dimension and the extra resolution adds nothing at particle densities.
const maxProcessDim = 480

// Visibility thresholds: a pixel contributes points only when both its
// luminance and alpha clear these.
const (
	lumThreshold   = 16
	alphaThreshold = 32
)

// DecodeImage reads and decodes a PNG, JPEG, or GIF image from r.
// Failures are reported as a *DecodeError.
func DecodeImage(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, &DecodeError{Op: "decode image", Err: err}
	}
	return img, nil
}

// SamplePoints extracts colored points from an image using the given mode and
// grid density. Coordinates are reported in the processing pixel space, which
// may be downscaled from the source; callers rescale as needed. A source with
// no visible pixels yields an empty slice, never an error.
func SamplePoints(src image.Image, mode SampleMode, density int) []Point {
	if density < 1 {
		density = 1
	}
	b := src.Bounds()
	if b.Dx() > maxProcessDim || b.Dy() > maxProcessDim {
		src = imaging.Fit(src, maxProcessDim, maxProcessDim, imaging.Box)
	}
	img := imaging.Clone(src)
	if mode == SampleBorder {
		return sampleBorder(img, density)
	}
	return sampleFill(img, density)
}

// visible reports whether the pixel at (x, y) clears both thresholds.
func visible(img *image.NRGBA, x, y int) bool {
	i := y*img.Stride + x*4
	r := int(img.Pix[i])
	g := int(img.Pix[i+1])
	b := int(img.Pix[i+2])
	a := img.Pix[i+3]
	// Integer Rec. 601 luma, scaled by 1000.
	lum := 299*r + 587*g + 114*b
	return lum > lumThreshold*1000 && a > alphaThreshold
}

// pointAt builds a Point from the pixel at (x, y).
func pointAt(img *image.NRGBA, x, y int) Point {
	i := y*img.Stride + x*4
	return Point{
		X: float64(x),
		Y: float64(y),
		R: img.Pix[i],
		G: img.Pix[i+1],
		B: img.Pix[i+2],
	}
}

// sampleFill scans the pixel buffer on a regular grid with the given stride
// and emits a point for every visible grid cell.
func sampleFill(img *image.NRGBA, stride int) []Point {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	var points []Point
	for y := 0; y < h; y += stride {
		for x := 0; x < w; x += stride {
			if visible(img, x, y) {
				points = append(points, pointAt(img, x, y))
			}
		}
	}
	return points
}

// sampleBorder traces an approximate contour: it finds pixels that are
// visible with at least one invisible 4-neighbor, orders them by angle around
// their centroid, then emits samples at evenly spaced indices into that
// ordering. Index spacing only approximates arc-length spacing; exported
// frames depend on the resulting layout, so keep it.
func sampleBorder(img *image.NRGBA, density int) []Point {
	w, h := img.Rect.Dx(), img.Rect.Dy()

	vis := make([]bool, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			vis[y*w+x] = visible(img, x, y)
		}
	}

	// A pixel on the image edge borders the outside, which is not visible.
	var border []image.Point
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !vis[y*w+x] {
				continue
			}
			if x == 0 || x == w-1 || y == 0 || y == h-1 ||
				!vis[y*w+x-1] || !vis[y*w+x+1] ||
				!vis[(y-1)*w+x] || !vis[(y+1)*w+x] {
				border = append(border, image.Point{X: x, Y: y})
			}
		}
	}
	if len(border) == 0 {
		return nil
	}

	var cx, cy float64
	for _, p := range border {
		cx += float64(p.X)
		cy += float64(p.Y)
	}
	cx /= float64(len(border))
	cy /= float64(len(border))

	sort.Slice(border, func(i, j int) bool {
		ai := math.Atan2(float64(border[i].Y)-cy, float64(border[i].X)-cx)
		aj := math.Atan2(float64(border[j].Y)-cy, float64(border[j].X)-cx)
		return ai < aj
	})

	perimeter := 0.0
	for i, p := range border {
		q := border[(i+1)%len(border)]
		perimeter += math.Hypot(float64(q.X-p.X), float64(q.Y-p.Y))
	}
	if perimeter < 1 {
		perimeter = 1
	}

	count := int(perimeter / float64(density*3))
	if count < 10 {
		count = 10
	}

	points := make([]Point, 0, count)
	for i := 0; i < count; i++ {
		p := border[i*len(border)/count]
		points = append(points, pointAt(img, p.X, p.Y))
	}
	return points
}

// normalizePoints recenters points so their bounding box is centered on the
// origin. Frames store origin-centered local coordinates; the engine maps
// them onto the surface through Scale and the rotation center.
func normalizePoints(pts []Point) []Point {
	if len(pts) == 0 {
		return nil
	}
	minX, maxX := pts[0].X, pts[0].X
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	cx := (minX + maxX) / 2
	cy := (minY + maxY) / 2
	out := make([]Point, len(pts))
	for i, p := range pts {
		p.X -= cx
		p.Y -= cy
		out[i] = p
	}
	return out
}
