package morph

// SampleMode selects the point-extraction strategy used when turning a pixel
// buffer into points.
type SampleMode uint8

const (
	// SampleFill scans the interior of visible regions on a regular grid.
	SampleFill SampleMode = iota
	// SampleBorder traces the contour of visible regions and emits points
	// along it.
	SampleBorder
)

// Config holds every tunable simulation and rendering parameter of an Engine.
// All fields can be changed at runtime via Engine.SetOptions; a zero Config is
// usable but dull; start from DefaultConfig.
type Config struct {
	// AutoRotate animates the rotation angles each tick. When false the
	// angles are held static at RotateX/Y/Z (plus any hover offset).
	AutoRotate bool
	// RotateSpeed scales the animated rotation rate.
	RotateSpeed float64
	// RotateX, RotateY, RotateZ are per-axis rotation angles in radians.
	// In animated mode they act as per-axis rates; in static mode they are
	// the held angles.
	RotateX float64
	RotateY float64
	RotateZ float64

	// ParticleSize is the base radius of a rendered particle in pixels.
	ParticleSize float64
	// DepthFog fades particles that are farther from the viewer.
	DepthFog bool
	// DepthStrength scales how much depth affects particle size.
	DepthStrength float64
	// Perspective pulls particles toward the rotation center based on depth.
	Perspective bool
	// FocalLength is the perspective projection focal distance in pixels.
	FocalLength float64

	// MorphSpeed is the fraction of a morph completed per tick
	// (0.02 means a transition takes roughly 50 ticks).
	MorphSpeed float64

	// BackgroundColor clears the drawing surface each frame.
	BackgroundColor Color
	// Scale maps frame-local point coordinates to screen pixels.
	Scale float64
	// CenterX, CenterY place the rotation center on the drawing surface.
	// Leave both zero to track the surface center automatically.
	CenterX float64
	CenterY float64

	// HoverRotate derives static rotation from the pointer position.
	HoverRotate bool
	// HoverMax is the maximum hover-driven rotation angle in radians.
	HoverMax float64

	// ConnectDistance links particles closer than this (in frame-local
	// units) with wireframe lines. Zero disables connections.
	ConnectDistance float64

	// Mode selects fill or border sampling for image and shape sources.
	Mode SampleMode
	// Density is the sampling grid stride in pixels. Larger is sparser.
	Density int
}

// DefaultConfig returns the configuration used by the examples: slow
// auto-rotation, perspective and fog enabled, ~50-tick morphs.
func DefaultConfig() Config {
	return Config{
		AutoRotate:    true,
		RotateSpeed:   1,
		RotateX:       0.5,
		RotateY:       1,
		ParticleSize:  3,
		DepthFog:      true,
		DepthStrength: 1,
		Perspective:   true,
		FocalLength:   400,
		MorphSpeed:    0.02,
		BackgroundColor: Color{
			R: 0.04, G: 0.04, B: 0.07, A: 1,
		},
		Scale:    1,
		HoverMax: 0.6,
		Density:  6,
	}
}

// Options is a partial Config for runtime updates. Nil fields are left
// untouched by Engine.SetOptions.
type Options struct {
	AutoRotate      *bool
	RotateSpeed     *float64
	RotateX         *float64
	RotateY         *float64
	RotateZ         *float64
	ParticleSize    *float64
	DepthFog        *bool
	DepthStrength   *float64
	Perspective     *bool
	FocalLength     *float64
	MorphSpeed      *float64
	BackgroundColor *Color
	Scale           *float64
	CenterX         *float64
	CenterY         *float64
	HoverRotate     *bool
	HoverMax        *float64
	ConnectDistance *float64
	Mode            *SampleMode
	Density         *int
}

// apply merges non-nil option fields into cfg and reports whether the
// wireframe connection threshold changed.
func (o Options) apply(cfg *Config) (linksChanged bool) {
	if o.AutoRotate != nil {
		cfg.AutoRotate = *o.AutoRotate
	}
	if o.RotateSpeed != nil {
		cfg.RotateSpeed = *o.RotateSpeed
	}
	if o.RotateX != nil {
		cfg.RotateX = *o.RotateX
	}
	if o.RotateY != nil {
		cfg.RotateY = *o.RotateY
	}
	if o.RotateZ != nil {
		cfg.RotateZ = *o.RotateZ
	}
	if o.ParticleSize != nil {
		cfg.ParticleSize = *o.ParticleSize
	}
	if o.DepthFog != nil {
		cfg.DepthFog = *o.DepthFog
	}
	if o.DepthStrength != nil {
		cfg.DepthStrength = *o.DepthStrength
	}
	if o.Perspective != nil {
		cfg.Perspective = *o.Perspective
	}
	if o.FocalLength != nil {
		cfg.FocalLength = *o.FocalLength
	}
	if o.MorphSpeed != nil {
		cfg.MorphSpeed = *o.MorphSpeed
	}
	if o.BackgroundColor != nil {
		cfg.BackgroundColor = *o.BackgroundColor
	}
	if o.Scale != nil {
		cfg.Scale = *o.Scale
	}
	if o.CenterX != nil {
		cfg.CenterX = *o.CenterX
	}
	if o.CenterY != nil {
		cfg.CenterY = *o.CenterY
	}
	if o.HoverRotate != nil {
		cfg.HoverRotate = *o.HoverRotate
	}
	if o.HoverMax != nil {
		cfg.HoverMax = *o.HoverMax
	}
	if o.ConnectDistance != nil && *o.ConnectDistance != cfg.ConnectDistance {
		cfg.ConnectDistance = *o.ConnectDistance
		linksChanged = true
	}
	if o.Mode != nil {
		cfg.Mode = *o.Mode
	}
	if o.Density != nil {
		cfg.Density = *o.Density
	}
	return linksChanged
}
