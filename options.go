package arcform

// Config holds the enumerated options an external collaborator may
// configure the core with (spec.md §6). object_size_px and
// line_weight_px are display-only: no algorithm in this package reads
// them, but they round-trip through Config so a host can keep all
// tunables in one place.
type Config struct {
	fitTolerancePx    float64
	coarseErrorWeight float64
	objectSizePx      float64
	lineWeightPx      float64
}

// defaultConfig returns the package's baseline configuration.
func defaultConfig() Config {
	return Config{
		fitTolerancePx:    2.0,
		coarseErrorWeight: 3.0,
		objectSizePx:      24.0,
		lineWeightPx:      2.0,
	}
}

// FitTolerancePx is the fine error tolerance (ε_f) passed to FitSketch.
func (c Config) FitTolerancePx() float64 { return c.fitTolerancePx }

// CoarseTolerancePx derives the coarse tolerance (ε_c) as
// fit_tolerance_px * coarse_error_weight, per spec.md §6.
func (c Config) CoarseTolerancePx() float64 { return c.fitTolerancePx * c.coarseErrorWeight }

// ObjectSizePx is display-only and never read by this package.
func (c Config) ObjectSizePx() float64 { return c.objectSizePx }

// LineWeightPx is display-only and never read by this package.
func (c Config) LineWeightPx() float64 { return c.lineWeightPx }

// FitOption configures a Config during creation.
//
// Example:
//
//	cfg := arcform.NewConfig(
//	    arcform.WithFitTolerancePx(1.5),
//	    arcform.WithCoarseErrorWeight(4),
//	)
type FitOption func(*Config)

// NewConfig builds a Config from the package defaults plus any options.
func NewConfig(opts ...FitOption) Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithFitTolerancePx sets the fine error tolerance (ε_f).
func WithFitTolerancePx(px float64) FitOption {
	return func(c *Config) { c.fitTolerancePx = px }
}

// WithCoarseErrorWeight sets the multiplier used to derive the coarse
// tolerance (ε_c) from the fine tolerance.
func WithCoarseErrorWeight(weight float64) FitOption {
	return func(c *Config) { c.coarseErrorWeight = weight }
}

// WithObjectSizePx sets the display-only object size.
func WithObjectSizePx(px float64) FitOption {
	return func(c *Config) { c.objectSizePx = px }
}

// WithLineWeightPx sets the display-only stroke line weight.
func WithLineWeightPx(px float64) FitOption {
	return func(c *Config) { c.lineWeightPx = px }
}
