package wmf

// DefaultDPI is the device resolution used when none is given.
const DefaultDPI = 96

// Option configures Replay and MeasureBounds.
// Use functional options to customize the device mapping.
//
// Example:
//
//	// Default: 96 DPI, no extra scale
//	err := wmf.Replay(mf, surface)
//
//	// Print resolution, half size
//	err := wmf.Replay(mf, surface, wmf.WithDPI(300), wmf.WithScale(0.5))
type Option func(*Config)

// Config is the resolved set of options.
type Config struct {
	// DPI is the device resolution in pixels per inch.
	DPI float64

	// Scale is an extra factor applied on top of the DPI mapping.
	Scale float64

	// OffsetX and OffsetY shift the picture, in metafile units.
	OffsetX, OffsetY float64
}

// defaultConfig returns the default replay configuration.
func defaultConfig() Config {
	return Config{
		DPI:   DefaultDPI,
		Scale: 1,
	}
}

// NewConfig applies opts to the default configuration.
func NewConfig(opts ...Option) Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithDPI sets the device resolution. Non-positive values are ignored.
func WithDPI(dpi float64) Option {
	return func(c *Config) {
		if dpi > 0 {
			c.DPI = dpi
		}
	}
}

// WithScale sets an extra scale factor. Non-positive values are ignored.
func WithScale(scale float64) Option {
	return func(c *Config) {
		if scale > 0 {
			c.Scale = scale
		}
	}
}

// WithOffset shifts the picture by x, y metafile units before scaling.
func WithOffset(x, y float64) Option {
	return func(c *Config) {
		c.OffsetX, c.OffsetY = x, y
	}
}
