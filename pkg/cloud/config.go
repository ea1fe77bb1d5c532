package cloud

// Default layout parameters. These are the single source of truth shared by
// the CLI, the HTTP API, and the scheduler.
const (
	// DefaultMinSpacing is the minimum gap between any two placed boxes.
	DefaultMinSpacing = 8.0

	// DefaultMinTapTarget is the minimum width/height of an item's box,
	// keeping every word a comfortable touch target.
	DefaultMinTapTarget = 48.0

	// DefaultFontMin and DefaultFontMax bound the value→font-size mapping.
	DefaultFontMin = 16.0
	DefaultFontMax = 40.0

	// DefaultMaxIterations is the force-relaxation iteration budget.
	DefaultMaxIterations = 100

	// DefaultMaxRadius is the spiral search radius budget.
	DefaultMaxRadius = 500.0

	// DefaultAngleIncrement is the spiral step in radians.
	DefaultAngleIncrement = 0.3

	// DefaultRadiusIncrement scales spiral radius growth per step.
	DefaultRadiusIncrement = 1.5

	// DefaultSeed is the default random seed for the force strategy's
	// initial jitter, kept fixed for reproducible layouts.
	DefaultSeed = uint64(42)
)

// FontRange bounds the font sizes the sizing stage may assign.
type FontRange struct {
	Min float64 `json:"min" bson:"min"`
	Max float64 `json:"max" bson:"max"`
}

// Config carries all tunables for one layout pass. The zero value is not
// usable; start from DefaultConfig and override fields as needed.
type Config struct {
	MinSpacing   float64   `json:"min_spacing" bson:"min_spacing"`
	MinTapTarget float64   `json:"min_tap_target" bson:"min_tap_target"`
	FontSize     FontRange `json:"font_size" bson:"font_size"`

	// Force strategy.
	MaxIterations int    `json:"max_iterations" bson:"max_iterations"`
	Seed          uint64 `json:"seed" bson:"seed"`

	// Spiral strategy.
	MaxRadius       float64 `json:"max_radius" bson:"max_radius"`
	AngleIncrement  float64 `json:"angle_increment" bson:"angle_increment"`
	RadiusIncrement float64 `json:"radius_increment" bson:"radius_increment"`
}

// DefaultConfig returns the standard layout configuration.
func DefaultConfig() Config {
	return Config{
		MinSpacing:      DefaultMinSpacing,
		MinTapTarget:    DefaultMinTapTarget,
		FontSize:        FontRange{Min: DefaultFontMin, Max: DefaultFontMax},
		MaxIterations:   DefaultMaxIterations,
		Seed:            DefaultSeed,
		MaxRadius:       DefaultMaxRadius,
		AngleIncrement:  DefaultAngleIncrement,
		RadiusIncrement: DefaultRadiusIncrement,
	}
}

// Normalize fills zero-valued fields with defaults so partially specified
// configs (typical for JSON API requests) behave predictably.
func (c Config) Normalize() Config {
	d := DefaultConfig()
	if c.MinSpacing == 0 {
		c.MinSpacing = d.MinSpacing
	}
	if c.MinTapTarget == 0 {
		c.MinTapTarget = d.MinTapTarget
	}
	if c.FontSize.Min == 0 {
		c.FontSize.Min = d.FontSize.Min
	}
	if c.FontSize.Max == 0 {
		c.FontSize.Max = d.FontSize.Max
	}
	if c.MaxIterations == 0 {
		c.MaxIterations = d.MaxIterations
	}
	if c.Seed == 0 {
		c.Seed = d.Seed
	}
	if c.MaxRadius == 0 {
		c.MaxRadius = d.MaxRadius
	}
	if c.AngleIncrement == 0 {
		c.AngleIncrement = d.AngleIncrement
	}
	if c.RadiusIncrement == 0 {
		c.RadiusIncrement = d.RadiusIncrement
	}
	return c
}
