// Package config provides YAML-based configuration loading for the tag
// engine and the scenes that drive it.
package config

import (
	"errors"
	"fmt"
)

// EngineConfig contains every tunable of the collision-driven animation engine.
type EngineConfig struct {
	// ReferenceFPS converts frame time into progress: progress advances by
	// rate * dt * ReferenceFPS, so rates are "per frame at ReferenceFPS".
	ReferenceFPS float64 `yaml:"reference_fps"`

	// CollideWithSettled makes flights test against every tag in the engine.
	// When false only tags that are still flying or shifting are considered.
	CollideWithSettled bool `yaml:"collide_with_settled"`

	Flight FlightConfig `yaml:"flight"`
	Shift  ShiftConfig  `yaml:"shift"`
	Resize ResizeConfig `yaml:"resize"`
	Impact ImpactConfig `yaml:"impact"`
	Wobble WobbleConfig `yaml:"wobble"`
}

// FlightConfig controls the fly-in motion.
type FlightConfig struct {
	Rate           float64 `yaml:"rate"`            // Progress per reference frame
	CollisionStart float64 `yaml:"collision_start"` // Progress after which collisions are tested
	Backoff        float64 `yaml:"backoff"`         // Fraction of the last step the target backs off on impact
}

// ShiftConfig controls the displacement motion after an impact.
type ShiftConfig struct {
	Rate       float64 `yaml:"rate"`
	Correction float64 `yaml:"correction"` // Multiplier on the minimum axis overlap when pushing out
}

// ResizeConfig controls the size interpolation after an impact.
type ResizeConfig struct {
	Rate float64 `yaml:"rate"`
}

// ImpactConfig defines how a collision turns into shrink and push.
type ImpactConfig struct {
	EnergyBase       float64       `yaml:"energy_base"`       // Energy per unit of incoming size
	Multiplier       float64       `yaml:"multiplier"`        // Energy multiplier for regular tags
	ForcedMultiplier float64       `yaml:"forced_multiplier"` // Energy multiplier for tags with forced collisions
	MaxSizeRatio     float64       `yaml:"max_size_ratio"`    // Cap on incoming/target size ratio
	ShrinkPerEnergy  float64       `yaml:"shrink_per_energy"`
	MinShrink        float64       `yaml:"min_shrink"`
	PushBase         float64       `yaml:"push_base"`
	PushPerEnergy    float64       `yaml:"push_per_energy"`
	Jitter           float64       `yaml:"jitter"` // Per-axis random offset added to push direction
	Cascade          CascadeConfig `yaml:"cascade"`
}

// CascadeConfig defines the dampened follow-on response to displaced tags.
type CascadeConfig struct {
	Threshold       float64 `yaml:"threshold"` // Energy a hit needs to cascade further
	Decay           float64 `yaml:"decay"`     // Energy carried into the next level
	Margin          float64 `yaml:"margin"`    // Box expansion when probing the projected move
	MaxDepth        int     `yaml:"max_depth"` // Levels beyond the primary impact, 0 disables
	ShrinkPerEnergy float64 `yaml:"shrink_per_energy"`
	MinShrink       float64 `yaml:"min_shrink"`
	PushPerEnergy   float64 `yaml:"push_per_energy"`
	Jitter          float64 `yaml:"jitter"`
}

// WobbleConfig defines the idle jitter applied to settled tags.
type WobbleConfig struct {
	Amplitude  float64 `yaml:"amplitude"`
	PhaseScale float64 `yaml:"phase_scale"` // Divisor turning the label hash into a phase offset
}

// Validate reports configuration values the engine cannot run with.
func (c EngineConfig) Validate() error {
	var errs []error
	if c.ReferenceFPS <= 0 {
		errs = append(errs, fmt.Errorf("reference_fps must be positive, got %v", c.ReferenceFPS))
	}
	if c.Flight.Rate <= 0 {
		errs = append(errs, fmt.Errorf("flight.rate must be positive, got %v", c.Flight.Rate))
	}
	if c.Shift.Rate <= 0 {
		errs = append(errs, fmt.Errorf("shift.rate must be positive, got %v", c.Shift.Rate))
	}
	if c.Resize.Rate <= 0 {
		errs = append(errs, fmt.Errorf("resize.rate must be positive, got %v", c.Resize.Rate))
	}
	if c.Impact.MinShrink <= 0 || c.Impact.MinShrink > 1 {
		errs = append(errs, fmt.Errorf("impact.min_shrink must be in (0, 1], got %v", c.Impact.MinShrink))
	}
	if c.Impact.Cascade.MinShrink <= 0 || c.Impact.Cascade.MinShrink > 1 {
		errs = append(errs, fmt.Errorf("impact.cascade.min_shrink must be in (0, 1], got %v", c.Impact.Cascade.MinShrink))
	}
	if c.Impact.Cascade.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("impact.cascade.max_depth must not be negative, got %d", c.Impact.Cascade.MaxDepth))
	}
	if c.Wobble.PhaseScale <= 0 {
		errs = append(errs, fmt.Errorf("wobble.phase_scale must be positive, got %v", c.Wobble.PhaseScale))
	}
	return errors.Join(errs...)
}

// SceneConfig contains the layout and spawning parameters shared by scenes.
type SceneConfig struct {
	Field  FieldConfig `yaml:"field"`
	Tags   TagsConfig  `yaml:"tags"`
	Spawn  SpawnConfig `yaml:"spawn"`
	Labels []string    `yaml:"labels"`
}

// FieldConfig is the world-space volume tags settle in, centered on the origin.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Depth  float64 `yaml:"depth"`
}

// TagsConfig defines tag population and geometry.
type TagsConfig struct {
	Count      int     `yaml:"count"`       // Population cap
	MinSize    float64 `yaml:"min_size"`    // Smallest spawn size
	MaxSize    float64 `yaml:"max_size"`    // Largest spawn size
	CharWidth  float64 `yaml:"char_width"`  // World width of one label character at size 1
	LineHeight float64 `yaml:"line_height"` // World height of a label at size 1
	Thickness  float64 `yaml:"thickness"`   // World depth of a label at size 1
}

// SpawnConfig defines how new tags enter the field.
type SpawnConfig struct {
	Interval   float64 `yaml:"interval"`    // Seconds between automatic launches
	Distance   float64 `yaml:"distance"`    // How far outside the field flights start
	ForceEvery int     `yaml:"force_every"` // Every Nth launch gets forced collisions, 0 disables
	Volley     int     `yaml:"volley"`      // Tags launched by a burst
}

// Validate reports scene configuration values no scene can use.
func (c SceneConfig) Validate() error {
	var errs []error
	if c.Field.Width <= 0 || c.Field.Height <= 0 || c.Field.Depth < 0 {
		errs = append(errs, fmt.Errorf("field must have positive width and height, got %vx%v", c.Field.Width, c.Field.Height))
	}
	if c.Tags.Count <= 0 {
		errs = append(errs, fmt.Errorf("tags.count must be positive, got %d", c.Tags.Count))
	}
	if c.Tags.MinSize <= 0 || c.Tags.MaxSize < c.Tags.MinSize {
		errs = append(errs, fmt.Errorf("tags sizes must satisfy 0 < min_size <= max_size, got %v..%v", c.Tags.MinSize, c.Tags.MaxSize))
	}
	if c.Tags.CharWidth <= 0 || c.Tags.LineHeight <= 0 || c.Tags.Thickness <= 0 {
		errs = append(errs, errors.New("tags char_width, line_height and thickness must be positive"))
	}
	if len(c.Labels) == 0 {
		errs = append(errs, errors.New("labels must not be empty"))
	}
	return errors.Join(errs...)
}
