package config

import (
	_ "embed"
)

//go:embed defaults/engine.yaml
var defaultEngineYAML []byte

//go:embed defaults/scene.yaml
var defaultSceneYAML []byte

// DefaultEngineConfig returns the built-in engine configuration.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		ReferenceFPS:       60,
		CollideWithSettled: true,
		Flight: FlightConfig{
			Rate:           0.005,
			CollisionStart: 0.1,
			Backoff:        0.2,
		},
		Shift: ShiftConfig{
			Rate:       0.04,
			Correction: 1.1,
		},
		Resize: ResizeConfig{
			Rate: 0.05,
		},
		Impact: ImpactConfig{
			EnergyBase:       3.5,
			Multiplier:       2.0,
			ForcedMultiplier: 2.5,
			MaxSizeRatio:     2.0,
			ShrinkPerEnergy:  0.25,
			MinShrink:        0.3,
			PushBase:         2.0,
			PushPerEnergy:    1.2,
			Jitter:           0.3,
			Cascade: CascadeConfig{
				Threshold:       0.5,
				Decay:           0.7,
				Margin:          0.2,
				MaxDepth:        1,
				ShrinkPerEnergy: 0.15,
				MinShrink:       0.6,
				PushPerEnergy:   1.0,
				Jitter:          0.15,
			},
		},
		Wobble: WobbleConfig{
			Amplitude:  0.02,
			PhaseScale: 1e6,
		},
	}
}

// DefaultSceneConfig returns the built-in scene configuration.
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		Field: FieldConfig{Width: 40, Height: 20, Depth: 4},
		Tags: TagsConfig{
			Count:      24,
			MinSize:    0.6,
			MaxSize:    1.4,
			CharWidth:  0.5,
			LineHeight: 1.0,
			Thickness:  0.4,
		},
		Spawn: SpawnConfig{
			Interval:   0.8,
			Distance:   12,
			ForceEvery: 7,
			Volley:     5,
		},
		Labels: []string{
			"golang", "channels", "goroutine", "interface", "context",
			"sqlite", "yaml", "cobra", "lipgloss", "bubbletea",
			"wish", "harmonica", "mutex", "slice", "struct",
			"defer", "select", "generics", "embed", "vet",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a config name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "engine":
		return defaultEngineYAML
	case "scene":
		return defaultSceneYAML
	default:
		return nil
	}
}
