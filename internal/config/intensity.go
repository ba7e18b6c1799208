package config

import "fmt"

// Intensity is a named preset for how violently impacts play out.
type Intensity string

const (
	IntensityCalm    Intensity = "calm"
	IntensityNormal  Intensity = "normal"
	IntensityViolent Intensity = "violent"
	IntensityFrozen  Intensity = "frozen"
)

// Intensities lists every preset in display order.
func Intensities() []Intensity {
	return []Intensity{IntensityCalm, IntensityNormal, IntensityViolent, IntensityFrozen}
}

// ParseIntensity maps a flag value to a preset. Empty means normal.
func ParseIntensity(s string) (Intensity, error) {
	if s == "" {
		return IntensityNormal, nil
	}
	for _, in := range Intensities() {
		if string(in) == s {
			return in, nil
		}
	}
	return "", fmt.Errorf("unknown intensity %q (want calm, normal, violent or frozen)", s)
}

// ApplyIntensity modifies the impact tunables according to a preset.
// Normal leaves the configuration untouched.
func ApplyIntensity(cfg *EngineConfig, preset Intensity) {
	switch preset {
	case IntensityCalm:
		cfg.Impact.Multiplier *= 0.5
		cfg.Impact.ForcedMultiplier *= 0.5
		cfg.Impact.PushPerEnergy *= 0.5
		cfg.Impact.Cascade.MaxDepth = min(cfg.Impact.Cascade.MaxDepth, 1)
	case IntensityViolent:
		cfg.Impact.Multiplier *= 1.5
		cfg.Impact.ForcedMultiplier *= 1.5
		cfg.Impact.Cascade.Decay = clampF(cfg.Impact.Cascade.Decay*1.2, 0, 0.95)
		cfg.Impact.Cascade.MaxDepth = max(cfg.Impact.Cascade.MaxDepth, 3)
	case IntensityFrozen:
		// Impacts still push and shrink, nothing cascades.
		cfg.Impact.Cascade.MaxDepth = 0
	}
}

// clampF restricts a float64 to [min, max].
func clampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
