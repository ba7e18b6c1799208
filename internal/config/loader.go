package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadEngine loads the engine configuration.
// Search order: customPath -> ~/.tagstorm/configs/engine.yaml -> ./configs/engine.yaml -> embedded default
func LoadEngine(customPath string) (EngineConfig, error) {
	cfg := DefaultEngineConfig()
	if err := load("engine", customPath, defaultEngineYAML, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid engine config: %w", err)
	}
	return cfg, nil
}

// LoadScene loads the scene configuration.
// Search order: customPath -> ~/.tagstorm/configs/scene.yaml -> ./configs/scene.yaml -> embedded default
func LoadScene(customPath string) (SceneConfig, error) {
	cfg := DefaultSceneConfig()
	if err := load("scene", customPath, defaultSceneYAML, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid scene config: %w", err)
	}
	return cfg, nil
}

// load decodes the first config source found for name into dst.
// dst holds the hardcoded defaults, so a partial file only overrides the
// keys it sets. Only an explicit customPath makes a read failure an error.
func load(name, customPath string, embedded []byte, dst any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, dst); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return nil
	}

	filename := name + ".yaml"
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, dst); err == nil {
			return nil
		}
	}

	// Embedded default; on failure dst keeps the hardcoded values.
	//nolint:errcheck // Hardcoded defaults are already in place
	yaml.Unmarshal(embedded, dst)
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tagstorm", "configs", filename)
}
