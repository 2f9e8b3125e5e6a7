package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// localConfigPath is checked relative to the working directory.
const localConfigPath = "configs/drop.yaml"

// Load loads the Drop configuration.
// Search order: customPath -> ~/.drop/configs/drop.yaml -> ./configs/drop.yaml -> embedded default.
// Files are overlaid on the defaults, so they only need the keys they change.
// A custom path that cannot be read or parsed is an error; the implicit locations are skipped
// silently when absent or broken.
func Load(customPath string) (DropConfig, error) {
	cfg := base()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("drop.yaml"), localConfigPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := base()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, candidate.Validate()
		}
	}

	return cfg, nil
}

// base returns the embedded defaults, falling back to the hardcoded ones.
func base() DropConfig {
	var cfg DropConfig
	if err := yaml.Unmarshal(defaultDropYAML, &cfg); err != nil {
		return DefaultDropConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// Marshal renders a configuration as YAML.
func Marshal(cfg DropConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".drop", "configs", filename)
}
