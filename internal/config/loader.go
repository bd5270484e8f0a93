package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "spacewar.yaml"

// Load loads the spacewar configuration.
// Search order: customPath -> ~/.spacewar/configs/spacewar.yaml -> ./configs/spacewar.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes. An explicit customPath that cannot be read, parsed or validated is
// an error; the implicit locations are skipped when broken.
func Load(customPath string) (SpaceWarConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SpaceWarConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return SpaceWarConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", fileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultSpaceWarYAML)
	if err != nil {
		return DefaultSpaceWarConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (SpaceWarConfig, error) {
	cfg := DefaultSpaceWarConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SpaceWarConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return SpaceWarConfig{}, err
	}
	return cfg, nil
}

// Dump renders the configuration as YAML.
func Dump(cfg SpaceWarConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot marshal: %w", err)
	}
	return data, nil
}

// UserDir returns ~/.spacewar, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".spacewar")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}
