package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCubeSnake loads cube snake configuration.
// Search order: customPath -> ~/.cubesnake/configs/cubesnake.yaml ->
// ./configs/cubesnake.yaml -> embedded default. Keys missing from the file keep
// their default values. CUBESNAKE_* environment overrides are applied last.
func LoadCubeSnake(customPath string) (CubeSnakeConfig, error) {
	cfg, err := loadCubeSnakeFile(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadCubeSnakeFile(customPath string) (CubeSnakeConfig, error) {
	cfg := DefaultCubeSnakeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("cubesnake.yaml"); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryLoad(filepath.Join("configs", "cubesnake.yaml")); ok {
		return c, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultCubeSnakeYAML, &cfg); err != nil {
		return DefaultCubeSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing or malformed files are skipped.
func tryLoad(path string) (CubeSnakeConfig, bool) {
	cfg := DefaultCubeSnakeConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cubesnake", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *CubeSnakeConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
