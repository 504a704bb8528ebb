package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const mazeFile = "qmaze.yaml"

// LoadMaze loads the maze configuration.
// Search order: customPath -> ~/.qmaze/configs/qmaze.yaml -> ./configs/qmaze.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
func LoadMaze(customPath string) (MazeConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MazeConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseMaze(data)
		if err != nil {
			return MazeConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(mazeFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseMaze(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", mazeFile)); err == nil {
		if cfg, err := parseMaze(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parseMaze(defaultMazeYAML)
	if err != nil {
		return DefaultMazeConfig(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

func parseMaze(data []byte) (MazeConfig, error) {
	cfg := DefaultMazeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MazeConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".qmaze", "configs", filename)
}
