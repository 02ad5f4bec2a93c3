package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load resolves a game config in order: explicit custom path, then
// ~/.minigames/configs/<name>, then ./configs/<name>, then the embedded
// default. Only an explicit custom path reports read/parse errors; fallback
// locations are best-effort.
func load(customPath, filename string, embedded []byte, out any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return nil
	}

	if userPath := userConfigPath(filename); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	return yaml.Unmarshal(embedded, out)
}

// userConfigPath returns the per-user config path, or empty if the home
// directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".minigames", "configs", filename)
}

// LoadFlappy loads the Flappy Bird configuration.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	var cfg FlappyConfig
	if err := load(customPath, "flappy.yaml", defaultFlappyYAML, &cfg); err != nil {
		return DefaultFlappyConfig(), err
	}
	return cfg, nil
}

// LoadZelda loads the movement demo configuration.
func LoadZelda(customPath string) (ZeldaConfig, error) {
	var cfg ZeldaConfig
	if err := load(customPath, "zelda.yaml", defaultZeldaYAML, &cfg); err != nil {
		return DefaultZeldaConfig(), err
	}
	return cfg, nil
}

// LoadAdventure loads the text adventure configuration.
func LoadAdventure(customPath string) (AdventureConfig, error) {
	var cfg AdventureConfig
	if err := load(customPath, "adventure.yaml", defaultAdventureYAML, &cfg); err != nil {
		return DefaultAdventureConfig(), err
	}
	return cfg, nil
}
