// pkg/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig contains configuration for a spacerocks game
type GameConfig struct {
	Screen      ScreenConfig  `yaml:"screen"`
	Physics     PhysicsConfig `yaml:"physics"`
	Rocks       RockConfig    `yaml:"rocks"`
	Assets      AssetConfig   `yaml:"assets"`
	MappingPath string        `yaml:"mappingPath"`
	Seed        uint64        `yaml:"seed"`
	ShowOverlay bool          `yaml:"showOverlay"`
}

// ScreenConfig contains display-related configuration
type ScreenConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	FPS    int    `yaml:"fps"`
	Title  string `yaml:"title"`
}

// PhysicsConfig contains physics-related configuration
type PhysicsConfig struct {
	// ThrusterSpeedPPM is the velocity gained, in pixels per millisecond,
	// for each frame of full thrust. Thrust accumulates without decay.
	ThrusterSpeedPPM float64 `yaml:"thrusterSpeedPPM"`
}

// RockConfig contains rock spawning configuration
type RockConfig struct {
	Count int `yaml:"count"`
}

// AssetConfig contains the caller-supplied asset paths. The paths are
// resolved by the frontend's image loader, never by the core.
type AssetConfig struct {
	Background string   `yaml:"background"`
	Ship       string   `yaml:"ship"`
	Rocks      []string `yaml:"rocks"`
	// Font is the TrueType font used for the debug overlay. Optional:
	// without it the windowed frontend skips overlay text.
	Font string `yaml:"font"`
}

// LoadConfig loads a configuration from a file
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config GameConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *GameConfig, path string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the configuration for values the game cannot start with.
// Malformed configuration is fatal at startup, never papered over.
func (c *GameConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("invalid screen size %dx%d: both dimensions must be positive",
			c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.FPS <= 0 {
		return fmt.Errorf("invalid target fps %d: must be positive", c.Screen.FPS)
	}
	if c.Physics.ThrusterSpeedPPM <= 0 {
		return fmt.Errorf("invalid thruster speed %v: must be positive", c.Physics.ThrusterSpeedPPM)
	}
	if c.Rocks.Count < 0 {
		return fmt.Errorf("invalid rock count %d: must not be negative", c.Rocks.Count)
	}
	if c.Assets.Background == "" {
		return fmt.Errorf("missing background asset path")
	}
	if c.Assets.Ship == "" {
		return fmt.Errorf("missing ship asset path")
	}
	if len(c.Assets.Rocks) == 0 {
		return fmt.Errorf("missing rock asset paths: at least one size variant is required")
	}
	return nil
}

// DefaultConfig returns a default game configuration
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
			FPS:    55,
			Title:  "Space Rocks",
		},
		Physics: PhysicsConfig{
			ThrusterSpeedPPM: 0.005,
		},
		Rocks: RockConfig{
			Count: 10,
		},
		Assets: AssetConfig{
			Background: "./images/space.png",
			Ship:       "./images/ship.png",
			Rocks: []string{
				"./images/rock-large.png",
				"./images/rock-medium.png",
				"./images/rock-small.png",
			},
		},
		MappingPath: "./controllers.yaml",
	}
}
