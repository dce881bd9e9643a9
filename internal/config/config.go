// Package config loads the run configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"aether-roguelike/internal/game"
	"aether-roguelike/internal/generate"

	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds the settings for one run.
type Config struct {
	// Seed 0 means pick one from the clock at startup.
	Seed      int64  `yaml:"seed"`
	Generator string `yaml:"generator"`
	MaxFloors int    `yaml:"max_floors"`
	FOVRadius int    `yaml:"fov_radius"`
	MapWidth  int    `yaml:"map_width"`
	MapHeight int    `yaml:"map_height"`
	SavePath  string `yaml:"save_path"`
	RunLog    bool   `yaml:"run_log"`
	Log       Log    `yaml:"log"`
	Locale    Locale `yaml:"locale"`
}

// Log configures the process logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	// File receives log output while the terminal screen is active. Empty
	// discards logs.
	File string `yaml:"file"`
}

// Locale selects a gettext message catalogue. An empty Dir keeps the
// built-in English lines.
type Locale struct {
	Dir  string `yaml:"dir"`
	Lang string `yaml:"lang"`
}

// Default returns the standard settings.
func Default() Config {
	return Config{
		Generator: "rooms",
		MaxFloors: game.MaxFloors,
		FOVRadius: game.FOVRadius,
		MapWidth:  game.MapWidth,
		MapHeight: game.MapHeight,
		SavePath:  "savegame.sav",
		RunLog:    true,
		Log:       Log{Level: "info", Format: "text"},
		Locale:    Locale{Lang: "en_US"},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings a run cannot start with.
func (c Config) Validate() error {
	if _, err := generate.ParseMode(c.Generator); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch {
	case c.MaxFloors < 1:
		return fmt.Errorf("%w: max_floors must be at least 1, got %d", ErrInvalid, c.MaxFloors)
	case c.FOVRadius < 1:
		return fmt.Errorf("%w: fov_radius must be at least 1, got %d", ErrInvalid, c.FOVRadius)
	case c.MapWidth < 1 || c.MapHeight < 1:
		return fmt.Errorf("%w: map size %dx%d", ErrInvalid, c.MapWidth, c.MapHeight)
	case c.SavePath == "":
		return fmt.Errorf("%w: save_path is empty", ErrInvalid)
	}
	return nil
}

// GameOptions converts the settings into options for game.New. The config
// must have passed Validate.
func (c Config) GameOptions() game.Options {
	mode, _ := generate.ParseMode(c.Generator)
	return game.Options{
		Seed:      c.Seed,
		Mode:      mode,
		MaxFloors: c.MaxFloors,
		FOVRadius: c.FOVRadius,
		MapWidth:  c.MapWidth,
		MapHeight: c.MapHeight,
		RunLog:    c.RunLog,
	}
}
