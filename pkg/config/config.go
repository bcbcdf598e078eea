// Package config holds every tunable of a run. Defaults reproduce the
// classic arcade settings; a JSON file can override any subset.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Keys lists the key names bound to each steering direction
type Keys struct {
	Left  []string `json:"left"`
	Right []string `json:"right"`
}

// Assets are the image paths for the three sprites. An empty or missing
// path falls back to a generated texture.
type Assets struct {
	Road   string `json:"road"`
	Player string `json:"player"`
	Patrol string `json:"patrol"`
}

// Config is a complete run configuration
type Config struct {
	LapSeconds      int     `json:"lap_seconds"`      // time to survive for a win
	Lanes           int     `json:"lanes"`            // patrol lanes across the road
	SpawnInterval   int     `json:"spawn_interval"`   // ticks between patrol spawns
	BurstParticles  int     `json:"burst_particles"`  // particles per exploding car
	ScrollIncrement float64 `json:"scroll_increment"` // road speed-up per ramp
	RampInterval    int     `json:"ramp_interval"`    // frames between road speed-ups
	PlayerScale     float64 `json:"player_scale"`
	PatrolScale     float64 `json:"patrol_scale"`
	PlayerStep      float64 `json:"player_step"` // sideways acceleration per frame
	PlayWidth       int     `json:"play_width"`
	PlayHeight      int     `json:"play_height"`
	TicksPerSecond  int     `json:"ticks_per_second"`
	StopDelay       float64 `json:"stop_delay_seconds"` // explosion time after a crash
	Seed            int64   `json:"seed"`               // 0 seeds from the clock

	Keys       Keys   `json:"keys"`
	Assets     Assets `json:"assets"`
	RecordFile string `json:"record_file"`
	Mute       bool   `json:"mute"`
}

// Default returns the classic settings
func Default() *Config {
	return &Config{
		LapSeconds:      180,
		Lanes:           5,
		SpawnInterval:   50,
		BurstParticles:  300,
		ScrollIncrement: 0.25,
		RampInterval:    50,
		PlayerScale:     1.5,
		PatrolScale:     1.75,
		PlayerStep:      2,
		PlayWidth:       300,
		PlayHeight:      600,
		TicksPerSecond:  60,
		StopDelay:       3,
		Keys: Keys{
			Left:  []string{"ArrowLeft", "a"},
			Right: []string{"ArrowRight", "d"},
		},
		Assets: Assets{
			Road:   "assets/img/road.jpg",
			Player: "assets/img/car.png",
			Patrol: "assets/img/patrol.png",
		},
		RecordFile: "records.json",
	}
}

// Load reads a JSON file over the defaults. Fields missing from the file
// keep their default value.
func Load(filename string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", filename, err)
	}
	return cfg, nil
}

// SaveToFile writes the config as indented JSON
func (c *Config) SaveToFile(filename string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// StopDelayTicks converts the post-crash delay into ticks
func (c *Config) StopDelayTicks() int {
	return int(time.Duration(c.StopDelay*float64(time.Second)) * time.Duration(c.TicksPerSecond) / time.Second)
}

// Validate reports every out-of-range setting at once
func (c *Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, name, v))
		}
	}

	positive("lap_seconds", float64(c.LapSeconds))
	positive("spawn_interval", float64(c.SpawnInterval))
	positive("ramp_interval", float64(c.RampInterval))
	positive("player_scale", c.PlayerScale)
	positive("patrol_scale", c.PatrolScale)
	positive("player_step", c.PlayerStep)
	positive("play_width", float64(c.PlayWidth))
	positive("play_height", float64(c.PlayHeight))
	positive("ticks_per_second", float64(c.TicksPerSecond))

	if c.Lanes < 2 {
		errs = append(errs, fmt.Errorf("%w: lanes must be at least 2, got %d", ErrInvalid, c.Lanes))
	}
	if c.BurstParticles < 0 {
		errs = append(errs, fmt.Errorf("%w: burst_particles must not be negative, got %d", ErrInvalid, c.BurstParticles))
	}
	if c.ScrollIncrement < 0 {
		errs = append(errs, fmt.Errorf("%w: scroll_increment must not be negative, got %v", ErrInvalid, c.ScrollIncrement))
	}
	if c.StopDelay < 0 {
		errs = append(errs, fmt.Errorf("%w: stop_delay_seconds must not be negative, got %v", ErrInvalid, c.StopDelay))
	}
	if len(c.Keys.Left) == 0 || len(c.Keys.Right) == 0 {
		errs = append(errs, fmt.Errorf("%w: both steering directions need a key", ErrInvalid))
	}
	return errors.Join(errs...)
}
