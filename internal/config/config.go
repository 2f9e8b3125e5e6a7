// Package config provides YAML-based game configuration loading for Drop.
package config

import (
	"errors"
	"fmt"
	"time"
)

// DropConfig contains all configuration for the game and its hosts.
type DropConfig struct {
	World    WorldConfig    `yaml:"world"`
	Bucket   BucketConfig   `yaml:"bucket"`
	Raindrop RaindropConfig `yaml:"raindrop"`
	Assets   AssetsConfig   `yaml:"assets"`
	Audio    AudioConfig    `yaml:"audio"`
	Loop     LoopConfig     `yaml:"loop"`
	Terminal TerminalConfig `yaml:"terminal"`
}

// WorldConfig defines the logical viewport and raindrop physics.
type WorldConfig struct {
	Width         float64       `yaml:"width"`
	Height        float64       `yaml:"height"`
	FallSpeed     float64       `yaml:"fall_speed"`
	SpawnInterval time.Duration `yaml:"spawn_interval"`
	InitialSpawn  bool          `yaml:"initial_spawn"`
}

// BucketConfig defines the player-controlled bucket.
type BucketConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Y         float64 `yaml:"y"`
	MoveSpeed float64 `yaml:"move_speed"`
}

// RaindropConfig defines raindrop dimensions.
type RaindropConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// AssetsConfig points at optional sprite and sound files.
// Empty paths select the built-in procedural fallbacks.
type AssetsConfig struct {
	DropletImage string `yaml:"droplet_image"`
	BucketImage  string `yaml:"bucket_image"`
	CatchSound   string `yaml:"catch_sound"`
	Music        string `yaml:"music"`
}

// AudioConfig defines audio playback settings.
type AudioConfig struct {
	Enabled     bool    `yaml:"enabled"`
	SampleRate  int     `yaml:"sample_rate"`
	CatchVolume float64 `yaml:"catch_volume"`
	MusicVolume float64 `yaml:"music_volume"`
}

// LoopConfig defines the frame loop shared by both hosts.
type LoopConfig struct {
	MaxFrame time.Duration `yaml:"max_frame"`
}

// TerminalConfig defines terminal host behaviour.
type TerminalConfig struct {
	KeyHold time.Duration `yaml:"key_hold"`
}

// Validate reports every problem in the configuration at once.
func (c DropConfig) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	positive("world.fall_speed", c.World.FallSpeed)
	positive("bucket.width", c.Bucket.Width)
	positive("bucket.height", c.Bucket.Height)
	positive("bucket.move_speed", c.Bucket.MoveSpeed)
	positive("raindrop.width", c.Raindrop.Width)
	positive("raindrop.height", c.Raindrop.Height)

	if c.World.SpawnInterval <= 0 {
		errs = append(errs, fmt.Errorf("world.spawn_interval must be positive, got %v", c.World.SpawnInterval))
	}
	if c.Bucket.Width > c.World.Width {
		errs = append(errs, fmt.Errorf("bucket.width %v exceeds world.width %v", c.Bucket.Width, c.World.Width))
	}
	if c.Raindrop.Width > c.World.Width {
		errs = append(errs, fmt.Errorf("raindrop.width %v exceeds world.width %v", c.Raindrop.Width, c.World.Width))
	}
	if c.Bucket.Y < 0 || c.Bucket.Y+c.Bucket.Height > c.World.Height {
		errs = append(errs, fmt.Errorf("bucket.y %v puts the bucket outside the world", c.Bucket.Y))
	}
	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate))
	}
	if c.Loop.MaxFrame < 0 {
		errs = append(errs, fmt.Errorf("loop.max_frame must not be negative, got %v", c.Loop.MaxFrame))
	}
	// Without a hold window the terminal host never sees a movement key as held
	if c.Terminal.KeyHold <= 0 {
		errs = append(errs, fmt.Errorf("terminal.key_hold must be positive, got %v", c.Terminal.KeyHold))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
