package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/drop.yaml
var defaultDropYAML []byte

// DefaultDropConfig returns the default configuration.
// It matches defaults/drop.yaml and is used when the embedded file cannot be parsed.
func DefaultDropConfig() DropConfig {
	return DropConfig{
		World: WorldConfig{
			Width:         800,
			Height:        480,
			FallSpeed:     200,
			SpawnInterval: time.Second,
			InitialSpawn:  true,
		},
		Bucket: BucketConfig{
			Width:     64,
			Height:    64,
			Y:         20,
			MoveSpeed: 200,
		},
		Raindrop: RaindropConfig{
			Width:  64,
			Height: 64,
		},
		Audio: AudioConfig{
			Enabled:     true,
			SampleRate:  44100,
			CatchVolume: 0,
			MusicVolume: -1,
		},
		Loop: LoopConfig{
			MaxFrame: 100 * time.Millisecond,
		},
		Terminal: TerminalConfig{
			KeyHold: 300 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDropYAML
}
