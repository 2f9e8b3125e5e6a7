package drop

import (
	"time"

	"github.com/vovakirdan/drop/internal/config"
	"github.com/vovakirdan/drop/internal/core"
)

// Params are the fixed rules of a session.
type Params struct {
	WorldW, WorldH   float64       // Logical viewport, origin bottom-left
	BucketW, BucketH float64       // Bucket size
	BucketY          float64       // Fixed bucket height above the bottom edge
	DropW, DropH     float64       // Raindrop size
	FallSpeed        float64       // Raindrop fall speed, units per second
	MoveSpeed        float64       // Keyboard bucket speed, units per second
	SpawnInterval    time.Duration // Time between spawns
	InitialSpawn     bool          // Spawn a raindrop at session start
}

// ParamsFromConfig extracts session rules from the game configuration.
func ParamsFromConfig(cfg config.DropConfig) Params {
	return Params{
		WorldW:        cfg.World.Width,
		WorldH:        cfg.World.Height,
		BucketW:       cfg.Bucket.Width,
		BucketH:       cfg.Bucket.Height,
		BucketY:       cfg.Bucket.Y,
		DropW:         cfg.Raindrop.Width,
		DropH:         cfg.Raindrop.Height,
		FallSpeed:     cfg.World.FallSpeed,
		MoveSpeed:     cfg.Bucket.MoveSpeed,
		SpawnInterval: cfg.World.SpawnInterval,
		InitialSpawn:  cfg.World.InitialSpawn,
	}
}

// DefaultParams returns the classic 800x480 rules.
func DefaultParams() Params {
	return ParamsFromConfig(config.DefaultDropConfig())
}

// Bucket is the player-controlled catcher. Only X changes during a session.
type Bucket struct {
	core.Rect
}

// Raindrop is a falling droplet.
type Raindrop struct {
	core.Rect
}

// World is the complete simulation state of one session.
type World struct {
	Params    Params
	Bucket    Bucket
	Raindrops []Raindrop

	// Now is the session's monotonic clock: the sum of all frame deltas.
	Now time.Duration
	// LastSpawn is the value of Now at the most recent spawn.
	LastSpawn time.Duration
}

// NewWorld creates a world with the bucket centered and no raindrops.
func NewWorld(p Params) World {
	return World{
		Params: p,
		Bucket: Bucket{core.NewRect(p.WorldW/2-p.BucketW/2, p.BucketY, p.BucketW, p.BucketH)},
	}
}

// maxBucketX is the rightmost legal bucket position.
func (w *World) maxBucketX() float64 {
	return w.Params.WorldW - w.Params.BucketW
}

// Clone returns a deep copy safe to hand to renderers.
func (w World) Clone() World {
	w.Raindrops = append([]Raindrop(nil), w.Raindrops...)
	return w
}
