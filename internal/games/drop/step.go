package drop

import (
	"math"
	"time"

	"github.com/vovakirdan/drop/internal/core"
)

// Rand is the random source used for raindrop placement.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
}

// Step advances the world by one frame of dt seconds.
// It returns one EventCaught per raindrop that landed in the bucket, in the
// order the raindrops were evaluated.
//
// The frame runs in a fixed order: spawn check, fall and cull, pointer
// movement, key movement, clamp. Raindrops that fell off the bottom are
// removed before the catch check, so only survivors can be caught.
func Step(w *World, dt float64, in core.InputFrame, rng Rand) []core.Event {
	if dt < 0 {
		dt = 0
	}
	w.Now += seconds(dt)

	// At most one spawn per frame, however long the frame was
	if w.Now-w.LastSpawn >= w.Params.SpawnInterval {
		w.Spawn(rng)
	}

	events := w.fall(dt)
	w.moveBucket(dt, in)
	return events
}

// Spawn adds a raindrop at the top edge at a random reachable x and
// restarts the spawn timer.
func (w *World) Spawn(rng Rand) {
	x := rng.Float64() * (w.Params.WorldW - w.Params.DropW)
	w.Raindrops = append(w.Raindrops, Raindrop{
		core.NewRect(x, w.Params.WorldH, w.Params.DropW, w.Params.DropH),
	})
	w.LastSpawn = w.Now
}

// fall moves every raindrop down and filters out the ones that left the
// screen or were caught. Survivors are compacted in place, keeping order.
func (w *World) fall(dt float64) []core.Event {
	var events []core.Event
	kept := w.Raindrops[:0]

	for _, d := range w.Raindrops {
		d.Y -= w.Params.FallSpeed * dt

		if d.Top() < 0 {
			continue
		}
		if d.Overlaps(w.Bucket.Rect) {
			events = append(events, core.Event{Kind: core.EventCaught, X: d.X, Y: d.Y})
			continue
		}
		kept = append(kept, d)
	}

	clear(w.Raindrops[len(kept):])
	w.Raindrops = kept
	return events
}

// moveBucket applies pointer re-centering, then key movement, then the clamp.
func (w *World) moveBucket(dt float64, in core.InputFrame) {
	if in.Pointer.Pressed {
		w.Bucket.X = in.Pointer.X - w.Params.BucketW/2
	}
	if in.IsHeld(core.ActionMoveLeft) {
		w.Bucket.X -= w.Params.MoveSpeed * dt
	}
	if in.IsHeld(core.ActionMoveRight) {
		w.Bucket.X += w.Params.MoveSpeed * dt
	}
	w.Bucket.X = core.ClampF(w.Bucket.X, 0, w.maxBucketX())
}

// seconds converts a float delta to a Duration, rounded to the nanosecond.
func seconds(dt float64) time.Duration {
	return time.Duration(math.Round(dt * float64(time.Second)))
}
