// Package audio plays the catch sound and the background music.
//
// Hosts talk to a Sink. The terminal host uses Speaker, backed by gopxl/beep;
// the window host brings its own Ebitengine-backed Sink. When no asset files
// are configured both fall back to the synthesized sounds in this package.
package audio

import "github.com/vovakirdan/drop/internal/core"

// Sink receives the game's audio side effects.
// Implementations never block the frame loop.
type Sink interface {
	// PlayCatch starts one-shot playback of the catch sound.
	PlayCatch()
	// StartMusic starts the looping background music.
	StartMusic() error
	// Close stops playback and releases the audio device and files.
	Close() error
}

// Nop is a Sink that discards everything. Used for --mute and when no
// audio device is available.
type Nop struct{}

func (Nop) PlayCatch() {}
func (Nop) StartMusic() error { return nil }
func (Nop) Close() error { return nil }

var _ Sink = Nop{}

// PlayEvents plays the catch sound once per EventCaught and returns how many
// catches it played.
func PlayEvents(s Sink, events []core.Event) int {
	caught := 0
	for _, ev := range events {
		if ev.Kind == core.EventCaught {
			s.PlayCatch()
			caught++
		}
	}
	return caught
}
