package core

// EventKind identifies a side effect the host must carry out.
type EventKind int

const (
	// EventCaught fires once per raindrop that lands in the bucket.
	// Hosts answer it with one-shot playback of the catch sound.
	EventCaught EventKind = iota + 1
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventCaught:
		return "Caught"
	default:
		return "Unknown"
	}
}

// Event is a side effect produced by a simulation frame.
type Event struct {
	Kind EventKind
	X, Y float64 // World position of the entity that produced the event
}
