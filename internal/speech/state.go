package speech

// State represents the utterance playback state machine.
//
// Valid transitions:
//   - Stopped → Playing (via Speak)
//   - Playing → Paused  (via Pause)
//   - Playing → Stopped (via Stop)
//   - Paused  → Playing (via Resume)
//   - Paused  → Stopped (via Stop)
//
// Toggle() cycles Playing ↔ Paused and is a no-op when Stopped.
//
// Invalid transitions are handled gracefully as no-ops:
//   - Stopped → Paused  (ignored)
//   - Stopped → Stopped (ignored)
//   - Paused  → Paused  (ignored)
//   - Playing → Playing (Speak stops the current utterance first)
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if an utterance is in flight (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}

// CanPause returns true if the state allows pausing.
func (s State) CanPause() bool {
	return s == Playing
}

// CanResume returns true if the state allows resuming.
func (s State) CanResume() bool {
	return s == Paused
}
