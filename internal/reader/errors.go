package reader

import "errors"

// Rate bounds in words per minute, matching what common synthesizers accept.
const (
	MinRate = 80
	MaxRate = 500
)

var (
	// ErrNoDocument is returned by operations that require a loaded document.
	ErrNoDocument = errors.New("no document loaded")

	// ErrInvalidRate is returned when a rate is outside MinRate..MaxRate.
	ErrInvalidRate = errors.New("rate out of range")

	// ErrInvalidVolume is returned when a volume is outside 0.0..1.0.
	ErrInvalidVolume = errors.New("volume out of range")

	// ErrUnknownVoice is returned when a voice ID is not offered by the engine.
	ErrUnknownVoice = errors.New("unknown voice")
)
