package speech

import "time"

// Voice describes a voice offered by the underlying synthesizer.
type Voice struct {
	ID       string // identifier passed back to the synthesizer
	Name     string // human-readable name
	Language string // language code, e.g. "en-US"
	Gender   string // "M", "F" or "" when unknown
}

// Interface defines the speech engine contract for dependency injection and
// testing. One Speak call covers one utterance; completion of an utterance
// that was not stopped is signalled on FinishedChan.
type Interface interface {
	Speak(text string) error
	Pause()
	Resume()
	Stop()
	Toggle()
	State() State
	Position() time.Duration
	Duration() time.Duration
	SetRate(wpm int)
	Rate() int
	SetVolume(level float64)
	Volume() float64
	SetVoice(id string)
	Voice() string
	Voices() []Voice
	FinishedChan() <-chan struct{}
	ErrorChan() <-chan error
	Close() error
}

// Verify Engine implements Interface at compile time.
var _ Interface = (*Engine)(nil)
