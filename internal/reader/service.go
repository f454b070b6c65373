package reader

import (
	"time"

	"github.com/LN405Rx/lectern/internal/document"
	"github.com/LN405Rx/lectern/internal/speech"
)

// Extractor turns a file on disk into a paged document.
type Extractor interface {
	Extract(path string) (*document.Document, error)
}

// Service defines the reading controller contract. It owns the current
// document and reading session and drives the speech engine; all methods
// are safe for concurrent use.
type Service interface {
	// Document lifecycle
	Load(path string) error

	// Reading control
	Play() error
	Pause() error
	Stop() error
	Toggle() error

	// Page navigation (keeps reading if active)
	NextPage() error
	PreviousPage() error
	JumpToPage(index int) error

	// Speech parameters (persist across document loads)
	SetRate(wpm int) error
	Rate() int
	SetVolume(level float64) error
	Volume() float64
	SetVoice(id string) error
	Voice() string
	Voices() []speech.Voice

	// State queries
	State() State
	IsPlaying() bool
	IsPaused() bool
	IsStopped() bool
	Position() time.Duration
	Duration() time.Duration

	// Document queries
	Document() *document.Document
	PageIndex() int
	PageCount() int
	PageText() string
	Session() Session

	// Engine returns the underlying speech engine (for UI rendering).
	Engine() speech.Interface

	// UtteranceFinished advances reading after a page ends naturally.
	// The app calls this when the engine signals completion.
	UtteranceFinished()

	// Event subscription
	Subscribe() *Subscription

	// Lifecycle
	Close() error
}
