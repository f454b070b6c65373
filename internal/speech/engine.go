// Package speech adapts the operating system's text-to-speech engine.
// Each utterance is synthesized to a WAV file by an external synthesizer
// binary and played back through the beep speaker, which gives us pause,
// resume and live volume control that the synthesizer itself lacks.
package speech

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"go.uber.org/zap"
)

const (
	// DefaultRate is the default speaking rate in words per minute.
	DefaultRate = 200
	// DefaultVolume is the default volume level.
	DefaultVolume = 1.0

	errorBufferSize = 8
)

// Engine synthesizes and plays one utterance at a time.
type Engine struct {
	mu sync.Mutex

	synth    Synthesizer
	cacheDir string
	logger   *zap.Logger

	state       State
	rate        int
	voice       string
	volumeLevel float64

	// gen increments on every Speak/Stop; in-flight synthesis for an older
	// generation discards its result instead of starting playback.
	gen int

	ctrl     *beep.Ctrl
	volume   *effects.Volume
	streamer beep.StreamSeekCloser
	format   beep.Format
	file     *os.File
	current  string // WAV path of the in-flight utterance

	voices     []Voice
	voicesOnce sync.Once

	finishedCh chan struct{}
	errCh      chan error
}

// Speaker setup is global to beep and shared by every Engine. Synthesis
// goroutines can overlap when pages change quickly, so the first-use guard
// has its own lock. speakerInitFn is swapped in tests.
var (
	speakerMu          sync.Mutex
	speakerInitialized bool
	speakerInitFn      = speaker.Init
)

func initSpeakerOnce(format beep.Format) error {
	speakerMu.Lock()
	defer speakerMu.Unlock()
	if speakerInitialized {
		return nil
	}
	if err := speakerInitFn(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speakerInitialized = true
	return nil
}

// New creates an Engine that synthesizes through synth and caches utterance
// WAVs under cacheDir.
func New(synth Synthesizer, cacheDir string, logger *zap.Logger) (*Engine, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("create utterance cache dir: %w", err)
	}
	return &Engine{
		synth:       synth,
		cacheDir:    cacheDir,
		logger:      logger,
		state:       Stopped,
		rate:        DefaultRate,
		volumeLevel: DefaultVolume,
		finishedCh:  make(chan struct{}, 1),
		errCh:       make(chan error, errorBufferSize),
	}, nil
}

// Speak stops any current utterance and begins speaking text. Synthesis and
// playback run in the background; the call returns once the utterance is
// underway. Blank text completes immediately.
func (e *Engine) Speak(text string) error {
	e.Stop()

	e.mu.Lock()
	e.gen++
	gen := e.gen
	e.state = Playing
	req := SynthesisRequest{Text: text, Voice: e.voice, Rate: e.rate}
	e.mu.Unlock()

	if strings.TrimSpace(text) == "" {
		// Nothing speakable; report completion so the caller can advance.
		e.mu.Lock()
		if gen == e.gen {
			e.state = Stopped
		}
		e.mu.Unlock()
		e.signalFinished()
		return nil
	}

	go func() {
		path, err := e.synth.Synthesize(req, e.cacheDir)
		if err != nil {
			e.fail(gen, fmt.Errorf("synthesize utterance: %w", err))
			return
		}
		e.startPlayback(gen, path)
	}()

	return nil
}

// startPlayback decodes the synthesized WAV and hands it to the speaker,
// unless the utterance was stopped or replaced while synthesizing.
func (e *Engine) startPlayback(gen int, path string) {
	f, err := os.Open(path)
	if err != nil {
		e.fail(gen, fmt.Errorf("open utterance: %w", err))
		return
	}

	streamer, format, err := decodeWAV(f)
	if err != nil {
		f.Close()
		e.fail(gen, fmt.Errorf("decode utterance: %w", err))
		return
	}

	if err := initSpeakerOnce(format); err != nil {
		streamer.Close()
		f.Close()
		e.fail(gen, fmt.Errorf("init speaker: %w", err))
		return
	}

	e.mu.Lock()
	if gen != e.gen || e.state == Stopped {
		// Stopped or replaced while synthesizing.
		e.mu.Unlock()
		streamer.Close()
		f.Close()
		return
	}

	e.file = f
	e.streamer = streamer
	e.format = format
	e.current = path
	// Honor a Pause issued while the utterance was still synthesizing.
	e.ctrl = &beep.Ctrl{Streamer: streamer, Paused: e.state == Paused}
	e.volume = &effects.Volume{
		Streamer: e.ctrl,
		Base:     2,
		Volume:   levelToVolume(e.volumeLevel),
		Silent:   e.volumeLevel <= 0,
	}
	vol := e.volume
	e.mu.Unlock()

	speaker.Play(beep.Seq(vol, beep.Callback(func() {
		e.utteranceDone(gen)
	})))
}

// utteranceDone runs in the speaker goroutine at natural end of utterance.
func (e *Engine) utteranceDone(gen int) {
	e.mu.Lock()
	if gen != e.gen {
		e.mu.Unlock()
		return
	}
	e.releaseLocked()
	e.state = Stopped
	e.mu.Unlock()
	e.signalFinished()
}

// fail reports an asynchronous engine error and returns to Stopped.
func (e *Engine) fail(gen int, err error) {
	e.mu.Lock()
	if gen != e.gen {
		e.mu.Unlock()
		return
	}
	e.releaseLocked()
	e.state = Stopped
	e.mu.Unlock()

	e.logger.Error("speech engine failure", zap.Error(err))
	select {
	case e.errCh <- err:
	default:
	}
}

// Stop stops the current utterance immediately, discarding any pending
// synthesis. The finished signal is not emitted for a stopped utterance.
func (e *Engine) Stop() {
	e.mu.Lock()
	if e.state == Stopped {
		e.mu.Unlock()
		return
	}
	e.gen++
	hadAudio := e.streamer != nil
	e.releaseLocked()
	e.state = Stopped
	e.mu.Unlock()

	if hadAudio {
		speaker.Clear()
	}
}

// releaseLocked closes playback resources. Caller holds e.mu.
func (e *Engine) releaseLocked() {
	if e.streamer != nil {
		e.streamer.Close()
		e.streamer = nil
	}
	if e.file != nil {
		e.file.Close()
		e.file = nil
	}
	e.ctrl = nil
	e.volume = nil
	e.current = ""
}

// Pause pauses the current utterance. Pausing while synthesis is still in
// flight is honored once audio starts.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != Playing {
		return
	}
	if e.ctrl != nil {
		speaker.Lock()
		e.ctrl.Paused = true
		speaker.Unlock()
	}
	e.state = Paused
}

// Resume resumes a paused utterance.
func (e *Engine) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != Paused {
		return
	}
	if e.ctrl != nil {
		speaker.Lock()
		e.ctrl.Paused = false
		speaker.Unlock()
	}
	e.state = Playing
}

// Toggle toggles between playing and paused states.
func (e *Engine) Toggle() {
	switch e.State() {
	case Playing:
		e.Pause()
	case Paused:
		e.Resume()
	case Stopped:
		// Nothing to toggle when stopped.
	}
}

// State returns the current engine state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Position returns the playback position within the current utterance.
func (e *Engine) Position() time.Duration {
	e.mu.Lock()
	streamer, format := e.streamer, e.format
	e.mu.Unlock()
	if streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := format.SampleRate.D(streamer.Position())
	speaker.Unlock()
	return pos
}

// Duration returns the total duration of the current utterance.
func (e *Engine) Duration() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.streamer == nil {
		return 0
	}
	return e.format.SampleRate.D(e.streamer.Len())
}

// SetRate sets the speaking rate in words per minute. Takes effect on the
// next utterance; the current WAV is already rendered at the old rate.
func (e *Engine) SetRate(wpm int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rate = wpm
}

// Rate returns the speaking rate in words per minute.
func (e *Engine) Rate() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rate
}

// SetVolume sets the volume level (0.0 to 1.0, clamped). Applies to the
// current utterance immediately.
func (e *Engine) SetVolume(level float64) {
	level = clampLevel(level)

	e.mu.Lock()
	e.volumeLevel = level
	vol := e.volume
	e.mu.Unlock()

	if vol != nil {
		speaker.Lock()
		vol.Volume = levelToVolume(level)
		vol.Silent = level <= 0
		speaker.Unlock()
	}
}

// Volume returns the current volume level (0.0 to 1.0).
func (e *Engine) Volume() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.volumeLevel
}

// SetVoice sets the voice for the next utterance.
func (e *Engine) SetVoice(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.voice = id
}

// Voice returns the current voice ID ("" means the synthesizer default).
func (e *Engine) Voice() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.voice
}

// Voices returns the synthesizer's available voices. The list is queried
// once and cached; a failing query yields an empty list.
func (e *Engine) Voices() []Voice {
	e.voicesOnce.Do(func() {
		voices, err := e.synth.Voices()
		if err != nil {
			e.logger.Warn("listing voices failed", zap.Error(err))
			return
		}
		e.voices = voices
	})
	return e.voices
}

// FinishedChan signals natural end-of-utterance. Stopped utterances do not
// signal.
func (e *Engine) FinishedChan() <-chan struct{} {
	return e.finishedCh
}

// ErrorChan delivers asynchronous engine failures (synthesis or audio).
func (e *Engine) ErrorChan() <-chan error {
	return e.errCh
}

// CurrentUtterance returns the WAV path of the in-flight utterance, or ""
// when idle. The cache janitor uses this to avoid deleting it.
func (e *Engine) CurrentUtterance() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// Close stops playback and releases resources.
func (e *Engine) Close() error {
	e.Stop()
	return nil
}

func (e *Engine) signalFinished() {
	select {
	case e.finishedCh <- struct{}{}:
	default:
	}
}
