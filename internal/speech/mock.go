package speech

import (
	"sync"
	"time"
)

// Mock is an in-memory Interface implementation for tests. It records
// every command it receives in order so callers can assert command
// sequences such as a stop followed by a speak.
type Mock struct {
	mu sync.Mutex

	state       State
	rate        int
	volumeLevel float64
	voice       string
	voices      []Voice

	position time.Duration
	duration time.Duration

	speakErr error

	// Commands is the ordered log of commands received: "speak", "pause",
	// "resume", "stop".
	Commands []string
	// SpeakCalls records the text of every Speak call in order.
	SpeakCalls []string
	// RateCalls and VolumeCalls record every setter invocation.
	RateCalls   []int
	VolumeCalls []float64

	finishedCh chan struct{}
	errCh      chan error
}

var _ Interface = (*Mock)(nil)

func NewMock() *Mock {
	return &Mock{
		state:       Stopped,
		rate:        DefaultRate,
		volumeLevel: DefaultVolume,
		finishedCh:  make(chan struct{}, 1),
		errCh:       make(chan error, 8),
	}
}

func (m *Mock) Speak(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Commands = append(m.Commands, "speak")
	m.SpeakCalls = append(m.SpeakCalls, text)
	if m.speakErr != nil {
		return m.speakErr
	}
	m.state = Playing
	return nil
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Commands = append(m.Commands, "pause")
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Resume() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Commands = append(m.Commands, "resume")
	if m.state == Paused {
		m.state = Playing
	}
}

func (m *Mock) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Commands = append(m.Commands, "stop")
	m.state = Stopped
}

func (m *Mock) Toggle() {
	m.mu.Lock()
	state := m.state
	m.mu.Unlock()
	switch state {
	case Playing:
		m.Pause()
	case Paused:
		m.Resume()
	}
}

func (m *Mock) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Mock) Position() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

func (m *Mock) Duration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duration
}

func (m *Mock) SetRate(wpm int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rate = wpm
	m.RateCalls = append(m.RateCalls, wpm)
}

func (m *Mock) Rate() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rate
}

func (m *Mock) SetVolume(level float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volumeLevel = level
	m.VolumeCalls = append(m.VolumeCalls, level)
}

func (m *Mock) Volume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volumeLevel
}

func (m *Mock) SetVoice(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.voice = id
}

func (m *Mock) Voice() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.voice
}

func (m *Mock) Voices() []Voice {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.voices
}

func (m *Mock) FinishedChan() <-chan struct{} {
	return m.finishedCh
}

func (m *Mock) ErrorChan() <-chan error {
	return m.errCh
}

func (m *Mock) Close() error {
	m.Stop()
	return nil
}

// SetSpeakError makes subsequent Speak calls fail with err.
func (m *Mock) SetSpeakError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.speakErr = err
}

// SetVoices seeds the list returned by Voices.
func (m *Mock) SetVoices(voices []Voice) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.voices = voices
}

// SetPosition seeds the value returned by Position.
func (m *Mock) SetPosition(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.position = d
}

// SetDuration seeds the value returned by Duration.
func (m *Mock) SetDuration(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.duration = d
}

// SimulateFinished marks the mock stopped and signals utterance completion,
// mirroring the real engine reaching the end of a page.
func (m *Mock) SimulateFinished() {
	m.mu.Lock()
	m.state = Stopped
	m.mu.Unlock()
	select {
	case m.finishedCh <- struct{}{}:
	default:
	}
}

// SimulateError injects err on the error channel.
func (m *Mock) SimulateError(err error) {
	select {
	case m.errCh <- err:
	default:
	}
}
