package speech

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSynth struct{}

func (fakeSynth) Synthesize(_ SynthesisRequest, _ string) (string, error) {
	return "", nil
}

func (fakeSynth) Voices() ([]Voice, error) {
	return nil, nil
}

func (fakeSynth) Name() string {
	return "fake"
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(fakeSynth{}, t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	return e
}

func TestInitSpeakerOnce_Concurrent(t *testing.T) {
	speakerMu.Lock()
	origInitialized, origFn := speakerInitialized, speakerInitFn
	speakerMu.Unlock()
	defer func() {
		speakerMu.Lock()
		speakerInitialized, speakerInitFn = origInitialized, origFn
		speakerMu.Unlock()
	}()

	var calls atomic.Int32
	speakerMu.Lock()
	speakerInitialized = false
	speakerInitFn = func(_ beep.SampleRate, _ int) error {
		calls.Add(1)
		return nil
	}
	speakerMu.Unlock()

	format := beep.Format{SampleRate: 22050, NumChannels: 1, Precision: 2}

	// Overlapping synthesis goroutines must initialize the speaker once.
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, initSpeakerOnce(format))
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
}

func TestEngine_SpeakBlankCompletesStopped(t *testing.T) {
	e := newTestEngine(t)

	require.NoError(t, e.Speak("   \n\t"))

	select {
	case <-e.FinishedChan():
	case <-time.After(time.Second):
		t.Fatal("no finished signal for blank utterance")
	}
	assert.Equal(t, Stopped, e.State())
}

func TestEngine_UtteranceDoneResetsState(t *testing.T) {
	e := newTestEngine(t)

	e.mu.Lock()
	e.gen++
	gen := e.gen
	e.state = Playing
	e.mu.Unlock()

	e.utteranceDone(gen)

	assert.Equal(t, Stopped, e.State())
	select {
	case <-e.FinishedChan():
	case <-time.After(time.Second):
		t.Fatal("no finished signal after natural end of utterance")
	}
}

func TestEngine_UtteranceDoneStaleGenerationIgnored(t *testing.T) {
	e := newTestEngine(t)

	e.mu.Lock()
	e.gen = 5
	e.state = Playing
	e.mu.Unlock()

	e.utteranceDone(4)

	assert.Equal(t, Playing, e.State())
	select {
	case <-e.FinishedChan():
		t.Fatal("stale utterance should not signal finished")
	default:
	}
}
