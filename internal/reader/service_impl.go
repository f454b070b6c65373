package reader

import (
	"fmt"
	"sync"
	"time"

	"github.com/LN405Rx/lectern/internal/document"
	"github.com/LN405Rx/lectern/internal/speech"
)

// Verify serviceImpl implements Service at compile time.
var _ Service = (*serviceImpl)(nil)

type serviceImpl struct {
	mu sync.RWMutex

	engine    speech.Interface
	extractor Extractor

	doc       *document.Document
	pageIndex int
	state     State

	subs   []*Subscription
	subsMu sync.RWMutex

	closed bool
}

// New creates a new reading service.
func New(engine speech.Interface, extractor Extractor) Service {
	return &serviceImpl{
		engine:    engine,
		extractor: extractor,
	}
}

// Load extracts the document at path and makes it current. Any reading in
// progress stops; page position resets to the first page. Rate, volume and
// voice carry over from the previous session.
func (s *serviceImpl) Load(path string) error {
	doc, err := s.extractor.Extract(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	s.mu.Lock()
	if s.state.IsActive() {
		s.engine.Stop()
	}
	prev := s.state
	s.doc = doc
	s.pageIndex = 0
	s.state = StateStopped
	s.mu.Unlock()

	if prev != StateStopped {
		s.emitState(StateChange{Previous: prev, Current: StateStopped})
	}
	s.emitLoaded(DocumentLoaded{
		Path:      doc.Path(),
		Name:      doc.Name(),
		PageCount: doc.PageCount(),
	})
	return nil
}

// Play starts or resumes reading the current page. Starting on a page with
// no speakable text skips forward to the next page that has some; if no
// page remains the document is reported finished.
func (s *serviceImpl) Play() error {
	s.mu.Lock()
	if s.doc == nil {
		s.mu.Unlock()
		return ErrNoDocument
	}

	switch s.state {
	case StatePlaying:
		s.mu.Unlock()
		return nil
	case StatePaused:
		s.engine.Resume()
		s.state = StatePlaying
		s.mu.Unlock()
		s.emitState(StateChange{Previous: StatePaused, Current: StatePlaying})
		return nil
	}

	start := s.doc.NextNonEmpty(s.pageIndex)
	if start < 0 {
		doc := s.doc
		s.mu.Unlock()
		s.emitFinished(DocumentFinished{
			Path:      doc.Path(),
			Name:      doc.Name(),
			PageCount: doc.PageCount(),
		})
		return nil
	}

	prevPage := s.pageIndex
	s.pageIndex = start
	if err := s.engine.Speak(s.doc.Page(start)); err != nil {
		s.pageIndex = prevPage
		s.mu.Unlock()
		return fmt.Errorf("speak page %d: %w", start+1, err)
	}
	s.state = StatePlaying
	s.mu.Unlock()

	if prevPage != start {
		s.emitPage(PageChange{Previous: prevPage, Current: start})
	}
	s.emitState(StateChange{Previous: StateStopped, Current: StatePlaying})
	return nil
}

// Pause suspends reading mid-utterance. A no-op unless playing.
func (s *serviceImpl) Pause() error {
	s.mu.Lock()
	if s.doc == nil {
		s.mu.Unlock()
		return ErrNoDocument
	}
	if s.state != StatePlaying {
		s.mu.Unlock()
		return nil
	}
	s.engine.Pause()
	s.state = StatePaused
	s.mu.Unlock()

	s.emitState(StateChange{Previous: StatePlaying, Current: StatePaused})
	return nil
}

// Stop halts reading. The page position is kept so Play restarts the
// current page from its beginning.
func (s *serviceImpl) Stop() error {
	s.mu.Lock()
	if s.doc == nil {
		s.mu.Unlock()
		return ErrNoDocument
	}
	if s.state == StateStopped {
		s.mu.Unlock()
		return nil
	}
	prev := s.state
	s.engine.Stop()
	s.state = StateStopped
	s.mu.Unlock()

	s.emitState(StateChange{Previous: prev, Current: StateStopped})
	return nil
}

// Toggle alternates between playing and paused. When stopped it starts
// reading.
func (s *serviceImpl) Toggle() error {
	s.mu.RLock()
	state := s.state
	s.mu.RUnlock()

	if state == StatePlaying {
		return s.Pause()
	}
	return s.Play()
}

// NextPage moves to the following page. A no-op on the last page.
func (s *serviceImpl) NextPage() error {
	s.mu.RLock()
	if s.doc == nil {
		s.mu.RUnlock()
		return ErrNoDocument
	}
	index := s.pageIndex + 1
	s.mu.RUnlock()
	return s.JumpToPage(index)
}

// PreviousPage moves to the preceding page. A no-op on the first page.
func (s *serviceImpl) PreviousPage() error {
	s.mu.RLock()
	if s.doc == nil {
		s.mu.RUnlock()
		return ErrNoDocument
	}
	index := s.pageIndex - 1
	s.mu.RUnlock()
	return s.JumpToPage(index)
}

// JumpToPage moves to the given page index. Out-of-range indexes are
// ignored. If reading is active the current utterance stops and the new
// page starts immediately; when paused the new page starts paused.
func (s *serviceImpl) JumpToPage(index int) error {
	s.mu.Lock()
	if s.doc == nil {
		s.mu.Unlock()
		return ErrNoDocument
	}
	if index < 0 || index >= s.doc.PageCount() || index == s.pageIndex {
		s.mu.Unlock()
		return nil
	}

	prev := s.pageIndex
	s.pageIndex = index

	if !s.state.IsActive() {
		s.mu.Unlock()
		s.emitPage(PageChange{Previous: prev, Current: index})
		return nil
	}

	prevState := s.state
	wasPaused := prevState == StatePaused
	s.engine.Stop()
	if err := s.engine.Speak(s.doc.Page(index)); err != nil {
		s.state = StateStopped
		s.mu.Unlock()
		s.emitPage(PageChange{Previous: prev, Current: index})
		s.emitState(StateChange{Previous: prevState, Current: StateStopped})
		return fmt.Errorf("speak page %d: %w", index+1, err)
	}
	if wasPaused {
		s.engine.Pause()
	}
	s.mu.Unlock()

	s.emitPage(PageChange{Previous: prev, Current: index})
	return nil
}

// UtteranceFinished advances to the next page with speakable text after the
// current page ends naturally. On the final page reading stops, the page
// position is kept, and DocumentFinished is emitted.
func (s *serviceImpl) UtteranceFinished() {
	s.mu.Lock()
	if s.doc == nil || s.state != StatePlaying {
		s.mu.Unlock()
		return
	}

	next := s.doc.NextNonEmpty(s.pageIndex + 1)
	if next < 0 {
		doc := s.doc
		s.state = StateStopped
		s.mu.Unlock()
		s.emitState(StateChange{Previous: StatePlaying, Current: StateStopped})
		s.emitFinished(DocumentFinished{
			Path:      doc.Path(),
			Name:      doc.Name(),
			PageCount: doc.PageCount(),
		})
		return
	}

	prev := s.pageIndex
	s.pageIndex = next
	text := s.doc.Page(next)
	path := s.doc.Path()
	err := s.engine.Speak(text)
	if err != nil {
		s.state = StateStopped
	}
	s.mu.Unlock()

	s.emitPage(PageChange{Previous: prev, Current: next})
	if err != nil {
		s.emitState(StateChange{Previous: StatePlaying, Current: StateStopped})
		s.emitError(ErrorEvent{Operation: "speak", Path: path, Err: err})
	}
}

// SetRate updates the speaking rate in words per minute. Takes effect on
// the next utterance.
func (s *serviceImpl) SetRate(wpm int) error {
	if wpm < MinRate || wpm > MaxRate {
		return fmt.Errorf("%w: %d wpm (valid: %d-%d)", ErrInvalidRate, wpm, MinRate, MaxRate)
	}
	s.engine.SetRate(wpm)
	return nil
}

// Rate returns the speaking rate in words per minute.
func (s *serviceImpl) Rate() int {
	return s.engine.Rate()
}

// SetVolume updates the playback volume. Takes effect immediately.
func (s *serviceImpl) SetVolume(level float64) error {
	if level < 0 || level > 1 {
		return fmt.Errorf("%w: %.2f (valid: 0.0-1.0)", ErrInvalidVolume, level)
	}
	s.engine.SetVolume(level)
	return nil
}

// Volume returns the playback volume.
func (s *serviceImpl) Volume() float64 {
	return s.engine.Volume()
}

// SetVoice selects the synthesizer voice by ID. The empty ID restores the
// default voice. Takes effect on the next utterance.
func (s *serviceImpl) SetVoice(id string) error {
	if id != "" {
		found := false
		for _, v := range s.engine.Voices() {
			if v.ID == id {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: %q", ErrUnknownVoice, id)
		}
	}
	s.engine.SetVoice(id)
	return nil
}

// Voice returns the current voice ID.
func (s *serviceImpl) Voice() string {
	return s.engine.Voice()
}

// Voices lists the voices offered by the engine.
func (s *serviceImpl) Voices() []speech.Voice {
	return s.engine.Voices()
}

// State returns the current reading state.
func (s *serviceImpl) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// IsPlaying returns true when reading aloud.
func (s *serviceImpl) IsPlaying() bool {
	return s.State() == StatePlaying
}

// IsPaused returns true when suspended mid-utterance.
func (s *serviceImpl) IsPaused() bool {
	return s.State() == StatePaused
}

// IsStopped returns true when not reading.
func (s *serviceImpl) IsStopped() bool {
	return s.State() == StateStopped
}

// Position returns the position within the current utterance.
func (s *serviceImpl) Position() time.Duration {
	return s.engine.Position()
}

// Duration returns the duration of the current utterance.
func (s *serviceImpl) Duration() time.Duration {
	return s.engine.Duration()
}

// Document returns the current document, or nil if none.
func (s *serviceImpl) Document() *document.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

// PageIndex returns the current page index (0 when no document).
func (s *serviceImpl) PageIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pageIndex
}

// PageCount returns the number of pages (0 when no document).
func (s *serviceImpl) PageCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.doc == nil {
		return 0
	}
	return s.doc.PageCount()
}

// PageText returns the text of the current page ("" when no document).
func (s *serviceImpl) PageText() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.doc == nil {
		return ""
	}
	return s.doc.Page(s.pageIndex)
}

// Session returns a snapshot of the reading session.
func (s *serviceImpl) Session() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess := Session{
		PageIndex: s.pageIndex,
		State:     s.state,
		Rate:      s.engine.Rate(),
		Volume:    s.engine.Volume(),
		Voice:     s.engine.Voice(),
	}
	if s.doc != nil {
		sess.DocumentPath = s.doc.Path()
		sess.DocumentName = s.doc.Name()
		sess.PageCount = s.doc.PageCount()
	}
	return sess
}

// Engine returns the underlying speech engine.
func (s *serviceImpl) Engine() speech.Interface {
	return s.engine
}

// Subscribe creates a new event subscription.
func (s *serviceImpl) Subscribe() *Subscription {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	sub := newSubscription()
	s.subs = append(s.subs, sub)
	return sub
}

// Close shuts down the service and the engine.
func (s *serviceImpl) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.state = StateStopped
	s.mu.Unlock()

	s.subsMu.Lock()
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
	s.subsMu.Unlock()

	return s.engine.Close()
}

func (s *serviceImpl) emitState(e StateChange) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendState(e)
	}
}

func (s *serviceImpl) emitPage(e PageChange) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendPage(e)
	}
}

func (s *serviceImpl) emitLoaded(e DocumentLoaded) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendLoaded(e)
	}
}

func (s *serviceImpl) emitFinished(e DocumentFinished) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendFinished(e)
	}
}

func (s *serviceImpl) emitError(e ErrorEvent) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendError(e)
	}
}
