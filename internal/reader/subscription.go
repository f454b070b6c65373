package reader

const eventBufferSize = 16

// Subscription provides event channels for a subscriber.
type Subscription struct {
	StateChanged <-chan StateChange
	PageChanged  <-chan PageChange
	Loaded       <-chan DocumentLoaded
	Finished     <-chan DocumentFinished
	Error        <-chan ErrorEvent
	Done         <-chan struct{}

	// Internal write channels
	stateCh    chan StateChange
	pageCh     chan PageChange
	loadedCh   chan DocumentLoaded
	finishedCh chan DocumentFinished
	errorCh    chan ErrorEvent
	doneCh     chan struct{}
}

// newSubscription creates a new subscription with buffered channels.
func newSubscription() *Subscription {
	s := &Subscription{
		stateCh:    make(chan StateChange, eventBufferSize),
		pageCh:     make(chan PageChange, eventBufferSize),
		loadedCh:   make(chan DocumentLoaded, eventBufferSize),
		finishedCh: make(chan DocumentFinished, eventBufferSize),
		errorCh:    make(chan ErrorEvent, eventBufferSize),
		doneCh:     make(chan struct{}),
	}
	s.StateChanged = s.stateCh
	s.PageChanged = s.pageCh
	s.Loaded = s.loadedCh
	s.Finished = s.finishedCh
	s.Error = s.errorCh
	s.Done = s.doneCh
	return s
}

// close signals subscribers to stop by closing doneCh.
func (s *Subscription) close() {
	close(s.doneCh)
}

// sendState sends a state change event (non-blocking).
func (s *Subscription) sendState(e StateChange) {
	select {
	case s.stateCh <- e:
	default:
		// Drop if buffer full
	}
}

// sendPage sends a page change event (non-blocking).
func (s *Subscription) sendPage(e PageChange) {
	select {
	case s.pageCh <- e:
	default:
	}
}

// sendLoaded sends a document loaded event (non-blocking).
func (s *Subscription) sendLoaded(e DocumentLoaded) {
	select {
	case s.loadedCh <- e:
	default:
	}
}

// sendFinished sends a document finished event (non-blocking).
func (s *Subscription) sendFinished(e DocumentFinished) {
	select {
	case s.finishedCh <- e:
	default:
	}
}

// sendError sends an error event (non-blocking).
func (s *Subscription) sendError(e ErrorEvent) {
	select {
	case s.errorCh <- e:
	default:
	}
}
