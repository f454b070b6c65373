package reader

// StateChange is emitted when the reading state changes.
type StateChange struct {
	Previous State
	Current  State
}

// PageChange is emitted when the current page changes.
//
// Emitted by:
//   - NextPage/PreviousPage/JumpToPage: explicit navigation
//   - auto-advance: when a page finishes and reading moves to the next
//
// NOT emitted by:
//   - Load: DocumentLoaded carries the initial page instead
//   - Pause/Stop: state changes do not emit PageChange
type PageChange struct {
	Previous int
	Current  int
}

// DocumentLoaded is emitted when a document load completes.
type DocumentLoaded struct {
	Path      string
	Name      string
	PageCount int
}

// DocumentFinished is emitted when the final page ends naturally.
type DocumentFinished struct {
	Path      string
	Name      string
	PageCount int
}

// ErrorEvent is emitted when an operation fails asynchronously.
type ErrorEvent struct {
	Operation string // e.g., "load", "speak"
	Path      string // document path if applicable
	Err       error
}
