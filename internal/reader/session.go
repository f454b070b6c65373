package reader

// Session is a snapshot of the current reading session. Rate, volume and
// voice persist across document loads; page index and state reset.
type Session struct {
	DocumentPath string
	DocumentName string
	PageIndex    int
	PageCount    int
	State        State
	Rate         int     // words per minute
	Volume       float64 // 0.0..1.0
	Voice        string  // engine voice ID, "" for default
}
