//go:build windows

// Package stderr is a no-op on Windows, where the audio backend does not
// produce the ALSA-style fd 2 noise seen elsewhere.
package stderr

// Messages never receives anything on Windows.
var Messages = make(chan string)

// Start is a no-op on Windows.
func Start() error {
	return nil
}

// Stop is a no-op on Windows.
func Stop() {}
