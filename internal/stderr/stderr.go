//go:build !windows

// Package stderr captures writes to file descriptor 2 made by C libraries
// underneath the audio backend (ALSA in particular), which bypass os.Stderr
// and would otherwise scribble over the TUI.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"syscall"
)

// Messages receives the captured stderr lines. The shell drains it and logs
// each line instead of letting it hit the terminal.
var Messages = make(chan string, 100)

var (
	origStderr int
	pipeRead   *os.File
	pipeWrite  *os.File
	started    bool
)

// Start redirects fd 2 into a pipe feeding Messages. Call it before the
// speaker initializes; the program works without capture if it fails, the
// noise just lands on the real stderr.
func Start() error {
	if started {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	origStderr, err = syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	err = syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd()))
	if err != nil {
		syscall.Close(origStderr)
		r.Close()
		w.Close()
		return err
	}

	pipeRead = r
	pipeWrite = w
	started = true

	go func() {
		scanner := bufio.NewScanner(pipeRead)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			select {
			case Messages <- line:
			default:
				// drop rather than block the audio thread
			}
		}
	}()

	return nil
}

// Stop restores the original fd 2 and closes Messages. Call on exit.
func Stop() {
	if !started {
		return
	}

	_ = syscall.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = syscall.Close(origStderr)

	pipeWrite.Close()
	pipeRead.Close()

	close(Messages)
	started = false
}
