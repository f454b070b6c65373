package statusbar

import (
	"strings"
	"testing"
	"time"

	"github.com/LN405Rx/lectern/internal/reader"
	"github.com/LN405Rx/lectern/internal/ui/testutil"
)

func TestRender_NoDocument(t *testing.T) {
	out := testutil.StripANSI(Render(State{}, 80))

	if !strings.Contains(out, "No document") {
		t.Errorf("expected open hint, got %q", out)
	}
}

func TestRender_ShowsDocumentAndPage(t *testing.T) {
	s := State{
		ReaderState: reader.StatePlaying,
		Document:    "moby-dick.pdf",
		PageIndex:   4,
		PageCount:   212,
		Position:    30 * time.Second,
		Duration:    2 * time.Minute,
		Rate:        200,
		Volume:      0.8,
	}

	out := testutil.StripANSI(Render(s, 100))

	if !strings.Contains(out, "moby-dick.pdf") {
		t.Errorf("missing document name in %q", out)
	}
	if !strings.Contains(out, "page 5/212") {
		t.Errorf("missing 1-based page display in %q", out)
	}
	if !strings.Contains(out, "200 wpm") {
		t.Errorf("missing rate in %q", out)
	}
	if !strings.Contains(out, "80%") {
		t.Errorf("missing volume in %q", out)
	}
	if !strings.Contains(out, "0:30 / 2:00") {
		t.Errorf("missing time display in %q", out)
	}
}

func TestRender_StoppedOmitsTime(t *testing.T) {
	s := State{
		ReaderState: reader.StateStopped,
		Document:    "book.pdf",
		PageCount:   3,
		Rate:        200,
		Volume:      1,
	}

	out := testutil.StripANSI(Render(s, 100))

	if strings.Contains(out, "/ 0:00") {
		t.Errorf("stopped bar should not show a time display: %q", out)
	}
}

func TestRender_ShowsVoice(t *testing.T) {
	s := State{
		ReaderState: reader.StatePaused,
		Document:    "book.pdf",
		PageCount:   3,
		Rate:        150,
		Volume:      1,
		Voice:       "en-gb",
	}

	out := testutil.StripANSI(Render(s, 100))

	if !strings.Contains(out, "en-gb") {
		t.Errorf("missing voice in %q", out)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{90 * time.Second, "1:30"},
		{10 * time.Minute, "10:00"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
