package browser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/LN405Rx/lectern/internal/ui/action"
	"github.com/LN405Rx/lectern/internal/ui/testutil"
)

func newTestBrowser(t *testing.T, files ...string) (*testutil.PopupHarness, string) {
	t.Helper()
	dir := t.TempDir()
	for _, name := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	m := New(dir)
	h := testutil.NewPopupHarness(m)
	h.SetSize(60, 20)
	// Run the picker's directory read and feed the result back in.
	h.ExecuteAndSend(h.LastCommand())
	return h, dir
}

func TestView_ListsDocuments(t *testing.T) {
	h, _ := newTestBrowser(t, "alpha.pdf", "beta.pdf")

	if msg := h.AssertViewContains("alpha.pdf"); msg != "" {
		t.Error(msg)
	}
	if msg := h.AssertViewContains("beta.pdf"); msg != "" {
		t.Error(msg)
	}
	if msg := h.AssertViewContains("Open document"); msg != "" {
		t.Error(msg)
	}
}

func TestEscape_EmitsClose(t *testing.T) {
	h, _ := newTestBrowser(t, "alpha.pdf")

	cmd := h.SendEscape()
	if cmd == nil {
		t.Fatal("expected a command on escape")
	}

	msg, ok := testutil.ExecuteCmd(cmd).(action.Msg)
	if !ok {
		t.Fatalf("expected action.Msg, got %T", msg)
	}
	if _, ok := msg.Action.(Close); !ok {
		t.Errorf("expected Close action, got %T", msg.Action)
	}
}

func TestEnter_EmitsOpenWithPath(t *testing.T) {
	h, dir := newTestBrowser(t, "alpha.pdf")

	cmd := h.SendEnter()
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}

	msg, ok := testutil.ExecuteCmd(cmd).(action.Msg)
	if !ok {
		t.Fatalf("expected action.Msg, got %T", testutil.ExecuteCmd(cmd))
	}
	open, ok := msg.Action.(Open)
	if !ok {
		t.Fatalf("expected Open action, got %T", msg.Action)
	}
	if open.Path != filepath.Join(dir, "alpha.pdf") {
		t.Errorf("Path = %q, want %q", open.Path, filepath.Join(dir, "alpha.pdf"))
	}
}
