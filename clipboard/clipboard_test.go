package clipboard_test

import (
	"errors"
	"testing"

	"github.com/gustafla/sdl3"
	"github.com/gustafla/sdl3/clipboard"
	"github.com/gustafla/sdl3/internal/ffi"
)

// requireVideo initializes the video subsystem or skips the test when SDL
// or a display is unavailable (headless CI).
func requireVideo(t *testing.T) {
	t.Helper()
	if err := sdl3.Init(sdl3.InitVideo); err != nil {
		t.Skipf("video subsystem unavailable: %v", err)
	}
	t.Cleanup(sdl3.Quit)
}

func TestSetTextEmbeddedNUL(t *testing.T) {
	requireVideo(t)
	err := clipboard.SetText("bad\x00text")
	if !errors.Is(err, ffi.ErrInvalidString) {
		t.Fatalf("SetText with embedded NUL: error = %v, want ErrInvalidString", err)
	}
}

func TestRoundTrip(t *testing.T) {
	requireVideo(t)

	const want = "Hello World!"
	if err := clipboard.SetText(want); err != nil {
		t.Fatalf("SetText: %v", err)
	}
	if !clipboard.HasText() {
		t.Error("HasText = false after SetText")
	}
	got, err := clipboard.Text()
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}

func TestRoundTripUTF8(t *testing.T) {
	requireVideo(t)

	const want = "héllo, 世界 👋"
	if err := clipboard.SetText(want); err != nil {
		t.Fatalf("SetText: %v", err)
	}
	got, err := clipboard.Text()
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}

func TestEmptyClipboard(t *testing.T) {
	requireVideo(t)

	// Setting the empty string clears the clipboard.
	if err := clipboard.SetText(""); err != nil {
		t.Fatalf("SetText(\"\"): %v", err)
	}
	if clipboard.HasText() {
		t.Error("HasText = true after clearing the clipboard")
	}
	// SDL returns an allocated empty string for an empty clipboard, so
	// this is success-with-empty rather than an error.
	got, err := clipboard.Text()
	if err != nil {
		t.Fatalf("Text on empty clipboard: %v", err)
	}
	if got != "" {
		t.Errorf("Text on empty clipboard = %q, want empty", got)
	}
}
