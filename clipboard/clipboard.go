// Package clipboard synchronizes a string value with the process-global
// system clipboard owned by SDL.
//
// The video subsystem must be initialized first:
//
//	if err := sdl3.Init(sdl3.InitVideo); err != nil { ... }
//	clipboard.SetText("Hello World!")
//
// All three operations are thin synchronous calls into the native library
// with no internal locking; any serialization guarantee between concurrent
// callers is provided by SDL, not by this package.
package clipboard

import (
	"github.com/gustafla/sdl3"
	"github.com/gustafla/sdl3/internal/ffi"
)

// SetText places text on the system clipboard. SDL keeps its own copy of
// the text; the caller's string is not retained.
//
// Returns [ffi.ErrInvalidString]-wrapped error if text contains an embedded
// NUL byte (surfaced before any native call), or a [*sdl3.Error] when the
// platform rejects the update.
func SetText(text string) error {
	if err := ffi.Load(); err != nil {
		return err
	}
	ctext, err := ffi.CString(text)
	if err != nil {
		return err
	}
	if !ffi.SetClipboardText(ctext) {
		return sdl3.LastError("SDL_SetClipboardText")
	}
	return nil
}

// Text returns the current clipboard text.
//
// An empty clipboard yields an empty string and a nil error; an error is
// returned only when the platform reports that no text is accessible at
// all. The returned string is an independent copy: the buffer SDL hands
// out is released back through SDL's own allocator before Text returns,
// so no native memory crosses into the Go runtime.
func Text() (string, error) {
	if err := ffi.Load(); err != nil {
		return "", err
	}
	buf := ffi.GetClipboardText()
	if buf == 0 {
		return "", sdl3.LastError("SDL_GetClipboardText")
	}
	// Copy first, free second: the buffer belongs to the native heap and
	// must go back through SDL_free, never the Go allocator.
	text := ffi.GoString(buf)
	ffi.Free(buf)
	return text, nil
}

// HasText reports whether the clipboard currently holds a non-empty text
// value. It has no failure mode; when the library cannot be loaded it
// reports false.
func HasText() bool {
	if ffi.Load() != nil {
		return false
	}
	return ffi.HasClipboardText()
}
