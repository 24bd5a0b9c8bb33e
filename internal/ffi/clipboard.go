package ffi

import "github.com/ebitengine/purego"

// Clipboard entry points (SDL_clipboard.h).
var (
	SetClipboardText func(text *byte) bool

	// GetClipboardText returns a buffer owned by the native allocator.
	// Callers copy it with [GoString] and release it with [Free].
	GetClipboardText func() uintptr

	HasClipboardText func() bool
)

func registerClipboard(lib uintptr) {
	purego.RegisterLibFunc(&SetClipboardText, lib, "SDL_SetClipboardText")
	purego.RegisterLibFunc(&GetClipboardText, lib, "SDL_GetClipboardText")
	purego.RegisterLibFunc(&HasClipboardText, lib, "SDL_HasClipboardText")
}
