package ffi

import "github.com/ebitengine/purego"

// Core SDL entry points (SDL_init.h, SDL_stdinc.h, SDL_error.h).
var (
	Init          func(flags uint32) bool
	InitSubSystem func(flags uint32) bool
	Quit          func()
	QuitSubSystem func(flags uint32)
	WasInit       func(flags uint32) uint32
	GetVersion    func() int32
	GetError      func() string

	// Free releases memory allocated by the native library. Buffers
	// returned by SDL (for example SDL_GetClipboardText) must be released
	// here and never through the Go allocator.
	Free func(mem uintptr)
)

func registerStdinc(lib uintptr) {
	purego.RegisterLibFunc(&Init, lib, "SDL_Init")
	purego.RegisterLibFunc(&InitSubSystem, lib, "SDL_InitSubSystem")
	purego.RegisterLibFunc(&Quit, lib, "SDL_Quit")
	purego.RegisterLibFunc(&QuitSubSystem, lib, "SDL_QuitSubSystem")
	purego.RegisterLibFunc(&WasInit, lib, "SDL_WasInit")
	purego.RegisterLibFunc(&GetVersion, lib, "SDL_GetVersion")
	purego.RegisterLibFunc(&GetError, lib, "SDL_GetError")
	purego.RegisterLibFunc(&Free, lib, "SDL_free")
}
