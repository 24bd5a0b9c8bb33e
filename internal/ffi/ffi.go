// Package ffi resolves the native SDL3 entry points used by this module.
//
// The library is loaded once, lazily, via [Load]. Every entry point is a
// package-level function variable registered with purego; callers must
// check the [Load] error before invoking any of them.
package ffi

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/gustafla/sdl3/internal/dl"
)

var (
	loadOnce sync.Once
	loadErr  error
)

// Load resolves the native SDL3 library and registers every entry point
// this module uses. It is safe for concurrent use; only the first call
// does any work, later calls return the cached result.
func Load() error {
	loadOnce.Do(func() { loadErr = load() })
	return loadErr
}

// libraryCandidates returns the shared-library names to try, in order.
// The SDL3_LIBRARY environment variable overrides the platform defaults.
func libraryCandidates() []string {
	if env := os.Getenv("SDL3_LIBRARY"); env != "" {
		return []string{env}
	}
	switch runtime.GOOS {
	case "darwin":
		return []string{"libSDL3.dylib", "libSDL3.0.dylib", "SDL3.framework/SDL3"}
	case "windows":
		return []string{"SDL3.dll"}
	default:
		return []string{"libSDL3.so.0", "libSDL3.so"}
	}
}

func load() (err error) {
	// purego panics when a symbol is missing from the loaded library,
	// for example when an SDL build predates the GPU API.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("ffi: registering SDL3 entry points: %v", r)
		}
	}()

	lib, dlErr := dl.Open(libraryCandidates()...)
	if dlErr != nil {
		return fmt.Errorf("ffi: SDL3 not available: %w", dlErr)
	}

	registerStdinc(lib)
	registerClipboard(lib)
	registerGPU(lib)
	return nil
}
