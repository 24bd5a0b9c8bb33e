// Package sdl3 provides cgo-free Go bindings for the SDL3 library,
// covering the GPU API descriptor surface and the system clipboard.
//
// # Overview
//
// sdl3 loads the native SDL3 shared library at runtime using purego, so no
// C toolchain is needed to build programs that use it. The binding is a thin
// marshaling layer: every operation is a single synchronous call into SDL,
// and all validation of descriptor field combinations is left to SDL itself.
//
// # Quick Start
//
//	import (
//	    "github.com/gustafla/sdl3"
//	    "github.com/gustafla/sdl3/clipboard"
//	)
//
//	if err := sdl3.Init(sdl3.InitVideo); err != nil {
//	    log.Fatal(err)
//	}
//	defer sdl3.Quit()
//
//	if err := clipboard.SetText("Hello World!"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Packages
//
//   - sdl3: library init, error and color types
//   - clipboard: system clipboard access (requires the video subsystem)
//   - gpu: GPU device, resources, and the descriptor builder types that
//     mirror the SDL_GPU* C structures field for field
//
// # Library Resolution
//
// The loader tries the platform's usual shared-library names (libSDL3.so.0,
// libSDL3.dylib, SDL3.dll). Set the SDL3_LIBRARY environment variable to
// force a specific path. SDL 3.2.0 or newer is required; loading fails with
// a descriptive error when the GPU entry points are missing.
//
// # Errors
//
// Calls that SDL reports as failed return a [*Error] carrying the native
// library's own last-error message. Failures are never retried; each call
// either fully succeeds or is not considered to have happened.
package sdl3
