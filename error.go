package sdl3

import "github.com/gustafla/sdl3/internal/ffi"

// Error describes a failed call into the native SDL library.
// Message holds SDL's own last-error text captured at the time of failure.
type Error struct {
	// Op is the native entry point that reported the failure,
	// for example "SDL_SetClipboardText".
	Op string

	// Message is the text SDL_GetError returned for the failure.
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return "sdl3: " + e.Op + " failed"
	}
	return "sdl3: " + e.Op + ": " + e.Message
}

// GetError returns the native library's last-error message for the calling
// thread, or an empty string when the library is not loaded.
//
// Most callers never need this: failing calls already capture the message
// in the [*Error] they return.
func GetError() string {
	if ffi.Load() != nil {
		return ""
	}
	return ffi.GetError()
}

// lastError builds an *Error for a native call that just reported failure.
func lastError(op string) error {
	return &Error{Op: op, Message: ffi.GetError()}
}

// LastError builds an error for a failed native call named by op, carrying
// SDL's current last-error message. Used by sub-packages; applications
// normally receive these errors rather than construct them.
func LastError(op string) error {
	if err := ffi.Load(); err != nil {
		return err
	}
	return lastError(op)
}
