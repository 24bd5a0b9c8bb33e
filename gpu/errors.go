package gpu

import (
	"errors"

	"github.com/gustafla/sdl3"
	"github.com/gustafla/sdl3/internal/ffi"
)

// Descriptor and resource errors.
var (
	// ErrResourceReleased is returned when a descriptor referencing an
	// already-released resource reaches a native call.
	ErrResourceReleased = errors.New("gpu: descriptor references a released resource")

	// ErrDeviceDestroyed is returned when operating on a destroyed device.
	ErrDeviceDestroyed = errors.New("gpu: device has been destroyed")

	// ErrNilResource is returned when a call requires a resource that was
	// never set on the descriptor or argument list.
	ErrNilResource = errors.New("gpu: required resource is nil")
)

// lastError builds an error for a native call that just reported failure,
// carrying SDL's last-error message.
func lastError(op string) error {
	return sdl3.LastError(op)
}

// loaded returns the library load error, if any. Exposed through a helper
// so every entry point checks it the same way.
func loaded() error {
	return ffi.Load()
}
