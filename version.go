package sdl3

import "github.com/gustafla/sdl3/internal/ffi"

// Version reports the version of the loaded native SDL library.
// SDL encodes the version as major*1000000 + minor*1000 + micro.
func Version() (major, minor, micro int, err error) {
	if err := ffi.Load(); err != nil {
		return 0, 0, 0, err
	}
	v := int(ffi.GetVersion())
	return v / 1000000, v / 1000 % 1000, v % 1000, nil
}
