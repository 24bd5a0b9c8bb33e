package ffi

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"
)

// ErrInvalidString is returned when a Go string cannot be represented as a
// NUL-terminated C string. This is a programming error surfaced before any
// native call is made.
var ErrInvalidString = errors.New("ffi: string contains an embedded NUL byte")

// CString copies s into a NUL-terminated buffer and returns a pointer to
// its first byte. The buffer is managed by the Go runtime; keep a reference
// alive for the duration of the native call.
func CString(s string) (*byte, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidString, s)
	}
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return &buf[0], nil
}

// GoString copies the NUL-terminated buffer at p into a Go string.
// Ownership of p is unchanged: a buffer allocated by the native library
// must still be released through that library's allocator afterwards.
func GoString(p uintptr) string {
	if p == 0 {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Pointer(p + uintptr(n))) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(p)), n))
}
