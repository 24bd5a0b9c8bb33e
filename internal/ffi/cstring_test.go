package ffi

import (
	"errors"
	"testing"
	"unsafe"
)

func TestCString(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{name: "plain ascii", in: "Hello World!"},
		{name: "empty", in: ""},
		{name: "utf8", in: "héllo 世界"},
		{name: "embedded NUL", in: "he\x00llo", wantErr: true},
		{name: "trailing NUL", in: "hello\x00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := CString(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidString) {
					t.Fatalf("CString(%q) error = %v, want ErrInvalidString", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("CString(%q) unexpected error: %v", tt.in, err)
			}
			got := unsafe.Slice(p, len(tt.in)+1)
			if string(got[:len(tt.in)]) != tt.in {
				t.Errorf("CString(%q) buffer = %q", tt.in, got[:len(tt.in)])
			}
			if got[len(tt.in)] != 0 {
				t.Errorf("CString(%q) missing NUL terminator", tt.in)
			}
		})
	}
}

func TestGoString(t *testing.T) {
	buf := []byte("clipboard text\x00trailing garbage")
	got := GoString(uintptr(unsafe.Pointer(&buf[0])))
	if got != "clipboard text" {
		t.Errorf("GoString = %q, want %q", got, "clipboard text")
	}

	if got := GoString(0); got != "" {
		t.Errorf("GoString(0) = %q, want empty", got)
	}

	empty := []byte{0}
	if got := GoString(uintptr(unsafe.Pointer(&empty[0]))); got != "" {
		t.Errorf("GoString(empty) = %q, want empty", got)
	}
}
