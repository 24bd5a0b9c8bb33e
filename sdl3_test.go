package sdl3

import (
	"bytes"
	"context"
	"image/color"
	"log/slog"
	"testing"
)

func TestColorRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		c    Color
	}{
		{"opaque", RGB(12, 34, 56)},
		{"translucent", RGBA(200, 100, 50, 128)},
		{"transparent", Transparent},
		{"white", White},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromColor(tt.c); got != tt.c {
				t.Errorf("FromColor(%v) = %v, want identity", tt.c, got)
			}
		})
	}
}

func TestFromColorStandardTypes(t *testing.T) {
	got := FromColor(color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	want := RGB(10, 20, 30)
	if got != want {
		t.Errorf("FromColor(NRGBA) = %v, want %v", got, want)
	}
	if gray := FromColor(color.Gray{Y: 128}); gray.R != gray.G || gray.G != gray.B {
		t.Errorf("FromColor(Gray) = %v, want equal channels", gray)
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			"with message",
			&Error{Op: "SDL_SetClipboardText", Message: "no video driver"},
			"sdl3: SDL_SetClipboardText: no video driver",
		},
		{
			"without message",
			&Error{Op: "SDL_Init"},
			"sdl3: SDL_Init failed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	Logger().Debug("hello")
	if buf.Len() == 0 {
		t.Error("configured logger received no output")
	}

	SetLogger(nil)
	buf.Reset()
	Logger().Debug("discarded")
	if buf.Len() != 0 {
		t.Error("nil logger should restore the silent default")
	}
}

func TestDefaultLoggerIsSilentAndCheap(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger reports enabled; message formatting will not be skipped")
	}
}
