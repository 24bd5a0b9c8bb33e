package sdl3

import "github.com/gustafla/sdl3/internal/ffi"

// InitFlags selects the SDL subsystems to initialize.
// Values match the SDL_INIT_* constants.
type InitFlags uint32

const (
	InitAudio    InitFlags = 0x00000010
	InitVideo    InitFlags = 0x00000020
	InitJoystick InitFlags = 0x00000200
	InitHaptic   InitFlags = 0x00001000
	InitGamepad  InitFlags = 0x00002000
	InitEvents   InitFlags = 0x00004000
	InitSensor   InitFlags = 0x00008000
	InitCamera   InitFlags = 0x00010000
)

// Init loads the native SDL3 library if necessary and initializes the given
// subsystems. The clipboard requires [InitVideo].
func Init(flags InitFlags) error {
	if err := ffi.Load(); err != nil {
		return err
	}
	if !ffi.Init(uint32(flags)) {
		return lastError("SDL_Init")
	}
	Logger().Debug("sdl3: initialized", "flags", uint32(flags))
	return nil
}

// InitSubSystem initializes additional subsystems after [Init].
func InitSubSystem(flags InitFlags) error {
	if err := ffi.Load(); err != nil {
		return err
	}
	if !ffi.InitSubSystem(uint32(flags)) {
		return lastError("SDL_InitSubSystem")
	}
	return nil
}

// QuitSubSystem shuts down specific subsystems.
func QuitSubSystem(flags InitFlags) {
	if ffi.Load() != nil {
		return
	}
	ffi.QuitSubSystem(uint32(flags))
}

// WasInit reports which of the given subsystems are initialized.
// Passing 0 queries all subsystems.
func WasInit(flags InitFlags) InitFlags {
	if ffi.Load() != nil {
		return 0
	}
	return InitFlags(ffi.WasInit(uint32(flags)))
}

// Quit shuts down all SDL subsystems. The library itself stays loaded;
// [Init] may be called again afterwards.
func Quit() {
	if ffi.Load() != nil {
		return
	}
	ffi.Quit()
}
