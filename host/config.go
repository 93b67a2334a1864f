// Package host wires the engine's script VM, graphics processor and audio
// mixer to the outside world: a window (or a raw terminal), an audio
// device, a clipboard, and the game's asset files.
package host

// Config is hardware-independent display/window configuration, handed to
// whichever backend the game selects.
type Config struct {
	Width       int
	Height      int
	Scale       int // Integer scaling factor for output.
	RefreshRate int // Target refresh rate in Hz.
	VSync       bool
	Fullscreen  bool
	Title       string

	SampleRate           int // Audio device sample rate, in Hz.
	InitialTimerCapacity int // Starting slot count for the timer pool.
}

// ClampScale keeps the integer output scale within a sane range.
func ClampScale(s int) int {
	if s < 1 {
		return 1
	}
	if s > 8 {
		return 8
	}
	return s
}

// DefaultConfig returns the configuration a freshly started game boots
// with, absent any script or command-line override.
func DefaultConfig() Config {
	return Config{
		Width:                320,
		Height:               240,
		Scale:                2,
		RefreshRate:          60,
		VSync:                true,
		Title:                "tofu",
		SampleRate:           44100,
		InitialTimerCapacity: 16,
	}
}
