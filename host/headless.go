//go:build headless

package host

import (
	"fmt"
	"os"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/tofuengine/tofu/graphics"
	"github.com/tofuengine/tofu/script"
)

// asciiRamp maps luminance (darkest to brightest) onto printable characters,
// used by Headless to render a coarse preview of the frame to a terminal
// that has no windowing system at all.
const asciiRamp = " .:-=+*#%@"

// Headless drives the script VM without a window: it runs the same
// update/render/convert pipeline as Display, but prints a downsampled
// ASCII-art preview to stdout instead of presenting RGBA through a GPU
// surface. It exists for CI, scripted playthroughs, and any environment
// without a display — the terminal equivalent of the engine's video
// backend selection.
type Headless struct {
	config Config
	vm     *script.VM
	source *graphics.Surface

	pixels []graphics.Color

	lastTick time.Time
	quit     chan struct{}

	clipboard Clipboard
}

// NewHeadless creates a Headless presenter for `source`, driven by `vm`.
func NewHeadless(config Config, vm *script.VM, source *graphics.Surface) *Headless {
	h := &Headless{
		config: config,
		vm:     vm,
		source: source,
		pixels: make([]graphics.Color, source.Width*source.Height),
		quit:   make(chan struct{}),
	}
	vm.SetClipboardHooks(h.clipboard.Read, h.clipboard.Write)
	vm.Quit = h.requestQuit
	return h
}

func (h *Headless) requestQuit() {
	select {
	case <-h.quit:
	default:
		close(h.quit)
	}
}

// Run drives the update/render loop at the configured refresh rate until
// the script calls System.quit() or stdin delivers 'q'. Raw terminal input
// is read non-blockingly, following the same MakeRaw + SetNonblock pattern
// as a standard interactive terminal front-end; it is skipped entirely if
// stdin isn't a terminal (a pipe, in CI).
func (h *Headless) Run() error {
	var restore func()
	if term.IsTerminal(int(os.Stdin.Fd())) {
		oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
		if err == nil {
			_ = syscall.SetNonblock(int(os.Stdin.Fd()), true)
			restore = func() {
				_ = syscall.SetNonblock(int(os.Stdin.Fd()), false)
				_ = term.Restore(int(os.Stdin.Fd()), oldState)
			}
		}
	}
	if restore != nil {
		defer restore()
	}

	period := time.Second / time.Duration(h.config.RefreshRate)
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	h.lastTick = time.Now()
	buf := make([]byte, 1)

	for {
		select {
		case <-h.quit:
			return nil
		case <-ticker.C:
		}

		if restore != nil {
			if n, _ := syscall.Read(int(os.Stdin.Fd()), buf); n > 0 && buf[0] == 'q' {
				return nil
			}
		}

		now := time.Now()
		deltaTime := now.Sub(h.lastTick).Seconds()
		h.lastTick = now

		if err := h.vm.Update(deltaTime); err != nil {
			return err
		}
		h.vm.Timers.Update(deltaTime)
		h.vm.Timers.GC(nil)
		h.vm.Mixer.Update()

		if err := h.vm.Render(); err != nil {
			return err
		}
		h.vm.Processor.ToRGBA(h.source, h.pixels)
		h.printFrame()
	}
}

// printFrame downsamples the converted RGBA frame to the terminal's current
// width (80 columns if the size can't be determined) and prints one row of
// ASCII luminance glyphs per twice as many source rows as each glyph spans
// horizontally, since terminal glyphs are roughly twice as tall as they are
// wide.
func (h *Headless) printFrame() {
	columns, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || columns <= 0 {
		columns = 80
	}
	if columns > h.source.Width {
		columns = h.source.Width
	}

	cellW := h.source.Width / columns
	if cellW < 1 {
		cellW = 1
	}
	cellH := cellW * 2

	fmt.Print("\033[H\033[2J")
	for y := 0; y < h.source.Height; y += cellH {
		var row []byte
		for x := 0; x < h.source.Width; x += cellW {
			row = append(row, asciiRamp[luminance(h.pixels[y*h.source.Width+x])])
		}
		fmt.Println(string(row))
	}
}

func luminance(c graphics.Color) int {
	y := (int(c.R)*299 + int(c.G)*587 + int(c.B)*114) / 1000
	return y * (len(asciiRamp) - 1) / 255
}
