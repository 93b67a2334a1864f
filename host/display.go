//go:build !headless

package host

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tofuengine/tofu/graphics"
	"github.com/tofuengine/tofu/script"
)

// Display is an ebiten-backed presenter: it owns the window, pulls RGBA
// frames out of a graphics.Surface through a graphics.Processor each tick,
// and feeds keyboard/mouse state back into the script VM.
type Display struct {
	config Config
	vm     *script.VM
	source *graphics.Surface

	frameBuffer []byte
	pixels      []graphics.Color
	image       *ebiten.Image

	lastTick time.Time
	quit     bool

	clipboard Clipboard
}

// NewDisplay creates a Display rendering `source` through `vm`'s processor,
// windowed per `config`.
func NewDisplay(config Config, vm *script.VM, source *graphics.Surface) *Display {
	d := &Display{
		config: config,
		vm:     vm,
		source: source,
		pixels: make([]graphics.Color, source.Width*source.Height),
	}
	d.frameBuffer = make([]byte, source.Width*source.Height*4)

	vm.SetClipboardHooks(d.readClipboard, d.writeClipboard)
	vm.Quit = d.requestQuit
	return d
}

func (d *Display) requestQuit() { d.quit = true }

// Run opens the window and blocks until the game quits or the window is
// closed.
func (d *Display) Run() error {
	ebiten.SetWindowSize(d.config.Width*d.config.Scale, d.config.Height*d.config.Scale)
	ebiten.SetWindowTitle(d.config.Title)
	ebiten.SetWindowResizable(true)
	ebiten.SetVsyncEnabled(d.config.VSync)
	if d.config.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	d.lastTick = time.Now()
	if err := ebiten.RunGame(d); err != nil {
		return &Error{Operation: "run", Details: "ebiten game loop", Err: err}
	}
	return nil
}

// Update implements ebiten.Game: it polls input, steps the script VM and
// its timers/audio mixer, and quits cleanly on a window-close request.
func (d *Display) Update() error {
	if d.quit || ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}

	now := time.Now()
	deltaTime := now.Sub(d.lastTick).Seconds()
	d.lastTick = now

	d.vm.SetInputState(d.pollInput())

	if err := d.vm.Update(deltaTime); err != nil {
		return err
	}
	d.vm.Timers.Update(deltaTime)
	d.vm.Timers.GC(nil)
	d.vm.Mixer.Update()
	return nil
}

// Draw implements ebiten.Game: it asks the script to render into the
// surface, converts the indexed surface to RGBA through the processor,
// and blits it to the window.
func (d *Display) Draw(screen *ebiten.Image) {
	if err := d.vm.Render(); err != nil {
		fmt.Println(err)
	}

	d.vm.Processor.ToRGBA(d.source, d.pixels)
	for i, c := range d.pixels {
		d.frameBuffer[i*4+0] = c.R
		d.frameBuffer[i*4+1] = c.G
		d.frameBuffer[i*4+2] = c.B
		d.frameBuffer[i*4+3] = c.A
	}

	if d.image == nil {
		d.image = ebiten.NewImage(d.source.Width, d.source.Height)
	}
	d.image.WritePixels(d.frameBuffer)
	screen.DrawImage(d.image, nil)
}

// Layout implements ebiten.Game, keeping the logical resolution fixed and
// letting the window scale around it.
func (d *Display) Layout(outsideWidth, outsideHeight int) (int, int) {
	return d.source.Width, d.source.Height
}

var trackedKeys = []ebiten.Key{
	ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeyArrowLeft, ebiten.KeyArrowRight,
	ebiten.KeyZ, ebiten.KeyX, ebiten.KeyC,
	ebiten.KeyEnter, ebiten.KeyEscape, ebiten.KeySpace,
}

func (d *Display) pollInput() script.InputState {
	state := script.InputState{
		Keys:        make(map[string]bool),
		KeysPressed: make(map[string]bool),
		MouseButtons: make(map[int]bool),
	}
	for _, key := range trackedKeys {
		name := key.String()
		state.Keys[name] = ebiten.IsKeyPressed(key)
		state.KeysPressed[name] = inpututil.IsKeyJustPressed(key)
	}
	x, y := ebiten.CursorPosition()
	state.MouseX, state.MouseY = x, y
	for _, button := range []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonRight, ebiten.MouseButtonMiddle} {
		state.MouseButtons[int(button)] = ebiten.IsMouseButtonPressed(button)
	}
	return state
}

func (d *Display) readClipboard() string      { return d.clipboard.Read() }
func (d *Display) writeClipboard(text string) { d.clipboard.Write(text) }
