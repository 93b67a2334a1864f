// Package script embeds a Lua virtual machine and exposes the engine's
// graphics, audio, timer, input and system facilities to it as userdata
// objects with method tables, one Go file per Lua module.
package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/tofuengine/tofu/audio"
	"github.com/tofuengine/tofu/graphics"
	"github.com/tofuengine/tofu/timer"
)

// VM wraps a Lua state plus the engine resources its bound modules reach
// into. Callers create one VM per running game, call LoadFile or LoadString
// to install the entry-point script, then drive Init/Update/Render each
// frame.
type VM struct {
	state *lua.LState

	Processor *graphics.Processor
	Mixer     *audio.Mixer
	Timers    *timer.Pool

	canvas        *graphics.Surface
	canvasContext *graphics.Context
	paletteCount  int // logical size of the palette last installed on the processor

	inputState InputState

	// DecodeAudio opens a named asset as an audio.Decoder; wired by the
	// host layer, which knows how to resolve script-relative paths and
	// pick a decoder for the file's format.
	DecodeAudio func(path string) (audio.Decoder, error)

	// ReadClipboard, WriteClipboard and Quit are wired by the host; any
	// may be left nil if the host doesn't support them.
	ReadClipboard  func() string
	WriteClipboard func(string)
	Quit           func()
}

// NewVM creates a VM wired to the given engine resources and registers
// every built-in module under its own global table (Display, Canvas,
// Palette, Program, Sheet, Queue, XForm, Source, Speakers, Timer, Input,
// System).
func NewVM(processor *graphics.Processor, mixer *audio.Mixer, timers *timer.Pool) *VM {
	vm := &VM{
		state:        lua.NewState(),
		Processor:    processor,
		Mixer:        mixer,
		Timers:       timers,
		paletteCount: graphics.MaxColors,
	}
	vm.registerGraphics()
	vm.registerDisplay()
	vm.registerAudio()
	vm.registerTimer()
	vm.registerInput()
	vm.registerSystem()
	return vm
}

// Close releases the underlying Lua state.
func (vm *VM) Close() {
	vm.state.Close()
}

// SetClipboardHooks wires the host's clipboard read/write functions into the
// System module. Either may be nil if the host has no clipboard support.
func (vm *VM) SetClipboardHooks(read func() string, write func(string)) {
	vm.ReadClipboard = read
	vm.WriteClipboard = write
}

// LoadString compiles and runs `source` as the game's entry-point chunk,
// typically a `tofu.lua` script defining the `init`/`update`/`render`
// global functions.
func (vm *VM) LoadString(source string) error {
	if err := vm.state.DoString(source); err != nil {
		return fmt.Errorf("script: load: %w", err)
	}
	return nil
}

// LoadFile compiles and runs a file on disk as the entry-point chunk.
func (vm *VM) LoadFile(path string) error {
	if err := vm.state.DoFile(path); err != nil {
		return fmt.Errorf("script: load %s: %w", path, err)
	}
	return nil
}

// callGlobal invokes a zero-or-more-argument global function if it is
// defined. Lifecycle callbacks (`init`, `deinit`, ...) are optional, so an
// undefined global is skipped rather than an error.
func (vm *VM) callGlobal(name string, args ...lua.LValue) error {
	fn := vm.state.GetGlobal(name)
	if fn == lua.LNil {
		return nil
	}
	if err := vm.state.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, args...); err != nil {
		return fmt.Errorf("script: %s: %w", name, err)
	}
	return nil
}

// Init calls the script's `init` function, if defined.
func (vm *VM) Init() error { return vm.callGlobal("init") }

// Update calls the script's `update` function with the elapsed time in
// seconds, if defined.
func (vm *VM) Update(deltaTime float64) error {
	return vm.callGlobal("update", lua.LNumber(deltaTime))
}

// Render calls the script's `render` function, if defined.
func (vm *VM) Render() error { return vm.callGlobal("render") }

// Deinit calls the script's `deinit` function, if defined.
func (vm *VM) Deinit() error { return vm.callGlobal("deinit") }

// newModule registers a table of named Go functions under `name` as a
// global.
func (vm *VM) newModule(name string, fns map[string]lua.LGFunction) *lua.LTable {
	table := vm.state.NewTable()
	for fname, fn := range fns {
		table.RawSetString(fname, vm.state.NewFunction(fn))
	}
	vm.state.SetGlobal(name, table)
	return table
}

// newMetatable registers a metatable for a userdata type, with `__index`
// pointing at a method table built from `methods`.
func (vm *VM) newMetatable(name string, methods map[string]lua.LGFunction) *lua.LTable {
	mt := vm.state.NewTypeMetatable(name)
	vm.state.SetField(mt, "__index", vm.state.SetFuncs(vm.state.NewTable(), methods))
	return mt
}

func checkUserData[T any](L *lua.LState, pos int, typeName string) *T {
	ud := L.CheckUserData(pos)
	value, ok := ud.Value.(*T)
	if !ok {
		L.ArgError(pos, typeName+" expected")
		return nil
	}
	return value
}

func pushUserData(L *lua.LState, value any, typeName string) *lua.LUserData {
	ud := L.NewUserData()
	ud.Value = value
	L.SetMetatable(ud, L.GetTypeMetatable(typeName))
	return ud
}
