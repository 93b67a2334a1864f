package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/tofuengine/tofu/graphics"
)

// SetCanvas installs the engine's canvas surface as the one the script's
// Display module draws to, wrapping it in a fresh drawing context. The host
// calls this once at startup, before the script's `init` runs.
func (vm *VM) SetCanvas(surface *graphics.Surface) {
	vm.canvas = surface
	vm.canvasContext = graphics.NewContext(surface)
}

// registerDisplay exposes the engine's single framebuffer/processor pair:
// the canvas the script renders into, the palette and shifting table the
// processor converts it with, and the display-processor program slot.
func (vm *VM) registerDisplay() {
	vm.newModule("Display", map[string]lua.LGFunction{
		"canvas":         vm.displayCanvas,
		"palette":        vm.displayPalette,
		"color_to_index": vm.displayColorToIndex,
		"shifting":       vm.displayShifting,
		"program":        vm.displayProgram,
	})
}

// displayCanvas returns the engine canvas as a (surface, context) pair, the
// same shape Canvas.new returns for offscreen surfaces.
func (vm *VM) displayCanvas(L *lua.LState) int {
	if vm.canvas == nil {
		L.RaiseError("no canvas is attached to this host")
		return 0
	}
	L.Push(pushUserData(L, vm.canvas, surfaceType))
	L.Push(pushUserData(L, vm.canvasContext, contextType))
	return 2
}

// displayPalette is arity-dispatched: no arguments returns a copy of the
// processor's palette, one argument replaces it.
func (vm *VM) displayPalette(L *lua.LState) int {
	if L.GetTop() == 0 {
		p := &scriptPalette{colors: &graphics.Palette{}, count: vm.paletteCount}
		p.colors.Copy(&vm.Processor.Palette)
		L.Push(pushUserData(L, p, paletteType))
		return 1
	}
	p := checkUserData[scriptPalette](L, 1, paletteType)
	vm.Processor.Palette.Copy(p.colors)
	vm.paletteCount = p.count
	return 0
}

// displayColorToIndex nearest-matches an RGB triple against the processor's
// current palette.
func (vm *VM) displayColorToIndex(L *lua.LState) int {
	r, g, b := L.CheckInt(1), L.CheckInt(2), L.CheckInt(3)
	index := vm.Processor.Palette.FindNearest(graphics.Color{R: uint8(r), G: uint8(g), B: uint8(b), A: 255})
	L.Push(lua.LNumber(index))
	return 1
}

// displayShifting sets the processor's base pixel remap table from two
// parallel {from...}, {to...} arrays; with no arguments it resets the table
// to identity.
func (vm *VM) displayShifting(L *lua.LState) int {
	if L.GetTop() == 0 {
		vm.Processor.SetShifting(nil, nil)
		return 0
	}
	from := toPixelSlice(L, L.CheckTable(1))
	to := toPixelSlice(L, L.CheckTable(2))
	vm.Processor.SetShifting(from, to)
	return 0
}

// displayProgram attaches a display-processor program (the processor keeps
// its own clone, so later edits to the script's copy don't leak into the
// running frame); with no arguments it detaches the current one.
func (vm *VM) displayProgram(L *lua.LState) int {
	if L.GetTop() == 0 {
		vm.Processor.SetProgram(nil)
		return 0
	}
	p := checkUserData[graphics.Program](L, 1, programType)
	vm.Processor.SetProgram(p)
	return 0
}
