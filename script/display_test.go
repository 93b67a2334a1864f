package script

import (
	"testing"

	"github.com/tofuengine/tofu/graphics"
)

func TestScriptDisplayCanvasExposesTheEngineSurface(t *testing.T) {
	vm := newTestVM()
	defer vm.Close()

	canvas := graphics.NewSurface(32, 16)
	vm.SetCanvas(canvas)

	if err := vm.LoadString(`
surface, ctx = Display.canvas()
w, h = surface:width(), surface:height()
ctx:clear(7, false)
`); err != nil {
		t.Fatalf("LoadString: %v", err)
	}

	if w := vm.state.GetGlobal("w"); w.String() != "32" {
		t.Fatalf("w = %v, want 32", w)
	}
	if h := vm.state.GetGlobal("h"); h.String() != "16" {
		t.Fatalf("h = %v, want 16", h)
	}
	for i, p := range canvas.Data {
		if p != 7 {
			t.Fatalf("canvas.Data[%d] = %d, want 7 (script clear must reach the engine canvas)", i, p)
		}
	}
}

func TestScriptDisplayCanvasWithoutHostCanvasErrors(t *testing.T) {
	vm := newTestVM()
	defer vm.Close()

	if err := vm.LoadString(`Display.canvas()`); err == nil {
		t.Fatalf("Display.canvas() with no canvas attached: want an error")
	}
}

func TestScriptDisplayPaletteRoundTrip(t *testing.T) {
	vm := newTestVM()
	defer vm.Close()

	if err := vm.LoadString(`
p = Palette.new(1, 1, 1)
Display.palette(p)
idx = Display.color_to_index(255, 255, 255)
back = Display.palette()
`); err != nil {
		t.Fatalf("LoadString: %v", err)
	}

	// In the 1/1/1-bit quantized cube white is the last of the 8 entries.
	if idx := vm.state.GetGlobal("idx"); idx.String() != "7" {
		t.Fatalf("idx = %v, want 7", idx)
	}
	if vm.Processor.Palette.Colors[7] != (graphics.Color{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("Colors[7] = %+v, want white (palette must reach the processor)", vm.Processor.Palette.Colors[7])
	}
}

func TestScriptDisplayProgramAttachAndDetach(t *testing.T) {
	vm := newTestVM()
	defer vm.Close()

	canvas := graphics.NewSurface(4, 1)
	canvas.Data[0], canvas.Data[1], canvas.Data[2], canvas.Data[3] = 1, 2, 3, 4
	vm.SetCanvas(canvas)

	if err := vm.LoadString(`
prog = Program.new()
prog:offset(0, 1)
Display.program(prog)
`); err != nil {
		t.Fatalf("LoadString: %v", err)
	}

	pixels := make([]graphics.Color, 4)
	vm.Processor.ToRGBA(canvas, pixels)
	// Offset 1 rotates the output row: row pointer starts one column in and
	// wraps, so the first written pixel lands at column 1.
	if pixels[1].R != 1 || pixels[0].R != 4 {
		t.Fatalf("programmed output = %+v, want the row rotated by the offset program", pixels)
	}

	if err := vm.LoadString(`Display.program()`); err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	vm.Processor.ToRGBA(canvas, pixels)
	if pixels[0].R != 1 {
		t.Fatalf("pixels[0].R = %d, want 1 after detaching the program", pixels[0].R)
	}
}

func TestScriptDisplayShiftingRemapsConversion(t *testing.T) {
	vm := newTestVM()
	defer vm.Close()

	canvas := graphics.NewSurface(1, 1)
	canvas.Data[0] = 3
	vm.SetCanvas(canvas)

	if err := vm.LoadString(`Display.shifting({3}, {9})`); err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	pixels := make([]graphics.Color, 1)
	vm.Processor.ToRGBA(canvas, pixels)
	if pixels[0].R != 9 {
		t.Fatalf("pixels[0].R = %d, want 9 (greyscale palette through shifting 3->9)", pixels[0].R)
	}

	if err := vm.LoadString(`Display.shifting()`); err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	vm.Processor.ToRGBA(canvas, pixels)
	if pixels[0].R != 3 {
		t.Fatalf("pixels[0].R = %d, want 3 after resetting shifting", pixels[0].R)
	}
}
