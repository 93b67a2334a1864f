package script

import "testing"

func TestScriptPaletteNewDispatchesOnArgCount(t *testing.T) {
	vm := newTestVM()
	defer vm.Close()

	if err := vm.LoadString(`
p0 = Palette.new()
p1 = Palette.new(4)
p3 = Palette.new(1, 1, 1)
s0, s1, s3 = p0:size(), p1:size(), p3:size()
`); err != nil {
		t.Fatalf("LoadString: %v", err)
	}

	if s0 := vm.state.GetGlobal("s0"); s0.String() != "256" {
		t.Fatalf("s0 = %v, want 256 (default greyscale size)", s0)
	}
	if s1 := vm.state.GetGlobal("s1"); s1.String() != "4" {
		t.Fatalf("s1 = %v, want 4", s1)
	}
	if s3 := vm.state.GetGlobal("s3"); s3.String() != "8" {
		t.Fatalf("s3 = %v, want 8 (1x1x1 bit quantized cube, 2^3)", s3)
	}
}

func TestScriptPaletteColorToIndexAndBack(t *testing.T) {
	vm := newTestVM()
	defer vm.Close()

	if err := vm.LoadString(`
p = Palette.new()
idx = p:color_to_index(255, 255, 255)
r, g, b = p:index_to_color(idx)
`); err != nil {
		t.Fatalf("LoadString: %v", err)
	}

	if idx := vm.state.GetGlobal("idx"); idx.String() != "255" {
		t.Fatalf("idx = %v, want the greyscale palette's white entry at index 255", idx)
	}
	if r := vm.state.GetGlobal("r"); r.String() != "255" {
		t.Fatalf("r = %v, want 255", r)
	}
}

func TestScriptCanvasNewReturnsSurfaceAndContext(t *testing.T) {
	vm := newTestVM()
	defer vm.Close()

	if err := vm.LoadString(`
surface, ctx = Canvas.new(16, 8)
w = surface:width()
h = surface:height()
ctx:clear(3, true)
`); err != nil {
		t.Fatalf("LoadString: %v", err)
	}

	if w := vm.state.GetGlobal("w"); w.String() != "16" {
		t.Fatalf("w = %v, want 16", w)
	}
	if h := vm.state.GetGlobal("h"); h.String() != "8" {
		t.Fatalf("h = %v, want 8", h)
	}
}

func TestScriptContextDrawingPrimitivesDoNotError(t *testing.T) {
	vm := newTestVM()
	defer vm.Close()

	err := vm.LoadString(`
surface, ctx = Canvas.new(8, 8)
ctx:point(1, 1, 2)
ctx:hline(0, 0, 4, 2)
ctx:vline(0, 0, 4, 2)
ctx:line(0, 0, 7, 7, 2)
ctx:filled_rectangle(0, 0, 4, 4, 2)
ctx:filled_triangle(0, 0, 7, 0, 0, 7, 2, false)
ctx:circle(4, 4, 2, 2)
ctx:filled_circle(4, 4, 2, 2)
ctx:polyline({0, 0, 7, 0, 7, 7}, 2)
ctx:push()
ctx:clipping(0, 0, 4, 4)
ctx:shifting({0}, {1})
ctx:transparent({0}, {true})
ctx:pop()
ctx:reset()
`)
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}
}

func TestScriptProgramBuildsDisplayList(t *testing.T) {
	vm := newTestVM()
	defer vm.Close()

	if err := vm.LoadString(`
prog = Program.new()
prog:wait(0, 10, 0)
prog:colour(0, 0, 255, 0, 0)
prog:shift(0, 1, 2)
prog:modulo(0, 4)
prog:offset(0, 8)
prog:nop(0)
prog:skip(0, 1, 0)
prog:erase(0, 1)
prog:clear()
`); err != nil {
		t.Fatalf("LoadString: %v", err)
	}
}

func TestScriptSheetAndQueueRoundTrip(t *testing.T) {
	vm := newTestVM()
	defer vm.Close()

	if err := vm.LoadString(`
atlas = Canvas.new(16, 16)
sheet = Sheet.new(atlas, 8, 8)
w, h = sheet:size(0)
queue = Queue.new(sheet, 2)
queue:add(0, 0, 0)
queue:add(4, 4, 1, 1, 1, 0, 0.5, 0.5)
_, ctx = Canvas.new(16, 16)
queue:blit(ctx)
queue:blit_scaled(ctx)
queue:blit_transformed(ctx)
queue:clear()
queue:grow(8)
queue:resize(4)
`); err != nil {
		t.Fatalf("LoadString: %v", err)
	}

	if w := vm.state.GetGlobal("w"); w.String() != "8" {
		t.Fatalf("w = %v, want 8 (fixed 8x8 cell)", w)
	}
}

func TestScriptXFormRegisterGetSet(t *testing.T) {
	vm := newTestVM()
	defer vm.Close()

	if err := vm.LoadString(`
xform = XForm.new()
xform:register(0, 2.5)
value = xform:register(0)
`); err != nil {
		t.Fatalf("LoadString: %v", err)
	}

	if v := vm.state.GetGlobal("value"); v.String() != "2.5" {
		t.Fatalf("value = %v, want 2.5", v)
	}
}
