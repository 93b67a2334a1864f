package script

import (
	"sort"

	lua "github.com/yuin/gopher-lua"

	"github.com/tofuengine/tofu/graphics"
)

const (
	paletteType = "Tofu.Palette"
	surfaceType = "Tofu.Surface"
	contextType = "Tofu.Context"
	sheetType   = "Tofu.Sheet"
	queueType   = "Tofu.Queue"
	programType = "Tofu.Program"
	xformType   = "Tofu.XForm"
)

func (vm *VM) registerGraphics() {
	vm.newMetatable(paletteType, map[string]lua.LGFunction{
		"size":            vm.paletteSize,
		"colors":          vm.paletteColors,
		"color_to_index":  vm.paletteColorToIndex,
		"index_to_color":  vm.paletteIndexToColor,
		"lerp":            vm.paletteLerp,
		"merge":           vm.paletteMerge,
		"set_greyscale":   vm.paletteSetGreyscale,
		"set_quantized":   vm.paletteSetQuantized,
	})
	vm.newMetatable(surfaceType, map[string]lua.LGFunction{
		"width":  vm.surfaceWidth,
		"height": vm.surfaceHeight,
		"peek":   vm.surfacePeek,
		"poke":   vm.surfacePoke,
	})
	vm.newMetatable(contextType, map[string]lua.LGFunction{
		"push":           vm.contextPush,
		"pop":            vm.contextPop,
		"reset":          vm.contextReset,
		"clipping":       vm.contextClipping,
		"shifting":       vm.contextShifting,
		"transparent":    vm.contextTransparent,
		"clear":          vm.contextClear,
		"point":          vm.contextPoint,
		"hline":          vm.contextHLine,
		"vline":          vm.contextVLine,
		"line":           vm.contextLine,
		"polyline":       vm.contextPolyline,
		"filled_rectangle": vm.contextFilledRectangle,
		"filled_triangle": vm.contextFilledTriangle,
		"circle":         vm.contextCircle,
		"filled_circle":  vm.contextFilledCircle,
		"xform":          vm.contextXForm,
	})
	vm.newMetatable(xformType, map[string]lua.LGFunction{
		"wrap":     vm.xformWrap,
		"register": vm.xformRegister,
		"table":    vm.xformTable,
	})
	vm.newMetatable(sheetType, map[string]lua.LGFunction{
		"size":            vm.sheetSize,
		"blit":            vm.sheetBlit,
		"blit_scaled":      vm.sheetBlitScaled,
		"blit_transformed": vm.sheetBlitTransformed,
	})
	vm.newMetatable(queueType, map[string]lua.LGFunction{
		"clear":            vm.queueClear,
		"add":              vm.queueAdd,
		"blit":             vm.queueBlit,
		"blit_scaled":      vm.queueBlitScaled,
		"blit_transformed": vm.queueBlitTransformed,
		"resize":           vm.queueResize,
		"grow":             vm.queueGrow,
	})
	vm.newMetatable(programType, map[string]lua.LGFunction{
		"clear":  vm.programClear,
		"erase":  vm.programErase,
		"nop":    vm.programNop,
		"wait":   vm.programWait,
		"skip":   vm.programSkip,
		"modulo": vm.programModulo,
		"offset": vm.programOffset,
		"colour": vm.programColour,
		"shift":  vm.programShift,
	})

	vm.newModule("Palette", map[string]lua.LGFunction{
		"new": vm.paletteNew,
	})
	vm.newModule("Canvas", map[string]lua.LGFunction{
		"new": vm.surfaceNew,
	})
	vm.newModule("Program", map[string]lua.LGFunction{
		"new": vm.programNew,
	})
	vm.newModule("Sheet", map[string]lua.LGFunction{
		"new": vm.sheetNew,
	})
	vm.newModule("Queue", map[string]lua.LGFunction{
		"new": vm.queueNew,
	})
	vm.newModule("XForm", map[string]lua.LGFunction{
		"new": vm.xformNew,
	})
}

// -- Palette -----------------------------------------------------------

// scriptPalette pairs a palette with its logical colour count: the core
// table always holds 256 addressable entries, but script code works in
// terms of how many it actually asked for.
type scriptPalette struct {
	colors *graphics.Palette
	count  int
}

// paletteNew dispatches on argument count: no args for greyscale-256, one
// number for an N-colour greyscale ramp, or three numbers for an R/G/B
// quantized palette.
func (vm *VM) paletteNew(L *lua.LState) int {
	p := &scriptPalette{colors: &graphics.Palette{}}
	switch L.GetTop() {
	case 0:
		p.count = graphics.MaxColors
		p.colors.SetGreyscale(p.count)
	case 1:
		p.count = L.CheckInt(1)
		p.colors.SetGreyscale(p.count)
	case 3:
		r, g, b := L.CheckInt(1), L.CheckInt(2), L.CheckInt(3)
		p.count = 1 << (r + g + b)
		p.colors.SetQuantized(r, g, b)
	default:
		L.ArgError(1, "expected 0, 1 or 3 arguments")
		return 0
	}
	L.Push(pushUserData(L, p, paletteType))
	return 1
}

func (vm *VM) paletteSetGreyscale(L *lua.LState) int {
	p := checkUserData[scriptPalette](L, 1, paletteType)
	p.count = L.CheckInt(2)
	p.colors.SetGreyscale(p.count)
	return 0
}

func (vm *VM) paletteSetQuantized(L *lua.LState) int {
	p := checkUserData[scriptPalette](L, 1, paletteType)
	r, g, b := L.CheckInt(2), L.CheckInt(3), L.CheckInt(4)
	p.count = 1 << (r + g + b)
	p.colors.SetQuantized(r, g, b)
	return 0
}

func (vm *VM) paletteSize(L *lua.LState) int {
	p := checkUserData[scriptPalette](L, 1, paletteType)
	L.Push(lua.LNumber(p.count))
	return 1
}

func (vm *VM) paletteColors(L *lua.LState) int {
	p := checkUserData[scriptPalette](L, 1, paletteType)
	table := L.NewTable()
	for i := 0; i < p.count; i++ {
		c := p.colors.Colors[i]
		entry := L.NewTable()
		entry.Append(lua.LNumber(c.R))
		entry.Append(lua.LNumber(c.G))
		entry.Append(lua.LNumber(c.B))
		table.RawSetInt(i+1, entry)
	}
	L.Push(table)
	return 1
}

func (vm *VM) paletteColorToIndex(L *lua.LState) int {
	p := checkUserData[scriptPalette](L, 1, paletteType)
	r, g, b := L.CheckInt(2), L.CheckInt(3), L.CheckInt(4)
	index := p.colors.FindNearest(graphics.Color{R: uint8(r), G: uint8(g), B: uint8(b), A: 255})
	L.Push(lua.LNumber(index))
	return 1
}

func (vm *VM) paletteIndexToColor(L *lua.LState) int {
	p := checkUserData[scriptPalette](L, 1, paletteType)
	index := L.CheckInt(2)
	c := p.colors.Colors[index]
	L.Push(lua.LNumber(c.R))
	L.Push(lua.LNumber(c.G))
	L.Push(lua.LNumber(c.B))
	return 3
}

func (vm *VM) paletteLerp(L *lua.LState) int {
	p := checkUserData[scriptPalette](L, 1, paletteType)
	r, g, b := L.CheckInt(2), L.CheckInt(3), L.CheckInt(4)
	ratio := float32(L.CheckNumber(5))
	p.colors.Lerp(graphics.Color{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}, ratio)
	return 0
}

func (vm *VM) paletteMerge(L *lua.LState) int {
	p := checkUserData[scriptPalette](L, 1, paletteType)
	other := checkUserData[scriptPalette](L, 2, paletteType)
	removeDuplicates := L.OptBool(3, false)
	p.count = p.colors.Merge(p.count, other.colors, 0, other.count, removeDuplicates)
	L.Push(lua.LNumber(p.count))
	return 1
}

// -- Surface -------------------------------------------------------------

func (vm *VM) surfaceNew(L *lua.LState) int {
	width, height := L.CheckInt(1), L.CheckInt(2)
	surface := graphics.NewSurface(width, height)
	L.Push(pushUserData(L, surface, surfaceType))
	ctx := graphics.NewContext(surface)
	L.Push(pushUserData(L, ctx, contextType))
	return 2
}

func (vm *VM) surfaceWidth(L *lua.LState) int {
	s := checkUserData[graphics.Surface](L, 1, surfaceType)
	L.Push(lua.LNumber(s.Width))
	return 1
}

func (vm *VM) surfaceHeight(L *lua.LState) int {
	s := checkUserData[graphics.Surface](L, 1, surfaceType)
	L.Push(lua.LNumber(s.Height))
	return 1
}

func (vm *VM) surfacePeek(L *lua.LState) int {
	s := checkUserData[graphics.Surface](L, 1, surfaceType)
	x, y := L.CheckInt(2), L.CheckInt(3)
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		L.ArgError(2, "position out of bounds")
		return 0
	}
	L.Push(lua.LNumber(s.Peek(graphics.Point{X: x, Y: y})))
	return 1
}

func (vm *VM) surfacePoke(L *lua.LState) int {
	s := checkUserData[graphics.Surface](L, 1, surfaceType)
	x, y := L.CheckInt(2), L.CheckInt(3)
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		L.ArgError(2, "position out of bounds")
		return 0
	}
	s.Poke(graphics.Point{X: x, Y: y}, graphics.Pixel(L.CheckInt(4)))
	return 0
}

// -- Context ---------------------------------------------------------------

func (vm *VM) contextPush(L *lua.LState) int {
	checkUserData[graphics.Context](L, 1, contextType).Push()
	return 0
}

func (vm *VM) contextPop(L *lua.LState) int {
	ctx := checkUserData[graphics.Context](L, 1, contextType)
	ctx.Pop(L.OptInt(2, 1))
	return 0
}

func (vm *VM) contextReset(L *lua.LState) int {
	checkUserData[graphics.Context](L, 1, contextType).Reset()
	return 0
}

func (vm *VM) contextClipping(L *lua.LState) int {
	ctx := checkUserData[graphics.Context](L, 1, contextType)
	if L.GetTop() == 1 {
		ctx.SetClipping(nil)
		return 0
	}
	region := graphics.Rectangle{
		X: L.CheckInt(2), Y: L.CheckInt(3),
		Width: L.CheckInt(4), Height: L.CheckInt(5),
	}
	ctx.SetClipping(&region)
	return 0
}

func (vm *VM) contextShifting(L *lua.LState) int {
	ctx := checkUserData[graphics.Context](L, 1, contextType)
	if L.GetTop() == 1 {
		ctx.SetShifting(nil, nil)
		return 0
	}
	from := toPixelSlice(L, L.CheckTable(2))
	to := toPixelSlice(L, L.CheckTable(3))
	ctx.SetShifting(from, to)
	return 0
}

func (vm *VM) contextTransparent(L *lua.LState) int {
	ctx := checkUserData[graphics.Context](L, 1, contextType)
	if L.GetTop() == 1 {
		ctx.SetTransparent(nil, nil)
		return 0
	}
	indexes := toPixelSlice(L, L.CheckTable(2))
	transparentTable := L.CheckTable(3)
	transparent := make([]bool, transparentTable.Len())
	for i := range transparent {
		transparent[i] = lua.LVAsBool(transparentTable.RawGetInt(i + 1))
	}
	ctx.SetTransparent(indexes, transparent)
	return 0
}

func toPixelSlice(L *lua.LState, table *lua.LTable) []graphics.Pixel {
	out := make([]graphics.Pixel, table.Len())
	for i := range out {
		out[i] = graphics.Pixel(lua.LVAsNumber(table.RawGetInt(i + 1)))
	}
	return out
}

func (vm *VM) contextClear(L *lua.LState) int {
	ctx := checkUserData[graphics.Context](L, 1, contextType)
	ctx.Clear(graphics.Pixel(L.CheckInt(2)), L.OptBool(3, true))
	return 0
}

func (vm *VM) contextPoint(L *lua.LState) int {
	ctx := checkUserData[graphics.Context](L, 1, contextType)
	ctx.Point(graphics.Point{X: L.CheckInt(2), Y: L.CheckInt(3)}, graphics.Pixel(L.CheckInt(4)))
	return 0
}

func (vm *VM) contextHLine(L *lua.LState) int {
	ctx := checkUserData[graphics.Context](L, 1, contextType)
	origin := graphics.Point{X: L.CheckInt(2), Y: L.CheckInt(3)}
	ctx.HLine(origin, L.CheckInt(4), graphics.Pixel(L.CheckInt(5)))
	return 0
}

func (vm *VM) contextVLine(L *lua.LState) int {
	ctx := checkUserData[graphics.Context](L, 1, contextType)
	origin := graphics.Point{X: L.CheckInt(2), Y: L.CheckInt(3)}
	ctx.VLine(origin, L.CheckInt(4), graphics.Pixel(L.CheckInt(5)))
	return 0
}

func (vm *VM) contextLine(L *lua.LState) int {
	ctx := checkUserData[graphics.Context](L, 1, contextType)
	p0 := graphics.Point{X: L.CheckInt(2), Y: L.CheckInt(3)}
	p1 := graphics.Point{X: L.CheckInt(4), Y: L.CheckInt(5)}
	ctx.Line(p0, p1, graphics.Pixel(L.CheckInt(6)))
	return 0
}

func (vm *VM) contextPolyline(L *lua.LState) int {
	ctx := checkUserData[graphics.Context](L, 1, contextType)
	table := L.CheckTable(2)
	points := make([]graphics.Point, table.Len()/2)
	for i := range points {
		points[i] = graphics.Point{
			X: int(lua.LVAsNumber(table.RawGetInt(i*2 + 1))),
			Y: int(lua.LVAsNumber(table.RawGetInt(i*2 + 2))),
		}
	}
	ctx.Polyline(points, graphics.Pixel(L.CheckInt(3)))
	return 0
}

func (vm *VM) contextFilledRectangle(L *lua.LState) int {
	ctx := checkUserData[graphics.Context](L, 1, contextType)
	region := graphics.Rectangle{
		X: L.CheckInt(2), Y: L.CheckInt(3),
		Width: L.CheckInt(4), Height: L.CheckInt(5),
	}
	ctx.FilledRectangle(region, graphics.Pixel(L.CheckInt(6)))
	return 0
}

// contextFilledTriangle rasterizes only counter-clockwise-wound vertex
// triples; a triangle wound the other way draws nothing unless the optional
// trailing flag is true, which reorders mis-wound input first.
func (vm *VM) contextFilledTriangle(L *lua.LState) int {
	ctx := checkUserData[graphics.Context](L, 1, contextType)
	v0 := graphics.Point{X: L.CheckInt(2), Y: L.CheckInt(3)}
	v1 := graphics.Point{X: L.CheckInt(4), Y: L.CheckInt(5)}
	v2 := graphics.Point{X: L.CheckInt(6), Y: L.CheckInt(7)}
	ctx.FilledTriangle(v0, v1, v2, graphics.Pixel(L.CheckInt(8)), L.OptBool(9, false))
	return 0
}

func (vm *VM) contextCircle(L *lua.LState) int {
	ctx := checkUserData[graphics.Context](L, 1, contextType)
	ctx.Circle(graphics.Point{X: L.CheckInt(2), Y: L.CheckInt(3)}, L.CheckInt(4), graphics.Pixel(L.CheckInt(5)))
	return 0
}

func (vm *VM) contextFilledCircle(L *lua.LState) int {
	ctx := checkUserData[graphics.Context](L, 1, contextType)
	ctx.FilledCircle(graphics.Point{X: L.CheckInt(2), Y: L.CheckInt(3)}, L.CheckInt(4), graphics.Pixel(L.CheckInt(5)))
	return 0
}

// -- Sheet -----------------------------------------------------------------

func (vm *VM) sheetSize(L *lua.LState) int {
	sheet := checkUserData[graphics.Sheet](L, 1, sheetType)
	cellID := L.CheckInt(2)
	scaleX := float32(L.OptNumber(3, 1))
	scaleY := float32(L.OptNumber(4, 1))
	w, h := sheet.Size(cellID, scaleX, scaleY)
	L.Push(lua.LNumber(w))
	L.Push(lua.LNumber(h))
	return 2
}

func (vm *VM) sheetBlit(L *lua.LState) int {
	sheet := checkUserData[graphics.Sheet](L, 1, sheetType)
	ctx := checkUserData[graphics.Context](L, 2, contextType)
	cellID := L.CheckInt(3)
	position := graphics.Point{X: L.CheckInt(4), Y: L.CheckInt(5)}
	sheet.Blit(ctx, position, cellID)
	return 0
}

func (vm *VM) sheetBlitScaled(L *lua.LState) int {
	sheet := checkUserData[graphics.Sheet](L, 1, sheetType)
	ctx := checkUserData[graphics.Context](L, 2, contextType)
	cellID := L.CheckInt(3)
	position := graphics.Point{X: L.CheckInt(4), Y: L.CheckInt(5)}
	sx, sy := float32(L.CheckNumber(6)), float32(L.CheckNumber(7))
	sheet.BlitScaled(ctx, position, cellID, sx, sy)
	return 0
}

func (vm *VM) sheetBlitTransformed(L *lua.LState) int {
	sheet := checkUserData[graphics.Sheet](L, 1, sheetType)
	ctx := checkUserData[graphics.Context](L, 2, contextType)
	cellID := L.CheckInt(3)
	position := graphics.Point{X: L.CheckInt(4), Y: L.CheckInt(5)}
	sx, sy := float32(L.CheckNumber(6)), float32(L.CheckNumber(7))
	rotation := L.CheckInt(8)
	ax, ay := float32(L.OptNumber(9, 0.5)), float32(L.OptNumber(10, 0.5))
	sheet.BlitTransformed(ctx, position, cellID, sx, sy, rotation, ax, ay)
	return 0
}

// -- Queue ------------------------------------------------------------------

func (vm *VM) queueClear(L *lua.LState) int {
	checkUserData[graphics.Queue](L, 1, queueType).Clear()
	return 0
}

func (vm *VM) queueAdd(L *lua.LState) int {
	q := checkUserData[graphics.Queue](L, 1, queueType)
	q.Add(graphics.QueueSprite{
		Position: graphics.Point{X: L.CheckInt(2), Y: L.CheckInt(3)},
		CellID:   L.CheckInt(4),
		ScaleX:   float32(L.OptNumber(5, 1)),
		ScaleY:   float32(L.OptNumber(6, 1)),
		Rotation: L.OptInt(7, 0),
		AnchorX:  float32(L.OptNumber(8, 0.5)),
		AnchorY:  float32(L.OptNumber(9, 0.5)),
	})
	return 0
}

// The three queue flush variants mirror the sheet's: `blit` draws every
// sprite at its position only, `blit_scaled` honours per-sprite scale, and
// `blit_transformed` honours scale, rotation and anchor.
func (vm *VM) queueBlit(L *lua.LState) int {
	q := checkUserData[graphics.Queue](L, 1, queueType)
	ctx := checkUserData[graphics.Context](L, 2, contextType)
	q.Blit(ctx)
	return 0
}

func (vm *VM) queueBlitScaled(L *lua.LState) int {
	q := checkUserData[graphics.Queue](L, 1, queueType)
	ctx := checkUserData[graphics.Context](L, 2, contextType)
	q.BlitScaled(ctx)
	return 0
}

func (vm *VM) queueBlitTransformed(L *lua.LState) int {
	q := checkUserData[graphics.Queue](L, 1, queueType)
	ctx := checkUserData[graphics.Context](L, 2, contextType)
	q.BlitTransformed(ctx)
	return 0
}

func (vm *VM) queueResize(L *lua.LState) int {
	checkUserData[graphics.Queue](L, 1, queueType).Resize(L.CheckInt(2))
	return 0
}

func (vm *VM) queueGrow(L *lua.LState) int {
	checkUserData[graphics.Queue](L, 1, queueType).Grow(L.CheckInt(2))
	return 0
}

// -- Program ----------------------------------------------------------------

func (vm *VM) programNew(L *lua.LState) int {
	L.Push(pushUserData(L, graphics.NewProgram(), programType))
	return 1
}

func (vm *VM) programClear(L *lua.LState) int {
	checkUserData[graphics.Program](L, 1, programType).Clear()
	return 0
}

func (vm *VM) programErase(L *lua.LState) int {
	p := checkUserData[graphics.Program](L, 1, programType)
	p.Erase(L.CheckInt(2), L.CheckInt(3))
	return 0
}

func (vm *VM) programNop(L *lua.LState) int {
	checkUserData[graphics.Program](L, 1, programType).Nop(L.CheckInt(2))
	return 0
}

func (vm *VM) programWait(L *lua.LState) int {
	p := checkUserData[graphics.Program](L, 1, programType)
	p.Wait(L.CheckInt(2), L.CheckInt(3), L.CheckInt(4))
	return 0
}

func (vm *VM) programSkip(L *lua.LState) int {
	p := checkUserData[graphics.Program](L, 1, programType)
	p.Skip(L.CheckInt(2), L.CheckInt(3), L.CheckInt(4))
	return 0
}

func (vm *VM) programModulo(L *lua.LState) int {
	p := checkUserData[graphics.Program](L, 1, programType)
	p.Modulo(L.CheckInt(2), L.CheckInt(3))
	return 0
}

func (vm *VM) programOffset(L *lua.LState) int {
	p := checkUserData[graphics.Program](L, 1, programType)
	p.Offset(L.CheckInt(2), L.CheckInt(3))
	return 0
}

func (vm *VM) programColour(L *lua.LState) int {
	p := checkUserData[graphics.Program](L, 1, programType)
	index := graphics.Pixel(L.CheckInt(3))
	color := graphics.Color{R: uint8(L.CheckInt(4)), G: uint8(L.CheckInt(5)), B: uint8(L.CheckInt(6)), A: 255}
	p.Colour(L.CheckInt(2), index, color)
	return 0
}

func (vm *VM) programShift(L *lua.LState) int {
	p := checkUserData[graphics.Program](L, 1, programType)
	p.Shift(L.CheckInt(2), graphics.Pixel(L.CheckInt(3)), graphics.Pixel(L.CheckInt(4)))
	return 0
}

// -- Sheet / Queue / XForm construction --------------------------------------

// sheetNew dispatches on whether a fixed cell size (two numbers) or an
// explicit binary cell table (a string of packed records) was given.
func (vm *VM) sheetNew(L *lua.LState) int {
	atlas := checkUserData[graphics.Surface](L, 1, surfaceType)
	var sheet *graphics.Sheet
	if L.GetTop() == 2 {
		sheet = graphics.NewSheet(atlas, []byte(L.CheckString(2)))
	} else {
		sheet = graphics.NewFixedSheet(atlas, L.CheckInt(2), L.CheckInt(3))
	}
	L.Push(pushUserData(L, sheet, sheetType))
	return 1
}

func (vm *VM) queueNew(L *lua.LState) int {
	sheet := checkUserData[graphics.Sheet](L, 1, sheetType)
	q := graphics.NewQueue(sheet, L.OptInt(2, 0))
	L.Push(pushUserData(L, q, queueType))
	return 1
}

func (vm *VM) xformNew(L *lua.LState) int {
	L.Push(pushUserData(L, graphics.NewXForm(), xformType))
	return 1
}

func (vm *VM) xformWrap(L *lua.LState) int {
	x := checkUserData[graphics.XForm](L, 1, xformType)
	x.Wrap = graphics.WrapMode(L.CheckInt(2))
	return 0
}

func (vm *VM) xformRegister(L *lua.LState) int {
	x := checkUserData[graphics.XForm](L, 1, xformType)
	register := graphics.XFormRegister(L.CheckInt(2))
	if L.GetTop() == 2 {
		L.Push(lua.LNumber(x.Registers[register]))
		return 1
	}
	x.Registers[register] = float32(L.CheckNumber(3))
	return 0
}

// xformTable installs a full per-scanline register-override table, given
// as an array of {scanline, register, value} triples grouped by scanline.
func (vm *VM) xformTable(L *lua.LState) int {
	x := checkUserData[graphics.XForm](L, 1, xformType)
	rows := L.CheckTable(2)
	entries := make(map[int][]graphics.XFormOp)
	order := make([]int, 0)
	rows.ForEach(func(_, row lua.LValue) {
		entry, ok := row.(*lua.LTable)
		if !ok {
			return
		}
		scanLine := int(lua.LVAsNumber(entry.RawGetInt(1)))
		op := graphics.XFormOp{
			Register: graphics.XFormRegister(int(lua.LVAsNumber(entry.RawGetInt(2)))),
			Value:    float32(lua.LVAsNumber(entry.RawGetInt(3))),
		}
		if _, seen := entries[scanLine]; !seen {
			order = append(order, scanLine)
		}
		entries[scanLine] = append(entries[scanLine], op)
	})
	sort.Ints(order)
	table := make([]graphics.XFormTableEntry, 0, len(order))
	for _, scanLine := range order {
		table = append(table, graphics.XFormTableEntry{ScanLine: scanLine, Ops: entries[scanLine]})
	}
	x.Table = table
	return 0
}

func (vm *VM) contextXForm(L *lua.LState) int {
	ctx := checkUserData[graphics.Context](L, 1, contextType)
	source := checkUserData[graphics.Surface](L, 2, surfaceType)
	area := graphics.Rectangle{X: L.CheckInt(3), Y: L.CheckInt(4), Width: L.CheckInt(5), Height: L.CheckInt(6)}
	position := graphics.Point{X: L.CheckInt(7), Y: L.CheckInt(8)}
	xform := checkUserData[graphics.XForm](L, 9, xformType)
	ctx.XForm(source, area, position, xform)
	return 0
}
