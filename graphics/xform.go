package graphics

// WrapMode controls how XForm samples outside the source area's bounds.
type WrapMode int

const (
	// Repeat tiles the source area indefinitely in both directions.
	Repeat WrapMode = iota
	// ClampToEdge holds the nearest edge pixel outside the source area.
	ClampToEdge
	// ClampToBorder leaves destination pixels untouched outside the source area.
	ClampToBorder
	// MirroredRepeat tiles the source area, mirroring every other tile.
	MirroredRepeat
	// MirrorClampToEdge mirrors the source area once, then clamps beyond that.
	MirrorClampToEdge
	// MirrorClampToBorder mirrors the source area once, then leaves
	// destination pixels untouched beyond that.
	MirrorClampToBorder
)

// XFormRegister names one of the eight Mode-7 transform registers.
type XFormRegister int

const (
	RegisterH XFormRegister = iota
	RegisterV
	RegisterA
	RegisterB
	RegisterC
	RegisterD
	RegisterX
	RegisterY
)

// XFormOp overrides a single register starting at a given scanline.
type XFormOp struct {
	Register XFormRegister
	Value    float32
}

// XFormTableEntry groups every register override that takes effect at the
// start of a given scanline (0-based, relative to the drawing area).
type XFormTableEntry struct {
	ScanLine int
	Ops      []XFormOp
}

// XForm describes a Mode-7 style affine per-scanline texture sampler: eight
// registers (H, V, A, B, C, D, X, Y) define the affine map from destination
// to source coordinates, and an optional per-scanline table can override any
// subset of them partway through the draw (akin to HDMA register writes on
// the SNES).
type XForm struct {
	Registers [8]float32
	Wrap      WrapMode
	Table     []XFormTableEntry
}

// NewXForm returns an XForm with H/V/X/Y at 0, A/D at 1 (identity scale) and
// B/C at 0 (no shear/rotation).
func NewXForm() *XForm {
	x := &XForm{}
	x.Registers[RegisterA] = 1
	x.Registers[RegisterD] = 1
	return x
}

func mirror(v, period int) int {
	v = imod(v, 2*period)
	if v >= period {
		v = 2*period - 1 - v
	}
	return v
}

// sampleWrap maps a source coordinate `v` (0-based into a span of length
// `n`) according to `wrap`. It returns the wrapped coordinate and whether
// the destination pixel should be written at all (false only for the
// "Border" variants, outside range).
func sampleWrap(wrap WrapMode, v, n int, isPowerOfTwo bool) (int, bool) {
	switch wrap {
	case Repeat:
		if isPowerOfTwo {
			return v & (n - 1), true
		}
		return imod(v, n), true
	case ClampToEdge:
		if v < 0 {
			return 0, true
		}
		if v > n-1 {
			return n - 1, true
		}
		return v, true
	case ClampToBorder:
		if v < 0 || v > n-1 {
			return 0, false
		}
		return v, true
	case MirroredRepeat:
		return mirror(v, n), true
	case MirrorClampToEdge:
		if v < -n {
			v = -n
		}
		if v > 2*n-1 {
			v = 2*n - 1
		}
		return mirror(v, n), true
	case MirrorClampToBorder:
		if v < 0 || v > n-1 {
			if v < -n || v > 2*n-1 {
				return 0, false
			}
			return mirror(v, n), true
		}
		return v, true
	default:
		return 0, false
	}
}

// XForm renders `area` of `source` into the context's clip region, starting
// at `position` in the destination and treating `position` as the
// pre-transform screen origin for register (X, Y) purposes.
func (c *Context) XForm(source *Surface, area Rectangle, position Point, xform *XForm) {
	clip := c.current.clip
	shifting := &c.current.shifting
	transparent := &c.current.transparent
	surface := c.Surface

	x0 := position.X
	y0 := position.Y
	x1 := position.X + (clip.x1 - clip.x0)
	y1 := position.Y + (clip.y1 - clip.y0)

	if x0 < clip.x0 {
		x0 = clip.x0
	}
	if y0 < clip.y0 {
		y0 = clip.y0
	}
	if x1 > clip.x1 {
		x1 = clip.x1
	}
	if y1 > clip.y1 {
		y1 = clip.y1
	}

	width := x1 - x0 + 1
	height := y1 - y0 + 1
	if width <= 0 || height <= 0 {
		return
	}

	sw := area.Width
	sh := area.Height
	sminx := area.X
	sminy := area.Y

	swidth := source.Width
	dwidth := surface.Width

	dskip := dwidth - width

	dptr := y0*dwidth + x0

	h := xform.Registers[RegisterH]
	v := xform.Registers[RegisterV]
	a := xform.Registers[RegisterA]
	b := xform.Registers[RegisterB]
	cc := xform.Registers[RegisterC]
	d := xform.Registers[RegisterD]
	rx := xform.Registers[RegisterX]
	ry := xform.Registers[RegisterY]

	table := xform.Table
	tableIndex := 0

	powerOfTwo := source.IsPowerOfTwo() && sw == source.Width && sh == source.Height

	for i := 0; i < height; i++ {
		for tableIndex < len(table) && table[tableIndex].ScanLine == i {
			for _, op := range table[tableIndex].Ops {
				switch op.Register {
				case RegisterH:
					h = op.Value
				case RegisterV:
					v = op.Value
				case RegisterA:
					a = op.Value
				case RegisterB:
					b = op.Value
				case RegisterC:
					cc = op.Value
				case RegisterD:
					d = op.Value
				case RegisterX:
					rx = op.Value
				case RegisterY:
					ry = op.Value
				}
			}
			tableIndex++
		}

		xi := 0.0 - rx
		yi := float32(i) - ry

		xp := (a*xi + b*yi) + rx + h
		yp := (cc*xi + d*yi) + ry + v

		for j := 0; j < width; j++ {
			sx := int(xp)
			sy := int(yp)

			sx, okx := sampleWrap(xform.Wrap, sx, sw, powerOfTwo)
			sy, oky := sampleWrap(xform.Wrap, sy, sh, powerOfTwo)

			if okx && oky {
				sx += sminx
				sy += sminy
				index := shifting[source.Data[sy*swidth+sx]]
				if !transparent[index] {
					surface.Data[dptr] = index
				}
			}

			dptr++
			xp += a
			yp += cc
		}

		dptr += dskip
	}
}
