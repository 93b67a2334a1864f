package graphics

// Processor interprets an indexed Surface into RGBA output, either through
// a fixed palette/shifting lookup or by running a Program that can rewrite
// the palette and shifting table mid-frame, on a scanline-linear-position
// basis — the engine's "Copper".
type Processor struct {
	Palette  Palette
	shifting [MaxColors]Pixel
	program  *Program
}

// NewProcessor returns a processor with a greyscale default palette and
// identity shifting.
func NewProcessor() *Processor {
	p := &Processor{}
	p.Palette.SetGreyscale(MaxColors)
	p.Reset()
	return p
}

// Reset restores identity shifting and detaches any program; the palette is
// untouched.
func (p *Processor) Reset() {
	p.SetShifting(nil, nil)
	p.SetProgram(nil)
}

// SetShifting remaps `from[i]` to `to[i]`. Passing nil resets to identity.
func (p *Processor) SetShifting(from, to []Pixel) {
	if from == nil {
		for i := 0; i < MaxColors; i++ {
			p.shifting[i] = Pixel(i)
		}
		return
	}
	for i := range from {
		p.shifting[from[i]] = to[i]
	}
}

// SetProgram attaches a clone of `program` to run on every subsequent
// ToRGBA call; passing nil detaches it and reverts to plain palette lookup.
func (p *Processor) SetProgram(program *Program) {
	if program == nil {
		p.program = nil
		return
	}
	p.program = program.Clone()
}

// ToRGBA converts `surface` into `pixels` (which must have at least
// surface.Width*surface.Height entries), through the plain palette/shifting
// lookup if no program is attached, or by interpreting the attached program
// one scanline-linear-position at a time otherwise.
func (p *Processor) ToRGBA(surface *Surface, pixels []Color) {
	if p.program == nil {
		p.plainToRGBA(surface, pixels)
		return
	}
	p.programToRGBA(surface, pixels)
}

func (p *Processor) plainToRGBA(surface *Surface, pixels []Color) {
	palette := &p.Palette.Colors
	shifting := &p.shifting
	for i, index := range surface.Data {
		pixels[i] = palette[shifting[index]]
	}
}

// programToRGBA runs the attached program against local copies of the
// palette and shifting table (the processor's own state must stay
// untouched by program execution), one "position" (row*width+column) at a
// time, following the same structure as a hardware Copper list: the
// interpreter keeps executing instructions that are due ("position >= wait
// target") before emitting the next pixel.
func (p *Processor) programToRGBA(surface *Surface, pixels []Color) {
	var palette [MaxColors]Color
	var shifting [MaxColors]Pixel
	palette = p.Palette.Colors
	shifting = p.shifting

	wait := 0
	modulo := 0
	offset := 0 // Always in [0, width).

	entries := p.program.Entries
	entryIndex := 0

	dwidth := surface.Width
	dheight := surface.Height

	srcRow := 0
	position := 0

	interpret := func() {
		for position >= wait {
			entry := entries[entryIndex]
			switch entry.Command {
			case CommandNop:
			case CommandWait:
				wait = entry.WaitY*dwidth + entry.WaitX
			case CommandSkip:
				wait += entry.SkipDY*dwidth + entry.SkipDX
			case CommandModulo:
				modulo = entry.Modulo
			case CommandOffset:
				offset = imod(entry.Offset, dwidth)
			case CommandColour:
				palette[entry.Index] = entry.Color
			case CommandShift:
				shifting[entry.ShiftFrom] = entry.ShiftTo
			}
			entryIndex++
		}
	}

	for h := 0; h < dheight; h++ {
		// Instructions due at a row's first position run before the row's
		// write pointer is seeded, so an Offset rotates the row it lands on,
		// not just the ones after it.
		interpret()

		dstStartOfData := h * dwidth
		dstEndOfData := dstStartOfData + dwidth
		dst := dstStartOfData + offset

		for w := 0; w < dwidth; w++ {
			if w > 0 {
				interpret()
			}

			index := shifting[surface.Data[srcRow+w]]
			pixels[dst] = palette[index]
			dst++
			if dst == dstEndOfData {
				dst = dstStartOfData
			}

			position++
		}

		srcRow += dwidth + modulo
	}
}
