package graphics

import "math"

// Command names one display-processor instruction.
type Command int

const (
	CommandNop Command = iota
	CommandWait
	CommandSkip
	CommandModulo
	CommandOffset
	CommandColour
	CommandShift
)

// ProgramEntry is a single display-processor instruction. Only the fields
// relevant to Command are meaningful; the rest are zero.
type ProgramEntry struct {
	Command   Command
	WaitX     int // Wait: scanline-relative column to resume at.
	WaitY     int // Wait: scanline to resume at.
	SkipDX    int // Skip: column delta added to the current wait target.
	SkipDY    int // Skip: scanline delta added to the current wait target.
	Modulo    int // Modulo: signed offset added to the source row pointer at end-of-row.
	Offset    int // Offset: column the next row starts writing at, wrapped into [0, width).
	Index     Pixel // Colour: palette index to override.
	Color     Color // Colour: replacement colour.
	ShiftFrom Pixel // Shift: source pixel index.
	ShiftTo   Pixel // Shift: remapped pixel index.
}

// waitForever is the sentinel instruction appended by NewProgram and Clear
// so the interpreter always terminates instead of reading past the last
// real instruction, mirroring the Copper's own `$FFFF,$FFFE` wait-forever
// trailer.
var waitForever = ProgramEntry{Command: CommandWait, WaitX: math.MaxInt32, WaitY: math.MaxInt32}

// Program is an ordered list of display-processor instructions, always
// terminated by a wait-forever sentinel.
type Program struct {
	Entries []ProgramEntry
}

// NewProgram returns an empty program (just the wait-forever sentinel).
func NewProgram() *Program {
	return &Program{Entries: []ProgramEntry{waitForever}}
}

// Clone returns a deep copy of the program.
func (p *Program) Clone() *Program {
	entries := make([]ProgramEntry, len(p.Entries))
	copy(entries, p.Entries)
	return &Program{Entries: entries}
}

// Clear discards every instruction, leaving just the sentinel.
func (p *Program) Clear() {
	p.Entries = []ProgramEntry{waitForever}
}

// Erase removes `length` entries starting at `position`.
func (p *Program) Erase(position, length int) {
	p.Entries = append(p.Entries[:position], p.Entries[position+length:]...)
}

// insert places `entry` at `position` (negative counts back from the end,
// as with a Python-style slice index), overwriting an existing instruction
// if one is there. Inserting past the end pads with Nop instructions up to
// that position rather than erroring, so script code can lay down a
// program non-sequentially without pre-sizing it.
func (p *Program) insert(position int, entry ProgramEntry) {
	length := len(p.Entries)
	entries := length - 1 // Exclude the trailing sentinel from "real" entries.
	index := position
	if index < 0 {
		index = length + index
	}
	if index < entries {
		p.Entries[index] = entry
		return
	}
	nop := ProgramEntry{Command: CommandNop}
	for i := entries; i < index; i++ {
		p.Entries = append(p.Entries[:i], append([]ProgramEntry{nop}, p.Entries[i:]...)...)
	}
	p.Entries = append(p.Entries[:index], append([]ProgramEntry{entry}, p.Entries[index:]...)...)
}

func (p *Program) Nop(position int) {
	p.insert(position, ProgramEntry{Command: CommandNop})
}

func (p *Program) Wait(position, x, y int) {
	p.insert(position, ProgramEntry{Command: CommandWait, WaitX: x, WaitY: y})
}

func (p *Program) Skip(position, dx, dy int) {
	p.insert(position, ProgramEntry{Command: CommandSkip, SkipDX: dx, SkipDY: dy})
}

func (p *Program) Modulo(position, amount int) {
	p.insert(position, ProgramEntry{Command: CommandModulo, Modulo: amount})
}

func (p *Program) Offset(position, amount int) {
	p.insert(position, ProgramEntry{Command: CommandOffset, Offset: amount})
}

func (p *Program) Colour(position int, index Pixel, color Color) {
	p.insert(position, ProgramEntry{Command: CommandColour, Index: index, Color: color})
}

func (p *Program) Shift(position int, from, to Pixel) {
	p.insert(position, ProgramEntry{Command: CommandShift, ShiftFrom: from, ShiftTo: to})
}
