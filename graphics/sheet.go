package graphics

import "encoding/binary"

// Sheet is an atlas surface sliced into named cells, each addressable by
// index for blitting.
type Sheet struct {
	Atlas *Surface
	Cells []Rectangle
}

// NewFixedSheet slices `atlas` into a regular grid of `cellWidth` x
// `cellHeight` cells, in row-major order.
func NewFixedSheet(atlas *Surface, cellWidth, cellHeight int) *Sheet {
	columns := atlas.Width / cellWidth
	rows := atlas.Height / cellHeight
	cells := make([]Rectangle, 0, columns*rows)
	for i := 0; i < rows; i++ {
		y := i * cellHeight
		for j := 0; j < columns; j++ {
			x := j * cellWidth
			cells = append(cells, Rectangle{X: x, Y: y, Width: cellWidth, Height: cellHeight})
		}
	}
	return &Sheet{Atlas: atlas, Cells: cells}
}

// NewSheet builds a sheet from an explicit cell table, as read from a
// little-endian binary record stream: four 32-bit fields per cell, in
// order x (signed), y (signed), width (unsigned), height (unsigned).
func NewSheet(atlas *Surface, table []byte) *Sheet {
	const recordSize = 16
	count := len(table) / recordSize
	cells := make([]Rectangle, count)
	for i := 0; i < count; i++ {
		record := table[i*recordSize : i*recordSize+recordSize]
		cells[i] = Rectangle{
			X:      int(int32(binary.LittleEndian.Uint32(record[0:4]))),
			Y:      int(int32(binary.LittleEndian.Uint32(record[4:8]))),
			Width:  int(binary.LittleEndian.Uint32(record[8:12])),
			Height: int(binary.LittleEndian.Uint32(record[12:16])),
		}
	}
	return &Sheet{Atlas: atlas, Cells: cells}
}

// Size returns the footprint of `cellID`, scaled by scaleX/scaleY and
// truncated (not rounded) to an integer size.
func (s *Sheet) Size(cellID int, scaleX, scaleY float32) (width, height int) {
	cell := s.Cells[cellID]
	width = int(float32(cell.Width) * absf(scaleX))
	height = int(float32(cell.Height) * absf(scaleY))
	return
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// Blit draws cell `cellID` at `position`, unscaled.
func (s *Sheet) Blit(context *Context, position Point, cellID int) {
	context.Blit(s.Atlas, s.Cells[cellID], position)
}

// BlitScaled draws cell `cellID` at `position`, nearest-neighbour scaled.
func (s *Sheet) BlitScaled(context *Context, position Point, cellID int, scaleX, scaleY float32) {
	context.BlitScaled(s.Atlas, s.Cells[cellID], position, scaleX, scaleY)
}

// BlitTransformed draws cell `cellID` at `position`, scaled and rotated
// around an anchor point.
func (s *Sheet) BlitTransformed(context *Context, position Point, cellID int, scaleX, scaleY float32, rotation int, anchorX, anchorY float32) {
	context.BlitTransformed(s.Atlas, s.Cells[cellID], position, scaleX, scaleY, rotation, anchorX, anchorY)
}
