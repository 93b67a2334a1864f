package graphics

import (
	"encoding/binary"
	"testing"
)

func TestNewFixedSheetGridLayout(t *testing.T) {
	atlas := NewSurface(16, 8)
	sheet := NewFixedSheet(atlas, 4, 4)

	if len(sheet.Cells) != 8 {
		t.Fatalf("got %d cells, want 8 (4 columns x 2 rows)", len(sheet.Cells))
	}
	if sheet.Cells[0] != (Rectangle{X: 0, Y: 0, Width: 4, Height: 4}) {
		t.Fatalf("cell 0 = %+v, want origin cell", sheet.Cells[0])
	}
	if sheet.Cells[4] != (Rectangle{X: 0, Y: 4, Width: 4, Height: 4}) {
		t.Fatalf("cell 4 = %+v, want the first cell of row 2", sheet.Cells[4])
	}
}

func TestNewSheetFromTable(t *testing.T) {
	atlas := NewSurface(8, 8)
	table := make([]byte, 16*2)
	negOne := int32(-1)
	binary.LittleEndian.PutUint32(table[0:4], uint32(negOne))
	binary.LittleEndian.PutUint32(table[4:8], uint32(int32(2)))
	binary.LittleEndian.PutUint32(table[8:12], 3)
	binary.LittleEndian.PutUint32(table[12:16], 4)
	binary.LittleEndian.PutUint32(table[16:20], 5)
	binary.LittleEndian.PutUint32(table[20:24], 6)
	binary.LittleEndian.PutUint32(table[24:28], 7)
	binary.LittleEndian.PutUint32(table[28:32], 8)

	sheet := NewSheet(atlas, table)
	if len(sheet.Cells) != 2 {
		t.Fatalf("got %d cells, want 2", len(sheet.Cells))
	}
	if sheet.Cells[0] != (Rectangle{X: -1, Y: 2, Width: 3, Height: 4}) {
		t.Fatalf("cell 0 = %+v, want {-1 2 3 4}", sheet.Cells[0])
	}
	if sheet.Cells[1] != (Rectangle{X: 5, Y: 6, Width: 7, Height: 8}) {
		t.Fatalf("cell 1 = %+v, want {5 6 7 8}", sheet.Cells[1])
	}
}

func TestSheetSizeScalesAndTruncates(t *testing.T) {
	atlas := NewSurface(8, 8)
	sheet := &Sheet{Atlas: atlas, Cells: []Rectangle{{X: 0, Y: 0, Width: 3, Height: 5}}}

	w, h := sheet.Size(0, 2.0, -1.5)
	if w != 6 || h != 7 {
		t.Fatalf("Size() = (%d, %d), want (6, 7)", w, h)
	}
}

func TestSheetBlitDrawsChosenCell(t *testing.T) {
	atlas := NewSurface(4, 4)
	atlas.Data[0] = 9
	sheet := &Sheet{Atlas: atlas, Cells: []Rectangle{{X: 0, Y: 0, Width: 1, Height: 1}}}

	dst := NewSurface(2, 2)
	c := NewContext(dst)
	sheet.Blit(c, Point{X: 1, Y: 1}, 0)
	if dst.Data[1*2+1] != 9 {
		t.Fatalf("expected cell 0 blitted to (1,1), got %d", dst.Data[1*2+1])
	}
}
