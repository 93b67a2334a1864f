package graphics

import "testing"

func fillSurface(s *Surface, index Pixel) {
	for i := range s.Data {
		s.Data[i] = index
	}
}

func TestContextBlitCopiesRegion(t *testing.T) {
	src := NewSurface(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.Data[y*4+x] = Pixel(y*4 + x + 1)
		}
	}
	dst := NewSurface(8, 8)
	c := NewContext(dst)
	c.Blit(src, Rectangle{X: 1, Y: 1, Width: 2, Height: 2}, Point{X: 3, Y: 3})

	if dst.Data[3*8+3] != src.Data[1*4+1] {
		t.Fatalf("top-left of blitted region mismatch: got %d want %d", dst.Data[3*8+3], src.Data[1*4+1])
	}
	if dst.Data[4*8+4] != src.Data[2*4+2] {
		t.Fatalf("bottom-right of blitted region mismatch: got %d want %d", dst.Data[4*8+4], src.Data[2*4+2])
	}
}

func TestContextBlitSkipsTransparentIndex(t *testing.T) {
	src := NewSurface(2, 2)
	fillSurface(src, 0) // index 0 is transparent by default
	dst := NewSurface(2, 2)
	fillSurface(dst, 9)

	c := NewContext(dst)
	c.Blit(src, Rectangle{X: 0, Y: 0, Width: 2, Height: 2}, Point{X: 0, Y: 0})

	for i, px := range dst.Data {
		if px != 9 {
			t.Fatalf("Data[%d] = %d, want 9 (transparent source pixel should not overwrite)", i, px)
		}
	}
}

func TestContextBlitClippedOffEdge(t *testing.T) {
	src := NewSurface(4, 4)
	fillSurface(src, 5)
	dst := NewSurface(4, 4)
	c := NewContext(dst)
	c.Blit(src, Rectangle{X: 0, Y: 0, Width: 4, Height: 4}, Point{X: 2, Y: 2})

	if dst.Data[2*4+2] != 5 {
		t.Fatalf("expected the visible corner to be blitted")
	}
	if dst.Data[0] != 0 {
		t.Fatalf("expected pixels outside the destination footprint untouched")
	}
}

func TestContextBlitScaledUpscales(t *testing.T) {
	src := NewSurface(2, 2)
	src.Data[0] = 1
	src.Data[1] = 2
	src.Data[2] = 3
	src.Data[3] = 4

	dst := NewSurface(4, 4)
	c := NewContext(dst)
	c.BlitScaled(src, Rectangle{X: 0, Y: 0, Width: 2, Height: 2}, Point{X: 0, Y: 0}, 2, 2)

	// Each source pixel should occupy a 2x2 block.
	if dst.Data[0] != 1 || dst.Data[1] != 1 || dst.Data[4] != 1 || dst.Data[5] != 1 {
		t.Fatalf("top-left 2x2 block not uniformly pixel 1: %v", dst.Data[:8])
	}
	if dst.Data[2] != 2 || dst.Data[3] != 2 {
		t.Fatalf("top-right block not pixel 2: %v", dst.Data[:4])
	}
}

func TestContextBlitScaledFlipHorizontal(t *testing.T) {
	src := NewSurface(2, 1)
	src.Data[0] = 1
	src.Data[1] = 2

	dst := NewSurface(2, 1)
	c := NewContext(dst)
	c.BlitScaled(src, Rectangle{X: 0, Y: 0, Width: 2, Height: 1}, Point{X: 0, Y: 0}, -1, 1)

	if dst.Data[0] != 2 || dst.Data[1] != 1 {
		t.Fatalf("expected horizontally flipped row [2 1], got %v", dst.Data)
	}
}

func TestContextBlitTransformedIdentity(t *testing.T) {
	src := NewSurface(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.Data[y*4+x] = Pixel(y*4 + x + 1)
		}
	}
	dst := NewSurface(4, 4)
	c := NewContext(dst)
	// No rotation, unity scale, anchor at the top-left: should reproduce
	// the source exactly.
	c.BlitTransformed(src, Rectangle{X: 0, Y: 0, Width: 4, Height: 4}, Point{X: 0, Y: 0}, 1, 1, 0, 0, 0)

	for i := range src.Data {
		if dst.Data[i] != src.Data[i] {
			t.Fatalf("Data[%d] = %d, want %d (identity transform should reproduce source)", i, dst.Data[i], src.Data[i])
		}
	}
}

func TestContextBlitTransformedRotationStaysInBounds(t *testing.T) {
	src := NewSurface(4, 4)
	fillSurface(src, 3)
	dst := NewSurface(16, 16)
	c := NewContext(dst)
	// Rotate a quarter turn (RotationSteps/4) around the image center.
	c.BlitTransformed(src, Rectangle{X: 0, Y: 0, Width: 4, Height: 4}, Point{X: 8, Y: 8}, 1, 1, RotationSteps/4, 0.5, 0.5)

	// Somewhere near the anchor point should have been painted.
	if dst.Data[8*16+8] != 3 {
		t.Fatalf("expected the rotated blit to paint near its anchor, got %d", dst.Data[8*16+8])
	}
}
