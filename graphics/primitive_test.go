package graphics

import "testing"

func TestContextPointClippedOutside(t *testing.T) {
	s := NewSurface(4, 4)
	c := NewContext(s)
	c.Point(Point{X: 10, Y: 10}, 1)
	for i, px := range s.Data {
		if px != 0 {
			t.Fatalf("Data[%d] = %d, want 0 (point was off-surface)", i, px)
		}
	}
}

func TestContextHLineClampsToClip(t *testing.T) {
	s := NewSurface(5, 1)
	c := NewContext(s)
	c.HLine(Point{X: -2, Y: 0}, 10, 3)
	for i, px := range s.Data {
		if px != 3 {
			t.Fatalf("Data[%d] = %d, want 3 (HLine clamped into the surface)", i, px)
		}
	}
}

func TestContextVLineClampsToClip(t *testing.T) {
	s := NewSurface(1, 5)
	c := NewContext(s)
	c.VLine(Point{X: 0, Y: -2}, 10, 4)
	for i, px := range s.Data {
		if px != 4 {
			t.Fatalf("Data[%d] = %d, want 4 (VLine clamped into the surface)", i, px)
		}
	}
}

func TestContextLineDrawsEndpoints(t *testing.T) {
	s := NewSurface(10, 10)
	c := NewContext(s)
	c.Line(Point{0, 0}, Point{9, 0}, 1)
	if s.Data[0] != 1 || s.Data[9] != 1 {
		t.Fatalf("horizontal line endpoints not drawn: start=%d end=%d", s.Data[0], s.Data[9])
	}
}

func TestContextLineFullyOutsideIsNoop(t *testing.T) {
	s := NewSurface(4, 4)
	c := NewContext(s)
	c.Line(Point{-10, -10}, Point{-5, -5}, 1)
	for i, px := range s.Data {
		if px != 0 {
			t.Fatalf("Data[%d] = %d, want 0 (line entirely outside clip)", i, px)
		}
	}
}

func TestContextPolylineConnectsSegments(t *testing.T) {
	s := NewSurface(5, 5)
	c := NewContext(s)
	c.Polyline([]Point{{0, 0}, {4, 0}, {4, 4}}, 2)
	if s.Data[0] != 2 || s.Data[4] != 2 || s.Data[4*5+4] != 2 {
		t.Fatalf("polyline did not visit all expected corners")
	}
}

func TestContextFilledRectangleClipped(t *testing.T) {
	s := NewSurface(4, 4)
	c := NewContext(s)
	c.FilledRectangle(Rectangle{X: -2, Y: -2, Width: 4, Height: 4}, 6)
	// Only the top-left 2x2 quadrant should be filled.
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := Pixel(0)
			if x < 2 && y < 2 {
				want = 6
			}
			if got := s.Data[y*4+x]; got != want {
				t.Fatalf("(%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestContextFilledTriangleCoversInterior(t *testing.T) {
	s := NewSurface(10, 10)
	c := NewContext(s)
	c.FilledTriangle(Point{1, 1}, Point{8, 1}, Point{1, 8}, 1, true)
	if s.Data[2*10+2] != 1 {
		t.Fatalf("expected interior point (2,2) filled, got %d", s.Data[2*10+2])
	}
	if s.Data[9*10+9] != 0 {
		t.Fatalf("expected far corner (9,9) untouched, got %d", s.Data[9*10+9])
	}
}

func TestContextFilledTriangleFixWinding(t *testing.T) {
	// This vertex order is wound the opposite way the rasterizer wants.
	s1 := NewSurface(10, 10)
	c1 := NewContext(s1)
	c1.FilledTriangle(Point{1, 1}, Point{8, 1}, Point{1, 8}, 1, false)

	s2 := NewSurface(10, 10)
	c2 := NewContext(s2)
	c2.FilledTriangle(Point{1, 1}, Point{8, 1}, Point{1, 8}, 1, true)

	// Without fixWinding the edge functions are all negative and nothing is
	// rasterized; fixWinding swaps v1/v2 and corrects it.
	if s1.Data[2*10+2] != 0 {
		t.Fatalf("expected wrongly-wound triangle without fixWinding to rasterize nothing")
	}
	if s2.Data[2*10+2] != 1 {
		t.Fatalf("expected fixWinding to correct the rasterization")
	}
}

func TestContextFilledTriangleTopLeftRule(t *testing.T) {
	s := NewSurface(5, 5)
	c := NewContext(s)
	c.FilledTriangle(Point{0, 0}, Point{3, 0}, Point{0, 3}, 9, true)

	lit := map[[2]int]bool{
		{0, 0}: true, {1, 0}: true, {2, 0}: true,
		{0, 1}: true, {1, 1}: true,
		{0, 2}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			want := Pixel(0)
			if lit[[2]int{x, y}] {
				want = 9
			}
			if got := s.Data[y*5+x]; got != want {
				t.Fatalf("(%d,%d) = %d, want %d (top and left edges lit, hypotenuse excluded)", x, y, got, want)
			}
		}
	}
}

func TestContextFilledCircleFillsCenterAndRespectsRadius(t *testing.T) {
	s := NewSurface(21, 21)
	c := NewContext(s)
	c.FilledCircle(Point{10, 10}, 5, 1)
	if s.Data[10*21+10] != 1 {
		t.Fatalf("expected center pixel filled")
	}
	if s.Data[0] != 0 {
		t.Fatalf("expected far corner untouched by a radius-5 circle")
	}
}

func TestContextCircleOutlineDoesNotFillInterior(t *testing.T) {
	s := NewSurface(21, 21)
	c := NewContext(s)
	c.Circle(Point{10, 10}, 8, 1)
	if s.Data[10*21+10] != 0 {
		t.Fatalf("expected outline-only circle to leave the center untouched")
	}
}

func TestPrimitivesRespectShiftingAndTransparency(t *testing.T) {
	s := NewSurface(4, 4)
	c := NewContext(s)
	c.SetTransparent([]Pixel{2}, []bool{true})
	c.FilledRectangle(Rectangle{X: 0, Y: 0, Width: 4, Height: 4}, 2)
	for i, px := range s.Data {
		if px != 0 {
			t.Fatalf("Data[%d] = %d, want 0 (index 2 marked transparent)", i, px)
		}
	}
}
