package graphics

// Surface is a flat, row-major buffer of palette indices. It carries no
// palette or drawing state of its own — those belong to a Context (for the
// destination) or are supplied directly (for a blit source).
type Surface struct {
	Width, Height int
	Data          []Pixel
}

// NewSurface allocates a zeroed surface of the given size.
func NewSurface(width, height int) *Surface {
	return &Surface{
		Width:  width,
		Height: height,
		Data:   make([]Pixel, width*height),
	}
}

// IsPowerOfTwo reports whether both dimensions are powers of two, which lets
// XForm sampling use a bitmask instead of a modulo when wrapping.
func (s *Surface) IsPowerOfTwo() bool {
	return isPowerOfTwo(s.Width) && isPowerOfTwo(s.Height)
}

// Clear fills the whole surface with `index`, ignoring any drawing state
// (Context.Clear is the stateful counterpart).
func (s *Surface) Clear(index Pixel) {
	for i := range s.Data {
		s.Data[i] = index
	}
}

// Peek reads a single pixel. Bounds are not checked; callers clip first.
func (s *Surface) Peek(position Point) Pixel {
	return s.Data[position.Y*s.Width+position.X]
}

// Poke writes a single pixel. Bounds are not checked; callers clip first.
func (s *Surface) Poke(position Point, index Pixel) {
	s.Data[position.Y*s.Width+position.X] = index
}

// Rectangle is an axis-aligned integer rectangle, used both for clip
// regions and for blit source areas.
type Rectangle struct {
	X, Y          int
	Width, Height int
}

// Point is an integer 2D coordinate.
type Point struct {
	X, Y int
}

// quad is a bounding box used internally while clipping; primitives treat
// x1/y1 as the last drawable column and row (see Context).
type quad struct {
	x0, y0, x1, y1 int
}
