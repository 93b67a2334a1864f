package graphics

import "log"

// state is the portion of drawing state affected by Push/Pop: the clip
// region, the shifting (palette remap) table and the per-index transparency
// table. The clip region's x1/y1 are inclusive (the last drawable column and
// row), unlike the 0-based width/height rectangles callers pass in.
type state struct {
	clip        quad
	shifting    [MaxColors]Pixel
	transparent [MaxColors]bool
}

func defaultState(width, height int) state {
	s := state{
		clip: quad{x0: 0, y0: 0, x1: width - 1, y1: height - 1},
	}
	for i := 0; i < MaxColors; i++ {
		s.shifting[i] = Pixel(i)
	}
	s.transparent[0] = true
	return s
}

// Context binds a destination Surface to a stack of drawing states
// (clipping, shifting, transparency). Every primitive, blit and transform
// operation in this package draws through a Context.
type Context struct {
	Surface *Surface
	current state
	stack   []state
}

// NewContext creates a context targeting `surface`, with clipping reset to
// the full surface, shifting set to identity and only index 0 transparent.
func NewContext(surface *Surface) *Context {
	return &Context{
		Surface: surface,
		current: defaultState(surface.Width, surface.Height),
	}
}

// Reset restores the default clipping/shifting/transparency state, discarding
// anything pushed on the stack.
func (c *Context) Reset() {
	c.current = defaultState(c.Surface.Width, c.Surface.Height)
	c.stack = c.stack[:0]
}

// Push saves the current state onto an internal stack.
func (c *Context) Push() {
	c.stack = append(c.stack, c.current)
}

// Pop restores the most recently pushed state, `levels` times. Popping past
// the bottom of the stack is a no-op beyond the stack's actual depth; popping
// an empty stack warns and does nothing.
func (c *Context) Pop(levels int) {
	if len(c.stack) == 0 {
		log.Printf("graphics: pop on an empty state stack")
		return
	}
	if levels > len(c.stack) {
		levels = len(c.stack)
	}
	for ; levels > 0; levels-- {
		n := len(c.stack) - 1
		c.current = c.stack[n]
		c.stack = c.stack[:n]
	}
}

// SetClipping restricts drawing to `region`, clamped against the surface
// bounds. Passing nil resets clipping to the whole surface.
func (c *Context) SetClipping(region *Rectangle) {
	w, h := c.Surface.Width, c.Surface.Height
	if region == nil {
		c.current.clip = quad{x0: 0, y0: 0, x1: w - 1, y1: h - 1}
		return
	}
	c.current.clip = quad{
		x0: imax(0, region.X),
		y0: imax(0, region.Y),
		x1: imin(w, region.X+region.Width) - 1,
		y1: imin(h, region.Y+region.Height) - 1,
	}
}

// SetShifting remaps `from[i]` to `to[i]` for each i. Passing nil resets the
// table to identity.
func (c *Context) SetShifting(from, to []Pixel) {
	if from == nil {
		for i := 0; i < MaxColors; i++ {
			c.current.shifting[i] = Pixel(i)
		}
		return
	}
	for i := range from {
		c.current.shifting[from[i]] = to[i]
	}
}

// SetTransparent marks `indexes[i]` as transparent/opaque per
// `transparent[i]`. Passing nil resets the table so that only index 0 is
// transparent.
func (c *Context) SetTransparent(indexes []Pixel, transparent []bool) {
	if indexes == nil {
		for i := 0; i < MaxColors; i++ {
			c.current.transparent[i] = false
		}
		c.current.transparent[0] = true
		return
	}
	for i := range indexes {
		c.current.transparent[indexes[i]] = transparent[i]
	}
}

// Clear fills the clip region with `index` (remapped through shifting). If
// `transparency` is set and the remapped index is marked transparent, the
// call is a no-op.
func (c *Context) Clear(index Pixel, transparency bool) {
	clip := c.current.clip
	width := clip.x1 - clip.x0 + 1
	height := clip.y1 - clip.y0 + 1
	if width <= 0 || height <= 0 {
		return
	}

	index = c.current.shifting[index]
	if transparency && c.current.transparent[index] {
		return
	}

	surface := c.Surface
	dwidth := surface.Width
	dskip := dwidth - width

	dptr := clip.y0*dwidth + clip.x0
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			surface.Data[dptr] = index
			dptr++
		}
		dptr += dskip
	}
}
