package graphics

import "math"

// Blit copies `area` of `source` to `position` on the context's surface,
// pixel for pixel, remapping through shifting and skipping transparent
// pixels.
func (c *Context) Blit(source *Surface, area Rectangle, position Point) {
	clip := c.current.clip
	shifting := &c.current.shifting
	transparent := &c.current.transparent
	surface := c.Surface

	skipX, skipY := 0, 0

	x0 := position.X
	y0 := position.Y
	x1 := position.X + area.Width - 1
	y1 := position.Y + area.Height - 1

	if x0 < clip.x0 {
		skipX = clip.x0 - x0
		x0 = clip.x0
	}
	if y0 < clip.y0 {
		skipY = clip.y0 - y0
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

	swidth := source.Width
	dwidth := surface.Width

	sskip := swidth - width
	dskip := dwidth - width

	sptr := (area.Y+skipY)*swidth + (area.X + skipX)
	dptr := y0*dwidth + x0

	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			index := shifting[source.Data[sptr]]
			if !transparent[index] {
				surface.Data[dptr] = index
			}
			sptr++
			dptr++
		}
		sptr += sskip
		dptr += dskip
	}
}

// BlitScaled copies `area` of `source` to `position`, nearest-neighbour
// scaled by scaleX/scaleY; a negative scale flips that axis. The
// destination footprint is rounded (never floored or ceiled) from the
// scaled source size.
func (c *Context) BlitScaled(source *Surface, area Rectangle, position Point, scaleX, scaleY float32) {
	clip := c.current.clip
	shifting := &c.current.shifting
	transparent := &c.current.transparent
	surface := c.Surface

	flipX := scaleX < 0
	flipY := scaleY < 0

	drawingWidth := int(math.Round(float64(float32(area.Width) * float32(math.Abs(float64(scaleX))))))
	drawingHeight := int(math.Round(float64(float32(area.Height) * float32(math.Abs(float64(scaleY))))))

	skipX, skipY := 0, 0

	x0 := position.X
	y0 := position.Y
	x1 := position.X + drawingWidth - 1
	y1 := position.Y + drawingHeight - 1

	if x0 < clip.x0 {
		skipX += clip.x0 - x0
		x0 = clip.x0
	}
	if y0 < clip.y0 {
		skipY += clip.y0 - y0
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

	swidth := source.Width
	dwidth := surface.Width
	dskip := dwidth - width

	absScaleX := float32(math.Abs(float64(scaleX)))
	absScaleY := float32(math.Abs(float64(scaleY)))

	// Sample at pixel centres: x_s = floor((x_r + 0.5) / S_x).
	ou := (float32(skipX) + 0.5) / absScaleX
	ov := (float32(skipY) + 0.5) / absScaleY

	du := 1.0 / absScaleX
	dv := 1.0 / absScaleY

	dptr := y0*dwidth + x0

	v := ov
	for i := 0; i < height; i++ {
		y := area.Y + int(v)
		if flipY {
			y = area.Y + area.Height - 1 - int(v)
		}
		srow := y * swidth

		u := ou
		for j := 0; j < width; j++ {
			x := area.X + int(u)
			if flipX {
				x = area.X + area.Width - 1 - int(u)
			}
			index := shifting[source.Data[srow+x]]
			if !transparent[index] {
				surface.Data[dptr] = index
			}
			dptr++
			u += du
		}

		v += dv
		dptr += dskip
	}
}

// BlitTransformed copies `area` of `source` to `position`, scaled by
// scaleX/scaleY (a negative value flips that axis), rotated by `rotation`
// (a fixed-point angle in [0, RotationSteps)) around the point
// (anchorX, anchorY) expressed as a fraction of the source/destination
// area's size, and nearest-neighbour sampled.
//
// The sampling loop walks the destination's rotated/scaled/flipped
// bounding disc using the inverse transform, so it never visits a
// destination pixel twice and never leaves gaps the forward transform
// would.
func (c *Context) BlitTransformed(source *Surface, area Rectangle, position Point, scaleX, scaleY float32, rotation int, anchorX, anchorY float32) {
	clip := c.current.clip
	shifting := &c.current.shifting
	transparent := &c.current.transparent
	surface := c.Surface

	sw := float32(area.Width)
	sh := float32(area.Height)
	dw := sw * float32(math.Abs(float64(scaleX)))
	dh := sh * float32(math.Abs(float64(scaleY)))

	sax := (sw - 1.0) * anchorX
	say := (sh - 1.0) * anchorY
	dax := (dw - 1.0) * anchorX
	day := (dh - 1.0) * anchorY

	sx := float32(area.X) + sax
	sy := float32(area.Y) + say
	dx := float32(position.X)
	dy := float32(position.Y)

	s, cosv := sincos(rotation)

	deltaX := float32(math.Max(float64(dax), float64(dw-dax))) - 0.5
	deltaY := float32(math.Max(float64(day), float64(dh-day))) - 0.5
	radiusSquared := deltaX*deltaX + deltaY*deltaY
	radius := float32(math.Ceil(math.Sqrt(float64(radiusSquared))))

	aabbX0 := -radius
	aabbY0 := -radius
	aabbX1 := radius
	aabbY1 := radius

	skipX := aabbX0
	skipY := aabbY0

	x0 := int(math.Ceil(float64(aabbX0 + dx)))
	y0 := int(math.Ceil(float64(aabbY0 + dy)))
	x1 := int(math.Ceil(float64(aabbX1 + dx)))
	y1 := int(math.Ceil(float64(aabbY1 + dy)))

	if x0 < clip.x0 {
		skipX += float32(clip.x0 - x0)
		x0 = clip.x0
	}
	if y0 < clip.y0 {
		skipY += float32(clip.y0 - y0)
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

	sminX := area.X
	sminY := area.Y
	smaxX := sminX + area.Width - 1
	smaxY := sminY + area.Height - 1

	// Inverse transform: rotate then scale (and fold the flip sign into
	// scale), since we are mapping destination pixels back to the source.
	m11 := cosv / scaleX
	m12 := s / scaleX
	m21 := -s / scaleY
	m22 := cosv / scaleY

	swidth := source.Width
	dwidth := surface.Width
	dskip := dwidth - width

	dptr := y0*dwidth + x0

	for i := 0; i < height; i++ {
		ov := skipY + float32(i)

		for j := 0; j < width; j++ {
			ou := skipX + float32(j)

			u := (ou*m11 + ov*m12) + sx + 0.5
			v := (ou*m21 + ov*m22) + sy + 0.5

			x := int(math.Floor(float64(u)))
			y := int(math.Floor(float64(v)))

			if x >= sminX && x <= smaxX && y >= sminY && y <= smaxY {
				index := shifting[source.Data[y*swidth+x]]
				if !transparent[index] {
					surface.Data[dptr] = index
				}
			}

			dptr++
		}

		dptr += dskip
	}
}
