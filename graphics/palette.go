package graphics

import "math"

// MaxColors is the fixed size of every palette: 256 addressable entries,
// matching the 8-bit pixel index used everywhere else in the graphics core.
const MaxColors = 256

// Pixel is an index into a Palette (and into a Context's shifting and
// transparency tables).
type Pixel uint8

// Color is an RGBA colour with 8 bits per channel.
type Color struct {
	R, G, B, A uint8
}

// Palette is a fixed-size, ordered table of up to MaxColors colours. Slots
// beyond a caller's logical "size" are still addressable (a zero Palette
// holds {0,0,0,0} there; SetGreyscale and SetQuantized fill them with opaque
// black) since nothing in the core tracks a separate
// logical length; callers that care about one keep it themselves.
type Palette struct {
	Colors [MaxColors]Color
}

// quantize maps `value` (itself in [0, count)) onto the range [0, values),
// linearly interpolating the low bits instead of leaving them zero so that
// e.g. promoting a 3-bit channel to 8 bits still reaches pure white.
func quantize(value, values, count int) uint8 {
	return uint8((value * (values - 1)) / (count - 1))
}

// SetGreyscale fills the first `size` entries with an evenly spaced
// greyscale ramp and blacks out the remainder.
func (p *Palette) SetGreyscale(size int) {
	for i := 0; i < size; i++ {
		y := quantize(i, 256, size)
		p.Colors[i] = Color{R: y, G: y, B: y, A: 255}
	}
	for i := size; i < MaxColors; i++ {
		p.Colors[i] = Color{A: 255}
	}
}

// SetQuantized fills the palette with every combination of `redBits`,
// `greenBits` and `blueBits` per channel, in row-major R/G/B order, and
// blacks out any remaining entries.
func (p *Palette) SetQuantized(redBits, greenBits, blueBits int) {
	redValues := 1 << redBits
	greenValues := 1 << greenBits
	blueValues := 1 << blueBits

	redLowerBits := 8 - redBits
	greenLowerBits := 8 - greenBits
	blueLowerBits := 8 - blueBits

	redLowerValues := 1 << redLowerBits
	greenLowerValues := 1 << greenLowerBits
	blueLowerValues := 1 << blueLowerBits

	size := 0
	for r := 0; r < redValues; r++ {
		r8 := uint8(r<<redLowerBits) | quantize(r, redLowerValues, redValues)
		for g := 0; g < greenValues; g++ {
			g8 := uint8(g<<greenLowerBits) | quantize(g, greenLowerValues, greenValues)
			for b := 0; b < blueValues; b++ {
				b8 := uint8(b<<blueLowerBits) | quantize(b, blueLowerValues, blueValues)
				p.Colors[size] = Color{R: r8, G: g8, B: b8, A: 255}
				size++
			}
		}
	}
	for i := size; i < MaxColors; i++ {
		p.Colors[i] = Color{A: 255}
	}
}

// FindNearest returns the index of the palette entry closest to `color`
// under the "redmean" perceptual distance metric
// (https://www.compuphase.com/cmetric.htm). Ties keep the first (lowest
// index) match.
func (p *Palette) FindNearest(color Color) Pixel {
	var index Pixel
	minimum := float32(math.MaxFloat32)
	for i := 0; i < MaxColors; i++ {
		current := p.Colors[i]

		rMean := (float32(color.R) + float32(current.R)) * 0.5

		dr := float32(color.R) - float32(current.R)
		dg := float32(color.G) - float32(current.G)
		db := float32(color.B) - float32(current.B)

		distance := dr*dr*(2.0+rMean/255.0) +
			dg*dg*4.0 +
			db*db*(2.0+(255.0-rMean)/255.0)

		if minimum > distance {
			minimum = distance
			index = Pixel(i)
		}
	}
	return index
}

// lerp linearly interpolates a single channel, used by Mix and Lerp.
func lerp(from, to uint8, ratio float32) uint8 {
	return uint8(float32(from) + (float32(to)-float32(from))*ratio)
}

// Mix linearly interpolates between two colours; the result is always
// fully opaque.
func Mix(from, to Color, ratio float32) Color {
	return Color{
		R: lerp(from.R, to.R, ratio),
		G: lerp(from.G, to.G, ratio),
		B: lerp(from.B, to.B, ratio),
		A: 255,
	}
}

// Copy replaces the whole palette with `source`.
func (p *Palette) Copy(source *Palette) {
	p.Colors = source.Colors
}

func (p *Palette) contains(color Color) bool {
	for i := 0; i < MaxColors; i++ {
		if p.Colors[i] == color {
			return true
		}
	}
	return false
}

// Merge appends up to `count` entries from `other` (starting at `from`) into
// this palette starting at `to`, optionally skipping colours already
// present, and returns the index one past the last entry written. Merging
// stops early, discarding the rest, if the palette fills up.
func (p *Palette) Merge(to int, other *Palette, from, count int, removeDuplicates bool) int {
	toIndex := to
	for i := 0; i < count; i++ {
		if toIndex == MaxColors {
			break
		}
		fromIndex := from + i
		color := other.Colors[fromIndex]
		if removeDuplicates && p.contains(color) {
			continue
		}
		p.Colors[toIndex] = color
		toIndex++
	}
	return toIndex
}

// Lerp mixes every entry of the palette towards `color` by `ratio`, in
// place.
func (p *Palette) Lerp(color Color, ratio float32) {
	for i := 0; i < MaxColors; i++ {
		p.Colors[i] = Mix(p.Colors[i], color, ratio)
	}
}
