package graphics

import "math"

// RotationSteps is the resolution of the precomputed sine/cosine table used
// by rotating blits. Rotation angles are expressed as integers in
// [0, RotationSteps) rather than radians; sincos wraps any other value into
// that range with imod.
const RotationSteps = 1024

var sinTable [RotationSteps]float32
var cosTable [RotationSteps]float32

func init() {
	for i := 0; i < RotationSteps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(RotationSteps)
		sinTable[i] = float32(math.Sin(theta))
		cosTable[i] = float32(math.Cos(theta))
	}
}

// sincos returns the sine and cosine of a rotation angle, wrapping it into
// the table's domain first.
func sincos(rotation int) (s, c float32) {
	i := imod(rotation, RotationSteps)
	return sinTable[i], cosTable[i]
}
