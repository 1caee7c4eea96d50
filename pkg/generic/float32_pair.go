package generic

import "math"

// Float32Pair is the float32 instantiation of [Pair] with the operations
// that only make sense for that representation.
type Float32Pair struct {
	Pair[float32]
}

// DistanceFromOrigin returns sqrt(x² + y²), squared in float32.
func (p Float32Pair) DistanceFromOrigin() float32 {
	x, y := p.X(), p.Y()
	// float64 sqrt rounded to float32 is the correctly rounded float32 sqrt
	return float32(math.Sqrt(float64(x*x + y*y)))
}

func NewFloat32Pair(x, y float32) Float32Pair {
	return Float32Pair{NewPair(x, y)}
}

func AsFloat32(p Pair[float32]) Float32Pair {
	return Float32Pair{p}
}
