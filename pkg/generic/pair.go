package generic

// Pair holds two values of the same type.
type Pair[T any] struct {
	x T
	y T
}

func (p Pair[T]) X() T {
	return p.x
}

func (p Pair[T]) Y() T {
	return p.y
}

func NewPair[T any](x, y T) Pair[T] {
	return Pair[T]{x: x, y: y}
}
