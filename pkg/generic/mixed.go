package generic

import (
	"github.com/pkg/errors"
)

// Mixed holds two values of independent types.
type Mixed[T any, U any] struct {
	X T
	Y U

	consumed bool
}

// Consumed reports whether m was given up to [Consume].
func (m *Mixed[T, U]) Consumed() bool {
	return m.consumed
}

func (m *Mixed[T, U]) release() {
	var (
		x T
		y U
	)

	m.X = x
	m.Y = y
	m.consumed = true
}

func NewMixed[T any, U any](x T, y U) Mixed[T, U] {
	return Mixed[T, U]{X: x, Y: y}
}

// Mixup combines the first value of self with the second value of other.
// self.Y and other.X are dropped.
func Mixup[T any, U any, V any, W any](self Mixed[T, U], other Mixed[V, W]) Mixed[T, W] {
	return Mixed[T, W]{
		X: self.X,
		Y: other.Y,
	}
}

// Consume performs a [Mixup] and invalidates both operands: their fields are
// reset to zero values and any further Consume on them fails with
// [ErrConsumed].
func Consume[T any, U any, V any, W any](self *Mixed[T, U], other *Mixed[V, W]) (Mixed[T, W], error) {
	if self == nil || other == nil {
		return Mixed[T, W]{}, errors.WithStack(ErrNilOperand)
	}

	if self.consumed {
		return Mixed[T, W]{}, errors.Wrap(ErrConsumed, "receiver")
	}

	if other.consumed {
		return Mixed[T, W]{}, errors.Wrap(ErrConsumed, "argument")
	}

	result := Mixup(*self, *other)

	self.release()
	other.release()

	return result, nil
}
