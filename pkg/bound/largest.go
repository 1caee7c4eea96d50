package bound

import (
	"errors"

	"golang.org/x/exp/constraints"
)

var ErrEmptyInput = errors.New("empty input")

// Largest returns a copy of the greatest element of list. When several
// elements are equal to the maximum, the first one wins.
func Largest[T constraints.Ordered](list []T) (T, error) {
	return LargestFunc(list, func(a, b T) bool {
		return a > b
	})
}

// LargestFunc is [Largest] for element types ordered by greater, which must
// report whether a is strictly greater than b.
func LargestFunc[T any](list []T, greater func(a, b T) bool) (T, error) {
	if len(list) == 0 {
		var zero T
		return zero, ErrEmptyInput
	}

	largest := list[0]

	for _, item := range list[1:] {
		if greater(item, largest) {
			largest = item
		}
	}

	return largest, nil
}

// MustLargest is like [Largest] but panics on an empty list.
func MustLargest[T constraints.Ordered](list []T) T {
	largest, err := Largest(list)
	if err != nil {
		panic(err)
	}

	return largest
}
