package lifetime

import (
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Longest returns whichever of x and y has more bytes, x on a tie. The result
// is one of the arguments, so it must not be kept beyond the shorter-lived of
// the two.
func Longest(x, y string) string {
	if len(y) > len(x) {
		return y
	}

	return x
}

// LongestRunes is [Longest] counting characters instead of bytes.
func LongestRunes(x, y string) string {
	if utf8.RuneCountInString(y) > utf8.RuneCountInString(x) {
		return y
	}

	return x
}

// Larger returns the lexically greater of x and y, x when they are equal.
func Larger(x, y string) string {
	if y > x {
		return y
	}

	return x
}

// LargerCollated is [Larger] using the collation rules of the given language.
// x is returned when both strings collate equal.
func LargerCollated(tag language.Tag, x, y string) string {
	c := collate.New(tag)

	if c.CompareString(y, x) > 0 {
		return y
	}

	return x
}
