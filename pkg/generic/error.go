package generic

import "errors"

var (
	ErrConsumed   = errors.New("value already consumed")
	ErrNilOperand = errors.New("nil operand")
)
