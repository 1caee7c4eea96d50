package lifetime

import "errors"

var ErrLifetimeViolation = errors.New("reference used after its scope ended")
