package lifetime

import (
	"github.com/pkg/errors"
)

// Scope bounds the lifetime of the references borrowed from it.
type Scope struct {
	name   string
	closed bool
}

func (s *Scope) Name() string {
	if s == nil {
		return ""
	}

	return s.name
}

func (s *Scope) Closed() bool {
	return s == nil || s.closed
}

// Close ends the scope. Every [Ref] depending on it becomes invalid.
func (s *Scope) Close() {
	if s == nil {
		return
	}

	s.closed = true
}

// Borrow returns a reference to value that is valid while s is open. A
// reference borrowed from a nil scope is never valid.
func (s *Scope) Borrow(value string) Ref {
	return Ref{value: value, scopes: []*Scope{s}}
}

func NewScope(name string) *Scope {
	return &Scope{name: name}
}

// Within runs fn with a new scope that is closed when fn returns.
func Within(name string, fn func(s *Scope) error) error {
	scope := NewScope(name)
	defer scope.Close()

	if err := fn(scope); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Ref is a borrowed string tied to one or more scopes.
type Ref struct {
	value  string
	scopes []*Scope
}

// Get returns the borrowed value, or [ErrLifetimeViolation] if any of the
// scopes it depends on has ended.
func (r Ref) Get() (string, error) {
	if len(r.scopes) == 0 {
		return "", errors.Wrap(ErrLifetimeViolation, "reference is not bound to any scope")
	}

	for _, s := range r.scopes {
		if s == nil {
			return "", errors.Wrap(ErrLifetimeViolation, "reference is bound to a nil scope")
		}

		if s.closed {
			return "", errors.Wrapf(ErrLifetimeViolation, "scope '%s' has ended", s.name)
		}
	}

	return r.value, nil
}

// Valid reports whether Get would succeed.
func (r Ref) Valid() bool {
	_, err := r.Get()
	return err == nil
}

// LongestRef selects between x and y like [Longest]. The returned reference
// depends on the scopes of both inputs.
func LongestRef(x, y Ref) Ref {
	return SelectRef(x, y, Longest)
}

// LargerRef selects between x and y like [Larger]. The returned reference
// depends on the scopes of both inputs.
func LargerRef(x, y Ref) Ref {
	return SelectRef(x, y, Larger)
}

// SelectRef returns a reference to the value chosen between x and y. choose
// must return one of its arguments. The result depends on the scopes of both
// inputs.
func SelectRef(x, y Ref, choose func(a, b string) string) Ref {
	scopes := make([]*Scope, 0, len(x.scopes)+len(y.scopes))
	scopes = append(scopes, x.scopes...)

	for _, s := range y.scopes {
		if !containsScope(scopes, s) {
			scopes = append(scopes, s)
		}
	}

	return Ref{value: choose(x.value, y.value), scopes: scopes}
}

func containsScope(scopes []*Scope, s *Scope) bool {
	for _, existing := range scopes {
		if existing == s {
			return true
		}
	}

	return false
}
