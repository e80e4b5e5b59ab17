// Package guard provides a small helper that ensures value objects and
// commands are created through their constructors rather than as zero values.
package guard

import "errors"

// ErrNotConstructed is returned by Validate when no custom error is supplied
// and the guarded value was not created through its constructor.
var ErrNotConstructed = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as properly constructed. Embed it as a
// field and set it with NewConstructorGuard inside the constructor; the zero
// value fails Validate.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guard was produced by NewConstructorGuard.
// Otherwise it returns notConstructedErr, or ErrNotConstructed when nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}
	if notConstructedErr == nil {
		return ErrNotConstructed
	}
	return notConstructedErr
}
