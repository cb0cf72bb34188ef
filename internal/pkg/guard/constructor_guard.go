// Package guard provides ConstructorGuard, a marker embedded in value objects,
// entities and commands so that zero values can be told apart from instances
// built through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the object was not
// constructed and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing object was created by its
// constructor. The zero value reports "not constructed".
//
// Example usage:
//
//	var ErrLineNotConstructed = errors.New("Line must be created via NewLine")
//
//	type Line struct {
//	    quantity int
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewLine(quantity int) Line {
//	    return Line{quantity: quantity, guard: guard.NewConstructorGuard()}
//	}
//
//	func (l Line) Validate() error {
//	    return l.guard.Validate(ErrLineNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed. Call it from
// constructors only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. Otherwise it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
