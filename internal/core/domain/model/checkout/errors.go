package checkout

import (
	"errors"
	"slices"
	"strings"

	"storefront/internal/pkg/errs"
)

// Field names a customer-facing input validated at confirmation.
type Field string

const (
	FieldFirstName Field = "firstName"
	FieldLastName  Field = "lastName"
	FieldLocation  Field = "location"
)

var (
	ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")
	// ErrCartIsEmpty is the warning shown when proceeding or confirming with no items.
	ErrCartIsEmpty = errs.NewValueIsRequiredError("cart items")
	// ErrNotConfirming is returned when confirming from the review step.
	ErrNotConfirming = errors.New("checkout must be in the confirming step")
)

// ValidationError lists the fields missing at confirmation. The session is
// left unchanged so the customer can correct them.
type ValidationError struct {
	Fields []Field
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = string(f)
	}
	return "checkout is incomplete: missing " + strings.Join(names, ", ")
}

func (e *ValidationError) Unwrap() error {
	return errs.ErrValueIsRequired
}

// Has reports whether field is among the missing ones.
func (e *ValidationError) Has(field Field) bool {
	return slices.Contains(e.Fields, field)
}

// NeedsLocation tells the UI to open the map picker again.
func (e *ValidationError) NeedsLocation() bool {
	return e.Has(FieldLocation)
}
