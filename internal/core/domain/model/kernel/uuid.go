package kernel

import (
	"fmt"

	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when a zero UUID is used as an identifier.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError(
	"UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies orders, checkout sessions, zones and products.
// The zero value is the nil UUID and fails Validate.
type UUID struct {
	id uuid.UUID
}

// NewUUID returns a random (version 4) identifier.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses any form accepted by uuid.Parse (hyphenated, braced,
// urn-prefixed or bare hex). The nil UUID is rejected.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}

	parsed := UUID{id: id}
	if err = parsed.Validate(); err != nil {
		return UUID{}, err
	}
	return parsed, nil
}

// UUIDFromBytes restores an identifier read from storage.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}

	restored := UUID{id: id}
	if err = restored.Validate(); err != nil {
		return UUID{}, err
	}
	return restored, nil
}

func (u UUID) String() string {
	return u.id.String()
}

// Bytes exposes the underlying google/uuid value for persistence adapters.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
