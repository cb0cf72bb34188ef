package guard_test

import (
	"errors"
	"testing"

	"storefront/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("cart line not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type quantity struct {
		value int
		guard guard.ConstructorGuard
	}

	errQuantityNotConstructed := errors.New("quantity must be created via newQuantity")

	newQuantity := func(v int) (quantity, error) {
		if v < 1 {
			return quantity{}, errors.New("quantity must be at least 1")
		}
		return quantity{value: v, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_passes", func(t *testing.T) {
		q, err := newQuantity(2)

		require.NoError(t, err)
		require.NoError(t, q.guard.Validate(errQuantityNotConstructed))
		assert.Equal(t, 2, q.value)
	})

	t.Run("copy_keeps_construction_flag", func(t *testing.T) {
		q, err := newQuantity(1)
		require.NoError(t, err)

		copied := q

		require.NoError(t, copied.guard.Validate(errQuantityNotConstructed))
	})

	t.Run("rejected_value_is_zero_value", func(t *testing.T) {
		q, err := newQuantity(0)

		require.Error(t, err)
		assert.Equal(t, errQuantityNotConstructed, q.guard.Validate(errQuantityNotConstructed))
	})
}
