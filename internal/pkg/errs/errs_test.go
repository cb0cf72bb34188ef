package errs_test

import (
	"errors"
	"testing"

	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "123")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: order 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("session expired")
		err := errs.NewObjectNotFoundErrorWithCause("checkout session", "abc", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "object not found: checkout session abc (cause: session expired)", err.Error())
	})

	t.Run("non_string_id", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("line", 4)
		assert.Equal(t, "object not found: line 4", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("size")

		assert.Equal(t, "size", err.ParamName)
		assert.Equal(t, "value is invalid: size", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("size", errors.New("XXL is not offered"))

		assert.Equal(t, "value is invalid: size (cause: XXL is not offered)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("latitude", 91.5, -90, 90)

		assert.Equal(t, "latitude", err.ParamName)
		assert.InDelta(t, 91.5, err.Value, 0)
		assert.Equal(t, -90, err.Min)
		assert.Equal(t, 90, err.Max)
		assert.Equal(t, "value is out of range: latitude is 91.5, min value is -90, max value is 90", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("quantity", 0, 1, 99, errors.New("too few"))

		assert.Equal(t,
			"value is out of range: quantity is 0, min value is 1, max value is 99 (cause: too few)",
			err.Error())
	})

	t.Run("newlines_are_flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)

		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("firstName")

	assert.Equal(t, "value is required: firstName", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())

	withCause := errs.NewValueIsRequiredErrorWithCause("firstName", errors.New("blank"))
	assert.Equal(t, "value is required: firstName (cause: blank)", withCause.Error())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("order", "1"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("size"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("qty", 0, 1, 2), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)

	joined := errors.Join(errs.NewValueIsRequiredError("name"), errs.NewValueIsInvalidError("size"))
	require.ErrorIs(t, joined, errs.ErrValueIsRequired)
	require.ErrorIs(t, joined, errs.ErrValueIsInvalid)

	var invalid *errs.ValueIsInvalidError
	require.ErrorAs(t, joined, &invalid)
	assert.Equal(t, "size", invalid.ParamName)
}
