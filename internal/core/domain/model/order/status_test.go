package order_test

import (
	"testing"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	for _, s := range []order.Status{order.Pending, order.Confirmed, order.Shipped, order.Delivered, order.Cancelled} {
		t.Run(s.String(), func(t *testing.T) {
			require.NoError(t, s.Validate())
		})
	}

	for _, s := range []order.Status{order.Unknown, order.Status(-1), order.Status(42)} {
		err := s.Validate()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "is not a valid status")
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", order.Pending.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(99).String())
}

func TestParseStatus(t *testing.T) {
	for _, s := range []order.Status{order.Pending, order.Confirmed, order.Shipped, order.Delivered, order.Cancelled} {
		parsed, err := order.ParseStatus(s.String())

		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := order.ParseStatus("Unknown")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.ParseStatus("pending")
	require.Error(t, err, "names are case sensitive")
}

func TestStatus_Transitions(t *testing.T) {
	all := []order.Status{order.Pending, order.Confirmed, order.Shipped, order.Delivered, order.Cancelled}

	allowed := map[order.Status][]order.Status{
		order.Pending:   {order.Confirmed, order.Cancelled},
		order.Confirmed: {order.Shipped, order.Cancelled},
		order.Shipped:   {order.Delivered},
		order.Delivered: {},
		order.Cancelled: {},
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}

			t.Run(from.String()+"->"+to.String(), func(t *testing.T) {
				next, err := from.TransitionTo(to)

				if want {
					require.NoError(t, err)
					assert.Equal(t, to, next)
					return
				}
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				require.ErrorIs(t, err, order.ErrIllegalTransition)
				assert.Equal(t, order.Unknown, next)
			})
		}
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Confirmed.IsTerminal())
	assert.False(t, order.Shipped.IsTerminal())
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
}
