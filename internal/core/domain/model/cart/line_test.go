package cart_test

import (
	"testing"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLine(t *testing.T) {
	t.Run("valid line", func(t *testing.T) {
		id, productID := kernel.NewUUID(), kernel.NewUUID()

		l, err := cart.NewLine(id, productID, " Cargo Pants ", 150000, 2, "32", "cargo.jpg")

		require.NoError(t, err)
		require.NoError(t, l.Validate())
		assert.True(t, l.ID().IsEqual(id))
		assert.True(t, l.ProductID().IsEqual(productID))
		assert.Equal(t, "Cargo Pants", l.Name())
		assert.Equal(t, int64(150000), l.UnitPrice())
		assert.Equal(t, 2, l.Quantity())
		assert.Equal(t, "32", l.Size())
		assert.Equal(t, "cargo.jpg", l.Image())
		assert.Equal(t, int64(300000), l.Total())
		assert.False(t, l.IsSingleSize())
	})

	t.Run("empty size becomes single size", func(t *testing.T) {
		l, err := cart.NewLine(kernel.NewUUID(), kernel.NewUUID(), "Cap", 60000, 1, "  ", "")

		require.NoError(t, err)
		assert.Equal(t, cart.SingleSize, l.Size())
		assert.True(t, l.IsSingleSize())
	})

	tests := []struct {
		name      string
		id        kernel.UUID
		productID kernel.UUID
		lineName  string
		price     int64
		quantity  int
		wantErr   error
	}{
		{"missing id", kernel.UUID{}, kernel.NewUUID(), "Tee", 1, 1, kernel.ErrUUIDIsNotConstructed},
		{"missing product", kernel.NewUUID(), kernel.UUID{}, "Tee", 1, 1, errs.ErrValueIsRequired},
		{"blank name", kernel.NewUUID(), kernel.NewUUID(), "", 1, 1, errs.ErrValueIsRequired},
		{"negative price", kernel.NewUUID(), kernel.NewUUID(), "Tee", -5, 1, errs.ErrValueIsInvalid},
		{"zero quantity", kernel.NewUUID(), kernel.NewUUID(), "Tee", 1, 0, errs.ErrValueIsInvalid},
		{"quantity above cap", kernel.NewUUID(), kernel.NewUUID(), "Tee", 1, cart.MaxQuantity + 1, errs.ErrValueIsOutOfRange},
		{"price above cap", kernel.NewUUID(), kernel.NewUUID(), "Tee", cart.MaxUnitPrice + 1, 1, errs.ErrValueIsOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := cart.NewLine(tt.id, tt.productID, tt.lineName, tt.price, tt.quantity, "M", "")

			require.ErrorIs(t, err, tt.wantErr)
			require.Error(t, l.Validate())
		})
	}
}
