package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddCartLineCommand(t *testing.T) {
	sessionID, productID := kernel.NewUUID(), kernel.NewUUID()

	cmd, err := commands.NewAddCartLineCommand(sessionID, productID, 2, "L")
	require.NoError(t, err)
	assert.Equal(t, sessionID, cmd.SessionID())
	assert.Equal(t, productID, cmd.ProductID())
	assert.Equal(t, 2, cmd.Quantity())
	assert.Equal(t, "L", cmd.Size())
	assert.NoError(t, cmd.Validate())

	_, err = commands.NewAddCartLineCommand(kernel.UUID{}, kernel.UUID{}, 0, "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	assert.ErrorIs(t, commands.AddCartLineCommand{}.Validate(), commands.ErrAddCartLineCommandIsNotConstructed)
}

func TestNewChangeCartLineCommand(t *testing.T) {
	qty, size := 3, "XL"

	t.Run("quantity only", func(t *testing.T) {
		cmd, err := commands.NewChangeCartLineCommand(kernel.NewUUID(), kernel.NewUUID(), &qty, nil)
		require.NoError(t, err)

		got, ok := cmd.Quantity()
		assert.True(t, ok)
		assert.Equal(t, 3, got)
		_, ok = cmd.Size()
		assert.False(t, ok)
	})

	t.Run("input is copied", func(t *testing.T) {
		local := 4
		cmd, err := commands.NewChangeCartLineCommand(kernel.NewUUID(), kernel.NewUUID(), &local, &size)
		require.NoError(t, err)
		local = 9

		got, _ := cmd.Quantity()
		assert.Equal(t, 4, got)
	})

	t.Run("nothing to change", func(t *testing.T) {
		_, err := commands.NewChangeCartLineCommand(kernel.NewUUID(), kernel.NewUUID(), nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("quantity below one", func(t *testing.T) {
		zero := 0
		_, err := commands.NewChangeCartLineCommand(kernel.NewUUID(), kernel.NewUUID(), &zero, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewChangeCheckoutStepCommand(t *testing.T) {
	_, err := commands.NewChangeCheckoutStepCommand(kernel.NewUUID(), checkout.StepConfirming)
	require.NoError(t, err)

	_, err = commands.NewChangeCheckoutStepCommand(kernel.NewUUID(), checkout.StepUnknown)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewSelectLocationCommand(t *testing.T) {
	cmd, err := commands.NewSelectLocationCommand(kernel.NewUUID(), 4.65, -74.05)
	require.NoError(t, err)
	assert.InDelta(t, 4.65, cmd.Point().Lat(), 1e-9)

	_, err = commands.NewSelectLocationCommand(kernel.NewUUID(), 91, 0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = commands.NewSelectLocationCommand(kernel.UUID{}, 0, 0)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewChangeOrderStatusCommand(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewChangeOrderStatusCommand(id, order.Shipped)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, order.Shipped, cmd.Target())

	_, err = commands.NewChangeOrderStatusCommand(id, order.Unknown)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestSessionOnlyCommands_RejectNilSession(t *testing.T) {
	_, err := commands.NewStartCheckoutCommand(kernel.UUID{})
	require.Error(t, err)

	_, err = commands.NewConfirmCheckoutCommand(kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewUpdateCustomerCommand(kernel.UUID{}, "Ana", "Gómez")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewRemoveCartLineCommand(kernel.NewUUID(), kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestParameterlessCommands_Validate(t *testing.T) {
	assert.NoError(t, commands.NewExpireSessionsCommand().Validate())
	assert.NoError(t, commands.NewRefreshZonesCommand().Validate())
	assert.ErrorIs(t, commands.ExpireSessionsCommand{}.Validate(), commands.ErrExpireSessionsCommandIsNotConstructed)
	assert.ErrorIs(t, commands.RefreshZonesCommand{}.Validate(), commands.ErrRefreshZonesCommandIsNotConstructed)
}
