package commands

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var ErrRefreshZonesCommandIsNotConstructed = errors.New(
	"RefreshZonesCommand must be created via NewRefreshZonesCommand constructor",
)

// RefreshZonesCommand reloads the cached zone list from the database.
type RefreshZonesCommand struct {
	guard guard.ConstructorGuard
}

func NewRefreshZonesCommand() RefreshZonesCommand {
	return RefreshZonesCommand{guard: guard.NewConstructorGuard()}
}

func (c RefreshZonesCommand) Validate() error {
	return c.guard.Validate(ErrRefreshZonesCommandIsNotConstructed)
}
