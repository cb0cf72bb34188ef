package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrSelectLocationCommandIsNotConstructed = errors.New(
	"SelectLocationCommand must be created via NewSelectLocationCommand constructor",
)

// SelectLocationCommand records the point picked on the map.
type SelectLocationCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	point     kernel.Coordinate

	guard guard.ConstructorGuard
}

// NewSelectLocationCommand validates the raw latitude and longitude.
func NewSelectLocationCommand(sessionID kernel.UUID, lat, lng float64) (SelectLocationCommand, error) {
	point, pointErr := kernel.NewCoordinate(lat, lng)

	if err := errors.Join(wrapRequired("sessionID", sessionID.Validate()), pointErr); err != nil {
		return SelectLocationCommand{}, err
	}

	return SelectLocationCommand{
		sessionID: sessionID,
		point:     point,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SelectLocationCommand) Validate() error {
	return c.guard.Validate(ErrSelectLocationCommandIsNotConstructed)
}

func (c SelectLocationCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c SelectLocationCommand) Point() kernel.Coordinate {
	return c.point
}
