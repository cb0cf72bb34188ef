package commands

import (
	"context"
)

// ZoneRefresher replaces a cached zone list with the stored one and reports
// how many zones it now holds.
type ZoneRefresher interface {
	Refresh(ctx context.Context) (int, error)
}

type RefreshZonesCommandHandler struct {
	refresher ZoneRefresher
}

func NewRefreshZonesCommandHandler(refresher ZoneRefresher) RefreshZonesCommandHandler {
	return RefreshZonesCommandHandler{refresher: refresher}
}

func (h RefreshZonesCommandHandler) Handle(ctx context.Context, cmd RefreshZonesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	return h.refresher.Refresh(ctx)
}
