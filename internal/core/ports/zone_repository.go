package ports

import (
	"context"

	"storefront/internal/core/domain/model/zone"
)

// ZoneSource supplies the delivery zones in lookup order. The order matters:
// when zones overlap the first one containing a point prices the delivery.
type ZoneSource interface {
	GetAll(ctx context.Context) ([]*zone.Zone, error)
}

// ZoneRepository is the stored zone list. Zones are maintained outside the
// checkout core; Add exists for seeding.
type ZoneRepository interface {
	ZoneSource
	Add(ctx context.Context, z *zone.Zone, position int) error
}
