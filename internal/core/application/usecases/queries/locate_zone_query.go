package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrLocateZoneQueryIsNotConstructed = errors.New(
	"LocateZoneQuery must be created via NewLocateZoneQuery constructor",
)

// LocateZoneQuery quotes shipping for a point without a checkout session.
type LocateZoneQuery struct {
	point kernel.Coordinate

	guard guard.ConstructorGuard
}

func NewLocateZoneQuery(lat, lng float64) (LocateZoneQuery, error) {
	point, err := kernel.NewCoordinate(lat, lng)
	if err != nil {
		return LocateZoneQuery{}, err
	}
	return LocateZoneQuery{point: point, guard: guard.NewConstructorGuard()}, nil
}

func (q LocateZoneQuery) Validate() error {
	return q.guard.Validate(ErrLocateZoneQueryIsNotConstructed)
}

func (q LocateZoneQuery) Point() kernel.Coordinate {
	return q.point
}

// LocateZoneQueryResponse has Matched false and a zero price when the point
// is outside every zone.
type LocateZoneQueryResponse struct {
	Matched  bool
	ZoneID   kernel.UUID
	ZoneName string
	Price    int64
}
