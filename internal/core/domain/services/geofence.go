package services

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/zone"
)

// Geofence maps a coordinate to the delivery zone that prices its shipping.
// It is stateless; the zero value is ready to use.
type Geofence struct{}

func NewGeofence() Geofence {
	return Geofence{}
}

// Locate returns the first zone, in the order given, whose polygon contains
// point. Zones may overlap, so list order is the tie-break. It returns nil
// when no zone matches, when zones is empty, or when point was never
// constructed. Nil or unconstructed zones are skipped.
//
// Membership of points exactly on a zone edge is implementation-defined
// (see zone.Zone.Contains).
func (Geofence) Locate(point kernel.Coordinate, zones []*zone.Zone) *zone.Zone {
	if point.Validate() != nil {
		return nil
	}

	for _, z := range zones {
		if z.Validate() != nil {
			continue
		}
		if z.Contains(point) {
			return z
		}
	}

	return nil
}
