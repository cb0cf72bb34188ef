package zone

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

const (
	// MinBoundaryPoints is the smallest number of vertices forming a polygon.
	MinBoundaryPoints = 3
	// DefaultColor is used when a zone is stored without a display color.
	DefaultColor = "#3388ff"
)

var (
	ErrZoneIsNotConstructed = errors.New("Zone must be created via NewZone constructor")
	ErrNameIsRequired       = errs.NewValueIsRequiredError("name")
)

// Zone is a delivery area with a flat shipping price.
type Zone struct {
	id       kernel.UUID
	name     string
	price    int64
	boundary []kernel.Coordinate
	color    string

	guard guard.ConstructorGuard
}

// NewZone validates and builds a zone. The boundary slice is copied.
// An empty color falls back to DefaultColor.
//
// Example:
//
//	centro, err := zone.NewZone(kernel.NewUUID(), "Centro", 8000, []kernel.Coordinate{a, b, c, d}, "#ff0000")
func NewZone(id kernel.UUID, name string, price int64, boundary []kernel.Coordinate, color string) (*Zone, error) {
	z := &Zone{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		z.setID(id),
		z.setName(name),
		z.setPrice(price),
		z.setBoundary(boundary),
	); err != nil {
		return nil, err
	}

	z.color = strings.TrimSpace(color)
	if z.color == "" {
		z.color = DefaultColor
	}

	return z, nil
}

func (z *Zone) Validate() error {
	if z == nil {
		return ErrZoneIsNotConstructed
	}
	return z.guard.Validate(ErrZoneIsNotConstructed)
}

func (z *Zone) ID() kernel.UUID {
	return z.id
}

func (z *Zone) Name() string {
	return z.name
}

// Price is the flat shipping price in base currency units.
func (z *Zone) Price() int64 {
	return z.price
}

// Boundary returns a copy of the polygon vertices in stored order.
func (z *Zone) Boundary() []kernel.Coordinate {
	out := make([]kernel.Coordinate, len(z.boundary))
	copy(out, z.boundary)
	return out
}

// Color is the map fill color. It plays no part in pricing.
func (z *Zone) Color() string {
	return z.color
}

func (z *Zone) IsEqual(other *Zone) bool {
	return other != nil && z.id.IsEqual(other.id)
}

// Contains reports whether point lies inside the zone, using the even-odd
// ray casting rule: a ray is cast from the point along increasing latitude
// and the boundary edges it crosses are counted; an odd count means inside.
//
// Points lying exactly on an edge or vertex get whichever answer the
// arithmetic produces. That membership is implementation-defined and callers
// must not rely on it.
func (z *Zone) Contains(point kernel.Coordinate) bool {
	x, y := point.Lat(), point.Lng()
	inside := false

	n := len(z.boundary)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := z.boundary[i].Lat(), z.boundary[i].Lng()
		xj, yj := z.boundary[j].Lat(), z.boundary[j].Lng()

		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}

	return inside
}

func (z *Zone) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	z.id = id
	return nil
}

func (z *Zone) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	z.name = name
	return nil
}

func (z *Zone) setPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is negative", price))
	}
	z.price = price
	return nil
}

func (z *Zone) setBoundary(boundary []kernel.Coordinate) error {
	if len(boundary) < MinBoundaryPoints {
		return errs.NewValueIsInvalidErrorWithCause(
			"boundary",
			fmt.Errorf("%d points given, at least %d required", len(boundary), MinBoundaryPoints),
		)
	}

	for i, p := range boundary {
		if err := p.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("boundary[%d]", i), err)
		}
	}

	z.boundary = make([]kernel.Coordinate, len(boundary))
	copy(z.boundary, boundary)
	return nil
}
