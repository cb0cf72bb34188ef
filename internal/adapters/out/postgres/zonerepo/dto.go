// Package zonerepo stores delivery zones. The boundary polygon is kept as a
// JSON array of [lat, lng] pairs; position fixes the lookup order.
package zonerepo

import (
	"encoding/json"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/zone"

	"github.com/google/uuid"
)

type ZoneDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position int       `gorm:"type:int;not null;index"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Price    int64     `gorm:"type:bigint;not null"`
	Color    string    `gorm:"type:varchar(16);not null"`
	Boundary string    `gorm:"type:jsonb;not null"`
}

func (ZoneDTO) TableName() string {
	return "delivery_zones"
}

func fromDomain(z *zone.Zone, position int) (ZoneDTO, error) {
	boundary := z.Boundary()
	points := make([][2]float64, 0, len(boundary))
	for _, p := range boundary {
		points = append(points, [2]float64{p.Lat(), p.Lng()})
	}

	raw, err := json.Marshal(points)
	if err != nil {
		return ZoneDTO{}, err
	}

	return ZoneDTO{
		ID:       z.ID().Bytes(),
		Position: position,
		Name:     z.Name(),
		Price:    z.Price(),
		Color:    z.Color(),
		Boundary: string(raw),
	}, nil
}

func toDomain(dto ZoneDTO) (*zone.Zone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var points [][2]float64
	if err = json.Unmarshal([]byte(dto.Boundary), &points); err != nil {
		return nil, fmt.Errorf("zone %s boundary: %w", dto.Name, err)
	}

	boundary := make([]kernel.Coordinate, 0, len(points))
	for _, p := range points {
		c, cErr := kernel.NewCoordinate(p[0], p[1])
		if cErr != nil {
			return nil, cErr
		}
		boundary = append(boundary, c)
	}

	return zone.NewZone(id, dto.Name, dto.Price, boundary, dto.Color)
}
