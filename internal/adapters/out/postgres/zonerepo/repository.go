package zonerepo

import (
	"context"

	"storefront/internal/core/domain/model/zone"

	"gorm.io/gorm"
)

// GormZoneRepository implements ports.ZoneRepository using GORM.
type GormZoneRepository struct {
	db *gorm.DB
}

func NewGormZoneRepository(db *gorm.DB) *GormZoneRepository {
	return &GormZoneRepository{db: db}
}

// Add stores a zone at position in the lookup order.
func (r *GormZoneRepository) Add(ctx context.Context, z *zone.Zone, position int) error {
	if err := z.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(z, position)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAll returns every zone ordered by position.
func (r *GormZoneRepository) GetAll(ctx context.Context) ([]*zone.Zone, error) {
	var dtos []ZoneDTO
	if err := r.db.WithContext(ctx).Order("position").Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	zones := make([]*zone.Zone, 0, len(dtos))
	for _, dto := range dtos {
		z, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}

	return zones, nil
}
