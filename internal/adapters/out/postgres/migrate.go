package postgres

import (
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/adapters/out/postgres/zonerepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&zonerepo.ZoneDTO{},
		&productrepo.ProductDTO{},
	)
}
