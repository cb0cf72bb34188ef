// Package seed loads delivery zones and the product catalog from a JSON
// file. Zones are replaced as a whole so the file order becomes the lookup
// order; products are upserted by id.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/adapters/out/postgres/zonerepo"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/zone"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type File struct {
	Zones    []ZoneEntry    `json:"zones"`
	Products []ProductEntry `json:"products"`
}

type ZoneEntry struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Price    int64        `json:"price"`
	Color    string       `json:"color"`
	Boundary [][2]float64 `json:"boundary"`
}

type ProductEntry struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Price  int64    `json:"price"`
	Sizes  []string `json:"sizes"`
	Image  string   `json:"image"`
	Active *bool    `json:"active"`
}

// Catalog is a parsed and validated seed file.
type Catalog struct {
	Zones    []*zone.Zone
	Products []*product.Product
}

// Parse decodes r and validates every entry. Entries without an id get a
// fresh one. Products are active unless stated otherwise.
func Parse(r io.Reader) (Catalog, error) {
	var f File
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return Catalog{}, fmt.Errorf("decode seed file: %w", err)
	}

	var (
		catalog Catalog
		err     error
	)
	for i, e := range f.Zones {
		z, zErr := e.toDomain()
		if zErr != nil {
			err = errors.Join(err, fmt.Errorf("zones[%d] %q: %w", i, e.Name, zErr))
			continue
		}
		catalog.Zones = append(catalog.Zones, z)
	}
	for i, e := range f.Products {
		p, pErr := e.toDomain()
		if pErr != nil {
			err = errors.Join(err, fmt.Errorf("products[%d] %q: %w", i, e.Name, pErr))
			continue
		}
		catalog.Products = append(catalog.Products, p)
	}
	if err != nil {
		return Catalog{}, err
	}
	return catalog, nil
}

// Apply writes the catalog in one transaction.
func Apply(ctx context.Context, db *gorm.DB, catalog Catalog) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&zonerepo.ZoneDTO{}).Error; err != nil {
			return err
		}

		zones := zonerepo.NewGormZoneRepository(tx)
		for i, z := range catalog.Zones {
			if err := zones.Add(ctx, z, i); err != nil {
				return err
			}
		}

		products := productrepo.NewGormProductRepository(tx.Clauses(clause.OnConflict{UpdateAll: true}))
		for _, p := range catalog.Products {
			if err := products.Add(ctx, p); err != nil {
				return err
			}
		}
		return nil
	})
}

func (e ZoneEntry) toDomain() (*zone.Zone, error) {
	id, err := idOrNew(e.ID)
	if err != nil {
		return nil, err
	}

	boundary := make([]kernel.Coordinate, 0, len(e.Boundary))
	for _, p := range e.Boundary {
		c, cErr := kernel.NewCoordinate(p[0], p[1])
		if cErr != nil {
			return nil, cErr
		}
		boundary = append(boundary, c)
	}
	return zone.NewZone(id, e.Name, e.Price, boundary, e.Color)
}

func (e ProductEntry) toDomain() (*product.Product, error) {
	id, err := idOrNew(e.ID)
	if err != nil {
		return nil, err
	}
	active := e.Active == nil || *e.Active
	return product.NewProduct(id, e.Name, e.Price, e.Sizes, e.Image, active)
}

func idOrNew(raw string) (kernel.UUID, error) {
	if raw == "" {
		return kernel.NewUUID(), nil
	}
	return kernel.UUIDFromString(raw)
}
