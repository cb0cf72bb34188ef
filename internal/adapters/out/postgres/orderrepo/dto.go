// Package orderrepo maps order aggregates to the orders and order_lines
// tables. Lines are an immutable snapshot written once with the order.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is a row of the orders table. Subtotal is stored so that list
// queries need not join the lines. Code is indexed for lookups but not
// unique; the id is the identity.
type OrderDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Code         string         `gorm:"type:varchar(16);not null;index"`
	FirstName    string         `gorm:"type:varchar(255);not null"`
	LastName     string         `gorm:"type:varchar(255);not null"`
	Location     LocationDTO    `gorm:"embedded;embeddedPrefix:location_"`
	ZoneName     string         `gorm:"type:varchar(255);not null;default:''"`
	ShippingCost int64          `gorm:"type:bigint;not null"`
	Subtotal     int64          `gorm:"type:bigint;not null"`
	Status       string         `gorm:"type:varchar(16);not null;index"`
	CreatedAt    time.Time      `gorm:"not null;index"`
	Lines        []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LocationDTO is the optional delivery point. Both columns are NULL when
// the order has no location.
type LocationDTO struct {
	Lat *float64 `gorm:"type:double precision"`
	Lng *float64 `gorm:"type:double precision"`
}

// OrderLineDTO is a row of the order_lines table.
type OrderLineDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Position  int       `gorm:"type:int;not null"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	UnitPrice int64     `gorm:"type:bigint;not null"`
	Quantity  int       `gorm:"type:int;not null"`
	Size      string    `gorm:"type:varchar(32);not null"`
	Image     string    `gorm:"type:varchar(1024);not null;default:''"`
}

func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()

	var location LocationDTO
	if loc := o.Location(); loc != nil {
		lat, lng := loc.Lat(), loc.Lng()
		location = LocationDTO{Lat: &lat, Lng: &lng}
	}

	lines := make([]OrderLineDTO, 0, len(o.Lines()))
	for i, l := range o.Lines() {
		lines = append(lines, OrderLineDTO{
			ID:        l.ID().Bytes(),
			OrderID:   orderID,
			Position:  i,
			ProductID: l.ProductID().Bytes(),
			Name:      l.Name(),
			UnitPrice: l.UnitPrice(),
			Quantity:  l.Quantity(),
			Size:      l.Size(),
			Image:     l.Image(),
		})
	}

	customer := o.Customer()
	shipping := o.Shipping()

	return OrderDTO{
		ID:           orderID,
		Code:         o.Code(),
		FirstName:    customer.FirstName,
		LastName:     customer.LastName,
		Location:     location,
		ZoneName:     shipping.ZoneName,
		ShippingCost: shipping.Cost,
		Subtotal:     o.Subtotal(),
		Status:       o.Status().String(),
		CreatedAt:    o.CreatedAt(),
		Lines:        lines,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var location *kernel.Coordinate
	if dto.Location.Lat != nil && dto.Location.Lng != nil {
		loc, locErr := kernel.NewCoordinate(*dto.Location.Lat, *dto.Location.Lng)
		if locErr != nil {
			return nil, locErr
		}
		location = &loc
	}

	lines := make([]cart.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		dto.Code,
		order.Customer{FirstName: dto.FirstName, LastName: dto.LastName},
		lines,
		location,
		order.Shipping{ZoneName: dto.ZoneName, Cost: dto.ShippingCost},
		status,
		dto.CreatedAt.UTC(),
	)
}

func lineToDomain(dto OrderLineDTO) (cart.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return cart.Line{}, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return cart.Line{}, err
	}

	return cart.NewLine(id, productID, dto.Name, dto.UnitPrice, dto.Quantity, dto.Size, dto.Image)
}
