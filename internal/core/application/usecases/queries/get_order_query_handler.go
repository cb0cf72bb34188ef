package queries

import (
	"context"
	"database/sql"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns *errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp, found, err := h.header(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	if !found {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	if resp.Lines, err = h.lines(ctx, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) header(ctx context.Context, id kernel.UUID) (GetOrderQueryResponse, bool, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			code,
			first_name,
			last_name,
			status,
			location_lat,
			location_lng,
			zone_name,
			shipping_cost,
			subtotal,
			created_at
		FROM orders
		WHERE id = ?
	`, id.Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return GetOrderQueryResponse{}, false, rows.Err()
	}

	var (
		resp     = GetOrderQueryResponse{ID: id}
		lat, lng sql.NullFloat64
		created  time.Time
	)
	if err = rows.Scan(
		&resp.Code,
		&resp.FirstName,
		&resp.LastName,
		&resp.Status,
		&lat,
		&lng,
		&resp.ZoneName,
		&resp.ShippingCost,
		&resp.Subtotal,
		&created,
	); err != nil {
		return GetOrderQueryResponse{}, false, err
	}

	if lat.Valid && lng.Valid {
		loc, locErr := kernel.NewCoordinate(lat.Float64, lng.Float64)
		if locErr != nil {
			return GetOrderQueryResponse{}, false, locErr
		}
		resp.Location = &loc
	}
	resp.ShippingToBeArranged = resp.ZoneName == "" && resp.ShippingCost == 0
	resp.Total = resp.Subtotal + resp.ShippingCost
	resp.CreatedAt = created.UTC()

	return resp, true, nil
}

func (h GetOrderQueryHandler) lines(ctx context.Context, id kernel.UUID) ([]OrderLineResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			name,
			unit_price,
			quantity,
			size,
			image
		FROM order_lines
		WHERE order_id = ?
		ORDER BY position
	`, id.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]OrderLineResponse, 0)
	for rows.Next() {
		var (
			line      OrderLineResponse
			productID uuid.UUID
		)
		if err = rows.Scan(&productID, &line.Name, &line.UnitPrice, &line.Quantity, &line.Size, &line.Image); err != nil {
			return nil, err
		}

		pid, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}
		line.ProductID = pid
		line.Total = line.UnitPrice * int64(line.Quantity)
		lines = append(lines, line)
	}

	return lines, rows.Err()
}
