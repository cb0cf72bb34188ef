package queries

import (
	"context"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetPendingOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetPendingOrdersQueryHandler(db *gorm.DB) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{db: db}
}

func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) ([]GetPendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetPendingOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			first_name,
			last_name,
			zone_name,
			subtotal,
			shipping_cost,
			created_at
		FROM orders
		WHERE status = ?
		ORDER BY created_at DESC, code
	`, order.Pending.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp                GetPendingOrdersQueryResponse
			id                  uuid.UUID
			firstName, lastName string
			createdAt           time.Time
		)

		err = rows.Scan(
			&id,
			&resp.Code,
			&firstName,
			&lastName,
			&resp.ZoneName,
			&resp.Subtotal,
			&resp.ShippingCost,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.CustomerName = strings.TrimSpace(firstName + " " + lastName)
		resp.Total = resp.Subtotal + resp.ShippingCost
		resp.CreatedAt = createdAt.UTC()

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
