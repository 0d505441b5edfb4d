package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/likecate/sky-take-out/internal/core/domain/model/kernel"
	"github.com/likecate/sky-take-out/internal/core/domain/model/order"
	"github.com/likecate/sky-take-out/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler loads the order read model straight from the database.
// The read side bypasses the aggregate and repositories on purpose.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ObjectNotFoundError when no order
// exists with the requested identifier.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			customer_id,
			status,
			pay_status,
			amount_cents,
			consignee,
			phone,
			address,
			cancel_reason,
			order_time,
			checkout_time,
			cancel_time,
			delivery_time
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	var (
		id           uuid.UUID
		customerID   uuid.UUID
		status       int
		payStatus    int
		amountCents  int64
		resp         GetOrderQueryResponse
		checkoutTime sql.NullTime
		cancelTime   sql.NullTime
		deliveryTime sql.NullTime
	)

	err := row.Scan(
		&id,
		&resp.Number,
		&customerID,
		&status,
		&payStatus,
		&amountCents,
		&resp.Consignee,
		&resp.Phone,
		&resp.Address,
		&resp.CancelReason,
		&resp.OrderTime,
		&checkoutTime,
		&cancelTime,
		&deliveryTime,
	)
	if err == sql.ErrNoRows {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.Status = order.Status(status).String()
	resp.PaymentStatus = order.PaymentStatus(payStatus).String()

	resp.Amount, err = kernel.NewMoneyFromCents(amountCents)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.CheckoutTime = nullableTime(checkoutTime)
	resp.CancelTime = nullableTime(cancelTime)
	resp.DeliveryTime = nullableTime(deliveryTime)

	resp.Items, err = h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) loadItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]GetOrderQueryItem, error) {
	items := make([]GetOrderQueryItem, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			item_id,
			name,
			image,
			quantity,
			unit_price_cents
		FROM order_details
		WHERE order_id = ?
		ORDER BY id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetOrderQueryItem
		var itemID uuid.UUID
		var unitPriceCents int64

		err = rows.Scan(
			&itemID,
			&item.Name,
			&item.Image,
			&item.Quantity,
			&unitPriceCents,
		)
		if err != nil {
			return nil, err
		}

		item.ItemID, err = kernel.UUIDFromBytes(itemID[:])
		if err != nil {
			return nil, err
		}
		item.UnitPrice, err = kernel.NewMoneyFromCents(unitPriceCents)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
