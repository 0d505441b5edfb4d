package queries

import (
	"context"

	"github.com/likecate/sky-take-out/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderStatisticsQueryHandler counts active orders grouped by status.
type GetOrderStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatisticsQueryHandler creates a handler for dashboard counters.
func NewGetOrderStatisticsQueryHandler(db *gorm.DB) GetOrderStatisticsQueryHandler {
	return GetOrderStatisticsQueryHandler{db: db}
}

// Handle counts orders in each status the merchant acts on. Statuses with no
// orders report zero.
func (h GetOrderStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatisticsQuery,
) (GetOrderStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatisticsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		WHERE status IN (?, ?, ?)
		GROUP BY status
	`, order.ToBeConfirmed, order.Confirmed, order.DeliveryInProgress).Rows()
	if err != nil {
		return GetOrderStatisticsQueryResponse{}, err
	}
	defer rows.Close()

	var resp GetOrderStatisticsQueryResponse
	for rows.Next() {
		var status int
		var count int

		if err = rows.Scan(&status, &count); err != nil {
			return GetOrderStatisticsQueryResponse{}, err
		}

		switch order.Status(status) {
		case order.ToBeConfirmed:
			resp.ToBeConfirmed = count
		case order.Confirmed:
			resp.Confirmed = count
		case order.DeliveryInProgress:
			resp.DeliveryInProgress = count
		}
	}

	if err = rows.Err(); err != nil {
		return GetOrderStatisticsQueryResponse{}, err
	}

	return resp, nil
}
