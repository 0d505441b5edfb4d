package queries

import (
	"errors"

	"github.com/likecate/sky-take-out/internal/pkg/guard"
)

var (
	ErrGetOrderStatisticsQueryIsNotConstructed = errors.New(
		"GetOrderStatisticsQuery must be created via NewGetOrderStatisticsQuery constructor",
	)
)

// GetOrderStatisticsQuery counts the orders the merchant still has to act on.
// Feeds the merchant dashboard badge counters.
//
// Example:
//
//	query := NewGetOrderStatisticsQuery()
//	handler := NewGetOrderStatisticsQueryHandler(db)
//
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders waiting for confirmation\n", stats.ToBeConfirmed)
type GetOrderStatisticsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderStatisticsQuery creates a parameterless statistics query.
func NewGetOrderStatisticsQuery() GetOrderStatisticsQuery {
	return GetOrderStatisticsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatisticsQueryIsNotConstructed)
}

// GetOrderStatisticsQueryResponse holds per-status order counts for the
// statuses that need merchant attention.
type GetOrderStatisticsQueryResponse struct {
	ToBeConfirmed      int
	Confirmed          int
	DeliveryInProgress int
}
