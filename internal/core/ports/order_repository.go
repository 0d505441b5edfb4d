// Package ports defines the interfaces the lifecycle engine consumes from its
// collaborators: persistence, the address book and cart, the routing service,
// and the notification transport. Adapters implement them; the core depends
// only on the contracts.
package ports

import (
	"context"
	"time"

	"github.com/likecate/sky-take-out/internal/core/domain/model/kernel"
	"github.com/likecate/sky-take-out/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates and
// their line items.
type OrderRepository interface {
	// Add persists a freshly submitted order.
	Add(ctx context.Context, aggregate *order.Order) error

	// AddDetails persists the order's line items in one batch. Called once
	// per order, inside the submission transaction.
	AddDetails(ctx context.Context, orderID kernel.UUID, details []order.Detail) error

	// Update persists an order unconditionally. Used only where no
	// concurrent writer exists; lifecycle transitions go through
	// UpdateIfStatus instead.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateIfStatus persists an order only if its stored status still
	// equals expected (a per-order check-and-set). Returns
	// order.ErrStatusConflict when a concurrent transition won the race.
	UpdateIfStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// GetByID retrieves an order by its internal identifier.
	GetByID(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order by its external order number.
	GetByNumber(ctx context.Context, number string) (*order.Order, error)

	// GetDetails retrieves the order's line items.
	GetDetails(ctx context.Context, orderID kernel.UUID) ([]order.Detail, error)

	// FindByStatusOlderThan retrieves orders in the given status placed
	// before the cutoff. The reaper's scan query.
	FindByStatusOlderThan(ctx context.Context, status order.Status, cutoff time.Time) ([]*order.Order, error)

	// CountByStatus counts orders currently in the given status.
	CountByStatus(ctx context.Context, status order.Status) (int64, error)
}
