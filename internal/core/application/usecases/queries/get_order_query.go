package queries

import (
	"errors"
	"time"

	"github.com/likecate/sky-take-out/internal/core/domain/model/kernel"
	"github.com/likecate/sky-take-out/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
	ErrOrderIDIsRequired = errors.New("order id is required")
)

// GetOrderQuery retrieves a single order together with its line items.
// Used by both the customer order page and the merchant order detail view.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrderQueryHandler(db)
//
//	detail, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//	fmt.Printf("Order %s: %s\n", detail.Number, detail.Status)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the given order identifier.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, ErrOrderIDIsRequired
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the order being looked up.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// GetOrderQueryResponse is the read model for a single order.
// Timestamps that have not happened yet are nil.
type GetOrderQueryResponse struct {
	ID            kernel.UUID
	Number        string
	CustomerID    kernel.UUID
	Status        string
	PaymentStatus string
	Amount        kernel.Money
	Consignee     string
	Phone         string
	Address       string
	CancelReason  string
	OrderTime     time.Time
	CheckoutTime  *time.Time
	CancelTime    *time.Time
	DeliveryTime  *time.Time
	Items         []GetOrderQueryItem
}

// GetOrderQueryItem is one line item of the order read model.
type GetOrderQueryItem struct {
	ItemID    kernel.UUID
	Name      string
	Image     string
	Quantity  int
	UnitPrice kernel.Money
}
