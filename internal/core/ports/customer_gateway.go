package ports

import (
	"context"

	"github.com/likecate/sky-take-out/internal/core/domain/model/customer"
	"github.com/likecate/sky-take-out/internal/core/domain/model/kernel"
)

// AddressBook is the narrow read interface onto the customer's address book.
type AddressBook interface {
	// GetAddressByID retrieves one address book entry.
	GetAddressByID(ctx context.Context, id kernel.UUID) (*customer.Address, error)
}

// Cart is the narrow interface onto the customer's shopping cart. Clear runs
// inside the submission transaction so cart and order change atomically.
type Cart interface {
	// ListItems retrieves the customer's current cart lines.
	ListItems(ctx context.Context, customerID kernel.UUID) ([]customer.CartLine, error)

	// Clear removes all of the customer's cart lines.
	Clear(ctx context.Context, customerID kernel.UUID) error

	// AddItems inserts cart lines in one batch. Used by repeat-order to
	// push a past order's details back into the cart.
	AddItems(ctx context.Context, lines []customer.CartLine) error
}
