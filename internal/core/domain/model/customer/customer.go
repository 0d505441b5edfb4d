// Package customer holds the read models the lifecycle engine consumes from
// the customer-facing collaborators: the address book and the shopping cart.
// Both are thin CRUD services outside the engine; only the shapes the engine
// reads are modeled here.
package customer

import (
	"github.com/likecate/sky-take-out/internal/core/domain/model/kernel"
)

// Address is an address book entry. The engine snapshots consignee, phone and
// the full address text onto the order at submission.
type Address struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	Consignee  string
	Phone      string
	City       string
	District   string
	Detail     string
}

// FullText renders the address as a single routable string, the form the
// distance guard feeds to the routing collaborator.
func (a Address) FullText() string {
	return a.City + a.District + a.Detail
}

// CartLine is one shopping cart row. At submission every line becomes an
// immutable order detail and the cart is cleared.
type CartLine struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	ItemID     kernel.UUID
	Name       string
	Image      string
	Quantity   int
	UnitPrice  kernel.Money
}
