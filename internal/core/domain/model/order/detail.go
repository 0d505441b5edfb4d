package order

import (
	"errors"
	"fmt"

	"github.com/likecate/sky-take-out/internal/core/domain/model/kernel"
	"github.com/likecate/sky-take-out/internal/pkg/errs"
)

var (
	// ErrDetailNameIsRequired rejects line items without a dish name.
	ErrDetailNameIsRequired = errors.New("detail name is required")
)

// Detail is a line item snapshotted from the shopping cart at submission.
// Details are created once, in bulk, in the same transaction as their order,
// and never mutated or partially deleted afterward.
type Detail struct {
	id        kernel.UUID
	itemID    kernel.UUID
	name      string
	image     string
	quantity  int
	unitPrice kernel.Money

	isConstructed bool
}

// NewDetail creates a line item. Quantity must be positive.
func NewDetail(id, itemID kernel.UUID, name, image string, quantity int, unitPrice kernel.Money) (Detail, error) {
	if err := id.Validate(); err != nil {
		return Detail{}, err
	}
	if err := itemID.Validate(); err != nil {
		return Detail{}, err
	}
	if name == "" {
		return Detail{}, ErrDetailNameIsRequired
	}
	if quantity <= 0 {
		return Detail{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Detail{
		id:            id,
		itemID:        itemID,
		name:          name,
		image:         image,
		quantity:      quantity,
		unitPrice:     unitPrice,
		isConstructed: true,
	}, nil
}

// Validate ensures the Detail was built through NewDetail.
func (d Detail) Validate() error {
	if !d.isConstructed {
		return errs.NewValueIsRequiredError("Detail must be created via NewDetail")
	}
	return nil
}

// ID returns the line item identifier.
func (d Detail) ID() kernel.UUID { return d.id }

// ItemID returns the catalog item the line was snapshotted from.
func (d Detail) ItemID() kernel.UUID { return d.itemID }

// Name returns the dish name at submission time.
func (d Detail) Name() string { return d.name }

// Image returns the dish image reference at submission time.
func (d Detail) Image() string { return d.image }

// Quantity returns how many units were ordered.
func (d Detail) Quantity() int { return d.quantity }

// UnitPrice returns the price per unit at submission time.
func (d Detail) UnitPrice() kernel.Money { return d.unitPrice }

// Subtotal returns quantity times unit price.
func (d Detail) Subtotal() kernel.Money {
	// Quantity was validated positive at construction.
	total, _ := d.unitPrice.MultiplyBy(d.quantity)
	return total
}
