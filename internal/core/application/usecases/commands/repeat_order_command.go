package commands

import (
	"errors"

	"github.com/likecate/sky-take-out/internal/core/domain/model/kernel"
	"github.com/likecate/sky-take-out/internal/pkg/guard"
)

var ErrRepeatOrderCommandIsNotConstructed = errors.New(
	"RepeatOrderCommand must be created via NewRepeatOrderCommand constructor",
)

// RepeatOrderCommand copies a past order's line items back into the customer's
// shopping cart ("one more order"). The past order itself is untouched.
type RepeatOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRepeatOrderCommand creates a repeat command for the given order and the
// customer whose cart receives the copies.
func NewRepeatOrderCommand(orderID, customerID kernel.UUID) (RepeatOrderCommand, error) {
	cmd := RepeatOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		customerID.Validate(),
	); err != nil {
		return RepeatOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.customerID = customerID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RepeatOrderCommand) Validate() error {
	return c.guard.Validate(ErrRepeatOrderCommandIsNotConstructed)
}

// OrderID returns the order whose details are copied.
func (c RepeatOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the customer whose cart receives the copies.
func (c RepeatOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}
