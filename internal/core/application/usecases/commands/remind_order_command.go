package commands

import (
	"errors"

	"github.com/likecate/sky-take-out/internal/core/domain/model/kernel"
	"github.com/likecate/sky-take-out/internal/pkg/guard"
)

var ErrRemindOrderCommandIsNotConstructed = errors.New(
	"RemindOrderCommand must be created via NewRemindOrderCommand constructor",
)

// RemindOrderCommand is the customer urging the merchant about an order. It
// never changes order state; it only triggers a notification.
type RemindOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemindOrderCommand creates a reminder command for the given order.
func NewRemindOrderCommand(orderID kernel.UUID) (RemindOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RemindOrderCommand{}, err
	}

	return RemindOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemindOrderCommand) Validate() error {
	return c.guard.Validate(ErrRemindOrderCommandIsNotConstructed)
}

// OrderID returns the order being reminded about.
func (c RemindOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
