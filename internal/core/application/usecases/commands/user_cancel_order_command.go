package commands

import (
	"errors"

	"github.com/likecate/sky-take-out/internal/core/domain/model/kernel"
	"github.com/likecate/sky-take-out/internal/pkg/guard"
)

var ErrUserCancelOrderCommandIsNotConstructed = errors.New(
	"UserCancelOrderCommand must be created via NewUserCancelOrderCommand constructor",
)

// userCancelReason is recorded on every customer-initiated cancellation.
const userCancelReason = "cancelled by user"

// UserCancelOrderCommand is the customer cancelling their own order. Only
// orders not yet taken by the merchant (PendingPayment or ToBeConfirmed) can
// be cancelled this way.
type UserCancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewUserCancelOrderCommand creates a customer cancellation command.
func NewUserCancelOrderCommand(orderID kernel.UUID) (UserCancelOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UserCancelOrderCommand{}, err
	}

	return UserCancelOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UserCancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrUserCancelOrderCommandIsNotConstructed)
}

// OrderID returns the order being cancelled.
func (c UserCancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
