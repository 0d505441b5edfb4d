package commands

import (
	"errors"

	"github.com/likecate/sky-take-out/internal/pkg/guard"
)

var (
	ErrPayOrderCommandIsNotConstructed = errors.New(
		"PayOrderCommand must be created via NewPayOrderCommand constructor",
	)
	ErrOrderNumberIsRequired = errors.New("order number is required")
)

// PayOrderCommand confirms payment for a pending order, addressed by its
// external order number the way the payment callback identifies it. The
// gateway exchange itself is simulated as always succeeding.
type PayOrderCommand struct { //nolint:recvcheck //using for validation
	orderNumber string

	guard guard.ConstructorGuard
}

// NewPayOrderCommand creates a payment confirmation command.
func NewPayOrderCommand(orderNumber string) (PayOrderCommand, error) {
	cmd := PayOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderNumber(orderNumber); err != nil {
		return PayOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PayOrderCommand) Validate() error {
	return c.guard.Validate(ErrPayOrderCommandIsNotConstructed)
}

// OrderNumber returns the external order number being paid.
func (c PayOrderCommand) OrderNumber() string {
	return c.orderNumber
}

func (c *PayOrderCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}

	c.orderNumber = orderNumber
	return nil
}
