package commands

import (
	"errors"

	"github.com/likecate/sky-take-out/internal/core/domain/model/kernel"
	"github.com/likecate/sky-take-out/internal/pkg/guard"
)

var (
	ErrAdminCancelOrderCommandIsNotConstructed = errors.New(
		"AdminCancelOrderCommand must be created via NewAdminCancelOrderCommand constructor",
	)
	ErrCancelReasonIsRequired = errors.New("cancel reason is required")
)

// AdminCancelOrderCommand is the merchant-side cancellation of an order in any
// status except ToBeConfirmed (use reject) and Cancelled. Paid orders are
// refunded (simulated).
type AdminCancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewAdminCancelOrderCommand creates a merchant cancellation command. The
// reason is mandatory.
func NewAdminCancelOrderCommand(orderID kernel.UUID, reason string) (AdminCancelOrderCommand, error) {
	cmd := AdminCancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setReason(reason),
	); err != nil {
		return AdminCancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdminCancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdminCancelOrderCommandIsNotConstructed)
}

// OrderID returns the order being cancelled.
func (c AdminCancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns the merchant's cancellation reason.
func (c AdminCancelOrderCommand) Reason() string {
	return c.reason
}

func (c *AdminCancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdminCancelOrderCommand) setReason(reason string) error {
	if reason == "" {
		return ErrCancelReasonIsRequired
	}

	c.reason = reason
	return nil
}
