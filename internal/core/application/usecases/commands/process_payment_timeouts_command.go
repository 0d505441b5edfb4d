package commands

import (
	"errors"

	"github.com/likecate/sky-take-out/internal/pkg/guard"
)

var ErrProcessPaymentTimeoutsCommandIsNotConstructed = errors.New(
	"ProcessPaymentTimeoutsCommand must be created via NewProcessPaymentTimeoutsCommand constructor",
)

// ProcessPaymentTimeoutsCommand triggers one reaper scan over orders stuck in
// PendingPayment past the payment window. It carries no parameters; the
// window lives on the handler.
type ProcessPaymentTimeoutsCommand struct {
	guard guard.ConstructorGuard
}

// NewProcessPaymentTimeoutsCommand creates a payment timeout scan command.
func NewProcessPaymentTimeoutsCommand() ProcessPaymentTimeoutsCommand {
	return ProcessPaymentTimeoutsCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c ProcessPaymentTimeoutsCommand) Validate() error {
	return c.guard.Validate(ErrProcessPaymentTimeoutsCommandIsNotConstructed)
}
