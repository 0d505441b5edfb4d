package commands

import (
	"errors"

	"github.com/likecate/sky-take-out/internal/pkg/guard"
)

var ErrProcessDeliveryTimeoutsCommandIsNotConstructed = errors.New(
	"ProcessDeliveryTimeoutsCommand must be created via NewProcessDeliveryTimeoutsCommand constructor",
)

// ProcessDeliveryTimeoutsCommand triggers one reaper scan over orders stuck
// in DeliveryInProgress past the delivery window.
type ProcessDeliveryTimeoutsCommand struct {
	guard guard.ConstructorGuard
}

// NewProcessDeliveryTimeoutsCommand creates a delivery timeout scan command.
func NewProcessDeliveryTimeoutsCommand() ProcessDeliveryTimeoutsCommand {
	return ProcessDeliveryTimeoutsCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c ProcessDeliveryTimeoutsCommand) Validate() error {
	return c.guard.Validate(ErrProcessDeliveryTimeoutsCommandIsNotConstructed)
}
