package commands

import (
	"errors"

	"github.com/likecate/sky-take-out/internal/core/domain/model/kernel"
	"github.com/likecate/sky-take-out/internal/pkg/guard"
)

var (
	ErrSubmitOrderCommandIsNotConstructed = errors.New(
		"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
	)
)

// SubmitOrderCommand represents a customer's request to place an order from
// the current contents of their shopping cart, delivered to one of their
// registered addresses.
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	addressID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a submission command. Both identifiers must be
// constructed UUIDs.
func NewSubmitOrderCommand(customerID, addressID kernel.UUID) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setAddressID(addressID),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// CustomerID returns the submitting customer's identifier.
func (c SubmitOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// AddressID returns the chosen address book entry.
func (c SubmitOrderCommand) AddressID() kernel.UUID {
	return c.addressID
}

func (c *SubmitOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *SubmitOrderCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}

	c.addressID = addressID
	return nil
}
