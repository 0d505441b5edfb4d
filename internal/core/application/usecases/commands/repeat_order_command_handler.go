package commands

import (
	"context"

	"github.com/likecate/sky-take-out/internal/core/domain/model/customer"
	"github.com/likecate/sky-take-out/internal/core/domain/model/kernel"
)

// RepeatOrderCommandHandler copies a past order's snapshotted details back
// into the customer's cart so they can submit the same order again.
type RepeatOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewRepeatOrderCommandHandler creates a handler for repeat orders.
func NewRepeatOrderCommandHandler(uowFactory UoWFactory) RepeatOrderCommandHandler {
	return RepeatOrderCommandHandler{uowFactory: uowFactory}
}

// Handle loads the order's details and inserts equivalent cart lines in one
// transaction.
func (h RepeatOrderCommandHandler) Handle(ctx context.Context, cmd RepeatOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	details, err := uow.OrderRepository().GetDetails(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	lines := make([]customer.CartLine, 0, len(details))
	for _, detail := range details {
		lines = append(lines, customer.CartLine{
			ID:         kernel.NewUUID(),
			CustomerID: cmd.CustomerID(),
			ItemID:     detail.ItemID(),
			Name:       detail.Name(),
			Image:      detail.Image(),
			Quantity:   detail.Quantity(),
			UnitPrice:  detail.UnitPrice(),
		})
	}

	if err = uow.Cart().AddItems(ctx, lines); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
