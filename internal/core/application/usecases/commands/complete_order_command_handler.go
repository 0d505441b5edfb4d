package commands

import (
	"context"
	"time"

	"github.com/likecate/sky-take-out/internal/core/domain/model/order"
)

// CompleteOrderCommandHandler handles the merchant finishing a delivery.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{uowFactory: uowFactory}
}

// Handle moves the order from DeliveryInProgress to Completed and records the
// delivery time.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	repo := uow.OrderRepository()
	o, err := repo.GetByID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if _, err = transitionOrder(ctx, repo, o, order.ActionComplete, order.RoleMerchant, "", time.Now()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
