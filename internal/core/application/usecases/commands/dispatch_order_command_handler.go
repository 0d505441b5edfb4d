package commands

import (
	"context"
	"time"

	"github.com/likecate/sky-take-out/internal/core/domain/model/order"
)

// DispatchOrderCommandHandler handles the merchant dispatching a confirmed
// order for delivery.
type DispatchOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDispatchOrderCommandHandler creates a handler for order dispatch.
func NewDispatchOrderCommandHandler(uowFactory OrderUoWFactory) DispatchOrderCommandHandler {
	return DispatchOrderCommandHandler{uowFactory: uowFactory}
}

// Handle moves the order from Confirmed to DeliveryInProgress.
func (h DispatchOrderCommandHandler) Handle(ctx context.Context, cmd DispatchOrderCommand) error {
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

	if _, err = transitionOrder(ctx, repo, o, order.ActionDispatch, order.RoleMerchant, "", time.Now()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
