package commands

import (
	"context"
	"time"

	"github.com/likecate/sky-take-out/internal/core/domain/model/order"
)

// AdminCancelOrderCommandHandler handles merchant-side cancellation.
type AdminCancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdminCancelOrderCommandHandler creates a handler for merchant cancellation.
func NewAdminCancelOrderCommandHandler(uowFactory OrderUoWFactory) AdminCancelOrderCommandHandler {
	return AdminCancelOrderCommandHandler{uowFactory: uowFactory}
}

// Handle moves the order to Cancelled, recording the merchant's reason and
// refunding when the order was paid.
func (h AdminCancelOrderCommandHandler) Handle(ctx context.Context, cmd AdminCancelOrderCommand) error {
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

	if _, err = transitionOrder(ctx, repo, o, order.ActionAdminCancel, order.RoleMerchant, cmd.Reason(), time.Now()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
