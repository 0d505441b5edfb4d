package commands

import (
	"context"
	"time"

	"github.com/likecate/sky-take-out/internal/core/domain/model/order"
)

// RejectOrderCommandHandler handles the merchant rejecting an order awaiting
// confirmation. Rejection cancels the order and refunds the payment.
type RejectOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRejectOrderCommandHandler creates a handler for order rejection.
func NewRejectOrderCommandHandler(uowFactory OrderUoWFactory) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{uowFactory: uowFactory}
}

// Handle moves the order from ToBeConfirmed to Cancelled, recording the
// rejection reason and the cancel time.
func (h RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
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

	if _, err = transitionOrder(ctx, repo, o, order.ActionReject, order.RoleMerchant, cmd.Reason(), time.Now()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
