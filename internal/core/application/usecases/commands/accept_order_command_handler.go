package commands

import (
	"context"
	"time"

	"github.com/likecate/sky-take-out/internal/core/domain/model/order"
)

// AcceptOrderCommandHandler handles the merchant accepting an order.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(uowFactory OrderUoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{uowFactory: uowFactory}
}

// Handle moves the order from ToBeConfirmed to Confirmed.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	if _, err = transitionOrder(ctx, repo, o, order.ActionAccept, order.RoleMerchant, "", time.Now()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
