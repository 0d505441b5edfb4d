package commands

import (
	"context"
	"time"

	"github.com/likecate/sky-take-out/internal/core/domain/model/order"
)

// UserCancelOrderCommandHandler handles customer-initiated cancellation. A
// paid order leaving ToBeConfirmed is marked refunded before cancelling; any
// order already past ToBeConfirmed is rejected unconditionally.
type UserCancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUserCancelOrderCommandHandler creates a handler for customer cancellation.
func NewUserCancelOrderCommandHandler(uowFactory OrderUoWFactory) UserCancelOrderCommandHandler {
	return UserCancelOrderCommandHandler{uowFactory: uowFactory}
}

// Handle moves the order to Cancelled with the standard user-cancel reason.
func (h UserCancelOrderCommandHandler) Handle(ctx context.Context, cmd UserCancelOrderCommand) error {
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

	if _, err = transitionOrder(ctx, repo, o, order.ActionUserCancel, order.RoleCustomer, userCancelReason, time.Now()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
