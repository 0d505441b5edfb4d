package commands

import (
	"context"
	"time"

	"github.com/likecate/sky-take-out/internal/core/domain/model/order"
	"github.com/likecate/sky-take-out/internal/core/ports"
)

// PayOrderCommandHandler moves an order from PendingPayment to ToBeConfirmed,
// records the checkout time and announces the new order to connected merchant
// dashboards. The broadcast happens after the commit and never affects the
// transition's outcome.
type PayOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewPayOrderCommandHandler creates a handler for payment confirmations.
func NewPayOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the payment confirmation. A reaper cancellation racing this
// call loses or wins atomically: the check-and-set inside transitionOrder lets
// exactly one of them through.
func (h PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) error {
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
	o, err := repo.GetByNumber(ctx, cmd.OrderNumber())
	if err != nil {
		return err
	}

	t, err := transitionOrder(ctx, repo, o, order.ActionPay, order.RoleCustomer, "", time.Now())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if t.HasEffect(order.EffectNotifyNewOrder) {
		h.notifier.Broadcast(order.NewOrderEvent(o))
	}

	return nil
}
