package commands

import (
	"context"

	"github.com/likecate/sky-take-out/internal/core/domain/model/order"
	"github.com/likecate/sky-take-out/internal/core/ports"
)

// RemindOrderCommandHandler broadcasts a reminder event for an existing order.
// Reminding is idempotent with respect to state: calling it twice produces two
// events and zero transitions.
type RemindOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewRemindOrderCommandHandler creates a handler for customer reminders.
func NewRemindOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) RemindOrderCommandHandler {
	return RemindOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle verifies the order exists and the customer may remind, then
// broadcasts. Nothing is persisted.
func (h RemindOrderCommandHandler) Handle(ctx context.Context, cmd RemindOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	repo := h.uowFactory.Create().OrderRepository()
	o, err := repo.GetByID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	t, err := order.Decide(o.Status(), o.Payment(), order.ActionRemind, order.RoleCustomer)
	if err != nil {
		return err
	}

	if t.HasEffect(order.EffectNotifyReminder) {
		h.notifier.Broadcast(order.ReminderEvent(o))
	}

	return nil
}
