package commands

import (
	"context"
	"time"

	"github.com/likecate/sky-take-out/internal/core/domain/model/order"
	"github.com/likecate/sky-take-out/internal/core/ports"
)

// transitionOrder runs the shared read-decide-apply-persist sequence for a
// loaded order. The persist is a check-and-set against the status the order
// had when read, so a concurrent transition on the same order makes exactly
// one caller win; the loser gets order.ErrStatusConflict.
func transitionOrder(
	ctx context.Context,
	repo ports.OrderRepository,
	o *order.Order,
	action order.Action,
	role order.Role,
	reason string,
	now time.Time,
) (order.Transition, error) {
	expected := o.Status()

	t, err := order.Decide(o.Status(), o.Payment(), action, role)
	if err != nil {
		return order.Transition{}, err
	}

	if err = o.Apply(t, reason, now); err != nil {
		return order.Transition{}, err
	}

	if err = repo.UpdateIfStatus(ctx, o, expected); err != nil {
		return order.Transition{}, err
	}

	return t, nil
}
