package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/likecate/sky-take-out/internal/core/domain/model/order"
)

// paymentTimeoutReason is the system-generated reason recorded on orders the
// reaper cancels for exceeding the payment window.
const paymentTimeoutReason = "payment timeout, auto-cancelled"

// ProcessPaymentTimeoutsCommandHandler force-cancels orders whose payment
// window elapsed. Each candidate's transition runs and persists independently
// through the same validator path as interactive actions, so one failing
// order never blocks the rest of the batch, and an order paid between the
// scan and the write loses the race cleanly via the check-and-set.
type ProcessPaymentTimeoutsCommandHandler struct {
	uowFactory OrderUoWFactory
	window     time.Duration
	logger     *slog.Logger
}

// NewProcessPaymentTimeoutsCommandHandler creates the payment timeout scan
// handler. window is how long an order may sit unpaid before cancellation.
func NewProcessPaymentTimeoutsCommandHandler(
	uowFactory OrderUoWFactory,
	window time.Duration,
	logger *slog.Logger,
) ProcessPaymentTimeoutsCommandHandler {
	return ProcessPaymentTimeoutsCommandHandler{
		uowFactory: uowFactory,
		window:     window,
		logger:     logger.With("component", "payment_timeout_reaper"),
	}
}

// Handle scans once and processes every candidate. A scan with zero matches
// is a no-op. Per-order failures are logged and swallowed.
func (h ProcessPaymentTimeoutsCommandHandler) Handle(ctx context.Context, cmd ProcessPaymentTimeoutsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now()
	repo := h.uowFactory.Create().OrderRepository()

	candidates, err := repo.FindByStatusOlderThan(ctx, order.PendingPayment, now.Add(-h.window))
	if err != nil {
		return err
	}

	for _, o := range candidates {
		if err := transitionSingleTimeout(ctx, h.uowFactory, o, order.ActionPaymentTimeout, paymentTimeoutReason); err != nil {
			h.logger.ErrorContext(ctx, "failed to cancel timed-out order",
				"orderId", o.ID(), "error", err)
			continue
		}
		h.logger.InfoContext(ctx, "order auto-cancelled after payment timeout",
			"orderId", o.ID(), "number", o.Number())
	}

	return nil
}

// transitionSingleTimeout applies one reaper transition in its own unit of
// work so a failure there is isolated from the remaining candidates.
func transitionSingleTimeout(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	o *order.Order,
	action order.Action,
	reason string,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := transitionOrder(ctx, uow.OrderRepository(), o, action, order.RoleSystem, reason, time.Now()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
