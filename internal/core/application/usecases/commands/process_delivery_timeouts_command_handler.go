package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/likecate/sky-take-out/internal/core/domain/model/order"
)

// ProcessDeliveryTimeoutsCommandHandler force-completes orders that sat in
// DeliveryInProgress past the delivery window. Delivery is assumed successful
// after too long in transit; this is the established policy, not a refund
// path. Candidates are processed independently like the payment scan.
type ProcessDeliveryTimeoutsCommandHandler struct {
	uowFactory OrderUoWFactory
	window     time.Duration
	logger     *slog.Logger
}

// NewProcessDeliveryTimeoutsCommandHandler creates the delivery timeout scan
// handler. window is how long an order may stay in delivery before being
// assumed complete.
func NewProcessDeliveryTimeoutsCommandHandler(
	uowFactory OrderUoWFactory,
	window time.Duration,
	logger *slog.Logger,
) ProcessDeliveryTimeoutsCommandHandler {
	return ProcessDeliveryTimeoutsCommandHandler{
		uowFactory: uowFactory,
		window:     window,
		logger:     logger.With("component", "delivery_timeout_reaper"),
	}
}

// Handle scans once and processes every candidate. A scan with zero matches
// is a no-op. Per-order failures are logged and swallowed.
func (h ProcessDeliveryTimeoutsCommandHandler) Handle(ctx context.Context, cmd ProcessDeliveryTimeoutsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now()
	repo := h.uowFactory.Create().OrderRepository()

	candidates, err := repo.FindByStatusOlderThan(ctx, order.DeliveryInProgress, now.Add(-h.window))
	if err != nil {
		return err
	}

	for _, o := range candidates {
		if err := transitionSingleTimeout(ctx, h.uowFactory, o, order.ActionDeliveryTimeout, ""); err != nil {
			h.logger.ErrorContext(ctx, "failed to complete overdue delivery",
				"orderId", o.ID(), "error", err)
			continue
		}
		h.logger.InfoContext(ctx, "order assumed delivered after delivery timeout",
			"orderId", o.ID(), "number", o.Number())
	}

	return nil
}
