package jobs

import (
	"context"
	"log/slog"

	"github.com/likecate/sky-take-out/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PaymentTimeoutJob schedules the payment timeout scan. Runs every minute to
// cancel orders left unpaid past the payment window.
type PaymentTimeoutJob struct {
	handler commands.ProcessPaymentTimeoutsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPaymentTimeoutJob creates the job for cancelling unpaid orders.
func NewPaymentTimeoutJob(handler commands.ProcessPaymentTimeoutsCommandHandler, logger *slog.Logger) *PaymentTimeoutJob {
	return &PaymentTimeoutJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "payment_timeout_job"),
	}
}

// Start begins the payment timeout scan at the top of every minute.
func (j *PaymentTimeoutJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewProcessPaymentTimeoutsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Payment timeout scan failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment timeout job started (running every minute)")
	return nil
}

// Stop stops the payment timeout job.
func (j *PaymentTimeoutJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment timeout job stopped")
}
