package jobs

import (
	"context"
	"log/slog"

	"github.com/likecate/sky-take-out/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeliveryTimeoutJob schedules the delivery timeout scan. Runs once per day,
// during the quiet hour, to close out orders stuck in delivery.
type DeliveryTimeoutJob struct {
	handler commands.ProcessDeliveryTimeoutsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryTimeoutJob creates the job for completing overdue deliveries.
func NewDeliveryTimeoutJob(handler commands.ProcessDeliveryTimeoutsCommandHandler, logger *slog.Logger) *DeliveryTimeoutJob {
	return &DeliveryTimeoutJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_timeout_job"),
	}
}

// Start begins the delivery timeout scan at 01:00 every day.
func (j *DeliveryTimeoutJob) Start() error {
	_, err := j.cron.AddFunc("0 0 1 * * *", func() {
		ctx := context.Background()
		cmd := commands.NewProcessDeliveryTimeoutsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Delivery timeout scan failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery timeout job started (running daily at 01:00)")
	return nil
}

// Stop stops the delivery timeout job.
func (j *DeliveryTimeoutJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery timeout job stopped")
}
