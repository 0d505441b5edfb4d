package jobs

import (
	"fmt"
	"log/slog"

	"github.com/likecate/sky-take-out/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	paymentTimeoutJob  *PaymentTimeoutJob
	deliveryTimeoutJob *DeliveryTimeoutJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	paymentTimeoutHandler commands.ProcessPaymentTimeoutsCommandHandler,
	deliveryTimeoutHandler commands.ProcessDeliveryTimeoutsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		paymentTimeoutJob:  NewPaymentTimeoutJob(paymentTimeoutHandler, logger),
		deliveryTimeoutJob: NewDeliveryTimeoutJob(deliveryTimeoutHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.paymentTimeoutJob.Start(); err != nil {
		return fmt.Errorf("failed to start payment timeout job: %w", err)
	}

	if err := jm.deliveryTimeoutJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.paymentTimeoutJob.Stop()
		return fmt.Errorf("failed to start delivery timeout job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.deliveryTimeoutJob.Stop()
	jm.paymentTimeoutJob.Stop()
}
