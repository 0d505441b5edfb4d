// Package jobs provides the scheduled background tasks of the order
// lifecycle engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to run the two timeout scans.
//
// # Available Jobs
//
// 1. PaymentTimeoutJob - Runs at the top of every minute to cancel orders
// left unpaid past the payment window.
// 2. DeliveryTimeoutJob - Runs daily at 01:00 to force-complete orders stuck
// in delivery past the delivery window.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(paymentTimeoutHandler, deliveryTimeoutHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Scan-level failures are logged by the jobs; per-order failures inside a
// scan are handled by the command handlers, which skip the failing order and
// continue with the rest.
package jobs
