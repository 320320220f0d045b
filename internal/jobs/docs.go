// Package jobs provides scheduled background tasks for the rental system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the rental service.
//
// # Available Jobs
//
// 1. LateReturnJob - Runs every minute to detect rentals past their expected
// ending date, logging each one and publishing a rent.overdue event.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(uowFactory, publisher, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Query and publish failures are logged and retried on the next tick; a
// rental is marked as notified only after its event reaches the broker.
package jobs
