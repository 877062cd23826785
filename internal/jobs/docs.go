// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations that run alongside request handling.
//
// # Available Jobs
//
// 1. BoardMonitorJob - Runs every 30 seconds to sample both claim boards and log their depth
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(placedOrdersHandler, deliveryTasksHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The board monitor uses the cron expression "*/30 * * * * *", so a sample is
// taken twice a minute. Board depth changes slowly enough that a tighter
// schedule would only add query load.
//
// # Error Handling
//
// A failed board sample is logged and the tick is skipped; the job keeps its
// schedule and the next tick samples again.
package jobs
