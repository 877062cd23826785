package jobs

import (
	"fmt"
	"log/slog"

	"orderflow/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	boardMonitorJob *BoardMonitorJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	placedOrdersHandler queries.GetPlacedOrdersQueryHandler,
	deliveryTasksHandler queries.GetDeliveryTasksQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		boardMonitorJob: NewBoardMonitorJob(placedOrdersHandler, deliveryTasksHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.boardMonitorJob.Start(); err != nil {
		return fmt.Errorf("failed to start board monitor job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.boardMonitorJob.Stop()
}
