package jobs

import (
	"context"
	"log/slog"

	"orderflow/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// BoardMonitorJob periodically samples both claim boards and logs their
// depth. A growing vendor board means orders are not being accepted; a
// growing delivery board means accepted orders are not being picked up.
type BoardMonitorJob struct {
	placedOrders  queries.GetPlacedOrdersQueryHandler
	deliveryTasks queries.GetDeliveryTasksQueryHandler
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewBoardMonitorJob creates a job that reports board depth every 30 seconds.
func NewBoardMonitorJob(
	placedOrders queries.GetPlacedOrdersQueryHandler,
	deliveryTasks queries.GetDeliveryTasksQueryHandler,
	logger *slog.Logger,
) *BoardMonitorJob {
	return &BoardMonitorJob{
		placedOrders:  placedOrders,
		deliveryTasks: deliveryTasks,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "board_monitor_job"),
	}
}

// Start begins the board monitor job.
func (j *BoardMonitorJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		board, err := j.placedOrders.Handle(ctx, queries.NewGetPlacedOrdersQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Vendor board sample failed", "error", err)
			return
		}

		tasks, err := j.deliveryTasks.Handle(ctx, queries.NewGetDeliveryTasksQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Delivery board sample failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Board depth",
			"awaiting_acceptance", len(board),
			"delivery_tasks", len(tasks),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Board monitor job started (running every 30 seconds)")
	return nil
}

// Stop stops the board monitor job.
func (j *BoardMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Board monitor job stopped")
}
