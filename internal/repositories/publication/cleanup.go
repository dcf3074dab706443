package publication

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/orgball2608/insta-tweet-relay/pkg/logger"
)

// CleanupJob deletes history older than the retention window once a day.
type CleanupJob struct {
	repo      Repository
	retention time.Duration
	logger    logger.Logger
	scheduler gocron.Scheduler
}

func NewCleanupJob(repo Repository, retention time.Duration, log logger.Logger) *CleanupJob {
	return &CleanupJob{
		repo:      repo,
		retention: retention,
		logger:    log.WithComponent("PublicationCleanup"),
	}
}

// Start schedules the job at 3:00 AM UTC every day.
func (j *CleanupJob) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return fmt.Errorf("failed to create cleanup scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(gocron.NewAtTime(3, 0, 0)),
		),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				return
			}
			j.Run(ctx)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule cleanup job: %w", err)
	}

	j.scheduler = scheduler
	scheduler.Start()

	j.logger.Info("Publication cleanup scheduled", "retention", j.retention)
	return nil
}

// Run performs one cleanup pass.
func (j *CleanupJob) Run(ctx context.Context) {
	cleanupCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	deleted, err := j.repo.CleanupOldRecords(cleanupCtx, j.retention)
	if err != nil {
		j.logger.Error("Failed to clean up publication history", "error", err)
		return
	}

	j.logger.Info("Publication history cleanup completed", "deleted", deleted)
}

func (j *CleanupJob) Stop() error {
	if j.scheduler == nil {
		return nil
	}
	return j.scheduler.Shutdown()
}
