package jobs

import (
	"context"
	"time"

	"alumni-jobboard-backend/internal/config"
	"alumni-jobboard-backend/internal/logger"
	"alumni-jobboard-backend/internal/repository"
	"alumni-jobboard-backend/internal/service"
)

const jobTimeout = 5 * time.Minute

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	profileRepo repository.VerificationRepository
	roleRepo    repository.RoleRepository
	notifier    service.NotificationService
	config      *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(
	profileRepo repository.VerificationRepository,
	roleRepo repository.RoleRepository,
	notifier service.NotificationService,
	cfg *config.Config,
) *JobRunner {
	return &JobRunner{
		profileRepo: profileRepo,
		roleRepo:    roleRepo,
		notifier:    notifier,
		config:      cfg,
	}
}

func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery and a deadline
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func(ctx context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	start := time.Now()
	logger.Info("Starting job", "job", jobName)
	if err := jobFunc(ctx); err != nil {
		logger.Error("Job failed", "job", jobName, "error", err, "duration_ms", time.Since(start).Milliseconds())
		return
	}
	logger.Info("Job completed", "job", jobName, "duration_ms", time.Since(start).Milliseconds())
}

// RunAll runs every job once (for manual execution)
func (jr *JobRunner) RunAll() {
	jr.RemindPendingVerifications()
}
