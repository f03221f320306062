package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// ExpiryJobName is the name of the daily proposal expiry job
const ExpiryJobName = "proposal_expiry"

// DefaultExpiryTimeout bounds a single sweep run
const DefaultExpiryTimeout = 5 * time.Minute

// ProposalExpirer defines the lifecycle operations the expiry job needs.
// This interface allows the job to call the service without importing the
// service package directly.
type ProposalExpirer interface {
	// ExpireDue moves every overdue outstanding proposal to expired.
	// Returns the number of proposals expired.
	ExpireDue(ctx context.Context) (int, error)

	// NotifyExpiringSoon sends reminders for outstanding proposals whose
	// expiration date falls within the window. Returns the number notified.
	NotifyExpiringSoon(ctx context.Context, window time.Duration) (int, error)
}

// ExpiryJob expires overdue proposals and reminds owners about proposals
// approaching their expiration date.
type ExpiryJob struct {
	lifecycle ProposalExpirer
	logger    *zap.Logger
	window    time.Duration
	timeout   time.Duration
}

// NewExpiryJob creates a new expiry job. The window controls how far ahead
// the expiring-soon reminder looks.
func NewExpiryJob(lifecycle ProposalExpirer, logger *zap.Logger, window, timeout time.Duration) *ExpiryJob {
	return &ExpiryJob{
		lifecycle: lifecycle,
		logger:    logger,
		window:    window,
		timeout:   timeout,
	}
}

// Run executes the expiry sweep. Called by the scheduler according to the
// configured cron expression.
func (j *ExpiryJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()

	expired, err := j.lifecycle.ExpireDue(ctx)
	if err != nil {
		j.logger.Error("proposal expiry sweep failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		// Reminders still go out even when the sweep fails
	}

	var reminded int
	if j.window > 0 {
		reminded, err = j.lifecycle.NotifyExpiringSoon(ctx, j.window)
		if err != nil {
			j.logger.Error("expiring-soon reminders failed",
				zap.Error(err),
				zap.Duration("duration", time.Since(start)))
		}
	}

	j.logger.Info("proposal expiry job completed",
		zap.Int("expired", expired),
		zap.Int("reminded", reminded),
		zap.Duration("duration", time.Since(start)))
}

// RegisterExpiryJob registers the expiry job with the scheduler.
// expiringSoonDays of zero disables the reminder half of the job.
func RegisterExpiryJob(scheduler *Scheduler, lifecycle ProposalExpirer, logger *zap.Logger, cronExpr string, expiringSoonDays int) error {
	window := time.Duration(expiringSoonDays) * 24 * time.Hour
	job := NewExpiryJob(lifecycle, logger, window, DefaultExpiryTimeout)
	return scheduler.AddJob(ExpiryJobName, cronExpr, job.Run)
}
