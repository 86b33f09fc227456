package jobs

import (
	"context"
	"log/slog"
	"time"

	"bytebowl/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// SessionCleanupJob evicts conversation sessions that have been idle for
// longer than the configured TTL. Runs once a minute.
type SessionCleanupJob struct {
	sessions ports.SessionStore
	ttl      time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionCleanupJob creates a new job sweeping the session store.
func NewSessionCleanupJob(sessions ports.SessionStore, ttl time.Duration, logger *slog.Logger) *SessionCleanupJob {
	return &SessionCleanupJob{
		sessions: sessions,
		ttl:      ttl,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "session_cleanup_job"),
	}
}

// Start begins the session cleanup job to run every minute.
func (j *SessionCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		evicted := j.sessions.EvictIdle(j.ttl)
		if evicted > 0 {
			j.logger.InfoContext(ctx, "Evicted idle sessions",
				"evicted", evicted, "remaining", j.sessions.Len())
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session cleanup job started (running every minute)",
		"ttl", j.ttl.String())
	return nil
}

// Stop stops the session cleanup job.
func (j *SessionCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session cleanup job stopped")
}
