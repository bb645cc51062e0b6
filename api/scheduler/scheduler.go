package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/bantaydagat/bantay-dagat-api/lifecycle"
)

// auditTimeout bounds one audit run, it lists all four partitions
const auditTimeout = 5 * time.Minute

// Scheduler runs the periodic partition audit
type Scheduler struct {
	cron     *cron.Cron
	Reports  lifecycle.ReportStore
	Schedule string
}

// NewScheduler creates a new scheduler instance
func NewScheduler(reports lifecycle.ReportStore, schedule string) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(time.UTC)),
		Reports:  reports,
		Schedule: schedule,
	}
}

// Start registers the audit job and begins the scheduler
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.Schedule, s.auditPartitions)
	if err != nil {
		zap.S().Errorw("failed to register partition audit job", "schedule", s.Schedule, "error", err)
		return err
	}

	s.cron.Start()
	zap.S().Infow("partition audit scheduler started", "schedule", s.Schedule)
	return nil
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("partition audit scheduler stopped")
}

// auditPartitions logs every report held by more than one partition
func (s *Scheduler) auditPartitions() {
	ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
	defer cancel()

	dups, err := lifecycle.FindDuplicates(ctx, s.Reports)
	if err != nil {
		zap.S().Errorw("partition audit failed", "error", err)
		return
	}
	zap.S().Infow("partition audit finished", "duplicates", len(dups))
}
