// Package scheduler drives the periodic dashboard refresh. The original
// portal re-ran the load→aggregate pipeline on a 30 second UI timer; here a
// cron entry keeps the cached snapshot warm instead.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/agriverse/warehouse/internal/config"
	"github.com/agriverse/warehouse/internal/service/dashboard"
)

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron         *cron.Cron
	dashboardSvc *dashboard.Service
	schedule     string
	logger       *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.DemoConfig, dashboardSvc *dashboard.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:         cron.New(),
		dashboardSvc: dashboardSvc,
		schedule:     cfg.RefreshSchedule,
		logger:       logger,
	}
}

// Start registers the refresh job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.schedule))

	if _, err := s.cron.AddFunc(s.schedule, s.refreshDashboard); err != nil {
		s.logger.Error("failed to schedule dashboard refresh", zap.Error(err))
		return
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) refreshDashboard() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := s.dashboardSvc.Refresh(ctx); err != nil {
		s.logger.Error("dashboard refresh failed", zap.Error(err))
	}
}
