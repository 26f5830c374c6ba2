package scheduler

import (
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/estudotatico/backend/internal/service"
)

// Scheduler runs the recurring background jobs: the midnight daily-task
// rollover and the morning revision-radar reminder.
type Scheduler struct {
	scheduler *gocron.Scheduler
	daily     *service.DailyService
	revision  *service.RevisionService
	logger    *slog.Logger
}

// New creates a scheduler in the local timezone; the daily rollover is tied
// to the user's calendar day, not UTC.
func New(daily *service.DailyService, revision *service.RevisionService, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.Local),
		daily:     daily,
		revision:  revision,
		logger:    logger,
	}
}

// Start begins running all scheduled tasks without blocking.
func (s *Scheduler) Start() {
	s.scheduler.Every(1).Day().At("00:00").Do(s.rollOver)
	s.scheduler.Every(1).Day().At("07:00").Do(s.radarReminder)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) rollOver() {
	if err := s.daily.RollOver(); err != nil {
		s.logger.Error("midnight rollover failed", "error", err)
		return
	}
	s.logger.Info("daily tasks rolled over")
}

// radarReminder logs how many topics are due for revision. The log line is
// the reminder; there is no push channel.
func (s *Scheduler) radarReminder() {
	queue, err := s.revision.Queue()
	if err != nil {
		s.logger.Error("revision radar check failed", "error", err)
		return
	}
	if len(queue) == 0 {
		s.logger.Info("revision radar clear")
		return
	}
	s.logger.Info("revisions due", "count", len(queue),
		"most_overdue", queue[0].Topic, "subject", queue[0].Subject)
}
