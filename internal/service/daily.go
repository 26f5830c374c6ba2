// internal/service/daily.go
package service

import (
	"log/slog"
	"sync"
	"time"

	"github.com/estudotatico/backend/internal/domain/dailytask"
	"github.com/estudotatico/backend/internal/store"
)

// DailyService tracks the day's study counters. It is registered as a task
// listener on the services that emit events; counters roll over lazily on
// first access of a new day and eagerly from the midnight job.
type DailyService struct {
	records *store.Records
	logger  *slog.Logger

	mu sync.Mutex
}

func NewDailyService(records *store.Records, logger *slog.Logger) *DailyService {
	return &DailyService{records: records, logger: logger}
}

// Today returns the current counters, resetting them first when the stored
// record belongs to an earlier day.
func (s *DailyService) Today() (dailytask.Metrics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.today()
}

func (s *DailyService) today() (dailytask.Metrics, error) {
	m, err := s.records.DailyTasks()
	if err != nil {
		return dailytask.Metrics{}, err
	}
	rolled, reset := dailytask.Rollover(m, time.Now())
	if reset {
		if err := s.records.SaveDailyTasks(rolled); err != nil {
			return dailytask.Metrics{}, err
		}
		s.logger.Info("daily tasks reset", "date", rolled.Date)
	}
	return rolled, nil
}

// Targets returns the fixed daily goals.
func (s *DailyService) Targets() dailytask.Targets {
	return dailytask.DefaultTargets()
}

// HandleTask is the TaskListener fed by the study, revision and deck
// services. Counter errors are logged, not propagated; losing a tick must
// not fail the activity that produced it.
func (s *DailyService) HandleTask(e TaskEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.today()
	if err != nil {
		s.logger.Error("daily counter load failed", "kind", e.Kind, "error", err)
		return
	}

	switch e.Kind {
	case TaskQuestions:
		m.AddQuestions(e.Subject, e.Count)
	case TaskFlash:
		m.AddFlash(e.Count)
	case TaskVideo:
		m.MarkVideoWatched()
	}

	if err := s.records.SaveDailyTasks(m); err != nil {
		s.logger.Error("daily counter save failed", "kind", e.Kind, "error", err)
	}
}

// RollOver forces the midnight reset. Called by the scheduler.
func (s *DailyService) RollOver() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.today()
	return err
}
