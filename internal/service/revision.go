// internal/service/revision.go
package service

import (
	"errors"
	"log/slog"
	"time"

	"github.com/estudotatico/backend/internal/domain/progress"
	"github.com/estudotatico/backend/internal/domain/revision"
	"github.com/estudotatico/backend/internal/store"
)

// CompletionMode selects how a due revision was worked through.
type CompletionMode string

const (
	// CompleteWithQuestions logs a question batch for the topic.
	CompleteWithQuestions CompletionMode = "questions"
	// CompleteWithSummary re-reads the stored material, no questions logged.
	CompleteWithSummary CompletionMode = "summary"
)

var (
	ErrUnknownMode     = errors.New("unknown completion mode")
	ErrNoStudyMaterial = errors.New("topic has no summary or full material to review")
	ErrTopicNotTracked = errors.New("topic has no stored resources")
)

// RevisionService runs the spaced-repetition radar: listing due topics
// across every exam and advancing the ladder when one is completed.
type RevisionService struct {
	taskNotifier

	records *store.Records
	logger  *slog.Logger
}

func NewRevisionService(records *store.Records, logger *slog.Logger) *RevisionService {
	return &RevisionService{records: records, logger: logger}
}

// Queue lists every due topic across all exams, most overdue first.
func (s *RevisionService) Queue() ([]revision.Item, error) {
	exams, err := s.records.Exams()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var queue []revision.Item
	for _, e := range exams {
		resources, err := s.records.Resources(e.Slug())
		if err != nil {
			return nil, err
		}
		queue = revision.Collect(queue, e.Info.Name, e.Slug(), resources, now)
	}
	revision.Sort(queue)
	return queue, nil
}

// Complete marks a due revision as done and schedules the next one.
//
// In questions mode the batch result is appended to the topic's history,
// which also feeds statistics and the daily counters. In summary mode the
// topic must have stored material to re-read.
func (s *RevisionService) Complete(slug, subject, topic string, mode CompletionMode, total, correct int) (revision.Outcome, error) {
	resources, err := s.records.Resources(slug)
	if err != nil {
		return revision.Outcome{}, err
	}
	tr := resources.Topic(subject, topic)
	if tr == nil {
		return revision.Outcome{}, ErrTopicNotTracked
	}

	now := time.Now()
	switch mode {
	case CompleteWithQuestions:
		if _, err := resources.AppendSession(subject, topic, total, correct, now); err != nil {
			return revision.Outcome{}, err
		}
	case CompleteWithSummary:
		if !tr.HasStudyMaterial() {
			return revision.Outcome{}, ErrNoStudyMaterial
		}
	default:
		return revision.Outcome{}, ErrUnknownMode
	}

	out := revision.Apply(tr, now)
	if err := s.records.SaveResources(slug, resources); err != nil {
		return revision.Outcome{}, err
	}

	if mode == CompleteWithQuestions {
		prog, err := s.records.Progress(slug)
		if err != nil {
			return revision.Outcome{}, err
		}
		if prog.Promote(subject, topic, progress.StatusQuestions, progress.StatusPending, progress.StatusSummary) {
			if err := s.records.SaveProgress(slug, prog); err != nil {
				return revision.Outcome{}, err
			}
		}
		s.notify(TaskEvent{Kind: TaskQuestions, Subject: subject, Count: total})
	}

	s.logger.Info("revision completed",
		"slug", slug, "subject", subject, "topic", topic,
		"mode", mode, "next_phase", out.Phase, "next_due", out.NextDue,
	)
	return out, nil
}
