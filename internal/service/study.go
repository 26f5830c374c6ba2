// internal/service/study.go
package service

import (
	"errors"
	"log/slog"
	"time"

	"github.com/estudotatico/backend/internal/domain/performance"
	"github.com/estudotatico/backend/internal/domain/progress"
	"github.com/estudotatico/backend/internal/domain/resource"
	"github.com/estudotatico/backend/internal/id"
	"github.com/estudotatico/backend/internal/store"
)

var (
	ErrInvalidStatus = errors.New("invalid status")
	ErrVideoNotFound = errors.New("video not found")
	ErrDraftNotFound = errors.New("draft not found")
)

// StudyService covers per-topic study state: the status map, the question
// ledger, videos and drafts. Question sessions and watched videos emit task
// events.
type StudyService struct {
	taskNotifier

	records *store.Records
	logger  *slog.Logger
}

func NewStudyService(records *store.Records, logger *slog.Logger) *StudyService {
	return &StudyService{records: records, logger: logger}
}

// ============================================================================
// Status
// ============================================================================

func (s *StudyService) Progress(slug string) (progress.Map, error) {
	return s.records.Progress(slug)
}

// ToggleStatus advances a topic one step along the status ring.
func (s *StudyService) ToggleStatus(slug, subject, topic string) (progress.Status, error) {
	prog, err := s.records.Progress(slug)
	if err != nil {
		return "", err
	}
	next := prog.Toggle(subject, topic)
	if err := s.records.SaveProgress(slug, prog); err != nil {
		return "", err
	}
	return next, nil
}

// SetStatus assigns a status directly.
func (s *StudyService) SetStatus(slug, subject, topic string, status progress.Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	prog, err := s.records.Progress(slug)
	if err != nil {
		return err
	}
	prog.Set(subject, topic, status)
	return s.records.SaveProgress(slug, prog)
}

// ============================================================================
// Question ledger
// ============================================================================

// AddQuestionSession appends a session to a topic's history, promotes the
// topic to questions when it was still pending or at summary, and emits a
// questions task event.
func (s *StudyService) AddQuestionSession(slug, subject, topic string, total, correct int) (resource.QuestionSession, error) {
	resources, err := s.records.Resources(slug)
	if err != nil {
		return resource.QuestionSession{}, err
	}

	session, err := resources.AppendSession(subject, topic, total, correct, time.Now())
	if err != nil {
		return resource.QuestionSession{}, err
	}
	if err := s.records.SaveResources(slug, resources); err != nil {
		return resource.QuestionSession{}, err
	}

	prog, err := s.records.Progress(slug)
	if err != nil {
		return resource.QuestionSession{}, err
	}
	if prog.Promote(subject, topic, progress.StatusQuestions, progress.StatusPending, progress.StatusSummary) {
		if err := s.records.SaveProgress(slug, prog); err != nil {
			return resource.QuestionSession{}, err
		}
	}

	s.notify(TaskEvent{Kind: TaskQuestions, Subject: subject, Count: total})
	s.logger.Info("question session logged",
		"slug", slug, "subject", subject, "topic", topic,
		"total", total, "correct", correct,
	)
	return session, nil
}

// ============================================================================
// Stats
// ============================================================================

func (s *StudyService) TopicStats(slug, subject, topic string) (performance.Stats, error) {
	resources, err := s.records.Resources(slug)
	if err != nil {
		return performance.Stats{}, err
	}
	return performance.TopicStats(resources, subject, topic), nil
}

func (s *StudyService) SubjectStats(slug, subject string) (performance.Stats, error) {
	resources, err := s.records.Resources(slug)
	if err != nil {
		return performance.Stats{}, err
	}
	return performance.SubjectStats(resources, subject), nil
}

// Dashboard is the per-exam overview: topic completion plus the performance
// report sorted worst-first.
type Dashboard struct {
	CompletedTopics int                         `json:"completedTopics"`
	TotalTopics     int                         `json:"totalTopics"`
	CompletionPct   int                         `json:"completionPct"`
	Overall         performance.Stats           `json:"overall"`
	Report          []performance.SubjectMetric `json:"report"`
}

func (s *StudyService) ExamDashboard(slug string) (Dashboard, error) {
	exams, err := s.records.Exams()
	if err != nil {
		return Dashboard{}, err
	}
	prog, err := s.records.Progress(slug)
	if err != nil {
		return Dashboard{}, err
	}
	resources, err := s.records.Resources(slug)
	if err != nil {
		return Dashboard{}, err
	}

	var d Dashboard
	for _, e := range exams {
		if e.Slug() != slug {
			continue
		}
		for _, subject := range e.Subjects {
			for _, topic := range subject.Topics {
				d.TotalTopics++
				if prog.StatusOf(subject.Name, topic) == progress.StatusMastered {
					d.CompletedTopics++
				}
			}
		}
	}
	if d.TotalTopics > 0 {
		d.CompletionPct = 100 * d.CompletedTopics / d.TotalTopics
	}
	d.Overall = performance.ExamStats(resources)
	d.Report = performance.Report(resources)
	return d, nil
}

// GlobalReport merges every exam's question history into one worst-first
// per-subject breakdown.
func (s *StudyService) GlobalReport() ([]performance.SubjectMetric, error) {
	exams, err := s.records.Exams()
	if err != nil {
		return nil, err
	}
	maps := make([]resource.Map, 0, len(exams))
	for _, e := range exams {
		resources, err := s.records.Resources(e.Slug())
		if err != nil {
			return nil, err
		}
		maps = append(maps, resources)
	}
	return performance.Report(maps...), nil
}

// ============================================================================
// Videos
// ============================================================================

func (s *StudyService) Resources(slug string) (resource.Map, error) {
	return s.records.Resources(slug)
}

func (s *StudyService) AddVideo(slug, subject, topic, title, url string) (resource.VideoLink, error) {
	resources, err := s.records.Resources(slug)
	if err != nil {
		return resource.VideoLink{}, err
	}
	video := resource.VideoLink{ID: id.GenerateID(), Title: title, URL: url}
	tr := resources.Ensure(subject, topic)
	tr.VideoLinks = append(tr.VideoLinks, video)
	if err := s.records.SaveResources(slug, resources); err != nil {
		return resource.VideoLink{}, err
	}
	return video, nil
}

func (s *StudyService) RenameVideo(slug, subject, topic, videoID, title string) error {
	return s.updateResources(slug, func(resources resource.Map) error {
		tr := resources.Topic(subject, topic)
		if tr == nil {
			return ErrVideoNotFound
		}
		for i := range tr.VideoLinks {
			if tr.VideoLinks[i].ID == videoID {
				tr.VideoLinks[i].Title = title
				return nil
			}
		}
		return ErrVideoNotFound
	})
}

func (s *StudyService) RemoveVideo(slug, subject, topic, videoID string) error {
	return s.updateResources(slug, func(resources resource.Map) error {
		tr := resources.Topic(subject, topic)
		if tr == nil {
			return ErrVideoNotFound
		}
		for i := range tr.VideoLinks {
			if tr.VideoLinks[i].ID == videoID {
				tr.VideoLinks = append(tr.VideoLinks[:i], tr.VideoLinks[i+1:]...)
				return nil
			}
		}
		return ErrVideoNotFound
	})
}

// MarkVideoWatched emits a video task event. Watching is not stored per
// video; it only feeds the daily counter.
func (s *StudyService) MarkVideoWatched() {
	s.notify(TaskEvent{Kind: TaskVideo, Count: 1})
}

// ============================================================================
// Drafts
// ============================================================================

func (s *StudyService) AddDraft(slug, subject, topic, title, content string) (resource.Draft, error) {
	resources, err := s.records.Resources(slug)
	if err != nil {
		return resource.Draft{}, err
	}
	draft := resource.Draft{
		ID:        id.GenerateID(),
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	tr := resources.Ensure(subject, topic)
	tr.Drafts = append(tr.Drafts, draft)
	if err := s.records.SaveResources(slug, resources); err != nil {
		return resource.Draft{}, err
	}
	return draft, nil
}

func (s *StudyService) UpdateDraft(slug, subject, topic, draftID, title, content string) error {
	return s.updateResources(slug, func(resources resource.Map) error {
		tr := resources.Topic(subject, topic)
		if tr == nil {
			return ErrDraftNotFound
		}
		for i := range tr.Drafts {
			if tr.Drafts[i].ID == draftID {
				tr.Drafts[i].Title = title
				tr.Drafts[i].Content = content
				return nil
			}
		}
		return ErrDraftNotFound
	})
}

func (s *StudyService) DeleteDraft(slug, subject, topic, draftID string) error {
	return s.updateResources(slug, func(resources resource.Map) error {
		tr := resources.Topic(subject, topic)
		if tr == nil {
			return ErrDraftNotFound
		}
		for i := range tr.Drafts {
			if tr.Drafts[i].ID == draftID {
				tr.Drafts = append(tr.Drafts[:i], tr.Drafts[i+1:]...)
				return nil
			}
		}
		return ErrDraftNotFound
	})
}

func (s *StudyService) updateResources(slug string, fn func(resource.Map) error) error {
	resources, err := s.records.Resources(slug)
	if err != nil {
		return err
	}
	if err := fn(resources); err != nil {
		return err
	}
	return s.records.SaveResources(slug, resources)
}
