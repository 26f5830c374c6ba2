// internal/service/exams.go
package service

import (
	"errors"
	"log/slog"

	"github.com/estudotatico/backend/internal/domain/exam"
	"github.com/estudotatico/backend/internal/store"
)

var ErrExamNotFound = errors.New("exam not found")
var ErrExamExists = errors.New("exam already exists")

// ExamService manages the exam catalogue. Exams are stored as one document;
// deleting an exam cascades to every per-slug document.
type ExamService struct {
	records *store.Records
	logger  *slog.Logger
}

func NewExamService(records *store.Records, logger *slog.Logger) *ExamService {
	return &ExamService{records: records, logger: logger}
}

func (s *ExamService) List() ([]*exam.Exam, error) {
	return s.records.Exams()
}

func (s *ExamService) Get(slug string) (*exam.Exam, error) {
	exams, err := s.records.Exams()
	if err != nil {
		return nil, err
	}
	for _, e := range exams {
		if e.Slug() == slug {
			return e, nil
		}
	}
	return nil, ErrExamNotFound
}

func (s *ExamService) Create(info exam.Info, subjects []exam.Subject) (*exam.Exam, error) {
	e, err := exam.New(info)
	if err != nil {
		return nil, err
	}
	for _, sub := range subjects {
		if err := e.AddSubject(sub.Name); err != nil {
			return nil, err
		}
		for _, topic := range sub.Topics {
			if err := e.AddTopic(sub.Name, topic); err != nil {
				return nil, err
			}
		}
	}

	exams, err := s.records.Exams()
	if err != nil {
		return nil, err
	}
	for _, existing := range exams {
		if existing.Slug() == e.Slug() {
			return nil, ErrExamExists
		}
	}

	exams = append(exams, e)
	if err := s.records.SaveExams(exams); err != nil {
		return nil, err
	}

	s.logger.Info("exam created", "slug", e.Slug(), "subjects", len(e.Subjects))
	return e, nil
}

// Delete removes an exam and every document stored under its slug.
func (s *ExamService) Delete(slug string) error {
	exams, err := s.records.Exams()
	if err != nil {
		return err
	}

	idx := -1
	for i, e := range exams {
		if e.Slug() == slug {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrExamNotFound
	}

	exams = append(exams[:idx], exams[idx+1:]...)
	if err := s.records.SaveExams(exams); err != nil {
		return err
	}
	if err := s.records.DeleteExamData(slug); err != nil {
		return err
	}

	s.logger.Info("exam deleted", "slug", slug)
	return nil
}

// update loads the exam list, applies fn to the matching exam and saves.
func (s *ExamService) update(slug string, fn func(*exam.Exam) error) (*exam.Exam, error) {
	exams, err := s.records.Exams()
	if err != nil {
		return nil, err
	}
	for _, e := range exams {
		if e.Slug() == slug {
			if err := fn(e); err != nil {
				return nil, err
			}
			if err := s.records.SaveExams(exams); err != nil {
				return nil, err
			}
			return e, nil
		}
	}
	return nil, ErrExamNotFound
}

func (s *ExamService) AddSubject(slug, subject string) (*exam.Exam, error) {
	return s.update(slug, func(e *exam.Exam) error {
		return e.AddSubject(subject)
	})
}

func (s *ExamService) RemoveSubject(slug, subject string) (*exam.Exam, error) {
	return s.update(slug, func(e *exam.Exam) error {
		return e.RemoveSubject(subject)
	})
}

func (s *ExamService) AddTopic(slug, subject, topic string) (*exam.Exam, error) {
	return s.update(slug, func(e *exam.Exam) error {
		return e.AddTopic(subject, topic)
	})
}

func (s *ExamService) RemoveTopic(slug, subject, topic string) (*exam.Exam, error) {
	return s.update(slug, func(e *exam.Exam) error {
		return e.RemoveTopic(subject, topic)
	})
}
