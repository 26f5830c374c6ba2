// internal/service/mocks.go
package service

import (
	"errors"
	"log/slog"
	"time"

	"github.com/estudotatico/backend/internal/domain/mockexam"
	"github.com/estudotatico/backend/internal/store"
)

var ErrMockNotFound = errors.New("mock exam not found")

// MockService stores full practice sittings per exam.
type MockService struct {
	records *store.Records
	logger  *slog.Logger
}

func NewMockService(records *store.Records, logger *slog.Logger) *MockService {
	return &MockService{records: records, logger: logger}
}

func (s *MockService) List(slug string) ([]*mockexam.MockExam, error) {
	return s.records.Mocks(slug)
}

func (s *MockService) Create(slug, name string, results []mockexam.SubjectResult) (*mockexam.MockExam, error) {
	m, err := mockexam.New(name, results, time.Now())
	if err != nil {
		return nil, err
	}
	mocks, err := s.records.Mocks(slug)
	if err != nil {
		return nil, err
	}
	mocks = append(mocks, m)
	if err := s.records.SaveMocks(slug, mocks); err != nil {
		return nil, err
	}
	s.logger.Info("mock exam recorded", "slug", slug, "name", name, "accuracy", m.Accuracy())
	return m, nil
}

func (s *MockService) Delete(slug, mockID string) error {
	mocks, err := s.records.Mocks(slug)
	if err != nil {
		return err
	}
	for i, m := range mocks {
		if m.ID == mockID {
			mocks = append(mocks[:i], mocks[i+1:]...)
			return s.records.SaveMocks(slug, mocks)
		}
	}
	return ErrMockNotFound
}
