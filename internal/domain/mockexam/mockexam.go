package mockexam

import (
	"errors"
	"math"
	"time"

	"github.com/estudotatico/backend/internal/id"
)

// SubjectResult is one subject's tally inside a mock exam sitting.
type SubjectResult struct {
	Subject string `json:"subject"`
	Total   int    `json:"total"`
	Correct int    `json:"correct"`
}

// MockExam records one full practice sitting with its per-subject results.
type MockExam struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Date    string          `json:"date"`
	Results []SubjectResult `json:"results"`
}

var (
	ErrEmptyName     = errors.New("mock exam name cannot be empty")
	ErrNoResults     = errors.New("mock exam needs at least one subject result")
	ErrInvalidResult = errors.New("invalid subject result")
)

// New validates and builds a mock exam record dated now.
func New(name string, results []SubjectResult, now time.Time) (*MockExam, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(results) == 0 {
		return nil, ErrNoResults
	}
	for _, r := range results {
		if r.Subject == "" || r.Total <= 0 || r.Correct < 0 || r.Correct > r.Total {
			return nil, ErrInvalidResult
		}
	}
	return &MockExam{
		ID:      id.GenerateID(),
		Name:    name,
		Date:    now.Format("2006-01-02"),
		Results: results,
	}, nil
}

// Accuracy returns the sitting's overall percentage.
func (m *MockExam) Accuracy() int {
	total, correct := 0, 0
	for _, r := range m.Results {
		total += r.Total
		correct += r.Correct
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}
