package mockexam_test

import (
	"testing"
	"time"

	"github.com/estudotatico/backend/internal/domain/mockexam"
)

var now = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func TestNewValidates(t *testing.T) {
	ok := []mockexam.SubjectResult{{Subject: "Português", Total: 20, Correct: 15}}

	if _, err := mockexam.New("", ok, now); err != mockexam.ErrEmptyName {
		t.Errorf("empty name: got %v", err)
	}
	if _, err := mockexam.New("Simulado 1", nil, now); err != mockexam.ErrNoResults {
		t.Errorf("no results: got %v", err)
	}

	bad := [][]mockexam.SubjectResult{
		{{Subject: "", Total: 10, Correct: 5}},
		{{Subject: "Português", Total: 0, Correct: 0}},
		{{Subject: "Português", Total: 10, Correct: 11}},
		{{Subject: "Português", Total: 10, Correct: -1}},
	}
	for i, results := range bad {
		if _, err := mockexam.New("Simulado 1", results, now); err != mockexam.ErrInvalidResult {
			t.Errorf("case %d: got %v, want ErrInvalidResult", i, err)
		}
	}

	m, err := mockexam.New("Simulado 1", ok, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ID == "" || m.Date != "2025-03-10" {
		t.Errorf("mock = %+v", m)
	}
}

func TestAccuracy(t *testing.T) {
	m, _ := mockexam.New("Simulado 2", []mockexam.SubjectResult{
		{Subject: "Português", Total: 20, Correct: 15},
		{Subject: "Direito Penal", Total: 10, Correct: 8},
	}, now)

	// 23/30 = 76.66..., rounds to 77
	if got := m.Accuracy(); got != 77 {
		t.Errorf("accuracy = %d, want 77", got)
	}
}
