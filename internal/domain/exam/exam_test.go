package exam_test

import (
	"testing"

	"github.com/estudotatico/backend/internal/domain/exam"
)

func TestNewRequiresName(t *testing.T) {
	if _, err := exam.New(exam.Info{Name: "   "}); err != exam.ErrEmptyName {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}

	e, err := exam.New(exam.Info{Name: "Polícia Federal 2025", Board: "Cebraspe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(e.Subjects) != 0 {
		t.Errorf("expected no subjects, got %d", len(e.Subjects))
	}
}

func TestSlug(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Polícia Federal 2025", "polícia_federal_2025"},
		{"PM  SP", "pm_sp"},
		{"trt", "trt"},
	}
	for _, tt := range tests {
		if got := exam.Slug(tt.in); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSubjectAndTopicUniqueness(t *testing.T) {
	e, _ := exam.New(exam.Info{Name: "PM-SP"})

	if err := e.AddSubject("Direito Penal"); err != nil {
		t.Fatalf("add subject: %v", err)
	}
	if err := e.AddSubject("Direito Penal"); err != exam.ErrSubjectExists {
		t.Errorf("duplicate subject: got %v", err)
	}

	if err := e.AddTopic("Direito Penal", "Furto"); err != nil {
		t.Fatalf("add topic: %v", err)
	}
	if err := e.AddTopic("Direito Penal", "Furto"); err != exam.ErrTopicExists {
		t.Errorf("duplicate topic: got %v", err)
	}
	if err := e.AddTopic("Português", "Crase"); err != exam.ErrSubjectNotFound {
		t.Errorf("missing subject: got %v", err)
	}
}

func TestRemoveSubjectAndTopic(t *testing.T) {
	e, _ := exam.New(exam.Info{Name: "PM-SP"})
	e.AddSubject("Direito Penal")
	e.AddTopic("Direito Penal", "Furto")
	e.AddTopic("Direito Penal", "Roubo")

	if err := e.RemoveTopic("Direito Penal", "Furto"); err != nil {
		t.Fatalf("remove topic: %v", err)
	}
	if e.TopicCount() != 1 {
		t.Errorf("topic count = %d, want 1", e.TopicCount())
	}
	if err := e.RemoveTopic("Direito Penal", "Furto"); err != exam.ErrTopicNotFound {
		t.Errorf("remove missing topic: got %v", err)
	}

	if err := e.RemoveSubject("Direito Penal"); err != nil {
		t.Fatalf("remove subject: %v", err)
	}
	if err := e.RemoveSubject("Direito Penal"); err != exam.ErrSubjectNotFound {
		t.Errorf("remove missing subject: got %v", err)
	}
}
