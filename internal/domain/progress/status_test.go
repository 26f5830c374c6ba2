package progress_test

import (
	"testing"

	"github.com/estudotatico/backend/internal/domain/progress"
)

func TestNextCyclesThroughAllStatuses(t *testing.T) {
	order := []progress.Status{
		progress.StatusPending,
		progress.StatusSummary,
		progress.StatusQuestions,
		progress.StatusReview24h,
		progress.StatusMastered,
	}

	for i, s := range order {
		want := order[(i+1)%len(order)]
		if got := s.Next(); got != want {
			t.Errorf("Next(%s) = %s, want %s", s, got, want)
		}
	}
}

func TestToggleFiveTimesReturnsToStart(t *testing.T) {
	m := progress.Map{}
	m.Set("Direito Penal", "Furto", progress.StatusQuestions)

	for i := 0; i < 5; i++ {
		m.Toggle("Direito Penal", "Furto")
	}

	if got := m.StatusOf("Direito Penal", "Furto"); got != progress.StatusQuestions {
		t.Errorf("after 5 toggles status = %s, want %s", got, progress.StatusQuestions)
	}
}

func TestStatusOfDefaultsToPending(t *testing.T) {
	m := progress.Map{}

	if got := m.StatusOf("Português", "Crase"); got != progress.StatusPending {
		t.Errorf("absent entry status = %s, want %s", got, progress.StatusPending)
	}
}

func TestToggleFromAbsentEntry(t *testing.T) {
	m := progress.Map{}

	if got := m.Toggle("Português", "Crase"); got != progress.StatusSummary {
		t.Errorf("first toggle = %s, want %s", got, progress.StatusSummary)
	}
}

func TestParseUnknownFallsBackToPending(t *testing.T) {
	for _, raw := range []string{"", "done", "MASTERED"} {
		if got := progress.Parse(raw); got != progress.StatusPending {
			t.Errorf("Parse(%q) = %s, want pending", raw, got)
		}
	}
	if got := progress.Parse("review_24h"); got != progress.StatusReview24h {
		t.Errorf("Parse(review_24h) = %s", got)
	}
}

func TestPromoteOnlyMovesForwardFromListedStages(t *testing.T) {
	m := progress.Map{}

	// pending → questions (logging a session from scratch)
	if !m.Promote("Matemática", "Juros", progress.StatusQuestions, progress.StatusPending, progress.StatusSummary) {
		t.Error("expected promotion from pending")
	}
	if got := m.StatusOf("Matemática", "Juros"); got != progress.StatusQuestions {
		t.Errorf("status = %s, want questions", got)
	}

	// already past the trigger stages: no change
	m.Set("Matemática", "Juros", progress.StatusMastered)
	if m.Promote("Matemática", "Juros", progress.StatusSummary, progress.StatusPending) {
		t.Error("promotion must not fire from mastered")
	}
	if got := m.StatusOf("Matemática", "Juros"); got != progress.StatusMastered {
		t.Errorf("status = %s, want mastered", got)
	}
}
