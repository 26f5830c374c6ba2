package revision_test

import (
	"testing"
	"time"

	"github.com/estudotatico/backend/internal/domain/resource"
	"github.com/estudotatico/backend/internal/domain/revision"
)

var base = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func TestAdvanceLadder(t *testing.T) {
	tests := []struct {
		from      resource.RevisionPhase
		wantPhase resource.RevisionPhase
		wantDays  int
	}{
		{resource.Phase24h, resource.Phase7d, 7},
		{resource.Phase7d, resource.Phase30d, 30},
		{resource.Phase30d, resource.PhaseMaintenance, 30},
		{resource.PhaseMaintenance, resource.PhaseMaintenance, 30},
	}

	for _, tt := range tests {
		out := revision.Advance(tt.from, base)
		if out.Phase != tt.wantPhase {
			t.Errorf("Advance(%s) phase = %s, want %s", tt.from, out.Phase, tt.wantPhase)
		}
		if want := base.AddDate(0, 0, tt.wantDays); !out.NextDue.Equal(want) {
			t.Errorf("Advance(%s) due = %v, want %v", tt.from, out.NextDue, want)
		}
	}
}

func TestApplySequenceIsMonotonic(t *testing.T) {
	tr := &resource.TopicResources{}
	now := base

	wantPhases := []resource.RevisionPhase{
		resource.Phase7d,
		resource.Phase30d,
		resource.PhaseMaintenance,
		resource.PhaseMaintenance,
	}

	for i, want := range wantPhases {
		out := revision.Apply(tr, now)
		if out.Phase != want {
			t.Fatalf("completion %d: phase = %s, want %s", i+1, out.Phase, want)
		}
		if tr.RevisionPhase != want {
			t.Fatalf("completion %d: stored phase = %s, want %s", i+1, tr.RevisionPhase, want)
		}
		if tr.LastStudiedAt != now.Format(time.RFC3339) {
			t.Fatalf("completion %d: lastStudiedAt = %s", i+1, tr.LastStudiedAt)
		}
		now = out.NextDue
	}

	// maintenance keeps rescheduling +30 days
	last := revision.Apply(tr, now)
	if last.Phase != resource.PhaseMaintenance {
		t.Errorf("phase after maintenance = %s", last.Phase)
	}
	if want := now.AddDate(0, 0, 30); !last.NextDue.Equal(want) {
		t.Errorf("maintenance due = %v, want %v", last.NextDue, want)
	}
}

func TestCollectDueMembership(t *testing.T) {
	resources := resource.Map{}

	overdue := resources.Ensure("Direito Penal", "Furto")
	overdue.NextRevisionDate = base.AddDate(0, 0, -2).Format(time.RFC3339)
	overdue.RevisionPhase = resource.Phase7d

	future := resources.Ensure("Direito Penal", "Roubo")
	future.NextRevisionDate = base.AddDate(0, 0, 3).Format(time.RFC3339)

	bootstrap := resources.Ensure("Português", "Crase")
	bootstrap.QuestionHistory = []resource.QuestionSession{{ID: "x", Total: 10, Correct: 7}}

	// tracked but idle: no history, never scheduled
	resources.Ensure("Português", "Concordância")

	queue := revision.Collect(nil, "PM-SP", "pm-sp", resources, base)

	byTopic := map[string]revision.Item{}
	for _, item := range queue {
		byTopic[item.Topic] = item
	}

	if len(queue) != 2 {
		t.Fatalf("queue length = %d, want 2 (%v)", len(queue), byTopic)
	}
	if item, ok := byTopic["Furto"]; !ok {
		t.Error("overdue topic missing from queue")
	} else if item.Phase != resource.Phase7d {
		t.Errorf("overdue phase = %s, want 7d", item.Phase)
	}
	if _, ok := byTopic["Roubo"]; ok {
		t.Error("future-dated topic must not be queued")
	}
	if item, ok := byTopic["Crase"]; !ok {
		t.Error("bootstrap topic (history, never scheduled) missing from queue")
	} else {
		if item.Phase != resource.Phase24h {
			t.Errorf("bootstrap phase = %s, want 24h", item.Phase)
		}
		if !item.DueDate.Equal(base) {
			t.Errorf("bootstrap due = %v, want now", item.DueDate)
		}
	}
}

func TestSortMostOverdueFirst(t *testing.T) {
	queue := []revision.Item{
		{Topic: "b", DueDate: base.AddDate(0, 0, -1)},
		{Topic: "a", DueDate: base.AddDate(0, 0, -10)},
		{Topic: "c", DueDate: base},
	}
	revision.Sort(queue)

	got := []string{queue[0].Topic, queue[1].Topic, queue[2].Topic}
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}
