package service_test

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/estudotatico/backend/internal/domain/exam"
	"github.com/estudotatico/backend/internal/domain/performance"
	"github.com/estudotatico/backend/internal/domain/progress"
	"github.com/estudotatico/backend/internal/domain/resource"
	"github.com/estudotatico/backend/internal/service"
	"github.com/estudotatico/backend/internal/store"
)

type env struct {
	records  *store.Records
	exams    *service.ExamService
	study    *service.StudyService
	revision *service.RevisionService
	daily    *service.DailyService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	kv, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { kv.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	records := store.NewRecords(kv, "default")

	e := &env{
		records:  records,
		exams:    service.NewExamService(records, logger),
		study:    service.NewStudyService(records, logger),
		revision: service.NewRevisionService(records, logger),
		daily:    service.NewDailyService(records, logger),
	}
	e.study.RegisterTaskListener(e.daily.HandleTask)
	e.revision.RegisterTaskListener(e.daily.HandleTask)
	return e
}

func (e *env) createExam(t *testing.T) string {
	t.Helper()
	created, err := e.exams.Create(
		exam.Info{Name: "PM SP", Board: "Vunesp"},
		[]exam.Subject{
			{Name: "Direito Penal", Topics: []string{"Furto", "Roubo"}},
			{Name: "Português", Topics: []string{"Crase"}},
		},
	)
	if err != nil {
		t.Fatalf("create exam: %v", err)
	}
	return created.Slug()
}

func TestExamLifecycle(t *testing.T) {
	e := newEnv(t)
	slug := e.createExam(t)

	if slug != "pm_sp" {
		t.Errorf("slug = %s, want pm_sp", slug)
	}
	if _, err := e.exams.Create(exam.Info{Name: "pm  SP"}, nil); !errors.Is(err, service.ErrExamExists) {
		t.Errorf("duplicate slug: got %v", err)
	}

	if _, err := e.exams.AddTopic(slug, "Português", "Sintaxe"); err != nil {
		t.Fatalf("add topic: %v", err)
	}
	got, err := e.exams.Get(slug)
	if err != nil || got.TopicCount() != 4 {
		t.Errorf("topic count = %d, want 4 (%v)", got.TopicCount(), err)
	}

	// deleting cascades to the per-slug documents
	e.study.AddQuestionSession(slug, "Direito Penal", "Furto", 10, 7)
	if err := e.exams.Delete(slug); err != nil {
		t.Fatalf("delete exam: %v", err)
	}
	if _, err := e.exams.Get(slug); !errors.Is(err, service.ErrExamNotFound) {
		t.Errorf("get deleted: got %v", err)
	}
	keys, _ := e.records.KV().Keys(e.records.Keys().Prefix() + "resources")
	if len(keys) != 0 {
		t.Errorf("cascade left resources: %v", keys)
	}
}

// A full first pass over one topic: log questions, get promoted, show up on
// the radar, complete the revision and land on the next ladder rung with the
// stats accumulated.
func TestStudyFlowEndToEnd(t *testing.T) {
	e := newEnv(t)
	slug := e.createExam(t)

	if _, err := e.study.AddQuestionSession(slug, "Direito Penal", "Furto", 10, 7); err != nil {
		t.Fatalf("add session: %v", err)
	}

	// pending topic with a logged session is promoted to questions
	prog, _ := e.study.Progress(slug)
	if got := prog.StatusOf("Direito Penal", "Furto"); got != progress.StatusQuestions {
		t.Errorf("status after session = %s, want questions", got)
	}

	stats, _ := e.study.TopicStats(slug, "Direito Penal", "Furto")
	if stats.Accuracy != 70 || stats.Rating() != performance.RatingMedium {
		t.Errorf("stats = %+v, want 70%% medium", stats)
	}

	// never-scheduled topic with history bootstraps onto the radar
	queue, err := e.revision.Queue()
	if err != nil {
		t.Fatalf("queue: %v", err)
	}
	if len(queue) != 1 || queue[0].Topic != "Furto" || queue[0].Phase != resource.Phase24h {
		t.Fatalf("queue = %+v", queue)
	}

	out, err := e.revision.Complete(slug, "Direito Penal", "Furto", service.CompleteWithQuestions, 5, 5)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if out.Phase != resource.Phase7d {
		t.Errorf("phase after completion = %s, want 7d", out.Phase)
	}
	if want := time.Now().AddDate(0, 0, 7); out.NextDue.Sub(want) > time.Minute || want.Sub(out.NextDue) > time.Minute {
		t.Errorf("next due = %v, want ~+7d", out.NextDue)
	}

	// 12/15 = 80% flips the rating to good
	stats, _ = e.study.TopicStats(slug, "Direito Penal", "Furto")
	if stats.Total != 15 || stats.Correct != 12 || stats.Accuracy != 80 {
		t.Errorf("stats = %+v, want 12/15 at 80%%", stats)
	}
	if stats.Rating() != performance.RatingGood {
		t.Errorf("rating = %s, want good", stats.Rating())
	}

	// scheduled in the future, so off the radar
	queue, _ = e.revision.Queue()
	if len(queue) != 0 {
		t.Errorf("queue after completion = %+v", queue)
	}

	// both batches were counted toward the law target
	today, err := e.daily.Today()
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if today.QuestionsLaw != 15 {
		t.Errorf("law counter = %d, want 15", today.QuestionsLaw)
	}
}

func TestCompleteSummaryRequiresMaterial(t *testing.T) {
	e := newEnv(t)
	slug := e.createExam(t)
	e.study.AddQuestionSession(slug, "Direito Penal", "Furto", 10, 7)

	_, err := e.revision.Complete(slug, "Direito Penal", "Furto", service.CompleteWithSummary, 0, 0)
	if !errors.Is(err, service.ErrNoStudyMaterial) {
		t.Fatalf("summary mode without material: got %v", err)
	}

	// store a summary and retry
	resources, _ := e.records.Resources(slug)
	resources.Topic("Direito Penal", "Furto").Summary = "<p>Art. 155</p>"
	e.records.SaveResources(slug, resources)

	out, err := e.revision.Complete(slug, "Direito Penal", "Furto", service.CompleteWithSummary, 0, 0)
	if err != nil {
		t.Fatalf("complete summary: %v", err)
	}
	if out.Phase != resource.Phase7d {
		t.Errorf("phase = %s, want 7d", out.Phase)
	}

	// summary mode logs no questions
	stats, _ := e.study.TopicStats(slug, "Direito Penal", "Furto")
	if stats.Total != 10 {
		t.Errorf("total = %d, want 10 (unchanged)", stats.Total)
	}
}

func TestInvalidSessionRejected(t *testing.T) {
	e := newEnv(t)
	slug := e.createExam(t)

	bad := [][2]int{{0, 0}, {10, 11}, {10, -1}, {-5, 0}}
	for _, tc := range bad {
		if _, err := e.study.AddQuestionSession(slug, "Direito Penal", "Furto", tc[0], tc[1]); !errors.Is(err, resource.ErrInvalidSession) {
			t.Errorf("AddQuestionSession(%d, %d) error = %v, want ErrInvalidSession", tc[0], tc[1], err)
		}
	}

	// nothing was stored and no promotion happened
	stats, _ := e.study.TopicStats(slug, "Direito Penal", "Furto")
	if stats.Total != 0 {
		t.Errorf("total after rejected sessions = %d", stats.Total)
	}
	prog, _ := e.study.Progress(slug)
	if prog.StatusOf("Direito Penal", "Furto") != progress.StatusPending {
		t.Error("rejected session changed the status")
	}
}

func TestToggleDoesNotPromoteBackward(t *testing.T) {
	e := newEnv(t)
	slug := e.createExam(t)

	e.study.SetStatus(slug, "Direito Penal", "Furto", progress.StatusMastered)
	e.study.AddQuestionSession(slug, "Direito Penal", "Furto", 10, 10)

	prog, _ := e.study.Progress(slug)
	if got := prog.StatusOf("Direito Penal", "Furto"); got != progress.StatusMastered {
		t.Errorf("mastered topic demoted to %s by a question session", got)
	}
}

func TestVideoAndDraftCRUD(t *testing.T) {
	e := newEnv(t)
	slug := e.createExam(t)

	video, err := e.study.AddVideo(slug, "Português", "Crase", "Aula 1", "https://example.com/v1")
	if err != nil {
		t.Fatalf("add video: %v", err)
	}
	if err := e.study.RenameVideo(slug, "Português", "Crase", video.ID, "Aula 1 (revisada)"); err != nil {
		t.Fatalf("rename video: %v", err)
	}
	if err := e.study.RemoveVideo(slug, "Português", "Crase", "nope"); !errors.Is(err, service.ErrVideoNotFound) {
		t.Errorf("remove missing video: got %v", err)
	}
	if err := e.study.RemoveVideo(slug, "Português", "Crase", video.ID); err != nil {
		t.Fatalf("remove video: %v", err)
	}

	draft, err := e.study.AddDraft(slug, "Português", "Crase", "Anotações", "a + a = à")
	if err != nil {
		t.Fatalf("add draft: %v", err)
	}
	if err := e.study.UpdateDraft(slug, "Português", "Crase", draft.ID, "Anotações", "atualizado"); err != nil {
		t.Fatalf("update draft: %v", err)
	}

	resources, _ := e.study.Resources(slug)
	tr := resources.Topic("Português", "Crase")
	if len(tr.VideoLinks) != 0 || len(tr.Drafts) != 1 || tr.Drafts[0].Content != "atualizado" {
		t.Errorf("resources = %+v", tr)
	}
}

func TestDashboard(t *testing.T) {
	e := newEnv(t)
	slug := e.createExam(t)

	e.study.SetStatus(slug, "Direito Penal", "Furto", progress.StatusMastered)
	e.study.AddQuestionSession(slug, "Direito Penal", "Furto", 10, 9)
	e.study.AddQuestionSession(slug, "Português", "Crase", 10, 5)

	d, err := e.study.ExamDashboard(slug)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if d.TotalTopics != 3 || d.CompletedTopics != 1 || d.CompletionPct != 33 {
		t.Errorf("completion = %d/%d (%d%%)", d.CompletedTopics, d.TotalTopics, d.CompletionPct)
	}
	if d.Overall.Total != 20 || d.Overall.Accuracy != 70 {
		t.Errorf("overall = %+v", d.Overall)
	}
	if len(d.Report) != 2 || d.Report[0].Subject != "Português" {
		t.Errorf("report = %+v, want Português first (worst)", d.Report)
	}
}

func TestVideoWatchedFeedsDailyCounter(t *testing.T) {
	e := newEnv(t)
	e.study.MarkVideoWatched()

	today, err := e.daily.Today()
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if today.VideoWatched != 1 {
		t.Errorf("video counter = %d, want 1", today.VideoWatched)
	}
}
