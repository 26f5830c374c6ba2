package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/estudotatico/backend/internal/domain/flashdeck"
	"github.com/estudotatico/backend/internal/domain/progress"
	"github.com/estudotatico/backend/internal/generator"
	"github.com/estudotatico/backend/internal/service"
	"github.com/estudotatico/backend/internal/store"
)

// fakeGenerator records prompts and returns canned content.
type fakeGenerator struct {
	mu      sync.Mutex
	prompts []string
	fail    bool
}

func (f *fakeGenerator) StudyContent(_ context.Context, subject, topic string, mode generator.ContentMode, customPrompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, customPrompt)
	f.mu.Unlock()
	if f.fail {
		return "", errors.New("model down")
	}
	return "<p>" + topic + " (" + string(mode) + ")</p>", nil
}

func (f *fakeGenerator) QuizQuestions(context.Context, string, string, int) ([]generator.QuizQuestion, error) {
	if f.fail {
		return nil, errors.New("model down")
	}
	return []generator.QuizQuestion{{Statement: "q", Options: []string{"a", "b"}, CorrectIndex: 1}}, nil
}

func (f *fakeGenerator) LawFlash(context.Context, string) (generator.LawFlash, error) {
	if f.fail {
		return generator.LawFlash{}, errors.New("model down")
	}
	return generator.LawFlash{Article: "Art. 5º", Summary: "ok"}, nil
}

func (f *fakeGenerator) Analysis(context.Context, string) (string, error) {
	if f.fail {
		return "", errors.New("model down")
	}
	return "foque em Português", nil
}

func (f *fakeGenerator) Syllabus(context.Context, string) ([]generator.SubjectSyllabus, error) {
	if f.fail {
		return nil, errors.New("model down")
	}
	return []generator.SubjectSyllabus{
		{Subject: "Direito Penal", Topics: []string{"Furto", "Estelionato"}},
		{Subject: "Informática", Topics: []string{"Redes"}},
	}, nil
}

func newGenEnv(t *testing.T, fake *fakeGenerator) (*env, *service.GenerationService) {
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
	return e, service.NewGenerationService(records, fake, logger)
}

func TestGenerateStudyContentStoresAndPromotes(t *testing.T) {
	fake := &fakeGenerator{}
	e, gen := newGenEnv(t, fake)
	slug := e.createExam(t)

	text, err := gen.GenerateStudyContent(context.Background(), slug, "Direito Penal", "Furto", generator.ModeSummary)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(text, "Furto") {
		t.Errorf("text = %q", text)
	}

	resources, _ := e.records.Resources(slug)
	if resources.Topic("Direito Penal", "Furto").Summary == "" {
		t.Error("summary not stored")
	}
	prog, _ := e.records.Progress(slug)
	if got := prog.StatusOf("Direito Penal", "Furto"); got != progress.StatusSummary {
		t.Errorf("status after generation = %s, want summary", got)
	}

	// full material goes to its own field and does not demote
	e.study.SetStatus(slug, "Direito Penal", "Furto", progress.StatusQuestions)
	if _, err := gen.GenerateStudyContent(context.Background(), slug, "Direito Penal", "Furto", generator.ModeFull); err != nil {
		t.Fatalf("generate full: %v", err)
	}
	resources, _ = e.records.Resources(slug)
	tr := resources.Topic("Direito Penal", "Furto")
	if tr.FullMaterial == "" || tr.Summary == "" {
		t.Errorf("resources = %+v", tr)
	}
	prog, _ = e.records.Progress(slug)
	if got := prog.StatusOf("Direito Penal", "Furto"); got != progress.StatusQuestions {
		t.Errorf("status = %s, generation must not move it", got)
	}
}

func TestCustomPromptSubstitution(t *testing.T) {
	fake := &fakeGenerator{}
	e, gen := newGenEnv(t, fake)
	slug := e.createExam(t)

	if err := gen.SetPrompt(slug, "Direito Penal", "Explique ( ) com foco em pegadinhas"); err != nil {
		t.Fatalf("set prompt: %v", err)
	}
	gen.GenerateStudyContent(context.Background(), slug, "Direito Penal", "Furto", generator.ModeSummary)
	gen.GenerateStudyContent(context.Background(), slug, "Português", "Crase", generator.ModeSummary)

	if len(fake.prompts) != 2 {
		t.Fatalf("prompts = %v", fake.prompts)
	}
	if fake.prompts[0] != "Explique Furto com foco em pegadinhas" {
		t.Errorf("templated prompt = %q", fake.prompts[0])
	}
	if fake.prompts[1] != "" {
		t.Errorf("subject without template sent %q, want built-in prompt", fake.prompts[1])
	}
}

func TestBulkGenerateCoversSubject(t *testing.T) {
	fake := &fakeGenerator{}
	e, gen := newGenEnv(t, fake)
	slug := e.createExam(t)

	results, err := gen.BulkGenerate(context.Background(), slug, "Direito Penal", generator.ModeSummary)
	if err != nil {
		t.Fatalf("bulk: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %+v", results)
	}
	for _, r := range results {
		if !r.OK {
			t.Errorf("topic %s failed: %s", r.Topic, r.Error)
		}
	}

	resources, _ := e.records.Resources(slug)
	for _, topic := range []string{"Furto", "Roubo"} {
		tr := resources.Topic("Direito Penal", topic)
		if tr == nil || tr.Summary == "" {
			t.Errorf("topic %s has no summary", topic)
		}
	}

	if _, err := gen.BulkGenerate(context.Background(), slug, "Inexistente", generator.ModeSummary); err == nil {
		t.Error("bulk for unknown subject did not error")
	}
}

func TestGenerationFallbacks(t *testing.T) {
	fake := &fakeGenerator{fail: true}
	e, gen := newGenEnv(t, fake)
	slug := e.createExam(t)

	if questions := gen.Quiz(context.Background(), "Direito Penal", "Furto", 5); len(questions) != 0 {
		t.Errorf("quiz fallback = %+v, want empty list", questions)
	}
	flash := gen.LawFlashCard(context.Background(), "CF/88")
	if flash.Article == "" || flash.Summary == "" {
		t.Errorf("law flash fallback = %+v, want sentinel payload", flash)
	}
	if text := gen.Analysis(context.Background(), e.study); text == "" || strings.Contains(text, "foque") {
		t.Errorf("analysis fallback = %q", text)
	}

	// failed refresh leaves the exam untouched
	before, _ := e.exams.Get(slug)
	if _, err := gen.RefreshSyllabus(context.Background(), slug); err == nil {
		t.Error("refresh with failing model did not error")
	}
	after, _ := e.exams.Get(slug)
	if before.TopicCount() != after.TopicCount() {
		t.Error("failed refresh modified the exam")
	}
}

func TestRefreshSyllabusMergesNewContent(t *testing.T) {
	fake := &fakeGenerator{}
	e, gen := newGenEnv(t, fake)
	slug := e.createExam(t)

	updated, err := gen.RefreshSyllabus(context.Background(), slug)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}

	// existing Furto kept once, Estelionato and Informática/Redes added
	if updated.TopicCount() != 5 {
		t.Errorf("topic count = %d, want 5", updated.TopicCount())
	}
	persisted, _ := e.exams.Get(slug)
	if persisted.TopicCount() != 5 {
		t.Errorf("persisted count = %d, want 5", persisted.TopicCount())
	}
}

func TestDeckDrawFeedsFlashCounter(t *testing.T) {
	fake := &fakeGenerator{}
	e, gen := newGenEnv(t, fake)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	decks := service.NewDeckService(e.records, gen, logger)
	decks.RegisterTaskListener(e.daily.HandleTask)

	general, err := decks.Create("Revisão geral", flashdeck.TypeGeneral, "")
	if err != nil {
		t.Fatalf("create deck: %v", err)
	}
	decks.AddCard(general.ID, flashdeck.CardText, "Art. 155", "Furto")

	drawn, err := decks.Draw(context.Background(), general.ID)
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	if drawn.Card == nil || drawn.Card.Content != "Furto" {
		t.Errorf("drawn = %+v", drawn)
	}

	law, _ := decks.Create("CF/88", flashdeck.TypeLaw, "https://planalto.gov.br/cf88")
	drawn, err = decks.Draw(context.Background(), law.ID)
	if err != nil {
		t.Fatalf("law draw: %v", err)
	}
	if drawn.Law == nil || drawn.Law.Article != "Art. 5º" {
		t.Errorf("law drawn = %+v", drawn)
	}

	today, _ := e.daily.Today()
	if today.FlashCount != 2 {
		t.Errorf("flash counter = %d, want 2", today.FlashCount)
	}
}
