// internal/service/generation.go
package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/estudotatico/backend/internal/domain/exam"
	"github.com/estudotatico/backend/internal/domain/progress"
	"github.com/estudotatico/backend/internal/generator"
	"github.com/estudotatico/backend/internal/store"
	"github.com/estudotatico/backend/internal/worker"
)

// promptPlaceholder is replaced with the topic name when a subject has a
// custom prompt template.
const promptPlaceholder = "( )"

// analysisFallback is returned when the model cannot produce an analysis.
const analysisFallback = "Não foi possível gerar a análise de desempenho agora. Continue estudando e tente novamente mais tarde."

const bulkWorkers = 4

// GenerationService produces AI study content and stores it on the topic's
// resources. Generation failures for quiz, flash and analysis degrade to
// harmless payloads instead of erroring; study content generation reports
// its error so the caller can retry.
type GenerationService struct {
	records *store.Records
	gen     generator.Generator
	logger  *slog.Logger

	// serializes read-modify-write of the resources document during bulk runs
	mu sync.Mutex
}

func NewGenerationService(records *store.Records, gen generator.Generator, logger *slog.Logger) *GenerationService {
	return &GenerationService{records: records, gen: gen, logger: logger}
}

// ============================================================================
// Study content
// ============================================================================

// GenerateStudyContent generates and stores material for a topic. A custom
// prompt template stored for the subject overrides the built-in prompt, with
// its placeholder substituted by the topic name. Generating material promotes
// a pending topic to summary.
func (s *GenerationService) GenerateStudyContent(ctx context.Context, slug, subject, topic string, mode generator.ContentMode) (string, error) {
	prompt, err := s.customPrompt(slug, subject, topic)
	if err != nil {
		return "", err
	}

	text, err := s.gen.StudyContent(ctx, subject, topic, mode, prompt)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	resources, err := s.records.Resources(slug)
	if err != nil {
		return "", err
	}
	tr := resources.Ensure(subject, topic)
	if mode == generator.ModeFull {
		tr.FullMaterial = text
	} else {
		tr.Summary = text
	}
	if err := s.records.SaveResources(slug, resources); err != nil {
		return "", err
	}

	prog, err := s.records.Progress(slug)
	if err != nil {
		return "", err
	}
	if prog.Promote(subject, topic, progress.StatusSummary, progress.StatusPending) {
		if err := s.records.SaveProgress(slug, prog); err != nil {
			return "", err
		}
	}

	s.logger.Info("study content generated", "slug", slug, "subject", subject, "topic", topic, "mode", mode)
	return text, nil
}

// BulkResult is one topic's outcome of a bulk generation run.
type BulkResult struct {
	Topic string `json:"topic"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// BulkGenerate generates summaries for every topic of a subject with bounded
// concurrency. Failed topics are reported individually; the run continues
// past them.
func (s *GenerationService) BulkGenerate(ctx context.Context, slug, subject string, mode generator.ContentMode) ([]BulkResult, error) {
	exams, err := s.records.Exams()
	if err != nil {
		return nil, err
	}

	var topics []string
	for _, e := range exams {
		if e.Slug() != slug {
			continue
		}
		for _, sub := range e.Subjects {
			if sub.Name == subject {
				topics = append(topics, sub.Topics...)
			}
		}
	}
	if len(topics) == 0 {
		return nil, ErrExamNotFound
	}

	pool := worker.NewPool[BulkResult](bulkWorkers, len(topics))
	for _, topic := range topics {
		topic := topic
		pool.Submit(topic, func() BulkResult {
			if _, err := s.GenerateStudyContent(ctx, slug, subject, topic, mode); err != nil {
				return BulkResult{Topic: topic, Error: err.Error()}
			}
			return BulkResult{Topic: topic, OK: true}
		})
	}
	pool.Close()

	results := make([]BulkResult, 0, len(topics))
	for range topics {
		r := <-pool.Results()
		results = append(results, r.Output)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Topic < results[j].Topic })
	return results, nil
}

// ============================================================================
// Quiz, flash, analysis
// ============================================================================

// Quiz generates practice questions for a topic. On failure it returns an
// empty list; the caller simply has nothing to practice with.
func (s *GenerationService) Quiz(ctx context.Context, subject, topic string, count int) []generator.QuizQuestion {
	questions, err := s.gen.QuizQuestions(ctx, subject, topic, count)
	if err != nil {
		s.logger.Error("quiz generation failed", "subject", subject, "topic", topic, "error", err)
		return []generator.QuizQuestion{}
	}
	return questions
}

// LawFlashCard generates a statute flash card. On failure it returns a
// sentinel card telling the user to try again.
func (s *GenerationService) LawFlashCard(ctx context.Context, lawName string) generator.LawFlash {
	flash, err := s.gen.LawFlash(ctx, lawName)
	if err != nil {
		s.logger.Error("law flash generation failed", "law", lawName, "error", err)
		return generator.LawFlash{
			Article: "Indisponível",
			Summary: "Não foi possível gerar o flash agora. Tente novamente.",
			Tip:     "Verifique a conexão com o serviço de IA.",
		}
	}
	return flash
}

// Analysis turns the global performance report into study advice. On failure
// it returns a fixed fallback message.
func (s *GenerationService) Analysis(ctx context.Context, study *StudyService) string {
	report, err := study.GlobalReport()
	if err != nil {
		s.logger.Error("analysis report build failed", "error", err)
		return analysisFallback
	}
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return analysisFallback
	}
	text, err := s.gen.Analysis(ctx, string(reportJSON))
	if err != nil {
		s.logger.Error("analysis generation failed", "error", err)
		return analysisFallback
	}
	return text
}

// ============================================================================
// Syllabus refresh
// ============================================================================

// RefreshSyllabus asks the model for the exam's programme and merges any new
// subjects and topics into the stored exam. Best effort: on generation
// failure the exam is left untouched.
func (s *GenerationService) RefreshSyllabus(ctx context.Context, slug string) (*exam.Exam, error) {
	syllabus, err := s.gen.Syllabus(ctx, s.examName(slug))
	if err != nil {
		return nil, err
	}

	exams, err := s.records.Exams()
	if err != nil {
		return nil, err
	}
	for _, e := range exams {
		if e.Slug() != slug {
			continue
		}
		added := 0
		for _, sub := range syllabus {
			if err := e.AddSubject(sub.Subject); err == nil {
				added++
			}
			for _, topic := range sub.Topics {
				if err := e.AddTopic(sub.Subject, topic); err == nil {
					added++
				}
			}
		}
		if added > 0 {
			if err := s.records.SaveExams(exams); err != nil {
				return nil, err
			}
		}
		s.logger.Info("syllabus refreshed", "slug", slug, "added", added)
		return e, nil
	}
	return nil, ErrExamNotFound
}

func (s *GenerationService) examName(slug string) string {
	exams, err := s.records.Exams()
	if err == nil {
		for _, e := range exams {
			if e.Slug() == slug {
				return e.Info.Name
			}
		}
	}
	return strings.ReplaceAll(slug, "_", " ")
}

// ============================================================================
// Custom prompts
// ============================================================================

func (s *GenerationService) Prompts(slug string) (map[string]string, error) {
	return s.records.Prompts(slug)
}

func (s *GenerationService) SetPrompt(slug, subject, template string) error {
	prompts, err := s.records.Prompts(slug)
	if err != nil {
		return err
	}
	if template == "" {
		delete(prompts, subject)
	} else {
		prompts[subject] = template
	}
	return s.records.SavePrompts(slug, prompts)
}

// customPrompt resolves the subject's template with the topic substituted,
// or returns "" when the subject has no template.
func (s *GenerationService) customPrompt(slug, subject, topic string) (string, error) {
	prompts, err := s.records.Prompts(slug)
	if err != nil {
		return "", err
	}
	template, ok := prompts[subject]
	if !ok || template == "" {
		return "", nil
	}
	return strings.ReplaceAll(template, promptPlaceholder, topic), nil
}
