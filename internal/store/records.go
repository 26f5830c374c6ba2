package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/estudotatico/backend/internal/domain/dailytask"
	"github.com/estudotatico/backend/internal/domain/exam"
	"github.com/estudotatico/backend/internal/domain/flashdeck"
	"github.com/estudotatico/backend/internal/domain/mockexam"
	"github.com/estudotatico/backend/internal/domain/progress"
	"github.com/estudotatico/backend/internal/domain/resource"
)

// Records is the typed layer over the KV port. Each method loads or replaces
// one whole JSON document; a missing document reads as its zero value, and
// malformed stored JSON is surfaced to the caller.
type Records struct {
	kv   KV
	keys Keys
}

func NewRecords(kv KV, userID string) *Records {
	return &Records{kv: kv, keys: Keys{UserID: userID}}
}

// Keys exposes the key layout, used by export and import.
func (r *Records) Keys() Keys {
	return r.keys
}

// KV exposes the raw port, used by export and import.
func (r *Records) KV() KV {
	return r.kv
}

func (r *Records) load(key string, out any) error {
	raw, err := r.kv.Get(key)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("corrupt record %s: %w", key, err)
	}
	return nil
}

func (r *Records) save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.kv.Set(key, raw)
}

func (r *Records) Exams() ([]*exam.Exam, error) {
	var exams []*exam.Exam
	if err := r.load(r.keys.Exams(), &exams); err != nil {
		return nil, err
	}
	return exams, nil
}

func (r *Records) SaveExams(exams []*exam.Exam) error {
	return r.save(r.keys.Exams(), exams)
}

func (r *Records) Progress(slug string) (progress.Map, error) {
	m := progress.Map{}
	if err := r.load(r.keys.Progress(slug), &m); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *Records) SaveProgress(slug string, m progress.Map) error {
	return r.save(r.keys.Progress(slug), m)
}

func (r *Records) Resources(slug string) (resource.Map, error) {
	m := resource.Map{}
	if err := r.load(r.keys.Resources(slug), &m); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *Records) SaveResources(slug string, m resource.Map) error {
	return r.save(r.keys.Resources(slug), m)
}

func (r *Records) Mocks(slug string) ([]*mockexam.MockExam, error) {
	var mocks []*mockexam.MockExam
	if err := r.load(r.keys.Mocks(slug), &mocks); err != nil {
		return nil, err
	}
	return mocks, nil
}

func (r *Records) SaveMocks(slug string, mocks []*mockexam.MockExam) error {
	return r.save(r.keys.Mocks(slug), mocks)
}

// Prompts maps subject name to its custom prompt template.
func (r *Records) Prompts(slug string) (map[string]string, error) {
	prompts := map[string]string{}
	if err := r.load(r.keys.Prompts(slug), &prompts); err != nil {
		return nil, err
	}
	return prompts, nil
}

func (r *Records) SavePrompts(slug string, prompts map[string]string) error {
	return r.save(r.keys.Prompts(slug), prompts)
}

func (r *Records) DailyTasks() (dailytask.Metrics, error) {
	var m dailytask.Metrics
	if err := r.load(r.keys.DailyTasks(), &m); err != nil {
		return dailytask.Metrics{}, err
	}
	return m, nil
}

func (r *Records) SaveDailyTasks(m dailytask.Metrics) error {
	return r.save(r.keys.DailyTasks(), m)
}

func (r *Records) FlashDecks() ([]*flashdeck.Deck, error) {
	var decks []*flashdeck.Deck
	if err := r.load(r.keys.FlashDecks(), &decks); err != nil {
		return nil, err
	}
	return decks, nil
}

func (r *Records) SaveFlashDecks(decks []*flashdeck.Deck) error {
	return r.save(r.keys.FlashDecks(), decks)
}

// DeleteExamData removes every per-slug document of one exam. Missing
// documents are not an error; deleting an exam that never stored progress
// still succeeds.
func (r *Records) DeleteExamData(slug string) error {
	keys := []string{
		r.keys.Progress(slug),
		r.keys.Resources(slug),
		r.keys.Mocks(slug),
		r.keys.Prompts(slug),
	}
	for _, key := range keys {
		if err := r.kv.Delete(key); err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
	}
	return nil
}
