package dailytask

import (
	"strings"
	"time"
)

// Category routes a study activity to one of the three tracked question
// counters.
type Category string

const (
	CategoryPortuguese Category = "portuguese"
	CategoryMath       Category = "math"
	CategoryLaw        Category = "law"
	CategoryOther      Category = "other"
)

var keywordCategories = []struct {
	category Category
	keywords []string
}{
	{CategoryPortuguese, []string{"portugu", "gramática", "texto", "redação", "sintaxe"}},
	{CategoryMath, []string{"matemática", "raciocínio", "lógico", "estatística", "geometria", "exatas"}},
	{CategoryLaw, []string{"direito", "lei", "constitucional", "penal", "processo", "administrativo", "legislação", "criminologia"}},
}

// Categorize classifies a subject name by keyword. Matching is
// case-insensitive substring search; the first matching group wins.
func Categorize(subject string) Category {
	s := strings.ToLower(subject)
	for _, group := range keywordCategories {
		for _, kw := range group.keywords {
			if strings.Contains(s, kw) {
				return group.category
			}
		}
	}
	return CategoryOther
}

// Targets are the fixed daily goals. Hitting a target caps the counter's
// progress display but increments keep accumulating.
type Targets struct {
	FlashCount          int `json:"flashCount"`
	QuestionsPortuguese int `json:"questionsPortuguese"`
	QuestionsMath       int `json:"questionsMath"`
	QuestionsLaw        int `json:"questionsLaw"`
	VideoWatched        int `json:"videoWatched"`
}

// DefaultTargets returns the daily goals.
func DefaultTargets() Targets {
	return Targets{
		FlashCount:          5,
		QuestionsPortuguese: 10,
		QuestionsMath:       10,
		QuestionsLaw:        10,
		VideoWatched:        1,
	}
}

// Metrics is the persisted counter set for one calendar day. Field names
// match the stored JSON document.
type Metrics struct {
	Date                string `json:"date"`
	FlashCount          int    `json:"flashCount"`
	QuestionsPortuguese int    `json:"questionsPortuguese"`
	QuestionsMath       int    `json:"questionsMath"`
	QuestionsLaw        int    `json:"questionsLaw"`
	VideoWatched        int    `json:"videoWatched"`
}

// DateFormat is the calendar-day key used for rollover comparison.
const DateFormat = "2006-01-02"

// NewMetrics returns zeroed counters dated now.
func NewMetrics(now time.Time) Metrics {
	return Metrics{Date: now.Format(DateFormat)}
}

// Rollover resets the counters when the stored date is not today. It returns
// the metrics to use and whether a reset happened.
func Rollover(m Metrics, now time.Time) (Metrics, bool) {
	today := now.Format(DateFormat)
	if m.Date == today {
		return m, false
	}
	return Metrics{Date: today}, true
}

// AddQuestions adds a finished question batch to the counter of its subject's
// category. Uncategorized subjects are not tracked.
func (m *Metrics) AddQuestions(subject string, count int) Category {
	c := Categorize(subject)
	switch c {
	case CategoryPortuguese:
		m.QuestionsPortuguese += count
	case CategoryMath:
		m.QuestionsMath += count
	case CategoryLaw:
		m.QuestionsLaw += count
	}
	return c
}

// AddFlash counts reviewed flash cards.
func (m *Metrics) AddFlash(count int) {
	m.FlashCount += count
}

// MarkVideoWatched counts one watched lecture.
func (m *Metrics) MarkVideoWatched() {
	m.VideoWatched++
}

// Complete reports whether every counter has reached its target.
func (m Metrics) Complete(t Targets) bool {
	return m.FlashCount >= t.FlashCount &&
		m.QuestionsPortuguese >= t.QuestionsPortuguese &&
		m.QuestionsMath >= t.QuestionsMath &&
		m.QuestionsLaw >= t.QuestionsLaw &&
		m.VideoWatched >= t.VideoWatched
}
