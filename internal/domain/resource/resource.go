package resource

import (
	"errors"
	"time"

	"github.com/estudotatico/backend/internal/id"
)

// RevisionPhase is a rung of the spaced-repetition ladder. It is independent
// of the study-status ring: a topic can be mastered and still cycle through
// maintenance revisions.
type RevisionPhase string

const (
	Phase24h         RevisionPhase = "24h"
	Phase7d          RevisionPhase = "7d"
	Phase30d         RevisionPhase = "30d"
	PhaseMaintenance RevisionPhase = "maintenance"
)

// Valid reports whether p is one of the four ladder rungs.
func (p RevisionPhase) Valid() bool {
	switch p {
	case Phase24h, Phase7d, Phase30d, PhaseMaintenance:
		return true
	}
	return false
}

// ParsePhase normalizes a stored phase string; anything unrecognized defaults
// to the first rung.
func ParsePhase(raw string) RevisionPhase {
	p := RevisionPhase(raw)
	if !p.Valid() {
		return Phase24h
	}
	return p
}

// VideoLink is a user-registered lecture link for a topic.
type VideoLink struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Draft is a free-form note attached to a topic.
type Draft struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

// QuestionSession is one immutable practice-question outcome. Sessions are
// append-only; statistics are derived by summing them.
type QuestionSession struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Total   int    `json:"total"`
	Correct int    `json:"correct"`
}

// TopicResources bundles everything attached to a (subject, topic) pair.
// Field names match the persisted JSON documents.
type TopicResources struct {
	VideoLinks      []VideoLink       `json:"videoLinks"`
	Summary         string            `json:"summary,omitempty"`
	FullMaterial    string            `json:"fullMaterial,omitempty"`
	Drafts          []Draft           `json:"drafts,omitempty"`
	QuestionHistory []QuestionSession `json:"questionHistory,omitempty"`

	LastStudiedAt    string        `json:"lastStudiedAt,omitempty"`
	NextRevisionDate string        `json:"nextRevisionDate,omitempty"`
	RevisionPhase    RevisionPhase `json:"revisionPhase,omitempty"`
}

// HasStudyMaterial reports whether a summary or full material has been stored.
// Completing a revision in summary mode requires it.
func (tr *TopicResources) HasStudyMaterial() bool {
	return tr.Summary != "" || tr.FullMaterial != ""
}

// ErrInvalidSession is returned when a question session fails the basic
// invariants (total ≥ 1, 0 ≤ correct ≤ total).
var ErrInvalidSession = errors.New("invalid question session")

// NewQuestionSession validates and builds a session record dated now.
func NewQuestionSession(total, correct int, now time.Time) (QuestionSession, error) {
	if total <= 0 || correct < 0 || correct > total {
		return QuestionSession{}, ErrInvalidSession
	}
	return QuestionSession{
		ID:      id.GenerateID(),
		Date:    now.Format("2006-01-02"),
		Total:   total,
		Correct: correct,
	}, nil
}

// Map holds all topic resources of one exam: subject → topic → resources.
type Map map[string]map[string]*TopicResources

// Topic returns the resource bundle for a topic, or nil when none exists.
func (m Map) Topic(subject, topic string) *TopicResources {
	if topics, ok := m[subject]; ok {
		return topics[topic]
	}
	return nil
}

// Ensure returns the resource bundle for a topic, creating an empty one
// (and the subject bucket) if needed.
func (m Map) Ensure(subject, topic string) *TopicResources {
	topics, ok := m[subject]
	if !ok {
		topics = make(map[string]*TopicResources)
		m[subject] = topics
	}
	tr, ok := topics[topic]
	if !ok {
		tr = &TopicResources{VideoLinks: []VideoLink{}}
		topics[topic] = tr
	}
	return tr
}

// AppendSession validates and appends a question session to a topic.
func (m Map) AppendSession(subject, topic string, total, correct int, now time.Time) (QuestionSession, error) {
	session, err := NewQuestionSession(total, correct, now)
	if err != nil {
		return QuestionSession{}, err
	}
	tr := m.Ensure(subject, topic)
	tr.QuestionHistory = append(tr.QuestionHistory, session)
	return session, nil
}
