package progress

// Status is a topic's qualitative study stage. The five values form a ring:
// advancing past Mastered wraps back to Pending (an explicit reset).
type Status string

const (
	StatusPending   Status = "pending"
	StatusSummary   Status = "summary"
	StatusQuestions Status = "questions"
	StatusReview24h Status = "review_24h"
	StatusMastered  Status = "mastered"
)

// statusRing fixes the toggle order.
var statusRing = []Status{
	StatusPending,
	StatusSummary,
	StatusQuestions,
	StatusReview24h,
	StatusMastered,
}

// Valid reports whether s is one of the five defined statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusSummary, StatusQuestions, StatusReview24h, StatusMastered:
		return true
	}
	return false
}

// Next returns the following status in the ring. Unknown values are treated
// as Pending, so Next is total.
func (s Status) Next() Status {
	for i, v := range statusRing {
		if v == s {
			return statusRing[(i+1)%len(statusRing)]
		}
	}
	return StatusSummary // pending → summary
}

// Parse normalizes a stored status string. Anything unrecognized (including
// the empty string for an absent entry) maps to Pending.
func Parse(raw string) Status {
	s := Status(raw)
	if !s.Valid() {
		return StatusPending
	}
	return s
}

// Map is the per-exam progress map: subject → topic → status.
type Map map[string]map[string]Status

// StatusOf returns the stored status for a topic, defaulting to Pending when
// no entry exists.
func (m Map) StatusOf(subject, topic string) Status {
	if topics, ok := m[subject]; ok {
		if s, ok := topics[topic]; ok && s.Valid() {
			return s
		}
	}
	return StatusPending
}

// Set assigns a status, creating the subject bucket if needed.
func (m Map) Set(subject, topic string, s Status) {
	topics, ok := m[subject]
	if !ok {
		topics = make(map[string]Status)
		m[subject] = topics
	}
	topics[topic] = s
}

// Toggle advances a topic one step along the ring and returns the new status.
func (m Map) Toggle(subject, topic string) Status {
	next := m.StatusOf(subject, topic).Next()
	m.Set(subject, topic, next)
	return next
}

// Promote moves a topic forward to target only if its current status is one
// of the listed stages. Used by side-effect promotions: generating a summary
// promotes pending→summary, logging questions promotes pending|summary→questions.
// Promotions never move a topic backward.
func (m Map) Promote(subject, topic string, target Status, from ...Status) bool {
	current := m.StatusOf(subject, topic)
	for _, f := range from {
		if current == f {
			m.Set(subject, topic, target)
			return true
		}
	}
	return false
}
