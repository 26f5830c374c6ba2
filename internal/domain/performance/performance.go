package performance

import (
	"math"
	"sort"

	"github.com/estudotatico/backend/internal/domain/resource"
)

// Rating classifies an accuracy percentage for dashboard coloring.
// Thresholds are fixed: ≥80 good, ≥65 medium, below that bad.
type Rating string

const (
	RatingGood   Rating = "good"
	RatingMedium Rating = "medium"
	RatingBad    Rating = "bad"
)

// Rate maps an accuracy percentage to its rating band.
func Rate(accuracy int) Rating {
	switch {
	case accuracy >= 80:
		return RatingGood
	case accuracy >= 65:
		return RatingMedium
	default:
		return RatingBad
	}
}

// Stats is a summed question tally with its derived accuracy percentage.
type Stats struct {
	Total    int `json:"total"`
	Correct  int `json:"correct"`
	Accuracy int `json:"accuracy"`
}

// Rating returns the rating band for the accumulated accuracy.
func (s Stats) Rating() Rating {
	return Rate(s.Accuracy)
}

func (s *Stats) add(sessions []resource.QuestionSession) {
	for _, q := range sessions {
		s.Total += q.Total
		s.Correct += q.Correct
	}
}

func (s *Stats) finish() {
	if s.Total > 0 {
		s.Accuracy = int(math.Round(100 * float64(s.Correct) / float64(s.Total)))
	}
}

// TopicStats sums all question sessions of one topic.
func TopicStats(resources resource.Map, subject, topic string) Stats {
	var s Stats
	if tr := resources.Topic(subject, topic); tr != nil {
		s.add(tr.QuestionHistory)
	}
	s.finish()
	return s
}

// SubjectStats sums all question sessions across every topic of a subject.
func SubjectStats(resources resource.Map, subject string) Stats {
	var s Stats
	for _, tr := range resources[subject] {
		s.add(tr.QuestionHistory)
	}
	s.finish()
	return s
}

// ExamStats sums every question session stored for one exam.
func ExamStats(resources resource.Map) Stats {
	var s Stats
	for subject := range resources {
		for _, tr := range resources[subject] {
			s.add(tr.QuestionHistory)
		}
	}
	s.finish()
	return s
}

// TopicMetric is one topic row of a performance report.
type TopicMetric struct {
	Name    string `json:"name"`
	Total   int    `json:"total"`
	Correct int    `json:"correct"`
	Percent int    `json:"percentage"`
	Rating  Rating `json:"status"`
}

// SubjectMetric aggregates one subject with its topic breakdown.
type SubjectMetric struct {
	Subject string        `json:"subject"`
	Total   int           `json:"total"`
	Correct int           `json:"correct"`
	Percent int           `json:"percentage"`
	Rating  Rating        `json:"status"`
	Topics  []TopicMetric `json:"topics"`
}

// Report builds the per-subject performance breakdown across any number of
// exams' resource maps. Subjects and topics are sorted worst-first so the
// weakest areas surface at the top.
func Report(maps ...resource.Map) []SubjectMetric {
	type tally struct {
		total, correct int
		topics         map[string]*Stats
	}
	bySubject := make(map[string]*tally)

	for _, m := range maps {
		for subject, topics := range m {
			t, ok := bySubject[subject]
			if !ok {
				t = &tally{topics: make(map[string]*Stats)}
				bySubject[subject] = t
			}
			for topic, tr := range topics {
				for _, q := range tr.QuestionHistory {
					t.total += q.Total
					t.correct += q.Correct
					ts, ok := t.topics[topic]
					if !ok {
						ts = &Stats{}
						t.topics[topic] = ts
					}
					ts.Total += q.Total
					ts.Correct += q.Correct
				}
			}
		}
	}

	report := make([]SubjectMetric, 0, len(bySubject))
	for subject, t := range bySubject {
		metric := SubjectMetric{
			Subject: subject,
			Total:   t.total,
			Correct: t.correct,
		}
		if t.total > 0 {
			metric.Percent = int(math.Round(100 * float64(t.correct) / float64(t.total)))
		}
		metric.Rating = Rate(metric.Percent)

		for name, ts := range t.topics {
			ts.finish()
			metric.Topics = append(metric.Topics, TopicMetric{
				Name:    name,
				Total:   ts.Total,
				Correct: ts.Correct,
				Percent: ts.Accuracy,
				Rating:  Rate(ts.Accuracy),
			})
		}
		sort.Slice(metric.Topics, func(i, j int) bool {
			if metric.Topics[i].Percent != metric.Topics[j].Percent {
				return metric.Topics[i].Percent < metric.Topics[j].Percent
			}
			return metric.Topics[i].Name < metric.Topics[j].Name
		})
		report = append(report, metric)
	}

	sort.Slice(report, func(i, j int) bool {
		if report[i].Percent != report[j].Percent {
			return report[i].Percent < report[j].Percent
		}
		return report[i].Subject < report[j].Subject
	})
	return report
}
