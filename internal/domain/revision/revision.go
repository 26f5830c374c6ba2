package revision

import (
	"sort"
	"time"

	"github.com/estudotatico/backend/internal/domain/resource"
)

// Outcome is the result of completing one revision: the next ladder rung and
// when the topic comes due again.
type Outcome struct {
	Phase   resource.RevisionPhase
	NextDue time.Time
}

// Advance applies the ladder transition for a completed revision.
//
//	24h → 7d   (due again in 7 days)
//	7d  → 30d  (due again in 30 days)
//	30d and maintenance → maintenance (due again in 30 days, indefinitely)
func Advance(phase resource.RevisionPhase, now time.Time) Outcome {
	switch phase {
	case resource.Phase24h:
		return Outcome{Phase: resource.Phase7d, NextDue: now.AddDate(0, 0, 7)}
	case resource.Phase7d:
		return Outcome{Phase: resource.Phase30d, NextDue: now.AddDate(0, 0, 30)}
	default:
		return Outcome{Phase: resource.PhaseMaintenance, NextDue: now.AddDate(0, 0, 30)}
	}
}

// Apply stamps a completed revision onto a topic's resources: advances the
// phase, schedules the next due date and records the study time.
func Apply(tr *resource.TopicResources, now time.Time) Outcome {
	out := Advance(resource.ParsePhase(string(tr.RevisionPhase)), now)
	tr.LastStudiedAt = now.Format(time.RFC3339)
	tr.NextRevisionDate = out.NextDue.Format(time.RFC3339)
	tr.RevisionPhase = out.Phase
	return out
}

// Item is one entry of the due-revision queue. Derived at read time, never
// stored.
type Item struct {
	ExamName string                   `json:"examName"`
	ExamSlug string                   `json:"examSlug"`
	Subject  string                   `json:"subject"`
	Topic    string                   `json:"topic"`
	Phase    resource.RevisionPhase   `json:"phase"`
	DueDate  time.Time                `json:"dueDate"`
	Resource *resource.TopicResources `json:"resource"`
}

// Collect appends every due topic of one exam's resource map to the queue.
//
// A topic is due when its next revision date has passed, or when it has
// question history but was never scheduled (bootstrap: treated as immediately
// due at the first rung).
func Collect(queue []Item, examName, examSlug string, resources resource.Map, now time.Time) []Item {
	for subject, topics := range resources {
		for topic, tr := range topics {
			if tr.NextRevisionDate != "" {
				due, err := time.Parse(time.RFC3339, tr.NextRevisionDate)
				if err != nil || due.After(now) {
					continue
				}
				queue = append(queue, Item{
					ExamName: examName,
					ExamSlug: examSlug,
					Subject:  subject,
					Topic:    topic,
					Phase:    resource.ParsePhase(string(tr.RevisionPhase)),
					DueDate:  due,
					Resource: tr,
				})
			} else if len(tr.QuestionHistory) > 0 {
				queue = append(queue, Item{
					ExamName: examName,
					ExamSlug: examSlug,
					Subject:  subject,
					Topic:    topic,
					Phase:    resource.Phase24h,
					DueDate:  now,
					Resource: tr,
				})
			}
		}
	}
	return queue
}

// Sort orders a queue most-overdue first, breaking ties by exam, subject and
// topic so the listing is stable.
func Sort(queue []Item) {
	sort.Slice(queue, func(i, j int) bool {
		if !queue[i].DueDate.Equal(queue[j].DueDate) {
			return queue[i].DueDate.Before(queue[j].DueDate)
		}
		if queue[i].ExamName != queue[j].ExamName {
			return queue[i].ExamName < queue[j].ExamName
		}
		if queue[i].Subject != queue[j].Subject {
			return queue[i].Subject < queue[j].Subject
		}
		return queue[i].Topic < queue[j].Topic
	})
}
