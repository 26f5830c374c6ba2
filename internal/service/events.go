// internal/service/events.go
package service

// TaskKind identifies which daily counter a study activity feeds.
type TaskKind string

const (
	TaskQuestions TaskKind = "questions"
	TaskFlash     TaskKind = "flash"
	TaskVideo     TaskKind = "video"
)

// TaskEvent is emitted when a tracked study activity completes. Subject is
// set for question events so the listener can classify it; Count carries how
// many units (questions answered, cards reviewed) the activity produced.
type TaskEvent struct {
	Kind    TaskKind
	Subject string
	Count   int
}

// TaskListener receives task events. Listeners are registered explicitly on
// the services that emit them; there is no global bus.
type TaskListener func(TaskEvent)

// taskNotifier is embedded by services that emit task events.
type taskNotifier struct {
	listeners []TaskListener
}

// RegisterTaskListener adds a listener. Registration happens during wiring,
// before the server starts; it is not safe to call concurrently with emits.
func (n *taskNotifier) RegisterTaskListener(l TaskListener) {
	n.listeners = append(n.listeners, l)
}

func (n *taskNotifier) notify(e TaskEvent) {
	for _, l := range n.listeners {
		l(e)
	}
}
