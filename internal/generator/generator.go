package generator

import "context"

// ContentMode selects how much study material to generate for a topic.
type ContentMode string

const (
	ModeSummary ContentMode = "summary"
	ModeFull    ContentMode = "full"
)

// QuizQuestion is one generated multiple-choice question.
type QuizQuestion struct {
	Statement     string   `json:"statement"`
	Options       []string `json:"options"`
	CorrectIndex  int      `json:"correctIndex"`
	Justification string   `json:"justification"`
}

// LawFlash is one generated statute flash card.
type LawFlash struct {
	Article string `json:"article"`
	Summary string `json:"summary"`
	IsLong  bool   `json:"isLong"`
	Tip     string `json:"tip"`
}

// SubjectSyllabus is one subject of a generated syllabus.
type SubjectSyllabus struct {
	Subject string   `json:"subject"`
	Topics  []string `json:"topics"`
}

// Generator produces study content by calling an LLM.
// Implementations may call a remote model or return canned results (for tests).
type Generator interface {
	// StudyContent returns HTML study material for a topic. An empty
	// customPrompt uses the built-in prompt for the mode.
	StudyContent(ctx context.Context, subject, topic string, mode ContentMode, customPrompt string) (string, error)

	// QuizQuestions generates count multiple-choice questions for a topic.
	QuizQuestions(ctx context.Context, subject, topic string, count int) ([]QuizQuestion, error)

	// LawFlash generates one flash card for an article of the given statute.
	LawFlash(ctx context.Context, lawName string) (LawFlash, error)

	// Analysis turns a performance report (as JSON) into study advice.
	Analysis(ctx context.Context, reportJSON string) (string, error)

	// Syllabus fetches the published programme for an exam.
	Syllabus(ctx context.Context, examName string) ([]SubjectSyllabus, error)
}
