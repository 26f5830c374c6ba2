package exam

import (
	"errors"
	"strings"
)

// Format describes how the exam's objective test is structured.
type Format struct {
	Type         string `json:"tipo"`
	Alternatives int    `json:"alternativas"`
	Questions    int    `json:"total_questoes"`
}

// Info is the exam header: name, publication status and examining board.
type Info struct {
	Name   string `json:"nome"`
	Status string `json:"status"`
	Board  string `json:"banca"`
	Format Format `json:"formato_prova"`
}

// Subject is a named discipline with its ordered topic list.
type Subject struct {
	Name   string   `json:"disciplina"`
	Topics []string `json:"assuntos"`
}

// Exam is one saved exam: header plus programmatic content. Topics are plain
// strings; progress and resources reference them by (subject, topic) tuples,
// so renames are effectively delete+add.
type Exam struct {
	Info     Info      `json:"concurso_info"`
	Subjects []Subject `json:"conteudo_programatico"`
}

var (
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrSubjectExists   = errors.New("subject already exists")
	ErrSubjectNotFound = errors.New("subject not found")
	ErrTopicExists     = errors.New("topic already exists")
	ErrTopicNotFound   = errors.New("topic not found")
)

// New creates an exam with no subjects.
func New(info Info) (*Exam, error) {
	if strings.TrimSpace(info.Name) == "" {
		return nil, ErrEmptyName
	}
	return &Exam{Info: info, Subjects: []Subject{}}, nil
}

// Slug derives the storage key fragment for an exam name: lowercase with
// whitespace runs collapsed to underscores. Matches the persisted key layout.
func Slug(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "_"))
}

// Slug returns the exam's own storage slug.
func (e *Exam) Slug() string {
	return Slug(e.Info.Name)
}

func (e *Exam) subject(name string) *Subject {
	for i := range e.Subjects {
		if e.Subjects[i].Name == name {
			return &e.Subjects[i]
		}
	}
	return nil
}

// AddSubject appends a new empty subject. Subject names are unique within an
// exam.
func (e *Exam) AddSubject(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if e.subject(name) != nil {
		return ErrSubjectExists
	}
	e.Subjects = append(e.Subjects, Subject{Name: name, Topics: []string{}})
	return nil
}

// RemoveSubject deletes a subject and its topic list.
func (e *Exam) RemoveSubject(name string) error {
	for i := range e.Subjects {
		if e.Subjects[i].Name == name {
			e.Subjects = append(e.Subjects[:i], e.Subjects[i+1:]...)
			return nil
		}
	}
	return ErrSubjectNotFound
}

// AddTopic appends a topic to a subject. Topic names are unique within their
// subject.
func (e *Exam) AddTopic(subject, topic string) error {
	if strings.TrimSpace(topic) == "" {
		return ErrEmptyName
	}
	s := e.subject(subject)
	if s == nil {
		return ErrSubjectNotFound
	}
	for _, t := range s.Topics {
		if t == topic {
			return ErrTopicExists
		}
	}
	s.Topics = append(s.Topics, topic)
	return nil
}

// RemoveTopic deletes a topic from a subject.
func (e *Exam) RemoveTopic(subject, topic string) error {
	s := e.subject(subject)
	if s == nil {
		return ErrSubjectNotFound
	}
	for i, t := range s.Topics {
		if t == topic {
			s.Topics = append(s.Topics[:i], s.Topics[i+1:]...)
			return nil
		}
	}
	return ErrTopicNotFound
}

// TopicCount returns the total number of topics across all subjects.
func (e *Exam) TopicCount() int {
	n := 0
	for _, s := range e.Subjects {
		n += len(s.Topics)
	}
	return n
}
