package api

import (
	"net/http"

	"github.com/estudotatico/backend/internal/domain/exam"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateExamRequest struct {
	Name     string        `json:"name" validate:"required" example:"Polícia Federal 2025"`
	Status   string        `json:"status" example:"edital publicado"`
	Board    string        `json:"board" example:"Cebraspe"`
	Format   exam.Format   `json:"format"`
	Subjects []SubjectSpec `json:"subjects" validate:"dive"`
}

type SubjectSpec struct {
	Name   string   `json:"name" validate:"required" example:"Direito Penal"`
	Topics []string `json:"topics" example:"Furto,Roubo"`
}

type ExamResponse struct {
	Slug string     `json:"slug" example:"polícia_federal_2025"`
	Exam *exam.Exam `json:"exam"`
}

type AddSubjectRequest struct {
	Name string `json:"name" validate:"required" example:"Português"`
}

type AddTopicRequest struct {
	Name string `json:"name" validate:"required" example:"Crase"`
}

func examResponse(e *exam.Exam) ExamResponse {
	return ExamResponse{Slug: e.Slug(), Exam: e}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createExam registers a new exam with its programme.
// @Summary      Create an exam
// @Description  Register an exam with its subjects and topic lists. The slug is derived from the name.
// @Tags         Exams
// @Accept       json
// @Produce      json
// @Param        body  body      CreateExamRequest  true  "Exam to create"
// @Success      201   {object}  ExamResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string  "slug already in use"
// @Router       /exams [post]
func (h *Handler) createExam(w http.ResponseWriter, r *http.Request) {
	var req CreateExamRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	subjects := make([]exam.Subject, len(req.Subjects))
	for i, s := range req.Subjects {
		subjects[i] = exam.Subject{Name: s.Name, Topics: s.Topics}
	}

	created, err := h.exams.Create(exam.Info{
		Name:   req.Name,
		Status: req.Status,
		Board:  req.Board,
		Format: req.Format,
	}, subjects)
	if h.handleError(w, err) {
		return
	}

	respondJSON(w, http.StatusCreated, examResponse(created))
}

// listExams lists every registered exam.
// @Summary      List exams
// @Tags         Exams
// @Produce      json
// @Success      200  {array}   ExamResponse
// @Failure      500  {object}  map[string]string
// @Router       /exams [get]
func (h *Handler) listExams(w http.ResponseWriter, r *http.Request) {
	exams, err := h.exams.List()
	if h.handleError(w, err) {
		return
	}

	response := make([]ExamResponse, len(exams))
	for i, e := range exams {
		response[i] = examResponse(e)
	}
	respondJSON(w, http.StatusOK, response)
}

// getExam returns one exam by slug.
// @Summary      Get an exam
// @Tags         Exams
// @Produce      json
// @Param        slug  path      string  true  "Exam slug"
// @Success      200   {object}  ExamResponse
// @Failure      404   {object}  map[string]string
// @Router       /exams/{slug} [get]
func (h *Handler) getExam(w http.ResponseWriter, r *http.Request) {
	e, err := h.exams.Get(r.PathValue("slug"))
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, examResponse(e))
}

// deleteExam removes an exam and everything stored under its slug.
// @Summary      Delete an exam
// @Description  Removes the exam plus its progress, resources, mock exams and prompt templates.
// @Tags         Exams
// @Param        slug  path  string  true  "Exam slug"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /exams/{slug} [delete]
func (h *Handler) deleteExam(w http.ResponseWriter, r *http.Request) {
	if h.handleError(w, h.exams.Delete(r.PathValue("slug"))) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// addSubject appends a subject to an exam.
// @Summary      Add a subject
// @Tags         Exams
// @Accept       json
// @Produce      json
// @Param        slug  path      string             true  "Exam slug"
// @Param        body  body      AddSubjectRequest  true  "Subject to add"
// @Success      200   {object}  ExamResponse
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /exams/{slug}/subjects [post]
func (h *Handler) addSubject(w http.ResponseWriter, r *http.Request) {
	var req AddSubjectRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	e, err := h.exams.AddSubject(r.PathValue("slug"), req.Name)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, examResponse(e))
}

// removeSubject deletes a subject and its topics.
// @Summary      Remove a subject
// @Tags         Exams
// @Produce      json
// @Param        slug     path      string  true  "Exam slug"
// @Param        subject  path      string  true  "Subject name"
// @Success      200      {object}  ExamResponse
// @Failure      404      {object}  map[string]string
// @Router       /exams/{slug}/subjects/{subject} [delete]
func (h *Handler) removeSubject(w http.ResponseWriter, r *http.Request) {
	e, err := h.exams.RemoveSubject(r.PathValue("slug"), r.PathValue("subject"))
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, examResponse(e))
}

// addTopic appends a topic to a subject.
// @Summary      Add a topic
// @Tags         Exams
// @Accept       json
// @Produce      json
// @Param        slug     path      string           true  "Exam slug"
// @Param        subject  path      string           true  "Subject name"
// @Param        body     body      AddTopicRequest  true  "Topic to add"
// @Success      200      {object}  ExamResponse
// @Failure      404      {object}  map[string]string
// @Failure      409      {object}  map[string]string
// @Router       /exams/{slug}/subjects/{subject}/topics [post]
func (h *Handler) addTopic(w http.ResponseWriter, r *http.Request) {
	var req AddTopicRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	e, err := h.exams.AddTopic(r.PathValue("slug"), r.PathValue("subject"), req.Name)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, examResponse(e))
}

// removeTopic deletes a topic from a subject.
// @Summary      Remove a topic
// @Tags         Exams
// @Produce      json
// @Param        slug     path      string  true  "Exam slug"
// @Param        subject  path      string  true  "Subject name"
// @Param        topic    path      string  true  "Topic name"
// @Success      200      {object}  ExamResponse
// @Failure      404      {object}  map[string]string
// @Router       /exams/{slug}/subjects/{subject}/topics/{topic} [delete]
func (h *Handler) removeTopic(w http.ResponseWriter, r *http.Request) {
	e, err := h.exams.RemoveTopic(r.PathValue("slug"), r.PathValue("subject"), r.PathValue("topic"))
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, examResponse(e))
}

// refreshSyllabus merges AI-fetched programme content into the exam.
// @Summary      Refresh the syllabus
// @Description  Asks the AI for the exam's programme and merges new subjects and topics. Best effort; the exam is untouched on failure.
// @Tags         Exams
// @Produce      json
// @Param        slug  path      string  true  "Exam slug"
// @Success      200   {object}  ExamResponse
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string  "generation failed"
// @Router       /exams/{slug}/syllabus-refresh [post]
func (h *Handler) refreshSyllabus(w http.ResponseWriter, r *http.Request) {
	e, err := h.gen.RefreshSyllabus(r.Context(), r.PathValue("slug"))
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, examResponse(e))
}
