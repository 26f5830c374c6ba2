package api

import (
	"net/http"

	"github.com/estudotatico/backend/internal/domain/progress"
)

// ── Request / Response types ────────────────────────────────────────────────

type TopicRef struct {
	Subject string `json:"subject" validate:"required" example:"Direito Penal"`
	Topic   string `json:"topic" validate:"required" example:"Furto"`
}

type ToggleStatusResponse struct {
	Subject string `json:"subject" example:"Direito Penal"`
	Topic   string `json:"topic" example:"Furto"`
	Status  string `json:"status" example:"summary"`
}

type SetStatusRequest struct {
	TopicRef
	Status string `json:"status" validate:"required" example:"mastered"`
}

type AddSessionRequest struct {
	TopicRef
	Total   int `json:"total" validate:"required,min=1" example:"10"`
	Correct int `json:"correct" validate:"min=0" example:"7"`
}

type SessionResponse struct {
	ID      string `json:"id"`
	Date    string `json:"date" example:"2025-03-10"`
	Total   int    `json:"total" example:"10"`
	Correct int    `json:"correct" example:"7"`
	Status  string `json:"status" example:"questions"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getProgress returns the exam's status map.
// @Summary      Get progress
// @Description  Subject → topic → study status. Topics without an entry are pending.
// @Tags         Progress
// @Produce      json
// @Param        slug  path      string  true  "Exam slug"
// @Success      200   {object}  map[string]map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /exams/{slug}/progress [get]
func (h *Handler) getProgress(w http.ResponseWriter, r *http.Request) {
	prog, err := h.study.Progress(r.PathValue("slug"))
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, prog)
}

// toggleStatus advances a topic one step along the status ring.
// @Summary      Toggle a topic's status
// @Description  pending → summary → questions → review_24h → mastered → pending.
// @Tags         Progress
// @Accept       json
// @Produce      json
// @Param        slug  path      string    true  "Exam slug"
// @Param        body  body      TopicRef  true  "Topic to toggle"
// @Success      200   {object}  ToggleStatusResponse
// @Failure      400   {object}  map[string]string
// @Router       /exams/{slug}/progress/toggle [post]
func (h *Handler) toggleStatus(w http.ResponseWriter, r *http.Request) {
	var req TopicRef
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	next, err := h.study.ToggleStatus(r.PathValue("slug"), req.Subject, req.Topic)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, ToggleStatusResponse{
		Subject: req.Subject,
		Topic:   req.Topic,
		Status:  string(next),
	})
}

// setStatus assigns a topic's status directly.
// @Summary      Set a topic's status
// @Tags         Progress
// @Accept       json
// @Produce      json
// @Param        slug  path      string            true  "Exam slug"
// @Param        body  body      SetStatusRequest  true  "Status to set"
// @Success      200   {object}  ToggleStatusResponse
// @Failure      400   {object}  map[string]string  "unknown status"
// @Router       /exams/{slug}/progress [put]
func (h *Handler) setStatus(w http.ResponseWriter, r *http.Request) {
	var req SetStatusRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	err := h.study.SetStatus(r.PathValue("slug"), req.Subject, req.Topic, progress.Status(req.Status))
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, ToggleStatusResponse{
		Subject: req.Subject,
		Topic:   req.Topic,
		Status:  req.Status,
	})
}

// addQuestionSession logs a finished question batch for a topic.
// @Summary      Log a question session
// @Description  Appends an immutable session to the topic's history. A pending or summary topic is promoted to questions. The batch also feeds the daily counters.
// @Tags         Progress
// @Accept       json
// @Produce      json
// @Param        slug  path      string             true  "Exam slug"
// @Param        body  body      AddSessionRequest  true  "Batch result"
// @Success      201   {object}  SessionResponse
// @Failure      400   {object}  map[string]string  "correct out of range"
// @Router       /exams/{slug}/questions [post]
func (h *Handler) addQuestionSession(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	var req AddSessionRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	session, err := h.study.AddQuestionSession(slug, req.Subject, req.Topic, req.Total, req.Correct)
	if h.handleError(w, err) {
		return
	}

	prog, err := h.study.Progress(slug)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusCreated, SessionResponse{
		ID:      session.ID,
		Date:    session.Date,
		Total:   session.Total,
		Correct: session.Correct,
		Status:  string(prog.StatusOf(req.Subject, req.Topic)),
	})
}

// getDashboard returns the exam overview.
// @Summary      Exam dashboard
// @Description  Topic completion counts plus the per-subject performance report, weakest subjects first.
// @Tags         Progress
// @Produce      json
// @Param        slug  path      string  true  "Exam slug"
// @Success      200   {object}  service.Dashboard
// @Failure      500   {object}  map[string]string
// @Router       /exams/{slug}/dashboard [get]
func (h *Handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.study.ExamDashboard(r.PathValue("slug"))
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, d)
}

// getGlobalReport merges every exam's history into one report.
// @Summary      Global performance report
// @Tags         Progress
// @Produce      json
// @Success      200  {array}   performance.SubjectMetric
// @Failure      500  {object}  map[string]string
// @Router       /report [get]
func (h *Handler) getGlobalReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.study.GlobalReport()
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, report)
}
