package api

import (
	"net/http"

	"github.com/estudotatico/backend/internal/generator"
)

// ── Request / Response types ────────────────────────────────────────────────

type GenerateContentRequest struct {
	TopicRef
	Mode string `json:"mode" validate:"required,oneof=summary full" example:"summary"`
}

type GenerateContentResponse struct {
	Content string `json:"content"`
}

type BulkGenerateRequest struct {
	Subject string `json:"subject" validate:"required" example:"Direito Penal"`
	Mode    string `json:"mode" validate:"required,oneof=summary full" example:"summary"`
}

type QuizRequest struct {
	Subject string `json:"subject" validate:"required" example:"Direito Penal"`
	Topic   string `json:"topic" validate:"required" example:"Furto"`
	Count   int    `json:"count" validate:"min=1,max=20" example:"5"`
}

type SetPromptRequest struct {
	Subject  string `json:"subject" validate:"required" example:"Direito Penal"`
	Template string `json:"template" example:"Explique ( ) citando o CP"`
}

type AnalysisResponse struct {
	Analysis string `json:"analysis"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// generateContent generates and stores study material for a topic.
// @Summary      Generate study content
// @Description  Generates a summary or full material and stores it on the topic. A pending topic is promoted to summary. Subjects with a custom prompt template use it, with the placeholder replaced by the topic.
// @Tags         Generation
// @Accept       json
// @Produce      json
// @Param        slug  path      string                  true  "Exam slug"
// @Param        body  body      GenerateContentRequest  true  "What to generate"
// @Success      200   {object}  GenerateContentResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string  "generation failed"
// @Router       /exams/{slug}/generate [post]
func (h *Handler) generateContent(w http.ResponseWriter, r *http.Request) {
	var req GenerateContentRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	text, err := h.gen.GenerateStudyContent(r.Context(), r.PathValue("slug"), req.Subject, req.Topic, generator.ContentMode(req.Mode))
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, GenerateContentResponse{Content: text})
}

// bulkGenerate generates material for every topic of a subject.
// @Summary      Bulk generate a subject
// @Description  Generates material for each topic with bounded concurrency. Per-topic failures are reported; the run continues past them.
// @Tags         Generation
// @Accept       json
// @Produce      json
// @Param        slug  path      string               true  "Exam slug"
// @Param        body  body      BulkGenerateRequest  true  "Subject to cover"
// @Success      200   {array}   service.BulkResult
// @Failure      404   {object}  map[string]string  "unknown subject"
// @Router       /exams/{slug}/generate/bulk [post]
func (h *Handler) bulkGenerate(w http.ResponseWriter, r *http.Request) {
	var req BulkGenerateRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	results, err := h.gen.BulkGenerate(r.Context(), r.PathValue("slug"), req.Subject, generator.ContentMode(req.Mode))
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, results)
}

// getPrompts lists the exam's custom prompt templates per subject.
// @Summary      Get prompt templates
// @Tags         Generation
// @Produce      json
// @Param        slug  path      string  true  "Exam slug"
// @Success      200   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /exams/{slug}/prompts [get]
func (h *Handler) getPrompts(w http.ResponseWriter, r *http.Request) {
	prompts, err := h.gen.Prompts(r.PathValue("slug"))
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, prompts)
}

// setPrompt stores or clears a subject's prompt template.
// @Summary      Set a prompt template
// @Description  An empty template removes the subject's override.
// @Tags         Generation
// @Accept       json
// @Param        slug  path  string            true  "Exam slug"
// @Param        body  body  SetPromptRequest  true  "Template"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Router       /exams/{slug}/prompts [put]
func (h *Handler) setPrompt(w http.ResponseWriter, r *http.Request) {
	var req SetPromptRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	if h.handleError(w, h.gen.SetPrompt(r.PathValue("slug"), req.Subject, req.Template)) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// generateQuiz creates practice questions for a topic.
// @Summary      Generate quiz questions
// @Description  Returns an empty list when generation fails; never errors on the AI's behalf.
// @Tags         Generation
// @Accept       json
// @Produce      json
// @Param        body  body      QuizRequest  true  "Quiz to generate"
// @Success      200   {array}   generator.QuizQuestion
// @Failure      400   {object}  map[string]string
// @Router       /quiz [post]
func (h *Handler) generateQuiz(w http.ResponseWriter, r *http.Request) {
	var req QuizRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	respondJSON(w, http.StatusOK, h.gen.Quiz(r.Context(), req.Subject, req.Topic, req.Count))
}

// getAnalysis turns the global performance report into study advice.
// @Summary      Performance analysis
// @Description  Returns a fixed fallback message when generation fails.
// @Tags         Generation
// @Produce      json
// @Success      200  {object}  AnalysisResponse
// @Router       /analysis [get]
func (h *Handler) getAnalysis(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, AnalysisResponse{
		Analysis: h.gen.Analysis(r.Context(), h.study),
	})
}
