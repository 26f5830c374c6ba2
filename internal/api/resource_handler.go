package api

import (
	"net/http"
)

// ── Request / Response types ────────────────────────────────────────────────

type AddVideoRequest struct {
	TopicRef
	Title string `json:"title" validate:"required" example:"Aula 01 — Furto"`
	URL   string `json:"url" validate:"required,url" example:"https://youtube.com/watch?v=abc"`
}

type RenameVideoRequest struct {
	TopicRef
	Title string `json:"title" validate:"required" example:"Aula 01 (revisada)"`
}

type AddDraftRequest struct {
	TopicRef
	Title   string `json:"title" example:"Anotações de aula"`
	Content string `json:"content" validate:"required"`
}

type UpdateDraftRequest struct {
	TopicRef
	Title   string `json:"title"`
	Content string `json:"content" validate:"required"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getResources returns every topic resource bundle of an exam.
// @Summary      Get topic resources
// @Description  Subject → topic → videos, generated material, drafts, question history and revision fields.
// @Tags         Resources
// @Produce      json
// @Param        slug  path      string  true  "Exam slug"
// @Success      200   {object}  map[string]map[string]resource.TopicResources
// @Failure      500   {object}  map[string]string
// @Router       /exams/{slug}/resources [get]
func (h *Handler) getResources(w http.ResponseWriter, r *http.Request) {
	resources, err := h.study.Resources(r.PathValue("slug"))
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, resources)
}

// addVideo registers a lecture link on a topic.
// @Summary      Add a video link
// @Tags         Resources
// @Accept       json
// @Produce      json
// @Param        slug  path      string           true  "Exam slug"
// @Param        body  body      AddVideoRequest  true  "Video to add"
// @Success      201   {object}  resource.VideoLink
// @Failure      400   {object}  map[string]string
// @Router       /exams/{slug}/videos [post]
func (h *Handler) addVideo(w http.ResponseWriter, r *http.Request) {
	var req AddVideoRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	video, err := h.study.AddVideo(r.PathValue("slug"), req.Subject, req.Topic, req.Title, req.URL)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusCreated, video)
}

// renameVideo updates a video's title.
// @Summary      Rename a video link
// @Tags         Resources
// @Accept       json
// @Param        slug     path  string              true  "Exam slug"
// @Param        videoID  path  string              true  "Video id"
// @Param        body     body  RenameVideoRequest  true  "New title"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /exams/{slug}/videos/{videoID} [patch]
func (h *Handler) renameVideo(w http.ResponseWriter, r *http.Request) {
	var req RenameVideoRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	err := h.study.RenameVideo(r.PathValue("slug"), req.Subject, req.Topic, r.PathValue("videoID"), req.Title)
	if h.handleError(w, err) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// removeVideo deletes a video link. Subject and topic come as query params.
// @Summary      Remove a video link
// @Tags         Resources
// @Param        slug     path   string  true  "Exam slug"
// @Param        videoID  path   string  true  "Video id"
// @Param        subject  query  string  true  "Subject name"
// @Param        topic    query  string  true  "Topic name"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /exams/{slug}/videos/{videoID} [delete]
func (h *Handler) removeVideo(w http.ResponseWriter, r *http.Request) {
	subject := r.URL.Query().Get("subject")
	topic := r.URL.Query().Get("topic")
	if subject == "" || topic == "" {
		respondError(w, http.StatusBadRequest, "subject and topic query params are required")
		return
	}
	err := h.study.RemoveVideo(r.PathValue("slug"), subject, topic, r.PathValue("videoID"))
	if h.handleError(w, err) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// markVideoWatched counts one watched lecture toward the daily target.
// @Summary      Mark a video watched
// @Tags         Resources
// @Success      204
// @Router       /videos/watched [post]
func (h *Handler) markVideoWatched(w http.ResponseWriter, r *http.Request) {
	h.study.MarkVideoWatched()
	w.WriteHeader(http.StatusNoContent)
}

// addDraft creates a free-form note on a topic.
// @Summary      Add a draft
// @Tags         Resources
// @Accept       json
// @Produce      json
// @Param        slug  path      string           true  "Exam slug"
// @Param        body  body      AddDraftRequest  true  "Draft to create"
// @Success      201   {object}  resource.Draft
// @Failure      400   {object}  map[string]string
// @Router       /exams/{slug}/drafts [post]
func (h *Handler) addDraft(w http.ResponseWriter, r *http.Request) {
	var req AddDraftRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	draft, err := h.study.AddDraft(r.PathValue("slug"), req.Subject, req.Topic, req.Title, req.Content)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusCreated, draft)
}

// updateDraft replaces a draft's title and content.
// @Summary      Update a draft
// @Tags         Resources
// @Accept       json
// @Param        slug     path  string              true  "Exam slug"
// @Param        draftID  path  string              true  "Draft id"
// @Param        body     body  UpdateDraftRequest  true  "New content"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /exams/{slug}/drafts/{draftID} [put]
func (h *Handler) updateDraft(w http.ResponseWriter, r *http.Request) {
	var req UpdateDraftRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	err := h.study.UpdateDraft(r.PathValue("slug"), req.Subject, req.Topic, r.PathValue("draftID"), req.Title, req.Content)
	if h.handleError(w, err) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// deleteDraft removes a draft. Subject and topic come as query params.
// @Summary      Delete a draft
// @Tags         Resources
// @Param        slug     path   string  true  "Exam slug"
// @Param        draftID  path   string  true  "Draft id"
// @Param        subject  query  string  true  "Subject name"
// @Param        topic    query  string  true  "Topic name"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /exams/{slug}/drafts/{draftID} [delete]
func (h *Handler) deleteDraft(w http.ResponseWriter, r *http.Request) {
	subject := r.URL.Query().Get("subject")
	topic := r.URL.Query().Get("topic")
	if subject == "" || topic == "" {
		respondError(w, http.StatusBadRequest, "subject and topic query params are required")
		return
	}
	err := h.study.DeleteDraft(r.PathValue("slug"), subject, topic, r.PathValue("draftID"))
	if h.handleError(w, err) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
