package api

import (
	"net/http"

	"github.com/estudotatico/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type CompleteRevisionRequest struct {
	Slug    string `json:"slug" validate:"required" example:"pm_sp"`
	Subject string `json:"subject" validate:"required" example:"Direito Penal"`
	Topic   string `json:"topic" validate:"required" example:"Furto"`
	Mode    string `json:"mode" validate:"required,oneof=questions summary" example:"questions"`
	Total   int    `json:"total" example:"10"`
	Correct int    `json:"correct" example:"8"`
}

type CompleteRevisionResponse struct {
	Phase   string `json:"phase" example:"7d"`
	NextDue string `json:"nextDue" example:"2025-03-17T09:00:00Z"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getRevisionQueue lists every topic currently due for revision.
// @Summary      Revision radar
// @Description  All due topics across every exam, most overdue first. Topics with question history that were never scheduled appear as immediately due.
// @Tags         Revisions
// @Produce      json
// @Success      200  {array}   revision.Item
// @Failure      500  {object}  map[string]string
// @Router       /revisions [get]
func (h *Handler) getRevisionQueue(w http.ResponseWriter, r *http.Request) {
	queue, err := h.revision.Queue()
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, queue)
}

// completeRevision finishes a due revision and schedules the next one.
// @Summary      Complete a revision
// @Description  Mode "questions" logs a batch result (total/correct required); mode "summary" requires stored study material. Either way the topic advances along the 24h → 7d → 30d → maintenance ladder.
// @Tags         Revisions
// @Accept       json
// @Produce      json
// @Param        body  body      CompleteRevisionRequest  true  "Completed revision"
// @Success      200   {object}  CompleteRevisionResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /revisions/complete [post]
func (h *Handler) completeRevision(w http.ResponseWriter, r *http.Request) {
	var req CompleteRevisionRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	out, err := h.revision.Complete(req.Slug, req.Subject, req.Topic, service.CompletionMode(req.Mode), req.Total, req.Correct)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, CompleteRevisionResponse{
		Phase:   string(out.Phase),
		NextDue: out.NextDue.Format("2006-01-02T15:04:05Z07:00"),
	})
}
