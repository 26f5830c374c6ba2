package api

import (
	"net/http"

	"github.com/estudotatico/backend/internal/domain/mockexam"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateMockRequest struct {
	Name    string                   `json:"name" validate:"required" example:"Simulado 03"`
	Results []mockexam.SubjectResult `json:"results" validate:"required,min=1,dive"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listMocks lists an exam's recorded mock sittings.
// @Summary      List mock exams
// @Tags         Mocks
// @Produce      json
// @Param        slug  path      string  true  "Exam slug"
// @Success      200   {array}   mockexam.MockExam
// @Failure      500   {object}  map[string]string
// @Router       /exams/{slug}/mocks [get]
func (h *Handler) listMocks(w http.ResponseWriter, r *http.Request) {
	mocks, err := h.mocks.List(r.PathValue("slug"))
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, mocks)
}

// createMock records a full practice sitting.
// @Summary      Record a mock exam
// @Tags         Mocks
// @Accept       json
// @Produce      json
// @Param        slug  path      string             true  "Exam slug"
// @Param        body  body      CreateMockRequest  true  "Sitting results"
// @Success      201   {object}  mockexam.MockExam
// @Failure      400   {object}  map[string]string
// @Router       /exams/{slug}/mocks [post]
func (h *Handler) createMock(w http.ResponseWriter, r *http.Request) {
	var req CreateMockRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	m, err := h.mocks.Create(r.PathValue("slug"), req.Name, req.Results)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusCreated, m)
}

// deleteMock removes a recorded sitting.
// @Summary      Delete a mock exam
// @Tags         Mocks
// @Param        slug    path  string  true  "Exam slug"
// @Param        mockID  path  string  true  "Mock exam id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /exams/{slug}/mocks/{mockID} [delete]
func (h *Handler) deleteMock(w http.ResponseWriter, r *http.Request) {
	if h.handleError(w, h.mocks.Delete(r.PathValue("slug"), r.PathValue("mockID"))) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
