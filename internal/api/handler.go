// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/estudotatico/backend/internal/domain/exam"
	"github.com/estudotatico/backend/internal/domain/flashdeck"
	"github.com/estudotatico/backend/internal/domain/mockexam"
	"github.com/estudotatico/backend/internal/domain/resource"
	"github.com/estudotatico/backend/internal/service"
	"github.com/estudotatico/backend/internal/store"
	"github.com/estudotatico/backend/internal/transfer"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	exams    *service.ExamService
	study    *service.StudyService
	revision *service.RevisionService
	daily    *service.DailyService
	gen      *service.GenerationService
	decks    *service.DeckService
	mocks    *service.MockService
	sync     *transfer.Service
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(
	exams *service.ExamService,
	study *service.StudyService,
	revision *service.RevisionService,
	daily *service.DailyService,
	gen *service.GenerationService,
	decks *service.DeckService,
	mocks *service.MockService,
	sync *transfer.Service,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		exams:    exams,
		study:    study,
		revision: revision,
		daily:    daily,
		gen:      gen,
		decks:    decks,
		mocks:    mocks,
		sync:     sync,
		validate: validator.New(),
		logger:   logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes a JSON error body with the given status code.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON decodes the request body into v, answering 400 on bad JSON.
// Returns false if the caller should stop.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// decodeAndValidate decodes the body and runs struct validation tags.
// Returns false if the caller should stop.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, v any) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleError maps service and domain errors to HTTP responses. Returns true
// if an error was handled (caller should return).
func (h *Handler) handleError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, service.ErrExamNotFound),
		errors.Is(err, service.ErrDeckNotFound),
		errors.Is(err, service.ErrMockNotFound),
		errors.Is(err, service.ErrVideoNotFound),
		errors.Is(err, service.ErrDraftNotFound),
		errors.Is(err, service.ErrTopicNotTracked),
		errors.Is(err, exam.ErrSubjectNotFound),
		errors.Is(err, exam.ErrTopicNotFound),
		errors.Is(err, flashdeck.ErrCardNotFound),
		errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrExamExists),
		errors.Is(err, exam.ErrSubjectExists),
		errors.Is(err, exam.ErrTopicExists):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, exam.ErrEmptyName),
		errors.Is(err, resource.ErrInvalidSession),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrUnknownMode),
		errors.Is(err, service.ErrNoStudyMaterial),
		errors.Is(err, flashdeck.ErrEmptyTitle),
		errors.Is(err, flashdeck.ErrInvalidType),
		errors.Is(err, flashdeck.ErrEmptyDeck),
		errors.Is(err, mockexam.ErrEmptyName),
		errors.Is(err, mockexam.ErrNoResults),
		errors.Is(err, mockexam.ErrInvalidResult),
		errors.Is(err, transfer.ErrInvalidCode):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
