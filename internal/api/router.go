// internal/api/router.go
package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Exams
	mux.HandleFunc("POST /exams", h.createExam)
	mux.HandleFunc("GET /exams", h.listExams)
	mux.HandleFunc("GET /exams/{slug}", h.getExam)
	mux.HandleFunc("DELETE /exams/{slug}", h.deleteExam)
	mux.HandleFunc("POST /exams/{slug}/subjects", h.addSubject)
	mux.HandleFunc("DELETE /exams/{slug}/subjects/{subject}", h.removeSubject)
	mux.HandleFunc("POST /exams/{slug}/subjects/{subject}/topics", h.addTopic)
	mux.HandleFunc("DELETE /exams/{slug}/subjects/{subject}/topics/{topic}", h.removeTopic)
	mux.HandleFunc("POST /exams/{slug}/syllabus-refresh", h.refreshSyllabus)

	// Progress and question sessions
	mux.HandleFunc("GET /exams/{slug}/progress", h.getProgress)
	mux.HandleFunc("POST /exams/{slug}/progress/toggle", h.toggleStatus)
	mux.HandleFunc("PUT /exams/{slug}/progress", h.setStatus)
	mux.HandleFunc("POST /exams/{slug}/questions", h.addQuestionSession)
	mux.HandleFunc("GET /exams/{slug}/dashboard", h.getDashboard)
	mux.HandleFunc("GET /report", h.getGlobalReport)

	// Topic resources
	mux.HandleFunc("GET /exams/{slug}/resources", h.getResources)
	mux.HandleFunc("POST /exams/{slug}/videos", h.addVideo)
	mux.HandleFunc("PATCH /exams/{slug}/videos/{videoID}", h.renameVideo)
	mux.HandleFunc("DELETE /exams/{slug}/videos/{videoID}", h.removeVideo)
	mux.HandleFunc("POST /videos/watched", h.markVideoWatched)
	mux.HandleFunc("POST /exams/{slug}/drafts", h.addDraft)
	mux.HandleFunc("PUT /exams/{slug}/drafts/{draftID}", h.updateDraft)
	mux.HandleFunc("DELETE /exams/{slug}/drafts/{draftID}", h.deleteDraft)

	// Revision radar
	mux.HandleFunc("GET /revisions", h.getRevisionQueue)
	mux.HandleFunc("POST /revisions/complete", h.completeRevision)

	// Daily tasks
	mux.HandleFunc("GET /daily-tasks", h.getDailyTasks)

	// AI generation
	mux.HandleFunc("POST /exams/{slug}/generate", h.generateContent)
	mux.HandleFunc("POST /exams/{slug}/generate/bulk", h.bulkGenerate)
	mux.HandleFunc("GET /exams/{slug}/prompts", h.getPrompts)
	mux.HandleFunc("PUT /exams/{slug}/prompts", h.setPrompt)
	mux.HandleFunc("POST /quiz", h.generateQuiz)
	mux.HandleFunc("GET /analysis", h.getAnalysis)

	// Flash decks
	mux.HandleFunc("GET /decks", h.listDecks)
	mux.HandleFunc("POST /decks", h.createDeck)
	mux.HandleFunc("DELETE /decks/{deckID}", h.deleteDeck)
	mux.HandleFunc("POST /decks/{deckID}/cards", h.addCard)
	mux.HandleFunc("DELETE /decks/{deckID}/cards/{cardID}", h.removeCard)
	mux.HandleFunc("POST /decks/{deckID}/draw", h.drawCard)

	// Mock exams
	mux.HandleFunc("GET /exams/{slug}/mocks", h.listMocks)
	mux.HandleFunc("POST /exams/{slug}/mocks", h.createMock)
	mux.HandleFunc("DELETE /exams/{slug}/mocks/{mockID}", h.deleteMock)

	// Device sync
	mux.HandleFunc("GET /sync/export", h.exportCode)
	mux.HandleFunc("POST /sync/import", h.importCode)
}
