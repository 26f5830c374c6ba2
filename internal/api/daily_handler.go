package api

import (
	"net/http"

	"github.com/estudotatico/backend/internal/domain/dailytask"
)

type DailyTasksResponse struct {
	Metrics  dailytask.Metrics `json:"metrics"`
	Targets  dailytask.Targets `json:"targets"`
	Complete bool              `json:"complete"`
}

// getDailyTasks returns today's counters against their fixed targets.
// @Summary      Daily tasks
// @Description  Counters reset automatically when the stored record belongs to an earlier day.
// @Tags         Daily
// @Produce      json
// @Success      200  {object}  DailyTasksResponse
// @Failure      500  {object}  map[string]string
// @Router       /daily-tasks [get]
func (h *Handler) getDailyTasks(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.daily.Today()
	if h.handleError(w, err) {
		return
	}
	targets := h.daily.Targets()
	respondJSON(w, http.StatusOK, DailyTasksResponse{
		Metrics:  metrics,
		Targets:  targets,
		Complete: metrics.Complete(targets),
	})
}
