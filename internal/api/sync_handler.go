package api

import (
	"net/http"
)

// ── Request / Response types ────────────────────────────────────────────────

type ExportResponse struct {
	Code string `json:"code"`
}

type ImportRequest struct {
	Code string `json:"code" validate:"required"`
}

type ImportResponse struct {
	Imported int `json:"imported" example:"7"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// exportCode bundles all stored state into one transfer code.
// @Summary      Export a transfer code
// @Description  A Base64 snapshot of every stored document, for moving state to another device.
// @Tags         Sync
// @Produce      json
// @Success      200  {object}  ExportResponse
// @Failure      500  {object}  map[string]string
// @Router       /sync/export [get]
func (h *Handler) exportCode(w http.ResponseWriter, r *http.Request) {
	code, err := h.sync.Export()
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, ExportResponse{Code: code})
}

// importCode restores state from a transfer code.
// @Summary      Import a transfer code
// @Description  Overwrites every key carried by the code, last write wins. A code that cannot be decoded imports nothing.
// @Tags         Sync
// @Accept       json
// @Produce      json
// @Param        body  body      ImportRequest  true  "Transfer code"
// @Success      200   {object}  ImportResponse
// @Failure      400   {object}  map[string]string  "invalid or corrupted code"
// @Router       /sync/import [post]
func (h *Handler) importCode(w http.ResponseWriter, r *http.Request) {
	var req ImportRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	count, err := h.sync.Import(req.Code)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, ImportResponse{Imported: count})
}
