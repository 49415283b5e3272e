package handlers

import (
	"encoding/json"
	"net/http"

	"wordvis/internal/contextutil"
	"wordvis/internal/selection"
	"wordvis/internal/service"
)

// ClickHandler merges an overview grid click into the client's selection.
type ClickHandler struct {
	explorer service.ExplorerService
}

// NewClickHandler creates a new ClickHandler.
func NewClickHandler(explorer service.ExplorerService) *ClickHandler {
	return &ClickHandler{explorer: explorer}
}

// ClickRequest represents the HTTP request payload for a grid click.
// Both fields may be null.
type ClickRequest struct {
	Selection []string        `json:"selection"`
	Cell      *selection.Cell `json:"cell"`
}

// ClickResponse represents the HTTP response payload with the new selection.
type ClickResponse struct {
	Selection []string `json:"selection"`
}

// ServeHTTP handles POST /api/click.
func (h *ClickHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req ClickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	svcResp, err := h.explorer.ClickCell(ctx, service.ClickRequest{
		Selection: req.Selection,
		Cell:      req.Cell,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to process click")
		return
	}

	writeJSON(w, ctx, ClickResponse{Selection: svcResp.Selection})
}
