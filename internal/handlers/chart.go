package handlers

import (
	"encoding/json"
	"net/http"

	"wordvis/internal/contextutil"
	"wordvis/internal/selection"
	"wordvis/internal/service"
)

// ChartHandler renders the figure for the client's table and selection.
type ChartHandler struct {
	explorer service.ExplorerService
}

// NewChartHandler creates a new ChartHandler.
func NewChartHandler(explorer service.ExplorerService) *ChartHandler {
	return &ChartHandler{explorer: explorer}
}

// ChartRequest represents the HTTP request payload for a figure.
type ChartRequest struct {
	Selected []string        `json:"selected"`
	Table    selection.Table `json:"table"`
}

// ServeHTTP handles POST /api/chart. The response body is a chart.Figure.
func (h *ChartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req ChartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	fig, err := h.explorer.Chart(ctx, service.ChartRequest{
		Selected: req.Selected,
		Table:    req.Table,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to build chart")
		return
	}

	writeJSON(w, ctx, fig)
}
