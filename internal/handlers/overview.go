package handlers

import (
	"net/http"

	"wordvis/internal/contextutil"
	"wordvis/internal/indexer"
	"wordvis/internal/service"
)

// OverviewHandler serves the global word counts shown in the overview grid.
type OverviewHandler struct {
	explorer service.ExplorerService
}

// NewOverviewHandler creates a new OverviewHandler.
func NewOverviewHandler(explorer service.ExplorerService) *OverviewHandler {
	return &OverviewHandler{explorer: explorer}
}

// OverviewResponse represents the HTTP response payload for the overview grid.
type OverviewResponse struct {
	Rows []indexer.WordCount `json:"rows"`
}

// ServeHTTP handles GET /api/overview?limit=.
func (h *OverviewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	limit, err := parseLimit(r)
	if err != nil {
		handleServiceError(w, ctx, err, "Invalid limit")
		return
	}

	rows := h.explorer.Overview(ctx, limit)
	if rows == nil {
		rows = []indexer.WordCount{}
	}
	writeJSON(w, ctx, OverviewResponse{Rows: rows})
}
