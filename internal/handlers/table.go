package handlers

import (
	"encoding/json"
	"net/http"

	"wordvis/internal/contextutil"
	"wordvis/internal/selection"
	"wordvis/internal/service"
)

// TableHandler folds a selection change into the client's table.
type TableHandler struct {
	explorer service.ExplorerService
}

// NewTableHandler creates a new TableHandler.
func NewTableHandler(explorer service.ExplorerService) *TableHandler {
	return &TableHandler{explorer: explorer}
}

// TableRequest represents the HTTP request payload for a selection change.
type TableRequest struct {
	Selected []string        `json:"selected"`
	Table    selection.Table `json:"table"`
}

// TableResponse represents the HTTP response payload with the updated table.
type TableResponse struct {
	Table selection.Table `json:"table"`
}

// ServeHTTP handles POST /api/table.
func (h *TableHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req TableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	svcResp, err := h.explorer.UpdateTable(ctx, service.TableRequest{
		Selected: req.Selected,
		Table:    req.Table,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to update table")
		return
	}

	writeJSON(w, ctx, TableResponse{Table: svcResp.Table})
}
