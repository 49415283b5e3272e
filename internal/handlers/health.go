package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"wordvis/internal/contextutil"
	"wordvis/internal/indexer"
	"wordvis/internal/service"
)

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	explorer service.ExplorerService
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(explorer service.ExplorerService) *HealthHandler {
	return &HealthHandler{explorer: explorer}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	// Overall health status: "healthy" or "unhealthy"
	Status string `json:"status"`

	// Timestamp of the health check
	Timestamp string `json:"timestamp"`

	// Summary of the loaded corpus
	Stats indexer.Stats `json:"stats"`

	// List of issues (only present if status is unhealthy)
	Issues []string `json:"issues,omitempty"`
}

// ServeHTTP handles HTTP requests for health checks.
//
// Returns 200 OK when a corpus is loaded, 503 Service Unavailable when the
// index holds no tokens.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	stats := h.explorer.Stats(ctx)

	var issues []string
	if stats.Tokens == 0 {
		issues = append(issues, "empty_transcript")
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if len(issues) > 0 {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Stats:     stats,
		Issues:    issues,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.ErrorContext(ctx, "failed to encode health response", "error", err)
	}
}
