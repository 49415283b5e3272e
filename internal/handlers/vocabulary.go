package handlers

import (
	"net/http"

	"wordvis/internal/contextutil"
	"wordvis/internal/service"
)

// VocabularyHandler serves the words available to the picker.
type VocabularyHandler struct {
	explorer service.ExplorerService
}

// NewVocabularyHandler creates a new VocabularyHandler.
func NewVocabularyHandler(explorer service.ExplorerService) *VocabularyHandler {
	return &VocabularyHandler{explorer: explorer}
}

// VocabularyResponse represents the HTTP response payload for the vocabulary.
type VocabularyResponse struct {
	Words []string `json:"words"`
}

// ServeHTTP handles GET /api/vocabulary?q=&limit=.
func (h *VocabularyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	words := h.explorer.Vocabulary(ctx, r.URL.Query().Get("q"), limit)
	if words == nil {
		words = []string{}
	}
	writeJSON(w, ctx, VocabularyResponse{Words: words})
}
