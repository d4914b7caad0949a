package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// HelloHandler provides the health probe endpoint
type HelloHandler struct {
	logger *slog.Logger
}

// NewHelloHandler creates a new hello handler
func NewHelloHandler(logger *slog.Logger) *HelloHandler {
	return &HelloHandler{
		logger: logger,
	}
}

// ServeHTTP handles GET /api/hello
func (h *HelloHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(map[string]string{"hello": "world"}); err != nil {
		h.logger.Error("failed to encode hello response", "error", err)
	}
}
