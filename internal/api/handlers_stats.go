package api

import (
	"encoding/json"
	"net/http"

	"github.com/tailorhq/tailor/internal/parser"
)

func (s *Server) handleLLMStats(w http.ResponseWriter, r *http.Request) {
	if s.suggester == nil {
		jsonError(w, "llm stats unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"model": s.cfg.GeminiModel,
		"stats": s.suggester.Stats().Snapshot(),
	})
}

func (s *Server) handleFormats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"extensions": parser.SupportedExtensions,
	})
}
