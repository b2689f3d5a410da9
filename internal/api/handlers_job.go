package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/tailorhq/tailor/internal/job"
)

// PostingRequest is the JSON body for job analysis endpoints.
type PostingRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

func (s *Server) handleJobAnalyze(w http.ResponseWriter, r *http.Request) {
	var req PostingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		jsonError(w, "description is required", http.StatusBadRequest)
		return
	}

	analysis := job.Analyze(req.Title, req.Company, req.Description, req.Location)
	analysis.Keywords = job.Keywords(req.Description, s.cfg.MaxKeywords)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(analysis)
}

func (s *Server) handleJobKeywords(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text        string `json:"text"`
		Title       string `json:"title"`
		Description string `json:"description"`
		MaxKeywords int    `json:"max_keywords"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	text := req.Text
	if strings.TrimSpace(text) == "" {
		text = strings.TrimSpace(req.Title + "\n" + req.Description)
	}
	if text == "" {
		jsonError(w, "text or description is required", http.StatusBadRequest)
		return
	}
	limit := req.MaxKeywords
	if limit <= 0 {
		limit = s.cfg.MaxKeywords
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"keywords": job.Keywords(text, limit),
		"skills":   job.ExtractSkills(text),
	})
}
