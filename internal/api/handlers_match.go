package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/tailorhq/tailor/internal/job"
	"github.com/tailorhq/tailor/internal/match"
	"github.com/tailorhq/tailor/internal/resume"
	"github.com/tailorhq/tailor/internal/suggest"
)

// MatchRequest pairs a resume with a posting. Either side can be sent
// pre-analyzed (resume/job) or raw (resume_text/posting).
type MatchRequest struct {
	Resume     *resume.Record  `json:"resume"`
	ResumeText string          `json:"resume_text"`
	Job        *job.Analysis   `json:"job"`
	Posting    *PostingRequest `json:"posting"`
}

func (req *MatchRequest) resolve(maxKeywords int) (*resume.Record, *job.Analysis, error) {
	rec := req.Resume
	if rec == nil {
		if strings.TrimSpace(req.ResumeText) == "" {
			return nil, nil, errors.New("resume or resume_text is required")
		}
		rec = resume.Structure(req.ResumeText)
	}

	analysis := req.Job
	if analysis == nil {
		if req.Posting == nil || strings.TrimSpace(req.Posting.Description) == "" {
			return nil, nil, errors.New("job or posting with a description is required")
		}
		analysis = job.Analyze(req.Posting.Title, req.Posting.Company, req.Posting.Description, req.Posting.Location)
		analysis.Keywords = job.Keywords(req.Posting.Description, maxKeywords)
	}
	return rec, analysis, nil
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	rec, analysis, err := req.resolve(s.cfg.MaxKeywords)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := match.Score(rec, analysis)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

func (s *Server) handleTailor(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	rec, analysis, err := req.resolve(s.cfg.MaxKeywords)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := match.Score(rec, analysis)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.SuggestTimeout)
	defer cancel()
	suggestions := s.suggester.Generate(ctx, rec, analysis, report.MissingKeywords)

	priority := make([]suggest.Suggestion, 0, len(suggestions))
	for _, sg := range suggestions {
		if sg.Priority >= 4 {
			priority = append(priority, sg)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"match_score":      report.MatchScore,
		"ats_score":        report.ATSScore,
		"missing_keywords": report.MissingKeywords,
		"suggestions":      suggestions,
		"priority_changes": priority,
	})
}
