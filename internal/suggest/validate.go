package suggest

import (
	"regexp"
	"strings"
)

// Suggestion is a single proposed edit to the resume.
type Suggestion struct {
	Section       string `json:"section"`
	Type          string `json:"type"`
	OriginalText  string `json:"original_text"`
	SuggestedText string `json:"suggested_text"`
	Reason        string `json:"reason"`
	Priority      int    `json:"priority"`
}

var validSections = map[string]bool{
	"summary":    true,
	"experience": true,
	"skills":     true,
	"education":  true,
	"projects":   true,
}

var validTypes = map[string]bool{
	"add":    true,
	"modify": true,
	"remove": true,
}

var injectionPattern = regexp.MustCompile(
	`(?i)(ignore\s+(previous|all|above)|system\s*prompt|you\s+are\s+now|` +
		`act\s+as\s+|pretend\s+|forget\s+(everything|all)|override|` +
		`new\s+instructions)`,
)

// ValidateSuggestion checks a model-produced suggestion for validity,
// normalizing fields in place. Returns true if the suggestion is usable.
func ValidateSuggestion(s *Suggestion) bool {
	if s == nil {
		return false
	}
	s.Section = strings.ToLower(strings.TrimSpace(s.Section))
	s.Type = strings.ToLower(strings.TrimSpace(s.Type))
	if !validSections[s.Section] || !validTypes[s.Type] {
		return false
	}

	s.SuggestedText = strings.TrimSpace(s.SuggestedText)
	s.OriginalText = strings.TrimSpace(s.OriginalText)
	s.Reason = strings.TrimSpace(s.Reason)

	if s.Type == "remove" {
		if s.OriginalText == "" {
			return false
		}
	} else if len(s.SuggestedText) < 3 || len(s.SuggestedText) > 500 {
		return false
	}
	if len(s.OriginalText) > 500 || len(s.Reason) > 300 {
		return false
	}
	if injectionPattern.MatchString(s.SuggestedText) || injectionPattern.MatchString(s.Reason) {
		return false
	}

	// Clamp priority; unset defaults to the middle.
	if s.Priority == 0 {
		s.Priority = 3
	}
	if s.Priority < 1 {
		s.Priority = 1
	}
	if s.Priority > 5 {
		s.Priority = 5
	}
	return true
}
