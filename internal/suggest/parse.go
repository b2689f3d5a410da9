package suggest

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseSuggestions decodes the model output into validated suggestions.
// It tolerates markdown code fences and a single bare object instead of
// an array.
func parseSuggestions(raw string) ([]Suggestion, error) {
	cleaned := stripCodeFence(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("empty model output")
	}

	var parsed []Suggestion
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		var single Suggestion
		if err2 := json.Unmarshal([]byte(cleaned), &single); err2 != nil {
			return nil, fmt.Errorf("decode suggestions: %w", err)
		}
		parsed = []Suggestion{single}
	}

	out := make([]Suggestion, 0, len(parsed))
	for i := range parsed {
		if ValidateSuggestion(&parsed[i]) {
			out = append(out, parsed[i])
		}
	}
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out, nil
}

const maxSuggestions = 10

func stripCodeFence(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

// Fallback returns deterministic suggestions built from the scoring gaps,
// used when the model is unavailable or its output cannot be parsed.
func Fallback(missingKeywords []string) []Suggestion {
	out := []Suggestion{
		{
			Section:       "summary",
			Type:          "modify",
			SuggestedText: "Rewrite the summary to mirror the posting's title and top requirements in the first sentence.",
			Reason:        "Screeners and ranking systems weight the opening lines heavily.",
			Priority:      4,
		},
		{
			Section:       "experience",
			Type:          "modify",
			SuggestedText: "Lead each experience bullet with a measurable outcome (percentage, dollar amount, or scale).",
			Reason:        "Quantified results stand out to both reviewers and automated screens.",
			Priority:      3,
		},
	}
	if len(missingKeywords) > 0 {
		shown := missingKeywords
		if len(shown) > 5 {
			shown = shown[:5]
		}
		out = append([]Suggestion{{
			Section:       "skills",
			Type:          "add",
			SuggestedText: "Add the skills you genuinely have from: " + strings.Join(shown, ", ") + ".",
			Reason:        "These appear in the posting but not in the resume.",
			Priority:      5,
		}}, out...)
	}
	return out
}
