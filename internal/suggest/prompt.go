package suggest

import (
	"fmt"
	"strings"

	"github.com/tailorhq/tailor/internal/job"
	"github.com/tailorhq/tailor/internal/resume"
)

const SuggestionPrompt = `You are an expert resume coach. Given a candidate's resume and a job posting, suggest concrete edits that tailor the resume to the posting. Return a JSON array of suggestions. Each suggestion object must have these fields:

- "section": the resume section to change, one of "summary", "experience", "skills", "education", "projects"
- "type": one of "add", "modify", "remove"
- "original_text": the text being changed, or "" for additions (string, max 500 chars)
- "suggested_text": the replacement or new text (string, max 500 chars)
- "reason": why this change helps for this specific posting (string, max 300 chars)
- "priority": importance from 1 (nice to have) to 5 (critical)

Rules:
- Ground every suggestion in the posting's actual requirements
- Never invent experience the candidate does not have
- Prefer rewording real accomplishments with the posting's terminology
- Mark suggestions that add missing required skills as priority 4 or 5
- Return at most 10 suggestions
- Return an empty array [] if the resume already fits well

Respond with ONLY the JSON array, no other text.`

const maxPromptChars = 8000

// BuildPrompt assembles the full prompt from the structured resume, the
// job analysis, and the scoring gaps.
func BuildPrompt(rec *resume.Record, analysis *job.Analysis, missingKeywords []string) string {
	var sb strings.Builder
	sb.WriteString(SuggestionPrompt)

	sb.WriteString("\n\n--- JOB POSTING ---\n")
	if analysis != nil {
		sb.WriteString(fmt.Sprintf("Title: %s\n", analysis.Title))
		if analysis.Company != "" {
			sb.WriteString(fmt.Sprintf("Company: %s\n", analysis.Company))
		}
		sb.WriteString(fmt.Sprintf("Industry: %s\n", analysis.Industry))
		sb.WriteString(fmt.Sprintf("Experience level: %s\n", analysis.ExperienceLevel))
		if len(analysis.RequiredSkills) > 0 {
			sb.WriteString("Required skills: ")
			sb.WriteString(strings.Join(analysis.RequiredSkills, ", "))
			sb.WriteString("\n")
		}
		if len(analysis.Keywords) > 0 {
			sb.WriteString("Top keywords: ")
			sb.WriteString(strings.Join(analysis.Keywords, ", "))
			sb.WriteString("\n")
		}
	}
	if len(missingKeywords) > 0 {
		sb.WriteString("Missing from resume: ")
		sb.WriteString(strings.Join(missingKeywords, ", "))
		sb.WriteString("\n")
	}

	sb.WriteString("\n--- RESUME ---\n")
	if rec != nil {
		if rec.Summary != "" {
			sb.WriteString("Summary: ")
			sb.WriteString(rec.Summary)
			sb.WriteString("\n")
		}
		if len(rec.Skills) > 0 {
			sb.WriteString("Skills: ")
			sb.WriteString(strings.Join(rec.Skills, ", "))
			sb.WriteString("\n")
		}
		for i, exp := range rec.Experience {
			sb.WriteString(fmt.Sprintf("Experience %d: %s\n", i+1, exp.RawText))
		}
		for i, edu := range rec.Education {
			sb.WriteString(fmt.Sprintf("Education %d: %s\n", i+1, edu.RawText))
		}
		for i, proj := range rec.Projects {
			sb.WriteString(fmt.Sprintf("Project %d: %s\n", i+1, proj.RawText))
		}
	}

	out := sb.String()
	if len(out) > maxPromptChars {
		out = out[:maxPromptChars]
	}
	return out
}
