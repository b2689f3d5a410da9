// Package match scores a structured resume against a job-posting
// analysis: a weighted match score, an ATS structural-completeness score
// and the ranked missing keywords.
package match

import (
	"errors"
	"strings"

	"github.com/tailorhq/tailor/internal/job"
	"github.com/tailorhq/tailor/internal/resume"
)

// ErrMissingRecord is returned when either input record is absent.
// Missing optional fields inside a record never error; they count as
// empty.
var ErrMissingRecord = errors.New("match: both resume and job records are required")

// Report is the scoring output. PrioritySuggestions is filled by the
// caller from the suggestion generator, not computed here.
type Report struct {
	MatchScore      float64  `json:"match_score"`
	ATSScore        float64  `json:"ats_score"`
	MissingKeywords []string `json:"missing_keywords"`
}

// Factor weights. They sum to 1.0; factors whose denominator is empty are
// excluded and the remaining weights renormalized.
const (
	weightSkills     = 0.40
	weightKeywords   = 0.30
	weightExperience = 0.20
	weightIndustry   = 0.10
)

// MaxMissingKeywords caps the missing-keyword list.
const MaxMissingKeywords = 10

// Score combines the two records into a Report. It fails only when a
// record is entirely absent.
func Score(rec *resume.Record, analysis *job.Analysis) (*Report, error) {
	if rec == nil || analysis == nil {
		return nil, ErrMissingRecord
	}

	rawLower := strings.ToLower(rec.RawText)

	score := 0.0
	total := 0.0

	// Skills: intersection over the job's required set.
	if len(analysis.RequiredSkills) > 0 {
		have := map[string]bool{}
		for _, s := range rec.Skills {
			have[strings.ToLower(s)] = true
		}
		hits := 0
		for _, s := range analysis.RequiredSkills {
			if have[strings.ToLower(s)] {
				hits++
			}
		}
		score += weightSkills * float64(hits) / float64(len(analysis.RequiredSkills))
		total += weightSkills
	}

	// Keywords: substring presence in the resume's raw text.
	if len(analysis.Keywords) > 0 {
		hits := 0
		for _, kw := range analysis.Keywords {
			if strings.Contains(rawLower, strings.ToLower(kw)) {
				hits++
			}
		}
		score += weightKeywords * float64(hits) / float64(len(analysis.Keywords))
		total += weightKeywords
	}

	score += weightExperience * experienceFactor(len(rec.Experience), analysis.ExperienceLevel)
	total += weightExperience

	score += weightIndustry * industryFactor(rawLower, analysis.Industry)
	total += weightIndustry

	matchScore := 0.0
	if total > 0 {
		matchScore = clamp(100 * score / total)
	}

	return &Report{
		MatchScore:      matchScore,
		ATSScore:        atsScore(rec),
		MissingKeywords: missingKeywords(rawLower, analysis),
	}, nil
}

// experienceFactor is a deterministic lookup from required level to fit:
// full credit when the entry count sits in the level's band, half credit
// otherwise. Unknown levels always get half credit, never zero.
func experienceFactor(entries int, level string) float64 {
	switch level {
	case "entry":
		if entries <= 2 {
			return 1.0
		}
	case "mid":
		if entries >= 2 && entries <= 5 {
			return 1.0
		}
	case "senior":
		if entries >= 5 {
			return 1.0
		}
	}
	return 0.5
}

// industryFactor gives full credit when the job's industry name appears
// in the resume text, half credit otherwise (transferable skills).
func industryFactor(rawLower, industry string) float64 {
	industry = strings.ToLower(industry)
	if industry != "" && strings.Contains(rawLower, industry) {
		return 1.0
	}
	return 0.5
}

// atsScore is an additive checklist rewarding structural completeness:
// +20 personal info, +15 summary, +25 experience, +15 education,
// +25 skills; capped at 100.
func atsScore(rec *resume.Record) float64 {
	score := 0.0
	if len(rec.PersonalInfo) > 0 {
		score += 20
	}
	if rec.Summary != "" {
		score += 15
	}
	if len(rec.Experience) > 0 {
		score += 25
	}
	if len(rec.Education) > 0 {
		score += 15
	}
	if len(rec.Skills) > 0 {
		score += 25
	}
	return clamp(score)
}

// missingKeywords lists required skills absent from the resume text, then
// absent top-10 job keywords, deduplicated case-insensitively and capped
// at MaxMissingKeywords.
func missingKeywords(rawLower string, analysis *job.Analysis) []string {
	var missing []string
	seen := map[string]bool{}

	add := func(term string) {
		key := strings.ToLower(term)
		if seen[key] || strings.Contains(rawLower, key) {
			return
		}
		seen[key] = true
		missing = append(missing, key)
	}

	for _, s := range analysis.RequiredSkills {
		add(s)
	}
	top := analysis.Keywords
	if len(top) > 10 {
		top = top[:10]
	}
	for _, kw := range top {
		add(kw)
	}

	if len(missing) > MaxMissingKeywords {
		missing = missing[:MaxMissingKeywords]
	}
	return missing
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
