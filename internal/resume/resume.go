// Package resume turns the flat text of a decoded resume document into a
// structured Record: contact fields, summary, experience/education/project
// entries, skills and certifications.
package resume

import (
	"strings"

	"github.com/tailorhq/tailor/internal/extract"
	"github.com/tailorhq/tailor/internal/lexicon"
	"github.com/tailorhq/tailor/internal/segment"
)

// ExperienceEntry is one blank-line-delimited span of the experience
// section. The typed fields are best-effort and may be empty; RawText is
// always the verbatim paragraph.
type ExperienceEntry struct {
	RawText     string `json:"raw_text"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// EducationEntry is one span of the education section.
type EducationEntry struct {
	RawText     string `json:"raw_text"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Field       string `json:"field"`
	Year        string `json:"year"`
	Description string `json:"description"`
}

// ProjectEntry is one span of the projects section.
type ProjectEntry struct {
	RawText      string   `json:"raw_text"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url"`
}

// Record is the structured form of a resume. Lists preserve document
// order; Skills is deduplicated case-insensitively keeping the first-seen
// casing. Records are built per request and never mutated afterwards.
type Record struct {
	PersonalInfo   map[string]string `json:"personal_info"`
	Summary        string            `json:"summary"`
	Experience     []ExperienceEntry `json:"experience"`
	Education      []EducationEntry  `json:"education"`
	Skills         []string          `json:"skills"`
	Certifications []string          `json:"certifications"`
	Projects       []ProjectEntry    `json:"projects"`
	RawText        string            `json:"raw_text"`
}

// Structure segments the document text, extracts each section's fields
// and assembles the Record. It never fails: unrecognized or missing
// sections simply leave their fields empty.
func Structure(text string) *Record {
	rec := &Record{
		PersonalInfo: extract.Contact(text),
		RawText:      text,
	}

	for _, sec := range segment.Segment(segment.SplitLines(text), lexicon.ResumeHeaders) {
		body := sec.Text()
		switch sec.Kind {
		case lexicon.SectionSummary:
			rec.Summary = strings.TrimSpace(body)
		case lexicon.SectionExperience:
			for _, raw := range extract.Entries(body) {
				rec.Experience = append(rec.Experience, ExperienceEntry{
					RawText:     raw,
					Description: raw,
				})
			}
		case lexicon.SectionEducation:
			for _, raw := range extract.Entries(body) {
				rec.Education = append(rec.Education, EducationEntry{
					RawText:     raw,
					Description: raw,
				})
			}
		case lexicon.SectionSkills:
			rec.Skills = dedupeFold(extract.Skills(body))
		case lexicon.SectionCertifications:
			rec.Certifications = extract.Certifications(body)
		case lexicon.SectionProjects:
			for _, raw := range extract.Entries(body) {
				rec.Projects = append(rec.Projects, ProjectEntry{
					RawText:     raw,
					Description: raw,
				})
			}
		}
	}

	return rec
}

// dedupeFold removes case-insensitive duplicates, keeping the first-seen
// casing and order.
func dedupeFold(items []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, it := range items {
		key := strings.ToLower(it)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, it)
	}
	return out
}
