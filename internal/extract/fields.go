package extract

import (
	"regexp"
	"strings"

	"github.com/tailorhq/tailor/internal/lexicon"
)

var paragraphSplit = regexp.MustCompile(`\n\s*\n`)

// Entries splits a section body into blank-line-delimited paragraphs.
// Each non-empty paragraph is one entry, verbatim. No sub-field parsing
// is attempted on the free-form paragraphs.
func Entries(body string) []string {
	var out []string
	for _, p := range paragraphSplit.Split(body, -1) {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// skillDelimiters in trial order. The first delimiter present in the text
// wins; resumes normally stick to one separator style throughout a skills
// section.
var skillDelimiters = []string{",", "•", "·", "\n", "|"}

// Skills splits a skills-section body on the first delimiter found in it,
// trimming tokens and dropping empty or single-character ones.
func Skills(body string) []string {
	var tokens []string
	for _, sep := range skillDelimiters {
		if strings.Contains(body, sep) {
			tokens = strings.Split(body, sep)
			break
		}
	}

	var out []string
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if len(tok) > 1 {
			out = append(out, tok)
		}
	}
	return out
}

// Certifications keeps each line of the body longer than three characters,
// verbatim.
func Certifications(body string) []string {
	var out []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > 3 {
			out = append(out, line)
		}
	}
	return out
}

// Bullets returns the list-item lines of the body with their markers
// ("•", "-", "*", "<number>.") stripped. Non-bulleted lines are ignored.
func Bullets(body string) []string {
	var out []string
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || !lexicon.BulletPattern.MatchString(trimmed) {
			continue
		}
		cleaned := strings.TrimSpace(lexicon.BulletPattern.ReplaceAllString(trimmed, ""))
		if cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}
