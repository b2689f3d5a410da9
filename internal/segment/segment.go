// Package segment splits flat document text into labeled sections by
// matching lines against a header pattern set. Both resume structuring
// and job-posting requirement bucketing run on it.
package segment

import (
	"strings"

	"github.com/tailorhq/tailor/internal/lexicon"
)

// Section is a contiguous, labeled span of document text. Sections of the
// same kind found non-contiguously are merged in encounter order with a
// blank-line separator.
type Section struct {
	Kind lexicon.SectionKind
	Body []string
}

// Text returns the section body as a single newline-joined string.
func (s Section) Text() string {
	return strings.Join(s.Body, "\n")
}

// Segment folds lines into sections. A line matching any header pattern
// starts a new section of that kind and is itself consumed; everything
// else accumulates under the current kind, which starts as general.
// Header pattern sets are ordered, so a line matching several kinds
// resolves to the earliest kind in the set.
func Segment(lines []string, headers []lexicon.HeaderPatterns) []Section {
	var (
		out     []Section
		index   = map[lexicon.SectionKind]int{}
		current = lexicon.SectionGeneral
		buf     []string
	)

	flush := func() {
		body := trimBlankEdges(buf)
		buf = nil
		if len(body) == 0 {
			return
		}
		if i, ok := index[current]; ok {
			out[i].Body = append(out[i].Body, "")
			out[i].Body = append(out[i].Body, body...)
			return
		}
		index[current] = len(out)
		out = append(out, Section{Kind: current, Body: body})
	}

	for _, line := range lines {
		probe := strings.ToLower(strings.TrimSpace(line))
		if kind, ok := matchHeader(probe, headers); ok {
			flush()
			current = kind
			continue
		}
		buf = append(buf, line)
	}
	flush()

	return out
}

// SplitLines is the canonical line split used before segmentation.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

func matchHeader(line string, headers []lexicon.HeaderPatterns) (lexicon.SectionKind, bool) {
	if line == "" {
		return "", false
	}
	for _, hp := range headers {
		for _, re := range hp.Patterns {
			if re.MatchString(line) {
				return hp.Kind, true
			}
		}
	}
	return "", false
}

func trimBlankEdges(lines []string) []string {
	start := 0
	end := len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}
