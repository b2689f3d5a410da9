package job

import (
	"regexp"
	"sort"
	"strings"

	"github.com/tailorhq/tailor/internal/lexicon"
)

var wordPattern = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)

// Keywords ranks the alphabetic tokens of the text by frequency after
// stop-word filtering and base-form normalization, most frequent first.
// Ties break by first occurrence. At most max keywords are returned.
func Keywords(text string, max int) []string {
	if max <= 0 {
		max = DefaultMaxKeywords
	}

	counts := map[string]int{}
	firstSeen := map[string]int{}

	for i, w := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if lexicon.StopWords[w] {
			continue
		}
		w = baseForm(w)
		if len(w) <= 2 || lexicon.StopWords[w] {
			continue
		}
		counts[w]++
		if _, ok := firstSeen[w]; !ok {
			firstSeen[w] = i
		}
	}

	ranked := make([]string, 0, len(counts))
	for w := range counts {
		ranked = append(ranked, w)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return firstSeen[ranked[i]] < firstSeen[ranked[j]]
	})

	if len(ranked) > max {
		ranked = ranked[:max]
	}
	return ranked
}

// baseForm applies light suffix stripping so plural variants count as one
// keyword. It stands in for lemmatization without pulling in a tagger.
func baseForm(w string) string {
	switch {
	case strings.HasSuffix(w, "ies") && len(w) > 4:
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "sses"):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") && len(w) > 3:
		return w[:len(w)-1]
	}
	return w
}

// ExtractSkills returns the canonical technical skills mentioned in the
// text: whole-word vocabulary matches plus synonym matches resolved to
// their canonical names, deduplicated in vocabulary order.
func ExtractSkills(text string) []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range lexicon.SkillPatterns {
		if seen[p.Canonical] {
			continue
		}
		if p.Pattern.MatchString(text) {
			seen[p.Canonical] = true
			out = append(out, p.Canonical)
		}
	}
	return out
}
