// Package extract pulls typed fields out of section text: contact info,
// skill lists, list entries, certifications and bullet points. Every
// function is a pure best-effort match over its input; absent matches
// yield empty containers, never errors.
package extract

import (
	"strings"

	"github.com/tailorhq/tailor/internal/lexicon"
)

// Contact scans the whole document text for contact fields. Only matched
// fields appear in the result; the first occurrence of each pattern wins.
// The scan deliberately covers the full text rather than a contact
// section, because contact lines usually sit above any recognized header.
func Contact(text string) map[string]string {
	info := map[string]string{}

	if m := lexicon.EmailPattern.FindString(text); m != "" {
		info["email"] = m
	}
	if m := lexicon.PhonePattern.FindStringSubmatch(text); m != nil {
		info["phone"] = strings.Join(m[1:], "")
	}
	if m := lexicon.LinkedInPattern.FindString(text); m != "" {
		info["linkedin"] = m
	}
	if m := lexicon.GitHubPattern.FindString(text); m != "" {
		info["github"] = m
	}

	return info
}
