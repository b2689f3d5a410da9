// Package lexicon holds the read-only pattern and vocabulary tables the
// extraction pipeline runs on: section header patterns, contact patterns,
// technical skill vocabularies, classifier pattern lists and stop words.
// Everything is compiled once at init and treated as immutable; components
// receive the tables they need as parameters.
package lexicon

import "regexp"

// SectionKind labels a contiguous span of document text identified by a
// header line.
type SectionKind string

const (
	SectionContact          SectionKind = "contact"
	SectionSummary          SectionKind = "summary"
	SectionExperience       SectionKind = "experience"
	SectionEducation        SectionKind = "education"
	SectionSkills           SectionKind = "skills"
	SectionCertifications   SectionKind = "certifications"
	SectionProjects         SectionKind = "projects"
	SectionRequirements     SectionKind = "requirements"
	SectionResponsibilities SectionKind = "responsibilities"
	SectionPreferred        SectionKind = "preferred"
	SectionGeneral          SectionKind = "general"
)

// HeaderPatterns pairs a section kind with the patterns that identify its
// header lines. A slice of these defines both the recognizable kinds and
// the priority order used to break ties when a line matches more than one
// kind.
type HeaderPatterns struct {
	Kind     SectionKind
	Patterns []*regexp.Regexp
}

func compile(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(e))
	}
	return out
}

// ResumeHeaders identifies resume sections. Order is the tie-break
// priority: a header line matching several kinds resolves to the earliest.
var ResumeHeaders = []HeaderPatterns{
	{SectionContact, compile(
		`contact\s+information`,
		`personal\s+information`,
		`contact\s+details`,
	)},
	{SectionSummary, compile(
		`professional\s+summary`,
		`career\s+summary`,
		`summary`,
		`profile`,
		`objective`,
		`career\s+objective`,
	)},
	{SectionExperience, compile(
		`work\s+experience`,
		`professional\s+experience`,
		`employment\s+history`,
		`experience`,
		`career\s+history`,
	)},
	{SectionEducation, compile(
		`education`,
		`academic\s+background`,
		`educational\s+qualifications`,
	)},
	{SectionSkills, compile(
		`technical\s+skills`,
		`skills`,
		`core\s+competencies`,
		`technologies`,
		`expertise`,
	)},
	{SectionCertifications, compile(
		`certifications`,
		`certificates`,
		`professional\s+certifications`,
	)},
	{SectionProjects, compile(
		`projects`,
		`key\s+projects`,
		`notable\s+projects`,
	)},
}

// PostingHeaders identifies job-posting sections for requirements
// bucketing, in tie-break priority order.
var PostingHeaders = []HeaderPatterns{
	{SectionRequirements, compile(
		`requirements?`,
		`qualifications?`,
		`what we.?re looking for`,
	)},
	{SectionResponsibilities, compile(
		`responsibilit`,
		`duties`,
		`what you.?ll do`,
	)},
	{SectionSkills, compile(
		`technical\s+skills`,
		`skills`,
		`tech\s+stack`,
	)},
	{SectionPreferred, compile(
		`nice to have`,
		`preferred`,
		`bonus`,
	)},
}

// Contact field patterns. Email, LinkedIn and GitHub are scanned over the
// whole document because contact lines rarely sit under a recognized
// header.
var (
	EmailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	PhonePattern    = regexp.MustCompile(`(\+?1[-.\s]?)?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})`)
	LinkedInPattern = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	GitHubPattern   = regexp.MustCompile(`(?i)github\.com/[\w-]+`)
)

// BulletPattern matches a list-item marker at the start of a line:
// "•", "-", "*" or "<number>.".
var BulletPattern = regexp.MustCompile(`^\s*(?:[•\-*]|\d+\.)\s*`)
