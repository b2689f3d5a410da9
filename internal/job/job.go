// Package job analyzes job-posting text: industry, job type, remote
// posture, experience level, company size, required skills, ranked
// keywords, requirement buckets, salary mention and benefits.
package job

import (
	"regexp"
	"strings"

	"github.com/tailorhq/tailor/internal/extract"
	"github.com/tailorhq/tailor/internal/lexicon"
	"github.com/tailorhq/tailor/internal/segment"
)

// RemotePosture reports the work-location signals found in a posting.
// The flags are computed independently and may co-occur: a posting with
// conflicting language is reported as conflicting, not resolved.
type RemotePosture struct {
	FullyRemote bool `json:"fully_remote"`
	Hybrid      bool `json:"hybrid"`
	OnsiteOnly  bool `json:"onsite_only"`
}

// SalaryInfo reports whether compensation is mentioned. Range, Currency
// and Period are declared but never populated: detection stops at the
// boolean and full numeric parsing is not implemented.
type SalaryInfo struct {
	Mentioned bool   `json:"mentioned"`
	Range     string `json:"range"`
	Currency  string `json:"currency"`
	Period    string `json:"period"`
}

// Requirements buckets posting text by section kind. Responsibilities and
// Qualifications hold verbatim bullet lines; the skill buckets hold
// canonical skill names extracted from their sections.
type Requirements struct {
	RequiredSkills   []string `json:"required_skills"`
	PreferredSkills  []string `json:"preferred_skills"`
	Responsibilities []string `json:"responsibilities"`
	Qualifications   []string `json:"qualifications"`
}

// Analysis is the structured form of a job posting. Built per request,
// immutable after construction.
type Analysis struct {
	Title           string        `json:"job_title"`
	Company         string        `json:"company"`
	Location        string        `json:"location"`
	Industry        string        `json:"industry"`
	ExperienceLevel string        `json:"experience_level"`
	JobType         string        `json:"job_type"`
	Remote          RemotePosture `json:"remote_friendly"`
	RequiredSkills  []string      `json:"required_skills"`
	Keywords        []string      `json:"keywords"`
	Requirements    Requirements  `json:"requirements"`
	CompanySize     string        `json:"company_size"`
	Salary          SalaryInfo    `json:"salary_info"`
	Benefits        []string      `json:"benefits"`
}

// DefaultMaxKeywords caps the ranked keyword list.
const DefaultMaxKeywords = 20

// Analyze extracts the Analysis for one posting. Location may be empty.
// It never fails; heuristics that find nothing leave their defaults.
func Analyze(title, company, description, location string) *Analysis {
	lower := strings.ToLower(description)

	return &Analysis{
		Title:           title,
		Company:         company,
		Location:        location,
		Industry:        classifyIndustry(description, company),
		ExperienceLevel: classifyFirst(lower, lexicon.ExperienceLevels, lexicon.LevelNotSpecified),
		JobType:         classifyFirst(lower, lexicon.JobTypes, lexicon.JobTypeDefault),
		Remote:          remotePosture(lower),
		RequiredSkills:  ExtractSkills(description),
		Keywords:        Keywords(description, DefaultMaxKeywords),
		Requirements:    extractRequirements(description),
		CompanySize:     classifyFirst(lower, lexicon.CompanySizes, lexicon.CompanySizeUnknown),
		Salary:          detectSalary(description),
		Benefits:        scanBenefits(lower),
	}
}

// industryPatterns holds one compiled whole-word matcher per industry
// keyword, compiled once at init.
var industryPatterns = func() [][]*regexp.Regexp {
	out := make([][]*regexp.Regexp, len(lexicon.Industries))
	for i, ind := range lexicon.Industries {
		for _, kw := range ind.Keywords {
			out[i] = append(out[i], lexicon.WholeWord(kw))
		}
	}
	return out
}()

// classifyIndustry counts whole-word keyword hits per industry over the
// description plus company name. Strictly highest count wins; ties go to
// the earliest industry in the vocabulary; all zeros mean "other".
func classifyIndustry(description, company string) string {
	text := strings.ToLower(description + " " + company)

	best := lexicon.IndustryOther
	bestScore := 0
	for i, ind := range lexicon.Industries {
		score := 0
		for _, re := range industryPatterns[i] {
			score += len(re.FindAllStringIndex(text, -1))
		}
		if score > bestScore {
			best = ind.Name
			bestScore = score
		}
	}
	return best
}

// classifyFirst returns the first label whose any pattern matches the
// lowercased text, or fallback.
func classifyFirst(lower string, table []lexicon.Labeled, fallback string) string {
	for _, entry := range table {
		for _, re := range entry.Patterns {
			if re.MatchString(lower) {
				return entry.Label
			}
		}
	}
	return fallback
}

func remotePosture(lower string) RemotePosture {
	return RemotePosture{
		FullyRemote: anyMatch(lower, lexicon.RemotePatterns),
		Hybrid:      anyMatch(lower, lexicon.HybridPatterns),
		OnsiteOnly:  anyMatch(lower, lexicon.OnsitePatterns),
	}
}

func anyMatch(text string, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// extractRequirements segments the description with the posting header
// set and buckets each section: requirements/qualifications and
// responsibilities keep their bullet lines verbatim, skills sections feed
// canonical skill extraction, preferred sections feed the preferred
// bucket.
func extractRequirements(description string) Requirements {
	var req Requirements
	for _, sec := range segment.Segment(segment.SplitLines(description), lexicon.PostingHeaders) {
		body := sec.Text()
		switch sec.Kind {
		case lexicon.SectionRequirements:
			req.Qualifications = append(req.Qualifications, extract.Bullets(body)...)
		case lexicon.SectionResponsibilities:
			req.Responsibilities = append(req.Responsibilities, extract.Bullets(body)...)
		case lexicon.SectionSkills:
			req.RequiredSkills = append(req.RequiredSkills, ExtractSkills(body)...)
		case lexicon.SectionPreferred:
			req.PreferredSkills = append(req.PreferredSkills, ExtractSkills(body)...)
		}
	}
	return req
}

// detectSalary runs the salary patterns against the raw description and
// stops at the first hit. Only the Mentioned flag is set.
func detectSalary(description string) SalaryInfo {
	for _, re := range lexicon.SalaryPatterns {
		if re.MatchString(description) {
			return SalaryInfo{Mentioned: true}
		}
	}
	return SalaryInfo{}
}

func scanBenefits(lower string) []string {
	var out []string
	for _, b := range lexicon.Benefits {
		if strings.Contains(lower, b) {
			out = append(out, b)
		}
	}
	return out
}
