package lexicon

import "regexp"

// Industry pairs an industry name with the keywords whose whole-word
// occurrence count scores it. Slice order is the tie-break: the first
// industry reaching the maximum count wins.
type Industry struct {
	Name     string
	Keywords []string
}

var Industries = []Industry{
	{"technology", []string{
		"software", "tech", "it", "computer", "digital", "startup",
		"saas", "platform", "development", "engineering",
	}},
	{"finance", []string{
		"bank", "financial", "investment", "trading", "fintech",
		"insurance", "credit", "loans", "payments",
	}},
	{"healthcare", []string{
		"health", "medical", "hospital", "pharmaceutical", "biotech",
		"clinical", "patient", "healthcare",
	}},
	{"consulting", []string{
		"consulting", "advisory", "strategy", "transformation",
		"implementation", "analysis",
	}},
	{"retail", []string{
		"retail", "ecommerce", "shopping", "consumer", "brand",
		"merchandise", "sales",
	}},
	{"education", []string{
		"education", "university", "school", "learning", "academic",
		"training", "curriculum",
	}},
}

// IndustryOther is the classification when every industry scores zero.
const IndustryOther = "other"

// Labeled pairs a classification label with the patterns that select it.
// Classifiers walk the slice in order and return the first label with any
// matching pattern.
type Labeled struct {
	Label    string
	Patterns []*regexp.Regexp
}

// ExperienceLevels classifies required seniority. Default when nothing
// matches is "not_specified".
var ExperienceLevels = []Labeled{
	{"entry", compile(
		`entry.?level`, `junior`, `0.?2 years?`, `new grad`, `recent grad`,
		`no experience`, `fresh`,
	)},
	{"mid", compile(
		`mid.?level`, `intermediate`, `2.?5 years?`, `3.?5 years?`,
		`some experience`,
	)},
	{"senior", compile(
		`senior`, `5\+ years?`, `6\+ years?`, `7\+ years?`, `experienced`,
		`lead`, `principal`,
	)},
	{"executive", compile(
		`director`, `manager`, `head of`, `vp`, `cto`, `ceo`, `executive`,
	)},
}

const LevelNotSpecified = "not_specified"

// JobTypes classifies the employment type. Default is "full-time".
var JobTypes = []Labeled{
	{"full-time", compile(`full.?time`, `permanent`, `salary`)},
	{"part-time", compile(`part.?time`)},
	{"contract", compile(`contract`, `contractor`, `freelance`, `consulting`)},
	{"internship", compile(`intern`, `internship`, `co.?op`)},
	{"temporary", compile(`temporary`, `temp`, `seasonal`)},
}

const JobTypeDefault = "full-time"

// Remote-posture pattern lists. The three flags are computed
// independently and are allowed to co-occur; a posting with conflicting
// language reports the conflict rather than hiding it.
var (
	RemotePatterns = compile(
		`remote`, `work from home`, `wfh`, `distributed team`,
		`anywhere`, `location independent`,
	)
	HybridPatterns = compile(
		`hybrid`, `flexible`, `some remote`, `occasionally remote`,
	)
	OnsitePatterns = compile(
		`on.?site`, `in.?office`, `no remote`, `must be local`,
	)
)

// CompanySizes estimates employer size from description phrasing.
// Default is "unknown".
var CompanySizes = []Labeled{
	{"startup", compile(
		`startup`, `early stage`, `seed`, `series [a-c]`,
		`small team`, `growing team`,
	)},
	{"small", compile(
		`small company`, `boutique`, `family.owned`,
		`under \d+ employees`,
	)},
	{"medium", compile(
		`mid.size`, `growing company`, `established`, `regional`,
	)},
	{"large", compile(
		`fortune \d+`, `global`, `international`,
		`enterprise`, `multinational`, `thousands of employees`,
	)},
}

const CompanySizeUnknown = "unknown"

// SalaryPatterns detect compensation mentions in the raw (not lowercased)
// description: a numeric range, a single dollar amount, or a bare range
// with a currency word.
var SalaryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\$(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)\s*(?:-|to)\s*\$?(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)\$(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)(\d{1,3}(?:,\d{3})*)\s*(?:-|to)\s*(\d{1,3}(?:,\d{3})*)\s*(?:USD|dollars?)`),
}

// Benefits is the fixed vocabulary for the benefits substring scan.
var Benefits = []string{
	"health insurance", "dental", "vision", "401k", "retirement",
	"pto", "vacation", "sick leave", "parental leave",
	"flexible hours", "work life balance", "professional development",
	"training", "conference", "stock options", "equity",
	"bonus", "commission", "gym", "wellness", "free lunch",
	"catered meals", "unlimited pto",
}

// StopWords are dropped before keyword frequency ranking. Beyond common
// English function words this includes job-posting boilerplate (role,
// candidate, experience) that would otherwise top every ranking.
var StopWords = map[string]bool{}

func init() {
	for _, w := range []string{
		"the", "and", "for", "are", "but", "not", "you", "all", "can", "had",
		"her", "was", "one", "our", "out", "day", "get", "has", "him", "his",
		"how", "its", "may", "new", "now", "old", "see", "two", "who", "boy",
		"did", "does", "let", "own", "say", "she", "too", "use", "will",
		"with", "have", "this", "that", "they", "would", "been", "their",
		"said", "each", "which",
		"work", "team", "company", "role", "position", "job", "candidate",
		"experience", "years",
	} {
		StopWords[w] = true
	}
}
