package lexicon

import (
	"regexp"
	"strings"
)

// SkillCategory groups canonical technical skill names.
type SkillCategory struct {
	Name   string
	Skills []string
}

// TechSkills is the canonical technical-skill vocabulary, by category.
var TechSkills = []SkillCategory{
	{"programming_languages", []string{
		"python", "javascript", "java", "c++", "c#", "ruby", "php", "swift", "kotlin",
		"typescript", "go", "rust", "scala", "r", "matlab", "perl", "shell", "bash",
	}},
	{"web_technologies", []string{
		"html", "css", "react", "angular", "vue", "node.js", "express", "django",
		"flask", "spring", "asp.net", "bootstrap", "jquery", "webpack", "sass",
	}},
	{"databases", []string{
		"mysql", "postgresql", "mongodb", "redis", "elasticsearch", "oracle",
		"sql server", "sqlite", "cassandra", "dynamodb", "firestore",
	}},
	{"cloud_platforms", []string{
		"aws", "azure", "google cloud", "gcp", "heroku", "digitalocean",
		"kubernetes", "docker", "terraform", "cloudformation",
	}},
	{"tools", []string{
		"git", "jenkins", "gitlab", "github", "jira", "confluence", "slack",
		"trello", "asana", "figma", "sketch", "adobe", "postman", "swagger",
	}},
	{"methodologies", []string{
		"agile", "scrum", "kanban", "devops", "ci/cd", "tdd", "bdd",
		"microservices", "rest", "graphql", "api", "mvc",
	}},
}

// SkillSynonym maps variant spellings and abbreviations to the canonical
// skill name they resolve to.
type SkillSynonym struct {
	Canonical string
	Variants  []string
}

// SkillSynonyms lists the accepted variants per canonical skill, in a
// fixed order so extraction output is deterministic.
var SkillSynonyms = []SkillSynonym{
	{"javascript", []string{"js", "java script"}},
	{"typescript", []string{"ts"}},
	{"c++", []string{"cpp", "c plus plus"}},
	{"c#", []string{"csharp", "c sharp"}},
	{"node.js", []string{"nodejs", "node"}},
	{"react", []string{"reactjs", "react.js"}},
	{"vue", []string{"vuejs", "vue.js"}},
	{"angular", []string{"angularjs", "angular.js"}},
	{"sql server", []string{"sqlserver", "mssql"}},
	{"postgresql", []string{"postgres", "pg"}},
	{"mongodb", []string{"mongo"}},
	{"aws", []string{"amazon web services"}},
	{"gcp", []string{"google cloud platform"}},
	{"ci/cd", []string{"continuous integration", "continuous deployment"}},
}

// SkillPattern is a whole-word matcher for one skill term. Word-boundary
// assertions are only valid next to word characters, so terms like "c++"
// and "c#" anchor their non-word edge on a character-class guard instead.
type SkillPattern struct {
	Canonical string
	Pattern   *regexp.Regexp
}

// SkillPatterns holds one compiled whole-word pattern per canonical skill
// and per synonym, in vocabulary order. Synonym matches carry the
// canonical name.
var SkillPatterns []SkillPattern

func init() {
	for _, cat := range TechSkills {
		for _, s := range cat.Skills {
			SkillPatterns = append(SkillPatterns, SkillPattern{s, WholeWord(s)})
		}
	}
	for _, syn := range SkillSynonyms {
		for _, v := range syn.Variants {
			SkillPatterns = append(SkillPatterns, SkillPattern{syn.Canonical, WholeWord(v)})
		}
	}
}

// WholeWord compiles a case-insensitive whole-word pattern for term. A \b
// assertion is added only where the term edge is a word character; terms
// ending in "+", "#" or "/" get a character-class guard instead, so "c++"
// still matches in "knows c++ well".
func WholeWord(term string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(strings.ToLower(term))
	var b strings.Builder
	b.WriteString(`(?i)`)
	if isWordChar(term[0]) {
		b.WriteString(`\b`)
	}
	b.WriteString(quoted)
	if isWordChar(term[len(term)-1]) {
		b.WriteString(`\b`)
	} else {
		b.WriteString(`(?:[^+#\w]|$)`)
	}
	return regexp.MustCompile(b.String())
}

func isWordChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
