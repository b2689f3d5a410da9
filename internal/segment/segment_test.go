package segment

import (
	"strings"
	"testing"

	"github.com/tailorhq/tailor/internal/lexicon"
)

func kinds(sections []Section) []lexicon.SectionKind {
	out := make([]lexicon.SectionKind, 0, len(sections))
	for _, s := range sections {
		out = append(out, s.Kind)
	}
	return out
}

func TestSegment_BasicResume(t *testing.T) {
	text := strings.Join([]string{
		"Jane Doe",
		"jane@example.com",
		"",
		"Professional Summary",
		"Backend engineer with eight years of shipping.",
		"",
		"Work Experience",
		"Acme Corp — Senior Engineer",
		"Built things.",
		"",
		"Skills",
		"Go, Python, SQL",
	}, "\n")

	sections := Segment(SplitLines(text), lexicon.ResumeHeaders)

	want := []lexicon.SectionKind{
		lexicon.SectionGeneral,
		lexicon.SectionSummary,
		lexicon.SectionExperience,
		lexicon.SectionSkills,
	}
	got := kinds(sections)
	if len(got) != len(want) {
		t.Fatalf("expected kinds %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected kinds %v, got %v", want, got)
		}
	}

	if sections[1].Text() != "Backend engineer with eight years of shipping." {
		t.Errorf("unexpected summary body: %q", sections[1].Text())
	}
}

func TestSegment_HeaderLineIsConsumed(t *testing.T) {
	sections := Segment([]string{"Skills", "Go", "Rust"}, lexicon.ResumeHeaders)
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	for _, line := range sections[0].Body {
		if strings.EqualFold(line, "skills") {
			t.Errorf("header line leaked into body: %v", sections[0].Body)
		}
	}
}

func TestSegment_PriorityTieBreak(t *testing.T) {
	// "experience" appears in both the experience and (via "educational
	// qualifications" absence) nothing else; craft a line matching both
	// summary ("profile") and experience ("experience"): summary comes
	// first in the set, so it must win.
	sections := Segment([]string{"experience profile", "body line"}, lexicon.ResumeHeaders)
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if sections[0].Kind != lexicon.SectionSummary {
		t.Errorf("expected summary to win the tie, got %s", sections[0].Kind)
	}
}

func TestSegment_NonContiguousKindsMerge(t *testing.T) {
	lines := []string{
		"Skills",
		"Go",
		"Education",
		"BSc",
		"Technical Skills",
		"Docker",
	}
	sections := Segment(lines, lexicon.ResumeHeaders)
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections (skills merged), got %d: %v", len(sections), kinds(sections))
	}
	if sections[0].Kind != lexicon.SectionSkills {
		t.Errorf("expected skills first (first-seen order), got %s", sections[0].Kind)
	}
	if sections[0].Text() != "Go\n\nDocker" {
		t.Errorf("expected blank-line separated merge, got %q", sections[0].Text())
	}
}

func TestSegment_EmptyBufferNotFlushed(t *testing.T) {
	// Back-to-back headers must not produce empty sections.
	sections := Segment([]string{"Summary", "Skills", "Go"}, lexicon.ResumeHeaders)
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d: %v", len(sections), kinds(sections))
	}
	if sections[0].Kind != lexicon.SectionSkills {
		t.Errorf("expected skills, got %s", sections[0].Kind)
	}
}

func TestSegment_BodyNeverResegments(t *testing.T) {
	// Headers are consumed on the first pass, so re-segmenting any body
	// must yield at most one general section: segmentation is stable.
	text := strings.Join([]string{
		"intro line",
		"Summary",
		"writes reliable services",
		"Work Experience",
		"first job",
		"",
		"second job",
		"Education",
		"a degree",
	}, "\n")
	for _, s := range Segment(SplitLines(text), lexicon.ResumeHeaders) {
		again := Segment(s.Body, lexicon.ResumeHeaders)
		if len(again) > 1 {
			t.Errorf("section %s body re-split into %v", s.Kind, kinds(again))
			continue
		}
		if len(again) == 1 && again[0].Kind != lexicon.SectionGeneral {
			t.Errorf("section %s body re-labeled as %s", s.Kind, again[0].Kind)
		}
	}
}

func TestSegment_PostingHeaders(t *testing.T) {
	lines := []string{
		"We are hiring.",
		"Responsibilities:",
		"- Ship features",
		"Requirements:",
		"- 5+ years of Go",
		"Nice to have:",
		"- Kubernetes",
	}
	sections := Segment(lines, lexicon.PostingHeaders)
	want := []lexicon.SectionKind{
		lexicon.SectionGeneral,
		lexicon.SectionResponsibilities,
		lexicon.SectionRequirements,
		lexicon.SectionPreferred,
	}
	got := kinds(sections)
	if len(got) != len(want) {
		t.Fatalf("expected kinds %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected kinds %v, got %v", want, got)
		}
	}
}
