package parser

import (
	"strings"
	"testing"
)

func TestMarkdownParser_HeadingsBecomeBareLines(t *testing.T) {
	input := `# Jane Doe

Backend engineer.

## Skills

- Python
- Docker

## Experience

Acme Corp.
`
	p := &MarkdownParser{}
	got, err := p.Parse(strings.NewReader(input), "resume.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Jane Doe\n\nBackend engineer.\n\nSkills\n\n- Python\n- Docker\n\nExperience\n\nAcme Corp."
	if got != want {
		t.Errorf("expected:\n%q\ngot:\n%q", want, got)
	}
}

func TestMarkdownParser_HeadingMarkersStripped(t *testing.T) {
	input := "## Technical Skills\n\nPython, Go\n"
	p := &MarkdownParser{}
	got, err := p.Parse(strings.NewReader(input), "skills.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(got, "#") {
		t.Errorf("expected heading markers stripped, got %q", got)
	}
	if !strings.HasPrefix(got, "Technical Skills\n") {
		t.Errorf("expected heading on its own line, got %q", got)
	}
}

func TestMarkdownParser_NoHeadings(t *testing.T) {
	input := "Just some plain text.\n\nAnother paragraph here."
	p := &MarkdownParser{}
	got, err := p.Parse(strings.NewReader(input), "plain.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "Just some plain text.") {
		t.Errorf("expected first paragraph, got %q", got)
	}
	if !strings.Contains(got, "Another paragraph here.") {
		t.Errorf("expected second paragraph, got %q", got)
	}
}

func TestMarkdownParser_CodeBlocksKept(t *testing.T) {
	input := "# Projects\n\nCLI tool:\n\n```\ntailor --match resume.pdf\n```\n\nMore text after code.\n"
	p := &MarkdownParser{}
	got, err := p.Parse(strings.NewReader(input), "projects.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "tailor --match resume.pdf") {
		t.Errorf("expected code block content kept, got %q", got)
	}
	if !strings.Contains(got, "More text after code.") {
		t.Errorf("expected post-code text, got %q", got)
	}
}

func TestMarkdownParser_EmptyInput(t *testing.T) {
	p := &MarkdownParser{}
	got, err := p.Parse(strings.NewReader(""), "empty.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestHTMLParser_BlocksAndHeadings(t *testing.T) {
	input := `<html><head><title>Resume</title><style>p{color:red}</style></head><body>
<nav>Home | About</nav>
<h1>Jane Doe</h1>
<p>Backend engineer.</p>
<h2>Skills</h2>
<ul><li>Python</li><li>Docker</li></ul>
<script>alert("hi")</script>
</body></html>`
	p := &HTMLParser{}
	got, err := p.Parse(strings.NewReader(input), "resume.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"Jane Doe", "Backend engineer.", "Skills", "Python", "Docker"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q, got %q", want, got)
		}
	}
	for _, banned := range []string{"alert", "color:red", "Home | About"} {
		if strings.Contains(got, banned) {
			t.Errorf("expected %q to be skipped, got %q", banned, got)
		}
	}
	// Heading must land on its own line for downstream segmentation.
	if !strings.Contains(got, "\nSkills\n") {
		t.Errorf("expected heading on its own line, got %q", got)
	}
}

func TestHTMLParser_NoBody(t *testing.T) {
	p := &HTMLParser{}
	got, err := p.Parse(strings.NewReader("<p>fragment text</p>"), "frag.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "fragment text") {
		t.Errorf("expected fragment text, got %q", got)
	}
}
