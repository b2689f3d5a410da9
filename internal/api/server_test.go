package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tailorhq/tailor/internal/config"
	"github.com/tailorhq/tailor/internal/suggest"
)

const testAPIKey = "test-key"

func testServer() *Server {
	cfg := config.Config{
		Port:           "0",
		TailorAPIKey:   testAPIKey,
		MaxUploadBytes: 1 << 20,
		MaxKeywords:    20,
		SuggestTimeout: 5 * time.Second,
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	suggester := suggest.NewSuggester(nil, nil, log)
	return NewServer(suggester, log, cfg)
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Authorization", "Bearer "+testAPIKey)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	return w
}

func TestHealthIsPublic(t *testing.T) {
	s := testServer()
	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok"`) {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestAuthRequired(t *testing.T) {
	s := testServer()
	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc"},
		{"wrong key", "Bearer wrong"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/formats", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			s.ServeHTTP(w, req)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", w.Code)
			}
		})
	}
}

func TestFormats(t *testing.T) {
	s := testServer()
	w := doJSON(t, s, "GET", "/api/formats", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Extensions []string `json:"extensions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Extensions) == 0 {
		t.Error("expected at least one supported extension")
	}
}

func TestJobAnalyze(t *testing.T) {
	s := testServer()
	w := doJSON(t, s, "POST", "/api/job/analyze", map[string]string{
		"title":       "Senior Python Developer",
		"company":     "Acme",
		"description": "We need a senior engineer with Python and AWS. 5+ years of experience. Fully remote.",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["experience_level"] != "senior" {
		t.Errorf("expected senior, got %v", resp["experience_level"])
	}
	remote, _ := resp["remote_friendly"].(map[string]any)
	if remote["fully_remote"] != true {
		t.Errorf("expected fully_remote=true, got %v", resp["remote_friendly"])
	}
}

func TestJobAnalyzeRequiresDescription(t *testing.T) {
	s := testServer()
	w := doJSON(t, s, "POST", "/api/job/analyze", map[string]string{"title": "Engineer"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestJobKeywords(t *testing.T) {
	s := testServer()
	w := doJSON(t, s, "POST", "/api/job/keywords", map[string]any{
		"text":         "Kubernetes experience required. Kubernetes and Docker deployments.",
		"max_keywords": 5,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Keywords []string `json:"keywords"`
		Skills   []string `json:"skills"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Keywords) == 0 || resp.Keywords[0] != "kubernetes" {
		t.Errorf("expected kubernetes as top keyword, got %v", resp.Keywords)
	}
	if len(resp.Keywords) > 5 {
		t.Errorf("expected at most 5 keywords, got %d", len(resp.Keywords))
	}
}

func TestMatchFromRawInputs(t *testing.T) {
	s := testServer()
	w := doJSON(t, s, "POST", "/api/match", map[string]any{
		"resume_text": "Skills\npython, aws, docker",
		"posting": map[string]string{
			"title":       "Python Developer",
			"description": "Looking for Python and AWS experience.",
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		MatchScore      float64  `json:"match_score"`
		ATSScore        float64  `json:"ats_score"`
		MissingKeywords []string `json:"missing_keywords"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.MatchScore <= 0 || resp.MatchScore > 100 {
		t.Errorf("match_score out of range: %v", resp.MatchScore)
	}
	if resp.ATSScore <= 0 || resp.ATSScore > 100 {
		t.Errorf("ats_score out of range: %v", resp.ATSScore)
	}
}

func TestMatchRequiresResume(t *testing.T) {
	s := testServer()
	w := doJSON(t, s, "POST", "/api/match", map[string]any{
		"posting": map[string]string{"description": "Python needed."},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestTailorReturnsSuggestions(t *testing.T) {
	// No generator configured: the suggester serves the fallback set.
	s := testServer()
	w := doJSON(t, s, "POST", "/api/tailor", map[string]any{
		"resume_text": "Skills\npython",
		"posting": map[string]string{
			"title":       "Platform Engineer",
			"description": "Kubernetes and Terraform required.",
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Suggestions     []suggest.Suggestion `json:"suggestions"`
		PriorityChanges []suggest.Suggestion `json:"priority_changes"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Suggestions) == 0 {
		t.Fatal("expected suggestions")
	}
	for _, sg := range resp.PriorityChanges {
		if sg.Priority < 4 {
			t.Errorf("priority_changes must have priority >= 4, got %d", sg.Priority)
		}
	}
}

func TestResumeParseUpload(t *testing.T) {
	s := testServer()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "resume.txt")
	if err != nil {
		t.Fatal(err)
	}
	io.WriteString(fw, "John Smith\njohn@example.com\n\nSkills\nPython, Docker\n")
	mw.Close()

	req := httptest.NewRequest("POST", "/api/resume/parse", &buf)
	req.Header.Set("Authorization", "Bearer "+testAPIKey)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Resume struct {
			PersonalInfo map[string]string `json:"personal_info"`
			Skills       []string          `json:"skills"`
		} `json:"resume"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Resume.PersonalInfo["email"] != "john@example.com" {
		t.Errorf("expected email extracted, got %v", resp.Resume.PersonalInfo)
	}
	if len(resp.Resume.Skills) != 2 {
		t.Errorf("expected 2 skills, got %v", resp.Resume.Skills)
	}
}

func TestResumeParseRejectsUnsupportedType(t *testing.T) {
	s := testServer()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, _ := mw.CreateFormFile("file", "resume.exe")
	io.WriteString(fw, "binary")
	mw.Close()

	req := httptest.NewRequest("POST", "/api/resume/parse", &buf)
	req.Header.Set("Authorization", "Bearer "+testAPIKey)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestLLMStats(t *testing.T) {
	s := testServer()
	w := doJSON(t, s, "GET", "/api/stats/llm", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "stats") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}
