package suggest

import (
	"context"
	"log/slog"
	"time"

	"github.com/tailorhq/tailor/internal/job"
	"github.com/tailorhq/tailor/internal/resume"
)

// ContentGenerator produces raw model output for a prompt.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}

// Suggester turns a resume/posting pair into tailoring suggestions.
// It degrades to the static fallback set rather than failing: callers
// always receive at least one suggestion.
type Suggester struct {
	gen   ContentGenerator
	stats *Stats
	log   *slog.Logger
}

func NewSuggester(gen ContentGenerator, stats *Stats, log *slog.Logger) *Suggester {
	if stats == nil {
		stats = NewStats(time.Hour)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Suggester{gen: gen, stats: stats, log: log}
}

// Stats exposes the latency tracker for the stats endpoint.
func (s *Suggester) Stats() *Stats {
	return s.stats
}

// Generate asks the model for suggestions, retrying transient failures,
// and falls back to the deterministic set on any persistent error.
func (s *Suggester) Generate(ctx context.Context, rec *resume.Record, analysis *job.Analysis, missingKeywords []string) []Suggestion {
	if s.gen == nil {
		s.stats.RecordFallback()
		return Fallback(missingKeywords)
	}

	prompt := BuildPrompt(rec, analysis, missingKeywords)

	var lastErr error
	for attempt := 0; attempt <= MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				s.log.Warn("suggestion generation cancelled", "error", ctx.Err())
				s.stats.RecordFallback()
				return Fallback(missingKeywords)
			case <-time.After(Backoff(attempt - 1)):
			}
		}

		start := time.Now()
		raw, err := s.gen.GenerateContent(ctx, prompt)
		s.stats.Record(time.Since(start), err == nil)
		if err != nil {
			lastErr = err
			if IsRetryable(err) {
				s.log.Warn("model call failed, retrying",
					"model", s.gen.Model(), "attempt", attempt, "error", err)
				continue
			}
			break
		}

		suggestions, err := parseSuggestions(raw)
		if err != nil {
			s.log.Warn("unparseable model output", "model", s.gen.Model(), "error", err)
			s.stats.RecordFallback()
			return Fallback(missingKeywords)
		}
		if len(suggestions) == 0 {
			return Fallback(nil)
		}
		return suggestions
	}

	s.log.Warn("model unavailable, using fallback suggestions",
		"model", s.gen.Model(), "error", lastErr)
	s.stats.RecordFallback()
	return Fallback(missingKeywords)
}
