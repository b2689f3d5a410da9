package suggest

import (
	"errors"
	"math/rand/v2"
	"time"

	"google.golang.org/genai"
)

// MaxRetries is the number of additional attempts after the first call.
const MaxRetries = 3

// IsRetryable reports whether a Gemini error is worth retrying:
// rate limits and server-side failures.
func IsRetryable(err error) bool {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Code == 429 || apiErr.Code >= 500
}

// Backoff returns a duration for attempt n (0-indexed) with jitter.
func Backoff(attempt int) time.Duration {
	base := time.Duration(1<<uint(attempt)) * time.Second
	if base > 30*time.Second {
		base = 30 * time.Second
	}
	jitter := time.Duration(rand.Int64N(int64(base) / 2))
	return base + jitter
}
