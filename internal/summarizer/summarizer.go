// Package summarizer wraps an optional abstractive-summarization backend
// behind a deterministic fallback. Summarize never returns an error: every
// failure mode is captured in the Result.
package summarizer

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
)

// Backend truncation limits. Inputs are cut to maxInputWords before the
// backend sees them; the fallback keeps the first fallbackChars characters.
const (
	minSummarizableWords = 30
	maxInputWords        = 900
	fallbackChars        = 300
	fallbackMarker       = "... (summary unavailable)"
)

// State describes the lifecycle of the summarization capability.
type State int

const (
	StateUninitialized State = iota
	StateReady
	StateUnavailable
)

// Backend is an abstractive summarization capability. Implementations may
// block on network calls; the service wraps every call with a timeout.
type Backend interface {
	Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error)
}

// Result carries the summary or the reason there is none.
type Result struct {
	Summary          *string `json:"summary"`
	Note             string  `json:"note,omitempty"`
	Error            string  `json:"error,omitempty"`
	OriginalLength   int     `json:"original_length"`
	SummaryLength    int     `json:"summary_length"`
	CompressionRatio float64 `json:"compression_ratio,omitempty"`
}

// Service holds the injected backend and its invocation timeout. The zero
// value is uninitialized and behaves like an unavailable capability.
type Service struct {
	backend Backend
	timeout time.Duration
	state   State
}

// New constructs a Service. A nil backend yields an unavailable capability
// that always takes the deterministic fallback path.
func New(backend Backend, timeout time.Duration) *Service {
	state := StateReady
	if backend == nil {
		state = StateUnavailable
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Service{backend: backend, timeout: timeout, state: state}
}

// State reports the capability state.
func (s *Service) State() State {
	if s == nil {
		return StateUninitialized
	}
	return s.state
}

// Summarize produces a summary of the text. Texts under 30 words are
// returned verbatim with a note. Longer texts are truncated to 900 words and
// handed to the backend; if the backend is unavailable, fails, or times out,
// the result falls back to the first 300 characters of the truncated input.
func (s *Service) Summarize(ctx context.Context, text string, maxLength, minLength int) (result Result) {
	defer func() {
		if rec := recover(); rec != nil {
			result = Result{
				Summary: nil,
				Error:   fmt.Sprintf("%v", rec),
				Note:    "Summarization failed",
			}
		}
	}()

	words := strings.Fields(text)
	if len(words) < minSummarizableWords {
		return Result{
			Summary:        &text,
			Note:           "Text is too short to summarize effectively",
			OriginalLength: len(words),
			SummaryLength:  len(words),
		}
	}

	if len(words) > maxInputWords {
		words = words[:maxInputWords]
		text = strings.Join(words, " ")
	}

	summary, err := s.generate(ctx, text, maxLength, minLength)
	if err != nil {
		summary = truncateFallback(text)
	}

	summaryWords := len(strings.Fields(summary))
	return Result{
		Summary:          &summary,
		OriginalLength:   len(words),
		SummaryLength:    summaryWords,
		CompressionRatio: round2(float64(summaryWords) / float64(len(words))),
	}
}

func (s *Service) generate(ctx context.Context, text string, maxLength, minLength int) (string, error) {
	if s == nil || s.state != StateReady || s.backend == nil {
		return "", fmt.Errorf("summarization backend unavailable")
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	summary, err := s.backend.Summarize(callCtx, text, maxLength, minLength)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(summary) == "" {
		return "", fmt.Errorf("summarization backend returned empty output")
	}
	return summary, nil
}

func truncateFallback(text string) string {
	runes := []rune(text)
	if len(runes) > fallbackChars {
		runes = runes[:fallbackChars]
	}
	return string(runes) + fallbackMarker
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
