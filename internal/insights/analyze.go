package insights

import (
	"context"
	"fmt"
	"time"

	"intellidocs-backend/internal/summarizer"
)

// TextAnalysis aggregates every transcript analysis part. Parts degrade
// independently: a failing extractor records its error alongside the other
// parts' results instead of aborting the whole analysis.
type TextAnalysis struct {
	Summary           summarizer.Result `json:"summary"`
	ActionItems       []string          `json:"action_items"`
	ActionItemsError  string            `json:"action_items_error,omitempty"`
	KeyDecisions      []string          `json:"key_decisions"`
	KeyDecisionsError string            `json:"key_decisions_error,omitempty"`
	Improvements      Improvements      `json:"improvements"`
	ImprovementsError string            `json:"improvements_error,omitempty"`
	AnalyzedAt        time.Time         `json:"analyzed_at"`
}

// AnalyzeText runs summarization, action item and decision extraction, and
// improvement suggestions over the text, best-effort.
func AnalyzeText(ctx context.Context, summaries *summarizer.Service, text string) TextAnalysis {
	analysis := TextAnalysis{AnalyzedAt: time.Now().UTC()}

	analysis.Summary = summaries.Summarize(ctx, text, 150, 50)

	analysis.ActionItemsError = runPart(func() {
		analysis.ActionItems = ExtractActionItems(text)
	})
	analysis.KeyDecisionsError = runPart(func() {
		analysis.KeyDecisions = ExtractDecisions(text)
	})
	analysis.ImprovementsError = runPart(func() {
		analysis.Improvements = SuggestImprovements(text)
	})

	return analysis
}

// runPart converts a panic in one analysis part into that part's error tag.
func runPart(fn func()) (errMsg string) {
	defer func() {
		if rec := recover(); rec != nil {
			errMsg = fmt.Sprintf("%v", rec)
		}
	}()
	fn()
	return ""
}
