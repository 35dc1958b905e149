package insights

import (
	"context"
	"testing"

	"intellidocs-backend/internal/summarizer"
)

func TestAnalyzeText(t *testing.T) {
	summaries := summarizer.New(nil, 0)
	text := "Meeting notes\n\nNext Steps:\n- Draft the quarterly report\n- Book the conference room\n\nWe agreed that option one is the better path."

	analysis := AnalyzeText(context.Background(), summaries, text)

	if analysis.Summary.Summary == nil {
		t.Fatalf("expected a summary result")
	}
	if len(analysis.ActionItems) == 0 {
		t.Fatalf("expected action items")
	}
	if len(analysis.KeyDecisions) == 0 {
		t.Fatalf("expected key decisions")
	}
	if analysis.ActionItemsError != "" || analysis.KeyDecisionsError != "" || analysis.ImprovementsError != "" {
		t.Fatalf("expected no part errors, got %+v", analysis)
	}
	if analysis.Improvements.WordCount == 0 {
		t.Fatalf("expected improvements stats")
	}
	if analysis.AnalyzedAt.IsZero() {
		t.Fatalf("expected analyzed_at to be set")
	}
}
