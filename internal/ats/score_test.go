package ats

import (
	"strings"
	"testing"
)

func TestScoreATSEmptyText(t *testing.T) {
	// Baseline floors: 5 for skills, 3 for word count.
	if got := ScoreATS("", ""); got != 8 {
		t.Fatalf("ScoreATS(empty) = %d, want 8", got)
	}
}

func TestScoreATSWithinBounds(t *testing.T) {
	texts := []string{
		"",
		sampleResume,
		strings.Repeat("python aws docker kubernetes sql leadership ", 200),
	}
	jds := []string{"", "python developer with sql and docker", "unrelated gardening role"}

	for _, text := range texts {
		for _, jd := range jds {
			got := ScoreATS(text, jd)
			if got < 0 || got > 100 {
				t.Fatalf("ScoreATS out of bounds: %d (jd=%q)", got, jd)
			}
		}
	}
}

func TestScoreATSContactPoints(t *testing.T) {
	base := ScoreATS("plain words here", "")
	withEmail := ScoreATS("plain words here reach me at a@b.io", "")
	if withEmail <= base {
		t.Fatalf("expected email to raise score: %d vs %d", withEmail, base)
	}
}

func TestScoreATSBlendWithJobDescription(t *testing.T) {
	// Empty resume scores 8; zero keyword match blends to int(8*0.7) = 5.
	if got := ScoreATS("", "python"); got != 5 {
		t.Fatalf("blended score = %d, want 5", got)
	}
}

func TestScoreATSDeterministic(t *testing.T) {
	first := ScoreATS(sampleResume, "python go engineer")
	for i := 0; i < 5; i++ {
		if got := ScoreATS(sampleResume, "python go engineer"); got != first {
			t.Fatalf("score changed between runs: %d then %d", first, got)
		}
	}
}

func TestMatchKeywords(t *testing.T) {
	resume := "python sql docker"
	jd := "the python and sql for teams"
	// JD tokens after stop-word removal: python, sql, teams. Two match.
	if got := MatchKeywords(resume, jd); got != 66 {
		t.Fatalf("MatchKeywords = %d, want 66", got)
	}
}

func TestMatchKeywordsEmptyJobDescription(t *testing.T) {
	if got := MatchKeywords("python", ""); got != 0 {
		t.Fatalf("MatchKeywords = %d, want 0", got)
	}
	// All tokens are stop words.
	if got := MatchKeywords("python", "the and for"); got != 0 {
		t.Fatalf("MatchKeywords stop-words-only = %d, want 0", got)
	}
}

func TestMatchKeywordsFullOverlap(t *testing.T) {
	if got := MatchKeywords("python sql", "python sql"); got != 100 {
		t.Fatalf("MatchKeywords = %d, want 100", got)
	}
}

func TestMatchKeywordsStopWordsKeptInResume(t *testing.T) {
	// Stop words are removed from the JD set only; resume tokens are untouched.
	if got := MatchKeywords("the python", "python"); got != 100 {
		t.Fatalf("MatchKeywords = %d, want 100", got)
	}
}
