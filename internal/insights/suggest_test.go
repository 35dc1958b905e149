package insights

import (
	"strings"
	"testing"
)

func TestSuggestImprovementsEmptyText(t *testing.T) {
	improvements := SuggestImprovements("")

	// Heading, date, action items, and shortness rules fire; the attendees
	// rule needs the word "meeting" to apply.
	if improvements.TotalSuggestions != 4 {
		t.Fatalf("expected 4 suggestions, got %d: %+v", improvements.TotalSuggestions, improvements.Suggestions)
	}
	if improvements.WordCount != 0 {
		t.Fatalf("word count = %d, want 0", improvements.WordCount)
	}
	if improvements.ReadabilityScore != 50 {
		t.Fatalf("readability = %d, want 50", improvements.ReadabilityScore)
	}
}

func TestSuggestImprovementsWellFormedDocument(t *testing.T) {
	text := "Team Sync Notes:\n" +
		"Date: March 5, 2025\n" +
		"Attendees: Alice, Bob, Carol\n\n" +
		"Discussion covered the rollout plan and open risks in detail today.\n" +
		"Alice walked through the staged deployment and the monitoring story.\n" +
		"Bob raised capacity questions and Carol answered with current numbers.\n\n" +
		"Action Items:\n" +
		"- Alice drafts the rollout announcement for the wider group\n" +
		"- Bob checks the capacity dashboard against the projected load\n"

	improvements := SuggestImprovements(text)
	if improvements.TotalSuggestions != 0 {
		t.Fatalf("expected no suggestions, got %+v", improvements.Suggestions)
	}
	if improvements.WordCount < 50 {
		t.Fatalf("fixture too short: %d words", improvements.WordCount)
	}
}

func TestSuggestImprovementsAttendeesNeedsMeetingContext(t *testing.T) {
	withMeeting := SuggestImprovements("Notes from the meeting today about rollout")
	withoutMeeting := SuggestImprovements("Notes from the discussion today about rollout")

	if !hasIssue(withMeeting, "No attendees listed") {
		t.Fatalf("expected attendees suggestion with meeting context")
	}
	if hasIssue(withoutMeeting, "No attendees listed") {
		t.Fatalf("did not expect attendees suggestion without meeting context")
	}
}

func TestSuggestImprovementsPassiveVoice(t *testing.T) {
	passive := strings.Repeat("The report was completed by the team. ", 7)
	improvements := SuggestImprovements(passive)
	if !hasIssue(improvements, "Frequent use of passive voice") {
		t.Fatalf("expected passive voice suggestion, got %+v", improvements.Suggestions)
	}
}

func TestSuggestImprovementsLongDocument(t *testing.T) {
	long := strings.Repeat("steady progress on the plan today ", 300)
	improvements := SuggestImprovements(long)
	if !hasIssue(improvements, "Document is very long") {
		t.Fatalf("expected length suggestion, got %+v", improvements.Suggestions)
	}
}

func hasIssue(improvements Improvements, issue string) bool {
	for _, s := range improvements.Suggestions {
		if s.Issue == issue {
			return true
		}
	}
	return false
}
