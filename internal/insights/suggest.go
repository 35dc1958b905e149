package insights

import (
	"regexp"
	"strings"
)

// Suggestion is a single documentation improvement recommendation. The
// returned sequence preserves rule evaluation order.
type Suggestion struct {
	Type       string `json:"type"`
	Issue      string `json:"issue"`
	Suggestion string `json:"suggestion"`
}

// Improvements bundles the suggestion list with the stats used to derive it.
type Improvements struct {
	TotalSuggestions int          `json:"total_suggestions"`
	Suggestions      []Suggestion `json:"suggestions"`
	WordCount        int          `json:"word_count"`
	ReadabilityScore int          `json:"readability_score"`
}

var (
	headingLinePattern  = regexp.MustCompile(`(?m)^[A-Z][^.!?\n]{3,50}:?\s*$`)
	datePattern         = regexp.MustCompile(`\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\w+ \d{1,2},? \d{4}`)
	attendeesPattern    = regexp.MustCompile(`(?i)(?:attendees?|participants?|present):`)
	actionHeaderProbe   = regexp.MustCompile(`(?i)(?:action items?|to[- ]do|tasks?|next steps?):`)
	passiveVoicePattern = regexp.MustCompile(`\b(?:was|were|been|being)\s+\w+ed\b`)
)

// SuggestImprovements checks a document for structural and clarity issues
// and returns rule-table suggestions plus word count and readability.
func SuggestImprovements(text string) Improvements {
	suggestions := make([]Suggestion, 0, 6)

	if !headingLinePattern.MatchString(text) {
		suggestions = append(suggestions, Suggestion{
			Type:       "structure",
			Issue:      "No clear headings or sections",
			Suggestion: `Add clear section headings like "Discussion Points", "Decisions", "Action Items"`,
		})
	}

	if !datePattern.MatchString(text) {
		suggestions = append(suggestions, Suggestion{
			Type:       "metadata",
			Issue:      "No date found",
			Suggestion: "Add the meeting/document date at the top",
		})
	}

	if !attendeesPattern.MatchString(text) && strings.Contains(strings.ToLower(text), "meeting") {
		suggestions = append(suggestions, Suggestion{
			Type:       "metadata",
			Issue:      "No attendees listed",
			Suggestion: "List meeting attendees for better context",
		})
	}

	if !actionHeaderProbe.MatchString(text) {
		suggestions = append(suggestions, Suggestion{
			Type:       "content",
			Issue:      "No clear action items section",
			Suggestion: `Add an "Action Items" section to track follow-ups`,
		})
	}

	wordCount := len(strings.Fields(text))
	if wordCount < 50 {
		suggestions = append(suggestions, Suggestion{
			Type:       "completeness",
			Issue:      "Document is very short",
			Suggestion: "Consider adding more detail about discussions and outcomes",
		})
	} else if wordCount > 1000 {
		suggestions = append(suggestions, Suggestion{
			Type:       "conciseness",
			Issue:      "Document is very long",
			Suggestion: "Consider breaking into sections or creating a summary at the top",
		})
	}

	if len(passiveVoicePattern.FindAllString(text, -1)) > 5 {
		suggestions = append(suggestions, Suggestion{
			Type:       "clarity",
			Issue:      "Frequent use of passive voice",
			Suggestion: `Use active voice for clearer communication (e.g., "John completed" instead of "was completed by John")`,
		})
	}

	return Improvements{
		TotalSuggestions: len(suggestions),
		Suggestions:      suggestions,
		WordCount:        wordCount,
		ReadabilityScore: CalculateReadability(text),
	}
}
