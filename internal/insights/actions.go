package insights

import (
	"regexp"
	"strings"
)

const (
	maxActionItems = 10
	maxDecisions   = 5
)

// Section-header strategies capture the block following a recognized heading;
// the block is then split on bullet and numbered-list delimiters.
var actionHeaderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)action items?:?\s*(.*?)(?:\n\n|\z)`),
	regexp.MustCompile(`(?is)to[- ]do:?\s*(.*?)(?:\n\n|\z)`),
	regexp.MustCompile(`(?is)tasks?:?\s*(.*?)(?:\n\n|\z)`),
	regexp.MustCompile(`(?is)next steps?:?\s*(.*?)(?:\n\n|\z)`),
}

// Free-text strategies pick up imperative phrasing anywhere in the text.
var actionVerbPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:need to|must|should|will|going to|have to)\s+[^.!?\n]{10,100}`),
	regexp.MustCompile(`(?i)(?:complete|finish|prepare|review|update|send|schedule)\s+[^.!?\n]{10,100}`),
}

var decisionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:decided|agreed|approved|concluded)\s+(?:to|that|on)\s+[^.!?\n]{10,150}`),
	regexp.MustCompile(`(?i)(?:decision|resolution|agreement):?\s*[^.!?\n]{10,150}`),
	regexp.MustCompile(`(?i)(?:we will|we shall|it was decided)\s+[^.!?\n]{10,150}`),
}

var listDelimiterPattern = regexp.MustCompile(`\n[-•*]|\n\d+\.`)

// ExtractActionItems merges section-header and verb-trigger matches into a
// single ordered list, deduplicated case-insensitively (first occurrence
// wins) and capped at 10 entries.
func ExtractActionItems(text string) []string {
	var items []string

	for _, pattern := range actionHeaderPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			for _, candidate := range listDelimiterPattern.Split(match[1], -1) {
				candidate = strings.TrimSpace(candidate)
				if len(candidate) > 10 {
					items = append(items, candidate)
				}
			}
		}
	}

	for _, pattern := range actionVerbPatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			items = append(items, strings.TrimSpace(match))
		}
	}

	return dedupeFold(items, maxActionItems)
}

// ExtractDecisions pulls decision statements out of meeting notes, capped at
// 5 entries after case-insensitive deduplication.
func ExtractDecisions(text string) []string {
	var decisions []string
	for _, pattern := range decisionPatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			decisions = append(decisions, strings.TrimSpace(match))
		}
	}
	return dedupeFold(decisions, maxDecisions)
}

// dedupeFold removes case-insensitive duplicates, keeping the first
// occurrence with its original casing, then truncates to the limit.
func dedupeFold(items []string, limit int) []string {
	seen := make(map[string]struct{}, len(items))
	unique := make([]string, 0, len(items))
	for _, item := range items {
		key := strings.ToLower(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, item)
	}
	if len(unique) > limit {
		unique = unique[:limit]
	}
	return unique
}
