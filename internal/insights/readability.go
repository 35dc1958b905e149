package insights

import (
	"regexp"
	"strings"
)

var sentenceSplitPattern = regexp.MustCompile(`[.!?]+`)

// CalculateReadability scores text 0-100, higher is more readable, from
// average sentence length and the share of words longer than 7 characters.
// Text with no detectable sentences gets a neutral 50.
func CalculateReadability(text string) int {
	sentences := 0
	for _, s := range sentenceSplitPattern.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}
	if sentences == 0 {
		return 50
	}

	words := strings.Fields(text)
	avgSentenceLength := float64(len(words)) / float64(sentences)

	// 2 points lost per word over 15 words per sentence.
	lengthScore := 100 - (avgSentenceLength-15)*2
	if lengthScore < 0 {
		lengthScore = 0
	}

	complexWords := 0
	for _, w := range words {
		if len(w) > 7 {
			complexWords++
		}
	}
	complexityRatio := 0.0
	if len(words) > 0 {
		complexityRatio = float64(complexWords) / float64(len(words))
	}
	complexityScore := 100 - complexityRatio*100
	if complexityScore < 0 {
		complexityScore = 0
	}

	readability := int((lengthScore + complexityScore) / 2)
	if readability < 0 {
		return 0
	}
	if readability > 100 {
		return 100
	}
	return readability
}
