package ats

import "strings"

// Factor weights for the ATS score. Each sub-factor is capped at its own
// maximum; the blended result is clamped to [0,100] as the final step.
const (
	contactEmailPoints = 8
	contactPhonePoints = 7
	sectionMaxPoints   = 25
	educationPoints    = 15
	maxScore           = 100
)

// ScoreATS computes the weighted ATS compatibility score for a resume. When
// a job description is supplied, the keyword-match sub-score is blended in
// as base*0.7 + match*0.3 before clamping.
func ScoreATS(text, jobDescription string) int {
	score := 0.0

	contact := ExtractContact(text)
	if contact.Email != "" {
		score += contactEmailPoints
	}
	if contact.Phone != "" {
		score += contactPhonePoints
	}

	sections := CheckSections(text)
	score += float64(sections.Count()) / sectionTotal * sectionMaxPoints

	switch total := ExtractSkills(text).TotalCount(); {
	case total > 15:
		score += 20
	case total > 10:
		score += 15
	case total > 5:
		score += 10
	default:
		score += 5
	}

	if len(ExtractEducation(text)) > 0 {
		score += educationPoints
	}

	switch years := EstimateExperienceYears(text); {
	case years > 5:
		score += 15
	case years > 2:
		score += 10
	case years > 0:
		score += 5
	}

	switch words := len(strings.Fields(text)); {
	case words > 400 && words < 800:
		score += 10
	case words > 300 && words < 1000:
		score += 7
	default:
		score += 3
	}

	if jobDescription != "" {
		match := MatchKeywords(text, jobDescription)
		score = float64(int(score*0.7 + float64(match)*0.3))
	}

	return clampScore(int(score))
}

// MatchKeywords measures the fraction of a job description's significant
// vocabulary that also appears in the resume, as a 0-100 percentage.
// Tokens are lower-cased alphabetic runs of at least 3 characters; stop
// words are removed from the job-description set only.
func MatchKeywords(resumeText, jobDescription string) int {
	resumeWords := tokenSet(strings.ToLower(resumeText))
	jdWords := tokenSet(strings.ToLower(jobDescription))
	for word := range stopWords {
		delete(jdWords, word)
	}

	if len(jdWords) == 0 {
		return 0
	}

	matched := 0
	for word := range jdWords {
		if _, ok := resumeWords[word]; ok {
			matched++
		}
	}

	return int(float64(matched) / float64(len(jdWords)) * 100)
}

func tokenSet(lower string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, token := range wordTokenPattern.FindAllString(lower, -1) {
		set[token] = struct{}{}
	}
	return set
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > maxScore {
		return maxScore
	}
	return score
}
