package ats

import "strings"

// DocumentType labels a document as either a resume or a transcript.
type DocumentType string

const (
	TypeResume     DocumentType = "resume"
	TypeTranscript DocumentType = "transcript"
)

// Valid reports whether the value is one of the two known labels.
func (t DocumentType) Valid() bool {
	return t == TypeResume || t == TypeTranscript
}

// Classify decides whether a document is a resume or a meeting transcript by
// counting keyword hits against the two indicator vocabularies. Finding an
// email or phone pattern adds 2 to the resume score. Ties resolve to
// transcript, so an empty document classifies as a transcript.
func Classify(text string) DocumentType {
	lower := strings.ToLower(text)

	resumeScore := 0
	for _, kw := range resumeKeywords {
		if strings.Contains(lower, kw) {
			resumeScore++
		}
	}

	transcriptScore := 0
	for _, kw := range transcriptKeywords {
		if strings.Contains(lower, kw) {
			transcriptScore++
		}
	}

	if emailPattern.MatchString(text) || phonePattern.MatchString(text) {
		resumeScore += 2
	}

	if resumeScore > transcriptScore {
		return TypeResume
	}
	return TypeTranscript
}
