package ats

import (
	"strings"
	"time"
)

// SkillsSummary is the outward-facing skills block with a precomputed total.
type SkillsSummary struct {
	Technical  map[string][]string `json:"technical"`
	Soft       []string            `json:"soft"`
	TotalCount int                 `json:"total_count"`
}

// ResumeAnalysis aggregates every resume extractor and scorer output.
type ResumeAnalysis struct {
	DocumentType      DocumentType     `json:"document_type"`
	ATSScore          int              `json:"ats_score"`
	ContactInfo       ContactInfo      `json:"contact_info"`
	Skills            SkillsSummary    `json:"skills"`
	Education         []EducationEntry `json:"education"`
	ExperienceYears   int              `json:"experience_years"`
	SectionsPresent   SectionPresence  `json:"sections_present"`
	SectionsScore     string           `json:"sections_score"`
	KeywordMatchScore *int             `json:"keyword_match_score"`
	Suggestions       []Suggestion     `json:"suggestions"`
	SuggestionCount   int              `json:"suggestion_count"`
	WordCount         int              `json:"word_count"`
	AnalyzedAt        time.Time        `json:"analyzed_at"`
}

// AnalyzeResume runs the complete ATS analysis for a resume, optionally
// matched against a job description.
func AnalyzeResume(text, jobDescription string) ResumeAnalysis {
	contact := ExtractContact(text)
	skills := ExtractSkills(text)
	education := ExtractEducation(text)
	sections := CheckSections(text)

	analysis := ResumeAnalysis{
		DocumentType: TypeResume,
		ATSScore:     ScoreATS(text, jobDescription),
		ContactInfo:  contact,
		Skills: SkillsSummary{
			Technical:  skills.Technical,
			Soft:       skills.Soft,
			TotalCount: skills.TotalCount(),
		},
		Education:       education,
		ExperienceYears: EstimateExperienceYears(text),
		SectionsPresent: sections,
		SectionsScore:   sectionsScore(sections),
		Suggestions:     SuggestImprovements(text, sections, skills, contact),
		WordCount:       len(strings.Fields(text)),
		AnalyzedAt:      time.Now().UTC(),
	}
	analysis.SuggestionCount = len(analysis.Suggestions)

	if jobDescription != "" {
		match := MatchKeywords(text, jobDescription)
		analysis.KeywordMatchScore = &match
	}

	return analysis
}
