package ats

import "regexp"

// skillCategories fixes the iteration order of the technical skill vocabulary.
var skillCategories = []string{"languages", "frameworks", "cloud", "databases", "tools", "ai_ml"}

// techSkills is the fixed technical skill vocabulary, keyed by category.
// Entries are matched as case-insensitive contiguous substrings of the
// document, in vocabulary order.
var techSkills = map[string][]string{
	"languages":  {"python", "java", "javascript", "typescript", "c++", "c#", "ruby", "php", "swift", "kotlin", "go", "rust", "scala"},
	"frameworks": {"react", "angular", "vue", "django", "flask", "spring", "node.js", "express", "fastapi", "rails", "laravel"},
	"cloud":      {"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "jenkins", "ci/cd", "devops"},
	"databases":  {"sql", "mysql", "postgresql", "mongodb", "redis", "dynamodb", "cassandra", "oracle"},
	"tools":      {"git", "jira", "confluence", "postman", "swagger", "linux", "agile", "scrum"},
	"ai_ml":      {"machine learning", "deep learning", "nlp", "tensorflow", "pytorch", "scikit-learn", "pandas", "numpy"},
}

var softSkills = []string{
	"leadership", "communication", "teamwork", "problem solving", "analytical",
	"collaboration", "project management", "time management", "adaptability",
	"critical thinking", "creativity", "attention to detail",
}

var resumeKeywords = []string{
	"education", "experience", "skills", "objective", "summary",
	"certifications", "projects", "work history", "professional experience",
	"bachelor", "master", "phd", "degree", "university", "college",
	"resume", "cv", "curriculum vitae",
}

var transcriptKeywords = []string{
	"meeting", "attendees", "discussion", "action items", "agenda",
	"minutes", "decisions", "next steps", "follow-up", "adjourned",
	"meeting notes", "participants", "date:", "time:",
}

// stopWords are dropped from the job-description token set before matching.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "this": {},
	"that": {}, "will": {}, "have": {}, "from": {}, "are": {}, "can": {},
}

var (
	emailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern    = regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/in/[a-zA-Z0-9-]+`)
	githubPattern   = regexp.MustCompile(`(?i)github\.com/[a-zA-Z0-9-]+`)

	// yearRangePattern matches ranges like "2019-2023" or "2020 - Present".
	yearRangePattern = regexp.MustCompile(`(?i)\b(19|20)(\d{2})\s*[-–—]\s*((?:19|20)\d{2}|Present|Current)\b`)

	wordTokenPattern  = regexp.MustCompile(`\b[a-z]{3,}\b`)
	quantifiedPattern = regexp.MustCompile(`\d+%|\$\d+|\d+\+`)
)

// degreePatterns scan the whole text independently; every match becomes a
// separate education entry.
var degreePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(Bachelor['\w\s]*|B\.?S\.?|B\.?A\.?|B\.?Tech\.?)`),
	regexp.MustCompile(`(?i)(Master['\w\s]*|M\.?S\.?|M\.?A\.?|M\.?Tech\.?|MBA)`),
	regexp.MustCompile(`(?i)(Ph\.?D\.?|Doctorate)`),
}

// sectionPatterns probe for heading-like keywords anywhere in the text. The
// contact_info probe runs against the raw text, the rest against the
// lower-cased text.
var (
	contactSectionPattern    = regexp.MustCompile(`@|phone|email|\d{3}[-.]?\d{3}`)
	summarySectionPattern    = regexp.MustCompile(`summary|objective|profile`)
	experienceSectionPattern = regexp.MustCompile(`experience|work history|employment`)
	educationSectionPattern  = regexp.MustCompile(`education|degree|university|college`)
	skillsSectionPattern     = regexp.MustCompile(`skills|technologies|technical skills`)
	projectsSectionPattern   = regexp.MustCompile(`projects|portfolio`)
)
