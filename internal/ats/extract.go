package ats

import (
	"strconv"
	"strings"
)

// presentYear is what "Present" and "Current" resolve to in year ranges.
const presentYear = 2025

// ContactInfo holds independently extracted contact fields. Absent fields
// stay empty and feed both scoring and suggestions.
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// ExtractContact applies one pattern per field; the first match wins.
func ExtractContact(text string) ContactInfo {
	var contact ContactInfo
	contact.Email = emailPattern.FindString(text)
	contact.Phone = phonePattern.FindString(text)
	contact.LinkedIn = linkedinPattern.FindString(text)
	contact.GitHub = githubPattern.FindString(text)
	return contact
}

// SkillSet groups matched skills by category. Order within a category
// follows the vocabulary list, not document position.
type SkillSet struct {
	Technical map[string][]string `json:"technical"`
	Soft      []string            `json:"soft"`
}

// TotalCount returns the number of matched skills across all buckets.
func (s SkillSet) TotalCount() int {
	total := len(s.Soft)
	for _, list := range s.Technical {
		total += len(list)
	}
	return total
}

// ExtractSkills runs a case-insensitive substring test of the document
// against the fixed vocabulary. Multi-word skills match only as contiguous
// substrings.
func ExtractSkills(text string) SkillSet {
	lower := strings.ToLower(text)

	found := SkillSet{Technical: make(map[string][]string)}
	for _, category := range skillCategories {
		var matched []string
		for _, skill := range techSkills[category] {
			if strings.Contains(lower, skill) {
				matched = append(matched, skill)
			}
		}
		if len(matched) > 0 {
			found.Technical[category] = matched
		}
	}

	for _, skill := range softSkills {
		if strings.Contains(lower, skill) {
			found.Soft = append(found.Soft, skill)
		}
	}

	return found
}

// EducationEntry is a single degree mention. Extraction is
// multiplicity-preserving: repeated mentions produce repeated entries.
type EducationEntry struct {
	Degree string `json:"degree"`
	Level  string `json:"level"`
}

// ExtractEducation scans the three degree-family patterns independently
// across the whole text. Matches containing "bachelor" or "b." classify as
// undergraduate, everything else (doctorates included) as graduate.
func ExtractEducation(text string) []EducationEntry {
	var entries []EducationEntry
	for _, pattern := range degreePatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			lower := strings.ToLower(match)
			level := "graduate"
			if strings.Contains(lower, "bachelor") || strings.Contains(lower, "b.") {
				level = "undergraduate"
			}
			entries = append(entries, EducationEntry{Degree: match, Level: level})
		}
	}
	return entries
}

// EstimateExperienceYears sums the positive spans of all 4-digit year ranges
// found in the text. Overlapping employment periods are summed without
// overlap detection, so concurrent roles can overcount.
func EstimateExperienceYears(text string) int {
	total := 0
	for _, match := range yearRangePattern.FindAllStringSubmatch(text, -1) {
		start, err := strconv.Atoi(match[1] + match[2])
		if err != nil {
			continue
		}

		end := presentYear
		endPart := strings.ToLower(match[3])
		if !strings.Contains(endPart, "present") && !strings.Contains(endPart, "current") {
			end, err = strconv.Atoi(match[3])
			if err != nil {
				continue
			}
		}

		if diff := end - start; diff > 0 {
			total += diff
		}
	}
	return total
}

// SectionPresence records which conventional resume sections appear to
// exist. All six keys are always populated.
type SectionPresence struct {
	ContactInfo bool `json:"contact_info"`
	Summary     bool `json:"summary"`
	Experience  bool `json:"experience"`
	Education   bool `json:"education"`
	Skills      bool `json:"skills"`
	Projects    bool `json:"projects"`
}

// Count returns the number of sections present.
func (p SectionPresence) Count() int {
	n := 0
	for _, present := range []bool{p.ContactInfo, p.Summary, p.Experience, p.Education, p.Skills, p.Projects} {
		if present {
			n++
		}
	}
	return n
}

const sectionTotal = 6

// CheckSections probes for heading-like keywords anywhere in the text. A
// section counts as present regardless of structural position.
func CheckSections(text string) SectionPresence {
	lower := strings.ToLower(text)
	return SectionPresence{
		ContactInfo: contactSectionPattern.MatchString(text),
		Summary:     summarySectionPattern.MatchString(lower),
		Experience:  experienceSectionPattern.MatchString(lower),
		Education:   educationSectionPattern.MatchString(lower),
		Skills:      skillsSectionPattern.MatchString(lower),
		Projects:    projectsSectionPattern.MatchString(lower),
	}
}
