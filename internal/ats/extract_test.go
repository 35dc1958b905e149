package ats

import (
	"strings"
	"testing"
)

const sampleResume = `John Doe
john@example.com
555-123-4567
linkedin.com/in/johndoe
github.com/johndoe

Summary
Engineer who ships.

Skills: Python, Go, React, SQL, Docker

Education
Bachelor of Science in Computer Science

Experience
Software Engineer 2019-2023
`

func TestExtractContact(t *testing.T) {
	contact := ExtractContact(sampleResume)

	if contact.Email != "john@example.com" {
		t.Fatalf("email = %q", contact.Email)
	}
	if contact.Phone != "555-123-4567" {
		t.Fatalf("phone = %q", contact.Phone)
	}
	if contact.LinkedIn != "linkedin.com/in/johndoe" {
		t.Fatalf("linkedin = %q", contact.LinkedIn)
	}
	if contact.GitHub != "github.com/johndoe" {
		t.Fatalf("github = %q", contact.GitHub)
	}
}

func TestExtractContactMissingFieldsStayEmpty(t *testing.T) {
	contact := ExtractContact("no contact details here")
	if contact != (ContactInfo{}) {
		t.Fatalf("expected empty contact, got %+v", contact)
	}
}

func TestExtractContactPhoneVariants(t *testing.T) {
	for _, phone := range []string{"555-123-4567", "555.123.4567", "5551234567"} {
		got := ExtractContact("call " + phone + " today").Phone
		if got != phone {
			t.Fatalf("phone %q extracted as %q", phone, got)
		}
	}
}

func TestExtractSkills(t *testing.T) {
	skills := ExtractSkills(sampleResume)

	wantTechnical := map[string][]string{
		"languages":  {"python", "go"},
		"frameworks": {"react"},
		"cloud":      {"docker"},
		"databases":  {"sql"},
		"tools":      {"git"}, // matched inside github.com
	}
	for category, want := range wantTechnical {
		got := skills.Technical[category]
		if len(got) != len(want) {
			t.Fatalf("category %s = %v, want %v", category, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("category %s = %v, want %v", category, got, want)
			}
		}
	}
	if len(skills.Soft) != 0 {
		t.Fatalf("expected no soft skills, got %v", skills.Soft)
	}
	if skills.TotalCount() != 6 {
		t.Fatalf("TotalCount = %d, want 6", skills.TotalCount())
	}
}

func TestExtractSkillsEmptyCategoriesOmitted(t *testing.T) {
	skills := ExtractSkills("plain prose without any listed tooling")
	if _, ok := skills.Technical["frameworks"]; ok {
		t.Fatalf("expected absent category to be omitted")
	}
}

func TestExtractEducation(t *testing.T) {
	entries := ExtractEducation("Education\nBachelor of Science")
	if len(entries) != 1 {
		t.Fatalf("entries = %+v, want exactly one", entries)
	}
	if entries[0].Degree != "Bachelor of Science" {
		t.Fatalf("degree = %q", entries[0].Degree)
	}
	if entries[0].Level != "undergraduate" {
		t.Fatalf("level = %q, want undergraduate", entries[0].Level)
	}
}

// The degree patterns scan unanchored: the bachelor pattern runs greedily
// across line breaks, and the master abbreviations match inside ordinary
// words ("Summary" contains "ma"). Repeated mentions stay repeated.
func TestExtractEducationUnanchoredMatches(t *testing.T) {
	entries := ExtractEducation(sampleResume)
	if len(entries) != 2 {
		t.Fatalf("entries = %+v, want two", entries)
	}
	if entries[0].Level != "undergraduate" || !strings.HasPrefix(entries[0].Degree, "Bachelor of Science") {
		t.Fatalf("first entry = %+v", entries[0])
	}
	if !strings.Contains(entries[0].Degree, "Experience") {
		t.Fatalf("expected greedy match across lines, got %q", entries[0].Degree)
	}
	if entries[1].Degree != "ma" || entries[1].Level != "graduate" {
		t.Fatalf("second entry = %+v", entries[1])
	}
}

func TestExtractEducationDoctorateIsGraduate(t *testing.T) {
	entries := ExtractEducation("Doctorate in Physics")
	if len(entries) != 1 || entries[0].Level != "graduate" {
		t.Fatalf("entries = %+v, want one graduate entry", entries)
	}
}

func TestEstimateExperienceYears(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"single range", "Software Engineer 2019-2023", 4},
		{"present resolves to reference year", "Engineer 2020 - Present", 5},
		{"current resolves to reference year", "Engineer 2021-Current", 4},
		{"multiple ranges summed", "2015-2018 then 2019-2023", 7},
		{"overlapping ranges summed without dedupe", "2019-2023 and 2020-2022", 6},
		{"inverted range ignored", "2023-2019", 0},
		{"no ranges", "ten years of experience", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateExperienceYears(tt.text); got != tt.want {
				t.Fatalf("EstimateExperienceYears(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestCheckSections(t *testing.T) {
	sections := CheckSections(sampleResume)

	if !sections.ContactInfo || !sections.Summary || !sections.Experience ||
		!sections.Education || !sections.Skills {
		t.Fatalf("expected five sections present, got %+v", sections)
	}
	if sections.Projects {
		t.Fatalf("expected projects absent, got %+v", sections)
	}
	if sections.Count() != 5 {
		t.Fatalf("Count = %d, want 5", sections.Count())
	}
}

func TestCheckSectionsEmptyText(t *testing.T) {
	sections := CheckSections("")
	if sections.Count() != 0 {
		t.Fatalf("expected no sections in empty text, got %+v", sections)
	}
}
