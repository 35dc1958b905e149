package ats

import "fmt"

// Suggestion is a single improvement recommendation. The returned sequence
// preserves rule evaluation order and is not sorted by priority.
type Suggestion struct {
	Priority   string `json:"priority"`
	Category   string `json:"category"`
	Issue      string `json:"issue"`
	Suggestion string `json:"suggestion"`
}

// SuggestImprovements turns extracted resume facts into prioritized,
// human-readable suggestions via a fixed rule table.
func SuggestImprovements(text string, sections SectionPresence, skills SkillSet, contact ContactInfo) []Suggestion {
	suggestions := make([]Suggestion, 0, 7)

	if contact.Email == "" {
		suggestions = append(suggestions, Suggestion{
			Priority:   "high",
			Category:   "contact",
			Issue:      "Missing email address",
			Suggestion: "Add a professional email address at the top of your resume",
		})
	}
	if contact.Phone == "" {
		suggestions = append(suggestions, Suggestion{
			Priority:   "high",
			Category:   "contact",
			Issue:      "Missing phone number",
			Suggestion: "Include a phone number for easy contact",
		})
	}

	if !sections.Summary {
		suggestions = append(suggestions, Suggestion{
			Priority:   "medium",
			Category:   "structure",
			Issue:      "No professional summary",
			Suggestion: "Add a 2-3 sentence professional summary at the top highlighting your key strengths",
		})
	}
	if !sections.Skills {
		suggestions = append(suggestions, Suggestion{
			Priority:   "high",
			Category:   "structure",
			Issue:      "No skills section",
			Suggestion: `Create a dedicated "Skills" section listing your technical and soft skills`,
		})
	}
	if !sections.Projects {
		suggestions = append(suggestions, Suggestion{
			Priority:   "medium",
			Category:   "content",
			Issue:      "No projects section",
			Suggestion: `Add a "Projects" section showcasing your practical work and achievements`,
		})
	}

	if total := skills.TotalCount(); total < 8 {
		suggestions = append(suggestions, Suggestion{
			Priority:   "medium",
			Category:   "skills",
			Issue:      "Limited skills listed",
			Suggestion: fmt.Sprintf("You have only %d skills listed. Add more relevant technical and soft skills (aim for 12-15)", total),
		})
	}

	if len(quantifiedPattern.FindAllString(text, -1)) < 3 {
		suggestions = append(suggestions, Suggestion{
			Priority:   "medium",
			Category:   "content",
			Issue:      "Lack of quantifiable achievements",
			Suggestion: `Add numbers and metrics to your accomplishments (e.g., "Increased efficiency by 30%", "Managed $50K budget")`,
		})
	}

	return suggestions
}

// sectionsScore renders the "n/6" fraction used in analysis responses.
func sectionsScore(sections SectionPresence) string {
	return fmt.Sprintf("%d/%d", sections.Count(), sectionTotal)
}
