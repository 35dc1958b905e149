// Package report renders analysis results into PDF reports using
// github.com/jung-kurt/gofpdf. Resumes and transcripts get distinct layouts.
package report

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"intellidocs-backend/internal/ats"
	"intellidocs-backend/internal/documents"
)

// Build renders the document's stored analysis into a PDF. Resume documents
// get the ATS layout; everything else gets the transcript layout.
func Build(doc documents.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	if doc.DocumentType == string(ats.TypeResume) && doc.Results.ATSAnalysis != nil {
		writeResumeReport(pdf, doc)
	} else {
		writeTranscriptReport(pdf, doc)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}

func writeResumeReport(pdf *gofpdf.Fpdf, doc documents.Document) {
	analysis := doc.Results.ATSAnalysis

	writeTitle(pdf, "Resume Analysis Report")
	writeSubtitle(pdf, doc.Title)

	writeHeading(pdf, "ATS Score")
	score := fmt.Sprintf("%d / 100", analysis.ATSScore)
	if analysis.KeywordMatchScore != nil {
		score += fmt.Sprintf("  (keyword match %d%%)", *analysis.KeywordMatchScore)
	}
	writeBody(pdf, score)

	writeHeading(pdf, "Contact Information")
	contact := []string{}
	if analysis.ContactInfo.Email != "" {
		contact = append(contact, "Email: "+analysis.ContactInfo.Email)
	}
	if analysis.ContactInfo.Phone != "" {
		contact = append(contact, "Phone: "+analysis.ContactInfo.Phone)
	}
	if analysis.ContactInfo.LinkedIn != "" {
		contact = append(contact, "LinkedIn: "+analysis.ContactInfo.LinkedIn)
	}
	if analysis.ContactInfo.GitHub != "" {
		contact = append(contact, "GitHub: "+analysis.ContactInfo.GitHub)
	}
	if len(contact) == 0 {
		contact = append(contact, "No contact details detected")
	}
	writeList(pdf, contact)

	writeHeading(pdf, "Technical Skills")
	categories := make([]string, 0, len(analysis.Skills.Technical))
	for category := range analysis.Skills.Technical {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	if len(categories) == 0 {
		writeBody(pdf, "No technical skills detected")
	}
	for _, category := range categories {
		writeBody(pdf, fmt.Sprintf("%s: %s", category, strings.Join(analysis.Skills.Technical[category], ", ")))
	}

	writeHeading(pdf, "Experience & Statistics")
	writeList(pdf, []string{
		fmt.Sprintf("Estimated experience: %d years", analysis.ExperienceYears),
		fmt.Sprintf("Sections present: %s", analysis.SectionsScore),
		fmt.Sprintf("Word count: %d", analysis.WordCount),
		fmt.Sprintf("Total skills: %d", analysis.Skills.TotalCount),
	})

	writeHeading(pdf, "Improvement Suggestions")
	if len(analysis.Suggestions) == 0 {
		writeBody(pdf, "No suggestions")
	}
	for _, s := range analysis.Suggestions {
		writeBody(pdf, fmt.Sprintf("[%s] %s: %s", s.Priority, s.Issue, s.Suggestion))
	}
}

func writeTranscriptReport(pdf *gofpdf.Fpdf, doc documents.Document) {
	writeTitle(pdf, "Meeting Transcript Summary")
	writeSubtitle(pdf, doc.Title)

	writeHeading(pdf, "Summary")
	if doc.Results.Summary != nil && doc.Results.Summary.Summary != nil {
		writeBody(pdf, *doc.Results.Summary.Summary)
	} else {
		writeBody(pdf, "No summary available")
	}

	writeHeading(pdf, "Action Items")
	if len(doc.Results.ActionItems) == 0 {
		writeBody(pdf, "No action items detected")
	}
	writeList(pdf, doc.Results.ActionItems)

	writeHeading(pdf, "Key Decisions")
	if len(doc.Results.KeyDecisions) == 0 {
		writeBody(pdf, "No decisions detected")
	}
	writeList(pdf, doc.Results.KeyDecisions)

	writeHeading(pdf, "Documentation Suggestions")
	if doc.Results.Improvements == nil || len(doc.Results.Improvements.Suggestions) == 0 {
		writeBody(pdf, "No suggestions")
		return
	}
	for _, s := range doc.Results.Improvements.Suggestions {
		writeBody(pdf, fmt.Sprintf("[%s] %s: %s", s.Type, s.Issue, s.Suggestion))
	}
}

func writeTitle(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 9, text, "", "L", false)
	pdf.Ln(2)
}

func writeSubtitle(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "I", 11)
	pdf.MultiCell(0, 6, text, "", "L", false)
	pdf.Ln(2)
}

func writeHeading(pdf *gofpdf.Fpdf, text string) {
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.MultiCell(0, 7, text, "", "L", false)
}

func writeBody(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 5, text, "", "L", false)
}

func writeList(pdf *gofpdf.Fpdf, items []string) {
	pdf.SetFont("Helvetica", "", 11)
	for _, item := range items {
		pdf.MultiCell(0, 5, "- "+item, "", "L", false)
	}
}
