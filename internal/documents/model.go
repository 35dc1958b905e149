package documents

import (
	"time"

	"intellidocs-backend/internal/ats"
	"intellidocs-backend/internal/insights"
	"intellidocs-backend/internal/summarizer"
)

// Document statuses.
const (
	StatusUploaded = "uploaded"
	StatusAnalyzed = "analyzed"
)

// Document is an uploaded resume or transcript plus any analysis results
// attached to it.
type Document struct {
	ID               string
	UserID           string
	Title            string
	OriginalFilename string
	FileSizeMB       float64
	Text             string
	TextLength       int
	StorageKey       string
	DocumentType     string
	Status           string
	Results          AnalysisResults
	CreatedAt        time.Time
	AnalyzedAt       *time.Time
}

// AnalysisResults holds whichever analysis outputs have been produced for a
// document. Fields stay nil until the corresponding analysis runs.
type AnalysisResults struct {
	Summary      *summarizer.Result     `json:"summary,omitempty"`
	ActionItems  []string               `json:"action_items,omitempty"`
	KeyDecisions []string               `json:"key_decisions,omitempty"`
	Improvements *insights.Improvements `json:"improvements,omitempty"`
	ATSScore     *int                   `json:"ats_score,omitempty"`
	ATSAnalysis  *ats.ResumeAnalysis    `json:"ats_analysis,omitempty"`
}
