// Package analyses orchestrates document analysis: it loads a stored
// document, runs the appropriate analyzers, and persists the results back
// onto the document record.
package analyses

import (
	"context"
	"fmt"
	"time"

	"intellidocs-backend/internal/ats"
	"intellidocs-backend/internal/documents"
	"intellidocs-backend/internal/insights"
	"intellidocs-backend/internal/shared/metrics"
	"intellidocs-backend/internal/shared/telemetry"
	"intellidocs-backend/internal/summarizer"
)

// Service runs analyses over stored documents.
type Service struct {
	Docs      documents.Repo
	Summaries *summarizer.Service
}

// SmartResult is the outcome of an auto-routed analysis. Exactly one of
// Resume and Transcript is set, matching DocumentType.
type SmartResult struct {
	DocumentID   string                 `json:"document_id"`
	DocumentType ats.DocumentType       `json:"document_type"`
	Resume       *ats.ResumeAnalysis    `json:"resume_analysis,omitempty"`
	Transcript   *insights.TextAnalysis `json:"transcript_analysis,omitempty"`
}

// Summarize summarizes a stored document and persists the result.
func (s *Service) Summarize(ctx context.Context, documentID string, maxLength, minLength int) (summarizer.Result, error) {
	doc, err := s.load(ctx, documentID)
	if err != nil {
		return summarizer.Result{}, err
	}
	if maxLength <= 0 {
		maxLength = 150
	}
	if minLength <= 0 {
		minLength = 50
	}

	done := s.track("summarize", documentID)
	result := s.Summaries.Summarize(ctx, doc.Text, maxLength, minLength)
	done(result.Error == "")

	doc.Results.Summary = &result
	if err := s.persist(ctx, doc); err != nil {
		return summarizer.Result{}, err
	}
	return result, nil
}

// Improve generates documentation improvement suggestions for a stored
// document and persists them.
func (s *Service) Improve(ctx context.Context, documentID string) (insights.Improvements, error) {
	doc, err := s.load(ctx, documentID)
	if err != nil {
		return insights.Improvements{}, err
	}

	done := s.track("improve", documentID)
	improvements := insights.SuggestImprovements(doc.Text)
	done(true)

	doc.Results.Improvements = &improvements
	if err := s.persist(ctx, doc); err != nil {
		return insights.Improvements{}, err
	}
	return improvements, nil
}

// Analyze runs the full transcript analysis and persists every part.
func (s *Service) Analyze(ctx context.Context, documentID string) (insights.TextAnalysis, error) {
	doc, err := s.load(ctx, documentID)
	if err != nil {
		return insights.TextAnalysis{}, err
	}

	done := s.track("analyze", documentID)
	analysis := insights.AnalyzeText(ctx, s.Summaries, doc.Text)
	done(true)

	applyTextAnalysis(&doc, analysis)
	if err := s.persist(ctx, doc); err != nil {
		return insights.TextAnalysis{}, err
	}
	return analysis, nil
}

// AnalyzeResume runs the ATS resume analysis, optionally against a job
// description, and persists the result.
func (s *Service) AnalyzeResume(ctx context.Context, documentID, jobDescription string) (ats.ResumeAnalysis, error) {
	doc, err := s.load(ctx, documentID)
	if err != nil {
		return ats.ResumeAnalysis{}, err
	}

	done := s.track("resume", documentID)
	analysis := ats.AnalyzeResume(doc.Text, jobDescription)
	done(true)

	applyResumeAnalysis(&doc, analysis)
	if err := s.persist(ctx, doc); err != nil {
		return ats.ResumeAnalysis{}, err
	}
	return analysis, nil
}

// SmartAnalyze classifies the document and routes it to the resume or
// transcript pipeline. forceType overrides classification when set.
func (s *Service) SmartAnalyze(ctx context.Context, documentID, jobDescription string, forceType string) (SmartResult, error) {
	doc, err := s.load(ctx, documentID)
	if err != nil {
		return SmartResult{}, err
	}

	docType := ats.Classify(doc.Text)
	if forceType != "" {
		forced := ats.DocumentType(forceType)
		if !forced.Valid() {
			return SmartResult{}, fmt.Errorf("%w: force_type must be %q or %q", ErrInvalidInput, ats.TypeResume, ats.TypeTranscript)
		}
		docType = forced
	}

	result := SmartResult{DocumentID: doc.ID, DocumentType: docType}
	done := s.track("smart", documentID)

	switch docType {
	case ats.TypeResume:
		analysis := ats.AnalyzeResume(doc.Text, jobDescription)
		result.Resume = &analysis
		applyResumeAnalysis(&doc, analysis)
	default:
		analysis := insights.AnalyzeText(ctx, s.Summaries, doc.Text)
		result.Transcript = &analysis
		applyTextAnalysis(&doc, analysis)
	}
	done(true)

	doc.DocumentType = string(docType)
	if err := s.persist(ctx, doc); err != nil {
		return SmartResult{}, err
	}
	return result, nil
}

func (s *Service) load(ctx context.Context, documentID string) (documents.Document, error) {
	if documentID == "" {
		return documents.Document{}, fmt.Errorf("%w: document_id is required", ErrInvalidInput)
	}
	return s.Docs.GetByID(ctx, documentID)
}

func (s *Service) persist(ctx context.Context, doc documents.Document) error {
	now := time.Now().UTC()
	doc.Status = documents.StatusAnalyzed
	doc.AnalyzedAt = &now
	if err := s.Docs.Update(ctx, doc); err != nil {
		return fmt.Errorf("persist analysis: %w", err)
	}
	return nil
}

// track emits metrics around one analysis run and returns a completion hook.
func (s *Service) track(kind, documentID string) func(ok bool) {
	metrics.IncAnalysisStarted()
	start := time.Now()
	return func(ok bool) {
		elapsed := float64(time.Since(start)) / float64(time.Millisecond)
		metrics.ObserveAnalysisDurationMs(elapsed)
		if ok {
			metrics.IncAnalysisCompleted()
		} else {
			metrics.IncAnalysisFailed()
		}
		telemetry.Info("analysis.done", map[string]any{
			"kind":        kind,
			"document_id": documentID,
			"duration_ms": elapsed,
			"ok":          ok,
		})
	}
}

func applyTextAnalysis(doc *documents.Document, analysis insights.TextAnalysis) {
	summary := analysis.Summary
	improvements := analysis.Improvements
	doc.Results.Summary = &summary
	doc.Results.ActionItems = analysis.ActionItems
	doc.Results.KeyDecisions = analysis.KeyDecisions
	doc.Results.Improvements = &improvements
	if doc.DocumentType == "" {
		doc.DocumentType = string(ats.TypeTranscript)
	}
}

func applyResumeAnalysis(doc *documents.Document, analysis ats.ResumeAnalysis) {
	score := analysis.ATSScore
	doc.Results.ATSScore = &score
	doc.Results.ATSAnalysis = &analysis
	doc.DocumentType = string(ats.TypeResume)
}
