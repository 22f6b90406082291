package model

import (
	"riskprofile/internal/assessment"
	"riskprofile/internal/classification"
	"riskprofile/internal/questionbank"
	"riskprofile/internal/reconcile"
	"riskprofile/internal/scoring"
)

// Session carries one client's details and both answer sets through a
// single report request. Answers are option indexes; null is unanswered.
type Session struct {
	ID          string `json:"id,omitempty" yaml:"id,omitempty"`
	ClientName  string `json:"clientName" yaml:"clientName"`
	ClientEmail string `json:"clientEmail" yaml:"clientEmail"`
	Tolerance   []*int `json:"tolerance" yaml:"tolerance"`
	Capacity    []*int `json:"capacity" yaml:"capacity"`
}

// Answers returns the answer set for a section.
func (s *Session) Answers(id questionbank.SectionID) scoring.AnswerSet {
	switch id {
	case questionbank.Tolerance:
		return scoring.FromIndexes(s.Tolerance)
	case questionbank.Capacity:
		return scoring.FromIndexes(s.Capacity)
	}
	return nil
}

// ScoreRequest is the request body for scoring a single section
type ScoreRequest struct {
	Answers []*int `json:"answers" yaml:"answers"`
}

// SectionScore is the result card for one section. Level is only set when
// the section is complete.
type SectionScore struct {
	SectionID questionbank.SectionID `json:"sectionId" yaml:"sectionId"`
	Title     string                 `json:"title" yaml:"title"`
	Score     scoring.Score          `json:"score" yaml:"score"`
	Level     *classification.Level  `json:"level,omitempty" yaml:"level,omitempty"`
	Pairs     []assessment.QAPair    `json:"pairs" yaml:"pairs"`
}

// Assessment is both section results plus their reconciliation
type Assessment struct {
	ID             string                   `json:"id" yaml:"id"`
	Tolerance      assessment.SectionResult `json:"tolerance" yaml:"tolerance"`
	Capacity       assessment.SectionResult `json:"capacity" yaml:"capacity"`
	Reconciliation reconcile.Result         `json:"reconciliation" yaml:"reconciliation"`
}

// ReportFile is a rendered report ready for delivery
type ReportFile struct {
	ID          string
	Name        string
	ContentType string
	Data        []byte
}
