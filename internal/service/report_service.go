package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"riskprofile/internal/model"
	"riskprofile/internal/render"
	"riskprofile/internal/report"
)

// Renderer serializes a report document
type Renderer interface {
	Render(ctx context.Context, doc *report.Document) ([]byte, error)
}

// ReportService handles report generation for a completed session
type ReportService struct {
	assessments *AssessmentService
	renderer    Renderer
	logger      *zap.Logger
}

// NewReportService creates a new report service
func NewReportService(assessments *AssessmentService, renderer Renderer, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		assessments: assessments,
		renderer:    renderer,
		logger:      logger,
	}
}

// BuildDocument assesses the session and lays out its report document
func (s *ReportService) BuildDocument(ctx context.Context, sess *model.Session) (*report.Document, *model.Assessment, error) {
	a, err := s.assessments.Assess(ctx, sess)
	if err != nil {
		return nil, nil, err
	}

	client := report.Client{Name: sess.ClientName, Email: sess.ClientEmail}
	doc, err := report.Build(client, a.Tolerance, a.Capacity, a.Reconciliation)
	if err != nil {
		return nil, nil, err
	}
	return doc, a, nil
}

// Generate renders the session's report
func (s *ReportService) Generate(ctx context.Context, sess *model.Session) (*model.ReportFile, error) {
	start := time.Now()

	doc, a, err := s.BuildDocument(ctx, sess)
	if err != nil {
		return nil, err
	}

	data, err := s.renderer.Render(ctx, doc)
	if err != nil {
		if errors.Is(err, render.ErrMissingAsset) {
			s.logger.Error("report asset unavailable", zap.String("assessment", a.ID), zap.Error(err))
		}
		return nil, err
	}

	s.logger.Info("report generated",
		zap.String("assessment", a.ID),
		zap.Int("blocks", len(doc.Blocks)),
		zap.Int("bytes", len(data)),
		zap.Duration("took", time.Since(start)))

	return &model.ReportFile{
		ID:          a.ID,
		Name:        render.FileName,
		ContentType: render.ContentType,
		Data:        data,
	}, nil
}
