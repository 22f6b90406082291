package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"riskprofile/internal/assessment"
	"riskprofile/internal/classification"
	"riskprofile/internal/model"
	"riskprofile/internal/questionbank"
	"riskprofile/internal/reconcile"
	"riskprofile/internal/scoring"
)

// ErrUnknownSection is returned for a section id outside the question bank.
var ErrUnknownSection = errors.New("unknown section")

// AssessmentService scores sections and reconciles complete assessments
type AssessmentService struct {
	logger *zap.Logger
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(logger *zap.Logger) *AssessmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssessmentService{logger: logger}
}

// Questionnaire returns both sections in presentation order
func (s *AssessmentService) Questionnaire() []questionbank.Section {
	return questionbank.Sections()
}

// ScoreSection scores one section. Incomplete sections are not an error
// here: the result reports how many questions remain and carries no level.
func (s *AssessmentService) ScoreSection(id questionbank.SectionID, answers scoring.AnswerSet) (*model.SectionScore, error) {
	section, ok := questionbank.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, id)
	}
	descriptions, _ := classification.DescriptionsFor(id)

	score, err := scoring.ComputeScore(section, answers)
	if err != nil {
		return nil, err
	}

	result := &model.SectionScore{
		SectionID: id,
		Title:     section.Title,
		Score:     score,
		Pairs:     assessment.Pairs(section, answers),
	}
	if score.Complete {
		level, err := classification.Classify(score.Total, descriptions)
		if err != nil {
			s.logger.Error("complete section scored out of range",
				zap.String("section", string(id)), zap.Int("total", score.Total), zap.Error(err))
			return nil, err
		}
		result.Level = &level
	}
	return result, nil
}

// Assess evaluates both sections of a session and reconciles them. Either
// section being incomplete fails with scoring.ErrIncompleteAssessment.
func (s *AssessmentService) Assess(ctx context.Context, sess *model.Session) (*model.Assessment, error) {
	tol, err := s.evaluate(questionbank.Tolerance, sess)
	if err != nil {
		return nil, err
	}
	capacity, err := s.evaluate(questionbank.Capacity, sess)
	if err != nil {
		return nil, err
	}

	id := sess.ID
	if id == "" {
		id = uuid.NewString()
	}

	rec := reconcile.Reconcile(tol.TotalScore, capacity.TotalScore, tol.Band, capacity.Band)
	s.logger.Info("assessment reconciled",
		zap.String("assessment", id),
		zap.Int("tolerance", tol.TotalScore),
		zap.Int("capacity", capacity.TotalScore),
		zap.String("kind", string(rec.Kind)),
		zap.String("combined", rec.CombinedLabel))

	return &model.Assessment{
		ID:             id,
		Tolerance:      tol,
		Capacity:       capacity,
		Reconciliation: rec,
	}, nil
}

func (s *AssessmentService) evaluate(id questionbank.SectionID, sess *model.Session) (assessment.SectionResult, error) {
	section, _ := questionbank.Lookup(id)
	descriptions, _ := classification.DescriptionsFor(id)
	return assessment.Evaluate(section, sess.Answers(id), descriptions)
}
