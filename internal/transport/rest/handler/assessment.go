package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"riskprofile/internal/model"
	"riskprofile/internal/questionbank"
	"riskprofile/internal/scoring"
	"riskprofile/internal/service"
)

// AssessmentHandler handles questionnaire and scoring endpoints
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
	logger        *zap.Logger
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessmentSvc *service.AssessmentService, logger *zap.Logger) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentSvc: assessmentSvc,
		logger:        logger,
	}
}

// Questionnaire handles GET /v1/questionnaire
func (h *AssessmentHandler) Questionnaire(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"sections": h.assessmentSvc.Questionnaire()})
}

// ScoreSection handles POST /v1/assessments/{section}/score
func (h *AssessmentHandler) ScoreSection(w http.ResponseWriter, r *http.Request) {
	id := questionbank.SectionID(mux.Vars(r)["section"])

	var req model.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.assessmentSvc.ScoreSection(id, scoring.FromIndexes(req.Answers))
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Assess handles POST /v1/assessments
func (h *AssessmentHandler) Assess(w http.ResponseWriter, r *http.Request) {
	var sess model.Session
	if err := json.NewDecoder(r.Body).Decode(&sess); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.assessmentSvc.Assess(r.Context(), &sess)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
