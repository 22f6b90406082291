package handler

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"riskprofile/internal/report"
	"riskprofile/internal/scoring"
	"riskprofile/internal/service"
	"riskprofile/internal/transport/rest/middleware"
)

// statusFor maps pipeline errors to HTTP status codes. Score range and
// missing asset failures fall through to 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, scoring.ErrIncompleteAssessment):
		return http.StatusUnprocessableEntity
	case errors.Is(err, scoring.ErrInvalidAnswerIndex),
		errors.Is(err, scoring.ErrAnswerCount),
		errors.Is(err, report.ErrInvalidInput),
		errors.Is(err, service.ErrInvalidAsset):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnknownSection):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeServiceError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("request", middleware.GetRequestID(r.Context())),
			zap.Int("status", status),
			zap.Error(err))
	}
	writeError(w, status, err.Error())
}
