package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"riskprofile/internal/model"
	"riskprofile/internal/service"
)

// ReportHandler handles report endpoints
type ReportHandler struct {
	reportSvc *service.ReportService
	logger    *zap.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportSvc *service.ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		reportSvc: reportSvc,
		logger:    logger,
	}
}

// Generate handles POST /v1/reports
func (h *ReportHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var sess model.Session
	if err := json.NewDecoder(r.Body).Decode(&sess); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	file, err := h.reportSvc.Generate(r.Context(), &sess)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Data)))
	w.Header().Set("X-Assessment-Id", file.ID)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Data); err != nil {
		h.logger.Warn("report write failed", zap.String("assessment", file.ID), zap.Error(err))
	}
}
