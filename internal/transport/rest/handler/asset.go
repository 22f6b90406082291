package handler

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"riskprofile/internal/service"
	"riskprofile/internal/transport/rest/middleware"
)

// AssetHandler handles report asset uploads
type AssetHandler struct {
	assetSvc *service.AssetService
	logger   *zap.Logger
}

// NewAssetHandler creates a new asset handler
func NewAssetHandler(assetSvc *service.AssetService, logger *zap.Logger) *AssetHandler {
	return &AssetHandler{
		assetSvc: assetSvc,
		logger:   logger,
	}
}

// Upload handles PUT /v1/assets/{key}
func (h *AssetHandler) Upload(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	data, err := io.ReadAll(io.LimitReader(r.Body, service.MaxAssetSize+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.assetSvc.Upload(r.Context(), key, data); err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	h.logger.Info("asset uploaded", zap.String("key", key), zap.String("advisor", middleware.GetAdvisorID(r.Context())))
	writeJSON(w, http.StatusOK, map[string]string{"status": "stored", "key": key})
}
