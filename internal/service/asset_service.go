package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"riskprofile/internal/asset"
	"riskprofile/internal/cache"
	"riskprofile/internal/repository"
)

var ErrInvalidAsset = errors.New("invalid asset")

// MaxAssetSize bounds uploaded assets.
const MaxAssetSize = 8 << 20

// AssetService manages stored report assets
type AssetService struct {
	assetRepo  repository.AssetRepo
	assetCache cache.AssetCache
	logger     *zap.Logger
}

// NewAssetService creates a new asset service. assetCache may be nil.
func NewAssetService(assetRepo repository.AssetRepo, assetCache cache.AssetCache, logger *zap.Logger) *AssetService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssetService{
		assetRepo:  assetRepo,
		assetCache: assetCache,
		logger:     logger,
	}
}

// Upload stores an image asset under key and drops any cached copy
func (s *AssetService) Upload(ctx context.Context, key string, data []byte) error {
	if err := asset.ValidateKey(key); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAsset, err)
	}
	if len(data) == 0 || len(data) > MaxAssetSize {
		return fmt.Errorf("%w: size %d", ErrInvalidAsset, len(data))
	}
	contentType := http.DetectContentType(data)
	switch contentType {
	case "image/png", "image/jpeg", "image/gif":
	default:
		return fmt.Errorf("%w: content type %s", ErrInvalidAsset, contentType)
	}

	if err := s.assetRepo.Put(ctx, key, contentType, data); err != nil {
		return err
	}
	if s.assetCache != nil {
		if err := s.assetCache.Delete(ctx, key); err != nil {
			s.logger.Warn("asset cache invalidation failed", zap.String("key", key), zap.Error(err))
		}
	}

	s.logger.Info("asset stored", zap.String("key", key), zap.String("contentType", contentType), zap.Int("bytes", len(data)))
	return nil
}

// Resolver returns a read-through resolver over the store and cache
func (s *AssetService) Resolver() asset.Resolver {
	return asset.NewStoreResolver(s.assetRepo, s.assetCache, s.logger)
}
