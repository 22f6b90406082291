package asset

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Store is the durable source of assets. Get returns (nil, nil) when the
// key is absent.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

// Cache holds recently resolved assets. Get returns (nil, nil) on a miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
}

// StoreResolver reads through a cache to a store
type StoreResolver struct {
	store  Store
	cache  Cache
	logger *zap.Logger
}

// NewStoreResolver creates a read-through resolver. cache may be nil.
func NewStoreResolver(store Store, cache Cache, logger *zap.Logger) *StoreResolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StoreResolver{store: store, cache: cache, logger: logger}
}

func (r *StoreResolver) Resolve(ctx context.Context, key string) ([]byte, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}

	if r.cache != nil {
		data, err := r.cache.Get(ctx, key)
		if err != nil {
			// A broken cache must not hide the store.
			r.logger.Warn("asset cache read failed", zap.String("key", key), zap.Error(err))
		} else if data != nil {
			return data, nil
		}
	}

	data, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load asset %s: %w", key, err)
	}
	if data == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, key, data); err != nil {
			r.logger.Warn("asset cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return data, nil
}
