package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskprofile/internal/asset"
)

type memAssetRepo struct {
	files        map[string][]byte
	contentTypes map[string]string
	putErr       error
}

func newMemAssetRepo() *memAssetRepo {
	return &memAssetRepo{files: map[string][]byte{}, contentTypes: map[string]string{}}
}

func (r *memAssetRepo) Put(ctx context.Context, key, contentType string, data []byte) error {
	if r.putErr != nil {
		return r.putErr
	}
	r.files[key] = data
	r.contentTypes[key] = contentType
	return nil
}

func (r *memAssetRepo) Get(ctx context.Context, key string) ([]byte, error) {
	return r.files[key], nil
}

func (r *memAssetRepo) Delete(ctx context.Context, key string) error {
	delete(r.files, key)
	return nil
}

type memAssetCache struct {
	entries map[string][]byte
	deletes []string
}

func newMemAssetCache() *memAssetCache {
	return &memAssetCache{entries: map[string][]byte{}}
}

func (c *memAssetCache) Get(ctx context.Context, key string) ([]byte, error) {
	return c.entries[key], nil
}

func (c *memAssetCache) Set(ctx context.Context, key string, data []byte) error {
	c.entries[key] = data
	return nil
}

func (c *memAssetCache) Delete(ctx context.Context, key string) error {
	c.deletes = append(c.deletes, key)
	delete(c.entries, key)
	return nil
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 4, 4))))
	return buf.Bytes()
}

func TestAssetUpload(t *testing.T) {
	repo := newMemAssetRepo()
	cache := newMemAssetCache()
	cache.entries["box_whisker_summary"] = []byte("stale")
	svc := NewAssetService(repo, cache, nil)

	img := pngBytes(t)
	require.NoError(t, svc.Upload(context.Background(), "box_whisker_summary", img))

	assert.Equal(t, img, repo.files["box_whisker_summary"])
	assert.Equal(t, "image/png", repo.contentTypes["box_whisker_summary"])
	assert.Equal(t, []string{"box_whisker_summary"}, cache.deletes)
	assert.NotContains(t, cache.entries, "box_whisker_summary")
}

func TestAssetUploadValidation(t *testing.T) {
	svc := NewAssetService(newMemAssetRepo(), nil, nil)
	ctx := context.Background()

	tests := []struct {
		name string
		key  string
		data []byte
	}{
		{"bad key", "../chart", pngBytes(t)},
		{"empty body", "chart", nil},
		{"too large", "chart", make([]byte, MaxAssetSize+1)},
		{"not an image", "chart", []byte("%PDF-1.4 hello")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, svc.Upload(ctx, tt.key, tt.data), ErrInvalidAsset)
		})
	}
}

func TestAssetUploadStoreFailure(t *testing.T) {
	repo := newMemAssetRepo()
	repo.putErr = errors.New("gridfs unavailable")
	cache := newMemAssetCache()

	err := NewAssetService(repo, cache, nil).Upload(context.Background(), "chart", pngBytes(t))
	assert.EqualError(t, err, "gridfs unavailable")
	assert.Empty(t, cache.deletes)
}

func TestAssetResolver(t *testing.T) {
	repo := newMemAssetRepo()
	cache := newMemAssetCache()
	svc := NewAssetService(repo, cache, nil)
	img := pngBytes(t)
	require.NoError(t, svc.Upload(context.Background(), "chart", img))

	data, err := svc.Resolver().Resolve(context.Background(), "chart")
	require.NoError(t, err)
	assert.Equal(t, img, data)
	assert.Equal(t, img, cache.entries["chart"])

	_, err = svc.Resolver().Resolve(context.Background(), "other")
	assert.ErrorIs(t, err, asset.ErrNotFound)
}

func TestAssetResolverWithoutCache(t *testing.T) {
	repo := newMemAssetRepo()
	repo.files["chart"] = []byte("img")

	data, err := NewAssetService(repo, nil, nil).Resolver().Resolve(context.Background(), "chart")
	require.NoError(t, err)
	assert.Equal(t, []byte("img"), data)
}
