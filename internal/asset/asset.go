// Package asset resolves pre-rendered report assets, such as the summary
// chart, by key.
package asset

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrNotFound = errors.New("asset not found")

// Resolver returns the bytes of the asset stored under key
type Resolver interface {
	Resolve(ctx context.Context, key string) ([]byte, error)
}

// ResolverFunc adapts a function to Resolver
type ResolverFunc func(ctx context.Context, key string) ([]byte, error)

func (f ResolverFunc) Resolve(ctx context.Context, key string) ([]byte, error) {
	return f(ctx, key)
}

// Extensions tried, in order, when resolving a key from a directory.
var Extensions = []string{".png", ".jpg", ".jpeg"}

// DirResolver reads assets from files named <key><ext> in a directory
type DirResolver struct {
	dir string
}

// NewDirResolver creates a resolver rooted at dir
func NewDirResolver(dir string) *DirResolver {
	return &DirResolver{dir: dir}
}

func (r *DirResolver) Resolve(ctx context.Context, key string) ([]byte, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	for _, ext := range Extensions {
		data, err := os.ReadFile(filepath.Join(r.dir, key+ext))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return data, nil
	}
	return nil, fmt.Errorf("%w: %s in %s", ErrNotFound, key, r.dir)
}

// MapResolver serves assets from memory
type MapResolver map[string][]byte

func (m MapResolver) Resolve(ctx context.Context, key string) ([]byte, error) {
	data, ok := m[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return data, nil
}

// ValidateKey rejects keys that could escape a storage root.
func ValidateKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return fmt.Errorf("invalid asset key %q", key)
	}
	return nil
}
