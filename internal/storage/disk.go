// Package storage provides image object storage backed by the local filesystem.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Bucket is the single bucket holding all plant images.
const Bucket = "plant-images"

// ErrObjectExists is returned when uploading without upsert to a key
// that already holds an object.
var ErrObjectExists = errors.New("storage: object already exists")

// Store uploads image objects and resolves their public URLs.
type Store interface {
	Upload(ctx context.Context, key string, data []byte, contentType string, upsert bool) (string, error)
	PublicURL(key string) string
}

// DiskStore stores objects as files under a root directory and serves
// them through a static file route.
type DiskStore struct {
	root    string
	baseURL string
}

// NewDiskStore creates a store rooted at dir. Public URLs are built
// from baseURL, which should point at the static route serving dir.
func NewDiskStore(dir, baseURL string) *DiskStore {
	return &DiskStore{
		root:    dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Root returns the directory the store writes under, for mounting a
// static file handler.
func (s *DiskStore) Root() string {
	return s.root
}

// Upload writes the object under Bucket at the given key. When upsert
// is false an existing object at the same key is an error and the
// existing content is left untouched.
func (s *DiskStore) Upload(ctx context.Context, key string, data []byte, contentType string, upsert bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if key == "" || strings.Contains(key, "..") {
		return "", fmt.Errorf("storage: invalid key %q", key)
	}

	path := filepath.Join(s.root, Bucket, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", fmt.Errorf("storage: create directory: %w", err)
	}

	if upsert {
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return "", fmt.Errorf("storage: write object: %w", err)
		}
		return s.PublicURL(key), nil
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if os.IsExist(err) {
			return "", ErrObjectExists
		}
		return "", fmt.Errorf("storage: write object: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return "", fmt.Errorf("storage: write object: %w", err)
	}
	return s.PublicURL(key), nil
}

// PublicURL returns the URL under which the object at key is served.
func (s *DiskStore) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", s.baseURL, Bucket, key)
}
