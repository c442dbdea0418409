// Package storage provides document storage backends for load paperwork.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/freightops/freight_broker_app/internal/apperrors"
	portssvc "github.com/freightops/freight_broker_app/internal/core/ports/services"
)

// LocalStorage keeps uploaded documents on the local filesystem under a
// single base directory and serves them back by URL path.
type LocalStorage struct {
	baseDir string
	urlBase string
}

// NewLocalStorage creates the base directory if needed. urlBase is the URL
// prefix under which the files are exposed, e.g. "/files".
func NewLocalStorage(baseDir, urlBase string) (*LocalStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", baseDir, err)
	}
	return &LocalStorage{baseDir: baseDir, urlBase: strings.TrimSuffix(urlBase, "/")}, nil
}

var _ portssvc.FileStorage = (*LocalStorage)(nil)

// Save stores the content under a random name that keeps the original
// extension, and returns the public URL path.
func (s *LocalStorage) Save(ctx context.Context, filename string, content io.Reader) (string, error) {
	name := uuid.NewString() + sanitizeExt(filename)
	path := filepath.Join(s.baseDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return s.urlBase + "/" + name, nil
}

// Open retrieves a stored file by the URL path returned from Save. Path
// traversal outside the base directory is rejected.
func (s *LocalStorage) Open(ctx context.Context, urlPath string) (io.ReadCloser, error) {
	name := strings.TrimPrefix(urlPath, s.urlBase+"/")
	if name == "" || name != filepath.Base(name) {
		return nil, apperrors.NewInvalidArgumentError("invalid document path")
	}
	f, err := os.Open(filepath.Join(s.baseDir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, apperrors.NewNotFoundError("document", name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open document %s: %w", name, err)
	}
	return f, nil
}

func sanitizeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if len(ext) > 10 {
		return ""
	}
	for _, r := range ext {
		if r != '.' && (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
