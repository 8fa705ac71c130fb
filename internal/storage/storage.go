// Package storage defines the file-storage collaborator. The service never
// keeps binary content itself; it hands bytes to a FileStore and records only
// the returned reference and metadata.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Reference points at stored content.
type Reference struct {
	URL  string `json:"url"`
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// FileStore accepts uploaded binary content and returns a reference to it.
type FileStore interface {
	Store(ctx context.Context, name string, content io.Reader) (Reference, error)
}

// DiskStore is a FileStore writing to a local directory. Production points the
// same interface at the hosted storage provider.
type DiskStore struct {
	dir     string
	baseURL string
}

// NewDiskStore creates a DiskStore rooted at dir, creating it if needed.
func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir, baseURL: baseURL}, nil
}

// Store writes the content under a unique name and returns its reference.
func (s *DiskStore) Store(_ context.Context, name string, content io.Reader) (Reference, error) {
	stored := uuid.NewString() + "-" + filepath.Base(name)
	path := filepath.Join(s.dir, stored)

	f, err := os.Create(path)
	if err != nil {
		return Reference{}, fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	size, err := io.Copy(f, content)
	if err != nil {
		os.Remove(path)
		return Reference{}, fmt.Errorf("write upload file: %w", err)
	}

	return Reference{
		URL:  s.baseURL + "/" + stored,
		Name: name,
		Size: size,
	}, nil
}
