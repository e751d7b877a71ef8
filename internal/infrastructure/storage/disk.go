// Package storage implements the formation-letter file store on the local
// filesystem.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/procurex/committee-service/internal/core/domain"
	"github.com/procurex/committee-service/internal/core/ports"
)

// DiskStore keeps uploaded files under a single configured directory.
// Stored names are generated server-side; the caller-supplied name only
// contributes its extension.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the upload directory if needed and returns the store.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

func (d *DiskStore) Save(ctx context.Context, r io.Reader, originalName string) (*ports.StoredFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(originalName))
	path := filepath.Join(d.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return nil, fmt.Errorf("write file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("close file: %w", err)
	}

	return &ports.StoredFile{Filename: name, Path: path}, nil
}

func (d *DiskStore) Remove(filename string) error {
	return os.Remove(filepath.Join(d.dir, filename))
}

func (d *DiskStore) Path(filename string) (string, error) {
	path := filepath.Join(d.dir, filename)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", domain.ErrFileMissing
		}
		return "", fmt.Errorf("stat file: %w", err)
	}
	return path, nil
}
