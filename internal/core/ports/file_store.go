package ports

import (
	"context"
	"io"
)

// StoredFile identifies a file persisted by a FileStore. Filename is the
// server-generated name; Path is where the bytes landed.
type StoredFile struct {
	Filename string
	Path     string
}

// FileStore persists uploaded formation letters.
type FileStore interface {
	// Save durably stores the reader's bytes under a generated name.
	Save(ctx context.Context, r io.Reader, originalName string) (*StoredFile, error)
	// Remove deletes a stored file. Used to compensate when the committee
	// record fails to persist after its letter was already written.
	Remove(filename string) error
	// Path returns the on-disk location of a stored file, failing with
	// domain.ErrFileMissing when the file is gone.
	Path(filename string) (string, error)
}
