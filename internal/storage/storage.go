package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrFileTooLarge is returned when an upload exceeds the configured limit.
var ErrFileTooLarge = errors.New("file exceeds size limit")

// DefaultMaxBytes is the upload cap applied when none is configured.
const DefaultMaxBytes = 10 << 20

// StoredFile describes a file written to the store.
type StoredFile struct {
	FileName     string `json:"fileName"`
	FilePath     string `json:"filePath"`
	OriginalName string `json:"originalName"`
	FileSize     int64  `json:"fileSize"`
}

// Store writes uploads to a directory on disk under generated names.
type Store struct {
	dir      string
	maxBytes int64
}

func New(dir string, maxBytes int64) (*Store, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir, maxBytes: maxBytes}, nil
}

// Save writes the stream to a uniquely named file in the store
// directory. Only the extension of the declared original name is kept,
// so client-supplied paths never reach the filesystem. No partial file
// survives a failed or oversized write.
func (s *Store) Save(r io.Reader, originalName string) (*StoredFile, error) {
	name := uuid.NewString()
	if ext := filepath.Ext(filepath.Base(originalName)); ext != "" {
		name += ext
	}
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}
	n, err := io.Copy(f, io.LimitReader(r, s.maxBytes+1))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("write file: %w", err)
	}
	if n > s.maxBytes {
		_ = os.Remove(path)
		return nil, ErrFileTooLarge
	}

	return &StoredFile{
		FileName:     name,
		FilePath:     "/uploads/" + name,
		OriginalName: filepath.Base(originalName),
		FileSize:     n,
	}, nil
}
