package store

import (
	"io"
	"os"
	"path/filepath"

	"aplusb/internal/domain"
)

// ResultFileStore writes the computed sum to a text file.
//
// Writes truncate the target in place; a failed write can leave it empty or
// partially written.
type ResultFileStore struct {
	dir  string
	name domain.ResourceName
	mode os.FileMode
}

// NewResultFileStore returns a ResultFileStore for name rooted at dir.
func NewResultFileStore(dir string, name domain.ResourceName) *ResultFileStore {
	return &ResultFileStore{dir: dir, name: name, mode: 0o644}
}

func (s *ResultFileStore) path() string { return filepath.Join(s.dir, s.name.String()) }

// SaveResult creates or truncates the output resource and writes v followed by a newline.
func (s *ResultFileStore) SaveResult(v int64) error {
	f, err := os.OpenFile(s.path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, s.mode)
	if err != nil {
		return domain.OpenError(s.name, err)
	}

	if _, err := f.WriteString(FormatResult(v)); err != nil {
		_ = f.Close()
		return domain.WriteError(s.name, err)
	}
	if err := f.Close(); err != nil {
		return domain.WriteError(s.name, err)
	}
	return nil
}

// LoadResult reads back the integer stored in the output resource.
func (s *ResultFileStore) LoadResult() (int64, error) {
	f, err := os.Open(s.path())
	if err != nil {
		return 0, domain.OpenError(s.name, err)
	}
	defer f.Close()

	vals, err := scanInts(f, 1)
	if err != nil {
		return 0, domain.ReadError(s.name, readFailureLine, err)
	}
	return vals[0], nil
}

// LoadRaw returns the output resource's bytes exactly as stored.
func (s *ResultFileStore) LoadRaw() ([]byte, error) {
	f, err := os.Open(s.path())
	if err != nil {
		return nil, domain.OpenError(s.name, err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, domain.ReadError(s.name, readFailureLine, err)
	}
	return b, nil
}

// Compile-time assertion that ResultFileStore implements domain.ResultStore.
var _ domain.ResultStore = (*ResultFileStore)(nil)
