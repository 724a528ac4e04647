package store

import (
	"os"
	"path/filepath"

	"aplusb/internal/domain"
)

// OperandFileStore reads the two input operands from a text file.
type OperandFileStore struct {
	dir  string
	name domain.ResourceName
}

// NewOperandFileStore returns an OperandFileStore for name rooted at dir.
func NewOperandFileStore(dir string, name domain.ResourceName) *OperandFileStore {
	return &OperandFileStore{dir: dir, name: name}
}

// LoadOperands opens the input resource and parses its first two integers.
func (s *OperandFileStore) LoadOperands() (domain.Operands, error) {
	f, err := os.Open(filepath.Join(s.dir, s.name.String()))
	if err != nil {
		return domain.Operands{}, domain.OpenError(s.name, err)
	}
	defer f.Close()

	vals, err := scanInts(f, 2)
	if err != nil {
		return domain.Operands{}, domain.ReadError(s.name, readFailureLine, err)
	}
	return domain.Operands{First: vals[0], Second: vals[1]}, nil
}

// Compile-time assertion that OperandFileStore implements domain.OperandStore.
var _ domain.OperandStore = (*OperandFileStore)(nil)
