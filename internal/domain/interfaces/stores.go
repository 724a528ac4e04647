package interfaces

import types "aplusb/internal/domain/types"

// OperandStore loads the two input operands.
type OperandStore interface {
	LoadOperands() (types.Operands, error)
}

// ResultStore persists the computed sum.
type ResultStore interface {
	SaveResult(v int64) error
	LoadResult() (int64, error)
	LoadRaw() ([]byte, error)
}
