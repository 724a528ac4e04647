package domain

import (
	interfaces "aplusb/internal/domain/interfaces"
	types "aplusb/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	ResourceName = types.ResourceName
	Operands     = types.Operands
	Range        = types.Range
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	OperandStore = interfaces.OperandStore
	ResultStore  = interfaces.ResultStore
	Summer       = interfaces.Summer
	Pipeline     = interfaces.Pipeline
)

// Bounds of the accepted operand interval.
const (
	RangeBegin int64 = -1_000_000_000
	RangeEnd   int64 = 1_000_000_000
)

// DefaultRange is the closed interval both operands must fall within.
var DefaultRange = Range{Begin: RangeBegin, End: RangeEnd}
