package types

import "fmt"

// Range is a closed interval [Begin, End].
type Range struct {
	Begin int64
	End   int64
}

// Contains reports whether v lies within the range, inclusive of both bounds.
func (r Range) Contains(v int64) bool {
	return r.Begin <= v && v <= r.End
}

// String renders the range as "[begin, end]".
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.Begin, r.End)
}
