package types

// ResourceName identifies a file-like input or output target by path.
type ResourceName string

// String returns the string form of the resource name.
func (n ResourceName) String() string { return string(n) }

// Operands is the pair of integers read from the input resource.
type Operands struct {
	First  int64
	Second int64
}
