package interfaces

// Summer validates two operands and returns their sum.
type Summer interface {
	Add(first, second int64) (int64, error)
}

// Pipeline runs read, sum and write once.
type Pipeline interface {
	Run() (int64, error)
}
