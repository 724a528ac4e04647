package sum

import "aplusb/internal/domain"

// Add returns first+second when both lie within r.
// Results are int64, which holds any sum of two in-range operands.
func Add(first, second int64, r domain.Range) (int64, error) {
	if !r.Contains(first) {
		return 0, domain.OutOfRangeError(first, r)
	}
	if !r.Contains(second) {
		return 0, domain.OutOfRangeError(second, r)
	}
	return first + second, nil
}

// Service binds Add to a fixed range.
type Service struct {
	rng domain.Range
}

// New returns a Service that accepts operands within r.
func New(r domain.Range) *Service { return &Service{rng: r} }

// Range returns the interval the service validates against.
func (s *Service) Range() domain.Range { return s.rng }

// Add validates both operands against the service range and returns their sum.
func (s *Service) Add(first, second int64) (int64, error) {
	return Add(first, second, s.rng)
}

// Compile-time assertion that Service implements domain.Summer.
var _ domain.Summer = (*Service)(nil)
