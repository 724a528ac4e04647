package pipeline

import (
	"fmt"
	"log/slog"

	"aplusb/internal/domain"
)

// Service sequences the three pipeline stages.
type Service struct {
	operands domain.OperandStore
	summer   domain.Summer
	results  domain.ResultStore
	logger   *slog.Logger
}

// New constructs a pipeline Service. A nil logger falls back to slog.Default.
func New(
	operands domain.OperandStore,
	summer domain.Summer,
	results domain.ResultStore,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		operands: operands,
		summer:   summer,
		results:  results,
		logger:   logger,
	}
}

// Run reads the operands, sums them and writes the result, returning the sum.
//
// Steps:
//  1. Load both operands from the input resource.
//  2. Validate them against the summer's range and add them.
//  3. Write the sum to the output resource.
func (s *Service) Run() (int64, error) {
	ops, err := s.operands.LoadOperands()
	if err != nil {
		s.fail("read", err)
		return 0, err
	}
	s.logger.Debug("operands loaded", "first", ops.First, "second", ops.Second)

	total, err := s.add(ops)
	if err != nil {
		s.fail("sum", err)
		return 0, err
	}
	s.logger.Debug("operands summed", "result", total)

	if err := s.results.SaveResult(total); err != nil {
		s.fail("write", err)
		return 0, err
	}
	s.logger.Info("result written", "result", total)
	return total, nil
}

// add calls the summer, converting a panic into an unknown error.
func (s *Service) add(ops domain.Operands) (total int64, err error) {
	defer func() {
		if r := recover(); r != nil {
			total, err = 0, domain.UnknownError(fmt.Errorf("panic during summation: %v", r))
		}
	}()
	return s.summer.Add(ops.First, ops.Second)
}

func (s *Service) fail(stage string, err error) {
	s.logger.Warn("pipeline stage failed",
		"stage", stage,
		"kind", domain.KindOf(err).String(),
		"error", err,
	)
}

// Compile-time assertion that Service implements domain.Pipeline.
var _ domain.Pipeline = (*Service)(nil)
