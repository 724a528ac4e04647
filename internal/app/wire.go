package app

import (
	"errors"
	"fmt"
	"log/slog"

	"aplusb/internal/domain"
	"aplusb/internal/services/pipeline"
	sumsvc "aplusb/internal/services/sum"
	"aplusb/internal/store"
)

// Wire bundles all stores and services for the CLI.
type Wire struct {
	Operands domain.OperandStore
	Results  domain.ResultStore
	Summer   domain.Summer
	Pipeline domain.Pipeline
	Logger   *slog.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if cfg.InputName == "" || cfg.OutputName == "" {
		return nil, errors.New("resource names must not be empty")
	}
	if cfg.Range.Begin > cfg.Range.End {
		return nil, fmt.Errorf("invalid range %s", cfg.Range)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// File-based stores
	operandStore := store.NewOperandFileStore(cfg.Dir, cfg.InputName)
	resultStore := store.NewResultFileStore(cfg.Dir, cfg.OutputName)

	// Services
	summer := sumsvc.New(cfg.Range)
	pipe := pipeline.New(operandStore, summer, resultStore, logger)

	return &Wire{
		Operands: operandStore,
		Results:  resultStore,
		Summer:   summer,
		Pipeline: pipe,
		Logger:   logger,
	}, nil
}
