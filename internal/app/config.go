package app

import (
	"log/slog"

	"aplusb/internal/domain"
)

// Default resource names, resolved relative to Config.Dir.
const (
	DefaultInputName  domain.ResourceName = "input.txt"
	DefaultOutputName domain.ResourceName = "output.txt"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Dir        string              // directory holding both resources; "" means the working directory
	InputName  domain.ResourceName // read source, e.g. input.txt
	OutputName domain.ResourceName // write target, e.g. output.txt
	Range      domain.Range        // accepted operand interval
	Logger     *slog.Logger        // optional; defaults to slog.Default()
}

// DefaultConfig returns the fixed configuration the CLI runs with.
func DefaultConfig() Config {
	return Config{
		InputName:  DefaultInputName,
		OutputName: DefaultOutputName,
		Range:      domain.DefaultRange,
	}
}
