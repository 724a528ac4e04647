package app

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// NewLogger returns a text logger writing to w at level, tagged with a fresh run_id.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("run_id", uuid.NewString())
}
