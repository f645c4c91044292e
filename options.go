package seqeval

import (
	"log/slog"

	"github.com/google/uuid"
)

// Option configures an Evaluator.
type Option func(*config)

type config struct {
	logger *slog.Logger
	runID  string
}

func defaultConfig() config {
	return config{
		logger: slog.Default(),
		runID:  uuid.NewString(),
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRunID sets the run identifier attached to logged and recorded
// results (default: a random UUID).
func WithRunID(id string) Option {
	return func(c *config) {
		if id != "" {
			c.runID = id
		}
	}
}
