// Package scalpellog provides log/slog decorators for scalpel's
// collaborator interfaces, in the begin-time/duration/outcome style
// this codebase uses for every wrapped dependency.
package scalpellog

import (
	"log/slog"
	"time"

	"github.com/scalpelhq/scalpel"
)

// Ensure LoggingTokenizer implements scalpel.Tokenizer.
var _ scalpel.Tokenizer = (*LoggingTokenizer)(nil)

// LoggingTokenizer wraps a Tokenizer with logging of input size, token
// count, and duration.
type LoggingTokenizer struct {
	next   scalpel.Tokenizer
	logger *slog.Logger
}

// NewLoggingTokenizer creates a new LoggingTokenizer.
func NewLoggingTokenizer(next scalpel.Tokenizer, logger *slog.Logger) *LoggingTokenizer {
	return &LoggingTokenizer{next: next, logger: logger}
}

// Tokenize delegates to the wrapped Tokenizer, logging the outcome.
func (t *LoggingTokenizer) Tokenize(source string) ([]scalpel.HtmlToken, error) {
	begin := time.Now()
	tokens, err := t.next.Tokenize(source)
	if err != nil {
		t.logger.Info("tokenize",
			"bytes", len(source),
			"err", err.Error(),
			"duration", time.Since(begin),
		)
		return nil, err
	}
	t.logger.Info("tokenize",
		"bytes", len(source),
		"tokens", len(tokens),
		"duration", time.Since(begin),
	)
	return tokens, nil
}
