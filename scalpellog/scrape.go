package scalpellog

import (
	"log/slog"
	"time"

	"github.com/scalpelhq/scalpel"
)

// Scrape wraps scalpel.Scrape with logging of input size, match
// outcome, and duration. It has the same shape as scalpel.Scrape
// itself, rather than an interface, since Scrape is a free function
// parameterized over the result type.
func Scrape[A any](source string, tok scalpel.Tokenizer, scraper scalpel.Scraper[A], logger *slog.Logger) (A, bool, error) {
	begin := time.Now()
	v, ok, err := scalpel.Scrape(source, tok, scraper)
	if err != nil {
		logger.Info("scrape",
			"bytes", len(source),
			"err", err.Error(),
			"duration", time.Since(begin),
		)
		return v, false, err
	}
	logger.Info("scrape",
		"bytes", len(source),
		"matched", ok,
		"duration", time.Since(begin),
	)
	return v, ok, nil
}
