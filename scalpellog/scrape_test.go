package scalpellog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/scalpelhq/scalpel"
	"github.com/scalpelhq/scalpel/scalpellog"
	"github.com/scalpelhq/scalpel/scalpeltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrape(t *testing.T) {
	t.Parallel()

	t.Run("logs a match with duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		tok := &scalpeltest.Tokenizer{
			TokenizeFn: func(html string) ([]scalpel.HtmlToken, error) {
				return []scalpel.HtmlToken{scalpeltest.Open("a"), scalpeltest.Text("hi"), scalpeltest.Close("a")}, nil
			},
		}

		v, ok, err := scalpellog.Scrape("<a>hi</a>", tok, scalpel.Text(scalpel.Tag("a")), logger)

		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "hi", v)
		output := buf.String()
		assert.Contains(t, output, "scrape")
		assert.Contains(t, output, "matched=true")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs a non-match without an error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		tok := &scalpeltest.Tokenizer{
			TokenizeFn: func(html string) ([]scalpel.HtmlToken, error) {
				return []scalpel.HtmlToken{scalpeltest.Open("a"), scalpeltest.Close("a")}, nil
			},
		}

		_, ok, err := scalpellog.Scrape("<a></a>", tok, scalpel.Text(scalpel.Tag("b")), logger)

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Contains(t, buf.String(), "matched=false")
	})

	t.Run("logs and propagates a tokenizer error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		tok := &scalpeltest.Tokenizer{
			TokenizeFn: func(html string) ([]scalpel.HtmlToken, error) {
				return nil, errors.New("boom")
			},
		}

		_, ok, err := scalpellog.Scrape("<a", tok, scalpel.Text(scalpel.Tag("a")), logger)

		require.Error(t, err)
		assert.False(t, ok)
		assert.Contains(t, buf.String(), "err=boom")
	})
}
