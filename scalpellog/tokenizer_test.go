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

func TestLoggingTokenizer_Tokenize(t *testing.T) {
	t.Parallel()

	t.Run("logs byte and token counts on success", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &scalpeltest.Tokenizer{
			TokenizeFn: func(html string) ([]scalpel.HtmlToken, error) {
				return []scalpel.HtmlToken{scalpeltest.Open("a"), scalpeltest.Close("a")}, nil
			},
		}

		tok := scalpellog.NewLoggingTokenizer(inner, logger)
		tokens, err := tok.Tokenize("<a></a>")

		require.NoError(t, err)
		assert.Len(t, tokens, 2)
		output := buf.String()
		assert.Contains(t, output, "tokenize")
		assert.Contains(t, output, "bytes=7")
		assert.Contains(t, output, "tokens=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs the error instead of a token count on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &scalpeltest.Tokenizer{
			TokenizeFn: func(html string) ([]scalpel.HtmlToken, error) {
				return nil, errors.New("malformed")
			},
		}

		tok := scalpellog.NewLoggingTokenizer(inner, logger)
		tokens, err := tok.Tokenize("<a")

		require.Error(t, err)
		assert.Nil(t, tokens)
		output := buf.String()
		assert.Contains(t, output, "err=malformed")
		assert.NotContains(t, output, "tokens=")
	})
}
