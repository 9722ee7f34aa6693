package scalpel_test

import (
	"testing"

	"github.com/scalpelhq/scalpel"
	"github.com/stretchr/testify/assert"
)

func TestChecksum(t *testing.T) {
	t.Parallel()

	t.Run("is deterministic for identical input", func(t *testing.T) {
		t.Parallel()

		html := `<a href="x">hi</a>`
		assert.Equal(t, scalpel.Checksum(html), scalpel.Checksum(html))
	})

	t.Run("differs for different input", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t, scalpel.Checksum(`<a>one</a>`), scalpel.Checksum(`<a>two</a>`))
	})

	t.Run("the empty string still fingerprints to a stable value", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, scalpel.Checksum(""), scalpel.Checksum(""))
	})
}
