package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	t.Run("enabled", func(t *testing.T) {
		var buf bytes.Buffer

		New(true, &buf).Printf("[debug]: %d files\n", 3)
		assert.Equal(t, "[debug]: 3 files\n", buf.String())
	})

	t.Run("disabled", func(t *testing.T) {
		var buf bytes.Buffer

		New(false, &buf).Printf("hidden")
		assert.Empty(t, buf.String())
	})

	t.Run("zero value", func(t *testing.T) {
		var l Logger

		assert.False(t, l.Enabled())
		assert.NotPanics(t, func() { l.Printf("nothing") })
	})
}
