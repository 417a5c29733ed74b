package art

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/dirfetch/internal/logger"
)

func TestParse(t *testing.T) {
	art := Parse("ab\r\nabcd\n\n")

	assert.Equal(t, []string{"[bold]ab", "[bold]abcd"}, art.Lines)
	assert.Equal(t, 5, art.Width)

	assert.Equal(t, Art{}, Parse(""))
}

func TestLoad(t *testing.T) {
	builtin := Parse(DirSmall)
	require.NotEmpty(t, builtin.Lines)

	t.Run("empty path uses built-in", func(t *testing.T) {
		assert.Equal(t, builtin, Load("", logger.Logger{}))
	})

	t.Run("custom file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "art.txt")
		require.NoError(t, os.WriteFile(path, []byte(" /\\\n/__\\\n"), 0o644))

		art := Load(path, logger.Logger{})
		assert.Equal(t, []string{"[bold] /\\", "[bold]/__\\"}, art.Lines)
		assert.Equal(t, 5, art.Width)
	})

	t.Run("missing file falls back", func(t *testing.T) {
		var warn bytes.Buffer

		art := Load(filepath.Join(t.TempDir(), "none.txt"), logger.New(true, &warn))

		assert.Equal(t, builtin, art)
		assert.Contains(t, warn.String(), "was not found")
	})
}
