package palette

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/dirfetch/internal/logger"
	"github.com/idelchi/dirfetch/internal/render"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "colors.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		path := writeFile(t, `{
			"wallpaper": "/tmp/wall.png",
			"special": {"background": "#000000"},
			"colors": {"color0": "#101010", "color1": "#aa0000", "color15": "#fafafa"}
		}`)

		var notFound, malformed bytes.Buffer

		p := Load(path, logger.New(true, &notFound), logger.New(true, &malformed))

		assert.Equal(t, "#101010", p[0])
		assert.Equal(t, "#aa0000", p[1])
		assert.Equal(t, Fallback, p[2])
		assert.Equal(t, "#fafafa", p[15])
		assert.Empty(t, notFound.String())
		assert.Empty(t, malformed.String())
	})

	t.Run("missing file", func(t *testing.T) {
		var notFound bytes.Buffer

		p := Load(filepath.Join(t.TempDir(), "none.json"), logger.New(true, &notFound), logger.Logger{})

		assert.Equal(t, Default(), p)
		assert.Contains(t, notFound.String(), "not found")
	})

	t.Run("malformed json", func(t *testing.T) {
		var malformed bytes.Buffer

		path := writeFile(t, `{"colors": {"color0": `)
		p := Load(path, logger.Logger{}, logger.New(true, &malformed))

		assert.Equal(t, Default(), p)
		assert.Contains(t, malformed.String(), "JSON decode error")
	})

	t.Run("wrong shape", func(t *testing.T) {
		var malformed bytes.Buffer

		path := writeFile(t, `{"colors": ["#000000"]}`)
		p := Load(path, logger.Logger{}, logger.New(true, &malformed))

		assert.Equal(t, Default(), p)
		assert.NotEmpty(t, malformed.String())
	})

	t.Run("silent by default", func(t *testing.T) {
		assert.NotPanics(t, func() {
			Load(filepath.Join(t.TempDir(), "none.json"), logger.Logger{}, logger.Logger{})
		})
	})
}

func TestBind(t *testing.T) {
	p := Default()
	p[1] = "#ff0000"

	b := p.Bind(render.Bindings{})

	assert.Len(t, b, Size+2)
	assert.Equal(t, "#ff0000", b["cl1"])
	assert.Equal(t, "reset", b["cl16"])
	assert.Equal(t, "bold", b["clb"])
	assert.Equal(t, "[#ff0000]x[reset]", render.Render("{cl1}x{cl16}", b))
}
