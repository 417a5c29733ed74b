package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/idelchi/dirfetch/internal/art"
	"github.com/idelchi/dirfetch/internal/dirstat"
)

func TestPrintReport(t *testing.T) {
	t.Run("side by side", func(t *testing.T) {
		var buf bytes.Buffer

		logo := art.Parse("/\\\n\\/")
		lines := []string{"[#ff0000]Files[reset]: 3", "Size: 1.00 KB", "---"}

		require.NoError(t, PrintReport(logo, lines, &buf, false))

		rows := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		require.Len(t, rows, 3)

		assert.Equal(t, " /\\  Files: 3", rows[0])
		assert.Equal(t, " \\/  Size: 1.00 KB", rows[1])
		assert.Equal(t, "     ---", rows[2])
		assert.NotContains(t, buf.String(), "[bold]")
	})

	t.Run("no art", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, PrintReport(art.Art{}, []string{"only"}, &buf, false))
		assert.Equal(t, " only\n", buf.String())
	})
}

func TestPrintMachineReadable(t *testing.T) {
	stats := &dirstat.Stats{
		FileCount:      2,
		Extensions:     []dirstat.ExtStat{{Extension: "go", Count: 2, Size: 10}},
		Subdirectories: []string{"cmd"},
	}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, PrintJSON(stats, &buf))

		var decoded dirstat.Stats
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, *stats, decoded)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, PrintYAML(stats, &buf))
		assert.Contains(t, buf.String(), "file_count: 2")
		assert.Contains(t, buf.String(), "- extension: go")

		var decoded map[string]any
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, []any{"cmd"}, decoded["subdirectories"])
	})
}
