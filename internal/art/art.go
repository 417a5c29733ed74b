// Package art loads the ASCII art shown beside a report.
package art

import (
	_ "embed"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idelchi/dirfetch/internal/logger"
)

// DirSmall is the built-in folder art.
//
//go:embed dir_small.txt
var DirSmall string

// LinePrefix is the markup prepended to every art line.
const LinePrefix = "[bold]"

// Art is a block of art lines ready for the left report column.
type Art struct {
	// Lines carry LinePrefix markup.
	Lines []string
	// Width is the display width of the longest line plus one.
	Width int
}

// Parse splits raw art text into marked-up lines and measures it.
func Parse(raw string) Art {
	raw = strings.TrimRight(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	if raw == "" {
		return Art{}
	}

	lines := strings.Split(raw, "\n")

	art := Art{Lines: make([]string, 0, len(lines))}

	for _, line := range lines {
		art.Width = max(art.Width, lipgloss.Width(line))
		art.Lines = append(art.Lines, LinePrefix+line)
	}

	art.Width++

	return art
}

// Load reads the art file at path. An empty path selects the built-in art,
// and a file that cannot be read falls back to it with a note to warn.
func Load(path string, warn logger.Logger) Art {
	if path == "" {
		return Parse(DirSmall)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			warn.Printf("Error: The ASCII art file '%s' was not found. Using the built-in art.\n", path)
		} else {
			warn.Printf("Error: reading ASCII art file '%s': %v. Using the built-in art.\n", path, err)
		}

		return Parse(DirSmall)
	}

	return Parse(string(data))
}
