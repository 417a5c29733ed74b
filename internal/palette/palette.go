// Package palette loads the 16-color terminal palette written by pywal.
package palette

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/idelchi/dirfetch/internal/logger"
	"github.com/idelchi/dirfetch/internal/render"
)

// Size is the number of color slots in a palette.
const Size = 16

// Fallback is the color used for every slot when no palette can be read.
const Fallback = "#FFFFFF"

// Palette holds color tokens for slots color0..color15.
type Palette [Size]string

// Default returns the all-white fallback palette.
func Default() Palette {
	var p Palette
	for i := range p {
		p[i] = Fallback
	}

	return p
}

// DefaultPath returns the pywal cache location, ~/.cache/wal/colors.json.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".cache", "wal", "colors.json")
}

// walFile mirrors the part of pywal's colors.json that is used.
type walFile struct {
	Colors map[string]string `json:"colors"`
}

// Read decodes the palette at path. Slots missing from the file keep the
// fallback color.
func Read(path string) (Palette, error) {
	p := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}

	var wal walFile
	if err := json.Unmarshal(data, &wal); err != nil {
		return p, fmt.Errorf("decoding %q: %w", path, err)
	}

	for i := range p {
		if c, ok := wal.Colors["color"+strconv.Itoa(i)]; ok && c != "" {
			p[i] = c
		}
	}

	return p, nil
}

// Load reads the palette at path and falls back to Default on any error.
// A missing or unreadable file is reported to notFound, undecodable content to
// malformed.
func Load(path string, notFound, malformed logger.Logger) Palette {
	p, err := Read(path)
	if err == nil {
		return p
	}

	var syntaxErr *json.SyntaxError

	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.Is(err, fs.ErrNotExist):
		notFound.Printf("Pywal colors file not found. Using default colors.\n")
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		malformed.Printf("JSON decode error in %s: %v\n", path, err)
	default:
		notFound.Printf("Reading colors file %s: %v. Using default colors.\n", path, err)
	}

	return Default()
}

// Bind adds the color slots to b: cl0..cl15 from the palette, cl16 as "reset"
// and clb as "bold".
func (p Palette) Bind(b render.Bindings) render.Bindings {
	for i, c := range p {
		b[render.ColorPrefix+strconv.Itoa(i)] = c
	}

	b[render.ColorPrefix+"16"] = "reset"
	b[render.ColorPrefix+"b"] = "bold"

	return b
}
