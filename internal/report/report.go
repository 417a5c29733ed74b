// Package report composes the statistics column of a dirfetch report from
// walk results, formatters and message templates.
package report

import (
	"strings"
	"time"

	"github.com/idelchi/dirfetch/internal/dirstat"
	"github.com/idelchi/dirfetch/internal/format"
	"github.com/idelchi/dirfetch/internal/palette"
	"github.com/idelchi/dirfetch/internal/render"
)

// Templates holds the message template of each line kind.
type Templates struct {
	Title            string
	TotalFiles       string
	Size             string
	LastModifiedFile string
	LastModifiedPath string
	LastModifiedDate string
	Subdirectory     string
	Extension        string
}

// Config controls which lines are composed and how.
type Config struct {
	// Directory is bound to {directory}, usually the path as given.
	Directory string
	// ShowTitle emits the title line.
	ShowTitle bool
	// Templates are the per-line messages.
	Templates Templates
	// FileDetails emits the per-extension breakdown.
	FileDetails bool
	// Separators enables separator lines.
	Separators bool
	// SeparatorSymbol is repeated SeparatorLength times per separator.
	SeparatorSymbol string
	SeparatorLength int
	// DateMode and DateLayout render {formatted_date}.
	DateMode   format.DateMode
	DateLayout format.Layout
}

// separator returns the separator line.
func (c Config) separator() string {
	return strings.Repeat(c.SeparatorSymbol, max(c.SeparatorLength, 0))
}

// Bindings returns the values shared by every line of a report.
func Bindings(stats *dirstat.Stats, cfg Config, colors palette.Palette, now time.Time) render.Bindings {
	b := colors.Bind(render.Bindings{})

	name, path := format.NotAvailable, format.NotAvailable

	var modTime time.Time

	if stats.Latest != nil {
		name, path, modTime = stats.Latest.Name, stats.Latest.Path, stats.Latest.ModTime
	}

	return b.
		Set("directory", cfg.Directory).
		Set("total_files", stats.FileCount).
		Set("directory_size", format.Size(stats.TotalBytes())).
		Set("last_changed_file", name).
		Set("last_changed_file_path", path).
		Set("formatted_date", format.Date(modTime, cfg.DateMode, cfg.DateLayout, now))
}

// Compose returns the report lines in display order.
//
// The title (if enabled) is followed by a separator, then the totals. The
// subdirectory and extension sections are each opened by a separator, and the
// last section present is closed by one.
func Compose(stats *dirstat.Stats, cfg Config, colors palette.Palette, now time.Time) []string {
	b := Bindings(stats, cfg, colors, now)
	t := cfg.Templates

	var lines []string

	sep := func() {
		if cfg.Separators {
			lines = append(lines, cfg.separator())
		}
	}

	if cfg.ShowTitle {
		lines = append(lines, render.Render(t.Title, b))
	}

	sep()

	for _, tmpl := range []string{
		t.TotalFiles,
		t.Size,
		t.LastModifiedFile,
		t.LastModifiedPath,
		t.LastModifiedDate,
	} {
		lines = append(lines, render.Render(tmpl, b))
	}

	if len(stats.Subdirectories) == 0 && !cfg.FileDetails {
		sep()
	}

	if len(stats.Subdirectories) > 0 {
		sep()

		for _, sub := range stats.Subdirectories {
			lines = append(lines, render.Render(t.Subdirectory, b.With("sub", sub)))
		}

		if !cfg.FileDetails {
			sep()
		}
	}

	if cfg.FileDetails {
		sep()

		for _, ext := range stats.Extensions {
			line := b.With("extension", strings.ToLower(ext.Extension)).
				Set("size", format.Size(ext.Size)).
				Set("count", ext.Count)

			lines = append(lines, render.Render(t.Extension, line))
		}

		sep()
	}

	return lines
}
