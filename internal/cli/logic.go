package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/idelchi/dirfetch/internal/art"
	"github.com/idelchi/dirfetch/internal/config"
	"github.com/idelchi/dirfetch/internal/dirstat"
	"github.com/idelchi/dirfetch/internal/logger"
	"github.com/idelchi/dirfetch/internal/palette"
	"github.com/idelchi/dirfetch/internal/report"
)

// Options holds the parsed command line.
type Options struct {
	// Path is the directory to analyze.
	Path string
	// ConfigPath is the settings file, empty for defaults only.
	ConfigPath string
	// FileDetails adds the per-extension breakdown.
	FileDetails bool
	// Excludes are file name globs to skip.
	Excludes []string
	// Depth is the deepest directory level whose files are counted.
	Depth int
	// Output is table, json or yaml.
	Output string
	// PalettePath is the pywal colors file.
	PalettePath string
	// NoColor disables styling even on a terminal.
	NoColor bool
	// Debug enables debug output.
	Debug bool
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func logic(ctx context.Context, options Options, stdout, stderr io.Writer) error {
	debug := logger.New(options.Debug, stderr)

	cfg, err := config.Load(options.ConfigPath, debug)
	if err != nil {
		return err
	}

	filter, err := dirstat.NewFilter(cfg.IncludeHidden, options.Excludes, options.Depth)
	if err != nil {
		return err
	}

	stats, err := dirstat.Run(ctx, dirstat.Options{
		Path:   options.Path,
		Filter: filter,
		Debug:  debug,
		Warn:   logger.New(cfg.Warnings.FileNotFound, stderr),
	})
	if err != nil {
		return err
	}

	switch strings.ToLower(options.Output) {
	case "json":
		return PrintJSON(stats, stdout)
	case "yaml":
		return PrintYAML(stats, stdout)
	case "table":
	default:
		return fmt.Errorf("unknown output format: %s", options.Output)
	}

	colors := palette.Load(options.PalettePath,
		logger.New(cfg.Warnings.PaletteNotFound, stderr),
		logger.New(cfg.Warnings.PaletteMalformed, stderr),
	)
	logo := art.Load(cfg.ArtFile, logger.New(cfg.Warnings.ArtNotFound, stderr))

	lines := report.Compose(stats, cfg.Report(options.Path, options.FileDetails), colors, time.Now())

	return PrintReport(logo, lines, stdout, !options.NoColor && isTerminal(stdout))
}
