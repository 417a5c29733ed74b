package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/idelchi/dirfetch/internal/config"
	"github.com/idelchi/dirfetch/internal/palette"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

//nolint:gochecknoglobals // Config constant
var allowedOutputs = []string{"table", "json", "yaml"}

// Command builds the root command.
func (c CLI) Command() *cobra.Command {
	var options Options

	cmd := &cobra.Command{
		Use:   "dirfetch [flags] [path]",
		Short: "Show directory statistics beside ASCII art",
		Long: heredoc.Doc(`
			dirfetch summarizes a directory: file count, total size, the most recently
			changed file and, optionally, a per-extension breakdown. The summary is
			printed beside ASCII art, colored with the pywal palette when available.

			Only the directory itself is analyzed unless --depth is given; at the
			depth cutoff the remaining subdirectories are listed by name.

			Messages, separators and date display are read from the config file
			(key = value lines). Every key can be overridden with DIRFETCH_<KEY>.
		`),
		Example: heredoc.Doc(`
			dirfetch ~/src -f
			dirfetch /var/log -e '*.gz' -e '*.[0-9]' -d 2
			dirfetch . -o json
		`),
		Args:    cobra.MaximumNArgs(1),
		Version: c.version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(allowedOutputs, options.Output) {
				return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
			}

			if options.Depth < 0 {
				return errors.New("depth cannot be negative")
			}

			options.Path = "."
			if len(args) > 0 {
				options.Path = args[0]
			}

			return logic(cmd.Context(), options, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.SortFlags = false

	flags.StringVarP(&options.ConfigPath, "config", "c", config.DefaultPath(), "Path to the config file")
	flags.BoolVarP(&options.FileDetails, "file-details", "f", false, "Show the per-extension breakdown")
	flags.StringSliceVarP(&options.Excludes, "exclude", "e", []string{}, "File name globs to exclude (e.g., '*.log','*.tmp')")
	flags.IntVarP(&options.Depth, "depth", "d", 0, "Deepest directory level to analyze (0=path only)")
	flags.StringVarP(&options.Output, "output", "o", "table", "Output format: table, json or yaml")
	flags.StringVar(&options.PalettePath, "palette", palette.DefaultPath(), "Path to the pywal colors.json")
	flags.BoolVar(&options.NoColor, "no-color", false, "Disable colors")
	flags.BoolVar(&options.Debug, "debug", false, "Enable debug output")

	return cmd
}

// Execute runs the CLI.
func (c CLI) Execute(ctx context.Context) error {
	return fang.Execute(
		ctx,
		c.Command(),
		fang.WithVersion(c.version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	)
}
