// Package config loads dirfetch settings from a key = value file, the
// environment and built-in defaults.
//
// The file format is one "key = value" per line, "#" starts a comment and
// values may be quoted. Every DIRFETCH_<KEY> environment variable overrides
// the file. Keys missing from both take their value from Defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lestrrat-go/strftime"
	"github.com/spf13/viper"

	"github.com/idelchi/dirfetch/internal/format"
	"github.com/idelchi/dirfetch/internal/logger"
	"github.com/idelchi/dirfetch/internal/report"
)

// EnvPrefix prefixes environment overrides, e.g. DIRFETCH_DATE_FORMAT.
const EnvPrefix = "DIRFETCH"

// Defaults is the single table of default values, keyed as in the file.
//
//nolint:gochecknoglobals // Config constant
var Defaults = map[string]string{
	"include_hidden_files":            "on",
	"show_title":                      "on",
	"title_message":                   "{cl10}󰉖 {cl16}: {directory}",
	"date_display_mode":               "auto",
	"date_format":                     "%d.%m.%Y",
	"file_details_enabled":            "off",
	"total_files_message":             "{cl2} {clb}Files{cl16}: {total_files}",
	"directory_size_message":          "{cl4}󰉖 {clb}Size{cl16}: {directory_size}",
	"last_modified_file_message":      "{cl1}󱇨 {clb}Changed File{cl16}: {last_changed_file}",
	"last_modified_file_path_message": "{cl6}󱀱 {clb}Changed File Path{cl16}: {last_changed_file_path}",
	"last_modified_date_message":      "{cl7}󱋢 {clb}Change Date{cl16}: {formatted_date}",
	"cd_subdirectory_message":         "{cl5}󱧩 {clb}SUB{cl16}: {sub}",
	"fd_file_sizes_message":           "{cl5}󰓼 {clb}EXT{cl16}: .{extension} {size} ({count})",
	"ascii_art_file":                  "",
	"enable_separators":               "on",
	"separator_symbol":                "─",
	"separator_length":                "35",
	"enable_pywal_not_found_error":    "off",
	"enable_json_decode_error":        "off",
	"enable_file_not_found_error":     "off",
	"enable_ascii_not_found_error":    "off",
}

// Warnings are the switches for optional warning output.
type Warnings struct {
	PaletteNotFound  bool
	PaletteMalformed bool
	FileNotFound     bool
	ArtNotFound      bool
}

// Config is the validated, typed configuration.
type Config struct {
	IncludeHidden bool
	ShowTitle     bool
	FileDetails   bool

	DateMode   format.DateMode
	DateFormat string
	// DateLayout is DateFormat compiled once at load.
	DateLayout *strftime.Strftime

	Templates report.Templates
	ArtFile   string

	Separators      bool
	SeparatorSymbol string
	SeparatorLength int

	Warnings Warnings

	// Source is the file that was read, empty if only defaults applied.
	Source string
}

// DefaultPath returns $XDG_CONFIG_HOME/dirfetch/dirfetch.conf or its
// platform equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, "dirfetch", "dirfetch.conf")
}

// Load reads the file at path (if any), applies environment overrides and
// defaults, and validates the result. A missing file is not an error; it is
// noted to debug and the defaults are used.
func Load(path string, debug logger.Logger) (Config, error) {
	v := viper.New()

	for key, value := range Defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("dotenv")

		err := v.ReadInConfig()

		var notFound viper.ConfigFileNotFoundError

		switch {
		case err == nil:
			debug.Printf("[debug]: using config file: %s\n", v.ConfigFileUsed())
		case errors.As(err, &notFound), errors.Is(err, fs.ErrNotExist):
			debug.Printf("[debug]: config file '%s' not found. Using default settings.\n", path)

			path = ""
		default:
			return Config{}, fmt.Errorf("reading config file %q: %w", path, err)
		}
	}

	return decode(v, path)
}

// decode coerces the raw values in v into a Config.
func decode(v *viper.Viper, source string) (Config, error) {
	var errs []error

	flag := func(key string) bool {
		on, err := parseSwitch(v.GetString(key))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}

		return on
	}

	cfg := Config{
		IncludeHidden: flag("include_hidden_files"),
		ShowTitle:     flag("show_title"),
		FileDetails:   flag("file_details_enabled"),
		DateMode:      format.ParseDateMode(v.GetString("date_display_mode")),
		DateFormat:    v.GetString("date_format"),
		Templates: report.Templates{
			Title:            v.GetString("title_message"),
			TotalFiles:       v.GetString("total_files_message"),
			Size:             v.GetString("directory_size_message"),
			LastModifiedFile: v.GetString("last_modified_file_message"),
			LastModifiedPath: v.GetString("last_modified_file_path_message"),
			LastModifiedDate: v.GetString("last_modified_date_message"),
			Subdirectory:     v.GetString("cd_subdirectory_message"),
			Extension:        v.GetString("fd_file_sizes_message"),
		},
		ArtFile:         v.GetString("ascii_art_file"),
		Separators:      flag("enable_separators"),
		SeparatorSymbol: v.GetString("separator_symbol"),
		Warnings: Warnings{
			PaletteNotFound:  flag("enable_pywal_not_found_error"),
			PaletteMalformed: flag("enable_json_decode_error"),
			FileNotFound:     flag("enable_file_not_found_error"),
			ArtNotFound:      flag("enable_ascii_not_found_error"),
		},
		Source: source,
	}

	length, err := strconv.Atoi(strings.TrimSpace(v.GetString("separator_length")))
	if err != nil || length <= 0 {
		errs = append(errs, fmt.Errorf("separator_length: %q is not a positive integer", v.GetString("separator_length")))
	}

	cfg.SeparatorLength = length

	layout, err := strftime.New(cfg.DateFormat)
	if err != nil {
		errs = append(errs, fmt.Errorf("date_format: %w", err))
	}

	cfg.DateLayout = layout

	if err := errors.Join(errs...); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// parseSwitch maps on/off style values to a bool.
func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0", "":
		return false, nil
	default:
		return false, fmt.Errorf("invalid switch %q: must be on or off", s)
	}
}

// Report returns the composer settings for directory. Details are shown if
// either the configuration or fileDetails asks for them.
func (c Config) Report(directory string, fileDetails bool) report.Config {
	return report.Config{
		Directory:       directory,
		ShowTitle:       c.ShowTitle,
		Templates:       c.Templates,
		FileDetails:     c.FileDetails || fileDetails,
		Separators:      c.Separators,
		SeparatorSymbol: c.SeparatorSymbol,
		SeparatorLength: c.SeparatorLength,
		DateMode:        c.DateMode,
		DateLayout:      c.DateLayout,
	}
}
