package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/idelchi/dirfetch/internal/art"
	"github.com/idelchi/dirfetch/internal/dirstat"
)

const (
	// InfoWidth is the width of the statistics column.
	InfoWidth = 60
	// CellPadding is the space on each side of a column.
	CellPadding = 1
)

// PrintJSON outputs statistics in JSON format.
func PrintJSON(stats *dirstat.Stats, writer io.Writer) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintYAML outputs statistics in YAML format.
func PrintYAML(stats *dirstat.Stats, writer io.Writer) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)

	if err := encoder.Encode(stats); err != nil {
		return fmt.Errorf("encoding YAML output: %w", err)
	}

	return encoder.Close()
}

// PrintReport outputs the art and the report lines side by side.
// Markup in both columns is rendered as terminal styles when styled is true
// and removed otherwise.
func PrintReport(a art.Art, lines []string, writer io.Writer, styled bool) error {
	renderer := lipgloss.NewRenderer(writer)

	render := func(in []string) string {
		out := make([]string, len(in))

		for i, line := range in {
			if styled {
				out[i] = styleMarkup(renderer, line)
			} else {
				out[i] = stripMarkup(line)
			}
		}

		return strings.Join(out, "\n")
	}

	info := renderer.NewStyle().
		Width(InfoWidth + 2*CellPadding).
		Padding(0, CellPadding).
		Render(render(lines))

	table := info

	if len(a.Lines) > 0 {
		left := renderer.NewStyle().
			Width(a.Width - 1 + 2*CellPadding).
			Padding(0, CellPadding).
			Render(render(a.Lines))

		table = lipgloss.JoinHorizontal(lipgloss.Top, left, info)
	}

	for _, row := range strings.Split(table, "\n") {
		if _, err := fmt.Fprintln(writer, strings.TrimRight(row, " ")); err != nil {
			return err
		}
	}

	return nil
}
