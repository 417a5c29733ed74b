package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// segment is a run of text sharing one style.
type segment struct {
	text  string
	color string
	bold  bool
}

// isColor reports whether token names a color lipgloss understands:
// #rgb, #rrggbb or an ANSI index.
func isColor(token string) bool {
	if strings.HasPrefix(token, "#") {
		hex := token[1:]
		if len(hex) != 3 && len(hex) != 6 {
			return false
		}

		return strings.Trim(strings.ToLower(hex), "0123456789abcdef") == ""
	}

	if token == "" || len(token) > 3 {
		return false
	}

	return strings.Trim(token, "0123456789") == ""
}

// parseMarkup splits a report line into styled segments.
//
// Recognized tags are [bold], [/bold], [reset], [/] and colors ([#rrggbb],
// [#rgb], [0]-[255]). Anything else in brackets is kept as text.
func parseMarkup(line string) []segment {
	var (
		segments []segment
		text     strings.Builder
		current  segment
	)

	flush := func() {
		if text.Len() == 0 {
			return
		}

		current.text = text.String()
		segments = append(segments, current)
		text.Reset()
	}

	for len(line) > 0 {
		open := strings.IndexByte(line, '[')
		if open < 0 {
			text.WriteString(line)

			break
		}

		text.WriteString(line[:open])
		line = line[open:]

		end := strings.IndexByte(line, ']')
		if end < 0 {
			text.WriteString(line)

			break
		}

		token := strings.TrimSpace(line[1:end])

		switch {
		case token == "bold":
			flush()

			current.bold = true
		case token == "/bold":
			flush()

			current.bold = false
		case token == "reset" || token == "/":
			flush()

			current = segment{}
		case isColor(token):
			flush()

			current.color = token
		default:
			text.WriteByte('[')

			line = line[1:]

			continue
		}

		line = line[end+1:]
	}

	flush()

	return segments
}

// stripMarkup returns line without recognized tags.
func stripMarkup(line string) string {
	var out strings.Builder

	for _, s := range parseMarkup(line) {
		out.WriteString(s.text)
	}

	return out.String()
}

// styleMarkup renders line with its tags applied as terminal styles.
func styleMarkup(r *lipgloss.Renderer, line string) string {
	var out strings.Builder

	for _, s := range parseMarkup(line) {
		style := r.NewStyle().Bold(s.bold)
		if s.color != "" {
			style = style.Foreground(lipgloss.Color(s.color))
		}

		out.WriteString(style.Render(s.text))
	}

	return out.String()
}
