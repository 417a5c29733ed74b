package format

import (
	"fmt"
	"strings"
	"time"
)

// NotAvailable is rendered for missing timestamps.
const NotAvailable = "N/A"

// relativeDays is the largest day count rendered relatively in auto mode.
const relativeDays = 7

const day = 24 * time.Hour

// DateMode selects how a modification time is rendered.
type DateMode int

const (
	// DateAuto renders recent times relatively and older ones absolutely.
	DateAuto DateMode = iota
	// DateRelativeOnly always renders relatively.
	DateRelativeOnly
	// DateAbsoluteOnly always renders with the absolute layout.
	DateAbsoluteOnly
)

// ParseDateMode maps a configuration value to a DateMode.
// Unknown values select DateAbsoluteOnly.
func ParseDateMode(s string) DateMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		return DateAuto
	case "relative_only":
		return DateRelativeOnly
	default:
		return DateAbsoluteOnly
	}
}

func (m DateMode) String() string {
	switch m {
	case DateAuto:
		return "auto"
	case DateRelativeOnly:
		return "relative_only"
	default:
		return "absolute_only"
	}
}

// Layout renders a time in an absolute format.
// *strftime.Strftime satisfies it.
type Layout interface {
	FormatString(t time.Time) string
}

// LayoutFunc adapts a plain function to Layout.
type LayoutFunc func(t time.Time) string

// FormatString calls f(t).
func (f LayoutFunc) FormatString(t time.Time) string {
	return f(t)
}

// DefaultLayout renders day.month.year.
//
//nolint:gochecknoglobals // Stateless default
var DefaultLayout Layout = LayoutFunc(func(t time.Time) string {
	return t.Format("02.01.2006")
})

// Date renders mod relative to now according to mode.
// A zero time or one at or before the Unix epoch renders as NotAvailable.
// Times in the future are treated as "Just now".
func Date(mod time.Time, mode DateMode, layout Layout, now time.Time) string {
	if mod.IsZero() || !mod.After(time.Unix(0, 0)) {
		return NotAvailable
	}

	if layout == nil {
		layout = DefaultLayout
	}

	if mode == DateAbsoluteOnly {
		return layout.FormatString(mod)
	}

	elapsed := max(now.Sub(mod), 0)

	days := int64(elapsed / day)
	rest := elapsed % day
	hours := int64(rest / time.Hour)
	minutes := int64(rest % time.Hour / time.Minute)

	if days == 0 {
		switch {
		case hours > 0:
			return fmt.Sprintf("%d hours ago", hours)
		case minutes > 0:
			return fmt.Sprintf("%d minutes ago", minutes)
		default:
			return "Just now"
		}
	}

	if mode == DateAuto && days > relativeDays {
		return layout.FormatString(mod)
	}

	if days == 1 {
		return "1 day ago"
	}

	return fmt.Sprintf("%d days ago", days)
}
