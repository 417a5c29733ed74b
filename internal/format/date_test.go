package format

import (
	"testing"
	"time"

	"github.com/lestrrat-go/strftime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate(t *testing.T) {
	layout, err := strftime.New("%d.%m.%Y")
	require.NoError(t, err)

	now := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		mod      time.Time
		mode     DateMode
		expected string
	}{
		{"zero time", time.Time{}, DateAuto, "N/A"},
		{"epoch", time.Unix(0, 0), DateAuto, "N/A"},
		{"before epoch", time.Unix(-100, 0), DateRelativeOnly, "N/A"},
		{"just now", now.Add(-30 * time.Second), DateAuto, "Just now"},
		{"future", now.Add(time.Hour), DateAuto, "Just now"},
		{"minutes", now.Add(-30 * time.Minute), DateAuto, "30 minutes ago"},
		{"one minute", now.Add(-time.Minute), DateAuto, "1 minutes ago"},
		{"hours", now.Add(-5*time.Hour - 10*time.Minute), DateAuto, "5 hours ago"},
		{"one hour", now.Add(-time.Hour), DateAuto, "1 hours ago"},
		{"one day", now.Add(-25 * time.Hour), DateAuto, "1 day ago"},
		{"three days", now.Add(-3 * day), DateAuto, "3 days ago"},
		{"seven days", now.Add(-7 * day), DateAuto, "7 days ago"},
		{"ten days auto", now.Add(-10 * day), DateAuto, "10.03.2024"},
		{"ten days relative", now.Add(-10 * day), DateRelativeOnly, "10 days ago"},
		{"relative minutes", now.Add(-2 * time.Minute), DateRelativeOnly, "2 minutes ago"},
		{"absolute recent", now.Add(-30 * time.Minute), DateAbsoluteOnly, "20.03.2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Date(tt.mod, tt.mode, layout, now))
		})
	}
}

func TestDateDefaultLayout(t *testing.T) {
	now := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)
	mod := time.Date(2023, time.December, 1, 8, 0, 0, 0, time.UTC)

	assert.Equal(t, "01.12.2023", Date(mod, DateAuto, nil, now))
}

func TestParseDateMode(t *testing.T) {
	tests := []struct {
		in       string
		expected DateMode
	}{
		{"auto", DateAuto},
		{" AUTO ", DateAuto},
		{"relative_only", DateRelativeOnly},
		{"absolute_only", DateAbsoluteOnly},
		{"something", DateAbsoluteOnly},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseDateMode(tt.in))
		})
	}

	assert.Equal(t, "relative_only", DateRelativeOnly.String())
}
