// Package xtime extends time.Duration parsing and formatting with day
// and week units, used for human-friendly configuration values.
package xtime

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var durRe = regexp.MustCompile(`(\d*\.\d+|\d+)[^\d.]*`)

// ParseDuration parses a duration string. In addition to the units
// understood by time.ParseDuration, it supports days ("d"/"D") and
// weeks ("w"/"W"), e.g. "10d", "-1.5w" or "1w2d12h".
func ParseDuration(s string) (time.Duration, error) {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	parts := durRe.FindAllString(s, -1)
	if len(parts) == 0 {
		return 0, fmt.Errorf("invalid duration %q", s)
	}

	var total time.Duration
	for _, part := range parts {
		var hours time.Duration = 1
		switch {
		case strings.ContainsAny(part, "dD"):
			part = strings.Map(unitToHours, part)
			hours = 24
		case strings.ContainsAny(part, "wW"):
			part = strings.Map(unitToHours, part)
			hours = 7 * 24
		}

		dur, err := time.ParseDuration(part)
		if err != nil {
			//nolint:wrapcheck // The stdlib error is descriptive enough.
			return 0, err
		}
		total += dur * hours
	}

	if neg {
		total = -total
	}

	return total, nil
}

func unitToHours(r rune) rune {
	switch r {
	case 'd', 'D', 'w', 'W':
		return 'h'
	}
	return r
}

// FormatDuration formats a duration using the same units as
// ParseDuration, e.g. "10d", "-1w2d" or "1d12h30m". The round parameter
// specifies the smallest unit to include.
func FormatDuration(d time.Duration, round time.Duration) string {
	if round > 0 {
		d = d.Round(round)
	}
	if d == 0 {
		return "0s"
	}

	neg := d < 0
	if neg {
		d = -d
	}

	units := []struct {
		name string
		dur  time.Duration
	}{
		{"w", 7 * 24 * time.Hour},
		{"d", 24 * time.Hour},
		{"h", time.Hour},
		{"m", time.Minute},
		{"s", time.Second},
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for _, u := range units {
		if u.dur < round || d < u.dur {
			continue
		}
		fmt.Fprintf(&b, "%d%s", d/u.dur, u.name)
		d %= u.dur
	}

	return b.String()
}
