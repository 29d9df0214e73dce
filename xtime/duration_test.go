package xtime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echobin/echobin/xtime"
)

func TestParseDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		in     string
		expDur time.Duration
		expErr bool
	}{
		{name: "ok/seconds", in: "30s", expDur: 30 * time.Second},
		{name: "ok/composite", in: "1m30s", expDur: 90 * time.Second},
		{name: "ok/days", in: "10d", expDur: 240 * time.Hour},
		{name: "ok/weeks_fractional", in: "-1.5w", expDur: -252 * time.Hour},
		{name: "ok/mixed_units", in: "1w2d12h", expDur: (7*24 + 2*24 + 12) * time.Hour},
		{name: "err/empty", in: "", expErr: true},
		{name: "err/no_digits", in: "soon", expErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dur, err := xtime.ParseDuration(tt.in)

			if tt.expErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expDur, dur)
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    time.Duration
		round time.Duration
		exp   string
	}{
		{name: "ok/zero", in: 0, round: time.Second, exp: "0s"},
		{name: "ok/seconds", in: 30 * time.Second, round: time.Second, exp: "30s"},
		{name: "ok/minutes", in: time.Minute, round: time.Second, exp: "1m"},
		{name: "ok/days", in: 240 * time.Hour, round: time.Hour, exp: "1w3d"},
		{name: "ok/negative", in: -36 * time.Hour, round: time.Hour, exp: "-1d12h"},
		{name: "ok/rounds_subunit", in: 90*time.Second + 300*time.Millisecond, round: time.Second, exp: "1m30s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.exp, xtime.FormatDuration(tt.in, tt.round))
		})
	}
}

func TestDurationRoundTrip(t *testing.T) {
	t.Parallel()

	for _, d := range []time.Duration{
		10 * time.Second,
		90 * time.Second,
		time.Hour,
		36 * time.Hour,
		10 * 24 * time.Hour,
	} {
		parsed, err := xtime.ParseDuration(xtime.FormatDuration(d, time.Second))
		require.NoError(t, err)
		assert.Equal(t, d, parsed)
	}
}
