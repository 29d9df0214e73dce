package inspect_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/echobin/echobin/web/inspect"
)

func TestParseQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		expArgs map[string]string
	}{
		{
			name:    "ok/empty",
			raw:     "",
			expArgs: map[string]string{},
		},
		{
			name:    "ok/simple_pairs",
			raw:     "a=1&b=2",
			expArgs: map[string]string{"a": "1", "b": "2"},
		},
		{
			name:    "ok/duplicate_key_last_wins",
			raw:     "k=first&k=second",
			expArgs: map[string]string{"k": "second"},
		},
		{
			name:    "ok/key_without_value",
			raw:     "flag&x=1",
			expArgs: map[string]string{"flag": "", "x": "1"},
		},
		{
			name:    "ok/percent_decoding",
			raw:     "q=a%20b&plus=1%2B2",
			expArgs: map[string]string{"q": "a b", "plus": "1+2"},
		},
		{
			name: "ok/undecodable_sequence_kept_literal",
			raw:  "bad=%zz&good=ok",
			expArgs: map[string]string{
				"bad":  "%zz",
				"good": "ok",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expArgs, inspect.ParseQuery(tt.raw))
		})
	}
}

func TestCapture(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("POST", "/post?x=1&x=2&y=z", nil)
	r.RemoteAddr = "192.0.2.7:51234"
	r.Header.Set("User-Agent", "test-client")
	r.Header.Add("Set-Cookie", "a=1")
	r.Header.Add("Set-Cookie", "b=2")

	s := inspect.Capture(r)

	assert.Equal(t, "POST", s.Method)
	assert.Equal(t, "/post?x=1&x=2&y=z", s.URL)
	assert.Equal(t, "192.0.2.7", s.Origin)
	assert.Equal(t, map[string]string{"x": "2", "y": "z"}, s.Args)
	assert.Equal(t, 3, s.Headers.Len())
	assert.Equal(t, []string{"a=1", "b=2"}, s.Headers.Values("Set-Cookie"))
}

func TestCaptureOriginWithoutPort(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/get", nil)
	r.RemoteAddr = "192.0.2.7"

	assert.Equal(t, "192.0.2.7", inspect.Capture(r).Origin)
}
