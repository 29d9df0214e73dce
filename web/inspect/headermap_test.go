package inspect_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echobin/echobin/web/inspect"
)

func TestHeaderMap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		header   http.Header
		expPairs []inspect.HeaderPair
		expJSON  string
	}{
		{
			name:     "ok/empty",
			header:   http.Header{},
			expPairs: []inspect.HeaderPair{},
			expJSON:  `{}`,
		},
		{
			name: "ok/single",
			header: http.Header{
				"User-Agent": {"curl/8.0"},
			},
			expPairs: []inspect.HeaderPair{
				{Name: "User-Agent", Value: "curl/8.0"},
			},
			expJSON: `{"User-Agent":"curl/8.0"}`,
		},
		{
			name: "ok/repeated_name_keeps_every_value",
			header: http.Header{
				"Accept":     {"text/html"},
				"Set-Cookie": {"a=1", "b=2", "c=3"},
			},
			expPairs: []inspect.HeaderPair{
				{Name: "Accept", Value: "text/html"},
				{Name: "Set-Cookie", Value: "a=1"},
				{Name: "Set-Cookie", Value: "b=2"},
				{Name: "Set-Cookie", Value: "c=3"},
			},
			expJSON: `{"Accept":"text/html","Set-Cookie":"a=1","Set-Cookie":"b=2","Set-Cookie":"c=3"}`,
		},
		{
			name: "ok/value_needing_escaping",
			header: http.Header{
				"X-Quote": {`say "hi"`},
			},
			expPairs: []inspect.HeaderPair{
				{Name: "X-Quote", Value: `say "hi"`},
			},
			expJSON: `{"X-Quote":"say \"hi\""}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hm := inspect.NewHeaderMap(tt.header)

			assert.Equal(t, tt.expPairs, hm.Pairs())

			lines := 0
			for _, values := range tt.header {
				lines += len(values)
			}
			assert.Equal(t, lines, hm.Len())

			data, err := hm.MarshalJSON()
			require.NoError(t, err)
			assert.Equal(t, tt.expJSON, string(data))
		})
	}
}

func TestHeaderMapValues(t *testing.T) {
	t.Parallel()

	hm := inspect.NewHeaderMap(http.Header{
		"Set-Cookie": {"a=1", "b=2"},
		"Accept":     {"*/*"},
	})

	assert.Equal(t, []string{"a=1", "b=2"}, hm.Values("set-cookie"))
	assert.Equal(t, []string{"*/*"}, hm.Values("Accept"))
	assert.Nil(t, hm.Values("X-Missing"))
}
