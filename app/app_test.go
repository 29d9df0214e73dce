package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/mandelsoft/vfs/pkg/memoryfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockEnv struct {
	env map[string]string
}

func (e *mockEnv) Get(key string) string {
	return e.env[key]
}

func (e *mockEnv) Set(key, val string) error {
	e.env[key] = val
	return nil
}

func newTestApp(t *testing.T) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	app, err := New("echobin",
		WithContext(context.Background()),
		WithEnv(&mockEnv{env: map[string]string{}}),
		WithFDs(strings.NewReader(""), &stdout, &stderr),
		WithFS(memoryfs.New()),
		WithLogger(false),
	)
	require.NoError(t, err)

	return app, &stdout, &stderr
}

func TestAppRoutes(t *testing.T) {
	app, stdout, _ := newTestApp(t)

	require.NoError(t, app.Run([]string{"routes", "--config-file", "/config.json"}))

	out := stdout.String()
	for _, path := range []string{
		"/get", "/post", "/put", "/patch", "/delete",
		"/post/json", "/post/form", "/post/file",
		"/basic-auth/{user}/{pass}", "/bearer",
	} {
		assert.Contains(t, out, path)
	}
}

func TestAppInvalidFlag(t *testing.T) {
	app, _, _ := newTestApp(t)

	require.Error(t, app.Run([]string{"routes", "--no-such-flag"}))
}

func TestAppServeInvalidAddress(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := app.Run([]string{"serve", "not-an-address", "--config-file", "/config.json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "web server error")
}
