package config_test

import (
	"testing"
	"time"

	"github.com/mandelsoft/vfs/pkg/memoryfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echobin/echobin/app/config"
)

func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig(memoryfs.New(), "/config.json")
	require.NoError(t, cfg.Load())
	cfg.SetDefaults()

	assert.Equal(t, "0.0.0.0:3000", cfg.Server.Address.V)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadHeaderTimeout.V)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout.V)
	assert.Equal(t, time.Minute, cfg.Server.WriteTimeout.V)
	assert.Equal(t, "passwd", cfg.Auth.Password.V)
}

func TestConfigLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		expErr  string
		check   func(*testing.T, *config.Config)
	}{
		{
			name:    "ok/full",
			content: `{"server": {"address": "127.0.0.1:8080", "read_timeout": "1m30s"}, "auth": {"password": "secret"}}`,
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "127.0.0.1:8080", cfg.Server.Address.V)
				assert.Equal(t, 90*time.Second, cfg.Server.ReadTimeout.V)
				assert.Equal(t, "secret", cfg.Auth.Password.V)
				assert.False(t, cfg.Server.WriteTimeout.Valid)
			},
		},
		{
			name:    "ok/missing_file",
			content: "",
			check: func(t *testing.T, cfg *config.Config) {
				assert.False(t, cfg.Server.Address.Valid)
				assert.False(t, cfg.Auth.Password.Valid)
			},
		},
		{
			name:    "err/invalid_duration",
			content: `{"server": {"read_timeout": "soon"}}`,
			expErr:  "failed parsing read timeout",
		},
		{
			name:    "err/invalid_json",
			content: `{`,
			expErr:  "failed parsing configuration file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fs := memoryfs.New()
			if tt.content != "" {
				require.NoError(t, vfs.WriteFile(fs, "/config.json", []byte(tt.content), 0o644))
			}

			cfg := config.NewConfig(fs, "/config.json")
			err := cfg.Load()

			if tt.expErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expErr)
				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestConfigSaveRoundTrip(t *testing.T) {
	t.Parallel()

	fs := memoryfs.New()
	cfg := config.NewConfig(fs, "/etc/echobin/config.json")
	require.NoError(t, cfg.Load())
	cfg.SetDefaults()
	require.NoError(t, cfg.Save())

	reloaded := config.NewConfig(fs, "/etc/echobin/config.json")
	require.NoError(t, reloaded.Load())

	assert.Equal(t, cfg.Server.Address, reloaded.Server.Address)
	assert.Equal(t, cfg.Server.ReadHeaderTimeout, reloaded.Server.ReadHeaderTimeout)
	assert.Equal(t, cfg.Server.ReadTimeout, reloaded.Server.ReadTimeout)
	assert.Equal(t, cfg.Server.WriteTimeout, reloaded.Server.WriteTimeout)
	assert.Equal(t, cfg.Auth.Password, reloaded.Auth.Password)
}
