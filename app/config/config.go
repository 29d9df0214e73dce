// Package config manages the application configuration, persisted as a
// JSON file on a virtual filesystem.
package config

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/mandelsoft/vfs/pkg/vfs"

	"github.com/echobin/echobin/xtime"
)

// Config represents the application configuration, backed by a filesystem for
// persistence.
type Config struct {
	Server Server
	Auth   Auth

	fs   vfs.FileSystem
	path string
}

// NewConfig creates a new Config instance with the specified filesystem
// and configuration file path.
func NewConfig(fs vfs.FileSystem, path string) *Config {
	return &Config{fs: fs, path: path}
}

// Load reads and parses the configuration file from the filesystem.
// If the file doesn't exist, it initializes with an empty configuration.
func (c *Config) Load() error {
	if err := c.fs.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("failed creating configuration directory: %w", err)
	}

	configJSON, err := vfs.ReadFile(c.fs, c.path)
	if err != nil && !vfs.IsErrNotExist(err) {
		return fmt.Errorf("failed reading configuration file: %w", err)
	}

	// Ensure that unmarshalling JSON doesn't fail if the file doesn't exist or is empty.
	if len(configJSON) == 0 {
		configJSON = []byte("{}")
	}

	if err = json.Unmarshal(configJSON, c); err != nil {
		return fmt.Errorf("failed parsing configuration file: %w", err)
	}

	return nil
}

// Path returns the filesystem path where the configuration is stored.
func (c *Config) Path() string {
	return c.path
}

// Save writes the current configuration to the filesystem as JSON.
func (c *Config) Save() error {
	if err := c.fs.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("failed creating configuration directory: %w", err)
	}
	configJSON, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed serializing configuration data: %w", err)
	}
	if err = vfs.WriteFile(c.fs, c.path, configJSON, 0o644); err != nil {
		return fmt.Errorf("failed writing configuration file: %w", err)
	}

	return nil
}

// Server defines configuration options specific to the HTTP server.
type Server struct {
	// Address is the network address in [host]:port format the server will listen on.
	Address sql.Null[string] `json:"address"`
	// ReadHeaderTimeout is the maximum time allowed to read request headers.
	// It serializes from/to xtime.Duration string values.
	ReadHeaderTimeout sql.Null[time.Duration] `json:"read_header_timeout"`
	// ReadTimeout is the maximum time allowed to read the entire request,
	// including the body.
	ReadTimeout sql.Null[time.Duration] `json:"read_timeout"`
	// WriteTimeout is the maximum time allowed to write the response.
	WriteTimeout sql.Null[time.Duration] `json:"write_timeout"`
}

// Auth defines authentication-specific configuration options.
type Auth struct {
	// Password is the expected password for the HTTP Basic auth endpoint.
	// Any username is accepted; only the password is compared.
	Password sql.Null[string] `json:"password"`
}

type cfgWrapper struct {
	Server srvCfgWrapper  `json:"server"`
	Auth   authCfgWrapper `json:"auth"`
}
type srvCfgWrapper struct {
	Address           string `json:"address,omitempty"`
	ReadHeaderTimeout string `json:"read_header_timeout,omitempty"`
	ReadTimeout       string `json:"read_timeout,omitempty"`
	WriteTimeout      string `json:"write_timeout,omitempty"`
}
type authCfgWrapper struct {
	Password string `json:"password,omitempty"`
}

// MarshalJSON implements custom JSON marshaling to convert sql.Null values
// to their underlying types, omitting invalid/null fields from the output.
func (c Config) MarshalJSON() ([]byte, error) {
	w := cfgWrapper{}

	if c.Server.Address.Valid {
		w.Server.Address = c.Server.Address.V
	}
	if c.Server.ReadHeaderTimeout.Valid {
		w.Server.ReadHeaderTimeout = xtime.FormatDuration(c.Server.ReadHeaderTimeout.V, time.Second)
	}
	if c.Server.ReadTimeout.Valid {
		w.Server.ReadTimeout = xtime.FormatDuration(c.Server.ReadTimeout.V, time.Second)
	}
	if c.Server.WriteTimeout.Valid {
		w.Server.WriteTimeout = xtime.FormatDuration(c.Server.WriteTimeout.V, time.Second)
	}

	if c.Auth.Password.Valid {
		w.Auth.Password = c.Auth.Password.V
	}

	//nolint:wrapcheck // This is fine.
	return json.Marshal(w)
}

// UnmarshalJSON implements custom JSON unmarshaling to convert plain values
// into sql.Null types and parse duration strings into time.Duration values.
func (c *Config) UnmarshalJSON(data []byte) error {
	var w cfgWrapper
	if err := json.Unmarshal(data, &w); err != nil {
		//nolint:wrapcheck // This is fine.
		return err
	}

	if w.Server.Address != "" {
		c.Server.Address = sql.Null[string]{V: w.Server.Address, Valid: true}
	}
	if w.Server.ReadHeaderTimeout != "" {
		dur, err := xtime.ParseDuration(w.Server.ReadHeaderTimeout)
		if err != nil {
			return fmt.Errorf("failed parsing read header timeout: %w", err)
		}
		c.Server.ReadHeaderTimeout = sql.Null[time.Duration]{V: dur, Valid: true}
	}
	if w.Server.ReadTimeout != "" {
		dur, err := xtime.ParseDuration(w.Server.ReadTimeout)
		if err != nil {
			return fmt.Errorf("failed parsing read timeout: %w", err)
		}
		c.Server.ReadTimeout = sql.Null[time.Duration]{V: dur, Valid: true}
	}
	if w.Server.WriteTimeout != "" {
		dur, err := xtime.ParseDuration(w.Server.WriteTimeout)
		if err != nil {
			return fmt.Errorf("failed parsing write timeout: %w", err)
		}
		c.Server.WriteTimeout = sql.Null[time.Duration]{V: dur, Valid: true}
	}

	if w.Auth.Password != "" {
		c.Auth.Password = sql.Null[string]{V: w.Auth.Password, Valid: true}
	}

	return nil
}

// SetDefaults sets default configuration values if they weren't set already.
func (c *Config) SetDefaults() {
	if !c.Server.Address.Valid {
		c.Server.Address = sql.Null[string]{V: "0.0.0.0:3000", Valid: true}
	}
	if !c.Server.ReadHeaderTimeout.Valid {
		c.Server.ReadHeaderTimeout = sql.Null[time.Duration]{V: 10 * time.Second, Valid: true}
	}
	if !c.Server.ReadTimeout.Valid {
		c.Server.ReadTimeout = sql.Null[time.Duration]{V: 30 * time.Second, Valid: true}
	}
	if !c.Server.WriteTimeout.Valid {
		c.Server.WriteTimeout = sql.Null[time.Duration]{V: time.Minute, Valid: true}
	}
	if !c.Auth.Password.Valid {
		c.Auth.Password = sql.Null[string]{V: "passwd", Valid: true}
	}
}
