package inspect_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echobin/echobin/web/inspect"
)

func TestCheckBasic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		user, pass string
		setAuth    bool
		expOK      bool
		expUser    string
	}{
		{
			name:    "ok/correct_password",
			user:    "user",
			pass:    "passwd",
			setAuth: true,
			expOK:   true,
			expUser: "user",
		},
		{
			name:    "ok/any_username",
			user:    "somebody.else",
			pass:    "passwd",
			setAuth: true,
			expOK:   true,
			expUser: "somebody.else",
		},
		{
			name:    "err/wrong_password",
			user:    "user",
			pass:    "letmein",
			setAuth: true,
		},
		{
			name:    "err/empty_password",
			user:    "user",
			pass:    "",
			setAuth: true,
		},
		{
			name: "err/no_credentials",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest("GET", "/basic-auth/user/passwd", nil)
			if tt.setAuth {
				r.SetBasicAuth(tt.user, tt.pass)
			}

			result, ok := inspect.CheckBasic(r, "passwd")

			assert.Equal(t, tt.expOK, ok)
			if tt.expOK {
				assert.True(t, result.Authenticated)
				assert.Equal(t, tt.expUser, result.User)
			} else {
				assert.False(t, result.Authenticated)
			}
		})
	}
}

func TestBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		header   string
		expToken string
		expErr   string
	}{
		{
			name:     "ok/token",
			header:   "Bearer abc123",
			expToken: "abc123",
		},
		{
			name:     "ok/empty_token",
			header:   "Bearer ",
			expToken: "",
		},
		{
			name:     "ok/bare_scheme",
			header:   "Bearer",
			expToken: "",
		},
		{
			name:   "err/missing_header",
			header: "",
			expErr: "empty Authorization header",
		},
		{
			name:   "err/wrong_scheme",
			header: "Basic dXNlcjpwYXNzd2Q=",
			expErr: "invalid Authorization header scheme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest("GET", "/bearer", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			token, err := inspect.BearerToken(r)

			if tt.expErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expToken, token)
		})
	}
}
