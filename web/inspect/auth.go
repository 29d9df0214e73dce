package inspect

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
)

// BasicChallenge is the WWW-Authenticate value sent when Basic
// credentials are missing or wrong.
const BasicChallenge = `Basic realm="Fake Realm"`

// BasicAuth is the outcome of successfully validating Basic credentials.
type BasicAuth struct {
	Authenticated bool
	User          string
}

// CheckBasic validates the Basic credentials on r against the expected
// password. It returns false when credentials are absent or the
// password doesn't match; the caller is expected to respond with
// BasicChallenge in that case. The comparison is constant-time.
func CheckBasic(r *http.Request, password string) (BasicAuth, bool) {
	user, pass, ok := r.BasicAuth()
	if !ok {
		return BasicAuth{}, false
	}
	if subtle.ConstantTimeCompare([]byte(pass), []byte(password)) != 1 {
		return BasicAuth{}, false
	}

	return BasicAuth{Authenticated: true, User: user}, true
}

// BearerToken extracts the token from an "Authorization: Bearer"
// header. Any token value is accepted, including the empty string; only
// a missing header or a different scheme is an error.
func BearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", errors.New("empty Authorization header")
	}

	if header == "Bearer" {
		return "", nil
	}
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return "", errors.New("invalid Authorization header scheme")
	}

	return token, nil
}
