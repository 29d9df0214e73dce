package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/echobin/echobin/web/inspect"
	"github.com/echobin/echobin/web/server/types"
)

// Authenticator validates a request and returns an updated context or an error.
// If authentication is successful, the principal will be set on the Request.
type Authenticator func(context.Context, types.Request) (context.Context, error)

// BasicAuth creates an authenticator that validates HTTP Basic
// credentials against the expected password. Missing credentials and a
// wrong password are indistinguishable to the client: both produce a
// 401 response carrying the fixed challenge in WWW-Authenticate. On
// success the supplied username becomes the request principal.
func BasicAuth(password string) Authenticator {
	return func(ctx context.Context, req types.Request) (context.Context, error) {
		result, ok := inspect.CheckBasic(req.GetHTTPRequest(), password)
		if !ok {
			return ctx, types.NewChallengeError(inspect.BasicChallenge)
		}

		req.SetPrincipal(result.User)

		return ctx, nil
	}
}

// BearerAuth creates an authenticator that accepts any Bearer token,
// including the empty one. The token becomes the request principal, and
// is written to the debug log; only a missing or non-Bearer
// Authorization header is rejected.
func BearerAuth(logger *slog.Logger) Authenticator {
	return func(ctx context.Context, req types.Request) (context.Context, error) {
		token, err := inspect.BearerToken(req.GetHTTPRequest())
		if err != nil {
			return ctx, types.NewError(http.StatusBadRequest, err.Error())
		}

		logger.Debug("received bearer token", "token", token)
		req.SetPrincipal(token)

		return ctx, nil
	}
}
