package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/echobin/echobin/web/server/types"
)

// ResponseProcessor processes outgoing responses and can modify the response or context.
type ResponseProcessor func(ctx context.Context, resp types.Response) (context.Context, error)

// errorEnvelope is the body of all error responses.
type errorEnvelope struct {
	StatusCode int    `json:"status_code"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
}

// MarshalJSON encodes the response as JSON and stores it in the context for
// writing. It sets the appropriate Content-Type header. Responses carrying an
// error are encoded as the error envelope instead of their endpoint fields.
func MarshalJSON(ctx context.Context, resp types.Response) (context.Context, error) {
	var body any = resp
	if err := resp.GetError(); err != nil {
		body = errorEnvelope{
			StatusCode: resp.GetStatusCode(),
			Status:     http.StatusText(resp.GetStatusCode()),
			Error:      err.Error(),
		}
	}

	data, err := json.Marshal(body)
	if err != nil {
		return ctx, fmt.Errorf("failed marshalling response into JSON: %w", err)
	}

	ctx = setResponseData(ctx, data)

	resp.GetHeader().Set("Content-Type", "application/json")

	return ctx, nil
}

func writeResponse(ctx context.Context, w http.ResponseWriter, resp types.Response) error {
	data := getResponseData(ctx)

	// Respond with at least some kind of useful response, even if it's invalid.
	var terr *types.Error
	if errors.As(resp.GetError(), &terr) {
		if terr.Challenge != "" {
			w.Header().Set("WWW-Authenticate", terr.Challenge)
		}
		if len(data) == 0 {
			data = []byte(terr.Message)
		}
	}

	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/octet-stream")
	}

	w.WriteHeader(resp.GetStatusCode())
	_, err := w.Write(data)

	return err //nolint:wrapcheck // Wrapped by caller.
}
