package handler

import (
	"context"
	"net/http"

	"github.com/echobin/echobin/web/inspect"
	"github.com/echobin/echobin/web/server/types"
)

// RequestProcessor processes incoming requests and can modify the request or context.
type RequestProcessor func(ctx context.Context, req types.Request) (context.Context, error)

// CaptureSnapshot records the request method, URL, origin address,
// query arguments and headers on the request, before any body is
// consumed.
func CaptureSnapshot(ctx context.Context, req types.Request) (context.Context, error) {
	req.SetSnapshot(inspect.Capture(req.GetHTTPRequest()))
	return ctx, nil
}

// DecodeJSONBody decodes the request body as JSON into the request's
// payload. Malformed JSON fails the request with a 400 response.
func DecodeJSONBody(ctx context.Context, req types.Request) (context.Context, error) {
	payload, err := inspect.DecodeJSON(req.GetHTTPRequest().Body)
	if err != nil {
		return ctx, types.NewError(http.StatusBadRequest, err.Error())
	}
	req.SetPayload(payload)

	return ctx, nil
}

// DecodeFormBody decodes the request body as urlencoded form fields
// into the request's payload.
func DecodeFormBody(ctx context.Context, req types.Request) (context.Context, error) {
	payload, err := inspect.DecodeForm(req.GetHTTPRequest().Body)
	if err != nil {
		return ctx, types.NewError(http.StatusBadRequest, err.Error())
	}
	req.SetPayload(payload)

	return ctx, nil
}

// DecodeMultipartBody decodes the request body as multipart/form-data
// into the request's payload. A part without a field name, or with
// content that is not valid UTF-8, fails the request with a 400
// response.
func DecodeMultipartBody(ctx context.Context, req types.Request) (context.Context, error) {
	httpReq := req.GetHTTPRequest()
	payload, err := inspect.DecodeMultipart(httpReq.Body, httpReq.Header.Get("Content-Type"))
	if err != nil {
		return ctx, types.NewError(http.StatusBadRequest, err.Error())
	}
	req.SetPayload(payload)

	return ctx, nil
}
