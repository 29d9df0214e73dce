// Package api defines the echo endpoints and their route table.
package api

import (
	"log/slog"
	"net/http"

	actx "github.com/echobin/echobin/app/context"
	"github.com/echobin/echobin/web/server/handler"
)

// Route describes a single endpoint.
type Route struct {
	Method      string
	Path        string
	Description string
}

// Routes returns the route table of the service.
func Routes() []Route {
	return []Route{
		{http.MethodGet, "/get", "Echo the request state."},
		{http.MethodPost, "/post", "Echo the request state."},
		{http.MethodPut, "/put", "Echo the request state."},
		{http.MethodPatch, "/patch", "Echo the request state."},
		{http.MethodDelete, "/delete", "Echo the request state."},
		{http.MethodPost, "/post/json", "Echo the request state and the decoded JSON body."},
		{http.MethodPost, "/post/form", "Echo the request state and the decoded form fields."},
		{http.MethodPost, "/post/file", "Echo the request state and the uploaded multipart parts."},
		{http.MethodGet, "/basic-auth/{user}/{pass}", "Validate HTTP Basic credentials."},
		{http.MethodGet, "/bearer", "Echo the presented Bearer token."},
	}
}

// Handler is the API endpoint handler.
type Handler struct {
	appCtx *actx.Context
	logger *slog.Logger
}

// SetupHandlers configures the echo endpoint handlers.
func SetupHandlers(appCtx *actx.Context, logger *slog.Logger) http.Handler {
	h := Handler{appCtx: appCtx, logger: logger}
	mux := http.NewServeMux()

	capture := func() *handler.Pipeline {
		return handler.NewPipeline().
			ProcessRequest(handler.CaptureSnapshot).
			ProcessResponse(handler.MarshalJSON)
	}

	for _, route := range Routes()[:5] {
		mux.Handle(route.Method+" "+route.Path, handler.Handle(h.Echo, capture()))
	}

	mux.Handle("POST /post/json", handler.Handle(h.PostJSON,
		capture().ProcessRequest(handler.DecodeJSONBody)))
	mux.Handle("POST /post/form", handler.Handle(h.PostForm,
		capture().ProcessRequest(handler.DecodeFormBody)))
	mux.Handle("POST /post/file", handler.Handle(h.PostFile,
		capture().ProcessRequest(handler.DecodeMultipartBody)))

	mux.Handle("GET /basic-auth/{user}/{pass}", handler.Handle(h.BasicAuth,
		capture().Auth(handler.BasicAuth(appCtx.Config.Auth.Password.V))))
	mux.Handle("GET /bearer", handler.Handle(h.Bearer,
		capture().Auth(handler.BearerAuth(logger))))

	return mux
}
