package api

import (
	"context"

	"github.com/echobin/echobin/web/server/types"
)

// Echo reflects the captured request state back to the client.
func (h *Handler) Echo(_ context.Context, req *types.EchoRequest) (*types.EchoResponse, error) {
	return types.NewEchoResponse(req.Snapshot), nil
}

// PostJSON reflects the request state and its decoded JSON body.
func (h *Handler) PostJSON(_ context.Context, req *types.EchoRequest) (*types.PostJSONResponse, error) {
	return types.NewPostJSONResponse(req.Snapshot, req.Payload), nil
}

// PostForm reflects the request state and its decoded form fields.
func (h *Handler) PostForm(_ context.Context, req *types.EchoRequest) (*types.PostFormResponse, error) {
	return types.NewPostFormResponse(req.Snapshot, req.Payload), nil
}

// PostFile reflects the request state and the text content of its
// uploaded multipart parts.
func (h *Handler) PostFile(_ context.Context, req *types.EchoRequest) (*types.PostFileResponse, error) {
	return types.NewPostFileResponse(req.Snapshot, req.Payload), nil
}

// BasicAuth reflects the request state and the authenticated user. It
// is only reached after the pipeline's authenticator has accepted the
// credentials.
func (h *Handler) BasicAuth(_ context.Context, req *types.EchoRequest) (*types.BasicAuthResponse, error) {
	return types.NewBasicAuthResponse(req.Snapshot, req.Principal), nil
}

// Bearer reflects the request state and the presented token.
func (h *Handler) Bearer(_ context.Context, req *types.EchoRequest) (*types.BearerResponse, error) {
	return types.NewBearerResponse(req.Snapshot, req.Principal), nil
}
