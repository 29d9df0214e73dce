package types

import (
	"net/http"

	"github.com/echobin/echobin/web/inspect"
)

// EchoResponse reflects the request snapshot and nothing else. It is
// the response of the plain method endpoints.
type EchoResponse struct {
	BaseResponse
	inspect.Snapshot
}

// NewEchoResponse creates an EchoResponse for the given snapshot.
func NewEchoResponse(s inspect.Snapshot) *EchoResponse {
	return &EchoResponse{
		BaseResponse: NewBaseResponse(http.StatusOK),
		Snapshot:     s,
	}
}

// PostJSONResponse reflects the snapshot plus the decoded JSON body and
// its canonical re-serialization. JSON is null and Data empty when the
// request had no body.
type PostJSONResponse struct {
	BaseResponse
	inspect.Snapshot
	JSON any    `json:"json"`
	Data string `json:"data"`
}

// NewPostJSONResponse creates a PostJSONResponse from a snapshot and a
// decoded JSON payload.
func NewPostJSONResponse(s inspect.Snapshot, p inspect.Payload) *PostJSONResponse {
	return &PostJSONResponse{
		BaseResponse: NewBaseResponse(http.StatusOK),
		Snapshot:     s,
		JSON:         p.JSON(),
		Data:         p.Data(),
	}
}

// PostFormResponse reflects the snapshot plus the decoded urlencoded
// form fields.
type PostFormResponse struct {
	BaseResponse
	inspect.Snapshot
	Form map[string]string `json:"form"`
}

// NewPostFormResponse creates a PostFormResponse from a snapshot and a
// decoded form payload.
func NewPostFormResponse(s inspect.Snapshot, p inspect.Payload) *PostFormResponse {
	return &PostFormResponse{
		BaseResponse: NewBaseResponse(http.StatusOK),
		Snapshot:     s,
		Form:         p.Form(),
	}
}

// PostFileResponse reflects the snapshot plus the text content of the
// uploaded multipart parts, keyed by field name.
type PostFileResponse struct {
	BaseResponse
	inspect.Snapshot
	Files map[string]string `json:"files"`
}

// NewPostFileResponse creates a PostFileResponse from a snapshot and a
// decoded multipart payload.
func NewPostFileResponse(s inspect.Snapshot, p inspect.Payload) *PostFileResponse {
	return &PostFileResponse{
		BaseResponse: NewBaseResponse(http.StatusOK),
		Snapshot:     s,
		Files:        p.Files(),
	}
}

// BasicAuthResponse reflects the snapshot plus the Basic authentication
// outcome. It is only produced on success; failures short-circuit into
// a 401 challenge before the handler runs.
type BasicAuthResponse struct {
	BaseResponse
	inspect.Snapshot
	Authenticated bool   `json:"authenticated"`
	User          string `json:"user"`
}

// NewBasicAuthResponse creates a BasicAuthResponse for an authenticated
// user.
func NewBasicAuthResponse(s inspect.Snapshot, user string) *BasicAuthResponse {
	return &BasicAuthResponse{
		BaseResponse:  NewBaseResponse(http.StatusOK),
		Snapshot:      s,
		Authenticated: true,
		User:          user,
	}
}

// BearerResponse reflects the snapshot plus the Bearer token presented
// by the client.
type BearerResponse struct {
	BaseResponse
	inspect.Snapshot
	Authenticated bool   `json:"authenticated"`
	Token         string `json:"token"`
}

// NewBearerResponse creates a BearerResponse for the given token.
func NewBearerResponse(s inspect.Snapshot, token string) *BearerResponse {
	return &BearerResponse{
		BaseResponse:  NewBaseResponse(http.StatusOK),
		Snapshot:      s,
		Authenticated: true,
		Token:         token,
	}
}
