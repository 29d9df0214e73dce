package types

import (
	"net/http"

	"github.com/echobin/echobin/web/inspect"
)

// Request defines the interface for HTTP request wrappers.
type Request interface {
	SetHTTPRequest(*http.Request)
	GetHTTPRequest() *http.Request
	GetSnapshot() inspect.Snapshot
	SetSnapshot(inspect.Snapshot)
	GetPayload() inspect.Payload
	SetPayload(inspect.Payload)
	GetPrincipal() string
	SetPrincipal(string)
}

// BaseRequest provides a base implementation for HTTP requests. It
// accumulates what the pipeline stages extract: the request snapshot,
// the decoded body payload, and the authenticated principal.
type BaseRequest struct {
	*http.Request
	Snapshot  inspect.Snapshot
	Payload   inspect.Payload
	Principal string
}

var _ Request = (*BaseRequest)(nil)

// GetHTTPRequest returns the underlying HTTP request.
func (r *BaseRequest) GetHTTPRequest() *http.Request {
	return r.Request
}

// SetHTTPRequest sets the underlying HTTP request.
func (r *BaseRequest) SetHTTPRequest(req *http.Request) {
	r.Request = req
}

// GetSnapshot returns the captured request snapshot.
func (r *BaseRequest) GetSnapshot() inspect.Snapshot {
	return r.Snapshot
}

// SetSnapshot sets the captured request snapshot.
func (r *BaseRequest) SetSnapshot(s inspect.Snapshot) {
	r.Snapshot = s
}

// GetPayload returns the decoded body payload.
func (r *BaseRequest) GetPayload() inspect.Payload {
	return r.Payload
}

// SetPayload sets the decoded body payload.
func (r *BaseRequest) SetPayload(p inspect.Payload) {
	r.Payload = p
}

// GetPrincipal returns the authenticated principal: the username for
// Basic auth, or the token for Bearer auth.
func (r *BaseRequest) GetPrincipal() string {
	return r.Principal
}

// SetPrincipal sets the authenticated principal.
func (r *BaseRequest) SetPrincipal(p string) {
	r.Principal = p
}

// EchoRequest is the request for all echo endpoints. No endpoint
// carries typed client fields; everything of interest is extracted by
// the pipeline into the base request.
type EchoRequest struct {
	BaseRequest
}
