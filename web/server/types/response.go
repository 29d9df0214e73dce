package types

import "net/http"

// Response defines the interface for HTTP response wrappers.
type Response interface {
	GetStatusCode() int
	SetStatusCode(int)
	GetHeader() http.Header
	SetHeader(http.Header)
	GetError() error
	SetError(error)
}

// BaseResponse carries the transport state shared by all responses.
// Its fields are unexported so they never leak into serialized bodies;
// each endpoint's response struct declares its exact field set.
type BaseResponse struct {
	statusCode int
	header     http.Header
	err        error
}

var _ Response = (*BaseResponse)(nil)

// NewBaseResponse creates a BaseResponse with the given status code.
func NewBaseResponse(statusCode int) BaseResponse {
	return BaseResponse{statusCode: statusCode, header: http.Header{}}
}

// GetStatusCode returns the HTTP status code for the response.
func (r *BaseResponse) GetStatusCode() int {
	if r.statusCode == 0 {
		return http.StatusOK
	}
	return r.statusCode
}

// SetStatusCode sets the HTTP status code for the response.
func (r *BaseResponse) SetStatusCode(code int) {
	r.statusCode = code
}

// GetHeader returns the response headers.
func (r *BaseResponse) GetHeader() http.Header {
	if r.header == nil {
		r.header = http.Header{}
	}
	return r.header
}

// SetHeader sets the response headers. The pipeline calls this with the
// ResponseWriter's header map so that processors can modify it directly.
func (r *BaseResponse) SetHeader(h http.Header) {
	for name, values := range r.header {
		for _, v := range values {
			h.Add(name, v)
		}
	}
	r.header = h
}

// GetError returns the error set on the response, if any.
func (r *BaseResponse) GetError() error {
	return r.err
}

// SetError sets an error on the response. A response with an error is
// serialized as the error envelope instead of its endpoint fields.
func (r *BaseResponse) SetError(err error) {
	r.err = err
}
