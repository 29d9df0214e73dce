package types

import "net/http"

// Error represents an HTTP error with status code and message.
type Error struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
	// Challenge, if set, is sent to the client in the WWW-Authenticate
	// response header.
	Challenge string `json:"-"`
}

// Error returns the error message string.
func (e Error) Error() string {
	return e.Message
}

// NewError creates a new Error with the specified status code and message.
func NewError(statusCode int, message string) *Error {
	return &Error{
		StatusCode: statusCode,
		Message:    message,
	}
}

// NewChallengeError creates a 401 Unauthorized Error carrying the given
// authentication challenge.
func NewChallengeError(challenge string) *Error {
	return &Error{
		StatusCode: http.StatusUnauthorized,
		Message:    http.StatusText(http.StatusUnauthorized),
		Challenge:  challenge,
	}
}
