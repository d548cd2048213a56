package gateway

import "net/http"

// Kind classifies why a generation request failed.
type Kind string

const (
	InvalidRequest    Kind = "InvalidRequest"
	UpstreamError     Kind = "UpstreamError"
	ExtractionFailure Kind = "ExtractionFailure"
	NetworkError      Kind = "NetworkError"
)

// Error is a terminal generation failure. Message is safe to show to the caller.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func invalidRequest(message string, err error) *Error {
	return &Error{Kind: InvalidRequest, Status: http.StatusBadRequest, Message: message, Err: err}
}
