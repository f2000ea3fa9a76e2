package practicum

import "fmt"

// RequestError reports that the endpoint could not be reached at all:
// connection refused, DNS failure, timeout.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("homework API request failed: %v", e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// UnexpectedStatusError reports a reachable endpoint answering with a
// code other than 200.
type UnexpectedStatusError struct {
	Code int
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("homework API answered with status %d, expected 200", e.Code)
}

// DecodeError reports a response body that is not valid JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("homework API response is not valid JSON: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
