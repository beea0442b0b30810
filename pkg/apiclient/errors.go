package apiclient

import "fmt"

// TransportError indicates the request never produced an HTTP response
// (connection refused, DNS failure, timeout, cancellation).
type TransportError struct {
	Path string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("apiclient: request %s failed: %v", e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError carries a non-2xx response. Body holds server-supplied error
// text when present, otherwise the HTTP status phrase.
type StatusError struct {
	Path   string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("apiclient: %s returned HTTP %d: %s", e.Path, e.Status, e.Body)
}

// DecodeError indicates a 2xx response whose body could not be parsed as the
// expected JSON shape. Callers treat it like a transport failure.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("apiclient: decode response from %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
