package httputils

import "fmt"

// TransportError means the exchange never produced a status code: DNS
// failure, refused connection, timeout before headers, and the like. A
// response with a 4xx or 5xx status is not a TransportError.
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
