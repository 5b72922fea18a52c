package meter

import "fmt"

// TransportError indicates the serial link itself failed during an
// exchange. It is fatal for the exchange and never retried here.
type TransportError struct {
	// Op is the transport operation that failed ("write" or "read")
	Op string

	// Err is the underlying transport error
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
