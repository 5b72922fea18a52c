package protocol

import "fmt"

// StatusError represents a non-ok status digit returned by the instrument.
// The exchange itself succeeded; the device rejected or could not service
// the command.
type StatusError struct {
	// Status is the status digit from the response
	Status StatusCode
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("device returned status %q: %s", byte(e.Status), e.Status)
}

// InvalidResponseError indicates a response that does not carry a known
// status digit, including an empty read (typically a transport timeout).
type InvalidResponseError struct {
	// Status is the first byte of the response, zero when Empty
	Status byte

	// Empty is true when no bytes were received at all
	Empty bool
}

func (e *InvalidResponseError) Error() string {
	if e.Empty {
		return "invalid response: no data received"
	}
	return fmt.Sprintf("invalid response: unknown status byte 0x%02X", e.Status)
}

// OutOfRangeError indicates a fixed-width read past the end of a buffer.
type OutOfRangeError struct {
	Offset int
	Width  int
	Length int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("read of %d bytes at offset %d is out of range for %d-byte buffer",
		e.Width, e.Offset, e.Length)
}

// LengthMismatchError indicates a binary payload whose total length does not
// match the shape declared by its own header. This is always fatal: it means
// the stream is desynchronized or the wrong command variant was issued, and
// no partial decode is attempted.
type LengthMismatchError struct {
	// Record names the record type being parsed
	Record string

	// Expected is the length implied by the declared element count
	Expected int

	// Actual is the length actually received
	Actual int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%s length mismatch: expected %d bytes, got %d",
		e.Record, e.Expected, e.Actual)
}

// MalformedVocabularyError indicates a QEMAP response whose trailing field
// count does not match twice its declared entry count.
type MalformedVocabularyError struct {
	// Name is the vocabulary table that was queried
	Name string

	// Count is the entry count declared by the response
	Count int

	// Fields is the number of fields that followed the count
	Fields int
}

func (e *MalformedVocabularyError) Error() string {
	return fmt.Sprintf("malformed vocabulary %q: declared %d entries but carried %d fields (want %d)",
		e.Name, e.Count, e.Fields, 2*e.Count)
}
