package protocol

import "bytes"

// Frame is the decoded form of a single response: the status digit plus the
// payload with the frame decoration stripped.
type Frame struct {
	// Status is the status digit, always StatusOK for a returned frame;
	// non-ok digits are reported as errors instead
	Status StatusCode

	// Payload is the response body with the leading and trailing carriage
	// return and the binary marker removed
	Payload []byte
}

// EncodeCommand converts a command string into a terminated wire frame.
// A single carriage return is appended if the command does not already end
// with one.
func EncodeCommand(cmd string) []byte {
	return EncodeRawCommand([]byte(cmd))
}

// EncodeRawCommand is EncodeCommand for callers that already hold bytes.
// The input is not modified.
func EncodeRawCommand(cmd []byte) []byte {
	out := make([]byte, len(cmd), len(cmd)+1)
	copy(out, cmd)
	if len(out) == 0 || out[len(out)-1] != Terminator {
		out = append(out, Terminator)
	}
	return out
}

// DecodeResponse splits a raw response into its status digit and payload.
//
// The first byte is the status indicator. For StatusOK the payload is the
// remainder with a single leading carriage return, a single trailing
// carriage return, and a leading binary marker stripped when present. The
// error digits '1', '2', and '5' produce a StatusError; anything else,
// including an empty response, produces an InvalidResponseError.
//
// DecodeResponse never retries and never inspects payload semantics.
func DecodeResponse(raw []byte) (Frame, error) {
	if len(raw) == 0 {
		return Frame{}, &InvalidResponseError{Empty: true}
	}

	status := StatusCode(raw[0])
	switch status {
	case StatusOK:
	case StatusSyntaxError, StatusExecutionError, StatusNoData:
		return Frame{}, &StatusError{Status: status}
	default:
		return Frame{}, &InvalidResponseError{Status: raw[0]}
	}

	payload := raw[1:]
	payload = bytes.TrimPrefix(payload, []byte{Terminator})
	payload = bytes.TrimSuffix(payload, []byte{Terminator})
	payload = bytes.TrimPrefix(payload, []byte(BinaryMarker))

	return Frame{Status: StatusOK, Payload: payload}, nil
}
