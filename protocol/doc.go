// Package protocol implements the Fluke 28x remote command protocol.
//
// This package provides functions to encode command frames, decode response
// frames, and parse the binary and ASCII response payloads produced by the
// Fluke 287/289 multimeter family over its IR-to-USB serial link. The
// protocol is not publicly documented; the behavior implemented here was
// reverse engineered from instrument traffic.
//
// # Protocol Overview
//
// Commands are ASCII strings terminated by a single carriage return:
//
//	Command:  <TEXT>\r
//	Response: <STATUS><PAYLOAD>
//
// Where:
//   - STATUS is a single ASCII digit ('0' = ok, '1' = syntax error,
//     '2' = execution error, '5' = no data)
//   - PAYLOAD may be ASCII (comma-separated fields) or binary. Binary
//     payloads carry a "#0" marker after the status digit, and non-chunked
//     responses end with a trailing carriage return.
//
// # Frame Codec
//
// Use EncodeCommand and DecodeResponse for a single exchange:
//
//	raw := protocol.EncodeCommand("QDDB")
//	// ... write raw, read the reply ...
//	frame, err := protocol.DecodeResponse(reply)
//
// DecodeResponse classifies the status digit and strips the frame
// decoration; it never inspects payload semantics.
//
// # Binary Records
//
// Binary payloads use fixed layouts with an unusual byte-order convention:
// 16-bit fields are stored low byte first, and 64-bit doubles are stored as
// two 4-byte halves, each half low byte first, low half before high half.
// ReadUint16, ReadInt16, and ReadDouble implement these reads.
//
// The fixed-layout parsers validate the declared element count against the
// total payload length before decoding any field:
//
//	snap, err := protocol.ParseDisplaySnapshot(frame.Payload, resolver)
//	rec, err := protocol.ParseRecordingSummary(frame.Payload, resolver)
//	meas, err := protocol.ParseSavedMeasurement(frame.Payload, resolver)
//
// Enumerated fields arrive as small integer codes and are resolved to their
// device-reported labels through a Resolver (see the vocab package).
//
// # Chunked Transfers
//
// Bulk binary data (the LCD screenshot) is retrieved in bounded windows
// addressed by a byte offset. ReassembleChunks drives the offset sequence
// and concatenates the windows into one buffer.
//
// # Error Handling
//
// All failures are surfaced as typed errors with enough context to diagnose
// without re-querying the device:
//   - StatusError: the device rejected or could not service the command
//   - InvalidResponseError: the reply did not carry a known status digit
//   - OutOfRangeError: a fixed-width read past the end of a buffer
//   - LengthMismatchError: a binary payload does not match its declared shape
//   - MalformedVocabularyError: a QEMAP reply with an inconsistent count
//
// No retries are performed anywhere in this package; retry policy belongs to
// the caller.
package protocol
