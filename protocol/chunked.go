package protocol

import (
	"bytes"
	"fmt"
	"strconv"
)

// FetchFunc performs one bulk-transfer exchange for the given byte offset
// and returns the decoded response payload, including its textual
// "<offset> #0" prefix.
type FetchFunc func(offset int) ([]byte, error)

// ChunkDataSize returns the number of data bytes a full chunk carries for
// the given offset: the transfer window minus the "<offset> " text.
func ChunkDataSize(offset int) int {
	return ChunkWindow - len(strconv.Itoa(offset)) - 1
}

// ReassembleChunks drives a chunked bulk transfer and concatenates the
// chunks into a single buffer.
//
// The transfer starts at offset 0, which also instructs the device to
// capture and compress the underlying data; subsequent offsets read from
// that captured buffer, so offsets only ever increase within one transfer.
// After each round the "<offset> #0" prefix is stripped and the remainder
// appended; the transfer continues while the remainder exactly fills the
// chunk window for that offset.
//
// The protocol exposes no explicit end-of-data signal: any chunk shorter
// than the window ends the transfer. A final chunk that happens to be
// exactly window-sized triggers one extra request, whose outcome (a short
// chunk or a device error) then ends the transfer.
func ReassembleChunks(fetch FetchFunc) ([]byte, error) {
	var buf bytes.Buffer
	offset := 0
	for {
		payload, err := fetch(offset)
		if err != nil {
			return nil, fmt.Errorf("chunk at offset %d: %w", offset, err)
		}

		prefix := []byte(strconv.Itoa(offset) + " " + BinaryMarker)
		chunk := bytes.TrimPrefix(payload, prefix)
		buf.Write(chunk)

		if len(chunk) != ChunkDataSize(offset) {
			return buf.Bytes(), nil
		}
		offset += len(chunk)
	}
}
