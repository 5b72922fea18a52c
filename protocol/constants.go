package protocol

// Terminator is the carriage return that ends every command and every
// non-chunked response.
const Terminator = '\r'

// BinaryMarker is the marker prefixed to binary response payloads.
const BinaryMarker = "#0"

// StatusCode is the single ASCII digit that opens every response and
// classifies the outcome of the exchange.
type StatusCode byte

// Status digits reported by the instrument.
const (
	// StatusOK indicates the command was accepted and the payload follows
	StatusOK StatusCode = '0'

	// StatusSyntaxError indicates the command was not recognized
	StatusSyntaxError StatusCode = '1'

	// StatusExecutionError indicates the command could not be executed
	StatusExecutionError StatusCode = '2'

	// StatusNoData indicates the command was valid but no data is available
	StatusNoData StatusCode = '5'
)

// String returns a human-readable name for the status digit.
func (s StatusCode) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusSyntaxError:
		return "syntax error"
	case StatusExecutionError:
		return "execution error"
	case StatusNoData:
		return "no data"
	default:
		return "unknown"
	}
}

// Binary record geometry. Offsets and sizes are in bytes.
const (
	// ReadingSize is the size of one binary reading sub-record
	ReadingSize = 30

	// DisplaySnapshotHeaderSize is the QDDB header size
	DisplaySnapshotHeaderSize = 34

	// DisplaySnapshotCountOffset is where the QDDB reading count lives
	DisplaySnapshotCountOffset = 32

	// RecordingSummarySize is the total size of a QRSI record
	RecordingSummarySize = 76

	// SavedMeasurementHeaderSize is the QSMR header size
	SavedMeasurementHeaderSize = 38

	// SavedMeasurementCountOffset is where the QSMR reading count lives
	SavedMeasurementCountOffset = 36
)

// ChunkWindow is the largest payload a single bulk-transfer exchange can
// carry, including the "<offset> " text that prefixes each chunk.
const ChunkWindow = 1020

// Vocabulary table names referenced by the binary record parsers.
const (
	TablePrimFunction = "PRIMFUNCTION"
	TableSecFunction  = "SECFUNCTION"
	TableAutoRange    = "AUTORANGE"
	TableUnit         = "UNIT"
	TableBolt         = "BOLT"
	TableMode         = "MODE"
	TableReadingID    = "READINGID"
	TableState        = "STATE"
	TableAttribute    = "ATTRIBUTE"
)
