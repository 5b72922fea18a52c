package protocol

import "time"

// Resolver translates the small integer codes carried by binary records into
// the device-reported labels for a named vocabulary table.
// The vocab package provides the standard implementation.
type Resolver interface {
	// Resolve returns the label for code in the named table.
	// It fails when the table was never queried or the code is absent.
	Resolve(table string, code uint16) (string, error)
}

// Reading is one measured value plus its unit, scaling, display, and status
// metadata, as reported by the instrument. It is produced either from a
// 9-field ASCII group or from a fixed 30-byte binary block.
type Reading struct {
	// ID identifies which displayed value this is (LIVE, MIN, MAX, ...)
	ID string

	// Value is the measured value
	Value float64

	// Unit is the measurement unit label
	Unit string

	// UnitMultiplier is the decimal exponent applied to Value
	UnitMultiplier int16

	// DecimalPlaces is the number of decimals shown on the display
	DecimalPlaces uint16

	// DisplayDigits is the number of digits shown on the display
	DisplayDigits uint16

	// State is the reading state label (NORMAL, BLANK, OL, ...)
	State string

	// Attribute is the reading attribute label (NONE, LOW_PASS_FILTERED, ...)
	Attribute string

	// Timestamp is the reading time in seconds since the Unix epoch,
	// with fractional seconds
	Timestamp float64
}

// Time returns the reading timestamp as a time.Time in UTC.
func (r Reading) Time() time.Time {
	sec := int64(r.Timestamp)
	nsec := int64((r.Timestamp - float64(sec)) * 1e9)
	return time.Unix(sec, nsec).UTC()
}

// RangeInfo describes the active range, decoded from a 4-field ASCII group.
type RangeInfo struct {
	AutoRange      string
	BaseUnit       string
	RangeNumber    int
	UnitMultiplier int
}

// DisplaySnapshot is the decoded binary QDDB response: the full state of the
// display plus the readings currently shown.
//
// Unknown1 is an unidentified field preserved as received.
type DisplaySnapshot struct {
	PrimaryFunction   string
	SecondaryFunction string
	AutoRange         string
	Unit              string
	RangeMax          float64
	UnitMultiplier    int16
	Bolt              string
	Timestamp         float64
	Mode              string
	Unknown1          uint16
	Readings          []Reading
}

// RecordingSummary is the decoded binary QRSI response describing one saved
// recording session.
//
// The UnknownN fields are unidentified in the reverse-engineered protocol
// and are preserved as received.
type RecordingSummary struct {
	SequenceNumber    uint16
	Unknown2          uint16
	StartTime         float64
	EndTime           float64
	SampleInterval    float64
	EventThreshold    float64
	ReadingIndex      float64
	Unknown3          uint16
	SampleCount       uint16
	Unknown4          uint16
	PrimaryFunction   string
	SecondaryFunction string
	AutoRange         string
	Unit              string
	RangeMax          float64
	UnitMultiplier    int16
	Bolt              string
	Unknown8          uint16
	Unknown9          uint16
	Unknown10         uint16
	Unknown11         uint16
	Mode              string
	Unknown12         uint16
}

// SavedMeasurement is the decoded binary QSMR response: one saved
// measurement with its readings and the user-assigned save name.
//
// The UnknownN fields are unidentified in the reverse-engineered protocol
// and are preserved as received.
type SavedMeasurement struct {
	SequenceNumber    uint16
	Unknown1          uint16
	PrimaryFunction   string
	SecondaryFunction string
	AutoRange         string
	Unit              string
	RangeMax          float64
	UnitMultiplier    int16
	Bolt              string
	Unknown4          uint16
	Unknown5          uint16
	Unknown6          uint16
	Unknown7          uint16
	Mode              string
	Unknown9          uint16
	Readings          []Reading
	Name              string
}

// DisplayData is the decoded ASCII QDDA response.
type DisplayData struct {
	PrimaryFunction   string
	SecondaryFunction string
	Range             RangeInfo
	Bolt              string
	MinMaxStartTime   float64
	Modes             []string
	Readings          []Reading
}

// PrimaryMeasurement is the decoded QM response.
type PrimaryMeasurement struct {
	Value float64
	Unit  string
	State string
}

// SavedItemCounts is the decoded QSLS response: how many items of each kind
// are stored in the instrument's memory.
type SavedItemCounts struct {
	Recordings   int
	MinMax       int
	Peak         int
	Measurements int
}
