package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// ASCII reading groups carry 9 comma-separated fields.
const asciiReadingFields = 9

// ParseReadingASCII decodes one 9-field ASCII reading group.
//
// Field order:
//
//	ID, VALUE, UNIT, MULTIPLIER, DECIMALS, DIGITS, STATE, ATTRIBUTE, TIMESTAMP
func ParseReadingASCII(fields []string) (Reading, error) {
	if len(fields) != asciiReadingFields {
		return Reading{}, fmt.Errorf("ascii reading: expected %d fields, got %d", asciiReadingFields, len(fields))
	}

	value, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Reading{}, fmt.Errorf("ascii reading value: %w", err)
	}
	mult, err := strconv.ParseInt(fields[3], 10, 16)
	if err != nil {
		return Reading{}, fmt.Errorf("ascii reading multiplier: %w", err)
	}
	decimals, err := strconv.ParseUint(fields[4], 10, 16)
	if err != nil {
		return Reading{}, fmt.Errorf("ascii reading decimals: %w", err)
	}
	digits, err := strconv.ParseUint(fields[5], 10, 16)
	if err != nil {
		return Reading{}, fmt.Errorf("ascii reading digits: %w", err)
	}
	ts, err := strconv.ParseFloat(fields[8], 64)
	if err != nil {
		return Reading{}, fmt.Errorf("ascii reading timestamp: %w", err)
	}

	return Reading{
		ID:             fields[0],
		Value:          value,
		Unit:           fields[2],
		UnitMultiplier: int16(mult),
		DecimalPlaces:  uint16(decimals),
		DisplayDigits:  uint16(digits),
		State:          fields[6],
		Attribute:      fields[7],
		Timestamp:      ts,
	}, nil
}

// ParseRangeInfo decodes the 4-field ASCII range group.
//
// Field order: AUTORANGE, BASE_UNIT, RANGE_NUMBER, MULTIPLIER.
func ParseRangeInfo(fields []string) (RangeInfo, error) {
	if len(fields) != 4 {
		return RangeInfo{}, fmt.Errorf("range info: expected 4 fields, got %d", len(fields))
	}

	rangeNum, err := strconv.Atoi(fields[2])
	if err != nil {
		return RangeInfo{}, fmt.Errorf("range info range number: %w", err)
	}
	mult, err := strconv.Atoi(fields[3])
	if err != nil {
		return RangeInfo{}, fmt.Errorf("range info multiplier: %w", err)
	}

	return RangeInfo{
		AutoRange:      fields[0],
		BaseUnit:       fields[1],
		RangeNumber:    rangeNum,
		UnitMultiplier: mult,
	}, nil
}

// ParseDisplayASCII decodes a QDDA payload: header fields, a range group,
// a variable list of mode labels, then a counted list of 9-field readings.
func ParseDisplayASCII(payload []byte) (*DisplayData, error) {
	fields := strings.Split(string(payload), ",")
	if len(fields) < 9 {
		return nil, fmt.Errorf("display data: expected at least 9 fields, got %d", len(fields))
	}

	rangeInfo, err := ParseRangeInfo(fields[2:6])
	if err != nil {
		return nil, err
	}
	minMaxStart, err := strconv.ParseFloat(fields[7], 64)
	if err != nil {
		return nil, fmt.Errorf("display data min/max start time: %w", err)
	}
	modeCount, err := strconv.Atoi(fields[8])
	if err != nil {
		return nil, fmt.Errorf("display data mode count: %w", err)
	}
	if modeCount < 0 {
		return nil, fmt.Errorf("display data mode count: %d is negative", modeCount)
	}

	data := &DisplayData{
		PrimaryFunction:   fields[0],
		SecondaryFunction: fields[1],
		Range:             rangeInfo,
		Bolt:              fields[6],
		MinMaxStartTime:   minMaxStart,
	}

	rest := fields[9:]
	if len(rest) < modeCount+1 {
		return nil, fmt.Errorf("display data: %d fields left for %d modes", len(rest), modeCount)
	}
	data.Modes = append(data.Modes, rest[:modeCount]...)
	rest = rest[modeCount:]

	readingCount, err := strconv.Atoi(rest[0])
	if err != nil {
		return nil, fmt.Errorf("display data reading count: %w", err)
	}
	if readingCount < 0 {
		return nil, fmt.Errorf("display data reading count: %d is negative", readingCount)
	}
	rest = rest[1:]
	if len(rest) != readingCount*asciiReadingFields {
		return nil, fmt.Errorf("display data: expected %d reading fields, got %d",
			readingCount*asciiReadingFields, len(rest))
	}

	data.Readings = make([]Reading, 0, readingCount)
	for i := 0; i < readingCount; i++ {
		r, err := ParseReadingASCII(rest[i*asciiReadingFields : (i+1)*asciiReadingFields])
		if err != nil {
			return nil, fmt.Errorf("display data reading %d: %w", i, err)
		}
		data.Readings = append(data.Readings, r)
	}

	return data, nil
}

// ParsePrimaryMeasurement decodes a QM payload: VALUE, UNIT, STATE.
func ParsePrimaryMeasurement(payload []byte) (PrimaryMeasurement, error) {
	fields := strings.Split(string(payload), ",")
	if len(fields) < 3 {
		return PrimaryMeasurement{}, fmt.Errorf("primary measurement: expected 3 fields, got %d", len(fields))
	}

	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return PrimaryMeasurement{}, fmt.Errorf("primary measurement value: %w", err)
	}

	return PrimaryMeasurement{
		Value: value,
		Unit:  fields[1],
		State: fields[2],
	}, nil
}

// ParseSavedItemCounts decodes a QSLS payload: four item counts.
func ParseSavedItemCounts(payload []byte) (SavedItemCounts, error) {
	fields := strings.Split(string(payload), ",")
	if len(fields) != 4 {
		return SavedItemCounts{}, fmt.Errorf("saved item counts: expected 4 fields, got %d", len(fields))
	}

	var counts [4]int
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return SavedItemCounts{}, fmt.Errorf("saved item counts field %d: %w", i, err)
		}
		counts[i] = n
	}

	return SavedItemCounts{
		Recordings:   counts[0],
		MinMax:       counts[1],
		Peak:         counts[2],
		Measurements: counts[3],
	}, nil
}

// ParseVocabulary decodes a QEMAP payload shaped as
//
//	count,(code,label)*count
//
// into a code-to-label mapping. The trailing field count must equal exactly
// twice the declared entry count.
func ParseVocabulary(name string, payload []byte) (map[uint16]string, error) {
	fields := strings.Split(string(payload), ",")
	count, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil || count < 0 {
		return nil, &MalformedVocabularyError{Name: name, Count: -1, Fields: len(fields) - 1}
	}

	rest := fields[1:]
	// Split on an empty remainder yields one empty field, not zero.
	if count == 0 && (len(rest) == 0 || (len(rest) == 1 && rest[0] == "")) {
		return map[uint16]string{}, nil
	}
	if len(rest) != 2*count {
		return nil, &MalformedVocabularyError{Name: name, Count: count, Fields: len(rest)}
	}

	entries := make(map[uint16]string, count)
	for i := 0; i < count; i++ {
		code, err := strconv.ParseUint(strings.TrimSpace(rest[2*i]), 10, 16)
		if err != nil {
			return nil, &MalformedVocabularyError{Name: name, Count: count, Fields: len(rest)}
		}
		entries[uint16(code)] = rest[2*i+1]
	}

	return entries, nil
}
