package protocol

// The fixed-layout parsers below validate the total payload length against
// the shape declared by the record's own count field before decoding any
// field. After that validation every fixed-offset read is in bounds, so the
// unexported helpers drop the error returns.

func u16At(buf []byte, offset int) uint16 {
	v, _ := ReadUint16(buf, offset)
	return v
}

func i16At(buf []byte, offset int) int16 {
	v, _ := ReadInt16(buf, offset)
	return v
}

func doubleAt(buf []byte, offset int) float64 {
	v, _ := ReadDouble(buf, offset)
	return v
}

// ParseReadingBinary decodes one 30-byte binary reading sub-record.
//
// Layout:
//
//	[ID(2)][VALUE(8)][UNIT(2)][MULT(2)][DECIMALS(2)][DIGITS(2)][STATE(2)][ATTR(2)][TIMESTAMP(8)]
//
// The ID, UNIT, STATE, and ATTR codes are resolved through res; a failed
// resolution is returned as-is, never substituted with a numeric fallback.
func ParseReadingBinary(data []byte, res Resolver) (Reading, error) {
	if len(data) != ReadingSize {
		return Reading{}, &LengthMismatchError{Record: "reading", Expected: ReadingSize, Actual: len(data)}
	}

	var r Reading
	var err error

	if r.ID, err = res.Resolve(TableReadingID, u16At(data, 0)); err != nil {
		return Reading{}, err
	}
	r.Value = doubleAt(data, 2)
	if r.Unit, err = res.Resolve(TableUnit, u16At(data, 10)); err != nil {
		return Reading{}, err
	}
	r.UnitMultiplier = i16At(data, 12)
	r.DecimalPlaces = u16At(data, 14)
	r.DisplayDigits = u16At(data, 16)
	if r.State, err = res.Resolve(TableState, u16At(data, 18)); err != nil {
		return Reading{}, err
	}
	if r.Attribute, err = res.Resolve(TableAttribute, u16At(data, 20)); err != nil {
		return Reading{}, err
	}
	r.Timestamp = doubleAt(data, 22)

	return r, nil
}

// ParseDisplaySnapshot decodes a binary QDDB payload.
//
// The payload is a 34-byte header followed by one 30-byte block per reading;
// the reading count is declared at offset 32. The total length must equal
// exactly 34 + 30*count.
func ParseDisplaySnapshot(data []byte, res Resolver) (*DisplaySnapshot, error) {
	if len(data) < DisplaySnapshotHeaderSize {
		return nil, &LengthMismatchError{Record: "display snapshot", Expected: DisplaySnapshotHeaderSize, Actual: len(data)}
	}

	count := int(u16At(data, DisplaySnapshotCountOffset))
	expected := DisplaySnapshotHeaderSize + ReadingSize*count
	if len(data) != expected {
		return nil, &LengthMismatchError{Record: "display snapshot", Expected: expected, Actual: len(data)}
	}

	snap := &DisplaySnapshot{
		RangeMax:       doubleAt(data, 8),
		UnitMultiplier: i16At(data, 16),
		Timestamp:      doubleAt(data, 20),
		Unknown1:       u16At(data, 30),
	}

	var err error
	if snap.PrimaryFunction, err = res.Resolve(TablePrimFunction, u16At(data, 0)); err != nil {
		return nil, err
	}
	if snap.SecondaryFunction, err = res.Resolve(TableSecFunction, u16At(data, 2)); err != nil {
		return nil, err
	}
	if snap.AutoRange, err = res.Resolve(TableAutoRange, u16At(data, 4)); err != nil {
		return nil, err
	}
	if snap.Unit, err = res.Resolve(TableUnit, u16At(data, 6)); err != nil {
		return nil, err
	}
	if snap.Bolt, err = res.Resolve(TableBolt, u16At(data, 18)); err != nil {
		return nil, err
	}
	if snap.Mode, err = res.Resolve(TableMode, u16At(data, 28)); err != nil {
		return nil, err
	}

	snap.Readings = make([]Reading, 0, count)
	for i := 0; i < count; i++ {
		start := DisplaySnapshotHeaderSize + i*ReadingSize
		r, err := ParseReadingBinary(data[start:start+ReadingSize], res)
		if err != nil {
			return nil, err
		}
		snap.Readings = append(snap.Readings, r)
	}

	return snap, nil
}

// ParseRecordingSummary decodes a binary QRSI payload (76 bytes, single
// record, no element sequence).
func ParseRecordingSummary(data []byte, res Resolver) (*RecordingSummary, error) {
	if len(data) != RecordingSummarySize {
		return nil, &LengthMismatchError{Record: "recording summary", Expected: RecordingSummarySize, Actual: len(data)}
	}

	rec := &RecordingSummary{
		SequenceNumber: u16At(data, 0),
		Unknown2:       u16At(data, 2),
		StartTime:      doubleAt(data, 4),
		EndTime:        doubleAt(data, 12),
		SampleInterval: doubleAt(data, 20),
		EventThreshold: doubleAt(data, 28),
		ReadingIndex:   doubleAt(data, 36),
		Unknown3:       u16At(data, 38),
		SampleCount:    u16At(data, 40),
		Unknown4:       u16At(data, 42),
		RangeMax:       doubleAt(data, 52),
		UnitMultiplier: i16At(data, 60),
		Unknown8:       u16At(data, 64),
		Unknown9:       u16At(data, 66),
		Unknown10:      u16At(data, 68),
		Unknown11:      u16At(data, 70),
		Unknown12:      u16At(data, 74),
	}

	var err error
	if rec.PrimaryFunction, err = res.Resolve(TablePrimFunction, u16At(data, 44)); err != nil {
		return nil, err
	}
	if rec.SecondaryFunction, err = res.Resolve(TableSecFunction, u16At(data, 46)); err != nil {
		return nil, err
	}
	if rec.AutoRange, err = res.Resolve(TableAutoRange, u16At(data, 48)); err != nil {
		return nil, err
	}
	if rec.Unit, err = res.Resolve(TableUnit, u16At(data, 50)); err != nil {
		return nil, err
	}
	if rec.Bolt, err = res.Resolve(TableBolt, u16At(data, 62)); err != nil {
		return nil, err
	}
	if rec.Mode, err = res.Resolve(TableMode, u16At(data, 72)); err != nil {
		return nil, err
	}

	return rec, nil
}

// ParseSavedMeasurement decodes a binary QSMR payload.
//
// The payload is a 38-byte header (reading count at offset 36), one 30-byte
// block per reading, and a trailing variable-length save name occupying
// whatever remains. The total length must be at least 38 + 30*count.
func ParseSavedMeasurement(data []byte, res Resolver) (*SavedMeasurement, error) {
	if len(data) < SavedMeasurementHeaderSize {
		return nil, &LengthMismatchError{Record: "saved measurement", Expected: SavedMeasurementHeaderSize, Actual: len(data)}
	}

	count := int(u16At(data, SavedMeasurementCountOffset))
	minLen := SavedMeasurementHeaderSize + ReadingSize*count
	if len(data) < minLen {
		return nil, &LengthMismatchError{Record: "saved measurement", Expected: minLen, Actual: len(data)}
	}

	meas := &SavedMeasurement{
		SequenceNumber: u16At(data, 0),
		Unknown1:       u16At(data, 2),
		RangeMax:       doubleAt(data, 12),
		UnitMultiplier: i16At(data, 20),
		Unknown4:       u16At(data, 24),
		Unknown5:       u16At(data, 26),
		Unknown6:       u16At(data, 28),
		Unknown7:       u16At(data, 30),
		Unknown9:       u16At(data, 34),
		Name:           string(data[minLen:]),
	}

	var err error
	if meas.PrimaryFunction, err = res.Resolve(TablePrimFunction, u16At(data, 4)); err != nil {
		return nil, err
	}
	if meas.SecondaryFunction, err = res.Resolve(TableSecFunction, u16At(data, 6)); err != nil {
		return nil, err
	}
	if meas.AutoRange, err = res.Resolve(TableAutoRange, u16At(data, 8)); err != nil {
		return nil, err
	}
	if meas.Unit, err = res.Resolve(TableUnit, u16At(data, 10)); err != nil {
		return nil, err
	}
	if meas.Bolt, err = res.Resolve(TableBolt, u16At(data, 22)); err != nil {
		return nil, err
	}
	if meas.Mode, err = res.Resolve(TableMode, u16At(data, 32)); err != nil {
		return nil, err
	}

	meas.Readings = make([]Reading, 0, count)
	for i := 0; i < count; i++ {
		start := SavedMeasurementHeaderSize + i*ReadingSize
		r, err := ParseReadingBinary(data[start:start+ReadingSize], res)
		if err != nil {
			return nil, err
		}
		meas.Readings = append(meas.Readings, r)
	}

	return meas, nil
}
