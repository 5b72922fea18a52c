package protocol

import (
	"encoding/binary"
	"math"
)

// ReadUint16 returns the unsigned 16-bit value stored at offset.
// The wire stores the low byte first.
func ReadUint16(buf []byte, offset int) (uint16, error) {
	if offset < 0 || offset+2 > len(buf) {
		return 0, &OutOfRangeError{Offset: offset, Width: 2, Length: len(buf)}
	}
	return binary.LittleEndian.Uint16(buf[offset:]), nil
}

// ReadInt16 returns the value at offset reinterpreted as two's complement.
func ReadInt16(buf []byte, offset int) (int16, error) {
	v, err := ReadUint16(buf, offset)
	return int16(v), err
}

// ReadDouble returns the IEEE-754 double stored at offset.
//
// The wire layout is not a plain little-endian double: the 8 bytes are two
// independent 4-byte halves, each stored low byte first, with the half
// holding the high 32 bits of the double first. The result is rounded to 8
// decimal places to suppress float noise between platforms.
func ReadDouble(buf []byte, offset int) (float64, error) {
	if offset < 0 || offset+8 > len(buf) {
		return 0, &OutOfRangeError{Offset: offset, Width: 8, Length: len(buf)}
	}
	hi := binary.LittleEndian.Uint32(buf[offset:])
	lo := binary.LittleEndian.Uint32(buf[offset+4:])
	return roundPlaces(math.Float64frombits(uint64(hi)<<32|uint64(lo)), 8), nil
}

// AppendUint16 appends v in the protocol's 16-bit wire order.
func AppendUint16(dst []byte, v uint16) []byte {
	return append(dst, byte(v), byte(v>>8))
}

// AppendDouble appends v in the protocol's dual-half double wire order.
func AppendDouble(dst []byte, v float64) []byte {
	bits := math.Float64bits(v)
	dst = binary.LittleEndian.AppendUint32(dst, uint32(bits>>32))
	return binary.LittleEndian.AppendUint32(dst, uint32(bits))
}

// roundPlaces rounds v to the given number of decimal places. NaN,
// infinities, and magnitudes too large for the shift are returned unchanged.
func roundPlaces(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	shift := math.Pow(10, float64(places))
	r := math.Round(v*shift) / shift
	if math.IsInf(r, 0) {
		return v
	}
	return r
}
