package protocol

import (
	"errors"
	"math"
	"testing"
)

func TestReadUint16(t *testing.T) {
	tests := []struct {
		name    string
		buf     []byte
		offset  int
		want    uint16
		wantErr bool
	}{
		{
			name:   "low byte first",
			buf:    []byte{0x34, 0x12},
			offset: 0,
			want:   0x1234,
		},
		{
			name:   "mid buffer",
			buf:    []byte{0xFF, 0x01, 0x00, 0xFF},
			offset: 1,
			want:   0x0001,
		},
		{
			name:   "max value",
			buf:    []byte{0xFF, 0xFF},
			offset: 0,
			want:   0xFFFF,
		},
		{
			name:    "offset past end",
			buf:     []byte{0x00, 0x00},
			offset:  1,
			wantErr: true,
		},
		{
			name:    "empty buffer",
			buf:     nil,
			offset:  0,
			wantErr: true,
		},
		{
			name:    "negative offset",
			buf:     []byte{0x00, 0x00},
			offset:  -1,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadUint16(tt.buf, tt.offset)

			if tt.wantErr {
				var rangeErr *OutOfRangeError
				if !errors.As(err, &rangeErr) {
					t.Fatalf("error = %v, want OutOfRangeError", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadUint16 = 0x%04X, want 0x%04X", got, tt.want)
			}
		})
	}
}

func TestReadInt16(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want int16
	}{
		{name: "positive", buf: []byte{0x03, 0x00}, want: 3},
		{name: "negative", buf: []byte{0xFD, 0xFF}, want: -3},
		{name: "min value", buf: []byte{0x00, 0x80}, want: -32768},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadInt16(tt.buf, 0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadInt16 = %d, want %d", got, tt.want)
			}
		})
	}

	if _, err := ReadInt16([]byte{0x00}, 0); err == nil {
		t.Error("expected error for short buffer, got nil")
	}
}

func TestReadDouble(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want float64
	}{
		{
			// 1.0 is 0x3FF0000000000000: the high half arrives first,
			// each half low byte first.
			name: "one",
			buf:  []byte{0x00, 0x00, 0xF0, 0x3F, 0x00, 0x00, 0x00, 0x00},
			want: 1.0,
		},
		{
			name: "zero",
			buf:  make([]byte, 8),
			want: 0.0,
		},
		{
			name: "negative half",
			buf:  []byte{0x00, 0x00, 0xE0, 0xBF, 0x00, 0x00, 0x00, 0x00},
			want: -0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadDouble(tt.buf, 0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadDouble = %v, want %v", got, tt.want)
			}
		})
	}

	var rangeErr *OutOfRangeError
	if _, err := ReadDouble(make([]byte, 8), 1); !errors.As(err, &rangeErr) {
		t.Fatalf("error = %v, want OutOfRangeError", err)
	}
	if rangeErr.Width != 8 || rangeErr.Offset != 1 || rangeErr.Length != 8 {
		t.Errorf("OutOfRangeError = %+v, want offset 1 width 8 length 8", rangeErr)
	}
}

func TestReadDoubleRounding(t *testing.T) {
	buf := AppendDouble(nil, 1.23456789012)
	got, err := ReadDouble(buf, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1.23456789 {
		t.Errorf("ReadDouble = %v, want 1.23456789", got)
	}
}

func TestAppendReadRoundTrip(t *testing.T) {
	values := []float64{0, 1.5, -230.25, 12345.5, 4096}
	for _, v := range values {
		buf := AppendDouble(nil, v)
		if len(buf) != 8 {
			t.Fatalf("AppendDouble produced %d bytes, want 8", len(buf))
		}
		got, err := ReadDouble(buf, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != v {
			t.Errorf("round trip of %v = %v", v, got)
		}
	}

	buf := AppendUint16(nil, 0xBEEF)
	got, err := ReadUint16(buf, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0xBEEF {
		t.Errorf("round trip = 0x%04X, want 0xBEEF", got)
	}
}

func TestRoundPlaces(t *testing.T) {
	if got := roundPlaces(math.NaN(), 8); !math.IsNaN(got) {
		t.Errorf("roundPlaces(NaN) = %v, want NaN", got)
	}
	if got := roundPlaces(math.Inf(1), 8); !math.IsInf(got, 1) {
		t.Errorf("roundPlaces(+Inf) = %v, want +Inf", got)
	}
	if got := roundPlaces(math.MaxFloat64, 8); got != math.MaxFloat64 {
		t.Errorf("roundPlaces(MaxFloat64) = %v, want unchanged", got)
	}
}
