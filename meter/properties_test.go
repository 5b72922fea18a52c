package meter

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/emackay/go-fluke289/vocab"
)

func propertyStore() *vocab.Store {
	s := vocab.NewStore()
	s.Put(vocab.NewTable("BEEPER", map[uint16]string{0: "OFF", 1: "ON"}))
	s.Put(vocab.NewTable("DIGITS", map[uint16]string{0: "4", 1: "5"}))
	s.Put(vocab.NewTable("LANG", map[uint16]string{0: "ENGLISH", 1: "GERMAN"}))
	return s
}

func TestProperty(t *testing.T) {
	device := newMockTransport()
	device.ok("OFF")
	m := New(device)

	state, err := m.Beeper(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state != "OFF" {
		t.Errorf("state = %q, want %q", state, "OFF")
	}
	if device.writes[0] != "QMP BEEPER\r" {
		t.Errorf("command = %q, want %q", device.writes[0], "QMP BEEPER\r")
	}
}

func TestSetProperty(t *testing.T) {
	device := newMockTransport()
	device.ok("")
	m := New(device, WithVocabulary(propertyStore()))

	if err := m.SetBeeper(context.Background(), "ON"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if device.writes[0] != "MP BEEPER, ON\r" {
		t.Errorf("command = %q, want %q", device.writes[0], "MP BEEPER, ON\r")
	}
}

func TestSetPropertyRejectsInvalidValue(t *testing.T) {
	device := newMockTransport()
	m := New(device, WithVocabulary(propertyStore()))

	err := m.SetBeeper(context.Background(), "MAYBE")

	var valueErr *vocab.InvalidValueError
	if !errors.As(err, &valueErr) {
		t.Fatalf("error = %v, want InvalidValueError", err)
	}
	// The rejected write never reaches the device.
	if len(device.writes) != 0 {
		t.Errorf("wrote %q for invalid value", device.writes)
	}
}

func TestSetPropertyUnknownTable(t *testing.T) {
	device := newMockTransport()
	m := New(device) // empty vocabulary

	var tableErr *vocab.UnknownTableError
	err := m.SetBeeper(context.Background(), "ON")
	if !errors.As(err, &tableErr) {
		t.Fatalf("error = %v, want UnknownTableError", err)
	}
	if len(device.writes) != 0 {
		t.Errorf("wrote %q without vocabulary", device.writes)
	}
}

func TestIntProperties(t *testing.T) {
	tests := []struct {
		name  string
		call  func(*Meter, context.Context) (int, error)
		reply string
		cmd   string
		want  int
	}{
		{
			name:  "digits",
			call:  (*Meter).Digits,
			reply: "5",
			cmd:   "QMP DIGITS\r",
			want:  5,
		},
		{
			name:  "time format",
			call:  (*Meter).TimeFormat,
			reply: "24",
			cmd:   "QMP TIMEFMT\r",
			want:  24,
		},
		{
			name:  "backlight timeout",
			call:  (*Meter).AutoBacklightTimeout,
			reply: "1800",
			cmd:   "QMP ABLTO\r",
			want:  1800,
		},
		{
			name:  "dbm reference",
			call:  (*Meter).DBMReference,
			reply: "600",
			cmd:   "QMP DBMREF\r",
			want:  600,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			device := newMockTransport()
			device.ok(tt.reply)
			m := New(device)

			got, err := tt.call(m, context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("value = %d, want %d", got, tt.want)
			}
			if device.writes[0] != tt.cmd {
				t.Errorf("command = %q, want %q", device.writes[0], tt.cmd)
			}
		})
	}
}

func TestIntPropertyBadReply(t *testing.T) {
	device := newMockTransport()
	device.ok("not a number")
	m := New(device)

	if _, err := m.Digits(context.Background()); err == nil {
		t.Error("expected error for non-numeric reply, got nil")
	}
}

func TestSetDigits(t *testing.T) {
	device := newMockTransport()
	device.ok("")
	m := New(device, WithVocabulary(propertyStore()))

	if err := m.SetDigits(context.Background(), 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if device.writes[0] != "MP DIGITS, 5\r" {
		t.Errorf("command = %q, want %q", device.writes[0], "MP DIGITS, 5\r")
	}
}

func TestSetLanguage(t *testing.T) {
	device := newMockTransport()
	device.ok("")
	m := New(device, WithVocabulary(propertyStore()))

	if err := m.SetLanguage(context.Background(), "GERMAN"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if device.writes[0] != "MP LANG, GERMAN\r" {
		t.Errorf("command = %q, want %q", device.writes[0], "MP LANG, GERMAN\r")
	}

	if err := m.SetLanguage(context.Background(), "KLINGON"); err == nil {
		t.Error("expected error for unknown language, got nil")
	}
}

func TestSetCustomDBMReference(t *testing.T) {
	device := newMockTransport()
	device.ok("")
	m := New(device)

	if err := m.SetCustomDBMReference(context.Background(), 600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if device.writes[0] != "MP CUSDBM, 600\r" {
		t.Errorf("command = %q, want %q", device.writes[0], "MP CUSDBM, 600\r")
	}

	for _, ohms := range []int{0, 2000, -1} {
		if err := m.SetCustomDBMReference(context.Background(), ohms); err == nil {
			t.Errorf("expected error for %d ohms, got nil", ohms)
		}
	}
	if len(device.writes) != 1 {
		t.Errorf("out-of-range values reached the device: %q", device.writes)
	}
}

func TestSetLCDContrast(t *testing.T) {
	device := newMockTransport()
	device.ok("")
	m := New(device)

	if err := m.SetLCDContrast(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if device.writes[0] != "MP LCDCONT, 7\r" {
		t.Errorf("command = %q, want %q", device.writes[0], "MP LCDCONT, 7\r")
	}

	for _, level := range []int{-1, 16} {
		if err := m.SetLCDContrast(context.Background(), level); err == nil {
			t.Errorf("expected error for level %d, got nil", level)
		}
	}
}

func TestTemperatureOffset(t *testing.T) {
	device := newMockTransport()
	device.ok("-2.5")
	m := New(device)

	offset, err := m.TemperatureOffset(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if offset != -2.5 {
		t.Errorf("offset = %v, want -2.5", offset)
	}
}

func TestSetTemperatureOffset(t *testing.T) {
	device := newMockTransport()
	device.ok("")
	m := New(device)

	if err := m.SetTemperatureOffset(context.Background(), 1.5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if device.writes[0] != "MP TEMPOS, 1.5\r" {
		t.Errorf("command = %q, want %q", device.writes[0], "MP TEMPOS, 1.5\r")
	}

	for _, offset := range []float64{-100.1, 100.1} {
		if err := m.SetTemperatureOffset(context.Background(), offset); err == nil {
			t.Errorf("expected error for offset %v, got nil", offset)
		}
	}
}

func TestQuotedProperties(t *testing.T) {
	device := newMockTransport()
	device.ok("ACME Test Labs")
	m := New(device)

	company, err := m.CompanyName(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if company != "ACME Test Labs" {
		t.Errorf("company = %q", company)
	}
	if device.writes[0] != "QMPQ COMPANY\r" {
		t.Errorf("command = %q, want %q", device.writes[0], "QMPQ COMPANY\r")
	}
}

func TestSetQuotedProperty(t *testing.T) {
	device := newMockTransport()
	device.ok("")
	m := New(device)

	if err := m.SetOperatorName(context.Background(), "R. Maxwell"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Free-text values travel single-quoted and unvalidated.
	if device.writes[0] != "MPQ OPERATOR, 'R. Maxwell'\r" {
		t.Errorf("command = %q", device.writes[0])
	}
}

func TestPropertyCommandNames(t *testing.T) {
	// Each getter issues the QMP query for its own property name.
	tests := []struct {
		name string
		call func(*Meter, context.Context) (string, error)
		cmd  string
	}{
		{name: "temperature unit", call: (*Meter).TemperatureUnit, cmd: "QMP TEMPUNIT\r"},
		{name: "continuity beep", call: (*Meter).ContinuityBeep, cmd: "QMP CONTBEEP\r"},
		{name: "continuity beep condition", call: (*Meter).ContinuityBeepCondition, cmd: "QMP CONTBEEPOS\r"},
		{name: "date format", call: (*Meter).DateFormat, cmd: "QMP DATEFMT\r"},
		{name: "numeric format", call: (*Meter).NumericFormat, cmd: "QMP NUMFMT\r"},
		{name: "ac smoothing", call: (*Meter).ACSmoothing, cmd: "QMP ACSMOOTH\r"},
		{name: "dc polarity", call: (*Meter).DCPolarity, cmd: "QMP DCPOL\r"},
		{name: "pulse width polarity", call: (*Meter).PulseWidthPolarity, cmd: "QMP PWPOL\r"},
		{name: "hertz edge", call: (*Meter).HertzEdge, cmd: "QMP HZEDGE\r"},
		{name: "language", call: (*Meter).Language, cmd: "QMP LANG\r"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			device := newMockTransport()
			device.ok("X")
			m := New(device)

			if _, err := tt.call(m, context.Background()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if device.writes[0] != tt.cmd {
				t.Errorf("command = %q, want %q", device.writes[0], tt.cmd)
			}
		})
	}
}

func TestInvalidValueListsAccepted(t *testing.T) {
	device := newMockTransport()
	m := New(device, WithVocabulary(propertyStore()))

	err := m.SetBeeper(context.Background(), "LOUD")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "OFF, ON") {
		t.Errorf("error = %v, want accepted values listed", err)
	}
}
