package meter

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/emackay/go-fluke289/protocol"
)

// Identity is the decoded ID response.
type Identity struct {
	// Model is the instrument model name, e.g. "FLUKE 289"
	Model string

	// SoftwareVersion is the firmware version string
	SoftwareVersion string

	// SerialNumber is the instrument serial number
	SerialNumber int
}

// Identify queries the instrument identity.
func (m *Meter) Identify(ctx context.Context) (Identity, error) {
	reply, err := m.Query(ctx, "ID")
	if err != nil {
		return Identity{}, err
	}

	fields := strings.Split(reply, ",")
	if len(fields) < 3 {
		return Identity{}, fmt.Errorf("identity: expected 3 fields, got %d", len(fields))
	}
	serial, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return Identity{}, fmt.Errorf("identity serial number: %w", err)
	}

	return Identity{
		Model:           fields[0],
		SoftwareVersion: fields[1],
		SerialNumber:    serial,
	}, nil
}

// Clock returns the instrument's current clock time.
func (m *Meter) Clock(ctx context.Context) (time.Time, error) {
	reply, err := m.Query(ctx, "QMP CLOCK")
	if err != nil {
		return time.Time{}, err
	}
	sec, err := strconv.ParseInt(strings.TrimSpace(reply), 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("clock: %w", err)
	}
	return time.Unix(sec, 0).UTC(), nil
}

// PrimaryMeasurement returns the current primary display value (QM).
func (m *Meter) PrimaryMeasurement(ctx context.Context) (protocol.PrimaryMeasurement, error) {
	payload, err := m.Command(ctx, "QM")
	if err != nil {
		return protocol.PrimaryMeasurement{}, err
	}
	return protocol.ParsePrimaryMeasurement(payload)
}

// Display queries the displayed data in ASCII form (QDDA).
func (m *Meter) Display(ctx context.Context) (*protocol.DisplayData, error) {
	payload, err := m.Command(ctx, "QDDA")
	if err != nil {
		return nil, err
	}
	return protocol.ParseDisplayASCII(payload)
}

// DisplaySnapshot queries the displayed data in binary form (QDDB).
// Enum fields are resolved through the session vocabulary, which must be
// populated first (see EnsureVocabulary).
func (m *Meter) DisplaySnapshot(ctx context.Context) (*protocol.DisplaySnapshot, error) {
	payload, err := m.Command(ctx, "QDDB")
	if err != nil {
		return nil, err
	}
	return protocol.ParseDisplaySnapshot(payload, m.config.Vocabulary)
}

// RecordingSummary queries the summary of the recording in slot n (QRSI).
// Slots run from 0 to the recording count reported by SavedItemCounts,
// regardless of the identifying numbers shown on the meter display.
func (m *Meter) RecordingSummary(ctx context.Context, n int) (*protocol.RecordingSummary, error) {
	payload, err := m.Command(ctx, fmt.Sprintf("QRSI %02d", n))
	if err != nil {
		return nil, err
	}
	return protocol.ParseRecordingSummary(payload, m.config.Vocabulary)
}

// SavedMeasurement queries the saved measurement in slot n (QSMR).
func (m *Meter) SavedMeasurement(ctx context.Context, n int) (*protocol.SavedMeasurement, error) {
	payload, err := m.Command(ctx, fmt.Sprintf("QSMR %d", n))
	if err != nil {
		return nil, err
	}
	return protocol.ParseSavedMeasurement(payload, m.config.Vocabulary)
}

// SavedItemCounts queries how many items of each kind are stored (QSLS).
func (m *Meter) SavedItemCounts(ctx context.Context) (protocol.SavedItemCounts, error) {
	payload, err := m.Command(ctx, "QSLS")
	if err != nil {
		return protocol.SavedItemCounts{}, err
	}
	return protocol.ParseSavedItemCounts(payload)
}

// saveNameSlots is the number of QSAVNAME slots the instrument exposes.
const saveNameSlots = 8

// SaveNames queries all eight save-name slots (QSAVNAME 0..7).
func (m *Meter) SaveNames(ctx context.Context) ([]string, error) {
	names := make([]string, 0, saveNameSlots)
	for slot := 0; slot < saveNameSlots; slot++ {
		name, err := m.Query(ctx, fmt.Sprintf("QSAVNAME %d", slot))
		if err != nil {
			return nil, fmt.Errorf("save name slot %d: %w", slot, err)
		}
		names = append(names, name)
	}
	return names, nil
}

// Buttons lists the front-panel buttons PressButton accepts.
var Buttons = []string{
	"ONOFF", "MINMAX", "UP", "LEFT", "RIGHT", "DOWN", "INFO", "F1",
	"F2", "F3", "F4", "RANGE", "BACKLIGHT", "HOLD",
}

// PressButton remotely presses a front-panel button.
func (m *Meter) PressButton(ctx context.Context, button string) error {
	valid := false
	for _, b := range Buttons {
		if b == button {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid button %q: accepted buttons are %s",
			button, strings.Join(Buttons, ", "))
	}
	_, err := m.Command(ctx, "PRESS "+button)
	return err
}

// DefaultSetup restores all meter settings to their defaults (DS).
func (m *Meter) DefaultSetup(ctx context.Context) error {
	_, err := m.Command(ctx, "DS")
	return err
}

// ResetInstrument resets the meter (RI).
func (m *Meter) ResetInstrument(ctx context.Context) error {
	_, err := m.Command(ctx, "RI")
	return err
}

// ResetProperties resets every meter property (RMP).
func (m *Meter) ResetProperties(ctx context.Context) error {
	_, err := m.Command(ctx, "RMP")
	return err
}
