package meter

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Property reads a scalar meter property (QMP).
func (m *Meter) Property(ctx context.Context, name string) (string, error) {
	return m.Query(ctx, "QMP "+name)
}

// SetProperty writes a scalar meter property (MP) after validating value
// against the property's vocabulary. An unaccepted value is rejected
// locally; nothing is sent to the device.
func (m *Meter) SetProperty(ctx context.Context, name, value string) error {
	if err := m.config.Vocabulary.Validate(name, value); err != nil {
		return err
	}
	_, err := m.Command(ctx, fmt.Sprintf("MP %s, %s", name, value))
	return err
}

// QuotedProperty reads a free-text meter property (QMPQ), such as the
// owner information shown on the device info screen.
func (m *Meter) QuotedProperty(ctx context.Context, name string) (string, error) {
	return m.Query(ctx, "QMPQ "+name)
}

// SetQuotedProperty writes a free-text meter property (MPQ).
// Free-text properties have no vocabulary and are not validated.
func (m *Meter) SetQuotedProperty(ctx context.Context, name, value string) error {
	_, err := m.Command(ctx, fmt.Sprintf("MPQ %s, '%s'", name, value))
	return err
}

// intProperty reads a property and parses it as an integer.
func (m *Meter) intProperty(ctx context.Context, name string) (int, error) {
	reply, err := m.Property(ctx, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(reply))
	if err != nil {
		return 0, fmt.Errorf("property %s: %w", name, err)
	}
	return v, nil
}

// Beeper returns the beeper state, "ON" or "OFF".
func (m *Meter) Beeper(ctx context.Context) (string, error) {
	return m.Property(ctx, "BEEPER")
}

// SetBeeper enables or disables the beeper ("ON" or "OFF").
func (m *Meter) SetBeeper(ctx context.Context, state string) error {
	return m.SetProperty(ctx, "BEEPER", state)
}

// Digits returns the number of display digits (4 or 5).
func (m *Meter) Digits(ctx context.Context) (int, error) {
	return m.intProperty(ctx, "DIGITS")
}

// SetDigits sets the number of display digits (4 or 5).
func (m *Meter) SetDigits(ctx context.Context, digits int) error {
	return m.SetProperty(ctx, "DIGITS", strconv.Itoa(digits))
}

// Language returns the user-interface language.
func (m *Meter) Language(ctx context.Context) (string, error) {
	return m.Property(ctx, "LANG")
}

// SetLanguage sets the user-interface language (ENGLISH, GERMAN, FRENCH,
// SPANISH, ITALIAN, JAPANESE, or CHINESE).
func (m *Meter) SetLanguage(ctx context.Context, lang string) error {
	return m.SetProperty(ctx, "LANG", lang)
}

// TemperatureUnit returns the temperature unit, "C" or "F".
func (m *Meter) TemperatureUnit(ctx context.Context) (string, error) {
	return m.Property(ctx, "TEMPUNIT")
}

// SetTemperatureUnit sets the temperature unit ("C" or "F").
func (m *Meter) SetTemperatureUnit(ctx context.Context, unit string) error {
	return m.SetProperty(ctx, "TEMPUNIT", unit)
}

// ContinuityBeep returns whether the continuity tester beeps, "ON" or "OFF".
func (m *Meter) ContinuityBeep(ctx context.Context) (string, error) {
	return m.Property(ctx, "CONTBEEP")
}

// SetContinuityBeep enables or disables the continuity tester beep.
func (m *Meter) SetContinuityBeep(ctx context.Context, state string) error {
	return m.SetProperty(ctx, "CONTBEEP", state)
}

// ContinuityBeepCondition returns when the continuity tester beeps:
// "SHORT" (on continuity) or "OPEN" (on an open circuit).
func (m *Meter) ContinuityBeepCondition(ctx context.Context) (string, error) {
	return m.Property(ctx, "CONTBEEPOS")
}

// SetContinuityBeepCondition sets when the continuity tester beeps
// ("SHORT" or "OPEN").
func (m *Meter) SetContinuityBeepCondition(ctx context.Context, cond string) error {
	return m.SetProperty(ctx, "CONTBEEPOS", cond)
}

// DateFormat returns the date format, "MM_DD" or "DD_MM".
func (m *Meter) DateFormat(ctx context.Context) (string, error) {
	return m.Property(ctx, "DATEFMT")
}

// SetDateFormat sets the date format ("MM_DD" or "DD_MM").
func (m *Meter) SetDateFormat(ctx context.Context, format string) error {
	return m.SetProperty(ctx, "DATEFMT", format)
}

// TimeFormat returns the clock format, 12 or 24.
func (m *Meter) TimeFormat(ctx context.Context) (int, error) {
	return m.intProperty(ctx, "TIMEFMT")
}

// SetTimeFormat sets the clock format (12 or 24).
func (m *Meter) SetTimeFormat(ctx context.Context, format int) error {
	return m.SetProperty(ctx, "TIMEFMT", strconv.Itoa(format))
}

// NumericFormat returns the decimal separator setting, "POINT" or "COMMA".
func (m *Meter) NumericFormat(ctx context.Context) (string, error) {
	return m.Property(ctx, "NUMFMT")
}

// SetNumericFormat sets the decimal separator ("POINT" or "COMMA").
func (m *Meter) SetNumericFormat(ctx context.Context, format string) error {
	return m.SetProperty(ctx, "NUMFMT", format)
}

// ACSmoothing returns the AC smoothing state, "ON" or "OFF".
func (m *Meter) ACSmoothing(ctx context.Context) (string, error) {
	return m.Property(ctx, "ACSMOOTH")
}

// SetACSmoothing enables or disables AC smoothing.
func (m *Meter) SetACSmoothing(ctx context.Context, state string) error {
	return m.SetProperty(ctx, "ACSMOOTH", state)
}

// DCPolarity returns the DC polarity setting, "POS" or "NEG".
func (m *Meter) DCPolarity(ctx context.Context) (string, error) {
	return m.Property(ctx, "DCPOL")
}

// SetDCPolarity sets the DC polarity ("POS" or "NEG").
func (m *Meter) SetDCPolarity(ctx context.Context, polarity string) error {
	return m.SetProperty(ctx, "DCPOL", polarity)
}

// PulseWidthPolarity returns the pulse-width polarity, "POS" or "NEG".
func (m *Meter) PulseWidthPolarity(ctx context.Context) (string, error) {
	return m.Property(ctx, "PWPOL")
}

// SetPulseWidthPolarity sets the pulse-width polarity ("POS" or "NEG").
func (m *Meter) SetPulseWidthPolarity(ctx context.Context, polarity string) error {
	return m.SetProperty(ctx, "PWPOL", polarity)
}

// HertzEdge returns the frequency counter trigger edge, "RISING" or
// "FALLING".
func (m *Meter) HertzEdge(ctx context.Context) (string, error) {
	return m.Property(ctx, "HZEDGE")
}

// SetHertzEdge sets the frequency counter trigger edge.
func (m *Meter) SetHertzEdge(ctx context.Context, edge string) error {
	return m.SetProperty(ctx, "HZEDGE", edge)
}

// RecordingEventThreshold returns the recording event threshold in percent.
func (m *Meter) RecordingEventThreshold(ctx context.Context) (int, error) {
	return m.intProperty(ctx, "RECEVENTTH")
}

// SetRecordingEventThreshold sets the recording event threshold.
func (m *Meter) SetRecordingEventThreshold(ctx context.Context, percent int) error {
	return m.SetProperty(ctx, "RECEVENTTH", strconv.Itoa(percent))
}

// DBMReference returns the dBm reference impedance in ohms.
func (m *Meter) DBMReference(ctx context.Context) (int, error) {
	return m.intProperty(ctx, "DBMREF")
}

// SetDBMReference sets the dBm reference impedance.
func (m *Meter) SetDBMReference(ctx context.Context, ohms int) error {
	return m.SetProperty(ctx, "DBMREF", strconv.Itoa(ohms))
}

// CustomDBMReference returns the custom dBm reference impedance in ohms.
func (m *Meter) CustomDBMReference(ctx context.Context) (int, error) {
	return m.intProperty(ctx, "CUSDBM")
}

// SetCustomDBMReference sets the custom dBm reference impedance.
// The device accepts 1 through 1999 ohms.
func (m *Meter) SetCustomDBMReference(ctx context.Context, ohms int) error {
	if ohms < 1 || ohms > 1999 {
		return fmt.Errorf("custom dBm reference %d out of range: accepted values are 1-1999", ohms)
	}
	_, err := m.Command(ctx, fmt.Sprintf("MP CUSDBM, %d", ohms))
	return err
}

// LCDContrast returns the LCD contrast level, 0 through 15.
func (m *Meter) LCDContrast(ctx context.Context) (int, error) {
	return m.intProperty(ctx, "LCDCONT")
}

// SetLCDContrast sets the LCD contrast level (0 through 15).
func (m *Meter) SetLCDContrast(ctx context.Context, level int) error {
	if level < 0 || level > 15 {
		return fmt.Errorf("lcd contrast %d out of range: accepted values are 0-15", level)
	}
	_, err := m.Command(ctx, fmt.Sprintf("MP LCDCONT, %d", level))
	return err
}

// AutoBacklightTimeout returns the backlight timeout in seconds;
// 0 means the backlight never times out.
func (m *Meter) AutoBacklightTimeout(ctx context.Context) (int, error) {
	return m.intProperty(ctx, "ABLTO")
}

// SetAutoBacklightTimeout sets the backlight timeout in seconds.
func (m *Meter) SetAutoBacklightTimeout(ctx context.Context, seconds int) error {
	return m.SetProperty(ctx, "ABLTO", strconv.Itoa(seconds))
}

// AutoPowerOffTimeout returns the auto power-off timeout in seconds;
// 0 means the meter never powers itself off.
func (m *Meter) AutoPowerOffTimeout(ctx context.Context) (int, error) {
	return m.intProperty(ctx, "APOFFTO")
}

// SetAutoPowerOffTimeout sets the auto power-off timeout in seconds.
func (m *Meter) SetAutoPowerOffTimeout(ctx context.Context, seconds int) error {
	return m.SetProperty(ctx, "APOFFTO", strconv.Itoa(seconds))
}

// TemperatureOffset returns the temperature probe offset.
func (m *Meter) TemperatureOffset(ctx context.Context) (float64, error) {
	reply, err := m.Property(ctx, "TEMPOS")
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(reply), 64)
	if err != nil {
		return 0, fmt.Errorf("property TEMPOS: %w", err)
	}
	return v, nil
}

// SetTemperatureOffset sets the temperature probe offset.
// The device accepts -100.0 through 100.0.
func (m *Meter) SetTemperatureOffset(ctx context.Context, offset float64) error {
	if offset < -100.0 || offset > 100.0 {
		return fmt.Errorf("temperature offset %.1f out of range: accepted values are -100.0 to 100.0", offset)
	}
	_, err := m.Command(ctx, fmt.Sprintf("MP TEMPOS, %.1f", offset))
	return err
}

// CompanyName returns the company name on the device info screen.
func (m *Meter) CompanyName(ctx context.Context) (string, error) {
	return m.QuotedProperty(ctx, "COMPANY")
}

// SetCompanyName sets the company name on the device info screen.
func (m *Meter) SetCompanyName(ctx context.Context, name string) error {
	return m.SetQuotedProperty(ctx, "COMPANY", name)
}

// OperatorName returns the operator name on the device info screen.
func (m *Meter) OperatorName(ctx context.Context) (string, error) {
	return m.QuotedProperty(ctx, "OPERATOR")
}

// SetOperatorName sets the operator name on the device info screen.
func (m *Meter) SetOperatorName(ctx context.Context, name string) error {
	return m.SetQuotedProperty(ctx, "OPERATOR", name)
}

// ContactInfo returns the contact information on the device info screen.
func (m *Meter) ContactInfo(ctx context.Context) (string, error) {
	return m.QuotedProperty(ctx, "CONTACT")
}

// SetContactInfo sets the contact information on the device info screen.
func (m *Meter) SetContactInfo(ctx context.Context, info string) error {
	return m.SetQuotedProperty(ctx, "CONTACT", info)
}

// SiteInfo returns the site information on the device info screen.
func (m *Meter) SiteInfo(ctx context.Context) (string, error) {
	return m.QuotedProperty(ctx, "SITE")
}

// SetSiteInfo sets the site information on the device info screen.
func (m *Meter) SetSiteInfo(ctx context.Context, site string) error {
	return m.SetQuotedProperty(ctx, "SITE", site)
}
