// Package serialport implements the meter.Transport interface over a real
// serial port using go.bug.st/serial. The Fluke 28x IR-to-USB adapter
// presents itself as an ordinary USB serial device at 115200 8N1.
package serialport

import (
	"fmt"
	"time"

	"go.bug.st/serial"
)

// Defaults matching the IR-to-USB adapter.
const (
	DefaultBaudRate    = 115200
	DefaultReadTimeout = 500 * time.Millisecond
)

// Config holds the port configuration.
type Config struct {
	// BaudRate is the serial line speed
	BaudRate int

	// ReadTimeout bounds how long ReadAll waits for further bytes
	ReadTimeout time.Duration
}

// Option is a functional option for configuring the port.
type Option func(*Config)

// WithBaudRate overrides the default baud rate.
func WithBaudRate(baud int) Option {
	return func(c *Config) {
		if baud > 0 {
			c.BaudRate = baud
		}
	}
}

// WithReadTimeout overrides the default read timeout.
func WithReadTimeout(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.ReadTimeout = d
		}
	}
}

// Port is an open serial connection to the instrument.
// It satisfies meter.Transport.
type Port struct {
	port serial.Port
}

// Open opens the serial device at the given path.
//
// Example:
//
//	port, err := serialport.Open("/dev/ttyUSB0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
func Open(device string, opts ...Option) (*Port, error) {
	cfg := Config{BaudRate: DefaultBaudRate, ReadTimeout: DefaultReadTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}

	mode := &serial.Mode{
		BaudRate: cfg.BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	p, err := serial.Open(device, mode)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", device, err)
	}
	if err := p.SetReadTimeout(cfg.ReadTimeout); err != nil {
		_ = p.Close()
		return nil, fmt.Errorf("set read timeout on %s: %w", device, err)
	}

	return &Port{port: p}, nil
}

// Write sends bytes to the instrument.
func (p *Port) Write(b []byte) (int, error) {
	return p.port.Write(b)
}

// ReadAll reads everything the instrument sends in reply to one command.
// It accumulates bytes until a read returns nothing within the configured
// timeout; an empty reply (pure timeout) returns an empty slice and no
// error, which the frame codec reports as an invalid response.
func (p *Port) ReadAll() ([]byte, error) {
	buf := make([]byte, 0, 1024)
	tmp := make([]byte, 256)
	for {
		n, err := p.port.Read(tmp)
		if n > 0 {
			buf = append(buf, tmp[:n]...)
			continue
		}
		if err != nil {
			return buf, err
		}
		// A zero-byte read with no error means the timeout expired.
		return buf, nil
	}
}

// Close closes the underlying serial port.
func (p *Port) Close() error {
	return p.port.Close()
}
