package meter

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/emackay/go-fluke289/protocol"
	"github.com/emackay/go-fluke289/vocab"
)

// Transport is the byte-level boundary to the instrument. The surrounding
// session owns opening and closing it; Meter only writes commands and reads
// complete replies.
//
// ReadAll returns everything the device sends in reply to one command,
// bounded by the transport's read timeout. A timeout with no data returns
// an empty slice and no error; the frame codec reports that as an invalid
// response.
type Transport interface {
	Write(p []byte) (n int, err error)
	ReadAll() ([]byte, error)
}

// Meter drives one multimeter session over an exclusive Transport.
// Methods are safe for concurrent use; exchanges are serialized internally.
type Meter struct {
	transport Transport
	config    Config

	// mu guards one full exchange: write, settle, read
	mu sync.Mutex
}

// New creates a Meter over the given transport.
//
// Example:
//
//	port, _ := serialport.Open("/dev/ttyUSB0")
//	m := meter.New(port,
//	    meter.WithLogger(log),
//	    meter.WithCachePath("fluke289-vocab.json"),
//	)
func New(transport Transport, opts ...Option) *Meter {
	if transport == nil {
		panic("transport cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Meter{transport: transport, config: cfg}
}

// Vocabulary returns the session's vocabulary store.
func (m *Meter) Vocabulary() *vocab.Store {
	return m.config.Vocabulary
}

// Command sends cmd and returns the decoded response payload.
// Most callers want one of the typed methods instead.
func (m *Meter) Command(ctx context.Context, cmd string) ([]byte, error) {
	return m.exchange(ctx, cmd, 0)
}

// Query sends cmd and returns the response payload as a string.
func (m *Meter) Query(ctx context.Context, cmd string) (string, error) {
	payload, err := m.exchange(ctx, cmd, 0)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

// exchange performs one full request/response round trip: acquire the
// transport, write the encoded command, optionally wait for the device to
// settle, read the complete reply, and decode the frame. The transport is
// released on every exit path. No retries happen here or anywhere below.
func (m *Meter) exchange(ctx context.Context, cmd string, settle time.Duration) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log := m.config.Logger.WithField("cmd", strings.TrimRight(cmd, "\r"))

	if _, err := m.transport.Write(protocol.EncodeCommand(cmd)); err != nil {
		log.WithError(err).Error("write failed")
		return nil, &TransportError{Op: "write", Err: err}
	}

	// Some commands need device-side processing time before any reply
	// bytes exist (capturing a screenshot, for instance). This is a fixed
	// wait specific to the command, not a poll.
	if settle > 0 {
		select {
		case <-time.After(settle):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	raw, err := m.transport.ReadAll()
	if err != nil {
		log.WithError(err).Error("read failed")
		return nil, &TransportError{Op: "read", Err: err}
	}

	frame, err := protocol.DecodeResponse(raw)
	if err != nil {
		log.WithError(err).Debug("exchange rejected")
		return nil, err
	}

	log.WithField("bytes", len(frame.Payload)).Trace("exchange ok")
	return frame.Payload, nil
}
