package meter

import (
	"context"
	"errors"
	"testing"

	"github.com/emackay/go-fluke289/protocol"
	"github.com/emackay/go-fluke289/vocab"
)

// mockTransport simulates the instrument end of the serial link: it records
// every command written and hands out canned replies in order.
type mockTransport struct {
	writes   []string
	replies  [][]byte
	idx      int
	writeErr error
	readErr  error
}

func newMockTransport() *mockTransport {
	return &mockTransport{}
}

func (m *mockTransport) Write(p []byte) (int, error) {
	if m.writeErr != nil {
		return 0, m.writeErr
	}
	m.writes = append(m.writes, string(p))
	return len(p), nil
}

func (m *mockTransport) ReadAll() ([]byte, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	if m.idx < len(m.replies) {
		r := m.replies[m.idx]
		m.idx++
		return r, nil
	}
	return nil, nil
}

// reply queues a raw reply exactly as it would come off the wire.
func (m *mockTransport) reply(raw []byte) {
	m.replies = append(m.replies, raw)
}

// ok queues a successful reply carrying the given payload.
func (m *mockTransport) ok(payload string) {
	m.reply([]byte("0\r" + payload + "\r"))
}

// okBinary queues a successful reply carrying a binary payload with the
// marker the instrument prefixes to binary data.
func (m *mockTransport) okBinary(payload []byte) {
	raw := append([]byte("0\r#0"), payload...)
	m.reply(append(raw, '\r'))
}

// testStore returns a vocabulary store preloaded with the tables the binary
// record parsers consult.
func testStore() *vocab.Store {
	s := vocab.NewStore()
	for name, entries := range map[string]map[uint16]string{
		"PRIMFUNCTION": {2: "V_DC", 3: "V_AC"},
		"SECFUNCTION":  {0: "NONE"},
		"AUTORANGE":    {1: "AUTO"},
		"UNIT":         {0: "NONE", 10: "VDC"},
		"BOLT":         {0: "OFF", 1: "ON"},
		"MODE":         {0: "NONE", 4: "HOLD"},
		"READINGID":    {0: "LIVE", 1: "PRIMARY"},
		"STATE":        {1: "NORMAL"},
		"ATTRIBUTE":    {0: "NONE"},
	} {
		s.Put(vocab.NewTable(name, entries))
	}
	return s
}

func TestNewNilTransportPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil transport")
		}
	}()
	New(nil)
}

func TestQueryWritesTerminatedCommand(t *testing.T) {
	device := newMockTransport()
	device.ok("FLUKE 289,V1.00,95061077")
	m := New(device)

	reply, err := m.Query(context.Background(), "ID")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "FLUKE 289,V1.00,95061077" {
		t.Errorf("reply = %q", reply)
	}
	if len(device.writes) != 1 || device.writes[0] != "ID\r" {
		t.Errorf("writes = %q, want [ID\\r]", device.writes)
	}
}

func TestQueryStatusErrors(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantStatus protocol.StatusCode
	}{
		{name: "syntax error", raw: "1\r", wantStatus: protocol.StatusSyntaxError},
		{name: "execution error", raw: "2\r", wantStatus: protocol.StatusExecutionError},
		{name: "no data", raw: "5", wantStatus: protocol.StatusNoData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			device := newMockTransport()
			device.reply([]byte(tt.raw))
			m := New(device)

			_, err := m.Query(context.Background(), "QM")

			var statusErr *protocol.StatusError
			if !errors.As(err, &statusErr) {
				t.Fatalf("error = %v, want StatusError", err)
			}
			if statusErr.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", statusErr.Status, tt.wantStatus)
			}
		})
	}
}

func TestQueryEmptyReply(t *testing.T) {
	// No queued replies: the transport times out and returns nothing.
	m := New(newMockTransport())

	_, err := m.Query(context.Background(), "QM")

	var invalidErr *protocol.InvalidResponseError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("error = %v, want InvalidResponseError", err)
	}
	if !invalidErr.Empty {
		t.Error("Empty = false, want true")
	}
}

func TestTransportWriteError(t *testing.T) {
	cause := errors.New("port closed")
	device := newMockTransport()
	device.writeErr = cause
	m := New(device)

	_, err := m.Query(context.Background(), "ID")

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("error = %v, want TransportError", err)
	}
	if transportErr.Op != "write" {
		t.Errorf("Op = %q, want %q", transportErr.Op, "write")
	}
	if !errors.Is(err, cause) {
		t.Errorf("error chain does not include the cause: %v", err)
	}
}

func TestTransportReadError(t *testing.T) {
	cause := errors.New("port closed")
	device := newMockTransport()
	device.readErr = cause
	m := New(device)

	_, err := m.Query(context.Background(), "ID")

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("error = %v, want TransportError", err)
	}
	if transportErr.Op != "read" {
		t.Errorf("Op = %q, want %q", transportErr.Op, "read")
	}
}

func TestExchangeContextCanceled(t *testing.T) {
	device := newMockTransport()
	m := New(device)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Query(ctx, "ID")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if len(device.writes) != 0 {
		t.Errorf("wrote %q on canceled context", device.writes)
	}
}

func TestVocabularyAccessor(t *testing.T) {
	store := testStore()
	m := New(newMockTransport(), WithVocabulary(store))
	if m.Vocabulary() != store {
		t.Error("Vocabulary() did not return the configured store")
	}
}
