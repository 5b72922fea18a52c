// Package meter provides a high-level API for driving a Fluke 287/289
// multimeter over its IR serial link.
//
// # Overview
//
// Meter wraps a Transport with the full remote command surface:
//   - Identity, clock, and the primary live measurement
//   - Display queries in ASCII (QDDA) and binary (QDDB) form
//   - Saved recordings and measurements (QRSI, QSMR, QSLS, QSAVNAME)
//   - LCD screenshots via the chunked QLCDBM transfer
//   - Settable meter properties, validated against the device vocabulary
//     before anything is written
//   - Vocabulary queries, full rebuilds, and the disk cache
//
// # Basic Usage
//
//	port, err := serialport.Open("/dev/ttyUSB0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
//	m := meter.New(port, meter.WithCachePath("fluke289-vocab.json"))
//	if err := m.EnsureVocabulary(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	snap, err := m.DisplaySnapshot(ctx)
//
// # Concurrency
//
// The protocol is strictly synchronous: one in-flight command at a time
// over a single exclusive transport. Meter serializes exchanges internally
// with a mutex held for exactly the write / settle / read span of one
// exchange. Vocabulary rebuilds must additionally be serialized by the
// caller against all other use of the same Meter.
//
// # Error Handling
//
// Transport failures are wrapped in TransportError; protocol and
// vocabulary failures surface the typed errors of the protocol and vocab
// packages unchanged. No operation retries; retry policy belongs to the
// caller.
//
// # Hardware Independence
//
// Meter does not open or close hardware. Callers provide a Transport; the
// serialport package implements one over a real serial port, and tests use
// an in-memory mock.
package meter
