// Package vocab manages the instrument's vocabulary tables: device-reported
// mappings from small integer codes to human-readable labels for a named
// category (unit, function, state, ...).
//
// # Tables and the Store
//
// A Table is one named, immutable code-to-label mapping. A Store holds the
// per-session cache of tables and is the package's implementation of
// protocol.Resolver:
//
//	store := vocab.NewStore()
//	store.Put(vocab.NewTable("BEEPER", map[uint16]string{0: "OFF", 1: "ON"}))
//
//	label, err := store.Resolve("BEEPER", 1) // "ON"
//	err = store.Validate("BEEPER", "ON")     // ok
//	err = store.Validate("BEEPER", "MAYBE")  // *InvalidValueError, lists OFF and ON
//
// Validate is used before writing any settable property, so a value the
// device would reject is caught before a single byte goes on the wire.
//
// # Disk Cache
//
// Querying all tables takes dozens of exchanges, so a Store can be persisted
// between sessions:
//
//	err := store.Save("fluke289-vocab.json")
//	err = store.Load("fluke289-vocab.json")
//
// The on-disk format stores codes as JSON numbers, never as quoted strings,
// and Load rejects files that violate that. MapNames lists every table name
// the instrument answers, for a full rebuild.
//
// # Concurrency
//
// A Store is safe for concurrent readers. Rebuilding (ReplaceAll or Load)
// must not race with in-flight Resolve or Validate calls on semantic
// grounds: callers serialize rebuilds against all other protocol use.
package vocab
