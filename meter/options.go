package meter

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/emackay/go-fluke289/vocab"
)

// Config holds the meter configuration.
type Config struct {
	// Logger receives exchange and session logs. Defaults to a logger
	// that discards everything.
	Logger logrus.FieldLogger

	// Vocabulary is the session's vocabulary store. Defaults to a fresh
	// empty store.
	Vocabulary *vocab.Store

	// SettleDelay is the post-write wait applied to commands that need
	// device-side processing time before the reply exists (screenshot
	// capture). Default is 10ms.
	SettleDelay time.Duration

	// CachePath, when set, is where EnsureVocabulary loads the vocabulary
	// cache from and where RebuildVocabulary persists it to.
	CachePath string
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return Config{
		Logger:      discard,
		Vocabulary:  vocab.NewStore(),
		SettleDelay: 10 * time.Millisecond,
	}
}

// Option is a functional option for configuring the Meter.
type Option func(*Config)

// WithLogger sets the logger for meter operations.
//
// Example:
//
//	log := logrus.New()
//	m := meter.New(port, meter.WithLogger(log))
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// WithVocabulary shares an existing vocabulary store with the meter,
// for callers that persist or pre-populate one themselves.
func WithVocabulary(store *vocab.Store) Option {
	return func(c *Config) {
		if store != nil {
			c.Vocabulary = store
		}
	}
}

// WithSettleDelay sets the post-write wait for commands that need
// device-side processing time.
func WithSettleDelay(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.SettleDelay = d
		}
	}
}

// WithCachePath sets the vocabulary cache file used by EnsureVocabulary
// and RebuildVocabulary.
func WithCachePath(path string) Option {
	return func(c *Config) {
		c.CachePath = path
	}
}
