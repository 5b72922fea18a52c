package meter

import (
	"context"
	"fmt"
	"os"

	"github.com/emackay/go-fluke289/protocol"
	"github.com/emackay/go-fluke289/vocab"
)

// QueryVocabulary fetches one vocabulary table from the device (QEMAP) and
// stores it in the session vocabulary, replacing any prior table of the
// same name.
func (m *Meter) QueryVocabulary(ctx context.Context, name string) (vocab.Table, error) {
	payload, err := m.Command(ctx, "QEMAP "+name)
	if err != nil {
		return vocab.Table{}, fmt.Errorf("query vocabulary %s: %w", name, err)
	}

	entries, err := protocol.ParseVocabulary(name, payload)
	if err != nil {
		return vocab.Table{}, err
	}

	t := vocab.NewTable(name, entries)
	m.config.Vocabulary.Put(t)
	return t, nil
}

// RebuildVocabulary re-queries every known vocabulary table and replaces
// the session vocabulary wholesale. When a cache path is configured the
// combined result is persisted afterwards.
//
// A rebuild issues one exchange per table name and must not race with any
// other use of this Meter; callers serialize it against everything else.
func (m *Meter) RebuildVocabulary(ctx context.Context) error {
	tables := make([]vocab.Table, 0, len(vocab.MapNames))
	for _, name := range vocab.MapNames {
		payload, err := m.Command(ctx, "QEMAP "+name)
		if err != nil {
			return fmt.Errorf("rebuild vocabulary %s: %w", name, err)
		}
		entries, err := protocol.ParseVocabulary(name, payload)
		if err != nil {
			return err
		}
		tables = append(tables, vocab.NewTable(name, entries))
	}

	m.config.Vocabulary.ReplaceAll(tables)
	m.config.Logger.WithField("tables", len(tables)).Info("vocabulary rebuilt")

	if m.config.CachePath != "" {
		if err := m.config.Vocabulary.Save(m.config.CachePath); err != nil {
			return err
		}
	}
	return nil
}

// EnsureVocabulary makes the session vocabulary usable, doing as little
// work as possible: a populated store is left alone, a configured cache
// file is loaded when present, and only otherwise is a full rebuild run
// against the device.
func (m *Meter) EnsureVocabulary(ctx context.Context) error {
	store := m.config.Vocabulary
	if store.Len() > 0 {
		return nil
	}

	if m.config.CachePath != "" {
		err := store.Load(m.config.CachePath)
		if err == nil {
			m.config.Logger.WithField("path", m.config.CachePath).Debug("vocabulary cache loaded")
			return nil
		}
		if !os.IsNotExist(err) {
			m.config.Logger.WithError(err).Warn("vocabulary cache unreadable, rebuilding")
		}
	}

	return m.RebuildVocabulary(ctx)
}
