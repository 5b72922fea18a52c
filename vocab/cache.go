package vocab

import (
	"encoding/json"
	"fmt"
	"os"
)

// On-disk cache format. Codes are JSON numbers on purpose: an earlier
// implementation stored them as quoted strings and re-imported them as
// strings, which silently broke every lookup. Load rejects such files.
type cacheFile struct {
	Tables []cacheTable `json:"tables"`
}

type cacheTable struct {
	Name    string       `json:"name"`
	Entries []cacheEntry `json:"entries"`
}

type cacheEntry struct {
	Code  uint16 `json:"code"`
	Label string `json:"label"`
}

// Save writes the whole store to path as JSON.
// Tables and entries are emitted in sorted order so the file diffs cleanly.
func (s *Store) Save(path string) error {
	var file cacheFile
	for _, name := range s.Names() {
		t, _ := s.Table(name)
		ct := cacheTable{Name: name, Entries: make([]cacheEntry, 0, t.Len())}
		for _, code := range t.Codes() {
			label, _ := t.Lookup(code)
			ct.Entries = append(ct.Entries, cacheEntry{Code: code, Label: label})
		}
		file.Tables = append(file.Tables, ct)
	}

	data, err := json.MarshalIndent(&file, "", "  ")
	if err != nil {
		return fmt.Errorf("encode vocabulary cache: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write vocabulary cache: %w", err)
	}
	return nil
}

// Load reads a cache written by Save and replaces the store's contents
// wholesale. The file is validated before anything is replaced: string
// codes fail JSON decoding, and duplicate codes within a table are
// rejected.
func (s *Store) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var file cacheFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("decode vocabulary cache %s: %w", path, err)
	}

	tables := make([]Table, 0, len(file.Tables))
	for _, ct := range file.Tables {
		if ct.Name == "" {
			return fmt.Errorf("vocabulary cache %s: table with empty name", path)
		}
		entries := make(map[uint16]string, len(ct.Entries))
		for _, e := range ct.Entries {
			if _, dup := entries[e.Code]; dup {
				return fmt.Errorf("vocabulary cache %s: duplicate code %d in table %q", path, e.Code, ct.Name)
			}
			entries[e.Code] = e.Label
		}
		tables = append(tables, NewTable(ct.Name, entries))
	}

	s.ReplaceAll(tables)
	return nil
}
