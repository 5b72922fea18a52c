package vocab

import "sort"

// Table is one named vocabulary: an immutable mapping from the instrument's
// small integer codes to their human-readable labels. Keys are unique and
// carry no implied order.
type Table struct {
	name    string
	entries map[uint16]string
}

// NewTable builds a Table from a code-to-label mapping.
// The mapping is copied; the Table never changes afterwards.
func NewTable(name string, entries map[uint16]string) Table {
	copied := make(map[uint16]string, len(entries))
	for code, label := range entries {
		copied[code] = label
	}
	return Table{name: name, entries: copied}
}

// Name returns the table name.
func (t Table) Name() string { return t.name }

// Len returns the number of entries.
func (t Table) Len() int { return len(t.entries) }

// Lookup returns the label for code and whether it exists.
func (t Table) Lookup(code uint16) (string, bool) {
	label, ok := t.entries[code]
	return label, ok
}

// Labels returns all labels in the table, sorted.
func (t Table) Labels() []string {
	labels := make([]string, 0, len(t.entries))
	for _, label := range t.entries {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Codes returns all codes in the table, sorted.
func (t Table) Codes() []uint16 {
	codes := make([]uint16, 0, len(t.entries))
	for code := range t.entries {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
