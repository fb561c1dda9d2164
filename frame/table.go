// SPDX-License-Identifier: EPL-2.0

package frame

import "fmt"

// Table is an ordered, validated, read-only collection of records.
type Table struct {
	records []Record
}

// NewTable validates records and wraps them in a Table. Frame ids must be unique per source.
// The slice is owned by the table afterwards.
func NewTable(records []Record) (*Table, error) {
	type key struct{ source, frame string }
	seen := make(map[key]struct{}, len(records))

	for i := range records {
		rec := &records[i]
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}

		k := key{rec.SourceID, rec.FrameID}
		if _, dup := seen[k]; dup {
			return nil, fmt.Errorf("row %d: %w: %s/%s", i, ErrDuplicateFrame, rec.SourceID, rec.FrameID)
		}
		seen[k] = struct{}{}
	}

	return &Table{records: records}, nil
}

// Len returns the number of records.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// At returns a pointer to the i-th record. The record must not be modified.
func (t *Table) At(i int) *Record { return &t.records[i] }

// Records returns the underlying records. The slice must not be modified.
func (t *Table) Records() []Record { return t.records }

// Paths returns the distinct file paths in first-seen order.
func (t *Table) Paths() []string {
	seen := make(map[string]struct{})
	var paths []string
	for i := range t.records {
		p := t.records[i].Path
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		paths = append(paths, p)
	}
	return paths
}

// Concat unions tables in order into a new corpus table, re-checking uniqueness.
func Concat(tables ...*Table) (*Table, error) {
	n := 0
	for _, t := range tables {
		n += t.Len()
	}

	all := make([]Record, 0, n)
	for _, t := range tables {
		if t != nil {
			all = append(all, t.records...)
		}
	}

	return NewTable(all)
}
