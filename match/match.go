// SPDX-License-Identifier: EPL-2.0

package match

import (
	"fmt"
	"math"
	"sort"

	"github.com/ik5/audmosaic/frame"
	"gonum.org/v1/gonum/floats"
)

// Candidate is one ranked search result.
type Candidate struct {
	Row      int // position in the indexed table
	Record   *frame.Record
	Distance float64
}

// Index holds the feature vectors of a table for repeated queries.
// It is read-only after construction and safe for concurrent use.
type Index struct {
	table    *frame.Table
	features []frame.Feature
	vectors  [][]float64

	// rows per (key, scale), in table order
	tonal [12][2][]int
}

// NewIndex extracts features from every record of t.
func NewIndex(t *frame.Table, features []frame.Feature) (*Index, error) {
	if len(features) == 0 {
		return nil, ErrNoFeatures
	}
	for _, f := range features {
		if !f.Valid() {
			return nil, fmt.Errorf("%w: %v", ErrNoFeatures, f)
		}
	}

	idx := &Index{
		table:    t,
		features: append([]frame.Feature(nil), features...),
		vectors:  make([][]float64, t.Len()),
	}

	for i := range t.Len() {
		rec := t.At(i)
		idx.vectors[i] = rec.Vector(features)
		idx.tonal[rec.Key][rec.Scale] = append(idx.tonal[rec.Key][rec.Scale], i)
	}

	return idx, nil
}

// Len returns the number of indexed rows.
func (idx *Index) Len() int { return len(idx.vectors) }

// Features returns the columns the index was built on.
func (idx *Index) Features() []frame.Feature { return idx.features }

// Query builds the query vector for rec over the indexed columns.
func (idx *Index) Query(rec *frame.Record) []float64 { return rec.Vector(idx.features) }

// TonalRows returns the rows sharing query's key and scale whose key strength
// differs from the query's by less than tolerance. It returns nil, meaning the
// whole table, when fewer than k rows pass both conditions.
func (idx *Index) TonalRows(query *frame.Record, k int, tolerance float64) []int {
	if query.Key < 0 || query.Key > 11 || query.Scale > frame.Minor {
		return nil
	}

	var rows []int
	for _, row := range idx.tonal[query.Key][query.Scale] {
		if math.Abs(idx.table.At(row).KeyStrength-query.KeyStrength) < tolerance {
			rows = append(rows, row)
		}
	}

	if len(rows) < k {
		return nil
	}
	return rows
}

// Nearest returns the min(k, n) rows closest to query, where n is the number of
// searched rows: the given rows, or every row when rows is nil.
func (idx *Index) Nearest(query []float64, k int, rows []int) ([]Candidate, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidK, k)
	}
	if len(query) != len(idx.features) {
		return nil, fmt.Errorf("%w: got %d values for %d columns", ErrDimension, len(query), len(idx.features))
	}

	n := len(idx.vectors)
	if rows != nil {
		n = len(rows)
	}
	if n == 0 {
		return nil, ErrEmptyTable
	}

	best := make([]Candidate, 0, min(k, n)+1)
	for i := range n {
		row := i
		if rows != nil {
			row = rows[i]
		}

		d := floats.Distance(query, idx.vectors[row], 2)
		if len(best) == k && d >= best[k-1].Distance {
			continue
		}

		// upper bound keeps earlier rows ahead of later ones at equal distance
		pos := sort.Search(len(best), func(j int) bool { return best[j].Distance > d })
		best = append(best, Candidate{})
		copy(best[pos+1:], best[pos:])
		best[pos] = Candidate{Row: row, Record: idx.table.At(row), Distance: d}

		if len(best) > k {
			best = best[:k]
		}
	}

	return best, nil
}

// Nearest is a one-shot search of t without keeping an index around.
func Nearest(query []float64, t *frame.Table, k int, features []frame.Feature) ([]Candidate, error) {
	if t.Len() == 0 {
		return nil, ErrEmptyTable
	}

	idx, err := NewIndex(t, features)
	if err != nil {
		return nil, err
	}

	return idx.Nearest(query, k, nil)
}
