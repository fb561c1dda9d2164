// SPDX-License-Identifier: EPL-2.0

// Package match finds the nearest frames to a query under Euclidean distance on
// a chosen set of feature columns.
//
// An Index precomputes the feature vectors of a table once, so the many queries
// of a reconstruction run do not re-read every record:
//
//	idx, err := match.NewIndex(source, frame.MFCC())
//	cands, err := idx.Nearest(query, 10, nil)
//
// Candidates are ordered by ascending distance; ties keep table order.
//
// The optional tonal pre-filter narrows the search to rows with the query's key
// and scale and a key strength within a tolerance. When fewer than k rows pass,
// the filter is abandoned and the whole table is searched instead:
//
//	rows := idx.TonalRows(target, 10, 0.1) // nil means "whole table"
//	cands, err := idx.Nearest(query, 10, rows)
package match
