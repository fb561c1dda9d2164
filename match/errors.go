// SPDX-License-Identifier: EPL-2.0

package match

import "errors"

var (
	// ErrEmptyTable is returned when there is nothing to search.
	ErrEmptyTable = errors.New("candidate table is empty")
	// ErrInvalidK is returned for a non-positive neighbour count.
	ErrInvalidK = errors.New("neighbour count must be positive")
	// ErrNoFeatures is returned when no valid feature column was given.
	ErrNoFeatures = errors.New("no feature columns")
	// ErrDimension is returned when the query length differs from the column count.
	ErrDimension = errors.New("query dimension mismatch")
)
