// SPDX-License-Identifier: EPL-2.0

package frame

import "errors"

var (
	// ErrInvalidRecord indicates a record that violates a table invariant.
	ErrInvalidRecord = errors.New("invalid frame record")
	// ErrDuplicateFrame indicates two records share a source id and frame id.
	ErrDuplicateFrame = errors.New("duplicate frame id for source")
	// ErrUnknownScale indicates a scale that is neither major nor minor.
	ErrUnknownScale = errors.New("unknown scale")
	// ErrUnknownKey indicates a key that is not a pitch class or note name.
	ErrUnknownKey = errors.New("unknown key")
	// ErrMissingColumn indicates a CSV header without a required column.
	ErrMissingColumn = errors.New("missing column")
)
