// SPDX-License-Identifier: EPL-2.0

package mosaic

import "errors"

var (
	// ErrEmptyTarget is returned when the target table has no frames.
	ErrEmptyTarget = errors.New("target table has no frames")
	// ErrNilCache is returned by New without a segment cache.
	ErrNilCache = errors.New("segment cache is required")
	// ErrInvalidOptions is returned by New for out of range options.
	ErrInvalidOptions = errors.New("invalid options")
)
