// SPDX-License-Identifier: EPL-2.0

package cache

import "errors"

var (
	// ErrInvalidRange is returned for a negative start or sample count.
	ErrInvalidRange = errors.New("invalid sample range")
)
