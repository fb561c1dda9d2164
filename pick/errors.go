// SPDX-License-Identifier: EPL-2.0

package pick

import "errors"

var (
	// ErrNoCandidates is returned when the candidate set is empty.
	ErrNoCandidates = errors.New("no candidates to choose from")
	// ErrInvalidFactor is returned for a random factor outside [0, 1].
	ErrInvalidFactor = errors.New("random factor must be within [0, 1]")
)
