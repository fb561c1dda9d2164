// SPDX-License-Identifier: EPL-2.0

package segment

import "errors"

var (
	// ErrNoBeats is returned in beat-synchronous mode when the beat tracker found nothing.
	ErrNoBeats = errors.New("no beats detected")
	// ErrInvalidSampleRate is returned when a non-positive sample rate is given.
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)
