// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the input is not a valid AIFF file
	ErrNotAiffFile = errors.New("not an AIFF file")
	// ErrUnsupportedEncoding indicates a bit depth other than 16, 24 or 32
	ErrUnsupportedEncoding = errors.New("only 16, 24 or 32-bit PCM AIFF is supported")
)
