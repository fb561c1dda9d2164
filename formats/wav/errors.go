// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile          = errors.New("not a WAV file")
	ErrUnsupportedEncoding = errors.New("only integer PCM at 16, 24 or 32 bits is supported")
	ErrInvalidSampleRate   = errors.New("sample rate must be positive")
)
