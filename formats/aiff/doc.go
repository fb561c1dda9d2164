// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files through github.com/go-audio/aiff.
//
// Integer PCM at 16, 24 and 32 bits is supported. The go-audio decoder needs
// to seek, so inputs that are not io.ReadSeeker are read into memory first.
package aiff
