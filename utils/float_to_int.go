// SPDX-License-Identifier: EPL-2.0

// Package utils holds small sample-format helpers.
package utils

// Float32ToInt16 clips x to [-1, 1] and scales it to 16-bit PCM.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	// 32767 keeps +1 from overflowing
	return int16(x * 32767.0)
}
