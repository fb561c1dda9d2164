// SPDX-License-Identifier: EPL-2.0

// Package segment splits a waveform into non-overlapping frames.
//
// Two modes are supported:
//   - fixed: a boundary every frameSize samples
//   - beat-synchronous: boundaries at beat timestamps converted to sample indices
//
// In both modes only the intervals between consecutive boundary points become
// frames. The span after the last boundary point never produces a frame, so a
// trailing partial frame is always dropped:
//
//	bounds := segment.Fixed(44100*3, 1024)
//	for _, b := range bounds {
//	    frame := waveform[b.Start:b.End]
//	}
//
// Segmentation is deterministic: the same length, frame size and beats always
// produce the same boundaries.
package segment
