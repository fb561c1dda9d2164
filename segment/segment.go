// SPDX-License-Identifier: EPL-2.0

package segment

import "math"

// Boundary is a half-open sample interval [Start, End).
type Boundary struct {
	Start int
	End   int
}

// Len returns the number of samples covered by b.
func (b Boundary) Len() int { return b.End - b.Start }

// Options selects the segmentation mode.
type Options struct {
	// FrameSize in samples. Zero or negative means the whole waveform is one frame.
	// Odd sizes are rounded up to the next even number.
	FrameSize int

	// BeatSync switches to beat-synchronous mode; FrameSize is then ignored.
	BeatSync bool
	// Beats are beat timestamps in seconds, as reported by a beat tracker.
	Beats []float64
	// SampleRate converts beat timestamps to sample indices.
	SampleRate int
}

// Segment splits a waveform of length samples according to opts.
func Segment(length int, opts Options) ([]Boundary, error) {
	if opts.BeatSync {
		return Beats(opts.Beats, opts.SampleRate, length)
	}

	return Fixed(length, opts.FrameSize), nil
}

// EvenFrameSize rounds an odd frame size up to the next even integer.
func EvenFrameSize(frameSize int) int {
	if frameSize%2 != 0 {
		return frameSize + 1
	}
	return frameSize
}

// Fixed places a boundary every frameSize samples in [0, length) and returns the
// intervals between consecutive boundaries. A frameSize <= 0 yields one frame
// covering the whole waveform.
func Fixed(length, frameSize int) []Boundary {
	if length <= 0 {
		return nil
	}
	if frameSize <= 0 {
		return []Boundary{{Start: 0, End: length}}
	}

	frameSize = EvenFrameSize(frameSize)

	// boundary points are 0, F, 2F, ... < length; N points make N-1 frames
	points := (length + frameSize - 1) / frameSize
	if points < 2 {
		return nil
	}

	bounds := make([]Boundary, 0, points-1)
	for i := range points - 1 {
		start := i * frameSize
		bounds = append(bounds, Boundary{Start: start, End: start + frameSize})
	}

	return bounds
}

// Beats converts beat timestamps (seconds) to sample indices with
// round(seconds * sampleRate) and returns the intervals between consecutive
// beats. A single beat produces no frames. Intervals that are empty, run
// backwards or start past length are skipped, and an interval ending past
// length is cut at length when length > 0.
func Beats(beats []float64, sampleRate, length int) ([]Boundary, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if len(beats) == 0 {
		return nil, ErrNoBeats
	}

	points := make([]int, len(beats))
	for i, sec := range beats {
		points[i] = int(math.Round(sec * float64(sampleRate)))
	}

	bounds := make([]Boundary, 0, len(points))
	for i := 1; i < len(points); i++ {
		start, end := points[i-1], points[i]
		if length > 0 && end > length {
			end = length
		}
		if start < 0 || start >= end {
			continue
		}
		bounds = append(bounds, Boundary{Start: start, End: end})
	}

	return bounds, nil
}
