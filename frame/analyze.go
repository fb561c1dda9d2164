// SPDX-License-Identifier: EPL-2.0

package frame

import (
	"fmt"

	"github.com/ik5/audmosaic/segment"
)

// Analyzer extracts features from the samples of a single frame.
// Implementations wrap an external audio-analysis library.
type Analyzer interface {
	Analyze(samples []float32) (Features, error)
}

// AnalyzerFunc adapts a function to the Analyzer interface.
type AnalyzerFunc func(samples []float32) (Features, error)

func (f AnalyzerFunc) Analyze(samples []float32) (Features, error) { return f(samples) }

// BeatTracker reports beat positions, in seconds, for a whole waveform.
type BeatTracker interface {
	Beats(waveform []float32, sampleRate int) ([]float64, error)
}

// FrameID returns the identifier of the n-th frame of a source, e.g. "1234_f7".
func FrameID(sourceID string, n int) string {
	return fmt.Sprintf("%s_f%d", sourceID, n)
}

// Analyze runs a over every boundary of waveform and returns the resulting table.
// Boundaries must lie within the waveform.
func Analyze(sourceID, path string, waveform []float32, bounds []segment.Boundary, a Analyzer) (*Table, error) {
	records := make([]Record, 0, len(bounds))

	for n, b := range bounds {
		if b.Start < 0 || b.End > len(waveform) || b.Start >= b.End {
			return nil, fmt.Errorf("%w: boundary [%d,%d) outside waveform of %d samples",
				ErrInvalidRecord, b.Start, b.End, len(waveform))
		}

		feats, err := a.Analyze(waveform[b.Start:b.End])
		if err != nil {
			return nil, fmt.Errorf("analyzing %s frame %d: %w", path, n, err)
		}

		records = append(records, Record{
			SourceID:    sourceID,
			FrameID:     FrameID(sourceID, n),
			Path:        path,
			StartSample: b.Start,
			EndSample:   b.End,
			Features:    feats,
		})
	}

	return NewTable(records)
}
