// SPDX-License-Identifier: EPL-2.0

package audmosaic

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ik5/audmosaic/audio"
	"github.com/ik5/audmosaic/formats/aiff"
	"github.com/ik5/audmosaic/formats/mp3"
	"github.com/ik5/audmosaic/formats/vorbis"
	"github.com/ik5/audmosaic/formats/wav"
	"github.com/ik5/audmosaic/frame"
	"github.com/ik5/audmosaic/mosaic"
	"github.com/ik5/audmosaic/segment"
)

// ErrNoAnalyzer is returned by AnalyzeFile without an analyzer.
var ErrNoAnalyzer = errors.New("analyzer is required")

// NewRegistry returns a registry with every bundled decoder.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
}

// NewLoader returns a mono file loader for every bundled format. Files must be
// sampled at sampleRate, or at any rate when sampleRate is 0.
func NewLoader(sampleRate int) *audio.FileLoader {
	return audio.NewFileLoader(NewRegistry(), sampleRate)
}

// AnalyzeOptions configures AnalyzeFile.
type AnalyzeOptions struct {
	// FrameSize in samples; zero analyzes the whole file as one frame.
	FrameSize int
	// Beats, if set, switches to beat synchronous frames and FrameSize is ignored.
	Beats frame.BeatTracker
	// Analyzer extracts the features of each frame.
	Analyzer frame.Analyzer
}

// AnalyzeFile decodes path, cuts it into frames and analyzes each of them.
// The returned records carry sourceID and path.
func AnalyzeFile(loader *audio.FileLoader, sourceID, path string, opts AnalyzeOptions) (*frame.Table, error) {
	if opts.Analyzer == nil {
		return nil, ErrNoAnalyzer
	}

	waveform, rate, err := loader.LoadWithRate(path)
	if err != nil {
		return nil, err
	}

	segOpts := segment.Options{FrameSize: opts.FrameSize, SampleRate: rate}
	if opts.Beats != nil {
		beats, err := opts.Beats.Beats(waveform, rate)
		if err != nil {
			return nil, fmt.Errorf("tracking beats of %s: %w", path, err)
		}
		segOpts.BeatSync = true
		segOpts.Beats = beats
	}

	bounds, err := segment.Segment(len(waveform), segOpts)
	if err != nil {
		return nil, fmt.Errorf("segmenting %s: %w", path, err)
	}

	return frame.Analyze(sourceID, path, waveform, bounds, opts.Analyzer)
}

// Render reconstructs target from source and writes the result to outPath as a
// mono 16-bit WAV at sampleRate.
func Render(ctx context.Context, r *mosaic.Reconstructor, target, source *frame.Table, outPath string, sampleRate int) (*mosaic.Result, error) {
	res, err := r.Reconstruct(ctx, target, source)
	if err != nil {
		return nil, err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if err := wav.WriteMono(f, sampleRate, res.Waveform); err != nil {
		f.Close()
		return nil, fmt.Errorf("writing %s: %w", outPath, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return res, nil
}
