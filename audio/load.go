// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const readChunk = 4096

// ReadAll drains src and returns every sample it produced.
func ReadAll(src Source) ([]float32, error) {
	var (
		out []float32
		buf = make([]float32, readChunk)
	)

	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if n == 0 {
			// decoders that signal the end with (0, nil)
			return out, nil
		}
	}
}

// FileLoader decodes whole files to mono samples, picking the decoder from the
// file extension.
type FileLoader struct {
	registry   *Registry
	sampleRate int
}

// NewFileLoader returns a loader that rejects files whose sample rate differs from
// sampleRate. A sampleRate of 0 accepts any rate.
func NewFileLoader(registry *Registry, sampleRate int) *FileLoader {
	return &FileLoader{registry: registry, sampleRate: sampleRate}
}

// SampleRate is the rate every loaded file must have, or 0.
func (l *FileLoader) SampleRate() int { return l.sampleRate }

// Load decodes path and returns its mono samples.
func (l *FileLoader) Load(path string) ([]float32, error) {
	samples, _, err := l.LoadWithRate(path)
	return samples, err
}

// LoadWithRate decodes path and returns its mono samples and sample rate.
func (l *FileLoader) LoadWithRate(path string) ([]float32, int, error) {
	ext := filepath.Ext(path)
	dec, ok := l.registry.Get(ext)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q (%s)", ErrUnsupportedFormat, ext, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, 0, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	rate := src.SampleRate()
	if l.sampleRate > 0 && rate != l.sampleRate {
		return nil, rate, fmt.Errorf("%w: %s is %d Hz, want %d Hz", ErrSampleRateMismatch, path, rate, l.sampleRate)
	}

	samples, err := ReadAll(NewMonoMixer(src))
	if err != nil {
		return nil, rate, fmt.Errorf("reading %s: %w", path, err)
	}

	return samples, rate, nil
}
