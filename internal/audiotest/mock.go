// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds in-memory audio fixtures shared by tests.
package audiotest

import (
	"errors"
	"io"
	"sync"
)

// MockSource generates audio on demand. It satisfies audio.Source without
// importing it, so the audio package can use it in its own tests.
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // per channel
	generated    int // per channel
	waveform     func(sample int, channel int) float32

	Closed bool
}

// NewMockSource creates a source of totalSamples frames whose values come from waveform.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// NewSliceSource plays back mono samples.
func NewSliceSource(sampleRate int, samples []float32) *MockSource {
	return NewMockSource(sampleRate, 1, len(samples), func(sample int, _ int) float32 {
		return samples[sample]
	})
}

// NewConstantSource creates a mock source with a constant value on every channel.
func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }

func (m *MockSource) Close() error {
	m.Closed = true
	return nil
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalSamples-m.generated)
	for f := range frames {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}
	m.generated += frames

	if m.generated >= m.totalSamples {
		return frames * m.channels, io.EOF
	}
	return frames * m.channels, nil
}

// Ramp returns n samples whose value encodes their index: offset + i/scale.
// Distinct offsets make segments of different files easy to tell apart.
func Ramp(n int, offset float32) []float32 {
	const scale = 1 << 20

	out := make([]float32, n)
	for i := range out {
		out[i] = offset + float32(i)/scale
	}
	return out
}

// ErrNotFound is returned by MapLoader for unknown paths.
var ErrNotFound = errors.New("audiotest: file not found")

// MapLoader serves waveforms from memory and counts decodes per path.
type MapLoader struct {
	mtx   sync.Mutex
	files map[string][]float32
	calls map[string]int
}

func NewMapLoader(files map[string][]float32) *MapLoader {
	return &MapLoader{files: files, calls: make(map[string]int)}
}

// Load returns a copy of the waveform stored under path.
func (l *MapLoader) Load(path string) ([]float32, error) {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	l.calls[path]++
	wave, ok := l.files[path]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]float32(nil), wave...), nil
}

// Calls returns how many times path was loaded.
func (l *MapLoader) Calls(path string) int {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	return l.calls[path]
}
