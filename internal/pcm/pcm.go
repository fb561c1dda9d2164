// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts go-audio integer PCM decoders to float32 sample streams.
package pcm

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
)

// Reader is the part of the go-audio wav/aiff decoders used here.
type Reader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source converts integer PCM from a Reader to float32 samples in [-1, 1].
type Source struct {
	dec      Reader
	format   *goaudio.Format
	scale    float32
	intBuf   *goaudio.IntBuffer
	finished bool
}

// NewSource wraps dec. bitDepth selects the integer full scale.
func NewSource(dec Reader, format *goaudio.Format, bitDepth int) *Source {
	return &Source{
		dec:    dec,
		format: format,
		scale:  1 / float32(int64(1)<<(bitDepth-1)),
	}
}

func (s *Source) SampleRate() int { return s.format.SampleRate }
func (s *Source) Channels() int   { return s.format.NumChannels }
func (s *Source) Close() error    { return nil }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.finished {
		return 0, io.EOF
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{Format: s.format, Data: make([]int, len(dst))}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("%w", err)
	}

	for i, v := range s.intBuf.Data[:n] {
		dst[i] = float32(v) * s.scale
	}

	// a short read means the data chunk is exhausted
	if n < len(dst) || err == io.EOF {
		s.finished = true
		return n, io.EOF
	}

	return n, nil
}

// ReadSeeker returns r as an io.ReadSeeker, buffering it in memory when r cannot seek.
func ReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}
	return bytes.NewReader(data), nil
}
