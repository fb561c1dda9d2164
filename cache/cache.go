// SPDX-License-Identifier: EPL-2.0

package cache

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// LoadFunc decodes the whole file at path into mono samples.
type LoadFunc func(path string) ([]float32, error)

// Segments caches full decoded waveforms keyed by path. Entries are never
// evicted; call Clear to drop them. Safe for concurrent use.
type Segments struct {
	load LoadFunc

	mtx   sync.RWMutex
	files map[string][]float32

	inflight singleflight.Group
}

func New(load LoadFunc) *Segments {
	return &Segments{
		load:  load,
		files: make(map[string][]float32),
	}
}

// Waveform returns the full decoded waveform for path, decoding it on first use.
// The returned slice is shared and must not be modified.
func (s *Segments) Waveform(path string) ([]float32, error) {
	s.mtx.RLock()
	wave, ok := s.files[path]
	s.mtx.RUnlock()
	if ok {
		return wave, nil
	}

	v, err, _ := s.inflight.Do(path, func() (any, error) {
		// another caller may have finished the decode while we queued
		s.mtx.RLock()
		wave, ok := s.files[path]
		s.mtx.RUnlock()
		if ok {
			return wave, nil
		}

		wave, err := s.load(path)
		if err != nil {
			return nil, err
		}

		s.mtx.Lock()
		s.files[path] = wave
		s.mtx.Unlock()

		return wave, nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	return v.([]float32), nil
}

// Read returns up to n samples of path starting at start. The result is shorter
// than n when the range runs past the end of the file, and empty when start is
// at or past the end. The returned slice is shared and must not be modified.
func (s *Segments) Read(path string, start, n int) ([]float32, error) {
	if start < 0 || n < 0 {
		return nil, fmt.Errorf("%w: start=%d n=%d", ErrInvalidRange, start, n)
	}

	wave, err := s.Waveform(path)
	if err != nil {
		return nil, err
	}

	if start >= len(wave) {
		return wave[len(wave):], nil
	}
	end := min(start+n, len(wave))

	return wave[start:end:end], nil
}

// Len returns the number of cached files.
func (s *Segments) Len() int {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return len(s.files)
}

// Clear drops every cached waveform. A decode already in flight still stores
// its result once it completes.
func (s *Segments) Clear() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.files = make(map[string][]float32)
}
