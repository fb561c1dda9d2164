// SPDX-License-Identifier: EPL-2.0

package frame

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NumMFCC is the number of MFCC coefficients stored per frame.
const NumMFCC = 13

// Scale is the mode of the estimated key.
type Scale uint8

const (
	Major Scale = iota
	Minor
)

func (s Scale) String() string {
	if s == Minor {
		return "minor"
	}
	return "major"
}

// ParseScale parses "major" or "minor" (case insensitive).
func ParseScale(s string) (Scale, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "major":
		return Major, nil
	case "minor":
		return Minor, nil
	}
	return Major, fmt.Errorf("%w: %q", ErrUnknownScale, s)
}

var noteNames = map[string]int{
	"C": 0, "B#": 0,
	"C#": 1, "DB": 1,
	"D": 2,
	"D#": 3, "EB": 3,
	"E": 4, "FB": 4,
	"F": 5, "E#": 5,
	"F#": 6, "GB": 6,
	"G": 7,
	"G#": 8, "AB": 8,
	"A": 9,
	"A#": 10, "BB": 10,
	"B": 11, "CB": 11,
}

var keyNames = [12]string{"C", "C#", "D", "Eb", "E", "F", "F#", "G", "Ab", "A", "Bb", "B"}

// KeyName returns the note name of pitch class k, or its number when out of range.
func KeyName(k int) string {
	if k < 0 || k > 11 {
		return strconv.Itoa(k)
	}
	return keyNames[k]
}

// ParseKey parses a pitch class, either numeric (0..11) or a note name such as "C#" or "Eb".
func ParseKey(s string) (int, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if k, ok := noteNames[s]; ok {
		return k, nil
	}

	if k, err := strconv.Atoi(s); err == nil && k >= 0 && k < 12 {
		return k, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKey, s)
}

// Features are the per-frame values produced by the analysis collaborator.
type Features struct {
	Loudness    float64
	MFCC        [NumMFCC]float64
	Key         int // pitch class, 0=C .. 11=B
	Scale       Scale
	KeyStrength float64 // [0,1]
}

// Record is one analysed frame together with its provenance.
type Record struct {
	SourceID    string
	FrameID     string
	Path        string
	StartSample int
	EndSample   int

	Features
}

// Len is the frame length in samples.
func (r *Record) Len() int { return r.EndSample - r.StartSample }

// Vector returns the values of cols for r, in order.
func (r *Record) Vector(cols []Feature) []float64 {
	v := make([]float64, len(cols))
	for i, c := range cols {
		v[i] = c.Value(r)
	}
	return v
}

// Validate reports whether r satisfies the record invariants.
func (r *Record) Validate() error {
	switch {
	case r.Path == "":
		return fmt.Errorf("%w: frame %q has no path", ErrInvalidRecord, r.FrameID)
	case r.StartSample < 0 || r.StartSample >= r.EndSample:
		return fmt.Errorf("%w: frame %q has range [%d,%d)", ErrInvalidRecord, r.FrameID, r.StartSample, r.EndSample)
	case r.Key < 0 || r.Key > 11:
		return fmt.Errorf("%w: frame %q has key %d", ErrInvalidRecord, r.FrameID, r.Key)
	case r.Scale != Major && r.Scale != Minor:
		return fmt.Errorf("%w: frame %q has scale %d", ErrInvalidRecord, r.FrameID, r.Scale)
	case !(r.KeyStrength >= 0 && r.KeyStrength <= 1):
		return fmt.Errorf("%w: frame %q has key strength %v", ErrInvalidRecord, r.FrameID, r.KeyStrength)
	case !finite(r.Loudness):
		return fmt.Errorf("%w: frame %q has loudness %v", ErrInvalidRecord, r.FrameID, r.Loudness)
	}
	for i, v := range r.MFCC {
		if !finite(v) {
			return fmt.Errorf("%w: frame %q has mfcc_%d %v", ErrInvalidRecord, r.FrameID, i, v)
		}
	}
	return nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
