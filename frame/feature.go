// SPDX-License-Identifier: EPL-2.0

package frame

import (
	"fmt"
	"strconv"
	"strings"
)

// Feature identifies one numeric column of a Record.
type Feature uint8

const (
	MFCC0 Feature = iota
	MFCC1
	MFCC2
	MFCC3
	MFCC4
	MFCC5
	MFCC6
	MFCC7
	MFCC8
	MFCC9
	MFCC10
	MFCC11
	MFCC12
	Loudness
	KeyStrength
)

// MFCC returns the 13 MFCC columns, the canonical similarity space.
func MFCC() []Feature {
	cols := make([]Feature, NumMFCC)
	for i := range cols {
		cols[i] = MFCC0 + Feature(i)
	}
	return cols
}

// Value reads the column from r.
func (f Feature) Value(r *Record) float64 {
	switch {
	case f <= MFCC12:
		return r.MFCC[f]
	case f == Loudness:
		return r.Loudness
	case f == KeyStrength:
		return r.KeyStrength
	}
	panic(fmt.Sprintf("frame: unknown feature %d", f))
}

// Valid reports whether f names a known column.
func (f Feature) Valid() bool { return f <= KeyStrength }

func (f Feature) String() string {
	switch {
	case f <= MFCC12:
		return "mfcc_" + strconv.Itoa(int(f))
	case f == Loudness:
		return "loudness"
	case f == KeyStrength:
		return "key_strength"
	}
	return "feature(" + strconv.Itoa(int(f)) + ")"
}

// ParseFeature maps a column name ("mfcc_3", "loudness", "key_strength") to a Feature.
func ParseFeature(name string) (Feature, error) {
	name = strings.TrimSpace(name)
	switch name {
	case "loudness":
		return Loudness, nil
	case "key_strength":
		return KeyStrength, nil
	}

	if rest, ok := strings.CutPrefix(name, "mfcc_"); ok {
		if i, err := strconv.Atoi(rest); err == nil && i >= 0 && i < NumMFCC {
			return MFCC0 + Feature(i), nil
		}
	}

	return 0, fmt.Errorf("unknown feature column %q", name)
}
