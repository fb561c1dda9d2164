// SPDX-License-Identifier: EPL-2.0

package mosaic

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/ik5/audmosaic/frame"
)

// ErrorPolicy decides what a failing frame does to the run.
type ErrorPolicy uint8

const (
	// FailFast aborts the reconstruction on the first frame error.
	FailFast ErrorPolicy = iota
	// SkipFrame logs the error, leaves the frame silent and carries on.
	SkipFrame
)

func (p ErrorPolicy) String() string {
	switch p {
	case FailFast:
		return "fail-fast"
	case SkipFrame:
		return "skip-frame"
	default:
		return fmt.Sprintf("ErrorPolicy(%d)", uint8(p))
	}
}

// Options controls matching and selection.
type Options struct {
	// Features are the columns compared by distance. Defaults to the 13 MFCCs.
	Features []frame.Feature
	// UseTonality restricts the search to frames with the target's key and scale
	// and picks uniformly among the neighbours.
	UseTonality bool
	// Tolerance is the maximum key strength difference on the tonal path.
	Tolerance float64
	// RandomFactor spreads the choice on the plain path, see pick.Ranked.
	RandomFactor float64
	// Neighbors is the candidate set size k.
	Neighbors int
	// Workers bounds the frames resolved at once. Zero means GOMAXPROCS.
	Workers int
	// Seed makes the run reproducible. Zero is reserved: it draws a fresh seed
	// per run, which is reported in Result.Seed.
	Seed uint64
	// Policy is FailFast unless set.
	Policy ErrorPolicy
	// Logger defaults to slog.Default().
	Logger *slog.Logger
	// OnFrame, if set, is called after each frame is resolved or skipped.
	// It may be called from several goroutines at once.
	OnFrame func(i int)
}

// DefaultOptions returns the settings the mosaic tools ship with.
func DefaultOptions() Options {
	return Options{
		Features:     frame.MFCC(),
		Tolerance:    0.1,
		RandomFactor: 0.2,
		Neighbors:    10,
	}
}

func (o *Options) normalize() error {
	if len(o.Features) == 0 {
		o.Features = frame.MFCC()
	}
	if o.Neighbors <= 0 {
		return fmt.Errorf("%w: neighbors must be positive, got %d", ErrInvalidOptions, o.Neighbors)
	}
	if o.RandomFactor < 0 || o.RandomFactor > 1 {
		return fmt.Errorf("%w: random factor %v outside [0, 1]", ErrInvalidOptions, o.RandomFactor)
	}
	if o.Tolerance < 0 {
		return fmt.Errorf("%w: negative tolerance %v", ErrInvalidOptions, o.Tolerance)
	}
	if o.Policy > SkipFrame {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, o.Policy)
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}

	return nil
}
