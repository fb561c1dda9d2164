// SPDX-License-Identifier: EPL-2.0

package mosaic

import (
	"cmp"
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/ik5/audmosaic/cache"
	"github.com/ik5/audmosaic/frame"
	"github.com/ik5/audmosaic/match"
	"github.com/ik5/audmosaic/pick"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of one reconstruction.
type Result struct {
	// Waveform has the length of the decoded target file.
	Waveform []float32
	// Usage holds the source id chosen for each target frame, in frame order.
	// Skipped frames have an empty entry.
	Usage []string
	// Skipped lists the frames left silent under SkipFrame, ascending.
	Skipped []int
	// Seed is the seed the run used; passing it back in Options.Seed repeats
	// the run.
	Seed uint64
}

// Reconstructor resolves target frames against a source table.
// A Reconstructor may be reused; each Reconstruct call owns its own buffers.
type Reconstructor struct {
	segments *cache.Segments
	opts     Options
}

// New returns a Reconstructor reading audio through segments.
func New(segments *cache.Segments, opts Options) (*Reconstructor, error) {
	if segments == nil {
		return nil, ErrNilCache
	}
	if err := opts.normalize(); err != nil {
		return nil, err
	}

	return &Reconstructor{segments: segments, opts: opts}, nil
}

// Options returns the effective options after defaults were applied.
func (r *Reconstructor) Options() Options { return r.opts }

// Reconstruct builds the output waveform for target out of source frames.
//
// The output length comes from the decoded file of the first target frame.
// Source segments shorter than their target frame are written as far as they
// go and the rest stays silent. When target frames overlap they are resolved
// one at a time in table order, so a later frame overwrites an earlier one.
func (r *Reconstructor) Reconstruct(ctx context.Context, target, source *frame.Table) (*Result, error) {
	if target.Len() == 0 {
		return nil, ErrEmptyTarget
	}
	if source.Len() == 0 {
		return nil, match.ErrEmptyTable
	}

	full, err := r.segments.Waveform(target.At(0).Path)
	if err != nil {
		return nil, fmt.Errorf("loading target: %w", err)
	}

	idx, err := match.NewIndex(source, r.opts.Features)
	if err != nil {
		return nil, err
	}

	seed := r.opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	workers := r.opts.Workers
	overlap := overlapping(target)
	if overlap {
		workers = 1
	}

	log := r.opts.Logger.With("target", target.At(0).SourceID)
	log.InfoContext(ctx, "reconstruction started",
		"frames", target.Len(),
		"sources", source.Len(),
		"samples", len(full),
		"tonality", r.opts.UseTonality,
		"workers", workers,
		"overlapping", overlap,
		"policy", r.opts.Policy.String(),
		"seed", seed,
	)
	started := time.Now()

	res := &Result{
		Waveform: make([]float32, len(full)),
		Usage:    make([]string, target.Len()),
		Seed:     seed,
	}

	var (
		skippedMtx sync.Mutex
		skipped    = make([]bool, target.Len())
	)

	g, gctx := errgroup.WithContext(ctx)
	// with a limit of one each Go waits for the previous frame to finish
	g.SetLimit(workers)

	for i := range target.Len() {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			rec := target.At(i)
			rng := rand.NewPCG(seed, uint64(i))

			err := r.resolve(idx, rec, rng, res, i)
			if err != nil {
				err = fmt.Errorf("frame %d (%s): %w", i, rec.FrameID, err)
				if r.opts.Policy == FailFast {
					return err
				}

				log.WarnContext(gctx, "frame skipped", "frame", i, "error", err)
				skippedMtx.Lock()
				skipped[i] = true
				skippedMtx.Unlock()
			}

			if r.opts.OnFrame != nil {
				r.opts.OnFrame(i)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// the loop may stop early on cancellation without any frame failing
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i, s := range skipped {
		if s {
			res.Skipped = append(res.Skipped, i)
		}
	}

	log.InfoContext(ctx, "reconstruction finished",
		"skipped", len(res.Skipped),
		"elapsed", time.Since(started),
	)

	return res, nil
}

// resolve handles one frame. Each call writes only its own Usage slot and the
// output range of its frame.
func (r *Reconstructor) resolve(idx *match.Index, rec *frame.Record, src rand.Source, res *Result, i int) error {
	chosen, err := r.choose(idx, rec, src)
	if err != nil {
		return err
	}

	seg, err := r.segments.Read(chosen.Path, chosen.StartSample, rec.Len())
	if err != nil {
		return err
	}

	res.Usage[i] = chosen.SourceID

	if rec.StartSample >= len(res.Waveform) {
		return nil
	}
	copy(res.Waveform[rec.StartSample:], seg)

	return nil
}

// overlapping reports whether any two frames of t share a sample position.
func overlapping(t *frame.Table) bool {
	order := make([]int, t.Len())
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		return cmp.Compare(t.At(a).StartSample, t.At(b).StartSample)
	})

	for i := 1; i < len(order); i++ {
		if t.At(order[i]).StartSample < t.At(order[i-1]).EndSample {
			return true
		}
	}
	return false
}

func (r *Reconstructor) choose(idx *match.Index, rec *frame.Record, src rand.Source) (*frame.Record, error) {
	query := idx.Query(rec)

	var (
		chosen match.Candidate
		err    error
	)
	if r.opts.UseTonality {
		rows := idx.TonalRows(rec, r.opts.Neighbors, r.opts.Tolerance)

		var cands []match.Candidate
		cands, err = idx.Nearest(query, r.opts.Neighbors, rows)
		if err != nil {
			return nil, err
		}
		chosen, err = pick.Uniform(cands, src)
	} else {
		var cands []match.Candidate
		cands, err = idx.Nearest(query, r.opts.Neighbors, nil)
		if err != nil {
			return nil, err
		}
		chosen, err = pick.Ranked(cands, r.opts.RandomFactor, src)
	}
	if err != nil {
		return nil, err
	}

	return chosen.Record, nil
}
