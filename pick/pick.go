// SPDX-License-Identifier: EPL-2.0

package pick

import (
	"fmt"
	"math/rand/v2"

	"github.com/ik5/audmosaic/match"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// Nearest returns the first (closest) candidate.
func Nearest(cands []match.Candidate) (match.Candidate, error) {
	if len(cands) == 0 {
		return match.Candidate{}, ErrNoCandidates
	}
	return cands[0], nil
}

// Uniform returns any candidate with equal probability.
func Uniform(cands []match.Candidate, src rand.Source) (match.Candidate, error) {
	if len(cands) == 0 {
		return match.Candidate{}, ErrNoCandidates
	}
	return cands[rand.New(src).IntN(len(cands))], nil
}

// Weights returns the normalized selection weights for k ranked candidates:
// w_i = 1 - i*factor/(k-1), so the nearest gets the most weight and the
// farthest gets 1-factor before normalization.
func Weights(k int, factor float64) []float64 {
	if k <= 0 {
		return nil
	}
	if k == 1 {
		return []float64{1}
	}

	w := make([]float64, k)
	step := factor / float64(k-1)
	var sum float64
	for i := range w {
		w[i] = 1 - float64(i)*step
		sum += w[i]
	}
	for i := range w {
		w[i] /= sum
	}

	return w
}

// Ranked samples a candidate using Weights. A factor of 0 always returns the
// nearest candidate.
func Ranked(cands []match.Candidate, factor float64, src rand.Source) (match.Candidate, error) {
	if factor < 0 || factor > 1 {
		return match.Candidate{}, fmt.Errorf("%w: %v", ErrInvalidFactor, factor)
	}
	if factor == 0 || len(cands) == 1 {
		return Nearest(cands)
	}
	if len(cands) == 0 {
		return match.Candidate{}, ErrNoCandidates
	}

	w := sampleuv.NewWeighted(Weights(len(cands), factor), src)
	i, ok := w.Take()
	if !ok {
		return cands[0], nil
	}

	return cands[i], nil
}
