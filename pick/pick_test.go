// SPDX-License-Identifier: EPL-2.0

package pick

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/ik5/audmosaic/match"
)

func candidates(k int) []match.Candidate {
	cands := make([]match.Candidate, k)
	for i := range cands {
		cands[i] = match.Candidate{Row: i, Distance: float64(i)}
	}
	return cands
}

func TestWeights(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		k      int
		factor float64
		raw    []float64
	}{
		{"no randomness", 3, 0, []float64{1, 1, 1}},
		{"default factor", 3, 0.2, []float64{1, 0.9, 0.8}},
		{"full factor", 5, 1, []float64{1, 0.75, 0.5, 0.25, 0}},
		{"single candidate", 1, 0.5, []float64{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var sum float64
			for _, r := range tt.raw {
				sum += r
			}

			got := Weights(tt.k, tt.factor)
			if len(got) != len(tt.raw) {
				t.Fatalf("len(Weights) = %d, want %d", len(got), len(tt.raw))
			}
			for i := range got {
				if want := tt.raw[i] / sum; math.Abs(got[i]-want) > 1e-12 {
					t.Errorf("w[%d] = %v, want %v", i, got[i], want)
				}
			}
		})
	}
}

func TestRanked_ZeroFactorIsDeterministic(t *testing.T) {
	t.Parallel()

	cands := candidates(10)
	src := rand.NewPCG(1, 1)
	for range 100 {
		got, err := Ranked(cands, 0, src)
		if err != nil {
			t.Fatalf("Ranked() error = %v", err)
		}
		if got.Row != 0 {
			t.Fatalf("Ranked() row = %d, want 0", got.Row)
		}
	}
}

func TestRanked_FrequenciesFollowWeights(t *testing.T) {
	t.Parallel()

	const (
		k      = 10
		factor = 0.8
		draws  = 200000
	)

	cands := candidates(k)
	src := rand.NewPCG(42, 24)
	counts := make([]int, k)
	for range draws {
		got, err := Ranked(cands, factor, src)
		if err != nil {
			t.Fatalf("Ranked() error = %v", err)
		}
		counts[got.Row]++
	}

	for i, w := range Weights(k, factor) {
		freq := float64(counts[i]) / draws
		// ~5 standard deviations for a binomial proportion at this sample size
		tol := 5 * math.Sqrt(w*(1-w)/draws)
		if math.Abs(freq-w) > tol {
			t.Errorf("rank %d: frequency %.4f, want %.4f ± %.4f", i, freq, w, tol)
		}
	}
}

func TestUniform_CoversAllCandidates(t *testing.T) {
	t.Parallel()

	cands := candidates(4)
	src := rand.NewPCG(3, 4)
	seen := make(map[int]int)
	for range 4000 {
		got, err := Uniform(cands, src)
		if err != nil {
			t.Fatalf("Uniform() error = %v", err)
		}
		seen[got.Row]++
	}

	for i := range cands {
		if seen[i] < 800 {
			t.Errorf("row %d picked %d times out of 4000", i, seen[i])
		}
	}
}

func TestErrors(t *testing.T) {
	t.Parallel()

	src := rand.NewPCG(0, 0)

	if _, err := Nearest(nil); !errors.Is(err, ErrNoCandidates) {
		t.Errorf("Nearest(nil) error = %v", err)
	}
	if _, err := Uniform(nil, src); !errors.Is(err, ErrNoCandidates) {
		t.Errorf("Uniform(nil) error = %v", err)
	}
	if _, err := Ranked(nil, 0.5, src); !errors.Is(err, ErrNoCandidates) {
		t.Errorf("Ranked(nil) error = %v", err)
	}
	if _, err := Ranked(candidates(3), 1.5, src); !errors.Is(err, ErrInvalidFactor) {
		t.Errorf("Ranked(factor 1.5) error = %v", err)
	}
}
