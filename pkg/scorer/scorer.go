/*****************************************************************************************************************/

//	@package	github.com/lumenforge/astromatch
//	@license	Copyright © 2021-2025 observerly, adapted 2026

/*****************************************************************************************************************/

// Package scorer implements the RANSAC-style candidate scoring loop: given a list of hash-space
// candidate pairs, estimate a transform from each, count inliers under cross-match, and pick the
// best. It also exposes cross_match and count_cross_match as standalone operations, since the
// refinement step and the caller-facing matcher both need them independently of the loop.
package scorer

/*****************************************************************************************************************/

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/lumenforge/astromatch/pkg/geometry"
	"github.com/lumenforge/astromatch/pkg/transform"
)

/*****************************************************************************************************************/

// Candidate is one hash-space correspondence between an asterism bound in set P (by its bound
// pair V1) and an asterism bound in set Q (by its bound pair V2).
type Candidate struct {
	I, J int
	V1   [2][2]float64
	V2   [2][2]float64
}

/*****************************************************************************************************************/

// Options configures the scoring loop.
type Options struct {
	Tolerance float64 // pixel-space inlier distance threshold, default 12
	MinMatch  float64 // early-exit threshold: values in (0, 1] are a fraction of |P|, values > 1 an absolute count. Zero disables early exit.
	Parallel  bool    // score every candidate concurrently and forgo early exit, per spec 5
}

/*****************************************************************************************************************/

func DefaultOptions() Options {
	return Options{
		Tolerance: 12,
		MinMatch:  0.7,
	}
}

/*****************************************************************************************************************/

// Result is the outcome of scoring one candidate.
type Result struct {
	Candidate Candidate
	Matrix    [3][3]float64
	Score     int
}

/*****************************************************************************************************************/

// CrossMatch pairs each point in a with its single nearest neighbor in b, keeping only pairs
// whose distance is below tolerance. Not symmetric, not injective on b.
func CrossMatch(a, b [][2]float64, tolerance float64) [][2]int {
	pairs := make([][2]int, 0)

	for i, p := range a {
		best := -1
		bestDist := math.Inf(1)

		for j, q := range b {
			d := geometry.DistanceBetweenTwoCartesianPoints(p[0], p[1], q[0], q[1])
			if d < bestDist {
				bestDist = d
				best = j
			}
		}

		if best >= 0 && bestDist < tolerance {
			pairs = append(pairs, [2]int{i, best})
		}
	}

	return pairs
}

/*****************************************************************************************************************/

// CountCrossMatch returns the number of points in a whose nearest neighbor in b is within
// tolerance: a fast-path scorer that skips building the pair list.
func CountCrossMatch(a, b [][2]float64, tolerance float64) int {
	count := 0

	for _, p := range a {
		bestDist := math.Inf(1)

		for _, q := range b {
			d := geometry.DistanceBetweenTwoCartesianPoints(p[0], p[1], q[0], q[1])
			if d < bestDist {
				bestDist = d
			}
		}

		if bestDist < tolerance {
			count++
		}
	}

	return count
}

/*****************************************************************************************************************/

// minMatchThreshold resolves the MinMatch option (an absolute count, or a fraction of nP) into
// an integer inlier count. A non-positive MinMatch disables early exit.
func minMatchThreshold(minMatch float64, nP int) int {
	if minMatch <= 0 {
		return 0
	}
	if minMatch <= 1 {
		return int(math.Ceil(minMatch * float64(nP)))
	}
	return int(minMatch)
}

/*****************************************************************************************************************/

// Score runs the sequential reference scoring loop (spec 4.F): candidates are evaluated in the
// order given, which must already be the deterministic order the hash index's radius query
// emits them in. Returns false if no candidate exists or every candidate scores zero inliers.
func Score(candidates []Candidate, p, q [][2]float64, opts Options) (Result, bool) {
	if len(candidates) == 0 {
		return Result{}, false
	}

	if opts.Parallel {
		return ScoreParallel(context.Background(), candidates, p, q, opts)
	}

	threshold := minMatchThreshold(opts.MinMatch, len(p))

	best := Result{Score: -1}

	for _, c := range candidates {
		// V2 onto V1: m must map Q onto P, since it's applied to q and cross-matched against p.
		m, err := transform.EstimateSimilarity(c.V2, c.V1)
		if err != nil {
			continue
		}

		score := CountCrossMatch(p, geometry.Apply(m, q), opts.Tolerance)

		if score > best.Score {
			best = Result{Candidate: c, Matrix: m, Score: score}
		}

		if threshold > 0 && score >= threshold {
			return best, true
		}
	}

	if best.Score <= 0 {
		return Result{}, false
	}

	return best, true
}

/*****************************************************************************************************************/

// ScoreParallel scores every candidate concurrently over golang.org/x/sync/errgroup, forgoing
// early exit as spec 5 describes, then picks the maximum score. Ties are broken by preferring
// the candidate that appears earliest in candidates, preserving the same determinism the
// sequential path gets for free from evaluation order.
func ScoreParallel(ctx context.Context, candidates []Candidate, p, q [][2]float64, opts Options) (Result, bool) {
	if len(candidates) == 0 {
		return Result{}, false
	}

	results := make([]Result, len(candidates))
	ok := make([]bool, len(candidates))

	g, _ := errgroup.WithContext(ctx)

	for i, c := range candidates {
		i, c := i, c

		g.Go(func() error {
			m, err := transform.EstimateSimilarity(c.V2, c.V1)
			if err != nil {
				return nil
			}

			score := CountCrossMatch(p, geometry.Apply(m, q), opts.Tolerance)

			results[i] = Result{Candidate: c, Matrix: m, Score: score}
			ok[i] = true

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, false
	}

	best := Result{Score: -1}

	for i, r := range results {
		if ok[i] && r.Score > best.Score {
			best = r
		}
	}

	if best.Score <= 0 {
		return Result{}, false
	}

	return best, true
}

/*****************************************************************************************************************/

// Refine re-estimates the transform by least squares from the inlier correspondences cross_match
// finds under m, then cross-matches again under the refined transform. Two passes are sufficient
// because the second pass primarily stabilizes numerically, per spec 4.F step 3.
func Refine(m [3][3]float64, p, q [][2]float64, tolerance float64) ([3][3]float64, [][2]int, error) {
	pairs := CrossMatch(p, geometry.Apply(m, q), tolerance)

	if len(pairs) < 3 {
		return m, pairs, errors.New("too few inliers to refine: need at least 3")
	}

	src := make([][2]float64, len(pairs))
	dst := make([][2]float64, len(pairs))

	for k, pair := range pairs {
		src[k] = q[pair[1]]
		dst[k] = p[pair[0]]
	}

	refined, err := transform.EstimateAffine(src, dst)
	if err != nil {
		return m, pairs, fmt.Errorf("refine: %w", err)
	}

	finalPairs := CrossMatch(p, geometry.Apply(refined, q), tolerance)

	return refined, finalPairs, nil
}

/*****************************************************************************************************************/
