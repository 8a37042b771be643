/*****************************************************************************************************************/

//	@package	github.com/lumenforge/astromatch
//	@license	Copyright © 2021-2025 observerly, adapted 2026

/*****************************************************************************************************************/

// Package matcher is the public entry point for the geometric-hashing matcher: find_transform and
// cross_match for the core registration problem, and compute_wcs for the boundary operation that
// turns a matched pixel/catalog correspondence into a fitted World Coordinate System. It wires
// together pkg/asterism, pkg/hashindex, pkg/transform and pkg/scorer; it holds no state of its
// own across calls.
package matcher

/*****************************************************************************************************************/

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/oklog/ulid"

	"github.com/lumenforge/astromatch/pkg/asterism"
	"github.com/lumenforge/astromatch/pkg/astrometry"
	"github.com/lumenforge/astromatch/pkg/catalog"
	"github.com/lumenforge/astromatch/pkg/geometry"
	"github.com/lumenforge/astromatch/pkg/hashindex"
	"github.com/lumenforge/astromatch/pkg/projection"
	"github.com/lumenforge/astromatch/pkg/scorer"
	"github.com/lumenforge/astromatch/pkg/wcs"
)

/*****************************************************************************************************************/

// Options configures find_transform and compute_wcs. The zero value is not usable directly;
// callers should start from DefaultOptions.
type Options struct {
	Asterism       int     // tuple size: 3 (triangle) or 4 (quad), default 4
	Tolerance      float64 // pixel-space inlier distance threshold, default 12
	QuadsTolerance float64 // hash-space radius for the k-d tree query, default 0.02
	MinMatch       float64 // early-exit threshold: fraction of |P| in (0,1], or an absolute count, default 0.7
	MinAngle       float64 // triangles only: minimum interior angle in radians, default 30°
	CircleTol      float64 // quads only: relative slack on the bounding-circle test, default 0.01
	Parallel       bool    // score every candidate concurrently, forgoing early exit
}

/*****************************************************************************************************************/

func DefaultOptions() Options {
	d := asterism.DefaultOptions()
	return Options{
		Asterism:       4,
		Tolerance:      12,
		QuadsTolerance: 0.02,
		MinMatch:       0.7,
		MinAngle:       d.MinAngle,
		CircleTol:      d.CircleTol,
	}
}

/*****************************************************************************************************************/

// Result is the outcome of a successful find_transform call.
type Result struct {
	Matrix  [3][3]float64
	Inliers [][2]int // (index in P, index in Q) pairs, cross-matched under Matrix
	RunID   ulid.ULID
}

/*****************************************************************************************************************/

func newRunID() ulid.ULID {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy)
}

/*****************************************************************************************************************/

func buildAsterisms(xy [][2]float64, opts Options) ([]asterism.Asterism, error) {
	pts := asterism.Points(xy)

	asterismOpts := asterism.Options{CircleTol: opts.CircleTol, MinAngle: opts.MinAngle}

	switch opts.Asterism {
	case 4:
		if len(pts) < 4 {
			return nil, fmt.Errorf("%w: need at least 4 points for quad asterisms, got %d", ErrBadInput, len(pts))
		}
		quads := asterism.BuildQuads(pts, asterismOpts)
		out := make([]asterism.Asterism, len(quads))
		for i, q := range quads {
			out[i] = q
		}
		return out, nil
	case 3:
		if len(pts) < 3 {
			return nil, fmt.Errorf("%w: need at least 3 points for triangle asterisms, got %d", ErrBadInput, len(pts))
		}
		triangles := asterism.BuildTriangles(pts, asterismOpts)
		out := make([]asterism.Asterism, len(triangles))
		for i, t := range triangles {
			out[i] = t
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: asterism must be 3 or 4, got %d", ErrBadInput, opts.Asterism)
	}
}

/*****************************************************************************************************************/

func hashVectors(asterisms []asterism.Asterism) [][]float64 {
	vecs := make([][]float64, len(asterisms))
	for i, a := range asterisms {
		vecs[i] = a.HashVector()
	}
	return vecs
}

/*****************************************************************************************************************/

// FindTransform recovers the affine matrix M such that M·Q ≈ P, given two unordered 2D point
// sets, without any a priori correspondence. Returns ErrBadInput for malformed input shape and
// ErrNoMatch when no candidate asterism pairing survives scoring.
func FindTransform(q, p [][2]float64, opts Options) (Result, error) {
	if opts.Asterism == 0 {
		opts.Asterism = 4
	}

	asterismsP, err := buildAsterisms(p, opts)
	if err != nil {
		return Result{}, err
	}

	asterismsQ, err := buildAsterisms(q, opts)
	if err != nil {
		return Result{}, err
	}

	if len(asterismsP) == 0 || len(asterismsQ) == 0 {
		return Result{}, ErrNoMatch
	}

	index := hashindex.Build(hashVectors(asterismsP))
	pairs := index.Query(hashVectors(asterismsQ), opts.QuadsTolerance)

	if len(pairs) == 0 {
		return Result{}, ErrNoMatch
	}

	candidates := make([]scorer.Candidate, len(pairs))
	for k, pair := range pairs {
		a1, b1 := asterismsP[pair.I].Pair()
		a2, b2 := asterismsQ[pair.J].Pair()

		candidates[k] = scorer.Candidate{
			I:  pair.I,
			J:  pair.J,
			V1: [2][2]float64{a1.XY(), b1.XY()},
			V2: [2][2]float64{a2.XY(), b2.XY()},
		}
	}

	scoreOpts := scorer.Options{Tolerance: opts.Tolerance, MinMatch: opts.MinMatch}

	var (
		best scorer.Result
		ok   bool
	)

	if opts.Parallel {
		best, ok = scorer.ScoreParallel(context.Background(), candidates, p, q, scoreOpts)
	} else {
		best, ok = scorer.Score(candidates, p, q, scoreOpts)
	}

	if !ok {
		return Result{}, ErrNoMatch
	}

	inliers := scorer.CrossMatch(p, geometry.Apply(best.Matrix, q), opts.Tolerance)

	return Result{Matrix: best.Matrix, Inliers: inliers, RunID: newRunID()}, nil
}

/*****************************************************************************************************************/

// CrossMatch pairs each point in a with its single nearest neighbor in b, keeping only pairs
// within tolerance. Exposed directly per the public matcher API: a caller with its own transform
// (or the one find_transform returned) can re-run this independently of find_transform.
func CrossMatch(a, b [][2]float64, tolerance float64) [][2]int {
	return scorer.CrossMatch(a, b, tolerance)
}

/*****************************************************************************************************************/

// Refine re-estimates m by least squares from its cross-matched inliers, then cross-matches
// again under the refined transform: the separate refinement operation spec 4.F describes,
// exposed for a caller that already has a candidate transform (typically the one find_transform
// returned) and wants a numerically stabilized refit. Returns ErrNoMatch if fewer than 3 inlier
// pairs are found (too little signal to refit), ErrSingular if the least-squares system itself
// cannot be solved.
func Refine(m [3][3]float64, p, q [][2]float64, tolerance float64) ([3][3]float64, [][2]int, error) {
	refined, pairs, err := scorer.Refine(m, p, q, tolerance)
	if err != nil {
		if len(pairs) < 3 {
			return m, pairs, ErrNoMatch
		}
		return m, pairs, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	return refined, pairs, nil
}

/*****************************************************************************************************************/

// ComputeWCS is the boundary operation between the core matcher and an external catalog/WCS
// collaborator: it tangent-plane-projects sources about their centroid, runs find_transform
// between the projected sources and the pixel point set, refines against cross-matched inliers,
// and fits a final linear WCS from the surviving pixel/catalog correspondences.
func ComputeWCS(pixels [][2]float64, sources []catalog.Source, opts Options) (wcs.WCS, [][2]int, error) {
	if len(sources) == 0 {
		return wcs.WCS{}, nil, fmt.Errorf("%w: no catalog sources supplied", ErrBadInput)
	}

	var ra0, dec0 float64
	for _, s := range sources {
		ra0 += s.RA
		dec0 += s.Dec
	}
	n := float64(len(sources))
	ra0 /= n
	dec0 /= n

	projected := make([][2]float64, len(sources))
	for i, s := range sources {
		x, y := projection.ConvertEquatorialToGnomic(s.RA, s.Dec, ra0, dec0)
		projected[i] = [2]float64{x, y}
	}

	result, err := FindTransform(projected, pixels, opts)
	if err != nil {
		return wcs.WCS{}, nil, err
	}

	_, pairs, err := Refine(result.Matrix, pixels, projected, opts.Tolerance)
	if err != nil {
		return wcs.WCS{}, nil, err
	}

	matchedPixels := make([][2]float64, len(pairs))
	matchedSources := make([]astrometry.ICRSEquatorialCoordinate, len(pairs))

	for i, pair := range pairs {
		matchedPixels[i] = pixels[pair[0]]
		matchedSources[i] = astrometry.ICRSEquatorialCoordinate{
			RA:  sources[pair[1]].RA,
			Dec: sources[pair[1]].Dec,
		}
	}

	fit, err := wcs.FitWCS(matchedPixels, matchedSources)
	if err != nil {
		return wcs.WCS{}, nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	return fit, pairs, nil
}

/*****************************************************************************************************************/
