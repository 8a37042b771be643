/*****************************************************************************************************************/

//	@package	github.com/lumenforge/astromatch
//	@license	Copyright © 2021-2025 observerly, adapted 2026

/*****************************************************************************************************************/

package asterism

/*****************************************************************************************************************/

import (
	"sort"

	"github.com/lumenforge/astromatch/pkg/geometry"
)

/*****************************************************************************************************************/

// Quad is a canonicalized 4-point asterism: A and B are the two most widely separated points
// (the "diagonal"), C and D are the remaining two points ordered by increasing distance from A.
// Hash is the Lang2009 u1/u2 invariant: a point whose hash lies within a small radius of another
// quad's hash, across two independently built point sets, is a strong correspondence candidate.
type Quad struct {
	A, B, C, D Point
	Hash       [4]float64
}

/*****************************************************************************************************************/

func (q Quad) HashVector() []float64 {
	return q.Hash[:]
}

/*****************************************************************************************************************/

func (q Quad) Pair() (Point, Point) {
	return q.A, q.B
}

/*****************************************************************************************************************/

func (q Quad) Points() []Point {
	return []Point{q.A, q.B, q.C, q.D}
}

/*****************************************************************************************************************/

// BuildQuads enumerates every 4-subset of points, canonicalizes each into (A, B, C, D), discards
// any tuple that fails the bounding-circle test, and orders the survivors by decreasing |AB| so
// that the geometrically most stable asterisms are tried first.
func BuildQuads(points []Point, opts Options) []Quad {
	quads := make([]Quad, 0)

	for _, combo := range combinations(len(points), 4) {
		tuple := [4]Point{points[combo[0]], points[combo[1]], points[combo[2]], points[combo[3]]}

		q, ok := canonicalizeQuad(tuple, opts.CircleTol)
		if !ok {
			continue
		}

		quads = append(quads, q)
	}

	sort.SliceStable(quads, func(i, j int) bool {
		return abLength(quads[i]) > abLength(quads[j])
	})

	return quads
}

/*****************************************************************************************************************/

func abLength(q Quad) float64 {
	return geometry.DistanceBetweenTwoCartesianPoints(q.A.X, q.A.Y, q.B.X, q.B.Y)
}

/*****************************************************************************************************************/

// canonicalizeQuad picks A and B as the most widely separated pair in the tuple (the point with
// the larger original index becomes A, fixing the A/B sign convention), sorts the remaining two
// points by increasing distance from A, applies the bounding-circle filter, and computes the hash.
func canonicalizeQuad(tuple [4]Point, circleTol float64) (Quad, bool) {
	maxDist := -1.0
	var ai, bi int

	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			d := geometry.DistanceBetweenTwoCartesianPoints(tuple[i].X, tuple[i].Y, tuple[j].X, tuple[j].Y)
			if d > maxDist {
				maxDist = d
				ai, bi = i, j
			}
		}
	}

	p1, p2 := tuple[ai], tuple[bi]

	var A, B Point
	if p1.Index > p2.Index {
		A, B = p1, p2
	} else {
		A, B = p2, p1
	}

	var remaining []Point
	for i := 0; i < 4; i++ {
		if i != ai && i != bi {
			remaining = append(remaining, tuple[i])
		}
	}

	sort.SliceStable(remaining, func(i, j int) bool {
		di := geometry.DistanceBetweenTwoCartesianPoints(A.X, A.Y, remaining[i].X, remaining[i].Y)
		dj := geometry.DistanceBetweenTwoCartesianPoints(A.X, A.Y, remaining[j].X, remaining[j].Y)
		return di < dj
	})

	C, D := remaining[0], remaining[1]

	if maxDist == 0 {
		return Quad{}, false
	}

	if !withinBoundingCircle(A, B, C, circleTol) || !withinBoundingCircle(A, B, D, circleTol) {
		return Quad{}, false
	}

	h := maxDist
	u1, u2 := geometry.U1U2(A.XY(), B.XY())

	hash := [4]float64{
		geometry.ProjectOntoAxis(C.XY(), A.XY(), u1) / h,
		geometry.ProjectOntoAxis(D.XY(), A.XY(), u1) / h,
		geometry.ProjectOntoAxis(C.XY(), A.XY(), u2) / h,
		geometry.ProjectOntoAxis(D.XY(), A.XY(), u2) / h,
	}

	return Quad{A: A, B: B, C: C, D: D, Hash: hash}, true
}

/*****************************************************************************************************************/

// withinBoundingCircle reports whether p lies within (1 + circleTol)·|AB|/2 of the midpoint of A-B,
// the quad validity test from spec 4.B step 3.
func withinBoundingCircle(A, B, p Point, circleTol float64) bool {
	mx, my := (A.X+B.X)/2, (A.Y+B.Y)/2
	radius := (1 + circleTol) * geometry.DistanceBetweenTwoCartesianPoints(A.X, A.Y, B.X, B.Y) / 2
	return geometry.DistanceBetweenTwoCartesianPoints(mx, my, p.X, p.Y) <= radius
}

/*****************************************************************************************************************/
