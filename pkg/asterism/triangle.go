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

// Triangle is a canonicalized 3-point asterism: vertices sorted by increasing distance from
// their centroid. Hash is the two smallest interior angles, ascending, which is additionally
// invariant to reflection (unlike the quad hash).
type Triangle struct {
	A, B, C Point
	Hash    [2]float64
}

/*****************************************************************************************************************/

func (t Triangle) HashVector() []float64 {
	return t.Hash[:]
}

/*****************************************************************************************************************/

func (t Triangle) Pair() (Point, Point) {
	return t.A, t.B
}

/*****************************************************************************************************************/

func (t Triangle) Points() []Point {
	return []Point{t.A, t.B, t.C}
}

/*****************************************************************************************************************/

// BuildTriangles enumerates every 3-subset of points, canonicalizes each by distance from its
// centroid, discards tuples with an interior angle at or below opts.MinAngle, and computes the
// sorted two-smallest-angle hash. No post-sort is applied, per spec 4.B step 4.
func BuildTriangles(points []Point, opts Options) []Triangle {
	triangles := make([]Triangle, 0)

	for _, combo := range combinations(len(points), 3) {
		tuple := [3]Point{points[combo[0]], points[combo[1]], points[combo[2]]}

		t, ok := canonicalizeTriangle(tuple, opts.MinAngle)
		if !ok {
			continue
		}

		triangles = append(triangles, t)
	}

	return triangles
}

/*****************************************************************************************************************/

func canonicalizeTriangle(tuple [3]Point, minAngle float64) (Triangle, bool) {
	cx := (tuple[0].X + tuple[1].X + tuple[2].X) / 3
	cy := (tuple[0].Y + tuple[1].Y + tuple[2].Y) / 3

	ordered := make([]Point, 3)
	copy(ordered, tuple[:])

	sort.SliceStable(ordered, func(i, j int) bool {
		di := geometry.DistanceBetweenTwoCartesianPoints(cx, cy, ordered[i].X, ordered[i].Y)
		dj := geometry.DistanceBetweenTwoCartesianPoints(cx, cy, ordered[j].X, ordered[j].Y)
		if di != dj {
			return di < dj
		}
		if ordered[i].X != ordered[j].X {
			return ordered[i].X < ordered[j].X
		}
		return ordered[i].Y < ordered[j].Y
	})

	A, B, C := ordered[0], ordered[1], ordered[2]

	angles, err := geometry.TriangleAngles([3][2]float64{A.XY(), B.XY(), C.XY()})
	if err != nil {
		return Triangle{}, false
	}

	for _, a := range angles {
		if a <= minAngle {
			return Triangle{}, false
		}
	}

	sorted := angles[:]
	sort.Float64s(sorted)

	return Triangle{A: A, B: B, C: C, Hash: [2]float64{sorted[0], sorted[1]}}, true
}

/*****************************************************************************************************************/
