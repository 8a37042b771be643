/*****************************************************************************************************************/

//	@package	github.com/lumenforge/astromatch
//	@license	Copyright © 2021-2025 observerly, adapted 2026

/*****************************************************************************************************************/

package asterism

/*****************************************************************************************************************/

import (
	"math"
	"testing"

	"github.com/lumenforge/astromatch/pkg/geometry"
)

/*****************************************************************************************************************/

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

/*****************************************************************************************************************/

func TestCombinationsLexicographicOrder(t *testing.T) {
	combos := combinations(5, 3)

	want := [][]int{
		{0, 1, 2}, {0, 1, 3}, {0, 1, 4}, {0, 2, 3}, {0, 2, 4}, {0, 3, 4},
		{1, 2, 3}, {1, 2, 4}, {1, 3, 4}, {2, 3, 4},
	}

	if len(combos) != len(want) {
		t.Fatalf("combinations(5, 3) returned %d combos; want %d", len(combos), len(want))
	}

	for i, c := range combos {
		for j := range c {
			if c[j] != want[i][j] {
				t.Errorf("combinations(5, 3)[%d] = %v; want %v", i, c, want[i])
				break
			}
		}
	}
}

/*****************************************************************************************************************/

func TestCombinationsDegenerate(t *testing.T) {
	if got := combinations(2, 3); got != nil {
		t.Errorf("combinations(2, 3) = %v; want nil", got)
	}
}

/*****************************************************************************************************************/

// square returns a unit square (0,0), (1,0), (1,1), (0,1), a classic quad asterism fixture.
func square() []Point {
	return Points([][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
}

/*****************************************************************************************************************/

func TestBuildQuadsSingleQuad(t *testing.T) {
	opts := DefaultOptions()

	quads := BuildQuads(square(), opts)

	if len(quads) != 1 {
		t.Fatalf("BuildQuads(square) returned %d quads; want 1", len(quads))
	}

	q := quads[0]

	// The diagonal of the unit square has length sqrt(2), longer than any side:
	ab := geometry.DistanceBetweenTwoCartesianPoints(q.A.X, q.A.Y, q.B.X, q.B.Y)
	if !almostEqual(ab, math.Sqrt2, 1e-9) {
		t.Errorf("|AB| = %f; want sqrt(2)", ab)
	}
}

/*****************************************************************************************************************/

func TestBuildQuadsHashInvariantUnderSimilarity(t *testing.T) {
	opts := DefaultOptions()

	base := square()
	baseQuads := BuildQuads(base, opts)

	if len(baseQuads) != 1 {
		t.Fatalf("expected exactly one base quad, got %d", len(baseQuads))
	}

	// Apply a similarity transform (rotate, scale, translate) to every point and rebuild:
	theta := 0.7
	scale := 3.4
	tx, ty := 12.0, -8.0

	cos, sin := math.Cos(theta), math.Sin(theta)

	transformed := make([][2]float64, len(base))
	for i, p := range base {
		x, y := p.X, p.Y
		transformed[i] = [2]float64{
			scale*(cos*x-sin*y) + tx,
			scale*(sin*x+cos*y) + ty,
		}
	}

	transformedQuads := BuildQuads(Points(transformed), opts)

	if len(transformedQuads) != 1 {
		t.Fatalf("expected exactly one transformed quad, got %d", len(transformedQuads))
	}

	for i := 0; i < 4; i++ {
		if !almostEqual(baseQuads[0].Hash[i], transformedQuads[0].Hash[i], 1e-6) {
			t.Errorf("Hash[%d] = %f; want %f (similarity-invariant)", i, transformedQuads[0].Hash[i], baseQuads[0].Hash[i])
		}
	}
}

/*****************************************************************************************************************/

func TestBuildQuadsRejectsNonConvexOutlier(t *testing.T) {
	opts := DefaultOptions()
	opts.CircleTol = 0.01

	// The widest pair is (0,0)-(1,0); (0.5, 0.85) lies 0.85 from its midpoint, outside the
	// bounding circle of radius 0.505, so the only 4-subset fails the circle test and no quads
	// are produced.
	pts := Points([][2]float64{{0, 0}, {1, 0}, {0.5, 0.85}, {0.5, 0.1}})

	quads := BuildQuads(pts, opts)

	if len(quads) != 0 {
		t.Errorf("BuildQuads() with an outlier returned %d quads; want 0", len(quads))
	}
}

/*****************************************************************************************************************/

func TestBuildQuadsOrderedByDecreasingAB(t *testing.T) {
	opts := DefaultOptions()
	opts.CircleTol = 1.0 // generous, so every 5-choose-4 subset is likely to survive

	pts := Points([][2]float64{{0, 0}, {1, 0}, {2, 0.1}, {1, 1}, {0.5, 0.9}})

	quads := BuildQuads(pts, opts)

	for i := 1; i < len(quads); i++ {
		prev := geometry.DistanceBetweenTwoCartesianPoints(quads[i-1].A.X, quads[i-1].A.Y, quads[i-1].B.X, quads[i-1].B.Y)
		cur := geometry.DistanceBetweenTwoCartesianPoints(quads[i].A.X, quads[i].A.Y, quads[i].B.X, quads[i].B.Y)

		if cur > prev {
			t.Errorf("quads[%d] |AB| = %f > quads[%d] |AB| = %f; want decreasing order", i, cur, i-1, prev)
		}
	}
}

/*****************************************************************************************************************/

func TestBuildTrianglesFiltersSliverAngle(t *testing.T) {
	opts := DefaultOptions()

	// A near-collinear sliver triangle; its smallest angle is well under the 30 degree default.
	pts := Points([][2]float64{{0, 0}, {10, 0.01}, {20, 0}})

	triangles := BuildTriangles(pts, opts)

	if len(triangles) != 0 {
		t.Errorf("BuildTriangles() on a sliver triangle returned %d triangles; want 0", len(triangles))
	}
}

/*****************************************************************************************************************/

func TestBuildTrianglesHashInvariantUnderSimilarity(t *testing.T) {
	opts := DefaultOptions()

	base := Points([][2]float64{{0, 0}, {4, 0}, {0, 3}})
	baseTriangles := BuildTriangles(base, opts)

	if len(baseTriangles) != 1 {
		t.Fatalf("expected exactly one base triangle, got %d", len(baseTriangles))
	}

	theta := -1.1
	scale := 0.6
	tx, ty := -3.0, 9.0
	cos, sin := math.Cos(theta), math.Sin(theta)

	transformed := make([][2]float64, len(base))
	for i, p := range base {
		x, y := p.X, p.Y
		transformed[i] = [2]float64{
			scale*(cos*x-sin*y) + tx,
			scale*(sin*x+cos*y) + ty,
		}
	}

	transformedTriangles := BuildTriangles(Points(transformed), opts)

	if len(transformedTriangles) != 1 {
		t.Fatalf("expected exactly one transformed triangle, got %d", len(transformedTriangles))
	}

	for i := 0; i < 2; i++ {
		if !almostEqual(baseTriangles[0].Hash[i], transformedTriangles[0].Hash[i], 1e-6) {
			t.Errorf("Hash[%d] = %f; want %f (similarity-invariant)", i, transformedTriangles[0].Hash[i], baseTriangles[0].Hash[i])
		}
	}
}

/*****************************************************************************************************************/

func TestTriangleHashSortedAscending(t *testing.T) {
	opts := DefaultOptions()

	triangles := BuildTriangles(Points([][2]float64{{0, 0}, {5, 0}, {1, 4}}), opts)

	if len(triangles) != 1 {
		t.Fatalf("expected one triangle, got %d", len(triangles))
	}

	if triangles[0].Hash[0] > triangles[0].Hash[1] {
		t.Errorf("Hash = %v; want ascending order", triangles[0].Hash)
	}
}

/*****************************************************************************************************************/
