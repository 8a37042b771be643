/*****************************************************************************************************************/

//	@package	github.com/lumenforge/astromatch
//	@license	Copyright © 2021-2025 observerly, adapted 2026

/*****************************************************************************************************************/

// Package asterism builds canonicalized, hashable point tuples (quads and triangles) out of an
// unordered 2D point set. It generalizes the teacher's pkg/quad, which only ever built quads
// normalized into a unit square, into the two tuple sizes a geometric-hashing matcher needs.
package asterism

/*****************************************************************************************************************/

import "math"

/*****************************************************************************************************************/

// Point is a single member of a point set, carrying its position in the original slice so that a
// matched asterism can be traced back to a correspondence between two index sets.
type Point struct {
	Index int
	X, Y  float64
}

/*****************************************************************************************************************/

func (p Point) XY() [2]float64 {
	return [2]float64{p.X, p.Y}
}

/*****************************************************************************************************************/

// Points wraps a set of (x, y) pairs as indexed Points, the common input to BuildQuads and
// BuildTriangles.
func Points(xy [][2]float64) []Point {
	pts := make([]Point, len(xy))
	for i, p := range xy {
		pts[i] = Point{Index: i, X: p[0], Y: p[1]}
	}
	return pts
}

/*****************************************************************************************************************/

// Options bounds the asterism builder's filtering behaviour. Zero-value Options is not usable
// directly; callers should start from DefaultOptions.
type Options struct {
	CircleTol float64 // quads: relative slack on the bounding-circle test, default 0.01
	MinAngle  float64 // triangles: minimum interior angle in radians, default 30°
}

/*****************************************************************************************************************/

func DefaultOptions() Options {
	return Options{
		CircleTol: 0.01,
		MinAngle:  30 * math.Pi / 180,
	}
}

/*****************************************************************************************************************/

// Asterism is a canonicalized, hashed point tuple: either a Quad or a Triangle. Both the quad and
// the triangle hash functions are pure and deterministic for the same canonicalized tuple, so
// hashes computed from two different point sets can be compared directly by a hash index.
type Asterism interface {
	// HashVector returns the asterism's invariant descriptor: 4 components for a quad, 2 for a
	// triangle.
	HashVector() []float64

	// Pair returns the two points a closed-form similarity estimate is built from.
	Pair() (Point, Point)

	// Points returns every point bound to the asterism, in canonical order.
	Points() []Point
}

/*****************************************************************************************************************/

// combinations returns every k-combination of {0, ..., n-1}, in lexicographic order, as in
// spec 4.B step 1 ("enumerate all k-subsets ... lexicographically").
func combinations(n, k int) [][]int {
	if k <= 0 || k > n {
		return nil
	}

	indices := make([]int, k)
	for i := range indices {
		indices[i] = i
	}

	var out [][]int

	for {
		combo := make([]int, k)
		copy(combo, indices)
		out = append(out, combo)

		// Find the rightmost index that can be incremented:
		i := k - 1
		for i >= 0 && indices[i] == n-k+i {
			i--
		}
		if i < 0 {
			break
		}

		indices[i]++
		for j := i + 1; j < k; j++ {
			indices[j] = indices[j-1] + 1
		}
	}

	return out
}

/*****************************************************************************************************************/
