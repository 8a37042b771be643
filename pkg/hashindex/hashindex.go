/*****************************************************************************************************************/

//	@package	github.com/lumenforge/astromatch
//	@license	Copyright © 2021-2025 observerly, adapted 2026

/*****************************************************************************************************************/

// Package hashindex builds a k-d tree over a set of asterism hash vectors and answers radius
// queries against it: "every hash within distance r of this one", not just the single nearest.
// This is the deliberate replacement for the teacher's pkg/spatial, which wraps
// gonum.org/v1/gonum/spatial/vptree's single-nearest-neighbour query — the legacy approach that
// drops plausible correspondences whenever the true match isn't the closest one in hash space.
package hashindex

/*****************************************************************************************************************/

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/kdtree"
)

/*****************************************************************************************************************/

// hashPoint binds a hash vector to the index of the asterism it was computed from, so a match
// found in hash space can be traced back to the asterism (and from there, the point
// correspondence) it came from.
type hashPoint struct {
	index int
	vec   []float64
}

/*****************************************************************************************************************/

func (p hashPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(hashPoint)
	return p.vec[d] - q.vec[d]
}

/*****************************************************************************************************************/

func (p hashPoint) Dims() int {
	return len(p.vec)
}

/*****************************************************************************************************************/

func (p hashPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(hashPoint)
	var sum float64
	for i := range p.vec {
		d := p.vec[i] - q.vec[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

/*****************************************************************************************************************/

// hashPoints is the backing slice a kdtree.Tree is built over; it implements kdtree.Interface.
type hashPoints []hashPoint

/*****************************************************************************************************************/

func (s hashPoints) Index(i int) kdtree.Comparable         { return s[i] }
func (s hashPoints) Len() int                              { return len(s) }
func (s hashPoints) Slice(start, end int) kdtree.Interface { return s[start:end] }

/*****************************************************************************************************************/

// Pivot fully sorts the slice along dimension d in place and returns its midpoint. A full sort
// is a valid partition (every element before the pivot is <=, every element after is >=); the
// package's own median-of-medians helpers for Pivot aren't part of its exported surface, so this
// keeps the bookkeeping of hashPoint's extra index field straightforward to get right.
func (s hashPoints) Pivot(d kdtree.Dim) int {
	sort.Sort(byDim{hashPoints: s, dim: d})
	return len(s) / 2
}

/*****************************************************************************************************************/

type byDim struct {
	hashPoints
	dim kdtree.Dim
}

func (b byDim) Less(i, j int) bool {
	return b.hashPoints[i].vec[b.dim] < b.hashPoints[j].vec[b.dim]
}

func (b byDim) Swap(i, j int) {
	b.hashPoints[i], b.hashPoints[j] = b.hashPoints[j], b.hashPoints[i]
}

/*****************************************************************************************************************/

// Index is a k-d tree over the hash vectors of one asterism set.
type Index struct {
	tree *kdtree.Tree
}

/*****************************************************************************************************************/

// Build indexes the given hash vectors; vectors[i] is the hash of the asterism at original
// index i in the set this index is built over.
func Build(vectors [][]float64) *Index {
	points := make(hashPoints, len(vectors))
	for i, v := range vectors {
		points[i] = hashPoint{index: i, vec: v}
	}

	return &Index{tree: kdtree.New(points, true)}
}

/*****************************************************************************************************************/

// Pair is a correspondence between an asterism index in the built set (I) and one in the
// queried set (J), together with the Euclidean distance between their hashes.
type Pair struct {
	I, J int
	Dist float64
}

/*****************************************************************************************************************/

// Query performs a radius query for every hash vector in queries against the index, within
// Euclidean distance radius, and returns every (I, J) pair found.
//
// Ordering is deterministic, per spec's ordering guarantee: pairs are grouped by query index J
// in input order, and within a group sorted by distance ascending then by I ascending, so ties
// in hash-space distance break lexicographically on candidate index rather than on map or
// traversal order.
func (idx *Index) Query(queries [][]float64, radius float64) []Pair {
	var pairs []Pair

	for j, q := range queries {
		keeper := &radiusKeeper{radius: radius}
		idx.tree.NearestSet(keeper, hashPoint{index: -1, vec: q})

		sort.Slice(keeper.found, func(a, b int) bool {
			if keeper.found[a].Dist != keeper.found[b].Dist {
				return keeper.found[a].Dist < keeper.found[b].Dist
			}
			return keeper.found[a].Comparable.(hashPoint).index < keeper.found[b].Comparable.(hashPoint).index
		})

		for _, f := range keeper.found {
			pairs = append(pairs, Pair{I: f.Comparable.(hashPoint).index, J: j, Dist: f.Dist})
		}
	}

	return pairs
}

/*****************************************************************************************************************/

// radiusKeeper implements kdtree.Keeper by retaining every candidate within a fixed radius,
// rather than the nearest k. This is the radius-query equivalent of kdtree.NewDistKeeper,
// written out explicitly so the result ordering above is fully under this package's control.
type radiusKeeper struct {
	radius float64
	found  []kdtree.ComparableDist
}

/*****************************************************************************************************************/

func (k *radiusKeeper) Keep(c kdtree.ComparableDist) {
	if c.Dist <= k.radius {
		k.found = append(k.found, c)
	}
}

/*****************************************************************************************************************/

func (k *radiusKeeper) Max() float64 {
	return k.radius
}

/*****************************************************************************************************************/
