/*****************************************************************************************************************/

//	@package	github.com/lumenforge/astromatch
//	@license	Copyright © 2021-2025 observerly, adapted 2026

/*****************************************************************************************************************/

package hashindex

/*****************************************************************************************************************/

import "testing"

/*****************************************************************************************************************/

func TestQueryFindsExactMatch(t *testing.T) {
	built := [][]float64{
		{0.1, 0.2, 0.3, 0.4},
		{0.9, 0.8, 0.7, 0.6},
		{0.5, 0.5, 0.5, 0.5},
	}

	idx := Build(built)

	queries := [][]float64{
		{0.1, 0.2, 0.3, 0.4},
	}

	pairs := idx.Query(queries, 0.001)

	if len(pairs) != 1 {
		t.Fatalf("Query() returned %d pairs; want 1", len(pairs))
	}

	if pairs[0].I != 0 || pairs[0].J != 0 {
		t.Errorf("Query() pair = %+v; want I=0, J=0", pairs[0])
	}
}

/*****************************************************************************************************************/

func TestQueryFindsAllWithinRadiusNotJustNearest(t *testing.T) {
	built := [][]float64{
		{0.0, 0.0},
		{0.01, 0.0},
		{0.02, 0.0},
		{10.0, 10.0},
	}

	idx := Build(built)

	pairs := idx.Query([][]float64{{0.0, 0.0}}, 0.03)

	if len(pairs) != 3 {
		t.Fatalf("Query() returned %d pairs; want 3 (the outlier at (10,10) must be excluded)", len(pairs))
	}

	// Ascending by distance: exact match first, then 0.01, then 0.02.
	want := []int{0, 1, 2}
	for i, p := range pairs {
		if p.I != want[i] {
			t.Errorf("pairs[%d].I = %d; want %d", i, p.I, want[i])
		}
	}
}

/*****************************************************************************************************************/

func TestQueryEmptyWhenNoneWithinRadius(t *testing.T) {
	idx := Build([][]float64{{0, 0}, {5, 5}})

	pairs := idx.Query([][]float64{{100, 100}}, 0.01)

	if len(pairs) != 0 {
		t.Errorf("Query() returned %d pairs; want 0", len(pairs))
	}
}

/*****************************************************************************************************************/

func TestQueryMultipleQueriesGroupedInOrder(t *testing.T) {
	idx := Build([][]float64{{0, 0}, {1, 1}})

	pairs := idx.Query([][]float64{{0, 0}, {1, 1}}, 0.001)

	if len(pairs) != 2 {
		t.Fatalf("Query() returned %d pairs; want 2", len(pairs))
	}

	if pairs[0].J != 0 || pairs[1].J != 1 {
		t.Errorf("Query() pairs out of query order: %+v", pairs)
	}
}

/*****************************************************************************************************************/
