package vecindex

import (
	"math"
	"testing"
)

func buildIndex(t *testing.T, vectors [][]float32) *FlatL2 {
	t.Helper()
	ix, err := NewFlatL2(len(vectors[0]))
	if err != nil {
		t.Fatalf("NewFlatL2() error = %v", err)
	}
	if err := ix.Add(vectors); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	return ix
}

func TestNewFlatL2_InvalidDimension(t *testing.T) {
	for _, dim := range []int{0, -1} {
		if _, err := NewFlatL2(dim); err == nil {
			t.Errorf("NewFlatL2(%d) expected error", dim)
		}
	}
}

func TestFlatL2_SelfQueryReturnsSelf(t *testing.T) {
	vectors := [][]float32{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{0.5, 0.5, 0},
	}
	ix := buildIndex(t, vectors)

	for i, v := range vectors {
		positions, distances, err := ix.Search(v, 1)
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(positions) != 1 || positions[0] != i {
			t.Errorf("query with vector %d returned positions %v, want [%d]", i, positions, i)
		}
		if distances[0] > 1e-6 {
			t.Errorf("self distance = %v, want ~0", distances[0])
		}
	}
}

func TestFlatL2_SquaredDistances(t *testing.T) {
	ix := buildIndex(t, [][]float32{
		{0, 0},
		{3, 4},
	})

	_, distances, err := ix.Search([]float32{0, 0}, 2)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	// 3-4-5 triangle: squared distance is 25, not 5
	if math.Abs(float64(distances[1])-25) > 1e-6 {
		t.Errorf("distance = %v, want squared L2 of 25", distances[1])
	}
}

func TestFlatL2_ResultsOrderedNearestFirst(t *testing.T) {
	ix := buildIndex(t, [][]float32{
		{10, 0},
		{1, 0},
		{5, 0},
	})

	positions, distances, err := ix.Search([]float32{0, 0}, 3)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	wantOrder := []int{1, 2, 0}
	for i, want := range wantOrder {
		if positions[i] != want {
			t.Errorf("positions = %v, want %v", positions, wantOrder)
			break
		}
	}
	for i := 1; i < len(distances); i++ {
		if distances[i] < distances[i-1] {
			t.Errorf("distances not ascending: %v", distances)
			break
		}
	}
}

func TestFlatL2_KLargerThanIndex(t *testing.T) {
	ix := buildIndex(t, [][]float32{
		{1, 1},
		{2, 2},
	})

	positions, distances, err := ix.Search([]float32{0, 0}, 10)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(positions) != 2 || len(distances) != 2 {
		t.Errorf("got %d results, want 2 (all indexed vectors)", len(positions))
	}
}

func TestFlatL2_EmptyIndex(t *testing.T) {
	ix, err := NewFlatL2(3)
	if err != nil {
		t.Fatalf("NewFlatL2() error = %v", err)
	}

	if ix.NTotal() != 0 {
		t.Errorf("NTotal() = %d, want 0", ix.NTotal())
	}

	positions, distances, err := ix.Search([]float32{1, 2, 3}, 5)
	if err != nil {
		t.Fatalf("Search() on empty index error = %v", err)
	}
	if len(positions) != 0 || len(distances) != 0 {
		t.Errorf("empty index returned %d results, want 0", len(positions))
	}
}

func TestFlatL2_DimensionMismatch(t *testing.T) {
	ix := buildIndex(t, [][]float32{{1, 2, 3}})

	if err := ix.Add([][]float32{{1, 2}}); err == nil {
		t.Error("Add() with wrong dimension expected error")
	}
	if _, _, err := ix.Search([]float32{1, 2}, 1); err == nil {
		t.Error("Search() with wrong dimension expected error")
	}
}

func TestFlatL2_MixedDimensionBatchAddsNothing(t *testing.T) {
	ix, err := NewFlatL2(2)
	if err != nil {
		t.Fatalf("NewFlatL2() error = %v", err)
	}

	if err := ix.Add([][]float32{{1, 2}, {1, 2, 3}}); err == nil {
		t.Fatal("Add() with mixed dimensions expected error")
	}
	if ix.NTotal() != 0 {
		t.Errorf("NTotal() = %d after failed Add, want 0", ix.NTotal())
	}
}

func TestFlatL2_NonPositiveK(t *testing.T) {
	ix := buildIndex(t, [][]float32{{1, 1}})

	for _, k := range []int{0, -3} {
		positions, _, err := ix.Search([]float32{0, 0}, k)
		if err != nil {
			t.Fatalf("Search(k=%d) error = %v", k, err)
		}
		if len(positions) != 0 {
			t.Errorf("Search(k=%d) returned %d results, want 0", k, len(positions))
		}
	}
}
