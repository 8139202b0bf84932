// Package vecindex provides an exact, in-memory nearest-neighbor index over
// L2 distance. It is built fresh per request over a small candidate set and
// discarded afterwards, so brute force is the right trade.
package vecindex

import (
	"fmt"
	"sort"
)

// FlatL2 is a flat index over squared L2 distance. Position i in the index
// corresponds to the i-th vector added; callers rely on that bijection to
// map search hits back to their candidate records.
type FlatL2 struct {
	dim     int
	vectors [][]float32
}

// NewFlatL2 creates an empty index for vectors of the given dimension
func NewFlatL2(dim int) (*FlatL2, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("invalid index dimension: %d", dim)
	}
	return &FlatL2{dim: dim}, nil
}

// Dimension returns the vector dimension the index was built for
func (ix *FlatL2) Dimension() int {
	return ix.dim
}

// NTotal returns the number of indexed vectors
func (ix *FlatL2) NTotal() int {
	return len(ix.vectors)
}

// Add appends vectors to the index. Every vector must match the index
// dimension; mixing dimensions is an error and nothing is added.
func (ix *FlatL2) Add(vectors [][]float32) error {
	for i, v := range vectors {
		if len(v) != ix.dim {
			return fmt.Errorf("vector %d has dimension %d, index expects %d", i, len(v), ix.dim)
		}
	}
	ix.vectors = append(ix.vectors, vectors...)
	return nil
}

// Search returns the positions and squared L2 distances of the k vectors
// nearest to query, nearest first, ties broken by lower position. Distances
// are squared, the flat-index convention. An empty index yields empty
// results; a query of the wrong dimension is an error.
func (ix *FlatL2) Search(query []float32, k int) ([]int, []float32, error) {
	if len(query) != ix.dim {
		return nil, nil, fmt.Errorf("query has dimension %d, index expects %d", len(query), ix.dim)
	}

	if k <= 0 || len(ix.vectors) == 0 {
		return []int{}, []float32{}, nil
	}

	type hit struct {
		pos  int
		dist float32
	}

	hits := make([]hit, len(ix.vectors))
	for i, v := range ix.vectors {
		hits[i] = hit{pos: i, dist: squaredL2(query, v)}
	}

	sort.Slice(hits, func(a, b int) bool {
		if hits[a].dist != hits[b].dist {
			return hits[a].dist < hits[b].dist
		}
		return hits[a].pos < hits[b].pos
	})

	if k > len(hits) {
		k = len(hits)
	}

	positions := make([]int, k)
	distances := make([]float32, k)
	for i := 0; i < k; i++ {
		positions[i] = hits[i].pos
		distances[i] = hits[i].dist
	}

	return positions, distances, nil
}

// squaredL2 computes the squared Euclidean distance between two vectors of
// equal length
func squaredL2(a, b []float32) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
