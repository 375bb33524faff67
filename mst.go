package phdim

import (
	"math"
	"sort"
)

// PrimMST computes a minimum spanning tree using Prim's algorithm on a dense
// pairwise distance matrix. distMatrix is flat []float64, m×m row-major, as
// produced by ComputePairwiseDistances. The implied graph is complete, so the
// tree always has exactly m-1 edges.
//
// Returns the edges as [][3]float64 where each edge is [from, to, weight].
// For m <= 1 the result is nil (an empty tree).
func PrimMST(distMatrix []float64, m int) [][3]float64 {
	if m <= 1 {
		return nil
	}

	inTree := make([]bool, m)
	currentDistances := make([]float64, m)

	// Start from node 0: seed distances from its row in the matrix.
	inTree[0] = true
	currentNode := 0
	currentDistances[0] = math.Inf(1) // node 0 is in tree, distance irrelevant
	for j := 1; j < m; j++ {
		currentDistances[j] = distMatrix[j]
	}

	edges := make([][3]float64, 0, m-1)

	for i := 0; i < m-1; i++ {
		// Find the nearest node not yet in the tree.
		minDist := math.Inf(1)
		minNode := -1
		for j := 0; j < m; j++ {
			if !inTree[j] && currentDistances[j] < minDist {
				minDist = currentDistances[j]
				minNode = j
			}
		}

		// Equal-weight ties go to the lowest index. Tie-breaking does not
		// affect the total weight.
		edges = append(edges, [3]float64{
			float64(currentNode),
			float64(minNode),
			minDist,
		})

		inTree[minNode] = true
		currentNode = minNode

		// Update distances for remaining non-tree nodes.
		for k := 0; k < m; k++ {
			if !inTree[k] {
				d := distMatrix[minNode*m+k]
				if d < currentDistances[k] {
					currentDistances[k] = d
				}
			}
		}
	}

	return edges
}

// KruskalMST computes a minimum spanning tree using Kruskal's algorithm over
// the same dense distance matrix PrimMST accepts. It sorts all m*(m-1)/2
// candidate edges, so it is slower than PrimMST on dense inputs; it exists as
// an independent implementation for cross-validation.
func KruskalMST(distMatrix []float64, m int) [][3]float64 {
	if m <= 1 {
		return nil
	}

	type candidate struct {
		from, to int
		weight   float64
	}
	candidates := make([]candidate, 0, m*(m-1)/2)
	for i := 0; i < m; i++ {
		for j := i + 1; j < m; j++ {
			candidates = append(candidates, candidate{from: i, to: j, weight: distMatrix[i*m+j]})
		}
	}
	sort.Slice(candidates, func(a, b int) bool { return candidates[a].weight < candidates[b].weight })

	uf := newUnionFind(m)
	edges := make([][3]float64, 0, m-1)
	for _, c := range candidates {
		if uf.union(c.from, c.to) {
			edges = append(edges, [3]float64{float64(c.from), float64(c.to), c.weight})
			if len(edges) == m-1 {
				break
			}
		}
	}

	return edges
}

// TotalWeight sums the edge weights of an MST edge list.
func TotalWeight(edges [][3]float64) float64 {
	var total float64
	for _, e := range edges {
		total += e[2]
	}
	return total
}
