package phdim

import "math"

// PrimMSTWeight computes the total weight of the minimum spanning tree using
// Prim's algorithm without a precomputed m×m distance matrix. Distances are
// computed on the fly, using O(m) memory instead of O(m²), which matters when
// subsets approach the full embedding set.
//
// data is flat row-major with m rows and dims columns. For m <= 1 the weight
// is 0 (an empty tree).
func PrimMSTWeight(data []float64, m, dims int, metric DistanceMetric) float64 {
	if m <= 1 {
		return 0
	}

	inTree := make([]bool, m)
	currentDistances := make([]float64, m)
	for j := range currentDistances {
		currentDistances[j] = math.Inf(1)
	}

	currentNode := 0
	var total float64

	for i := 1; i < m; i++ {
		inTree[currentNode] = true
		row := data[currentNode*dims : (currentNode+1)*dims]

		newDistance := math.Inf(1)
		newNode := -1

		for j := 0; j < m; j++ {
			if inTree[j] {
				continue
			}

			// Relax j through the node just added to the tree.
			d := metric.Distance(row, data[j*dims:(j+1)*dims])
			if d < currentDistances[j] {
				currentDistances[j] = d
			}

			if currentDistances[j] < newDistance {
				newDistance = currentDistances[j]
				newNode = j
			}
		}

		total += newDistance
		currentNode = newNode
	}

	return total
}
