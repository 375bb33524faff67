package phdim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrimMSTWeight_MatchesDensePrim(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for _, n := range []int{2, 5, 40, 150} {
		dims := 6
		data := make([]float64, n*dims)
		for i := range data {
			data[i] = rng.NormFloat64()
		}

		dist := ComputePairwiseDistances(data, n, dims, EuclideanMetric{})
		dense := TotalWeight(PrimMST(dist, n))
		matrixFree := PrimMSTWeight(data, n, dims, EuclideanMetric{})

		assert.InDelta(t, dense, matrixFree, 1e-9, "n=%d", n)
	}
}

func TestPrimMSTWeight_TrivialSizes(t *testing.T) {
	assert.Equal(t, 0.0, PrimMSTWeight(nil, 0, 3, EuclideanMetric{}))
	assert.Equal(t, 0.0, PrimMSTWeight([]float64{1, 2, 3}, 1, 3, EuclideanMetric{}))
}

func TestPrimMSTWeight_PathGraph(t *testing.T) {
	// Points at unit spacing on a line: the MST is the path graph with
	// m-1 unit edges.
	m, dims := 9, 4
	data := make([]float64, m*dims)
	for i := 0; i < m; i++ {
		data[i*dims] = float64(i)
	}
	assert.InDelta(t, float64(m-1), PrimMSTWeight(data, m, dims, EuclideanMetric{}), floatTol)
}
