package phdim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersistentScore_EmptyInputIsError(t *testing.T) {
	_, err := PersistentScore(nil, 0, 3)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPersistentScore_SinglePointIsZero(t *testing.T) {
	score, err := PersistentScore([]float64{1, 2, 3}, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
}

func TestPersistentScore_ShapeMismatchIsError(t *testing.T) {
	_, err := PersistentScore([]float64{1, 2, 3}, 2, 3)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPersistentScore_UnitSpacedLine(t *testing.T) {
	// Points 0, 1, ..., m-1 on the first axis of a 16-dim space: the MST is
	// the path graph, so the score is exactly m-1.
	m, dims := 25, 16
	data := make([]float64, m*dims)
	for i := 0; i < m; i++ {
		data[i*dims] = float64(i)
	}

	score, err := PersistentScore(data, m, dims)
	require.NoError(t, err)
	assert.InDelta(t, float64(m-1), score, floatTol)
}

func TestPersistentScore_PermutationInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	m, dims := 60, 8
	data := make([]float64, m*dims)
	for i := range data {
		data[i] = rng.NormFloat64()
	}

	base, err := PersistentScore(data, m, dims)
	require.NoError(t, err)

	for trial := 0; trial < 5; trial++ {
		perm := rng.Perm(m)
		shuffled := make([]float64, m*dims)
		for i, p := range perm {
			copy(shuffled[i*dims:(i+1)*dims], data[p*dims:(p+1)*dims])
		}

		score, err := PersistentScore(shuffled, m, dims)
		require.NoError(t, err)
		assert.InDelta(t, base, score, 1e-9)
	}
}

func TestScorePoints_AlgorithmsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	m, dims := 80, 12
	data := make([]float64, m*dims)
	for i := range data {
		data[i] = rng.NormFloat64()
	}

	dense, err := scorePoints(data, m, dims, EuclideanMetric{}, AlgorithmDense, 4)
	require.NoError(t, err)
	matrixFree, err := scorePoints(data, m, dims, EuclideanMetric{}, AlgorithmMatrixFree, 1)
	require.NoError(t, err)

	assert.InDelta(t, dense, matrixFree, 1e-9)
}

func TestScorePoints_InvalidAlgorithm(t *testing.T) {
	_, err := scorePoints([]float64{0, 0, 1, 1}, 2, 2, EuclideanMetric{}, Algorithm("bogus"), 1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
