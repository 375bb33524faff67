package phdim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// powerLawSeries builds sizes/scores with score = size^p exactly.
func powerLawSeries(sizes []int, p float64) []float64 {
	scores := make([]float64, len(sizes))
	for i, s := range sizes {
		scores[i] = math.Pow(float64(s), p)
	}
	return scores
}

func TestFitLogLog_RecoversExactPowerLaw(t *testing.T) {
	sizes := []int{40, 162, 285, 408, 531, 653, 776, 899}
	scores := powerLawSeries(sizes, 0.5)

	slope, err := FitLogLog(sizes, scores)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, slope, 1e-12)
}

func TestEstimateDimension_RoundTrip(t *testing.T) {
	sizes := []int{40, 162, 285, 408, 531, 653, 776, 899}

	// score = size^0.5 implies dimension 1/(1-0.5) = 2.
	dim, err := EstimateDimension(sizes, powerLawSeries(sizes, 0.5))
	require.NoError(t, err)
	assert.InDelta(t, 2.0, dim, 1e-9)

	// score = size^0.9 implies dimension 10.
	dim, err = EstimateDimension(sizes, powerLawSeries(sizes, 0.9))
	require.NoError(t, err)
	assert.InDelta(t, 10.0, dim, 1e-6)
}

func TestEstimateDimension_SlopeOneIsDegenerate(t *testing.T) {
	// score = size gives slope exactly 1: the transform would divide by zero.
	sizes := []int{40, 100, 200, 400}
	_, err := EstimateDimension(sizes, powerLawSeries(sizes, 1.0))
	assert.ErrorIs(t, err, ErrDegenerateSlope)
}

func TestFitLogLog_NonPositiveScoreIsDegenerate(t *testing.T) {
	sizes := []int{40, 100, 200}

	_, err := FitLogLog(sizes, []float64{10, 0, 30})
	assert.ErrorIs(t, err, ErrDegenerateScore)

	_, err = FitLogLog(sizes, []float64{10, -1, 30})
	assert.ErrorIs(t, err, ErrDegenerateScore)
}

func TestFitLogLog_InvalidShapes(t *testing.T) {
	_, err := FitLogLog([]int{1, 2}, []float64{1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = FitLogLog([]int{40}, []float64{3})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDimensionFromSlope(t *testing.T) {
	dim, err := DimensionFromSlope(0.75)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, dim, floatTol)

	_, err = DimensionFromSlope(1.0)
	assert.ErrorIs(t, err, ErrDegenerateSlope)

	_, err = DimensionFromSlope(1.5)
	assert.ErrorIs(t, err, ErrDegenerateSlope)

	_, err = DimensionFromSlope(math.NaN())
	assert.ErrorIs(t, err, ErrDegenerateSlope)
}
