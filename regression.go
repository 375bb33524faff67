package phdim

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// FitLogLog fits log(score) = a + slope*log(size) by ordinary least squares
// and returns the slope. The intercept is discarded; only the slope carries
// dimension information.
//
// Any score <= 0 means a subset collapsed (duplicate points shrinking the MST
// to zero weight) and is surfaced as ErrDegenerateScore rather than producing
// a NaN that would silently corrupt downstream averaging.
func FitLogLog(sizes []int, scores []float64) (float64, error) {
	if len(sizes) != len(scores) {
		return 0, fmt.Errorf("%w: sizes length %d does not match scores length %d", ErrInvalidInput, len(sizes), len(scores))
	}
	if len(sizes) < 2 {
		return 0, fmt.Errorf("%w: regression requires at least 2 points, got %d", ErrInvalidInput, len(sizes))
	}

	logSizes := make([]float64, len(sizes))
	logScores := make([]float64, len(scores))
	for i := range sizes {
		if sizes[i] < 1 {
			return 0, fmt.Errorf("%w: size at index %d is %d, must be >= 1", ErrInvalidInput, i, sizes[i])
		}
		if scores[i] <= 0 {
			return 0, fmt.Errorf("%w: score at index %d (size %d) is %v, log-log fit requires positive scores", ErrDegenerateScore, i, sizes[i], scores[i])
		}
		logSizes[i] = math.Log(float64(sizes[i]))
		logScores[i] = math.Log(scores[i])
	}

	_, slope := stat.LinearRegression(logSizes, logScores, nil, false)
	if math.IsNaN(slope) {
		return 0, fmt.Errorf("%w: regression slope is NaN (zero variance in sizes)", ErrInvalidInput)
	}
	return slope, nil
}

// DimensionFromSlope converts a fitted log-log slope into a dimension
// estimate via 1/(1-slope). The transform is only defined for slope < 1;
// slope >= 1 would yield an infinite or non-positive dimension and is
// rejected as ErrDegenerateSlope.
func DimensionFromSlope(slope float64) (float64, error) {
	if math.IsNaN(slope) || slope >= 1 {
		return 0, fmt.Errorf("%w: slope %v is not in (-inf, 1), dimension transform undefined", ErrDegenerateSlope, slope)
	}
	return 1 / (1 - slope), nil
}

// EstimateDimension is the single-run estimator: it fits the log-log
// regression over one sizes/scores series and applies the dimension
// transform to that single slope.
//
// The multi-run path (EstimateForEntity) deliberately differs: it averages
// slopes across runs first and transforms the mean once, since the transform
// is nonlinear.
func EstimateDimension(sizes []int, scores []float64) (float64, error) {
	slope, err := FitLogLog(sizes, scores)
	if err != nil {
		return 0, err
	}
	return DimensionFromSlope(slope)
}
