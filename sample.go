package phdim

import (
	"fmt"
	"math/rand"
	"sort"
)

// SampleSizes generates the progression of subset sizes for n points:
//
//	size_i = floor((i-1) * (n - minSize) / numSizes) + minSize   for i = 1..numSizes
//
// The sequence starts at minSize, grows linearly in i, and stays below n.
// The exact floor arithmetic is part of the estimator's definition; changing
// it shifts the regression and the resulting dimension estimate.
func SampleSizes(n, numSizes, minSize int) ([]int, error) {
	if numSizes < 1 {
		return nil, fmt.Errorf("%w: NumSizes must be >= 1, got %d", ErrInvalidInput, numSizes)
	}
	if minSize < 2 {
		return nil, fmt.Errorf("%w: MinSize must be >= 2 (MST requires at least 2 points), got %d", ErrInvalidInput, minSize)
	}
	if minSize > n {
		return nil, fmt.Errorf("%w: MinSize %d exceeds available points %d", ErrInvalidInput, minSize, n)
	}

	sizes := make([]int, numSizes)
	for i := 1; i <= numSizes; i++ {
		sizes[i-1] = (i-1)*(n-minSize)/numSizes + minSize
	}
	return sizes, nil
}

// SampleAndScore draws cfg.Draws random subsets at each size produced by
// SampleSizes, scores each subset by its MST total weight, and reduces the
// draws at each size to their median. data is flat row-major with n rows and
// dims columns.
//
// Every draw samples size distinct row indices uniformly without replacement
// from [0, n). All randomness comes from rng, so a fixed generator yields
// identical sizes and scores on repeated calls.
//
// Returns the aligned sizes and median scores, both of length cfg.NumSizes.
func SampleAndScore(data []float64, n, dims int, cfg Config, rng *rand.Rand) ([]int, []float64, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, nil, err
	}
	if dims < 1 {
		return nil, nil, fmt.Errorf("%w: dims must be >= 1, got %d", ErrInvalidInput, dims)
	}
	if len(data) != n*dims {
		return nil, nil, fmt.Errorf("%w: data length %d does not match n*dims = %d", ErrInvalidInput, len(data), n*dims)
	}
	if rng == nil {
		return nil, nil, fmt.Errorf("%w: rng must not be nil", ErrInvalidInput)
	}

	sizes, err := SampleSizes(n, cfg.NumSizes, cfg.MinSize)
	if err != nil {
		return nil, nil, err
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	maxSize := sizes[len(sizes)-1]
	subset := make([]float64, maxSize*dims)
	drawScores := make([]float64, cfg.Draws)

	scores := make([]float64, len(sizes))
	for si, size := range sizes {
		for d := 0; d < cfg.Draws; d++ {
			// Partial Fisher-Yates: after the loop, indices[:size] is a
			// uniform sample without replacement from [0, n).
			for i := 0; i < size; i++ {
				j := i + rng.Intn(n-i)
				indices[i], indices[j] = indices[j], indices[i]
			}
			for i, idx := range indices[:size] {
				copy(subset[i*dims:(i+1)*dims], data[idx*dims:(idx+1)*dims])
			}

			score, err := scorePoints(subset[:size*dims], size, dims, cfg.Metric, cfg.Algorithm, cfg.Workers)
			if err != nil {
				return nil, nil, err
			}
			drawScores[d] = score
		}
		scores[si] = median(drawScores)
	}

	return sizes, scores, nil
}

// median computes the sample median with the numpy convention: for an even
// count, the mean of the two middle values. xs is not modified.
func median(xs []float64) float64 {
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
