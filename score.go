package phdim

import "fmt"

// Algorithm selects the MST construction strategy for scoring.
type Algorithm string

const (
	AlgorithmAuto       Algorithm = "auto"
	AlgorithmDense      Algorithm = "dense"
	AlgorithmMatrixFree Algorithm = "matrix_free"
)

// denseSizeLimit is the subset size above which "auto" switches from the
// dense distance matrix to the matrix-free scorer. At 2048 points the dense
// matrix is 32 MiB of float64; beyond that the O(m²) allocation dominates.
const denseSizeLimit = 2048

// PersistentScore computes the persistent score of a point set: the total
// edge weight of the Euclidean minimum spanning tree over all m points.
// data is flat row-major with m rows and dims columns.
//
// By convention a single point scores 0 (empty tree). An empty point set is
// invalid input. The score is a pure function of the point set; row order
// does not affect it.
func PersistentScore(data []float64, m, dims int) (float64, error) {
	return scorePoints(data, m, dims, EuclideanMetric{}, AlgorithmAuto, 1)
}

// scorePoints is PersistentScore with the metric, algorithm and worker count
// threaded through from Config.
func scorePoints(data []float64, m, dims int, metric DistanceMetric, algo Algorithm, workers int) (float64, error) {
	if m < 1 {
		return 0, fmt.Errorf("%w: persistent score requires at least 1 point, got %d", ErrInvalidInput, m)
	}
	if dims < 1 {
		return 0, fmt.Errorf("%w: dims must be >= 1, got %d", ErrInvalidInput, dims)
	}
	if len(data) != m*dims {
		return 0, fmt.Errorf("%w: data length %d does not match m*dims = %d", ErrInvalidInput, len(data), m*dims)
	}
	if m == 1 {
		return 0, nil
	}

	if algo == AlgorithmAuto {
		if m <= denseSizeLimit {
			algo = AlgorithmDense
		} else {
			algo = AlgorithmMatrixFree
		}
	}

	switch algo {
	case AlgorithmDense:
		distMatrix := ComputePairwiseDistancesParallel(data, m, dims, metric, workers)
		return TotalWeight(PrimMST(distMatrix, m)), nil
	case AlgorithmMatrixFree:
		return PrimMSTWeight(data, m, dims, metric), nil
	default:
		return 0, fmt.Errorf("%w: invalid Algorithm %q", ErrInvalidInput, algo)
	}
}
