package phdim

import "math"

// DistanceMetric computes the distance between two points given as equal
// length coordinate slices.
type DistanceMetric interface {
	Distance(a, b []float64) float64
}

// DistanceFunc adapts a plain function into a DistanceMetric.
type DistanceFunc func(a, b []float64) float64

func (f DistanceFunc) Distance(a, b []float64) float64 { return f(a, b) }

// EuclideanMetric computes the Euclidean (L2) distance on raw coordinates,
// no normalization. This is the metric the dimension estimator is defined
// over; others exist only for experimentation via DistanceFunc.
type EuclideanMetric struct{}

func (EuclideanMetric) Distance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// ComputePairwiseDistances computes the full m×m distance matrix.
// data is flat row-major with m rows and dims columns.
// Returns flat []float64 of length m*m.
func ComputePairwiseDistances(data []float64, m, dims int, metric DistanceMetric) []float64 {
	result := make([]float64, m*m)

	for i := 0; i < m; i++ {
		for j := i + 1; j < m; j++ {
			d := metric.Distance(data[i*dims:(i+1)*dims], data[j*dims:(j+1)*dims])
			result[i*m+j] = d
			result[j*m+i] = d
		}
	}

	return result
}
