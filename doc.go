// Package phdim estimates the intrinsic dimension of high-dimensional
// embedding sets using a minimum-spanning-tree based fractal dimension
// estimator (the "persistent homology dimension").
//
// The estimator exploits a power-law relationship: for a point cloud of
// intrinsic dimension d, the total edge weight of the Euclidean MST over a
// random subset of m points grows like a power of m. The pipeline draws
// repeated random subsets at a progression of sizes, scores each subset by
// its MST total weight, reduces draws to a median per size, fits log(score)
// against log(size) by ordinary least squares, and converts the slope s into
// a dimension estimate 1/(1-s).
//
// Basic usage:
//
//	cfg := phdim.DefaultConfig()
//	cfg.Seed = 42
//	est, err := phdim.EstimateForEntity("P69441", loader, cfg)
//	// est.Dimension is the intrinsic dimension estimate
//	// est.N is the number of points in the loaded embedding matrix
//
// For a matrix already in memory:
//
//	est, err := phdim.EstimateMatrix(m, cfg)
//
// The lower-level stages (PersistentScore, SampleAndScore, FitLogLog,
// EstimateDimension) are exported and independently usable.
//
// # Algorithm selection
//
// By default (Algorithm: "auto"), scoring picks the MST construction strategy
// based on subset size. Small subsets use a precomputed dense distance matrix
// with Prim's algorithm; large subsets use a matrix-free Prim's that computes
// distances on the fly with O(m) memory. Set Config.Algorithm to force a
// strategy:
//
//	cfg.Algorithm = phdim.AlgorithmDense      // full distance matrix
//	cfg.Algorithm = phdim.AlgorithmMatrixFree // on-the-fly distances
package phdim
