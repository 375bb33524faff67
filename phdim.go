package phdim

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// EmbeddingLoader supplies the embedding matrix for an entity. The estimator
// is agnostic to how embeddings are persisted; the only contract is that
// Load returns an N×D matrix with N >= Config.MinSize rows. Loader errors
// are propagated to the caller unchanged.
type EmbeddingLoader interface {
	Load(entityID string) (*mat.Dense, error)
}

// LoaderFunc adapts a plain function into an EmbeddingLoader.
type LoaderFunc func(entityID string) (*mat.Dense, error)

func (f LoaderFunc) Load(entityID string) (*mat.Dense, error) { return f(entityID) }

// Config controls the dimension estimation pipeline.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// NumSizes is the number of distinct subset sizes in the progression
	// between MinSize and the full point count. Must be >= 1. Default: 8.
	NumSizes int

	// MinSize is the smallest subset size. Must be >= 2 (an MST needs at
	// least 2 points) and must not exceed the number of available points.
	// Default: 40.
	MinSize int

	// Draws is the number of independent random subsets drawn at each size.
	// The per-size statistic is the median over the draws. Must be >= 1.
	// Default: 7.
	Draws int

	// Runs is the number of independent subsample-and-fit repetitions in
	// EstimateForEntity. Slopes are averaged across runs before the final
	// dimension transform. Must be >= 1. Default: 5.
	Runs int

	// Seed seeds the random source. A fixed non-zero seed makes the whole
	// pipeline deterministic, including under concurrent runs. 0 means seed
	// from the clock (non-reproducible). Default: 0.
	Seed int64

	// Metric is the distance function used for MST edge weights. The
	// estimator is defined over raw Euclidean distance; override only for
	// experimentation. Default: EuclideanMetric.
	Metric DistanceMetric

	// Algorithm selects the MST construction strategy.
	// "auto" picks dense or matrix-free based on subset size.
	// "dense" always precomputes the full distance matrix (O(m²) memory).
	// "matrix_free" always computes distances on the fly (O(m) memory).
	// Default: "auto".
	Algorithm Algorithm

	// Workers bounds the goroutines used for concurrent runs and parallel
	// distance computation. 0 means use runtime.NumCPU(). Default: 0 (auto).
	Workers int

	// Logger receives per-run debug output and the final estimate summary.
	// nil means discard. Default: nil.
	Logger *slog.Logger
}

// Estimate is the output of the multi-run estimation pipeline.
type Estimate struct {
	// Dimension is the intrinsic dimension estimate: 1/(1-s) for the mean
	// slope s across runs.
	Dimension float64

	// N is the number of points in the loaded embedding matrix.
	N int

	// Slopes holds the fitted log-log slope of each run, in run order.
	Slopes []float64
}

// DefaultConfig returns a Config with the estimator's standard parameters.
func DefaultConfig() Config {
	return Config{
		NumSizes:  8,
		MinSize:   40,
		Draws:     7,
		Runs:      5,
		Metric:    EuclideanMetric{},
		Algorithm: AlgorithmAuto,
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if cfg.NumSizes < 1 {
		return fmt.Errorf("%w: NumSizes must be >= 1, got %d", ErrInvalidInput, cfg.NumSizes)
	}
	if cfg.MinSize < 2 {
		return fmt.Errorf("%w: MinSize must be >= 2, got %d", ErrInvalidInput, cfg.MinSize)
	}
	if cfg.Draws < 1 {
		return fmt.Errorf("%w: Draws must be >= 1, got %d", ErrInvalidInput, cfg.Draws)
	}
	if cfg.Runs < 1 {
		return fmt.Errorf("%w: Runs must be >= 1, got %d", ErrInvalidInput, cfg.Runs)
	}
	switch cfg.Algorithm {
	case AlgorithmAuto, AlgorithmDense, AlgorithmMatrixFree:
		// valid
	default:
		return fmt.Errorf("%w: invalid Algorithm %q", ErrInvalidInput, cfg.Algorithm)
	}
	return nil
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Metric == nil {
		cfg.Metric = EuclideanMetric{}
	}
	if cfg.Algorithm == "" {
		cfg.Algorithm = AlgorithmAuto
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
}

// EstimateForEntity loads the embeddings for entityID once and runs the full
// multi-run estimation pipeline: cfg.Runs independent subsample-and-fit
// repetitions, each with its own derived random generator, followed by a
// single dimension transform of the mean slope.
//
// Averaging happens in slope space, not dimension space: the transform
// 1/(1-s) is nonlinear, so transforming per run and averaging dimensions
// would give a different (and not the documented) result.
func EstimateForEntity(entityID string, loader EmbeddingLoader, cfg Config) (*Estimate, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	embeddings, err := loader.Load(entityID)
	if err != nil {
		return nil, err
	}

	cfg.Logger = cfg.Logger.With("entity", entityID)
	return estimateMatrix(embeddings, cfg)
}

// EstimateMatrix runs the multi-run estimation pipeline on an embedding
// matrix already in memory.
func EstimateMatrix(embeddings *mat.Dense, cfg Config) (*Estimate, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return estimateMatrix(embeddings, cfg)
}

// estimateMatrix assumes cfg has been defaulted and validated.
func estimateMatrix(embeddings *mat.Dense, cfg Config) (*Estimate, error) {
	if embeddings == nil {
		return nil, fmt.Errorf("%w: embeddings must not be nil", ErrInvalidInput)
	}
	n, dims := embeddings.Dims()
	if n < cfg.MinSize {
		return nil, fmt.Errorf("%w: %d points available but MinSize is %d", ErrInvalidInput, n, cfg.MinSize)
	}

	data := flatten(embeddings)

	// Pre-derive one seed per run from a master generator so that runs are
	// independent and the whole pipeline stays deterministic for a fixed
	// Seed regardless of goroutine scheduling.
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	master := rand.New(rand.NewSource(seed))
	runSeeds := make([]int64, cfg.Runs)
	for i := range runSeeds {
		runSeeds[i] = master.Int63()
	}

	slopes := make([]float64, cfg.Runs)

	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	for r := 0; r < cfg.Runs; r++ {
		r := r
		g.Go(func() error {
			rng := rand.New(rand.NewSource(runSeeds[r]))

			// Parallelism lives at the run level; within a run the draws
			// are sequential so each run consumes its generator in a fixed
			// order.
			runCfg := cfg
			runCfg.Workers = 1

			sizes, scores, err := SampleAndScore(data, n, dims, runCfg, rng)
			if err != nil {
				return err
			}
			slope, err := FitLogLog(sizes, scores)
			if err != nil {
				return err
			}
			slopes[r] = slope
			cfg.Logger.Debug("run complete", "run", r, "slope", slope)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	meanSlope := stat.Mean(slopes, nil)
	dimension, err := DimensionFromSlope(meanSlope)
	if err != nil {
		return nil, err
	}

	cfg.Logger.Info("dimension estimated",
		"n", n,
		"embedding_width", dims,
		"runs", cfg.Runs,
		"mean_slope", meanSlope,
		"dimension", dimension,
	)

	return &Estimate{Dimension: dimension, N: n, Slopes: slopes}, nil
}

// flatten returns the matrix contents as a flat row-major slice, sharing the
// backing array when the matrix is contiguous.
func flatten(m *mat.Dense) []float64 {
	raw := m.RawMatrix()
	if raw.Stride == raw.Cols {
		return raw.Data[:raw.Rows*raw.Cols]
	}
	flat := make([]float64, raw.Rows*raw.Cols)
	for i := 0; i < raw.Rows; i++ {
		copy(flat[i*raw.Cols:(i+1)*raw.Cols], m.RawRowView(i))
	}
	return flat
}
