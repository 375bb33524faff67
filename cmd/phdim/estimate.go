package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/seqspace/phdim"
	"github.com/seqspace/phdim/embload"
)

var (
	estimateConfigPath string
	estimateDir        string
	estimatePattern    string
	estimateSizes      int
	estimateMinSize    int
	estimateDraws      int
	estimateRuns       int
	estimateSeed       int64
	estimateWorkers    int
	estimateVerbose    bool
)

func init() {
	f := estimateCmd.Flags()
	f.StringVar(&estimateConfigPath, "config", "", "Path to a YAML config file (optional)")
	f.StringVar(&estimateDir, "embeddings", ".", "Directory containing per-entity .npy embedding files")
	f.StringVar(&estimatePattern, "pattern", embload.DefaultPattern, "Filename pattern with one %s verb for the entity ID")
	f.IntVar(&estimateSizes, "sizes", 8, "Number of subset sizes in the progression")
	f.IntVar(&estimateMinSize, "min-size", 40, "Smallest subset size")
	f.IntVar(&estimateDraws, "draws", 7, "Random draws per subset size (median taken)")
	f.IntVar(&estimateRuns, "runs", 5, "Independent runs averaged in slope space")
	f.Int64Var(&estimateSeed, "seed", 0, "Random seed (0 = non-deterministic)")
	f.IntVar(&estimateWorkers, "workers", 0, "Concurrent runs (0 = number of CPUs)")
	f.BoolVar(&estimateVerbose, "verbose", false, "Log per-run slopes")
	rootCmd.AddCommand(estimateCmd)
}

var estimateCmd = &cobra.Command{
	Use:   "estimate [entity...]",
	Short: "Estimate the intrinsic dimension for one or more entities",
	Long: `Estimate the intrinsic dimension for each named entity.

Embeddings are read from <embeddings-dir>/<pattern % entity>. Results are
printed one entity per line as "entity  n  dimension". Entities that fail
are logged and skipped; the command fails only if every entity fails.

Examples:
  phdim estimate --embeddings ./esm2_layer32 P69441 P0A7N9
  phdim estimate --embeddings ./dumps --pattern "%s_layer32.npy.gz" --seed 42 P69441`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEstimate,
}

func runEstimate(cmd *cobra.Command, args []string) error {
	fileCfg, err := loadFileConfig(estimateConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyFileConfig(cmd, fileCfg)

	level := slog.LevelInfo
	if estimateVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	loader := embload.NewDirLoader(estimateDir, estimatePattern)

	cfg := phdim.DefaultConfig()
	cfg.NumSizes = estimateSizes
	cfg.MinSize = estimateMinSize
	cfg.Draws = estimateDraws
	cfg.Runs = estimateRuns
	cfg.Seed = estimateSeed
	cfg.Workers = estimateWorkers
	cfg.Logger = logger

	failed := 0
	for _, entityID := range args {
		est, err := phdim.EstimateForEntity(entityID, loader, cfg)
		if err != nil {
			logger.Error("estimation failed", "entity", entityID, "error", err)
			failed++
			continue
		}
		fmt.Printf("%s\t%d\t%.4f\n", entityID, est.N, est.Dimension)
	}

	if failed == len(args) {
		return fmt.Errorf("all %d entities failed", failed)
	}
	return nil
}

// applyFileConfig fills flag values from the config file for flags the user
// did not set explicitly.
func applyFileConfig(cmd *cobra.Command, fileCfg *fileConfig) {
	set := func(name string) bool { return cmd.Flags().Changed(name) }

	if !set("embeddings") && fileCfg.Embeddings.Dir != "" {
		estimateDir = fileCfg.Embeddings.Dir
	}
	if !set("pattern") && fileCfg.Embeddings.Pattern != "" {
		estimatePattern = fileCfg.Embeddings.Pattern
	}
	if !set("sizes") && fileCfg.Estimator.Sizes != 0 {
		estimateSizes = fileCfg.Estimator.Sizes
	}
	if !set("min-size") && fileCfg.Estimator.MinSize != 0 {
		estimateMinSize = fileCfg.Estimator.MinSize
	}
	if !set("draws") && fileCfg.Estimator.Draws != 0 {
		estimateDraws = fileCfg.Estimator.Draws
	}
	if !set("runs") && fileCfg.Estimator.Runs != 0 {
		estimateRuns = fileCfg.Estimator.Runs
	}
	if !set("seed") && fileCfg.Estimator.Seed != 0 {
		estimateSeed = fileCfg.Estimator.Seed
	}
	if !set("workers") && fileCfg.Estimator.Workers != 0 {
		estimateWorkers = fileCfg.Estimator.Workers
	}
}
