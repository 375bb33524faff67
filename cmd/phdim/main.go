// Package main provides the phdim CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "phdim",
	Short: "MST-based intrinsic dimension estimation for embedding sets",
	Long: `phdim estimates the intrinsic dimension of high-dimensional embedding
sets (e.g. per-residue protein-language-model representations) using a
minimum-spanning-tree fractal dimension estimator.

For each entity it subsamples the embedding matrix at a progression of
sizes, scores each subset by its Euclidean MST total weight, fits a
log-log power law, and converts the slope into a dimension estimate.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
}
