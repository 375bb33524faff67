package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileConfig_EmptyPathIsOptional(t *testing.T) {
	cfg, err := loadFileConfig("")
	require.NoError(t, err)
	assert.Equal(t, &fileConfig{}, cfg)
}

func TestLoadFileConfig_ParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phdim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
embeddings:
  dir: /data/esm2
  pattern: "%s_layer32.npy.gz"
estimator:
  sizes: 10
  min_size: 50
  draws: 9
  runs: 3
  seed: 42
  workers: 8
`), 0o644))

	cfg, err := loadFileConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/esm2", cfg.Embeddings.Dir)
	assert.Equal(t, "%s_layer32.npy.gz", cfg.Embeddings.Pattern)
	assert.Equal(t, 10, cfg.Estimator.Sizes)
	assert.Equal(t, 50, cfg.Estimator.MinSize)
	assert.Equal(t, 9, cfg.Estimator.Draws)
	assert.Equal(t, 3, cfg.Estimator.Runs)
	assert.Equal(t, int64(42), cfg.Estimator.Seed)
	assert.Equal(t, 8, cfg.Estimator.Workers)
}

func TestLoadFileConfig_MissingFileErrors(t *testing.T) {
	_, err := loadFileConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
