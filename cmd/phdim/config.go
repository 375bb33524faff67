package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the estimate command's flags so recurring analysis
// setups can live in a YAML file. Flags set explicitly on the command line
// win over file values.
type fileConfig struct {
	Embeddings struct {
		Dir     string `yaml:"dir"`
		Pattern string `yaml:"pattern"`
	} `yaml:"embeddings"`
	Estimator struct {
		Sizes   int   `yaml:"sizes"`
		MinSize int   `yaml:"min_size"`
		Draws   int   `yaml:"draws"`
		Runs    int   `yaml:"runs"`
		Seed    int64 `yaml:"seed"`
		Workers int   `yaml:"workers"`
	} `yaml:"estimator"`
}

// loadFileConfig reads a YAML config file. An empty path returns an empty
// config rather than an error, so the file stays optional.
func loadFileConfig(path string) (*fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return &cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
