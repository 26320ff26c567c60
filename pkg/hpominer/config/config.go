// Package config loads run configuration from a plain YAML file:
// os.ReadFile followed by yaml.Unmarshal, no further indirection.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig holds everything a miner run needs beyond the input text: where
// to load the ontology from, which subtree to index, where to keep the
// compiled-dictionary cache, and how noisy logging should be.
type RunConfig struct {
	OntologyPath string `yaml:"ontology_path"`
	RootTermID   string `yaml:"root_term_id"`
	CachePath    string `yaml:"cache_path"`
	Verbose      bool   `yaml:"verbose"`
}

// LoadRunConfig reads a RunConfig from a YAML file. A missing field keeps
// its zero value; callers apply defaults and CLI-flag overrides afterward.
func LoadRunConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg RunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
