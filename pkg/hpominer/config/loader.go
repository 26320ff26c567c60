package config

import (
	"fmt"

	"github.com/cognicore/hpominer/pkg/hpominer/internalerr"
	"github.com/cognicore/hpominer/pkg/hpominer/ontology"
	"github.com/cognicore/hpominer/pkg/hpominer/term"
)

// defaultCachePath is used when a RunConfig leaves CachePath empty.
const defaultCachePath = "hpominer-cache.db"

// ResolveRootTerm returns the subtree root term id to index: the config
// override if set, otherwise ontology.PhenotypicAbnormality.
func ResolveRootTerm(cfg *RunConfig) (term.ID, error) {
	if cfg.RootTermID == "" {
		return ontology.PhenotypicAbnormality, nil
	}
	id, err := term.Parse(cfg.RootTermID)
	if err != nil {
		return term.ID{}, fmt.Errorf("%w: root_term_id: %v", internalerr.ErrInvalidConfig, err)
	}
	return id, nil
}

// ResolveCachePath returns the compiled-dictionary cache path to use: the
// config value if set, otherwise a fixed default in the working directory.
func ResolveCachePath(cfg *RunConfig) string {
	if cfg.CachePath == "" {
		return defaultCachePath
	}
	return cfg.CachePath
}

// Merge applies CLI-flag overrides onto a base RunConfig (which may be the
// zero value if no config file was given). A non-empty override always
// wins (verbose overrides only when true), so CLI flags take precedence
// over the config file.
func Merge(base *RunConfig, ontologyPath, rootTermID, cachePath string, verbose bool) *RunConfig {
	merged := *base
	if ontologyPath != "" {
		merged.OntologyPath = ontologyPath
	}
	if rootTermID != "" {
		merged.RootTermID = rootTermID
	}
	if cachePath != "" {
		merged.CachePath = cachePath
	}
	if verbose {
		merged.Verbose = true
	}
	return &merged
}
