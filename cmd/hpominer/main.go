// Command hpominer mines Human Phenotype Ontology concepts out of free
// text and prints the hits as a pretty-printed JSON array.
package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cognicore/hpominer/pkg/hpominer"
	"github.com/cognicore/hpominer/pkg/hpominer/config"
	"github.com/cognicore/hpominer/pkg/hpominer/dictionary"
	"github.com/cognicore/hpominer/pkg/hpominer/ontology"
	"github.com/cognicore/hpominer/pkg/hpominer/ontology/obographs"
	"github.com/cognicore/hpominer/pkg/hpominer/store/sqlite"
	"github.com/cognicore/hpominer/pkg/hpominer/term"

	"github.com/dustin/go-humanize"
)

// version is stamped at build time via -ldflags -X; "dev" otherwise.
var version = "dev"

func main() {
	var (
		hpPath     = flag.String("hp", "", "path to the ontology file (OBO-graph JSON, optionally gzipped)")
		input      = flag.String("i", "", "text to mine")
		inputLong  = flag.String("input", "", "text to mine (long form of -i)")
		configPath = flag.String("config", "", "optional YAML run configuration file")
		cachePath  = flag.String("cache", "", "compiled-dictionary cache path")
		verbose    = flag.Bool("v", false, "set verbose in the run configuration (no log output depends on it)")
		showVer    = flag.Bool("version", false, "print the build version and exit")
	)
	flag.Parse()

	if *showVer {
		fmt.Println(version)
		return
	}

	text := *input
	if text == "" {
		text = *inputLong
	}

	runCfg := &config.RunConfig{}
	if *configPath != "" {
		loaded, err := config.LoadRunConfig(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		runCfg = loaded
	}
	runCfg = config.Merge(runCfg, *hpPath, "", *cachePath, *verbose)

	if runCfg.OntologyPath == "" {
		log.Fatal("--hp <path> is required (or ontology_path in --config)")
	}
	if text == "" {
		log.Fatal("-i/--input is required")
	}

	ctx := context.Background()

	fmt.Fprintf(os.Stderr, "hpominer: processing ontology file: %s\n", runCfg.OntologyPath)
	fmt.Fprintf(os.Stderr, "hpominer: input string: %s\n", text)

	prov, err := obographs.Load(runCfg.OntologyPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load ontology: %v\n", err)
		os.Exit(1)
	}

	root, err := config.ResolveRootTerm(runCfg)
	if err != nil {
		log.Fatalf("resolve root term: %v", err)
	}

	dict, err := loadOrBuildDictionary(ctx, prov, root, config.ResolveCachePath(runCfg), runCfg.OntologyPath)
	if err != nil {
		log.Fatalf("build dictionary: %v", err)
	}

	miner := hpominer.NewFromDictionary(prov, dict)

	out, err := miner.ProcessToJSON(text)
	if err != nil {
		log.Fatalf("process text: %v", err)
	}
	fmt.Println(out)
}

// loadOrBuildDictionary reads the compiled dictionary from the on-disk
// cache when one exists for the ontology file's content hash, and rebuilds
// (then populates the cache) on a miss. Build-summary and cache-hit lines
// go to stderr, keeping stdout reserved for the hit JSON.
func loadOrBuildDictionary(ctx context.Context, prov ontology.Provider, root term.ID, cachePath, ontologyPath string) (*dictionary.Dictionary, error) {
	cache, err := sqlite.Open(ctx, cachePath)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	defer cache.Close()

	hash, err := contentHash(ontologyPath)
	if err != nil {
		return nil, fmt.Errorf("hash ontology file: %w", err)
	}

	if dict, ok, err := cache.Load(ctx, hash); err == nil && ok {
		fmt.Fprintf(os.Stderr, "hpominer: loaded compiled dictionary from cache (%s surface forms)\n", humanize.Comma(int64(len(dict.Surfaces()))))
		return dict, nil
	}

	dict, err := dictionary.Build(prov, root)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(os.Stderr, "hpominer: compiled dictionary with %s surface forms\n", humanize.Comma(int64(len(dict.Surfaces()))))

	if err := cache.Store(ctx, hash, dict); err != nil {
		fmt.Fprintf(os.Stderr, "hpominer: warning: could not persist dictionary cache: %v\n", err)
	}
	return dict, nil
}

func contentHash(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
