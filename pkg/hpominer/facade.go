// Package hpominer mines Human Phenotype Ontology concepts out of free text.
// The core algorithm is a pure function of its dictionary and the input
// text: no I/O, no concurrency primitives, no cancellation. Ontology
// loading, the on-disk dictionary cache and configuration live in the
// sibling packages this one composes; Miner itself adds an in-memory
// Process-result cache and log lines around the core.
package hpominer

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/cognicore/hpominer/pkg/hpominer/dictionary"
	"github.com/cognicore/hpominer/pkg/hpominer/ingest"
	"github.com/cognicore/hpominer/pkg/hpominer/mapper"
	"github.com/cognicore/hpominer/pkg/hpominer/negation"
	"github.com/cognicore/hpominer/pkg/hpominer/ontology"
	"github.com/cognicore/hpominer/pkg/hpominer/runid"
	"github.com/cognicore/hpominer/pkg/hpominer/term"
)

// defaultResultCacheSize bounds the Process result cache Miner keeps by
// default; 0 disables it (see WithResultCacheSize).
const defaultResultCacheSize = 256

// Miner owns an immutable reference to an ontology and the dictionary
// compiled from it. Process is an idempotent function of its input text
// and is safe to call concurrently from multiple goroutines: the mining
// path mutates no shared state, and the result cache and run-id generator
// are safe for concurrent use.
type Miner struct {
	ontology ontology.Provider
	dict     *dictionary.Dictionary
	ids      *runid.Generator
	results  *lru.Cache[string, []Hit]
}

// Option configures Miner construction.
type Option func(*minerConfig)

type minerConfig struct {
	root            term.ID
	resultCacheSize int
}

// WithRoot overrides the indexed subtree root; defaults to
// ontology.PhenotypicAbnormality.
func WithRoot(root term.ID) Option {
	return func(c *minerConfig) { c.root = root }
}

// WithResultCacheSize overrides the Process-result LRU cache size; 0
// disables caching.
func WithResultCacheSize(n int) Option {
	return func(c *minerConfig) { c.resultCacheSize = n }
}

// New builds a Miner by walking prov's subtree under the configured root
// and indexing every label and synonym found. It returns an error only on
// an internal invariant violation (a surface form exceeding
// dictionary.MaxTokenCount).
func New(prov ontology.Provider, opts ...Option) (*Miner, error) {
	cfg := minerConfig{
		root:            ontology.PhenotypicAbnormality,
		resultCacheSize: defaultResultCacheSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	dict, err := dictionary.Build(prov, cfg.root)
	if err != nil {
		return nil, err
	}

	m := &Miner{
		ontology: prov,
		dict:     dict,
		ids:      runid.New(),
	}
	if cfg.resultCacheSize > 0 {
		cache, err := lru.New[string, []Hit](cfg.resultCacheSize)
		if err != nil {
			return nil, err
		}
		m.results = cache
	}
	return m, nil
}

// NewFromDictionary builds a Miner from an already-compiled dictionary
// (e.g. one restored from store/sqlite), skipping the subtree walk.
func NewFromDictionary(prov ontology.Provider, dict *dictionary.Dictionary, opts ...Option) *Miner {
	cfg := minerConfig{resultCacheSize: defaultResultCacheSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	m := &Miner{ontology: prov, dict: dict, ids: runid.New()}
	if cfg.resultCacheSize > 0 {
		if cache, err := lru.New[string, []Hit](cfg.resultCacheSize); err == nil {
			m.results = cache
		}
	}
	return m
}

// Process mines text for phenotype concepts. It never returns an error:
// malformed or empty input simply yields an empty slice.
func (m *Miner) Process(text string) []Hit {
	runID := m.ids.Next()

	if m.results != nil {
		key := cacheKey(text)
		if cached, ok := m.results.Get(key); ok {
			log.Printf("hpominer[%s]: process cache hit (%d hits)", runID, len(cached))
			return cached
		}
		hits := m.process(text, runID)
		m.results.Add(key, hits)
		return hits
	}

	return m.process(text, runID)
}

func (m *Miner) process(text string, runID string) []Hit {
	var hits []Hit
	for _, sentence := range ingest.SplitSentences(text) {
		isObserved := !negation.HasNegation(sentence.Tokens)
		for _, cand := range mapper.MapSentence(sentence.Tokens, m.dict) {
			t, ok := m.ontology.TermByID(cand.TermID)
			if !ok {
				log.Printf("hpominer[%s]: dropping hit for unresolved term %s", runID, cand.TermID)
				continue
			}
			hits = append(hits, Hit{
				TermID:     cand.TermID,
				Label:      t.Label,
				Span:       Span{Start: cand.Start, End: cand.End},
				IsObserved: isObserved,
			})
		}
	}
	return hits
}

// ProcessToJSON mines text and renders the hits as a pretty-printed JSON
// array.
func (m *Miner) ProcessToJSON(text string) (string, error) {
	hits := m.Process(text)
	if hits == nil {
		hits = []Hit{}
	}
	data, err := json.MarshalIndent(hits, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal hits: %w", err)
	}
	return string(data), nil
}

// ProcessTermIDs mines text and returns only the distinct term ids
// matched, in first-occurrence order.
func (m *Miner) ProcessTermIDs(text string) []term.ID {
	hits := m.Process(text)
	seen := make(map[term.ID]struct{}, len(hits))
	var ids []term.ID
	for _, h := range hits {
		if _, ok := seen[h.TermID]; ok {
			continue
		}
		seen[h.TermID] = struct{}{}
		ids = append(ids, h.TermID)
	}
	return ids
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
