package dictionary

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/cognicore/hpominer/pkg/hpominer/internalerr"
	"github.com/cognicore/hpominer/pkg/hpominer/ontology"
	"github.com/cognicore/hpominer/pkg/hpominer/term"
)

// minSurfaceLength drops labels/synonyms shorter than this many characters;
// they are nearly always ambiguous outside the ontology (e.g. "NOS").
const minSurfaceLength = 4

// blockedLabels are common false-positive labels that otherwise collide
// with everyday words in clinical text.
var blockedLabels = map[string]struct{}{
	"negative": {},
	"weakness": {},
}

// Dictionary holds one Index per non-stop-word count, built from every
// label and synonym in an ontology subtree.
type Dictionary struct {
	byWordCount map[int]*Index
	all         []*Concept
}

// NewDictionary returns an empty dictionary, ready for AddSurface calls.
// Used by the cache to rebuild a dictionary without re-walking the
// ontology.
func NewDictionary() *Dictionary {
	return &Dictionary{byWordCount: make(map[int]*Index, MaxTokenCount)}
}

// ByWordCount returns the index for concepts with exactly n non-stop
// tokens, or nil if none were indexed at that count.
func (d *Dictionary) ByWordCount(n int) *Index {
	return d.byWordCount[n]
}

// Surfaces returns every concept the dictionary holds, for persistence by
// the cache. The builder is pure, so reconstructing each Concept from its
// original surface and term id on reload reproduces the same index.
func (d *Dictionary) Surfaces() []*Concept {
	return d.all
}

// AddSurface constructs a concept from original and id and inserts it into
// the index matching its non-stop token count. It returns
// internalerr.ErrTokenCountExceeded if that count exceeds MaxTokenCount.
func (d *Dictionary) AddSurface(original string, id term.ID) error {
	concept := NewConcept(original, id)
	if concept.WordCount == 0 {
		return nil
	}
	if concept.WordCount > MaxTokenCount {
		return fmt.Errorf("%w: %s has %d non-stop tokens", internalerr.ErrTokenCountExceeded, id, concept.WordCount)
	}

	idx, ok := d.byWordCount[concept.WordCount]
	if !ok {
		idx = NewIndex(concept.WordCount)
		d.byWordCount[concept.WordCount] = idx
	}
	idx.Add(&concept)
	d.all = append(d.all, &concept)
	return nil
}

// Build walks every term transitively under root and indexes its label and
// synonyms, skipping blocked labels and surface forms shorter than
// minSurfaceLength. Surface forms longer than MaxTokenCount non-stop words
// are rejected with internalerr.ErrTokenCountExceeded; HPO's longest label
// currently has 14, so this should never trigger in practice.
func Build(prov ontology.Provider, root term.ID) (*Dictionary, error) {
	start := time.Now()
	d := NewDictionary()
	var count, skipped, terms int

	for id := range prov.Descendants(root) {
		t, ok := prov.TermByID(id)
		if !ok {
			continue
		}
		terms++

		surfaces := make([]string, 0, 1+len(t.Synonyms))
		surfaces = append(surfaces, t.Label)
		for _, syn := range t.Synonyms {
			surfaces = append(surfaces, syn.Name)
		}

		for _, surface := range surfaces {
			if surface == "" {
				continue
			}
			lc := strings.ToLower(surface)
			if _, blocked := blockedLabels[lc]; blocked || len(lc) < minSurfaceLength {
				skipped++
				continue
			}

			before := len(d.all)
			if err := d.AddSurface(surface, t.ID); err != nil {
				return nil, err
			}
			if len(d.all) == before {
				skipped++
				continue
			}
			count++
		}
	}

	log.Printf("dictionary built: %s concepts across %s terms in %s (%s skipped)",
		humanize.Comma(int64(count)), humanize.Comma(int64(terms)), time.Since(start), humanize.Comma(int64(skipped)))
	return d, nil
}
