// Package dictionary indexes an ontology subtree into the bag-of-words
// concepts the mapper matches candidate windows against.
package dictionary

import (
	"strings"

	"github.com/cognicore/hpominer/pkg/hpominer/stopword"
	"github.com/cognicore/hpominer/pkg/hpominer/term"
)

// MaxTokenCount is the longest surface form (by non-stop-word count) the
// dictionary will index. The longest HPO label currently has 14 words.
const MaxTokenCount = 14

// Concept is one ontology label or synonym reduced to the set of its
// non-stop-word tokens, the representation every match is actually made
// against. Two surface forms that differ only in word order or in stop
// words they contain are the same Concept match.
type Concept struct {
	Original     string
	NonStopWords map[string]struct{}
	TermID       term.ID
	WordCount    int
	HasComma     bool
}

// NewConcept builds a Concept from a raw label or synonym string and the
// term it belongs to.
func NewConcept(original string, id term.ID) Concept {
	words := strings.Fields(original)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		lw := strings.ToLower(w)
		if stopword.Is(lw) {
			continue
		}
		set[lw] = struct{}{}
	}
	return Concept{
		Original:     original,
		NonStopWords: set,
		TermID:       id,
		WordCount:    len(set),
		HasComma:     strings.Contains(original, ","),
	}
}

// nonStopSetEqual reports whether tokenSet (already lowercased, already
// filtered to non-stop words) is exactly the concept's word set.
func (c Concept) nonStopSetEqual(tokenSet map[string]struct{}) bool {
	if len(tokenSet) != len(c.NonStopWords) {
		return false
	}
	for w := range tokenSet {
		if _, ok := c.NonStopWords[w]; !ok {
			return false
		}
	}
	return true
}
