package dictionary

// Index is an inverted token index over the Concepts sharing one
// non-stop-word count: token -> the concepts that contain it. A lookup
// checks only the concepts reachable from the candidate's own tokens rather
// than scanning every concept of that word count.
type Index struct {
	wordCount int
	byToken   map[string][]*Concept
	concepts  []*Concept
}

// NewIndex builds an empty index for concepts with the given non-stop word
// count.
func NewIndex(wordCount int) *Index {
	return &Index{
		wordCount: wordCount,
		byToken:   make(map[string][]*Concept),
	}
}

// Add registers a concept under every one of its non-stop tokens.
func (idx *Index) Add(c *Concept) {
	idx.concepts = append(idx.concepts, c)
	for token := range c.NonStopWords {
		idx.byToken[token] = append(idx.byToken[token], c)
	}
}

// Match looks up the concept whose non-stop word set equals tokenSet
// exactly, searching only the concepts reachable from tokenSet's own
// tokens. Returns nil if no concept matches.
func (idx *Index) Match(tokenSet map[string]struct{}) *Concept {
	for token := range tokenSet {
		for _, c := range idx.byToken[token] {
			if c.nonStopSetEqual(tokenSet) {
				return c
			}
		}
	}
	return nil
}

// Len reports how many concepts this index holds.
func (idx *Index) Len() int {
	return len(idx.concepts)
}
