// Package stopword holds the fixed, closed set of lexical function words
// excluded from concept token sets before set-equality matching.
//
// The set is intentionally small and not configurable: it is a property of
// how ontology surface forms are written (short noun phrases), not of the
// input text's genre.
package stopword

var stops = map[string]struct{}{
	"a":    {},
	"the":  {},
	"and":  {},
	"of":   {},
	"in":   {},
	"to":   {},
	"on":   {},
	"an":   {},
	"with": {},
}

// Is reports whether the lowercased word is a stop word.
func Is(word string) bool {
	_, ok := stops[word]
	return ok
}
