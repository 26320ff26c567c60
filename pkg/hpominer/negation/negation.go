// Package negation flags a sentence as excluded when it contains a cue word
// indicating the phenotype it mentions was denied or ruled out, rather than
// observed.
package negation

import "github.com/cognicore/hpominer/pkg/hpominer/ingest"

// cues are the fixed set of lowercased words that mark a sentence as
// negating the phenotypes it mentions. Scope resolution (which phrase a
// cue actually negates) is not attempted; the flag applies to the whole
// sentence.
var cues = map[string]struct{}{
	"no":        {},
	"nil":       {},
	"denies":    {},
	"not":       {},
	"exclude":   {},
	"excluded":  {},
	"screen":    {},
	"screening": {},
	"normal":    {},
}

// HasNegation reports whether any token's lowercased surface is a negation
// cue.
func HasNegation(tokens []ingest.Token) bool {
	for _, tok := range tokens {
		if _, ok := cues[tok.Lower]; ok {
			return true
		}
	}
	return false
}
