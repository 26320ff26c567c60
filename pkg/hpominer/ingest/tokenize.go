package ingest

import (
	"regexp"
	"strings"
)

// wordPattern matches maximal runs of ASCII letters, optionally joined by a
// single apostrophe or hyphen to one further run of letters. Numbers and
// punctuation are never part of a token.
var wordPattern = regexp.MustCompile(`[A-Za-z]+(['-][A-Za-z]+)?`)

// Tokenize splits a sentence fragment into word tokens. docOffset is the
// byte offset of fragment's start within the original document; token
// offsets are reported relative to the document, not the fragment.
func Tokenize(fragment string, docOffset int) []Token {
	matches := wordPattern.FindAllStringIndex(fragment, -1)
	if len(matches) == 0 {
		return nil
	}
	tokens := make([]Token, 0, len(matches))
	for _, m := range matches {
		surface := fragment[m[0]:m[1]]
		tokens = append(tokens, Token{
			Surface: surface,
			Lower:   strings.ToLower(surface),
			Start:   docOffset + m[0],
			End:     docOffset + m[1],
		})
	}
	return tokens
}
