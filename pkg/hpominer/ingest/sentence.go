package ingest

import (
	"strings"
	"unicode/utf8"
)

const sentenceTerminators = ".!?"

// SplitSentences divides text into sentences, breaking on '.', '!' and '?'.
// The boundary character and any whitespace that immediately follows it
// belong to the preceding sentence. A trailing fragment with no terminator
// is emitted as a final sentence. Empty or whitespace-only fragments are
// dropped. Sentence spans are reported in document byte offsets.
//
// Numeric contexts such as "2.5" are deliberately split on the period
// rather than treated as a special case.
func SplitSentences(text string) []Sentence {
	var sentences []Sentence

	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if strings.ContainsRune(sentenceTerminators, r) {
			end := i + size
			for end < len(text) {
				wr, wsize := utf8.DecodeRuneInString(text[end:])
				if !isWhitespaceRune(wr) {
					break
				}
				end += wsize
			}
			appendSentence(&sentences, text, start, end)
			start = end
			i = end
			continue
		}
		i += size
	}
	if start < len(text) {
		appendSentence(&sentences, text, start, len(text))
	}

	return sentences
}

func appendSentence(out *[]Sentence, text string, start, end int) {
	fragment := text[start:end]
	if strings.TrimSpace(fragment) == "" {
		return
	}
	*out = append(*out, Sentence{
		Text:   fragment,
		Start:  start,
		End:    end,
		Tokens: Tokenize(fragment, start),
	})
}

func isWhitespaceRune(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
