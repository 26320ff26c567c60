// Package mapper implements the longest-non-overlapping sentence-level
// matching heuristic: partition a sentence's tokens into windows of every
// size up to a heuristic cap, probe the dictionary at each size, then walk
// left to right picking the longest unclaimed match at each start.
package mapper

import (
	"sort"
	"strings"

	"github.com/cognicore/hpominer/pkg/hpominer/dictionary"
	"github.com/cognicore/hpominer/pkg/hpominer/ingest"
)

// maxPartitionSize caps the window size the mapper will probe, independent
// of dictionary.MaxTokenCount; HPO matches longer than this in practice
// never occur in a single sentence window.
const maxPartitionSize = 10

// MapSentence finds the longest non-overlapping dictionary matches in one
// sentence's tokens. Candidates are produced by probing every window size
// from 1 up to min(maxPartitionSize, len(tokens)); ties on span length at a
// given start favor the concept whose surface form has no comma, then
// whichever candidate was found first.
func MapSentence(tokens []ingest.Token, dict *dictionary.Dictionary) []Candidate {
	if len(tokens) == 0 {
		return nil
	}

	byStart := make(map[int][]Candidate)
	order := 0
	maxK := len(tokens)
	if maxK > maxPartitionSize {
		maxK = maxPartitionSize
	}

	for k := 1; k <= maxK; k++ {
		idx := dict.ByWordCount(k)
		if idx == nil {
			continue
		}
		for _, start := range windows(len(tokens), k) {
			window := tokens[start : start+k]
			tokenSet := make(map[string]struct{}, k)
			var surfaces []string
			for _, tok := range window {
				tokenSet[tok.Lower] = struct{}{}
				surfaces = append(surfaces, tok.Lower)
			}
			// A window matches only if its raw token set equals some
			// concept's non-stop set exactly; a window containing a
			// stop word can never match, since stop words are never
			// members of a concept's non-stop set.
			match := idx.Match(tokenSet)
			if match == nil {
				continue
			}

			end := window[len(window)-1].End
			c := Candidate{
				TermID:   match.TermID,
				Start:    window[0].Start,
				End:      end,
				Matched:  strings.Join(surfaces, " "),
				HasComma: match.HasComma,
				order:    order,
			}
			order++
			byStart[c.Start] = append(byStart[c.Start], c)
		}
	}

	return selectLongestNonOverlapping(byStart)
}

// selectLongestNonOverlapping walks candidate starts in ascending order,
// skipping any already covered by a previous selection, and at each
// unclaimed start keeps the candidate with the largest end (no-comma, then
// insertion order, breaking ties).
func selectLongestNonOverlapping(byStart map[int][]Candidate) []Candidate {
	starts := make([]int, 0, len(byStart))
	for s := range byStart {
		starts = append(starts, s)
	}
	sort.Ints(starts)

	var out []Candidate
	cursor := 0
	for _, s := range starts {
		if s < cursor {
			continue
		}
		best := bestAt(byStart[s])
		out = append(out, best)
		cursor = best.End
	}
	return out
}

func bestAt(candidates []Candidate) Candidate {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if better(c, best) {
			best = c
		}
	}
	return best
}

// better reports whether a should win over the current best: larger end
// wins; on a tie, no-comma wins; on a further tie, earlier insertion wins.
func better(a, best Candidate) bool {
	if a.End != best.End {
		return a.End > best.End
	}
	if a.HasComma != best.HasComma {
		return !a.HasComma
	}
	return a.order < best.order
}
