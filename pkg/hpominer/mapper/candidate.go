package mapper

import "github.com/cognicore/hpominer/pkg/hpominer/term"

// Candidate is one dictionary match found in a candidate window, before
// longest-non-overlapping selection has picked a winner per span.
type Candidate struct {
	TermID   term.ID
	Start    int
	End      int
	Matched  string
	HasComma bool
	order    int // insertion order, for the final selection tie-break
}
