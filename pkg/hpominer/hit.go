package hpominer

import (
	"fmt"

	"github.com/cognicore/hpominer/pkg/hpominer/term"
)

// Span is a byte-offset range into the mined text; Start < End always, and
// both are byte (not rune) offsets.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Hit is one phenotype concept found in text.
type Hit struct {
	TermID     term.ID `json:"term_id"`
	Label      string  `json:"label"`
	Span       Span    `json:"span"`
	IsObserved bool    `json:"is_observed"`
}

// String renders a one-line human-readable form of the hit.
func (h Hit) String() string {
	state := "observed"
	if !h.IsObserved {
		state = "excluded"
	}
	return fmt.Sprintf("%s [%s] @ %d..%d (%s)", h.Label, h.TermID, h.Span.Start, h.Span.End, state)
}
