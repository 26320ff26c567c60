// Package ontology declares the capability set the text-mining core needs
// from a phenotype ontology provider. It owns no JSON parsing and no
// storage of its own: concrete providers (e.g. package obographs) implement
// this contract, and the core only ever holds a read-only handle to one.
package ontology

import (
	"iter"

	"github.com/cognicore/hpominer/pkg/hpominer/term"
)

// Synonym is an alternate surface form for a term. Only the name is
// required by the core; richer providers may carry more (scope,
// cross-references) without breaking this contract.
type Synonym struct {
	Name string
}

// Term is the read-only view of one ontology entry the core consumes.
type Term struct {
	ID       term.ID
	Label    string
	Synonyms []Synonym
}

// Provider is the capability set the dictionary builder and the miner
// facade require from an ontology. Any concrete backing store that
// satisfies it plugs in; the core never mutates it after construction.
type Provider interface {
	// Descendants yields every term id transitively descended from root,
	// not including root itself.
	Descendants(root term.ID) iter.Seq[term.ID]

	// TermByID looks up a term by identifier. ok is false if the id is not
	// present in the ontology.
	TermByID(id term.ID) (Term, bool)
}

// PhenotypicAbnormality is the root of the subtree indexed by the
// dictionary builder.
var PhenotypicAbnormality = term.ID{Prefix: "HP", Local: "0000118"}
